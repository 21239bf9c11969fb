package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/edonnat/chronos/internal/export"
	"github.com/edonnat/chronos/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export progress to a JSON file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prog, err := loadProgress(st)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			b, err := export.Export(prog.State())
			if err != nil {
				return fmt.Errorf("export progress: %w", err)
			}
			if err := os.WriteFile(args[0], b, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Println("Exported to", args[0])
			return nil
		}

		path, err := export.ToFile(prog.State(), ".", time.Now())
		if err != nil {
			return fmt.Errorf("export progress: %w", err)
		}
		fmt.Println("Exported to", path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import progress from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prog, err := loadProgress(st)
		if err != nil {
			return err
		}

		state, err := export.FromFile(args[0])
		if err != nil {
			return fmt.Errorf("import progress: %w", err)
		}

		prog.Dispatch(progress.ImportState{State: state})
		fmt.Printf("Imported: %d XP, %d lesson(s) completed.\n",
			state.TotalXP, len(state.CompletedLessons))
		return nil
	},
}

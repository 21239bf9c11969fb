package cmd

import (
	"fmt"

	"github.com/edonnat/chronos/internal/progress"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to erase progress without --yes")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prog, err := loadProgress(st)
		if err != nil {
			return err
		}

		// The persist hook writes the fresh state as a new snapshot, so
		// the event log keeps its audit trail.
		prog.Dispatch(progress.ResetProgress{})
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm erasing all progress")
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [lesson-number]",
	Short: "Jump straight into a lesson",
	Long:  "Launches the app directly inside a lesson, skipping the splash. Without an argument, the next incomplete lesson is chosen.",
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
		state := prog.State()

		lesson, err := chooseLesson(args, state.CompletedLessons)
		if err != nil {
			return err
		}
		if !lesson.Unlocked(state.CompletedLessons) {
			return fmt.Errorf("lesson %d (%s) is locked; finish lesson %d first",
				lesson.Number, lesson.Title, lesson.Number-1)
		}

		return launch(st, prog, &lesson)
	},
}

// chooseLesson resolves the requested lesson number, or picks the first
// incomplete lesson when none was given.
func chooseLesson(args []string, completions map[string]int) (catalog.Lesson, error) {
	lessons := catalog.Lessons()

	if len(args) == 0 {
		for _, l := range lessons {
			if completions[l.ID] == 0 {
				return l, nil
			}
		}
		return lessons[0], nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(lessons) {
		return catalog.Lesson{}, fmt.Errorf("lesson number must be 1-%d", len(lessons))
	}
	return lessons[n-1], nil
}

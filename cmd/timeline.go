package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/quizgen"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the full event timeline",
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

		for _, era := range catalog.Eras() {
			fmt.Printf("\n%s  (%s)\n", era.Name, era.Label)
			events := catalog.EventsByEra(era)
			sort.SliceStable(events, func(i, j int) bool {
				return events[i].RepresentativeYear() < events[j].RepresentativeYear()
			})
			for _, ev := range events {
				if !state.SeenEvents.Has(ev.ID) {
					fmt.Println("  (not yet studied)")
					continue
				}
				fmt.Printf("  %-18s %s %s%s\n",
					quizgen.FormatYear(ev.RepresentativeYear()),
					tierGlyph(state.EventMastery[ev.ID]),
					ev.Title,
					starGlyph(state.StarredEvents.Has(ev.ID)))
			}
		}
		return nil
	},
}

func tierGlyph(rec progress.MasteryRecord) string {
	switch progress.TierFor(rec.Overall) {
	case progress.TierMastered:
		return "●"
	case progress.TierLearning:
		return "◐"
	case progress.TierNeedsWork:
		return "○"
	}
	return " "
}

func starGlyph(starred bool) string {
	if starred {
		return " ★"
	}
	return ""
}

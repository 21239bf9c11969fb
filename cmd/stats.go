package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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

		printOverview(state)
		printMastery(cmd.Context(), st.EventRepo(), state)
		return printRecentSessions(cmd.Context(), st.EventRepo())
	},
}

func printOverview(state progress.State) {
	completed := 0
	for _, n := range state.CompletedLessons {
		if n > 0 {
			completed++
		}
	}
	fmt.Printf("XP:        %d\n", state.TotalXP)
	fmt.Printf("Streak:    %d day(s)\n", state.CurrentStreak)
	fmt.Printf("Lessons:   %d of %d completed\n", completed, len(catalog.Lessons()))
	fmt.Printf("Events:    %d of %d seen\n", len(state.SeenEvents), len(catalog.Events()))
}

// printMastery breaks the seen events down by tier and flags the
// shakiest ones using recorded answer history.
func printMastery(ctx context.Context, events store.EventRepo, state progress.State) {
	tiers := map[progress.MasteryTier]int{}
	for _, rec := range state.EventMastery {
		tiers[progress.TierFor(rec.Overall)]++
	}
	fmt.Printf("\nMastery:   %d mastered, %d learning, %d need work\n",
		tiers[progress.TierMastered], tiers[progress.TierLearning], tiers[progress.TierNeedsWork])

	type weak struct {
		title    string
		accuracy float64
		tries    int
		lastSeen time.Time
	}
	var weakest []weak
	for id, rec := range state.EventMastery {
		if progress.TierFor(rec.Overall) != progress.TierNeedsWork {
			continue
		}
		ev, ok := catalog.GetEvent(id)
		if !ok {
			continue
		}
		acc, n, err := events.AnswerAccuracy(ctx, id)
		if err != nil || n == 0 {
			continue
		}
		last, err := events.LatestAnswerTime(ctx, id)
		if err != nil {
			continue
		}
		weakest = append(weakest, weak{title: ev.Title, accuracy: acc, tries: n, lastSeen: last})
	}
	if len(weakest) > 0 {
		fmt.Println("\nNeeds review:")
		for _, w := range weakest {
			fmt.Printf("  %-40s %3.0f%% right over %d question(s), last quizzed %s\n",
				w.title, w.accuracy*100, w.tries, humanize.Time(w.lastSeen))
		}
	}
}

func printRecentSessions(ctx context.Context, events store.EventRepo) error {
	records, err := events.QuerySessions(ctx, store.QueryOpts{Limit: 5})
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	fmt.Println("\nRecent sessions:")
	for _, r := range records {
		if r.Action != "end" && r.Action != "abandon" {
			continue
		}
		lessonTitle := r.LessonID
		if l, ok := catalog.GetLesson(r.LessonID); ok {
			lessonTitle = l.Title
		}
		dur := time.Duration(r.DurationSecs) * time.Second
		fmt.Printf("  %-28s %s, +%d XP, %s (%s)\n",
			lessonTitle, dur, r.XPEarned, r.Action, humanize.Time(r.Timestamp))
	}
	return nil
}

package quizgen

import "github.com/edonnat/chronos/internal/catalog"

// Date-scoring thresholds, widest for deep prehistory where dating
// itself is only approximate, tightest for the well-documented recent
// past. Each bucket is keyed on the reference year (the nearest range
// edge of the correct event, not the learner's input).
const (
	deepPastCutoff = -100_000
	deepBCECutoff  = -1000
	medievalCutoff = 1500
)

// ScoreDateAnswer grades a free-text year answer for the given event.
// Ranged events accept any year inside the range as green; otherwise
// the distance to the nearest range edge (or the point year) is graded
// against era-scaled thresholds.
func ScoreDateAnswer(ev catalog.Event, input int64) Grade {
	lo, hi := ev.YearRange()
	if input >= lo && input <= hi {
		return GradeGreen
	}

	// Reference is the nearest edge; it also selects the threshold
	// bucket.
	ref := lo
	if input > hi {
		ref = hi
	}
	diff := input - ref
	if diff < 0 {
		diff = -diff
	}

	var green, yellow int64
	switch {
	case ref < deepPastCutoff:
		green, yellow = 500_000, 2_000_000
	case ref < deepBCECutoff:
		green, yellow = 200, 500
	case ref <= medievalCutoff:
		green, yellow = 50, 150
	default:
		green, yellow = 10, 30
	}

	switch {
	case diff <= green:
		return GradeGreen
	case diff <= yellow:
		return GradeYellow
	default:
		return GradeRed
	}
}

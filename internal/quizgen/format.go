package quizgen

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatYear renders a signed astronomical year as the label shown to
// the learner. Deep-past magnitudes are rounded, so distinct raw years
// can share a label ("c. 50,000 years ago"); callers deduplicating
// options must compare formatted labels, not raw years.
func FormatYear(y int64) string {
	switch {
	case y <= -1_000_000_000:
		return scaled(-y, 1_000_000_000) + " billion years ago"
	case y <= -1_000_000:
		return scaled(-y, 1_000_000) + " million years ago"
	case y <= -10_000:
		// Round to the nearest thousand years.
		rounded := ((-y + 500) / 1000) * 1000
		return "c. " + humanize.Comma(rounded) + " years ago"
	case y < 0:
		return fmt.Sprintf("%d BCE", -y)
	case y < 1000:
		return fmt.Sprintf("%d CE", y)
	default:
		return fmt.Sprintf("%d", y)
	}
}

// scaled renders v/unit with one decimal place, trimming a trailing .0
// ("4.5", "66").
func scaled(v, unit int64) string {
	whole := v / unit
	tenth := (v % unit) * 10 / unit
	s := fmt.Sprintf("%d.%d", whole, tenth)
	return strings.TrimSuffix(s, ".0")
}

// SignedYear converts a user-entered magnitude and era flag into an
// astronomical year. Magnitudes are always positive in the input form;
// bce chooses the sign.
func SignedYear(magnitude int64, bce bool) int64 {
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if bce {
		return -magnitude
	}
	return magnitude
}

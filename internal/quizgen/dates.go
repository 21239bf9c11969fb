package quizgen

import "github.com/edonnat/chronos/internal/catalog"

// maxSynthAttempts bounds the fake-year synthesis loop. Collisions on
// formatted labels are common in the deep past, where rounding maps
// many raw years onto one label.
const maxSynthAttempts = 24

// DateOptions builds the option set for a "when did this happen"
// question. The correct label is the formatted representative year; up
// to two distractors come from the chronologically nearest other
// events, and the remainder are synthesized by applying an era-scaled
// offset to the correct year. All collision checks run on formatted
// labels, since distinct raw years can format identically.
func DateOptions(ev catalog.Event, rng Rand) []Option {
	ref := ev.RepresentativeYear()
	correct := FormatYear(ref)
	opts := []Option{{Label: correct, EventID: ev.ID, Correct: true}}
	used := map[string]bool{correct: true}

	// Nearest real events first: the hardest distractors.
	for _, cand := range byTimeDistance(ev) {
		if len(opts) >= 3 { // at most 2 real-event distractors
			break
		}
		label := FormatYear(cand.RepresentativeYear())
		if used[label] {
			continue
		}
		used[label] = true
		opts = append(opts, Option{Label: label, EventID: cand.ID})
	}

	// Fill with synthesized years until the set is full or attempts
	// run out.
	for attempt := 0; attempt < maxSynthAttempts && len(opts) < OptionSetSize; attempt++ {
		label := FormatYear(fakeYear(ref, rng))
		if used[label] {
			continue
		}
		used[label] = true
		opts = append(opts, Option{Label: label})
	}

	shuffleOptions(rng, opts)
	return opts
}

// fakeYear synthesizes a plausible wrong year near ref. The offset
// magnitude scales with how far back the event is: billions of years
// for cosmic history, centuries for antiquity, decades for the modern
// era.
func fakeYear(ref int64, rng Rand) int64 {
	step := offsetStep(ref)
	offset := step * int64(1+rng.IntN(5))
	if rng.IntN(2) == 0 {
		offset = -offset
	}
	y := ref + offset
	// Keep modern fakes out of the future.
	if ref > 1500 && y > presentYear {
		y = ref - offset
	}
	return y
}

// presentYear caps synthesized modern years. A constant rather than a
// clock read: option sets must not depend on wall time.
const presentYear = 2025

func offsetStep(ref int64) int64 {
	switch {
	case ref <= -1_000_000_000:
		return 1_000_000_000
	case ref <= -1_000_000:
		return 1_000_000
	case ref <= -100_000:
		return 50_000
	case ref <= -10_000:
		return 5_000
	case ref <= 1000:
		return 100
	case ref <= 1700:
		return 50
	default:
		return 10
	}
}

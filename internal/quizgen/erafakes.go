package quizgen

import "github.com/edonnat/chronos/internal/catalog"

// eraFakePool holds hand-authored wrong date ranges for one era. Close
// fakes sit in the right ballpark; far fakes belong to a different
// stretch of history entirely. Mixing both keeps process-of-elimination
// from identifying the correct range by distance alone.
type eraFakePool struct {
	close []string
	far   []string
}

var eraFakes = map[string]eraFakePool{
	"prehistory": {
		close: []string{"Before 5000 BCE", "Before 2500 BCE", "Before 10,000 BCE"},
		far:   []string{"800 – 1200", "1000 BCE – 500 CE", "1500 – 1900"},
	},
	"antiquity": {
		close: []string{"3000 BCE – 300 CE", "2500 BCE – 600 CE", "4000 BCE – 200 CE"},
		far:   []string{"1200 – 1700", "900 – 1300", "1600 – 1900"},
	},
	"middle-ages": {
		close: []string{"400 – 1300", "600 – 1500", "500 – 1400"},
		far:   []string{"3000 BCE – 500 BCE", "1700 – 1900", "Before 10,000 BCE"},
	},
	"early-modern": {
		close: []string{"1400 – 1700", "1500 – 1850", "1450 – 1750"},
		far:   []string{"500 – 900", "2000 BCE – 1000 BCE", "1850 – today"},
	},
	"contemporary": {
		close: []string{"1750 – today", "1815 – today", "1800 – 1990"},
		far:   []string{"1100 – 1500", "300 BCE – 400 CE", "900 – 1250"},
	},
}

// EraRangeOptions builds the option set for the introductory lesson's
// "which dates bracket this era" question: the era's real range plus
// three wrong ranges, drawn as a random mix of one or two close fakes
// with far fakes filling the rest.
func EraRangeOptions(era catalog.Era, rng Rand) []Option {
	opts := []Option{{Label: era.Label, EventID: era.ID, Correct: true}}

	pool, ok := eraFakes[era.ID]
	if !ok {
		return opts
	}

	nClose := 1 + rng.IntN(2) // 1 or 2
	nFar := 3 - nClose

	for _, i := range sample(rng, len(pool.close), nClose) {
		opts = append(opts, Option{Label: pool.close[i]})
	}
	for _, i := range sample(rng, len(pool.far), nFar) {
		opts = append(opts, Option{Label: pool.far[i]})
	}

	shuffleOptions(rng, opts)
	return opts
}

// EraNameOptions builds the option set for "what is this era called":
// the era's name against the other four era names.
func EraNameOptions(era catalog.Era, rng Rand) []Option {
	opts := []Option{{Label: era.Name, EventID: era.ID, Correct: true}}
	var others []catalog.Era
	for _, e := range catalog.Eras() {
		if e.ID != era.ID {
			others = append(others, e)
		}
	}
	for _, i := range sample(rng, len(others), OptionSetSize-1) {
		opts = append(opts, Option{Label: others[i].Name, EventID: others[i].ID})
	}
	shuffleOptions(rng, opts)
	return opts
}

package flow

import (
	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/quizgen"
)

// Matching is the trailing question of the eras lesson: pair the five
// era names with their five date ranges. Names stay in chronological
// order; the range column is shuffled. Interaction is select-then-
// select and idempotent: re-selecting a name deselects it, and pairing
// onto a taken range replaces the old pair.
type Matching struct {
	Eras         []catalog.Era
	RangeOrder   []int // column order: RangeOrder[col] indexes Eras
	Pairs        map[int]int
	SelectedName int // -1 when nothing is selected
	Checked      bool
}

// NewMatching builds the matching question over all five eras.
func NewMatching(rng quizgen.Rand) *Matching {
	eras := catalog.Eras()
	order := make([]int, len(eras))
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	return &Matching{
		Eras:         eras,
		RangeOrder:   order,
		Pairs:        make(map[int]int),
		SelectedName: -1,
	}
}

// SelectName toggles selection of the era name at row i.
func (m *Matching) SelectName(i int) {
	if m.Checked || i < 0 || i >= len(m.Eras) {
		return
	}
	if m.SelectedName == i {
		m.SelectedName = -1
		return
	}
	m.SelectedName = i
}

// SelectRange pairs the selected name with the range at column col.
// Any existing pair using either side is replaced.
func (m *Matching) SelectRange(col int) {
	if m.Checked || m.SelectedName < 0 || col < 0 || col >= len(m.RangeOrder) {
		return
	}
	for name, c := range m.Pairs {
		if c == col {
			delete(m.Pairs, name)
		}
	}
	m.Pairs[m.SelectedName] = col
	m.SelectedName = -1
}

// Complete reports whether every name has a range.
func (m *Matching) Complete() bool {
	return len(m.Pairs) == len(m.Eras)
}

// Check scores the pairing: exact-position matches count, everything
// else (including unpaired names) is wrong. Zero wrong is green, one
// or two wrong is yellow, more is red, so a single transposition of
// two items still grades yellow.
func (m *Matching) Check() (wrong int, grade quizgen.Grade) {
	m.Checked = true
	for i := range m.Eras {
		col, ok := m.Pairs[i]
		if !ok || m.Eras[m.RangeOrder[col]].ID != m.Eras[i].ID {
			wrong++
		}
	}
	switch {
	case wrong == 0:
		grade = quizgen.GradeGreen
	case wrong <= 2:
		grade = quizgen.GradeYellow
	default:
		grade = quizgen.GradeRed
	}
	return wrong, grade
}

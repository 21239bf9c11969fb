package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edonnat/chronos/internal/flow"
	"github.com/edonnat/chronos/internal/ui/theme"
)

// MatchBoard renders the era matching question: names on the left in
// chronological order, shuffled date ranges on the right. The cursor
// moves within the active column; pairing follows the select-then-
// select interaction of the underlying state.
type MatchBoard struct {
	State       *flow.Matching
	Cursor      int
	RangeColumn bool // false: cursor is on the name column
}

// NewMatchBoard creates a board over a matching state.
func NewMatchBoard(state *flow.Matching) MatchBoard {
	return MatchBoard{State: state}
}

// Update handles navigation and pairing keys.
func (b MatchBoard) Update(msg tea.KeyMsg) MatchBoard {
	m := b.State
	if m.Checked {
		return b
	}

	limit := len(m.Eras)
	switch msg.String() {
	case "up", "k":
		if b.Cursor > 0 {
			b.Cursor--
		}
	case "down", "j":
		if b.Cursor < limit-1 {
			b.Cursor++
		}
	case "left", "h":
		b.RangeColumn = false
	case "right", "l":
		b.RangeColumn = true
	case "enter", " ":
		if b.RangeColumn {
			m.SelectRange(b.Cursor)
			b.RangeColumn = false
		} else {
			m.SelectName(b.Cursor)
			b.RangeColumn = m.SelectedName >= 0
		}
	}
	return b
}

// View renders the two columns with pairing marks.
func (b MatchBoard) View() string {
	m := b.State

	// Pairs keyed by column for the right side.
	colToName := make(map[int]int, len(m.Pairs))
	for name, col := range m.Pairs {
		colToName[col] = name
	}

	marks := []string{"①", "②", "③", "④", "⑤"}

	var left, right []string
	for i, era := range m.Eras {
		line := era.Name
		if col, ok := m.Pairs[i]; ok {
			line = marks[col%len(marks)] + " " + line
		} else {
			line = "  " + line
		}
		left = append(left, b.styleRow(line, i, false, i == m.SelectedName))
	}

	for col, eraIdx := range m.RangeOrder {
		era := m.Eras[eraIdx]
		label := era.Label
		if _, taken := colToName[col]; taken {
			label = marks[col%len(marks)] + " " + label
		} else {
			label = "  " + label
		}
		right = append(right, b.styleRow(label, col, true, false))
	}

	leftCol := lipgloss.NewStyle().Width(26).Render(strings.Join(left, "\n"))
	rightCol := strings.Join(right, "\n")
	board := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "    ", rightCol)

	hint := theme.Hint.Render("Pick a name, then its dates. Arrows move, Enter selects.")
	return board + "\n\n" + hint
}

func (b MatchBoard) styleRow(line string, idx int, rangeCol, selected bool) string {
	cursorHere := !b.State.Checked && idx == b.Cursor && rangeCol == b.RangeColumn
	switch {
	case cursorHere:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + line)
	case selected:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  " + line)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line)
	}
}

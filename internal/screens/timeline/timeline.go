// Package timeline renders the full event catalog in chronological
// order, grouped by era.
package timeline

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/quizgen"
	"github.com/edonnat/chronos/internal/screen"
	"github.com/edonnat/chronos/internal/ui/layout"
	"github.com/edonnat/chronos/internal/ui/theme"
)

// row is one rendered line: an era header or an event.
type row struct {
	header string
	event  catalog.Event
}

// Screen is the scrollable timeline.
type Screen struct {
	prog     *progress.Store
	rows     []row
	selected int // index into rows, skipping headers
	offset   int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the timeline screen.
func New(prog *progress.Store) *Screen {
	rows := buildRows()
	return &Screen{prog: prog, rows: rows, selected: firstEvent(rows)}
}

func buildRows() []row {
	var rows []row
	for _, era := range catalog.Eras() {
		events := catalog.EventsByEra(era)
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].RepresentativeYear() < events[j].RepresentativeYear()
		})
		rows = append(rows, row{header: fmt.Sprintf("%s  ·  %s", era.Name, era.Label)})
		for _, ev := range events {
			rows = append(rows, row{event: ev})
		}
	}
	return rows
}

func firstEvent(rows []row) int {
	for i, r := range rows {
		if r.header == "" {
			return i
		}
	}
	return 0
}

func (t *Screen) Init() tea.Cmd {
	return nil
}

func (t *Screen) Title() string {
	return "Timeline"
}

func (t *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "S", Description: "Star"},
		{Key: "1", Description: "Lessons"},
		{Key: "3", Description: "Settings"},
	}
}

func (t *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		t.move(-1)
	case "down", "j":
		t.move(1)
	case "s", "S":
		ev := t.rows[t.selected].event
		if ev.ID != "" && t.prog.State().SeenEvents.Has(ev.ID) {
			t.prog.Dispatch(progress.ToggleStar{EventID: ev.ID})
		}
	}
	return t, nil
}

// move shifts the selection to the next event row in the given
// direction, skipping era headers.
func (t *Screen) move(dir int) {
	for i := t.selected + dir; i >= 0 && i < len(t.rows); i += dir {
		if t.rows[i].header == "" {
			t.selected = i
			return
		}
	}
}

func (t *Screen) View(width, height int) string {
	state := t.prog.State()

	visible := height - 2
	if visible < 5 {
		visible = 5
	}
	if t.selected < t.offset {
		t.offset = t.selected
	}
	if t.selected >= t.offset+visible {
		t.offset = t.selected - visible + 1
	}

	var b strings.Builder
	end := t.offset + visible
	if end > len(t.rows) {
		end = len(t.rows)
	}
	for i := t.offset; i < end; i++ {
		b.WriteString(t.renderRow(t.rows[i], i == t.selected, state))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (t *Screen) renderRow(r row, selected bool, state progress.State) string {
	if r.header != "" {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render("── " + r.header)
	}

	ev := r.event

	// Unseen events stay hidden until their study card has been shown.
	if !state.SeenEvents.Has(ev.ID) {
		line := lipgloss.NewStyle().Foreground(theme.Border).
			Render("   ·                  ▱▱▱  not yet studied")
		if selected {
			return lipgloss.NewStyle().Foreground(theme.TextDim).Render("▸") + line
		}
		return " " + line
	}

	dot := lipgloss.NewStyle().
		Foreground(theme.CategoryColor(ev.Category)).
		Render("●")

	star := " "
	if state.StarredEvents.Has(ev.ID) {
		star = lipgloss.NewStyle().Foreground(theme.Accent).Render("★")
	}

	year := fmt.Sprintf("%18s", quizgen.FormatYear(ev.RepresentativeYear()))
	tier := tierMark(state.EventMastery[ev.ID])

	line := fmt.Sprintf("%s %s %s  %s  %s", star, dot, year, tier, ev.Title)
	if selected {
		return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("▸" + line)
	}
	return " " + line
}

// tierMark is a compact mastery indicator: filled pips for the tier.
func tierMark(rec progress.MasteryRecord) string {
	switch progress.TierFor(rec.Overall) {
	case progress.TierMastered:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("▰▰▰")
	case progress.TierLearning:
		return lipgloss.NewStyle().Foreground(theme.Warning).Render("▰▰▱")
	case progress.TierNeedsWork:
		return lipgloss.NewStyle().Foreground(theme.Error).Render("▰▱▱")
	}
	return lipgloss.NewStyle().Foreground(theme.Border).Render("▱▱▱")
}

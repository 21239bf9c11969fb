// Package home renders the lesson list, the app's landing surface.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/quizgen"
	"github.com/edonnat/chronos/internal/router"
	"github.com/edonnat/chronos/internal/screen"
	sessionscreen "github.com/edonnat/chronos/internal/screens/session"
	"github.com/edonnat/chronos/internal/store"
	"github.com/edonnat/chronos/internal/ui/layout"
	"github.com/edonnat/chronos/internal/ui/theme"
)

// Screen is the lesson list. Lessons unlock strictly in order; the
// cursor starts on the first lesson not yet completed.
type Screen struct {
	prog     *progress.Store
	events   store.EventRepo
	lessons  []catalog.Lesson
	selected int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the home screen.
func New(prog *progress.Store, events store.EventRepo) *Screen {
	lessons := catalog.Lessons()
	state := prog.State()

	selected := 0
	for i, l := range lessons {
		if state.CompletedLessons[l.ID] == 0 {
			selected = i
			break
		}
	}

	return &Screen{
		prog:     prog,
		events:   events,
		lessons:  lessons,
		selected: selected,
	}
}

func (h *Screen) Init() tea.Cmd {
	return nil
}

func (h *Screen) Title() string {
	return "Lessons"
}

func (h *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start lesson"},
		{Key: "2", Description: "Timeline"},
		{Key: "3", Description: "Settings"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.lessons)-1 {
			h.selected++
		}
	case "enter":
		lesson := h.lessons[h.selected]
		if !h.unlocked(lesson) {
			return h, nil
		}
		return h, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: sessionscreen.New(lesson, h.prog, h.events, quizgen.SystemRand{}),
			}
		}
	}
	return h, nil
}

func (h *Screen) View(width, height int) string {
	state := h.prog.State()

	var rows []string
	for i, lesson := range h.lessons {
		rows = append(rows, h.lessonRow(lesson, i, state))
	}

	list := strings.Join(rows, "\n")
	stats := h.statsLine(state, width)

	return lipgloss.NewStyle().Padding(1, 2).Render(stats + "\n\n" + list)
}

func (h *Screen) lessonRow(lesson catalog.Lesson, idx int, state progress.State) string {
	var mark string
	var style lipgloss.Style

	switch {
	case state.CompletedLessons[lesson.ID] > 0:
		mark = "✓"
		style = lipgloss.NewStyle().Foreground(theme.Success)
	case h.unlocked(lesson):
		mark = "•"
		style = lipgloss.NewStyle().Foreground(theme.Text)
	default:
		mark = "‣"
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	line := fmt.Sprintf("%s %2d. %-28s %s", mark, lesson.Number, lesson.Title, lesson.Subtitle)
	if !h.unlocked(lesson) && state.CompletedLessons[lesson.ID] == 0 {
		line = fmt.Sprintf("%s %2d. %-28s %s", mark, lesson.Number, lesson.Title, "locked")
	}

	if idx == h.selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + line)
	}
	return style.Render("  " + line)
}

func (h *Screen) statsLine(state progress.State, width int) string {
	mastered := 0
	for _, rec := range state.EventMastery {
		if progress.TierFor(rec.Overall) == progress.TierMastered {
			mastered++
		}
	}
	completed := 0
	for _, n := range state.CompletedLessons {
		if n > 0 {
			completed++
		}
	}

	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"%d / %d lessons   ·   %d / %d events mastered   ·   %d seen",
		completed, len(h.lessons), mastered, len(catalog.Events()), len(state.SeenEvents)))
}

func (h *Screen) unlocked(lesson catalog.Lesson) bool {
	return lesson.Unlocked(h.prog.State().CompletedLessons)
}

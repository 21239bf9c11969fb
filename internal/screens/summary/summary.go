package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edonnat/chronos/internal/router"
	"github.com/edonnat/chronos/internal/screen"
	"github.com/edonnat/chronos/internal/ui/layout"
	"github.com/edonnat/chronos/internal/ui/theme"
)

// Report is the finished-lesson tally the summary displays.
type Report struct {
	LessonTitle string
	XP          int
	Greens      int
	Yellows     int
	Reds        int
	TotalXP     int
	Streak      int
}

// Screen displays the end-of-lesson summary.
type Screen struct {
	report Report
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a summary screen for a finished lesson.
func New(report Report) *Screen {
	return &Screen{report: report}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Lesson complete"
}

// CapturesKeys keeps the double-pop below in charge of Esc.
func (s *Screen) CapturesKeys() bool { return true }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to lessons"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Pop both summary and session to land back on home.
			return s, tea.Sequence(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return router.PopScreenMsg{} },
			)
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	r := s.report
	var b strings.Builder

	line := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	b.WriteString("\n\n")
	line(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Lesson complete!")
	line(lipgloss.NewStyle().Foreground(theme.TextDim), r.LessonTitle)
	b.WriteString("\n")

	line(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), fmt.Sprintf("+%d XP", r.XP))
	b.WriteString("\n")

	tally := fmt.Sprintf("%s   %s   %s",
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("● %d right", r.Greens)),
		lipgloss.NewStyle().Foreground(theme.Warning).Render(fmt.Sprintf("● %d close", r.Yellows)),
		lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("● %d missed", r.Reds)))
	line(lipgloss.NewStyle(), tally)
	b.WriteString("\n")

	line(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Total: %d XP   ·   streak: %d %s", r.TotalXP, r.Streak, dayWord(r.Streak)))

	return b.String()
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

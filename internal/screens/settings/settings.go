// Package settings is the preferences screen: lesson shape, reminders,
// and notification permissions.
package settings

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edonnat/chronos/internal/notify"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/router"
	"github.com/edonnat/chronos/internal/screen"
	"github.com/edonnat/chronos/internal/ui/layout"
	"github.com/edonnat/chronos/internal/ui/theme"
)

// item identifies one adjustable row.
type item int

const (
	itemCards item = iota
	itemRecap
	itemNotifications
	itemReminderHour
	itemReminderMinute
	itemStreakReminder
	itemCount
)

// Screen lets the learner tune lesson shape and reminders. Every change
// dispatches immediately; there is no save step.
type Screen struct {
	prog     *progress.Store
	notifier notify.Notifier
	selected item
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the settings screen.
func New(prog *progress.Store, notifier notify.Notifier) *Screen {
	return &Screen{prog: prog, notifier: notifier}
}

func (s *Screen) Init() tea.Cmd {
	s.prog.Dispatch(progress.ToggleSettings{})
	return nil
}

// CapturesKeys claims the keyboard so Esc reaches this screen's own
// handler instead of the global pop.
func (s *Screen) CapturesKeys() bool { return true }

func (s *Screen) Title() string {
	return "Settings"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < itemCount-1 {
			s.selected++
		}
	case "left", "h":
		s.adjust(-1)
	case "right", "l", "enter", " ":
		s.adjust(1)
	case "esc":
		s.prog.Dispatch(progress.ToggleSettings{})
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// adjust applies a step to the selected row. Toggles flip on any step.
// Out-of-range numeric steps are dropped by the reducer, so no clamping
// happens here.
func (s *Screen) adjust(dir int) {
	cfg := s.prog.State().Settings
	var state progress.State

	switch s.selected {
	case itemCards:
		state = s.prog.Dispatch(progress.SetCardsPerLesson{N: cfg.CardsPerLesson + dir})
	case itemRecap:
		state = s.prog.Dispatch(progress.SetRecapPerCard{N: cfg.RecapPerCard + dir})
	case itemNotifications:
		state = s.prog.Dispatch(progress.SetNotificationsEnabled{Enabled: !cfg.NotificationsEnabled})
	case itemReminderHour:
		state = s.prog.Dispatch(progress.SetReminderTime{
			Hour:   (cfg.ReminderHour + 24 + dir) % 24,
			Minute: cfg.ReminderMinute,
		})
	case itemReminderMinute:
		state = s.prog.Dispatch(progress.SetReminderTime{
			Hour:   cfg.ReminderHour,
			Minute: (cfg.ReminderMinute + 60 + 15*dir) % 60,
		})
	case itemStreakReminder:
		state = s.prog.Dispatch(progress.SetStreakReminder{Enabled: !cfg.StreakReminder})
	default:
		return
	}

	// Scheduling follows preference changes immediately.
	if err := notify.Sync(context.Background(), s.notifier, state.Settings, state.CurrentStreak); err != nil {
		fmt.Fprintln(os.Stderr, "sync reminders:", err)
	}
}

func (s *Screen) View(width, height int) string {
	cfg := s.prog.State().Settings

	rows := []struct {
		label string
		value string
		note  string
	}{
		{"Study cards per lesson", fmt.Sprintf("%d", cfg.CardsPerLesson), "how many new events each lesson teaches"},
		{"Recap questions per card", fmt.Sprintf("%d", cfg.RecapPerCard), "extra review after each card"},
		{"Reminders", onOff(cfg.NotificationsEnabled), "daily practice nudges"},
		{"Reminder hour", fmt.Sprintf("%02d", cfg.ReminderHour), ""},
		{"Reminder minute", fmt.Sprintf("%02d", cfg.ReminderMinute), ""},
		{"Streak warnings", onOff(cfg.StreakReminder), "evening nudge when the streak is at risk"},
	}

	var b strings.Builder
	for i, r := range rows {
		b.WriteString(s.renderRow(item(i), r.label, r.value, r.note))
		b.WriteString("\n")
	}

	if !s.notifier.Supported() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Notifications are not available on this platform."))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *Screen) renderRow(it item, label, value, note string) string {
	cursor := "  "
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if it == s.selected {
		cursor = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ")
		labelStyle = labelStyle.Bold(true)
	}

	valueStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	line := fmt.Sprintf("%s%-28s %s", cursor, labelStyle.Render(label), valueStyle.Render("‹ "+value+" ›"))
	if note != "" && it == s.selected {
		line += "\n    " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(note)
	}
	return line
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

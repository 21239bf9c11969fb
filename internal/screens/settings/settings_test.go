package settings

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edonnat/chronos/internal/notify"
	"github.com/edonnat/chronos/internal/progress"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSettingsScreen(state progress.State) (*Screen, *progress.Store, *notify.Recorder) {
	prog := progress.NewStore(state, nil)
	rec := notify.NewRecorder(notify.PermissionGranted)
	s := New(prog, rec)
	s.Init()
	return s, prog, rec
}

func TestSettingsTitle(t *testing.T) {
	s, _, _ := testSettingsScreen(progress.DefaultState())
	if s.Title() != "Settings" {
		t.Errorf("Title = %q, want Settings", s.Title())
	}
}

func TestSettingsAdjustCardsPerLesson(t *testing.T) {
	s, prog, _ := testSettingsScreen(progress.DefaultState())

	s.Update(specialKey(tea.KeyLeft))
	if got := prog.State().Settings.CardsPerLesson; got != 2 {
		t.Errorf("cards per lesson = %d, want 2", got)
	}
	s.Update(specialKey(tea.KeyRight))
	if got := prog.State().Settings.CardsPerLesson; got != 3 {
		t.Errorf("cards per lesson = %d, want 3", got)
	}
}

func TestSettingsStreakReminderCarriesStreak(t *testing.T) {
	state := progress.DefaultState()
	state.Settings.NotificationsEnabled = true
	state.CurrentStreak = 6
	s, prog, rec := testSettingsScreen(state)

	// Down to the streak reminder row, then toggle it on.
	for i := 0; i < int(itemStreakReminder); i++ {
		s.Update(specialKey(tea.KeyDown))
	}
	s.Update(specialKey(tea.KeyRight))

	if !prog.State().Settings.StreakReminder {
		t.Fatal("expected streak reminder enabled")
	}
	var nudge *notify.Scheduled
	for i := range rec.Schedules {
		if rec.Schedules[i].Reminder == notify.ReminderStreak {
			nudge = &rec.Schedules[i]
		}
	}
	if nudge == nil {
		t.Fatal("expected a streak nudge to be scheduled")
	}
	if nudge.Streak != 6 {
		t.Errorf("scheduled streak = %d, want 6", nudge.Streak)
	}
}

func TestSettingsEscClosesPanel(t *testing.T) {
	s, prog, _ := testSettingsScreen(progress.DefaultState())
	if !prog.State().SettingsOpen {
		t.Fatal("expected settings flagged open after Init")
	}

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Error("expected a pop command on Esc")
	}
	if prog.State().SettingsOpen {
		t.Error("expected settings flagged closed after Esc")
	}
}

func TestSettingsViewNonEmpty(t *testing.T) {
	s, _, _ := testSettingsScreen(progress.DefaultState())
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}

func TestSettingsKeyHints(t *testing.T) {
	s, _, _ := testSettingsScreen(progress.DefaultState())
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

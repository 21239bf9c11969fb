package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testReport() Report {
	return Report{
		LessonTitle: "Deep Time",
		XP:          55,
		Greens:      9,
		Yellows:     2,
		Reds:        1,
		TotalXP:     320,
		Streak:      4,
	}
}

func TestSummaryTitle(t *testing.T) {
	s := New(testReport())
	if s.Title() != "Lesson complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Lesson complete")
	}
}

func TestSummaryDisplay(t *testing.T) {
	s := New(testReport())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Deep Time", "+55 XP", "9 right", "2 close", "1 missed", "320 XP"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryStreakWording(t *testing.T) {
	r := testReport()
	r.Streak = 1
	view := New(r).View(80, 24)
	if !strings.Contains(view, "1 day") || strings.Contains(view, "1 days") {
		t.Error("expected singular day wording for a 1-day streak")
	}
}

func TestSummaryNavigationEnter(t *testing.T) {
	s := New(testReport())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryNavigationEsc(t *testing.T) {
	s := New(testReport())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryKeyHints(t *testing.T) {
	s := New(testReport())
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}
}

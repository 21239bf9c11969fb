package progress

import (
	"testing"
	"time"

	"github.com/edonnat/chronos/internal/quizgen"
)

var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)

func TestCompleteLesson(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, CompleteLesson{LessonID: "deep-time"}, testNow)
	s = Reduce(s, CompleteLesson{LessonID: "deep-time"}, testNow)
	if got := s.CompletedLessons["deep-time"]; got != 2 {
		t.Errorf("completion count = %d, want 2", got)
	}
}

func TestMarkEventsSeen(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, MarkEventsSeen{EventIDs: []string{"a", "b"}}, testNow)
	s = Reduce(s, MarkEventsSeen{EventIDs: []string{"b", "c"}}, testNow)
	if len(s.SeenEvents) != 3 {
		t.Errorf("seen set has %d entries, want 3", len(s.SeenEvents))
	}
	for _, id := range []string{"a", "b", "c"} {
		if !s.SeenEvents.Has(id) {
			t.Errorf("seen set missing %q", id)
		}
	}
}

func TestUpdateEventMasteryRecomputes(t *testing.T) {
	s := DefaultState()

	steps := []struct {
		qt          quizgen.QuestionType
		score       quizgen.Grade
		wantOverall int
	}{
		{quizgen.QuestionLocation, quizgen.GradeGreen, 3},
		{quizgen.QuestionDate, quizgen.GradeYellow, 4},
		{quizgen.QuestionWhat, quizgen.GradeRed, 4},
		{quizgen.QuestionDate, quizgen.GradeGreen, 6},      // axis overwritten, not summed
		{quizgen.QuestionDescription, quizgen.GradeGreen, 9},
		{quizgen.QuestionWhat, quizgen.GradeGreen, 12},
	}
	for i, step := range steps {
		s = Reduce(s, UpdateEventMastery{EventID: "first-olympics", Type: step.qt, Score: step.score}, testNow)
		rec := s.EventMastery["first-olympics"]
		if rec.TimesReviewed != i+1 {
			t.Errorf("step %d: timesReviewed = %d, want %d", i, rec.TimesReviewed, i+1)
		}
		if rec.Overall != step.wantOverall {
			t.Errorf("step %d: overall = %d, want %d", i, rec.Overall, step.wantOverall)
		}
		if !rec.LastSeen.Equal(testNow) {
			t.Errorf("step %d: lastSeen not updated", i)
		}
	}
}

func TestUpdateEventMasteryLazyCreate(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, UpdateEventMastery{EventID: "hegira", Type: quizgen.QuestionWhat, Score: quizgen.GradeYellow}, testNow)
	rec, ok := s.EventMastery["hegira"]
	if !ok {
		t.Fatal("record not created")
	}
	if rec.Location != "" || rec.Date != "" || rec.Description != "" {
		t.Error("untouched axes should stay untested")
	}
	if rec.Overall != 1 {
		t.Errorf("overall = %d, want 1", rec.Overall)
	}
}

func TestAddXPStreakTable(t *testing.T) {
	today := testNow.Format(DateLayout)
	yday := testNow.AddDate(0, 0, -1).Format(DateLayout)
	threeDaysAgo := testNow.AddDate(0, 0, -3).Format(DateLayout)

	tests := []struct {
		name       string
		lastActive string
		prior      int
		wantStreak int
	}{
		{"never active", "", 0, 1},
		{"already today", today, 4, 4},
		{"yesterday", yday, 4, 5},
		{"three days ago", threeDaysAgo, 9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState()
			s.LastActiveDate = tt.lastActive
			s.CurrentStreak = tt.prior

			s = Reduce(s, AddXP{Amount: 10}, testNow)

			if s.CurrentStreak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", s.CurrentStreak, tt.wantStreak)
			}
			if s.LastActiveDate != today {
				t.Errorf("lastActiveDate = %q, want %q", s.LastActiveDate, today)
			}
			if s.TotalXP != 10 {
				t.Errorf("totalXP = %d, want 10", s.TotalXP)
			}
		})
	}
}

func TestAddXPRejectsNegative(t *testing.T) {
	s := DefaultState()
	s.TotalXP = 50
	next := Reduce(s, AddXP{Amount: -5}, testNow)
	if next.TotalXP != 50 || next.LastActiveDate != "" {
		t.Error("negative XP must be a no-op")
	}
}

func TestRefreshStreak(t *testing.T) {
	today := testNow.Format(DateLayout)
	yday := testNow.AddDate(0, 0, -1).Format(DateLayout)

	tests := []struct {
		name       string
		lastActive string
		prior      int
		wantStreak int
	}{
		{"never active: no-op", "", 0, 0},
		{"active today: no-op", today, 6, 6},
		{"active yesterday: preserved", yday, 6, 6},
		{"lapsed: zeroed", testNow.AddDate(0, 0, -2).Format(DateLayout), 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState()
			s.LastActiveDate = tt.lastActive
			s.CurrentStreak = tt.prior

			s = Reduce(s, RefreshStreak{}, testNow)

			if s.CurrentStreak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", s.CurrentStreak, tt.wantStreak)
			}
			if s.LastActiveDate != tt.lastActive {
				t.Error("RefreshStreak must not touch lastActiveDate")
			}
		})
	}
}

// A lapsed learner sees RefreshStreak zero the streak at app start,
// then AddXP restart it at 1. The ordering matters: RefreshStreak never
// increments.
func TestLapsedDayThenEarn(t *testing.T) {
	s := DefaultState()
	s.LastActiveDate = testNow.AddDate(0, 0, -3).Format(DateLayout)
	s.CurrentStreak = 12

	s = Reduce(s, RefreshStreak{}, testNow)
	if s.CurrentStreak != 0 {
		t.Fatalf("streak after refresh = %d, want 0", s.CurrentStreak)
	}
	s = Reduce(s, AddXP{Amount: 5}, testNow)
	if s.CurrentStreak != 1 {
		t.Errorf("streak after earn = %d, want 1", s.CurrentStreak)
	}
}

func TestToggleStar(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, ToggleStar{EventID: "moon-landing"}, testNow)
	if !s.StarredEvents.Has("moon-landing") {
		t.Error("star not set")
	}
	s = Reduce(s, ToggleStar{EventID: "moon-landing"}, testNow)
	if s.StarredEvents.Has("moon-landing") {
		t.Error("star not cleared")
	}
}

func TestSettingsBounds(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, SetCardsPerLesson{N: 2}, testNow)
	if s.Settings.CardsPerLesson != 2 {
		t.Errorf("cardsPerLesson = %d, want 2", s.Settings.CardsPerLesson)
	}
	s = Reduce(s, SetCardsPerLesson{N: 4}, testNow)
	if s.Settings.CardsPerLesson != 2 {
		t.Error("out-of-range cardsPerLesson applied")
	}
	s = Reduce(s, SetRecapPerCard{N: 0}, testNow)
	if s.Settings.RecapPerCard != 0 {
		t.Errorf("recapPerCard = %d, want 0", s.Settings.RecapPerCard)
	}
	s = Reduce(s, SetRecapPerCard{N: 3}, testNow)
	if s.Settings.RecapPerCard != 0 {
		t.Error("out-of-range recapPerCard applied")
	}
}

func TestNotificationPreferences(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, SetNotificationsEnabled{Enabled: true}, testNow)
	s = Reduce(s, SetReminderTime{Hour: 8, Minute: 45}, testNow)
	s = Reduce(s, SetStreakReminder{Enabled: true}, testNow)

	if !s.Settings.NotificationsEnabled || !s.Settings.StreakReminder {
		t.Error("flags not set")
	}
	if s.Settings.ReminderHour != 8 || s.Settings.ReminderMinute != 45 {
		t.Errorf("reminder time = %02d:%02d, want 08:45", s.Settings.ReminderHour, s.Settings.ReminderMinute)
	}

	s = Reduce(s, SetReminderTime{Hour: 24, Minute: 0}, testNow)
	if s.Settings.ReminderHour != 8 {
		t.Error("invalid hour applied")
	}
}

func TestResetIdempotence(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, CompleteLesson{LessonID: "deep-time"}, testNow)
	s = Reduce(s, AddXP{Amount: 120}, testNow)
	s = Reduce(s, ToggleStar{EventID: "big-bang"}, testNow)

	once := Reduce(s, ResetProgress{}, testNow)
	twice := Reduce(once, ResetProgress{}, testNow)

	def := DefaultState()
	for name, got := range map[string]State{"once": once, "twice": twice} {
		if got.TotalXP != def.TotalXP || got.CurrentStreak != def.CurrentStreak ||
			len(got.CompletedLessons) != 0 || len(got.StarredEvents) != 0 ||
			got.Settings != def.Settings {
			t.Errorf("%s: reset state differs from defaults", name)
		}
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := DefaultState()
	s.CompletedLessons["x"] = 1

	_ = Reduce(s, CompleteLesson{LessonID: "x"}, testNow)

	if s.CompletedLessons["x"] != 1 {
		t.Error("input state mutated")
	}
}

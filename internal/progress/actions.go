package progress

import "github.com/edonnat/chronos/internal/quizgen"

// Action is one named transition of the progress state. The closed set
// below is the only way state changes.
type Action interface {
	isAction()
}

// CompleteLesson increments the completion count for a lesson.
type CompleteLesson struct {
	LessonID string
}

// MarkEventsSeen unions event ids into the seen set.
type MarkEventsSeen struct {
	EventIDs []string
}

// UpdateEventMastery records a question outcome on one mastery axis,
// creating the record lazily on first contact.
type UpdateEventMastery struct {
	EventID string
	Type    quizgen.QuestionType
	Score   quizgen.Grade
}

// AddXP awards XP and advances the daily streak.
type AddXP struct {
	Amount int
}

// RefreshStreak re-checks the streak against the calendar. It only
// ever zeroes a lapsed streak or no-ops; AddXP is the sole incrementer.
type RefreshStreak struct{}

// ToggleStar flips an event's membership in the starred set.
type ToggleStar struct {
	EventID string
}

// ToggleSettings flips the transient settings-panel flag.
type ToggleSettings struct{}

// DismissOnboarding sets the transient onboarding flag.
type DismissOnboarding struct{}

// SetCardsPerLesson sets the study-card count (1-3); out-of-range
// values are ignored.
type SetCardsPerLesson struct {
	N int
}

// SetRecapPerCard sets the recap depth (0-2); out-of-range values are
// ignored.
type SetRecapPerCard struct {
	N int
}

// SetNotificationsEnabled records the notification preference. It has
// no side effect on actual scheduling; that is the caller's job.
type SetNotificationsEnabled struct {
	Enabled bool
}

// SetReminderTime records the daily reminder time.
type SetReminderTime struct {
	Hour   int
	Minute int
}

// SetStreakReminder records the streak-reminder preference.
type SetStreakReminder struct {
	Enabled bool
}

// ImportState replaces the state wholesale with an already-merged
// import, clearing transient flags.
type ImportState struct {
	State State
}

// ResetProgress replaces the state wholesale with defaults.
type ResetProgress struct{}

func (CompleteLesson) isAction()          {}
func (MarkEventsSeen) isAction()          {}
func (UpdateEventMastery) isAction()      {}
func (AddXP) isAction()                   {}
func (RefreshStreak) isAction()           {}
func (ToggleStar) isAction()              {}
func (ToggleSettings) isAction()          {}
func (DismissOnboarding) isAction()       {}
func (SetCardsPerLesson) isAction()       {}
func (SetRecapPerCard) isAction()         {}
func (SetNotificationsEnabled) isAction() {}
func (SetReminderTime) isAction()         {}
func (SetStreakReminder) isAction()       {}
func (ImportState) isAction()             {}
func (ResetProgress) isAction()           {}

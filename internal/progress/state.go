// Package progress owns the single authoritative learner state: lesson
// completions, per-event mastery, XP, streak, and settings. The state
// changes only through Reduce, and every change is followed by a
// best-effort persist.
package progress

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/edonnat/chronos/internal/quizgen"
)

// DateLayout is the calendar-day format used for streak accounting.
const DateLayout = "2006-01-02"

// StringSet is a set of ids persisted as a sorted JSON array.
type StringSet map[string]struct{}

func (s StringSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return json.Marshal(ids)
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	out := make(StringSet, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	*s = out
	return nil
}

func (s StringSet) clone() StringSet {
	out := make(StringSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// MasteryRecord tracks one event's per-axis grades. An axis holding ""
// is untested. Overall is derived; see OverallMastery.
type MasteryRecord struct {
	Location      quizgen.Grade `json:"location,omitempty"`
	Date          quizgen.Grade `json:"date,omitempty"`
	What          quizgen.Grade `json:"what,omitempty"`
	Description   quizgen.Grade `json:"description,omitempty"`
	TimesReviewed int           `json:"timesReviewed"`
	LastSeen      time.Time     `json:"lastSeen"`
	Overall       int           `json:"overallMastery"`
}

// Axis returns the grade stored for the given question type.
func (r MasteryRecord) Axis(qt quizgen.QuestionType) quizgen.Grade {
	switch qt {
	case quizgen.QuestionLocation:
		return r.Location
	case quizgen.QuestionDate:
		return r.Date
	case quizgen.QuestionWhat:
		return r.What
	case quizgen.QuestionDescription:
		return r.Description
	}
	return ""
}

func (r *MasteryRecord) setAxis(qt quizgen.QuestionType, g quizgen.Grade) {
	switch qt {
	case quizgen.QuestionLocation:
		r.Location = g
	case quizgen.QuestionDate:
		r.Date = g
	case quizgen.QuestionWhat:
		r.What = g
	case quizgen.QuestionDescription:
		r.Description = g
	}
}

// Settings are the learner-tunable knobs. CardsPerLesson and
// RecapPerCard shape the standard lesson flow; the notification fields
// only record preferences, scheduling itself is the notifier's job.
type Settings struct {
	CardsPerLesson       int  `json:"cardsPerLesson"` // 1-3
	RecapPerCard         int  `json:"recapPerCard"`   // 0=skip, 1=light, 2=full
	NotificationsEnabled bool `json:"notificationsEnabled"`
	ReminderHour         int  `json:"reminderHour"`
	ReminderMinute       int  `json:"reminderMinute"`
	StreakReminder       bool `json:"streakReminder"`
}

// State is the full persisted progress aggregate. The two UI flags are
// transient: they never reach storage and reset on load and import.
type State struct {
	CompletedLessons map[string]int           `json:"completedLessons"`
	EventMastery     map[string]MasteryRecord `json:"eventMastery"`
	SeenEvents       StringSet                `json:"seenEvents"`
	StarredEvents    StringSet                `json:"starredEvents"`
	TotalXP          int                      `json:"totalXP"`
	CurrentStreak    int                      `json:"currentStreak"`
	LastActiveDate   string                   `json:"lastActiveDate"` // YYYY-MM-DD, "" = never
	Settings         Settings                 `json:"settings"`

	SettingsOpen        bool `json:"-"`
	OnboardingDismissed bool `json:"-"`
}

// DefaultState returns a fresh state with default settings.
func DefaultState() State {
	return State{
		CompletedLessons: map[string]int{},
		EventMastery:     map[string]MasteryRecord{},
		SeenEvents:       StringSet{},
		StarredEvents:    StringSet{},
		Settings: Settings{
			CardsPerLesson: 3,
			RecapPerCard:   2,
			ReminderHour:   19,
		},
	}
}

// clone returns a deep copy; Reduce never mutates its input.
func (s State) clone() State {
	out := s
	out.CompletedLessons = make(map[string]int, len(s.CompletedLessons))
	for k, v := range s.CompletedLessons {
		out.CompletedLessons[k] = v
	}
	out.EventMastery = make(map[string]MasteryRecord, len(s.EventMastery))
	for k, v := range s.EventMastery {
		out.EventMastery[k] = v
	}
	out.SeenEvents = s.SeenEvents.clone()
	out.StarredEvents = s.StarredEvents.clone()
	return out
}

// Merge overlays a JSON payload onto the defaults, so fields missing
// from older exports (or added in newer app versions) fall back sanely.
// Transient flags always come back cleared.
func Merge(payload []byte) (State, error) {
	s := DefaultState()
	if err := json.Unmarshal(payload, &s); err != nil {
		return State{}, err
	}
	if s.CompletedLessons == nil {
		s.CompletedLessons = map[string]int{}
	}
	if s.EventMastery == nil {
		s.EventMastery = map[string]MasteryRecord{}
	}
	if s.SeenEvents == nil {
		s.SeenEvents = StringSet{}
	}
	if s.StarredEvents == nil {
		s.StarredEvents = StringSet{}
	}
	s.SettingsOpen = false
	s.OnboardingDismissed = false
	return s, nil
}

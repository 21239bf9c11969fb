package catalog

// Lesson groups an ordered handful of events into one study session.
// Lessons unlock strictly in order: lesson N is accessible once lesson
// N-1 has been completed at least once, and the first lesson is always
// accessible.
type Lesson struct {
	ID       string
	Number   int // 1-based ordinal
	Title    string
	Subtitle string
	Mood     string // flavor text shown on the intro card
	PeriodID string // optional link to the era the lesson opens
	EventIDs []string
	// EraLesson marks the introductory lesson whose "events" are the
	// five eras themselves rather than catalog events.
	EraLesson bool
}

// Unlocked reports whether the lesson is accessible given the map of
// lesson completion counts.
func (l Lesson) Unlocked(completions map[string]int) bool {
	if l.Number <= 1 {
		return true
	}
	prev, ok := lessonByNumber(l.Number - 1)
	if !ok {
		return true
	}
	return completions[prev.ID] > 0
}

func lessonByNumber(n int) (Lesson, bool) {
	for _, l := range seedLessons {
		if l.Number == n {
			return l, true
		}
	}
	return Lesson{}, false
}

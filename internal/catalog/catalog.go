// Package catalog holds the immutable event, lesson, and era tables and
// their lookup operations. All data is fixed at build time.
package catalog

import "fmt"

// index holds precomputed lookups over the seed tables.
type index struct {
	eventByID  map[string]*Event
	lessonByID map[string]*Lesson
	byCategory map[Category][]Event
}

var idx *index

func init() {
	idx = buildIndex()
}

func buildIndex() *index {
	ix := &index{
		eventByID:  make(map[string]*Event, len(seedEvents)),
		lessonByID: make(map[string]*Lesson, len(seedLessons)),
		byCategory: make(map[Category][]Event),
	}
	for i := range seedEvents {
		ev := &seedEvents[i]
		ix.eventByID[ev.ID] = ev
		ix.byCategory[ev.Category] = append(ix.byCategory[ev.Category], *ev)
	}
	for i := range seedLessons {
		ix.lessonByID[seedLessons[i].ID] = &seedLessons[i]
	}
	return ix
}

// GetEvent returns the event with the given id.
func GetEvent(id string) (Event, bool) {
	ev, ok := idx.eventByID[id]
	if !ok {
		return Event{}, false
	}
	return *ev, true
}

// GetEvents returns the events for the given ids, preserving the
// requested order. Unknown ids are silently dropped so a corrupted
// reference costs one row, not the whole view.
func GetEvents(ids []string) []Event {
	out := make([]Event, 0, len(ids))
	for _, id := range ids {
		if ev, ok := idx.eventByID[id]; ok {
			out = append(out, *ev)
		}
	}
	return out
}

// Events returns every event in catalog order.
func Events() []Event {
	out := make([]Event, len(seedEvents))
	copy(out, seedEvents)
	return out
}

// EventsByEra returns all events whose representative year falls inside
// the era.
func EventsByEra(era Era) []Event {
	isLast := era.ID == seedEras[len(seedEras)-1].ID
	var out []Event
	for _, ev := range seedEvents {
		if era.Contains(ev.RepresentativeYear(), isLast) {
			out = append(out, ev)
		}
	}
	return out
}

// EventsByCategory returns all events in the given category, in catalog
// order.
func EventsByCategory(c Category) []Event {
	src := idx.byCategory[c]
	out := make([]Event, len(src))
	copy(out, src)
	return out
}

// GetLesson returns the lesson with the given id.
func GetLesson(id string) (Lesson, bool) {
	l, ok := idx.lessonByID[id]
	if !ok {
		return Lesson{}, false
	}
	return *l, true
}

// Lessons returns all lessons ordered by number.
func Lessons() []Lesson {
	out := make([]Lesson, len(seedLessons))
	copy(out, seedLessons)
	return out
}

// LessonByNumber returns the lesson with the given 1-based ordinal.
func LessonByNumber(n int) (Lesson, bool) {
	return lessonByNumber(n)
}

// Validate checks the structural invariants of the seed tables. It is
// run by tests; a failure means the seed data itself is broken.
func Validate() error {
	seenEvents := make(map[string]bool, len(seedEvents))
	for _, ev := range seedEvents {
		if ev.ID == "" {
			return fmt.Errorf("event with empty id: %q", ev.Title)
		}
		if seenEvents[ev.ID] {
			return fmt.Errorf("duplicate event id %q", ev.ID)
		}
		seenEvents[ev.ID] = true
		if ev.HasEnd && ev.YearEnd < ev.Year {
			return fmt.Errorf("event %q: yearEnd %d before year %d", ev.ID, ev.YearEnd, ev.Year)
		}
		if ev.Difficulty < 1 || ev.Difficulty > 3 {
			return fmt.Errorf("event %q: difficulty %d out of range", ev.ID, ev.Difficulty)
		}
	}

	seenNumbers := make(map[int]bool, len(seedLessons))
	for _, l := range seedLessons {
		if seenNumbers[l.Number] {
			return fmt.Errorf("duplicate lesson number %d", l.Number)
		}
		seenNumbers[l.Number] = true
		for _, id := range l.EventIDs {
			if l.EraLesson {
				if _, ok := GetEra(id); !ok {
					return fmt.Errorf("lesson %q: unknown era %q", l.ID, id)
				}
				continue
			}
			if !seenEvents[id] {
				return fmt.Errorf("lesson %q: unknown event %q", l.ID, id)
			}
		}
	}
	for n := 1; n <= len(seedLessons); n++ {
		if !seenNumbers[n] {
			return fmt.Errorf("lesson numbering has a gap at %d", n)
		}
	}

	for i := 1; i < len(seedEras); i++ {
		if seedEras[i].Start != seedEras[i-1].End {
			return fmt.Errorf("era %q does not start where %q ends", seedEras[i].ID, seedEras[i-1].ID)
		}
	}
	return nil
}

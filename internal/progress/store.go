package progress

import (
	"sync"
	"time"
)

// PersistFunc receives the state after every dispatch. Implementations
// are best-effort: failures must be logged and swallowed, never
// surfaced to the dispatching UI.
type PersistFunc func(State)

// Store holds the authoritative state and funnels every change through
// the reducer. Components read a snapshot and dispatch actions; nothing
// mutates state in place.
type Store struct {
	mu      sync.Mutex
	state   State
	persist PersistFunc
	now     func() time.Time
}

// NewStore builds a store around an initial state (usually loaded from
// durable storage, or DefaultState for a fresh install). persist may be
// nil.
func NewStore(initial State, persist PersistFunc) *Store {
	return &Store{
		state:   initial,
		persist: persist,
		now:     time.Now,
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Dispatch applies an action through the reducer and persists the
// result.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a, s.now())
	next := s.state.clone()
	s.mu.Unlock()

	if s.persist != nil {
		s.persist(next)
	}
	return next
}

// SetClock overrides the store's clock for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

package store

import (
	"context"
	"time"

	"github.com/edonnat/chronos/internal/progress"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressSnapshot is a point-in-time capture of learner progress.
type ProgressSnapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	State     progress.State
}

// ProgressRepo manages learner progress snapshots. The event log is the
// audit trail; the latest snapshot is the source of truth on startup.
type ProgressRepo interface {
	// Save stores a new progress snapshot, assigning the next global
	// sequence when the caller left it zero.
	Save(ctx context.Context, snap *ProgressSnapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*ProgressSnapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID         string
	LessonID          string
	Action            string // start, end, or abandon
	QuestionsAnswered int
	XPEarned          int
	DurationSecs      int
}

// AnswerEventData captures one answered quiz question.
type AnswerEventData struct {
	SessionID  string
	EventID    string
	Type       string
	FirstGrade string
	RetryGrade string
	FreeText   bool
	Difficulty int
}

// LessonEventData captures a lesson completion.
type LessonEventData struct {
	SessionID string
	LessonID  string
	XPEarned  int
	Greens    int
	Yellows   int
	Reds      int
}

// MasteryEventData captures one per-axis mastery grade change.
type MasteryEventData struct {
	EventID string
	Axis    string
	Grade   string
	Overall int
}

// SessionRecord is a persisted session lifecycle event.
type SessionRecord struct {
	Sequence          int64
	Timestamp         time.Time
	SessionID         string
	LessonID          string
	Action            string
	QuestionsAnswered int
	XPEarned          int
	DurationSecs      int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start, end, or abandon.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records an answered quiz question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLessonEvent records a lesson completion.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// AppendMasteryEvent records a per-axis mastery change.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// AnswerAccuracy returns the first-try green rate and sample size
	// for a catalog event across all recorded answers.
	AnswerAccuracy(ctx context.Context, eventID string) (float64, int, error)

	// LatestAnswerTime returns when a catalog event was last quizzed,
	// or the zero time if never.
	LatestAnswerTime(ctx context.Context, eventID string) (time.Time, error)

	// QuerySessions returns session lifecycle records, newest first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)
}

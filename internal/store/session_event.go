package store

import (
	"context"
	"fmt"
	"time"

	"github.com/edonnat/chronos/ent"
	"github.com/edonnat/chronos/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetAction(data.Action).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetXpEarned(data.XPEarned).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			Sequence:          e.Sequence,
			Timestamp:         e.Timestamp,
			SessionID:         e.SessionID,
			LessonID:          e.LessonID,
			Action:            e.Action,
			QuestionsAnswered: e.QuestionsAnswered,
			XPEarned:          e.XpEarned,
			DurationSecs:      e.DurationSecs,
		})
	}
	return records, nil
}

// SessionDuration measures wall time between a session's start and end
// events, for the end-of-lesson summary.
func SessionDuration(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Seconds())
}

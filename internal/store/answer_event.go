package store

import (
	"context"
	"fmt"
	"time"

	"github.com/edonnat/chronos/ent"
	"github.com/edonnat/chronos/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetEventID(data.EventID).
		SetQuestionType(data.Type).
		SetFirstGrade(data.FirstGrade).
		SetFreeText(data.FreeText).
		SetDifficulty(data.Difficulty)

	if data.RetryGrade != "" {
		builder = builder.SetRetryGrade(data.RetryGrade)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerAccuracy(ctx context.Context, eventID string) (float64, int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.EventID(eventID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query answer accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	greens := 0
	for _, e := range events {
		if e.FirstGrade == "green" {
			greens++
		}
	}
	return float64(greens) / float64(len(events)), len(events), nil
}

func (r *eventRepo) LatestAnswerTime(ctx context.Context, eventID string) (time.Time, error) {
	ae, err := r.client.AnswerEvent.Query().
		Where(answerevent.EventID(eventID)).
		Order(ent.Desc(answerevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest answer time: %w", err)
	}
	return ae.Timestamp, nil
}

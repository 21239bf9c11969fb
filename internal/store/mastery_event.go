package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetEventID(data.EventID).
		SetAxis(data.Axis).
		SetGrade(data.Grade).
		SetOverall(data.Overall).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

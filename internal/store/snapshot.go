package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edonnat/chronos/ent"
	"github.com/edonnat/chronos/ent/snapshot"
	"github.com/edonnat/chronos/internal/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *progressRepo) Save(ctx context.Context, snap *ProgressSnapshot) error {
	dataMap, err := stateToMap(snap.State)
	if err != nil {
		return fmt.Errorf("marshal progress state: %w", err)
	}

	if snap.Sequence == 0 {
		seq, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		snap.Sequence = seq
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *progressRepo) Latest(ctx context.Context) (*ProgressSnapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entSnapshotToProgress(s)
}

func (r *progressRepo) Prune(ctx context.Context, keep int) error {
	// Find the threshold: the Nth most recent snapshot.
	snapshots, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// stateToMap converts a progress State to map[string]any for ent JSON
// storage.
func stateToMap(state progress.State) (map[string]any, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToProgress converts an ent Snapshot to a ProgressSnapshot.
// The stored blob is merged over defaults so snapshots written by older
// versions pick up new settings fields.
func entSnapshotToProgress(s *ent.Snapshot) (*ProgressSnapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	state, err := progress.Merge(b)
	if err != nil {
		return nil, fmt.Errorf("unmarshal progress state: %w", err)
	}
	return &ProgressSnapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		State:     state,
	}, nil
}

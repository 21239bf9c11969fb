package store

import (
	"context"
	"testing"
	"time"

	"github.com/edonnat/chronos/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	state := progress.DefaultState()
	state.TotalXP = 120
	state.CurrentStreak = 4
	state.CompletedLessons["the-five-eras"] = 1

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &ProgressSnapshot{
		Sequence:  42,
		Timestamp: now,
		State:     state,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.State.TotalXP != 120 {
		t.Errorf("totalXP = %d, want 120", snap.State.TotalXP)
	}
	if snap.State.CompletedLessons["the-five-eras"] != 1 {
		t.Error("completed lesson lost in round trip")
	}
	// Settings absent from older blobs fall back to defaults.
	if snap.State.Settings.CardsPerLesson != state.Settings.CardsPerLesson {
		t.Errorf("cardsPerLesson = %d, want %d",
			snap.State.Settings.CardsPerLesson, state.Settings.CardsPerLesson)
	}
}

func TestProgressLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		state := progress.DefaultState()
		state.TotalXP = (i + 1) * 10
		err := repo.Save(ctx, &ProgressSnapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			State:     state,
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.State.TotalXP != 30 {
		t.Errorf("totalXP = %d, want 30", snap.State.TotalXP)
	}
}

func TestProgressPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &ProgressSnapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			State:     progress.DefaultState(),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestProgressPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &ProgressSnapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			State:     progress.DefaultState(),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestProgressSaveAssignsSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &ProgressSnapshot{
		Timestamp: time.Now().UTC(),
		State:     progress.DefaultState(),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence == 0 {
		t.Error("expected a sequence to be assigned when saved with zero")
	}
}

func TestEventRepoAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		LessonID:  "deep-time",
		Action:    "start",
	})
	if err != nil {
		t.Fatalf("append session start: %v", err)
	}

	answers := []AnswerEventData{
		{SessionID: "sess-1", EventID: "big-bang", Type: "date", FirstGrade: "green", Difficulty: 1},
		{SessionID: "sess-1", EventID: "big-bang", Type: "what", FirstGrade: "red", RetryGrade: "green", Difficulty: 1},
		{SessionID: "sess-1", EventID: "first-life", Type: "location", FirstGrade: "yellow", Difficulty: 2},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:         "sess-1",
		LessonID:          "deep-time",
		Action:            "end",
		QuestionsAnswered: 3,
		XPEarned:          25,
		DurationSecs:      90,
	})
	if err != nil {
		t.Fatalf("append session end: %v", err)
	}

	acc, n, err := repo.AnswerAccuracy(ctx, "big-bang")
	if err != nil {
		t.Fatalf("answer accuracy: %v", err)
	}
	if n != 2 {
		t.Errorf("sample size = %d, want 2", n)
	}
	if acc != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", acc)
	}

	last, err := repo.LatestAnswerTime(ctx, "first-life")
	if err != nil {
		t.Fatalf("latest answer time: %v", err)
	}
	if last.IsZero() {
		t.Error("expected non-zero latest answer time")
	}

	never, err := repo.LatestAnswerTime(ctx, "moon-landing")
	if err != nil {
		t.Fatalf("latest answer time (never): %v", err)
	}
	if !never.IsZero() {
		t.Error("expected zero time for never-quizzed event")
	}

	records, err := repo.QuerySessions(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("session records = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].Action != "end" || records[1].Action != "start" {
		t.Errorf("session order = %q, %q; want end, start", records[0].Action, records[1].Action)
	}
	if records[0].XPEarned != 25 {
		t.Errorf("xpEarned = %d, want 25", records[0].XPEarned)
	}
}

func TestLessonAndMasteryEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLessonEvent(ctx, LessonEventData{
		SessionID: "sess-2",
		LessonID:  "ancient-empires",
		XPEarned:  40,
		Greens:    7,
		Yellows:   2,
	})
	if err != nil {
		t.Fatalf("append lesson event: %v", err)
	}

	err = repo.AppendMasteryEvent(ctx, MasteryEventData{
		EventID: "first-olympics",
		Axis:    "date",
		Grade:   "green",
		Overall: 6,
	})
	if err != nil {
		t.Fatalf("append mastery event: %v", err)
	}

	le, err := s.Client().LessonEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query lesson event: %v", err)
	}
	if le.XpEarned != 40 || le.Greens != 7 {
		t.Errorf("lesson event = xp %d greens %d, want 40 and 7", le.XpEarned, le.Greens)
	}

	me, err := s.Client().MasteryEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query mastery event: %v", err)
	}
	if me.Overall != 6 {
		t.Errorf("overall = %d, want 6", me.Overall)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

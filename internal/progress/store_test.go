package progress

import (
	"testing"
	"time"
)

func TestStoreDispatchPersists(t *testing.T) {
	var persisted []State
	st := NewStore(DefaultState(), func(s State) {
		persisted = append(persisted, s)
	})
	st.SetClock(func() time.Time { return testNow })

	st.Dispatch(AddXP{Amount: 10})
	st.Dispatch(CompleteLesson{LessonID: "deep-time"})

	if len(persisted) != 2 {
		t.Fatalf("persist called %d times, want 2", len(persisted))
	}
	if persisted[1].TotalXP != 10 || persisted[1].CompletedLessons["deep-time"] != 1 {
		t.Error("persisted state missing dispatched changes")
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	st := NewStore(DefaultState(), nil)
	snap := st.State()
	snap.CompletedLessons["x"] = 99

	if st.State().CompletedLessons["x"] != 0 {
		t.Error("mutating a snapshot leaked into the store")
	}
}

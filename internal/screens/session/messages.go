package session

import (
	"github.com/edonnat/chronos/internal/progress"
)

// lessonFinishedMsg is sent once the flow reaches its summary and the
// results have been dispatched to the progress store.
type lessonFinishedMsg struct {
	LessonTitle string
	XP          int
	Greens      int
	Yellows     int
	Reds        int
	State       progress.State
}

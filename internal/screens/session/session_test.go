package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/quizgen"
	"github.com/edonnat/chronos/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
	lessonEvents  []store.LessonEventData
	masteryEvents []store.MasteryEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLessonEvent(_ context.Context, data store.LessonEventData) error {
	m.lessonEvents = append(m.lessonEvents, data)
	return nil
}
func (m *mockEventRepo) AppendMasteryEvent(_ context.Context, data store.MasteryEventData) error {
	m.masteryEvents = append(m.masteryEvents, data)
	return nil
}
func (m *mockEventRepo) AnswerAccuracy(_ context.Context, _ string) (float64, int, error) {
	return 0, 0, nil
}
func (m *mockEventRepo) LatestAnswerTime(_ context.Context, _ string) (time.Time, error) {
	return time.Time{}, nil
}
func (m *mockEventRepo) QuerySessions(_ context.Context, _ store.QueryOpts) ([]store.SessionRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSessionScreen(t *testing.T) (*Screen, *mockEventRepo) {
	t.Helper()
	lesson, ok := catalog.GetLesson("deep-time")
	if !ok {
		t.Fatal("deep-time lesson missing from catalog")
	}
	events := &mockEventRepo{}
	prog := progress.NewStore(progress.DefaultState(), nil)
	s := New(lesson, prog, events, quizgen.Seeded(7))
	s.Init()
	return s, events
}

// startFirstQuestion advances past the intro cards to the first learn
// question, which is always multiple choice.
func startFirstQuestion(t *testing.T, s *Screen) {
	t.Helper()
	for i := 0; i < 10 && !s.onQuestion(); i++ {
		s.Update(specialKey(tea.KeyEnter))
	}
	if !s.onQuestion() {
		t.Fatal("never reached a question")
	}
}

// chooseOption answers the active MCQ with a correct or wrong option.
func chooseOption(t *testing.T, s *Screen, correct bool) {
	t.Helper()
	q, ok := s.std.CurrentQuestion()
	if !ok {
		t.Fatal("no active question")
	}
	for i, opt := range q.Options {
		if opt.Correct == correct {
			s.Update(keyPress(rune('a' + i)))
			return
		}
	}
	t.Fatalf("no option with correct=%v", correct)
}

func TestSessionTitle(t *testing.T) {
	s, _ := testSessionScreen(t)
	if s.Title() != "Deep Time" {
		t.Errorf("Title = %q, want %q", s.Title(), "Deep Time")
	}
}

func TestSessionStartEventAppended(t *testing.T) {
	_, events := testSessionScreen(t)
	if len(events.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(events.sessionEvents))
	}
	if events.sessionEvents[0].Action != "start" {
		t.Errorf("action = %q, want start", events.sessionEvents[0].Action)
	}
	if events.sessionEvents[0].LessonID != "deep-time" {
		t.Errorf("lesson id = %q, want deep-time", events.sessionEvents[0].LessonID)
	}
}

func TestSessionQuitConfirm(t *testing.T) {
	s, _ := testSessionScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	if !s.quitting {
		t.Error("expected quit confirmation after Esc")
	}

	s.Update(keyPress('n'))
	if s.quitting {
		t.Error("expected quit confirmation dismissed by N")
	}
}

func TestSessionQuitConfirmYes(t *testing.T) {
	s, events := testSessionScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a pop command after quit confirmation")
	}
	last := events.sessionEvents[len(events.sessionEvents)-1]
	if last.Action != "abandon" {
		t.Errorf("action = %q, want abandon", last.Action)
	}
}

func TestSessionCorrectAnswerFlow(t *testing.T) {
	s, events := testSessionScreen(t)
	startFirstQuestion(t, s)

	chooseOption(t, s, true)
	if !s.feedback {
		t.Fatal("expected feedback after submitting an answer")
	}
	if s.lastGrade != quizgen.GradeGreen {
		t.Errorf("grade = %q, want green", s.lastGrade)
	}

	// The answer is only fed to the flow and the log once the learner
	// moves past the feedback.
	if len(events.answerEvents) != 0 {
		t.Fatalf("answer events before dismissal = %d, want 0", len(events.answerEvents))
	}
	s.Update(keyPress(' '))
	if len(events.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answerEvents))
	}
	if events.answerEvents[0].FirstGrade != string(quizgen.GradeGreen) {
		t.Errorf("first grade = %q, want green", events.answerEvents[0].FirstGrade)
	}
	if len(s.std.Results) != 1 {
		t.Errorf("flow results = %d, want 1", len(s.std.Results))
	}
}

func TestSessionWrongAnswerGetsOneRetry(t *testing.T) {
	s, events := testSessionScreen(t)
	startFirstQuestion(t, s)

	chooseOption(t, s, false)
	if !s.retrying {
		t.Fatal("expected a retry after a red first answer")
	}
	if len(events.answerEvents) != 0 {
		t.Fatal("no answer should be recorded before the retry resolves")
	}

	// Dismiss feedback, same question again, miss again.
	s.Update(keyPress(' '))
	if !s.onQuestion() {
		t.Fatal("expected the same question to still be active")
	}
	chooseOption(t, s, false)
	s.Update(keyPress(' '))

	if len(events.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answerEvents))
	}
	got := events.answerEvents[0]
	if got.FirstGrade != string(quizgen.GradeRed) || got.RetryGrade != string(quizgen.GradeRed) {
		t.Errorf("grades = %q/%q, want red/red", got.FirstGrade, got.RetryGrade)
	}
}

func TestSessionKeyHints(t *testing.T) {
	s, _ := testSessionScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
	startFirstQuestion(t, s)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints on a question")
	}
}

func TestLogAppendReportsFailures(t *testing.T) {
	var buf bytes.Buffer
	prev := errOut
	errOut = &buf
	defer func() { errOut = prev }()

	logAppend("answer", errors.New("disk full"))
	if !strings.Contains(buf.String(), "append answer event") {
		t.Errorf("log output = %q, want an append failure line", buf.String())
	}

	buf.Reset()
	logAppend("answer", nil)
	if buf.Len() != 0 {
		t.Errorf("log output = %q, want nothing on success", buf.String())
	}
}

func TestSessionViewNonEmpty(t *testing.T) {
	s, _ := testSessionScreen(t)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty intro view")
	}
	startFirstQuestion(t, s)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}

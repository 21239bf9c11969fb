package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/flow"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/quizgen"
	"github.com/edonnat/chronos/internal/router"
	"github.com/edonnat/chronos/internal/screen"
	"github.com/edonnat/chronos/internal/screens/summary"
	"github.com/edonnat/chronos/internal/store"
	"github.com/edonnat/chronos/internal/ui/components"
	"github.com/edonnat/chronos/internal/ui/layout"
	"github.com/edonnat/chronos/internal/ui/theme"
)

// Screen drives one lesson flow, standard or eras, from intro to
// summary. The flow machines own the lesson logic; this screen owns
// input, rendering, and persistence.
type Screen struct {
	lesson  catalog.Lesson
	prog    *progress.Store
	events  store.EventRepo
	started time.Time

	std  *flow.Standard
	eras *flow.Eras

	mc      components.MultiChoice
	year    components.YearInput
	board   components.MatchBoard
	answers int

	// feedback pauses after a grade until a key is pressed; the
	// answer is only fed to the flow once the learner moves on, so
	// the answered question stays on screen under the banner.
	feedback    bool
	lastGrade   quizgen.Grade
	pending     flow.Answer
	pendingFree bool
	havePending bool
	retrying    bool
	quitting    bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the screen for a standard lesson.
func New(lesson catalog.Lesson, prog *progress.Store, events store.EventRepo, rng quizgen.Rand) *Screen {
	s := &Screen{
		lesson:  lesson,
		prog:    prog,
		events:  events,
		started: time.Now(),
	}
	if lesson.EraLesson {
		s.eras = flow.NewEras(rng)
		s.board = components.NewMatchBoard(s.eras.Matching)
	} else {
		s.std = flow.NewStandard(lesson, prog.State().Settings, rng)
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	s.appendSession("start", 0, 0)
	return nil
}

// CapturesKeys keeps global navigation keys out of an active lesson.
func (s *Screen) CapturesKeys() bool { return true }

func (s *Screen) Title() string {
	return s.lesson.Title
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.quitting {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave lesson"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.feedback {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	if s.onMatching() {
		return []layout.KeyHint{
			{Key: "Arrows", Description: "Move"},
			{Key: "Enter", Description: "Pair"},
			{Key: "C", Description: "Check"},
		}
	}
	if s.onFreeText() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "BCE/CE"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	if s.onQuestion() {
		return []layout.KeyHint{
			{Key: "↑↓/A-D", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonFinishedMsg:
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: summary.New(summary.Report{
				LessonTitle: msg.LessonTitle,
				XP:          msg.XP,
				Greens:      msg.Greens,
				Yellows:     msg.Yellows,
				Reds:        msg.Reds,
				TotalXP:     msg.State.TotalXP,
				Streak:      msg.State.CurrentStreak,
			})}
		}
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.onFreeText() && !s.feedback && !s.quitting {
		var cmd tea.Cmd
		s.year, cmd = s.year.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitting {
		switch key {
		case "y", "Y":
			s.appendSession("abandon", s.answers, 0)
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitting = false
		}
		return s, nil
	}

	if key == "esc" {
		s.quitting = true
		return s, nil
	}

	if s.feedback {
		s.feedback = false
		if s.retrying {
			// Red first answer: same question again, one more chance.
			s.mc.Reset()
			return s, nil
		}
		if s.havePending {
			s.havePending = false
			s.recordAnswer(s.pending, s.pendingFree)
		}
		return s.maybeFinish()
	}

	switch {
	case s.onMatching():
		if key == "c" || key == "C" {
			if s.eras.Matching.Complete() {
				s.eras.SubmitMatching()
				return s.maybeFinish()
			}
			return s, nil
		}
		s.board = s.board.Update(msg)
		return s, nil

	case s.onFreeText():
		if key == "enter" {
			return s.submitYear()
		}
		var cmd tea.Cmd
		s.year, cmd = s.year.Update(msg)
		return s, cmd

	case s.onQuestion():
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.gradeChoice()
		}
		return s, cmd

	default:
		if key == "enter" || key == " " || key == "space" {
			s.advance()
			return s.maybeFinish()
		}
	}
	return s, nil
}

// advance moves the flow past a non-question phase and arms the next
// question's component.
func (s *Screen) advance() {
	if s.std != nil {
		s.std.Advance()
	} else {
		s.eras.Advance()
	}
	s.armQuestion()
}

// armQuestion prepares the input component for the now-current
// question, if any.
func (s *Screen) armQuestion() {
	if s.std != nil {
		q, ok := s.std.CurrentQuestion()
		if !ok {
			return
		}
		if q.FreeText {
			s.year = components.NewYearInput()
		} else {
			s.mc = components.NewMultiChoice(s.prompt(q), q.Options)
		}
		return
	}
	if q, ok := s.eras.CurrentQuestion(); ok {
		prompt := "When was the " + s.eraName(q.EraID) + "?"
		if q.Name {
			prompt = "Which era runs " + s.eraLabel(q.EraID) + "?"
		}
		s.mc = components.NewMultiChoice(prompt, q.Options)
	}
}

// gradeChoice scores a submitted MCQ pick. Wrong answers get exactly
// one retry; the first grade is what mastery remembers.
func (s *Screen) gradeChoice() (screen.Screen, tea.Cmd) {
	grade := quizgen.GradeRed
	if s.mc.IsCorrect() {
		grade = quizgen.GradeGreen
	}

	if grade == quizgen.GradeRed && !s.retrying {
		s.retrying = true
		s.lastGrade = grade
		s.feedback = true
		return s, nil
	}

	if s.retrying {
		s.retrying = false
		s.pending = flow.Answer{First: quizgen.GradeRed, Retry: grade}
	} else {
		s.pending = flow.Answer{First: grade}
	}
	s.pendingFree = false
	s.havePending = true
	s.lastGrade = grade
	s.feedback = true
	return s, nil
}

func (s *Screen) submitYear() (screen.Screen, tea.Cmd) {
	if s.year.Empty() {
		return s, nil
	}
	input, err := s.year.Year()
	if err != nil {
		return s, nil
	}

	q, _ := s.std.CurrentQuestion()
	ev, _ := catalog.GetEvent(q.EventID)
	grade := quizgen.ScoreDateAnswer(ev, int64(input))
	s.year.Submit(theme.GradeColor(grade))

	s.pending = flow.Answer{First: grade}
	s.pendingFree = true
	s.havePending = true
	s.lastGrade = grade
	s.feedback = true
	return s, nil
}

// recordAnswer feeds the grade to the flow and the event log.
func (s *Screen) recordAnswer(ans flow.Answer, freeText bool) {
	s.answers++

	if s.std != nil {
		q, _ := s.std.CurrentQuestion()
		logAppend("answer", s.events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:  s.std.ID,
			EventID:    q.EventID,
			Type:       string(q.Type),
			FirstGrade: string(ans.First),
			RetryGrade: string(ans.Retry),
			FreeText:   freeText,
			Difficulty: eventDifficulty(q.EventID),
		}))
		s.std.SubmitAnswer(ans)
		return
	}

	final := ans.First
	if ans.Retry != "" {
		final = ans.Retry
	}
	s.eras.SubmitAnswer(final)
}

// maybeFinish arms the next question, or closes out the lesson when
// the flow reached its summary.
func (s *Screen) maybeFinish() (screen.Screen, tea.Cmd) {
	s.armQuestion()

	if s.std != nil && s.std.Phase == flow.PhaseSummary {
		return s, s.finishStandard()
	}
	if s.eras != nil && s.eras.Phase == flow.ErasSummary {
		return s, s.finishEras()
	}
	return s, nil
}

func (s *Screen) finishStandard() tea.Cmd {
	xp, eventIDs, ok := s.std.Summary()
	if !ok {
		return nil
	}

	greens, yellows, reds := tallyResults(s.std.Results)

	// Mastery first, then completion and XP; AddXP owns the streak.
	for _, r := range s.std.Results {
		final := r.FirstScore
		if r.RetryScore != "" {
			final = r.RetryScore
		}
		state := s.prog.Dispatch(progress.UpdateEventMastery{
			EventID: r.EventID,
			Type:    r.Type,
			Score:   final,
		})
		logAppend("mastery", s.events.AppendMasteryEvent(context.Background(), store.MasteryEventData{
			EventID: r.EventID,
			Axis:    string(r.Type),
			Grade:   string(final),
			Overall: state.EventMastery[r.EventID].Overall,
		}))
	}
	s.prog.Dispatch(progress.MarkEventsSeen{EventIDs: eventIDs})
	s.prog.Dispatch(progress.CompleteLesson{LessonID: s.lesson.ID})
	state := s.prog.Dispatch(progress.AddXP{Amount: xp})

	logAppend("lesson", s.events.AppendLessonEvent(context.Background(), store.LessonEventData{
		SessionID: s.std.ID,
		LessonID:  s.lesson.ID,
		XPEarned:  xp,
		Greens:    greens,
		Yellows:   yellows,
		Reds:      reds,
	}))
	s.appendSession("end", s.answers, xp)

	title := s.lesson.Title
	return func() tea.Msg {
		return lessonFinishedMsg{
			LessonTitle: title,
			XP:          xp,
			Greens:      greens,
			Yellows:     yellows,
			Reds:        reds,
			State:       state,
		}
	}
}

func (s *Screen) finishEras() tea.Cmd {
	xp, ok := s.eras.Summary()
	if !ok {
		return nil
	}

	s.prog.Dispatch(progress.CompleteLesson{LessonID: s.lesson.ID})
	state := s.prog.Dispatch(progress.AddXP{Amount: xp})

	reds := s.eras.QuestionCount() - s.eras.Greens - s.eras.Yellows
	logAppend("lesson", s.events.AppendLessonEvent(context.Background(), store.LessonEventData{
		SessionID: s.eras.ID,
		LessonID:  s.lesson.ID,
		XPEarned:  xp,
		Greens:    s.eras.Greens,
		Yellows:   s.eras.Yellows,
		Reds:      reds,
	}))
	s.appendSession("end", s.answers, xp)

	title := s.lesson.Title
	greens, yellows := s.eras.Greens, s.eras.Yellows
	return func() tea.Msg {
		return lessonFinishedMsg{
			LessonTitle: title,
			XP:          xp,
			Greens:      greens,
			Yellows:     yellows,
			Reds:        reds,
			State:       state,
		}
	}
}

func (s *Screen) appendSession(action string, answered, xp int) {
	id := ""
	if s.std != nil {
		id = s.std.ID
	} else if s.eras != nil {
		id = s.eras.ID
	}
	logAppend("session", s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:         id,
		LessonID:          s.lesson.ID,
		Action:            action,
		QuestionsAnswered: answered,
		XPEarned:          xp,
		DurationSecs:      store.SessionDuration(s.started, time.Now()),
	}))
}

var errOut io.Writer = os.Stderr

// logAppend reports a failed best-effort event-log write. The lesson
// keeps going either way.
func logAppend(kind string, err error) {
	if err != nil {
		fmt.Fprintln(errOut, "append "+kind+" event:", err)
	}
}

func (s *Screen) onQuestion() bool {
	if s.std != nil {
		_, ok := s.std.CurrentQuestion()
		return ok
	}
	_, ok := s.eras.CurrentQuestion()
	return ok
}

func (s *Screen) onFreeText() bool {
	if s.std == nil {
		return false
	}
	q, ok := s.std.CurrentQuestion()
	return ok && q.FreeText
}

func (s *Screen) onMatching() bool {
	return s.eras != nil && s.eras.OnMatching()
}

func (s *Screen) prompt(q flow.Question) string {
	ev, _ := catalog.GetEvent(q.EventID)
	switch q.Type {
	case quizgen.QuestionLocation:
		return "Where did this happen: " + ev.Title + "?"
	case quizgen.QuestionDate:
		return "When did this happen: " + ev.Title + "?"
	case quizgen.QuestionWhat:
		return "What happened in " + quizgen.FormatYear(ev.RepresentativeYear()) +
			" in " + ev.Location.Region + "?"
	case quizgen.QuestionDescription:
		return "Which of these describes " + ev.Title + "?"
	}
	return ev.Title
}

func (s *Screen) eraName(id string) string {
	if era, ok := catalog.GetEra(id); ok {
		return era.Name
	}
	return id
}

func (s *Screen) eraLabel(id string) string {
	if era, ok := catalog.GetEra(id); ok {
		return era.Label
	}
	return id
}

func eventDifficulty(id string) int {
	if ev, ok := catalog.GetEvent(id); ok {
		return ev.Difficulty
	}
	return 1
}

func tallyResults(results []progress.QuestionResult) (greens, yellows, reds int) {
	for _, r := range results {
		final := r.FirstScore
		if r.RetryScore != "" {
			final = r.RetryScore
		}
		switch final {
		case quizgen.GradeGreen:
			greens++
		case quizgen.GradeYellow:
			yellows++
		default:
			reds++
		}
	}
	return greens, yellows, reds
}

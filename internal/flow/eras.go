package flow

import (
	"github.com/google/uuid"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/quizgen"
)

// ErasPhase is the state tag of the introductory eras lesson flow.
type ErasPhase string

const (
	ErasIntro   ErasPhase = "intro"
	ErasLearn   ErasPhase = "learn"
	ErasQuiz    ErasPhase = "quiz"
	ErasSummary ErasPhase = "summary"
)

// EraQuestion is one MCQ of the eras quiz round.
type EraQuestion struct {
	EraID   string
	Name    bool // true: "what is this era called"; false: date-range MCQ
	Options []quizgen.Option
}

// Eras is the state machine for the introductory lesson: five period
// cards, then a shuffled quiz of two questions per era capped by one
// matching question over all five.
type Eras struct {
	ID    string
	Phase ErasPhase

	LearnIndex int
	QuizIndex  int

	Questions []EraQuestion
	Matching  *Matching

	Greens  int
	Yellows int

	summaryLatch bool
}

// NewEras plans the eras lesson flow.
func NewEras(rng quizgen.Rand) *Eras {
	var qs []EraQuestion
	for _, era := range catalog.Eras() {
		qs = append(qs, EraQuestion{EraID: era.ID, Options: quizgen.EraRangeOptions(era, rng)})
		qs = append(qs, EraQuestion{EraID: era.ID, Name: true, Options: quizgen.EraNameOptions(era, rng)})
	}
	rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })

	return &Eras{
		ID:        uuid.NewString(),
		Phase:     ErasIntro,
		Questions: qs,
		Matching:  NewMatching(rng),
	}
}

// QuestionCount is the full quiz length: the MCQs plus the matching
// question.
func (e *Eras) QuestionCount() int { return len(e.Questions) + 1 }

// OnMatching reports whether the quiz has reached the trailing
// matching question.
func (e *Eras) OnMatching() bool {
	return e.Phase == ErasQuiz && e.QuizIndex >= len(e.Questions)
}

// CurrentQuestion returns the active MCQ; false once the quiz reaches
// the matching question.
func (e *Eras) CurrentQuestion() (EraQuestion, bool) {
	if e.Phase != ErasQuiz || e.OnMatching() {
		return EraQuestion{}, false
	}
	return e.Questions[e.QuizIndex], true
}

// CurrentEra returns the era card for the learn phase.
func (e *Eras) CurrentEra() (catalog.Era, bool) {
	if e.Phase != ErasLearn {
		return catalog.Era{}, false
	}
	eras := catalog.Eras()
	if e.LearnIndex >= len(eras) {
		return catalog.Era{}, false
	}
	return eras[e.LearnIndex], true
}

// Advance moves past the intro or the current learn card.
func (e *Eras) Advance() {
	switch e.Phase {
	case ErasIntro:
		e.Phase = ErasLearn
	case ErasLearn:
		e.LearnIndex++
		if e.LearnIndex >= len(catalog.Eras()) {
			e.Phase = ErasQuiz
			e.QuizIndex = 0
		}
	}
}

// SubmitAnswer records the grade of the active MCQ and advances.
func (e *Eras) SubmitAnswer(g quizgen.Grade) {
	if _, ok := e.CurrentQuestion(); !ok {
		return
	}
	e.tally(g)
	e.QuizIndex++
}

// SubmitMatching scores the matching question and completes the quiz.
func (e *Eras) SubmitMatching() {
	if !e.OnMatching() {
		return
	}
	_, g := e.Matching.Check()
	e.tally(g)
	e.Phase = ErasSummary
}

func (e *Eras) tally(g quizgen.Grade) {
	switch g {
	case quizgen.GradeGreen:
		e.Greens++
	case quizgen.GradeYellow:
		e.Yellows++
	}
}

// Summary yields the flat-formula XP exactly once per flow instance.
func (e *Eras) Summary() (xp int, ok bool) {
	if e.Phase != ErasSummary || e.summaryLatch {
		return 0, false
	}
	e.summaryLatch = true
	return progress.EraLessonXP(e.Greens, e.Yellows), true
}

package flow

import (
	"github.com/google/uuid"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/quizgen"
)

// Phase is the state tag of the standard lesson flow.
type Phase string

const (
	PhaseIntro           Phase = "intro"
	PhasePeriodIntro     Phase = "period-intro"
	PhaseLearnCard       Phase = "learn-card"
	PhaseLearnQuiz       Phase = "learn-quiz"
	PhaseRecapTransition Phase = "recap-transition"
	PhaseRecap           Phase = "recap"
	PhaseFinalReview     Phase = "final-review"
	PhaseSummary         Phase = "summary"
)

// questionsPerCard is how many of the four axes each card exercises:
// two in the learn phase, one held back for recap, one discarded.
const questionsPerCard = 3

// Standard is the state machine for a regular lesson: study cards,
// per-card quizzes, a recap round, an optional final review of weak
// cards, and a summary. All question sets are prepared up front so
// transitions stay pure.
type Standard struct {
	ID     string
	Lesson catalog.Lesson
	Cards  []catalog.Event
	Phase  Phase

	CardIndex   int
	QuizIndex   int
	RecapIndex  int
	ReviewIndex int

	learn   [][]Question // two learn questions per card
	recap   []Question   // shuffled recap round
	Results []progress.QuestionResult

	Review []catalog.Event // cards scoring non-green, first-occurrence order

	recapPerCard int
	summaryLatch bool
}

// NewStandard plans a lesson flow from the lesson, the learner's
// settings, and a randomness source. Card count follows CardsPerLesson;
// recap depth follows RecapPerCard.
func NewStandard(lesson catalog.Lesson, settings progress.Settings, rng quizgen.Rand) *Standard {
	events := catalog.GetEvents(lesson.EventIDs)
	n := settings.CardsPerLesson
	if n < 1 || n > len(events) {
		n = len(events)
	}
	cards := events[:n]

	s := &Standard{
		ID:           uuid.NewString(),
		Lesson:       lesson,
		Cards:        cards,
		Phase:        PhaseIntro,
		recapPerCard: settings.RecapPerCard,
	}

	// Per card: drop one of the four axes at random, put two of the
	// survivors in the learn phase and hold one for recap.
	var recap []Question
	for _, ev := range cards {
		axes := quizgen.AllQuestionTypes()
		rng.Shuffle(len(axes), func(i, j int) { axes[i], axes[j] = axes[j], axes[i] })
		kept := axes[:questionsPerCard]

		s.learn = append(s.learn, []Question{
			buildQuestion(ev, kept[0], lesson.EventIDs, rng),
			buildQuestion(ev, kept[1], lesson.EventIDs, rng),
		})

		switch s.recapPerCard {
		case 1:
			// Light recap: an independent coin flip per card picks MCQ
			// on the held axis or a free-text date entry.
			if rng.IntN(2) == 0 {
				recap = append(recap, buildQuestion(ev, kept[2], lesson.EventIDs, rng))
			} else {
				recap = append(recap, freeDateQuestion(ev))
			}
		case 2:
			// Full recap: held-axis MCQ plus a free-text date entry.
			recap = append(recap, buildQuestion(ev, kept[2], lesson.EventIDs, rng))
			recap = append(recap, freeDateQuestion(ev))
		}
	}
	rng.Shuffle(len(recap), func(i, j int) { recap[i], recap[j] = recap[j], recap[i] })
	s.recap = recap

	return s
}

// CurrentCard returns the study card for the active phase.
func (s *Standard) CurrentCard() (catalog.Event, bool) {
	switch s.Phase {
	case PhaseLearnCard, PhaseLearnQuiz:
		if s.CardIndex < len(s.Cards) {
			return s.Cards[s.CardIndex], true
		}
	case PhaseFinalReview:
		if s.ReviewIndex < len(s.Review) {
			return s.Review[s.ReviewIndex], true
		}
	}
	return catalog.Event{}, false
}

// CurrentQuestion returns the active quiz question, if the phase has
// one.
func (s *Standard) CurrentQuestion() (Question, bool) {
	switch s.Phase {
	case PhaseLearnQuiz:
		qs := s.learn[s.CardIndex]
		if s.QuizIndex < len(qs) {
			return qs[s.QuizIndex], true
		}
	case PhaseRecap:
		if s.RecapIndex < len(s.recap) {
			return s.recap[s.RecapIndex], true
		}
	}
	return Question{}, false
}

// RecapLength reports how many recap questions the flow planned.
func (s *Standard) RecapLength() int { return len(s.recap) }

// Advance moves past a non-question phase: intro, period intro, study
// card, recap transition, or one final-review card.
func (s *Standard) Advance() {
	switch s.Phase {
	case PhaseIntro:
		if s.Lesson.PeriodID != "" {
			s.Phase = PhasePeriodIntro
			return
		}
		s.Phase = PhaseLearnCard
	case PhasePeriodIntro:
		s.Phase = PhaseLearnCard
	case PhaseLearnCard:
		s.Phase = PhaseLearnQuiz
		s.QuizIndex = 0
	case PhaseRecapTransition:
		s.Phase = PhaseRecap
		s.RecapIndex = 0
	case PhaseFinalReview:
		s.ReviewIndex++
		if s.ReviewIndex >= len(s.Review) {
			s.Phase = PhaseSummary
		}
	}
}

// SubmitAnswer records the outcome of the active question and advances
// the machine. It is a no-op outside question phases.
func (s *Standard) SubmitAnswer(ans Answer) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return
	}

	difficulty := 1
	if ev, found := catalog.GetEvent(q.EventID); found {
		difficulty = ev.Difficulty
	}
	s.Results = append(s.Results, progress.QuestionResult{
		EventID:    q.EventID,
		Type:       q.Type,
		FirstScore: ans.First,
		RetryScore: ans.Retry,
		Difficulty: difficulty,
	})

	switch s.Phase {
	case PhaseLearnQuiz:
		s.QuizIndex++
		if s.QuizIndex < len(s.learn[s.CardIndex]) {
			return
		}
		s.CardIndex++
		if s.CardIndex < len(s.Cards) {
			s.Phase = PhaseLearnCard
			return
		}
		if len(s.recap) == 0 {
			s.finish()
			return
		}
		s.Phase = PhaseRecapTransition

	case PhaseRecap:
		s.RecapIndex++
		if s.RecapIndex >= len(s.recap) {
			s.finish()
		}
	}
}

// finish routes to the final review when any result scored non-green,
// otherwise straight to the summary.
func (s *Standard) finish() {
	s.Review = s.reviewCards()
	if len(s.Review) > 0 {
		s.Phase = PhaseFinalReview
		s.ReviewIndex = 0
		return
	}
	s.Phase = PhaseSummary
}

// reviewCards collects the events that scored non-green on any
// question, each once, ordered by first occurrence.
func (s *Standard) reviewCards() []catalog.Event {
	seen := make(map[string]bool)
	var out []catalog.Event
	for _, r := range s.Results {
		final := r.FirstScore
		if r.RetryScore != "" {
			final = r.RetryScore
		}
		if final == quizgen.GradeGreen || seen[r.EventID] {
			continue
		}
		seen[r.EventID] = true
		if ev, ok := catalog.GetEvent(r.EventID); ok {
			out = append(out, ev)
		}
	}
	return out
}

// Summary yields the XP earned and the card event ids exactly once per
// flow instance; the one-shot latch keeps a re-rendering summary screen
// from dispatching completion twice.
func (s *Standard) Summary() (xp int, eventIDs []string, ok bool) {
	if s.Phase != PhaseSummary || s.summaryLatch {
		return 0, nil, false
	}
	s.summaryLatch = true
	ids := make([]string, len(s.Cards))
	for i, ev := range s.Cards {
		ids[i] = ev.ID
	}
	return progress.CalculateXP(s.Results), ids, true
}

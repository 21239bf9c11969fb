package flow

import (
	"testing"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/quizgen"
)

func testLesson(t *testing.T) catalog.Lesson {
	t.Helper()
	lesson, ok := catalog.GetLesson("deep-time")
	if !ok {
		t.Fatal("deep-time missing")
	}
	return lesson
}

func settings(cards, recap int) progress.Settings {
	return progress.Settings{CardsPerLesson: cards, RecapPerCard: recap}
}

// answerAll drives the flow to completion, answering every question
// with the given grade.
func answerAll(s *Standard, g quizgen.Grade) {
	for i := 0; i < 200; i++ {
		switch s.Phase {
		case PhaseSummary:
			return
		case PhaseLearnQuiz, PhaseRecap:
			s.SubmitAnswer(Answer{First: g})
		default:
			s.Advance()
		}
	}
}

func TestStandardHappyPath(t *testing.T) {
	s := NewStandard(testLesson(t), settings(3, 2), quizgen.Seeded(1))

	if s.Phase != PhaseIntro {
		t.Fatalf("initial phase = %q", s.Phase)
	}
	if len(s.Cards) != 3 {
		t.Fatalf("cards = %d, want 3", len(s.Cards))
	}
	// Full recap: one MCQ plus one date entry per card.
	if got := s.RecapLength(); got != 6 {
		t.Fatalf("recap length = %d, want 6", got)
	}

	s.Advance() // intro -> period intro (deep-time opens prehistory)
	if s.Phase != PhasePeriodIntro {
		t.Fatalf("phase = %q, want period intro", s.Phase)
	}

	answerAll(s, quizgen.GradeGreen)

	if s.Phase != PhaseSummary {
		t.Fatalf("phase = %q, want summary", s.Phase)
	}
	// 2 learn per card + 6 recap = 12 results.
	if len(s.Results) != 12 {
		t.Errorf("results = %d, want 12", len(s.Results))
	}
	if len(s.Review) != 0 {
		t.Errorf("all-green run entered final review")
	}
}

func TestStandardSkipsPeriodIntro(t *testing.T) {
	lesson, ok := catalog.GetLesson("classical-greece") // no period link
	if !ok {
		t.Fatal("classical-greece missing")
	}
	s := NewStandard(lesson, settings(2, 2), quizgen.Seeded(2))
	s.Advance()
	if s.Phase != PhaseLearnCard {
		t.Errorf("phase = %q, want learn card", s.Phase)
	}
}

func TestStandardRecapSkip(t *testing.T) {
	s := NewStandard(testLesson(t), settings(2, 0), quizgen.Seeded(3))
	if got := s.RecapLength(); got != 0 {
		t.Fatalf("recap length = %d, want 0", got)
	}

	answerAll(s, quizgen.GradeGreen)

	if s.Phase != PhaseSummary {
		t.Errorf("phase = %q, want summary (recap skipped)", s.Phase)
	}
	if len(s.Results) != 4 {
		t.Errorf("results = %d, want 4 (learn only)", len(s.Results))
	}
}

func TestStandardLightRecapLength(t *testing.T) {
	s := NewStandard(testLesson(t), settings(3, 1), quizgen.Seeded(4))
	if got := s.RecapLength(); got != 3 {
		t.Errorf("light recap length = %d, want 3 (one per card)", got)
	}
}

func TestStandardFinalReview(t *testing.T) {
	s := NewStandard(testLesson(t), settings(2, 0), quizgen.Seeded(5))

	for s.Phase != PhaseFinalReview && s.Phase != PhaseSummary {
		if _, ok := s.CurrentQuestion(); ok {
			s.SubmitAnswer(Answer{First: quizgen.GradeRed})
			continue
		}
		s.Advance()
	}

	if s.Phase != PhaseFinalReview {
		t.Fatalf("phase = %q, want final review", s.Phase)
	}
	// Both cards scored red; each appears once, first-occurrence order.
	if len(s.Review) != 2 {
		t.Fatalf("review cards = %d, want 2", len(s.Review))
	}
	if s.Review[0].ID != s.Cards[0].ID || s.Review[1].ID != s.Cards[1].ID {
		t.Error("review cards out of first-occurrence order")
	}

	s.Advance()
	s.Advance()
	if s.Phase != PhaseSummary {
		t.Errorf("phase = %q, want summary after review", s.Phase)
	}
}

func TestStandardRetryCorrectedSkipsReview(t *testing.T) {
	s := NewStandard(testLesson(t), settings(1, 0), quizgen.Seeded(6))

	for s.Phase != PhaseSummary && s.Phase != PhaseFinalReview {
		if _, ok := s.CurrentQuestion(); ok {
			s.SubmitAnswer(Answer{First: quizgen.GradeRed, Retry: quizgen.GradeGreen})
			continue
		}
		s.Advance()
	}

	// A red corrected on retry counts as green for review purposes.
	if s.Phase != PhaseSummary {
		t.Errorf("phase = %q, want summary", s.Phase)
	}
}

func TestSummaryLatchFiresOnce(t *testing.T) {
	s := NewStandard(testLesson(t), settings(1, 0), quizgen.Seeded(7))
	answerAll(s, quizgen.GradeGreen)

	xp, ids, ok := s.Summary()
	if !ok {
		t.Fatal("first summary call should fire")
	}
	if xp <= 0 {
		t.Errorf("xp = %d, want > 0", xp)
	}
	if len(ids) != 1 {
		t.Errorf("event ids = %d, want 1", len(ids))
	}

	if _, _, again := s.Summary(); again {
		t.Error("summary fired twice")
	}
}

func TestSummaryXPMatchesCalculation(t *testing.T) {
	s := NewStandard(testLesson(t), settings(2, 0), quizgen.Seeded(8))
	answerAll(s, quizgen.GradeYellow)

	want := progress.CalculateXP(s.Results)
	xp, _, ok := s.Summary()
	if !ok || xp != want {
		t.Errorf("xp = %d, want %d", xp, want)
	}
}

func TestSummaryNotAvailableEarly(t *testing.T) {
	s := NewStandard(testLesson(t), settings(2, 2), quizgen.Seeded(9))
	if _, _, ok := s.Summary(); ok {
		t.Error("summary available before the flow reached it")
	}
}

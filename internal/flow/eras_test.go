package flow

import (
	"testing"

	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/quizgen"
)

func TestErasFlowWalk(t *testing.T) {
	e := NewEras(quizgen.Seeded(1))

	if e.Phase != ErasIntro {
		t.Fatalf("initial phase = %q", e.Phase)
	}
	if got := e.QuestionCount(); got != 11 {
		t.Fatalf("question count = %d, want 11", got)
	}

	e.Advance() // intro -> learn
	for i := 0; i < 5; i++ {
		era, ok := e.CurrentEra()
		if !ok {
			t.Fatalf("learn card %d missing", i)
		}
		if era.ID == "" {
			t.Fatalf("learn card %d has empty era", i)
		}
		e.Advance()
	}
	if e.Phase != ErasQuiz {
		t.Fatalf("phase after learn = %q, want quiz", e.Phase)
	}

	for i := 0; i < 10; i++ {
		q, ok := e.CurrentQuestion()
		if !ok {
			t.Fatalf("question %d missing", i)
		}
		correct := 0
		for _, o := range q.Options {
			if o.Correct {
				correct++
			}
		}
		if correct != 1 {
			t.Fatalf("question %d has %d correct options", i, correct)
		}
		e.SubmitAnswer(quizgen.GradeGreen)
	}
	if !e.OnMatching() {
		t.Fatal("quiz did not reach the matching question")
	}

	// Pair every name with its own range via the shuffled column order.
	for col, eraIdx := range e.Matching.RangeOrder {
		e.Matching.SelectName(eraIdx)
		e.Matching.SelectRange(col)
	}
	if !e.Matching.Complete() {
		t.Fatal("matching incomplete after pairing all five")
	}
	e.SubmitMatching()

	if e.Phase != ErasSummary {
		t.Fatalf("phase = %q, want summary", e.Phase)
	}
	if e.Greens != 11 {
		t.Errorf("greens = %d, want 11", e.Greens)
	}

	xp, ok := e.Summary()
	if !ok {
		t.Fatal("first summary call should fire")
	}
	if want := progress.EraLessonXP(11, 0); xp != want {
		t.Errorf("xp = %d, want %d", xp, want)
	}
	if _, again := e.Summary(); again {
		t.Error("summary fired twice")
	}
}

func TestErasQuestionsShuffledPerEra(t *testing.T) {
	e := NewEras(quizgen.Seeded(2))
	byEra := make(map[string]int)
	for _, q := range e.Questions {
		byEra[q.EraID]++
	}
	if len(byEra) != 5 {
		t.Fatalf("questions cover %d eras, want 5", len(byEra))
	}
	for id, n := range byEra {
		if n != 2 {
			t.Errorf("era %s has %d questions, want 2", id, n)
		}
	}
}

func TestMatchingSelection(t *testing.T) {
	m := NewMatching(quizgen.Seeded(3))

	m.SelectName(0)
	if m.SelectedName != 0 {
		t.Fatalf("selected = %d, want 0", m.SelectedName)
	}
	m.SelectName(0) // toggle off
	if m.SelectedName != -1 {
		t.Errorf("re-select did not deselect")
	}

	// Pairing onto a taken range replaces the old pair.
	m.SelectName(0)
	m.SelectRange(0)
	m.SelectName(1)
	m.SelectRange(0)
	if _, ok := m.Pairs[0]; ok {
		t.Error("old pair survived a range conflict")
	}
	if m.Pairs[1] != 0 {
		t.Errorf("pairs[1] = %d, want 0", m.Pairs[1])
	}

	// Range selection with nothing selected is a no-op.
	m.SelectRange(2)
	if len(m.Pairs) != 1 {
		t.Errorf("pairs = %d, want 1", len(m.Pairs))
	}
}

func TestMatchingCheck(t *testing.T) {
	correctPairs := func(m *Matching) map[int]int {
		pairs := make(map[int]int)
		for col, eraIdx := range m.RangeOrder {
			pairs[eraIdx] = col
		}
		return pairs
	}

	t.Run("all correct", func(t *testing.T) {
		m := NewMatching(quizgen.Seeded(4))
		m.Pairs = correctPairs(m)
		wrong, grade := m.Check()
		if wrong != 0 || grade != quizgen.GradeGreen {
			t.Errorf("wrong = %d grade = %q, want 0 green", wrong, grade)
		}
	})

	t.Run("one transposition is yellow", func(t *testing.T) {
		m := NewMatching(quizgen.Seeded(5))
		m.Pairs = correctPairs(m)
		m.Pairs[0], m.Pairs[1] = m.Pairs[1], m.Pairs[0]
		wrong, grade := m.Check()
		if wrong != 2 || grade != quizgen.GradeYellow {
			t.Errorf("wrong = %d grade = %q, want 2 yellow", wrong, grade)
		}
	})

	t.Run("unpaired names count as wrong", func(t *testing.T) {
		m := NewMatching(quizgen.Seeded(6))
		pairs := correctPairs(m)
		delete(pairs, 0)
		delete(pairs, 1)
		delete(pairs, 2)
		m.Pairs = pairs
		wrong, grade := m.Check()
		if wrong != 3 || grade != quizgen.GradeRed {
			t.Errorf("wrong = %d grade = %q, want 3 red", wrong, grade)
		}
	})

	t.Run("no interaction after check", func(t *testing.T) {
		m := NewMatching(quizgen.Seeded(7))
		m.Check()
		m.SelectName(0)
		if m.SelectedName != -1 {
			t.Error("selection accepted after check")
		}
	})
}

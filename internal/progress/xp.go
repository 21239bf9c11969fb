package progress

import "github.com/edonnat/chronos/internal/quizgen"

// QuestionResult records the outcome of one question for XP purposes.
// RetryScore is set only when the learner got a second chance after a
// red first answer.
type QuestionResult struct {
	EventID    string
	Type       quizgen.QuestionType
	FirstScore quizgen.Grade
	RetryScore quizgen.Grade
	Difficulty int // event difficulty 1-3; 0 means unset, treated as 1
}

// XP awards per question, scaled by event difficulty.
const (
	xpGreen     = 10
	xpYellow    = 5
	xpCorrected = 5 // red first answer fixed on retry
)

// CalculateXP totals the XP for a sequence of question results: full
// marks for green, half for yellow or for a red corrected on retry,
// nothing for an uncorrected red.
func CalculateXP(results []QuestionResult) int {
	total := 0
	for _, r := range results {
		d := r.Difficulty
		if d <= 0 {
			d = 1
		}
		switch {
		case r.FirstScore == quizgen.GradeGreen:
			total += xpGreen * d
		case r.FirstScore == quizgen.GradeYellow:
			total += xpYellow * d
		case r.FirstScore == quizgen.GradeRed && r.RetryScore != "" && r.RetryScore != quizgen.GradeRed:
			total += xpCorrected * d
		}
	}
	return total
}

// EraLessonXP is the flat formula for the introductory eras lesson,
// which has no per-event difficulty: 5 per green, 2 per yellow.
func EraLessonXP(greens, yellows int) int {
	return 5*greens + 2*yellows
}

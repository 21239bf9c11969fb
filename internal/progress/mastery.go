package progress

import "github.com/edonnat/chronos/internal/quizgen"

// Mastery tiers derived from the overall score.
const (
	MasteredThreshold = 7 // >= 7 of 12: mastered
	LearningThreshold = 3 // 3-6: learning; 1-2: needs work; 0: untested
)

// MasteryTier buckets an overall score for display.
type MasteryTier string

const (
	TierUntested  MasteryTier = "untested"
	TierNeedsWork MasteryTier = "needs-work"
	TierLearning  MasteryTier = "learning"
	TierMastered  MasteryTier = "mastered"
)

// OverallMastery recomputes the derived 0-12 score from scratch: the
// sum over the four axes of green=3, yellow=1, red/untested=0. Always
// recomputed on update, never incrementally maintained.
func OverallMastery(rec MasteryRecord) int {
	total := 0
	for _, qt := range quizgen.AllQuestionTypes() {
		total += gradeWeight(rec.Axis(qt))
	}
	return total
}

func gradeWeight(g quizgen.Grade) int {
	switch g {
	case quizgen.GradeGreen:
		return 3
	case quizgen.GradeYellow:
		return 1
	default:
		return 0
	}
}

// TierFor buckets an overall mastery score.
func TierFor(overall int) MasteryTier {
	switch {
	case overall >= MasteredThreshold:
		return TierMastered
	case overall >= LearningThreshold:
		return TierLearning
	case overall > 0:
		return TierNeedsWork
	default:
		return TierUntested
	}
}

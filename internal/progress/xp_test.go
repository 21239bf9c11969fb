package progress

import (
	"testing"

	"github.com/edonnat/chronos/internal/quizgen"
)

func TestCalculateXP(t *testing.T) {
	results := []QuestionResult{
		{FirstScore: quizgen.GradeGreen, Difficulty: 2},
		{FirstScore: quizgen.GradeYellow, Difficulty: 1},
		{FirstScore: quizgen.GradeRed, Difficulty: 1, RetryScore: quizgen.GradeGreen},
	}
	if got := CalculateXP(results); got != 30 {
		t.Errorf("XP = %d, want 30 (20 + 5 + 5)", got)
	}
}

func TestCalculateXPEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		results []QuestionResult
		want    int
	}{
		{"empty", nil, 0},
		{"uncorrected red", []QuestionResult{{FirstScore: quizgen.GradeRed, Difficulty: 3}}, 0},
		{"red retried red", []QuestionResult{{FirstScore: quizgen.GradeRed, RetryScore: quizgen.GradeRed, Difficulty: 2}}, 0},
		{"red retried yellow", []QuestionResult{{FirstScore: quizgen.GradeRed, RetryScore: quizgen.GradeYellow, Difficulty: 2}}, 10},
		{"difficulty defaults to 1", []QuestionResult{{FirstScore: quizgen.GradeGreen}}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateXP(tt.results); got != tt.want {
				t.Errorf("XP = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEraLessonXP(t *testing.T) {
	if got := EraLessonXP(7, 3); got != 41 {
		t.Errorf("EraLessonXP(7, 3) = %d, want 41", got)
	}
	if got := EraLessonXP(0, 0); got != 0 {
		t.Errorf("EraLessonXP(0, 0) = %d, want 0", got)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		overall int
		want    MasteryTier
	}{
		{0, TierUntested},
		{1, TierNeedsWork},
		{2, TierNeedsWork},
		{3, TierLearning},
		{6, TierLearning},
		{7, TierMastered},
		{12, TierMastered},
	}
	for _, tt := range tests {
		if got := TierFor(tt.overall); got != tt.want {
			t.Errorf("TierFor(%d) = %q, want %q", tt.overall, got, tt.want)
		}
	}
}

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/quizgen"
)

func sampleState() progress.State {
	s := progress.DefaultState()
	s.CompletedLessons["the-five-eras"] = 1
	s.CompletedLessons["deep-time"] = 1
	s.SeenEvents["big-bang"] = struct{}{}
	s.SeenEvents["moon-landing"] = struct{}{}
	s.StarredEvents["moon-landing"] = struct{}{}
	s.TotalXP = 85
	s.CurrentStreak = 3
	s.LastActiveDate = "2026-08-31"
	rec := s.EventMastery["big-bang"]
	rec.Date = quizgen.GradeGreen
	rec.What = quizgen.GradeYellow
	rec.TimesReviewed = 2
	rec.Overall = 4
	s.EventMastery["big-bang"] = rec
	return s
}

func TestExportRoundTrip(t *testing.T) {
	orig := sampleState()

	data, err := Export(orig)
	require.NoError(t, err)

	restored, err := Import(data)
	require.NoError(t, err)

	assert.Equal(t, orig.CompletedLessons, restored.CompletedLessons)
	assert.Equal(t, orig.EventMastery, restored.EventMastery)
	assert.Equal(t, orig.TotalXP, restored.TotalXP)
	assert.Equal(t, orig.CurrentStreak, restored.CurrentStreak)
	assert.Equal(t, orig.LastActiveDate, restored.LastActiveDate)
	assert.Equal(t, orig.Settings, restored.Settings)
	assert.True(t, restored.SeenEvents.Has("big-bang"))
	assert.True(t, restored.StarredEvents.Has("moon-landing"))
}

func TestExportIsIndented(t *testing.T) {
	data, err := Export(sampleState())
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"")
	assert.True(t, json.Valid(data))
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "chronos-progress-2026-09-01.json", Filename(now))
}

func TestToFileAndFromFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

	path, err := ToFile(sampleState(), dir, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chronos-progress-2026-09-01.json"), path)

	restored, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 85, restored.TotalXP)
}

func TestImportRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "this is not json"},
		{"wrong top-level type", `[1, 2, 3]`},
		{"missing completedLessons", `{"totalXP": 10}`},
		{"wrong completedLessons type", `{"completedLessons": ["deep-time"]}`},
		{"boolean completion count", `{"completedLessons": {"deep-time": true}}`},
		{"negative xp", `{"completedLessons": {}, "totalXP": -5}`},
		{"overall out of range", `{"completedLessons": {}, "eventMastery": {"big-bang": {"overall": 99}}}`},
		{"bad reminder hour", `{"completedLessons": {}, "settings": {"reminderHour": 25}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import([]byte(tt.input))
			require.Error(t, err)
			var inv *ErrInvalidImport
			assert.ErrorAs(t, err, &inv)
		})
	}
}

func TestImportFillsDefaults(t *testing.T) {
	// A minimal document from an older build carries no settings; the
	// import fills them in rather than zeroing the session length.
	minimal := `{"completedLessons": {"deep-time": 1}, "totalXP": 40}`

	state, err := Import([]byte(minimal))
	require.NoError(t, err)

	assert.Equal(t, 1, state.CompletedLessons["deep-time"])
	assert.Equal(t, 40, state.TotalXP)
	def := progress.DefaultState()
	assert.Equal(t, def.Settings, state.Settings)
	require.NotNil(t, state.EventMastery)
}

func TestImportIgnoresUnknownKeys(t *testing.T) {
	doc := `{"completedLessons": {}, "futureFeature": {"x": 1}}`
	_, err := Import([]byte(doc))
	require.NoError(t, err)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package quizgen

import (
	"testing"

	"github.com/edonnat/chronos/internal/catalog"
)

func TestFormatYear(t *testing.T) {
	tests := []struct {
		year int64
		want string
	}{
		{-13_800_000_000, "13.8 billion years ago"},
		{-4_500_000_000, "4.5 billion years ago"},
		{-66_000_000, "66 million years ago"},
		{-7_000_000, "7 million years ago"},
		{-300_000, "c. 300,000 years ago"},
		{-36_000, "c. 36,000 years ago"},
		{-50_213, "c. 50,000 years ago"}, // rounding collides labels
		{-50_400, "c. 50,000 years ago"},
		{-776, "776 BCE"},
		{80, "80 CE"},
		{1969, "1969"},
	}
	for _, tt := range tests {
		if got := FormatYear(tt.year); got != tt.want {
			t.Errorf("FormatYear(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestSignedYear(t *testing.T) {
	if got := SignedYear(776, true); got != -776 {
		t.Errorf("SignedYear(776, bce) = %d, want -776", got)
	}
	if got := SignedYear(1969, false); got != 1969 {
		t.Errorf("SignedYear(1969, ce) = %d, want 1969", got)
	}
}

func TestScoreDateAnswerPoint(t *testing.T) {
	ev, ok := catalog.GetEvent("first-olympics") // 776 BCE, point
	if !ok {
		t.Fatal("first-olympics missing")
	}
	tests := []struct {
		input int64
		want  Grade
	}{
		{-776, GradeGreen},
		{-926, GradeYellow}, // diff 150
		{-1276, GradeRed},   // diff 500
	}
	for _, tt := range tests {
		if got := ScoreDateAnswer(ev, tt.input); got != tt.want {
			t.Errorf("ScoreDateAnswer(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestScoreDateAnswerRange(t *testing.T) {
	ev, ok := catalog.GetEvent("mongol-empire") // 1206–1368
	if !ok {
		t.Fatal("mongol-empire missing")
	}
	tests := []struct {
		input int64
		want  Grade
	}{
		{1300, GradeGreen}, // inside the range
		{1206, GradeGreen},
		{1368, GradeGreen},
		// Reference year is the nearest edge (1368, medieval bucket:
		// green <= 50, yellow <= 150), not the input year.
		{1400, GradeGreen},
		{1500, GradeYellow},
		{1600, GradeRed},
		{1100, GradeYellow}, // 106 from 1206
	}
	for _, tt := range tests {
		if got := ScoreDateAnswer(ev, tt.input); got != tt.want {
			t.Errorf("ScoreDateAnswer(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestScoreDateAnswerDeepBCE(t *testing.T) {
	ev, ok := catalog.GetEvent("code-of-hammurabi") // 1754 BCE
	if !ok {
		t.Fatal("code-of-hammurabi missing")
	}
	tests := []struct {
		input int64
		want  Grade
	}{
		{-1754, GradeGreen},
		{-1900, GradeGreen},  // diff 146 <= 200
		{-2154, GradeYellow}, // diff 400 <= 500
		{-2400, GradeRed},
	}
	for _, tt := range tests {
		if got := ScoreDateAnswer(ev, tt.input); got != tt.want {
			t.Errorf("ScoreDateAnswer(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestScoreDateAnswerDeepPast(t *testing.T) {
	ev, ok := catalog.GetEvent("dinosaur-extinction") // -66,000,000
	if !ok {
		t.Fatal("dinosaur-extinction missing")
	}
	tests := []struct {
		input int64
		want  Grade
	}{
		{-66_000_000, GradeGreen},
		{-66_400_000, GradeGreen},  // within 500k
		{-67_500_000, GradeYellow}, // within 2M
		{-70_000_000, GradeRed},
	}
	for _, tt := range tests {
		if got := ScoreDateAnswer(ev, tt.input); got != tt.want {
			t.Errorf("ScoreDateAnswer(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// checkOptionSet asserts the contract every generator promises: exactly
// one correct entry, no duplicate labels, and at most four options.
func checkOptionSet(t *testing.T, name string, opts []Option) {
	t.Helper()
	if len(opts) > OptionSetSize {
		t.Errorf("%s: %d options, want <= %d", name, len(opts), OptionSetSize)
	}
	correct := 0
	labels := make(map[string]bool)
	for _, o := range opts {
		if o.Correct {
			correct++
		}
		if labels[o.Label] {
			t.Errorf("%s: duplicate label %q", name, o.Label)
		}
		labels[o.Label] = true
	}
	if correct != 1 {
		t.Errorf("%s: %d correct entries, want 1", name, correct)
	}
}

// correctOf returns the index of the correct option, -1 if absent.
func correctOf(opts []Option) int {
	for i, o := range opts {
		if o.Correct {
			return i
		}
	}
	return -1
}

func TestDateOptionsCorrectLabel(t *testing.T) {
	ev, _ := catalog.GetEvent("moon-landing")
	opts := DateOptions(ev, Seeded(3))

	i := correctOf(opts)
	if i < 0 {
		t.Fatal("no correct option")
	}
	if want := FormatYear(ev.RepresentativeYear()); opts[i].Label != want {
		t.Errorf("correct label = %q, want %q", opts[i].Label, want)
	}
}

func TestOptionSetValidityAcrossCatalog(t *testing.T) {
	rng := Seeded(42)
	for _, ev := range catalog.Events() {
		checkOptionSet(t, "location/"+ev.ID, LocationOptions(ev, rng))
		checkOptionSet(t, "what/"+ev.ID, WhatOptions(ev, nil, rng))
		checkOptionSet(t, "description/"+ev.ID, DescriptionOptions(ev, rng))
		checkOptionSet(t, "date/"+ev.ID, DateOptions(ev, rng))
	}
}

func TestOptionSetsFillToFour(t *testing.T) {
	// The seed catalog is large and varied enough that every generator
	// should reach a full set for every event.
	rng := Seeded(7)
	for _, ev := range catalog.Events() {
		for name, opts := range map[string][]Option{
			"location":    LocationOptions(ev, rng),
			"what":        WhatOptions(ev, nil, rng),
			"description": DescriptionOptions(ev, rng),
			"date":        DateOptions(ev, rng),
		} {
			if len(opts) != OptionSetSize {
				t.Errorf("%s/%s: %d options, want %d", name, ev.ID, len(opts), OptionSetSize)
			}
		}
	}
}

func TestWhatOptionsPreferSiblings(t *testing.T) {
	lesson, ok := catalog.GetLesson("classical-greece")
	if !ok {
		t.Fatal("classical-greece missing")
	}
	ev, _ := catalog.GetEvent(lesson.EventIDs[0])

	rng := Seeded(3)
	opts := WhatOptions(ev, lesson.EventIDs, rng)

	siblings := make(map[string]bool)
	for _, id := range lesson.EventIDs {
		siblings[id] = true
	}
	// With three siblings available every distractor should come from
	// the lesson.
	for _, o := range opts {
		if o.Correct {
			continue
		}
		if !siblings[o.EventID] {
			t.Errorf("distractor %q not from the lesson", o.EventID)
		}
	}
}

func TestLocationOptionsRegionMix(t *testing.T) {
	ev, _ := catalog.GetEvent("battle-of-hastings") // Europe
	rng := Seeded(11)
	opts := LocationOptions(ev, rng)

	sameRegion := 0
	for _, o := range opts {
		if o.Correct || o.EventID == "" {
			continue
		}
		other, _ := catalog.GetEvent(o.EventID)
		if other.Location.Region == ev.Location.Region {
			sameRegion++
		}
	}
	if sameRegion > 2 {
		t.Errorf("%d same-region distractors, want at most 2", sameRegion)
	}
}

func TestEraRangeOptions(t *testing.T) {
	for _, era := range catalog.Eras() {
		rng := Seeded(uint64(era.Start))
		opts := EraRangeOptions(era, rng)
		checkOptionSet(t, "era-range/"+era.ID, opts)
		if len(opts) != OptionSetSize {
			t.Errorf("era %q: %d options, want %d", era.ID, len(opts), OptionSetSize)
		}

		pool := eraFakes[era.ID]
		closeSet := make(map[string]bool)
		for _, c := range pool.close {
			closeSet[c] = true
		}
		nClose := 0
		for _, o := range opts {
			if !o.Correct && closeSet[o.Label] {
				nClose++
			}
		}
		if nClose < 1 || nClose > 2 {
			t.Errorf("era %q: %d close fakes, want 1 or 2", era.ID, nClose)
		}
	}
}

func TestEraNameOptions(t *testing.T) {
	era, _ := catalog.GetEra("middle-ages")
	opts := EraNameOptions(era, Seeded(1))
	checkOptionSet(t, "era-name", opts)
	if len(opts) != OptionSetSize {
		t.Errorf("%d options, want %d", len(opts), OptionSetSize)
	}
}

package catalog

import "testing"

func TestValidateSeedData(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestCatalogShape(t *testing.T) {
	if got := len(Events()); got != 60 {
		t.Errorf("catalog has %d events, want 60", got)
	}
	if got := len(Lessons()); got != 16 {
		t.Errorf("catalog has %d lessons, want 16", got)
	}
	if got := len(Eras()); got != 5 {
		t.Errorf("catalog has %d eras, want 5", got)
	}
}

func TestGetEvents(t *testing.T) {
	ids := []string{"moon-landing", "no-such-event", "big-bang"}
	evs := GetEvents(ids)
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2 (unknown id dropped)", len(evs))
	}
	if evs[0].ID != "moon-landing" || evs[1].ID != "big-bang" {
		t.Errorf("order not preserved: %q, %q", evs[0].ID, evs[1].ID)
	}
}

func TestEraForYear(t *testing.T) {
	tests := []struct {
		year int64
		want string
	}{
		{-66_000_000, "prehistory"},
		{-3300, "antiquity"}, // start is inclusive
		{-3301, "prehistory"},
		{475, "antiquity"},
		{476, "middle-ages"},
		{1491, "middle-ages"},
		{1492, "early-modern"},
		{1789, "contemporary"},
		{2500, "contemporary"}, // open-ended final era
		{9999, "contemporary"},
	}
	for _, tt := range tests {
		if got := EraForYear(tt.year); got.ID != tt.want {
			t.Errorf("EraForYear(%d) = %q, want %q", tt.year, got.ID, tt.want)
		}
	}
}

func TestEventsByEra(t *testing.T) {
	total := 0
	eras := Eras()
	for _, era := range eras {
		evs := EventsByEra(era)
		total += len(evs)
		isLast := era.ID == eras[len(eras)-1].ID
		for _, ev := range evs {
			if !era.Contains(ev.RepresentativeYear(), isLast) {
				t.Errorf("event %q (year %d) outside era %q", ev.ID, ev.RepresentativeYear(), era.ID)
			}
		}
	}
	if total != 60 {
		t.Errorf("eras partition %d events, want 60", total)
	}
}

func TestBoundaryEras(t *testing.T) {
	// fall-of-rome closes antiquity and opens the middle ages.
	eras := BoundaryEras("fall-of-rome")
	if len(eras) != 2 {
		t.Fatalf("fall-of-rome marks %d boundaries, want 2", len(eras))
	}
	if eras[0].ID != "antiquity" || eras[1].ID != "middle-ages" {
		t.Errorf("got eras %q, %q", eras[0].ID, eras[1].ID)
	}

	if got := BoundaryEras("moon-landing"); len(got) != 0 {
		t.Errorf("moon-landing marks %d boundaries, want 0", len(got))
	}
}

func TestLessonUnlockOrdering(t *testing.T) {
	lessons := Lessons()

	none := map[string]int{}
	if !lessons[0].Unlocked(none) {
		t.Error("first lesson must always be unlocked")
	}
	for _, l := range lessons[1:] {
		if l.Unlocked(none) {
			t.Errorf("lesson %d unlocked with no completions", l.Number)
		}
	}

	// Completing lesson N unlocks exactly lesson N+1.
	completions := map[string]int{lessons[0].ID: 1}
	if !lessons[1].Unlocked(completions) {
		t.Error("lesson 2 should unlock after lesson 1 completes")
	}
	if lessons[2].Unlocked(completions) {
		t.Error("lesson 3 should stay locked until lesson 2 completes")
	}
}

func TestEventsByCategory(t *testing.T) {
	seen := 0
	for _, c := range AllCategories() {
		evs := EventsByCategory(c)
		seen += len(evs)
		for _, ev := range evs {
			if ev.Category != c {
				t.Errorf("event %q in category %q listing", ev.ID, c)
			}
		}
	}
	if seen != 60 {
		t.Errorf("categories cover %d events, want 60", seen)
	}
}

func TestShortDescriptionFallback(t *testing.T) {
	ev := Event{Description: "long form"}
	if got := ev.ShortDescription(); got != "long form" {
		t.Errorf("fallback = %q, want description", got)
	}
	ev.QuizDescription = "short form"
	if got := ev.ShortDescription(); got != "short form" {
		t.Errorf("got %q, want quiz description", got)
	}
}

func TestRepresentativeYear(t *testing.T) {
	ev, ok := GetEvent("mongol-empire")
	if !ok {
		t.Fatal("mongol-empire missing")
	}
	if got := ev.RepresentativeYear(); got != (1206+1368)/2 {
		t.Errorf("midpoint = %d", got)
	}
}

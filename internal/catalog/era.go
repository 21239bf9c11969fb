package catalog

// Era is a named contiguous span of years. Start is inclusive, End
// exclusive. The final era is open-ended: any year at or above its
// start belongs to it regardless of End.
type Era struct {
	ID    string
	Name  string
	Label string // display form of the span, e.g. "476 – 1492"
	Start int64
	End   int64
	// StartEventID and EndEventID name the boundary events that open and
	// close the era. Empty when the boundary is not tied to an event
	// (deep prehistory has no opening event).
	StartEventID string
	EndEventID   string
}

// Contains reports whether year falls inside the era. The last era in
// the catalog accepts any year at or above its start.
func (e Era) Contains(year int64, isLast bool) bool {
	if year < e.Start {
		return false
	}
	if isLast {
		return true
	}
	return year < e.End
}

// seedEras defines the five eras used throughout the app. The cuts
// follow the classical periodization: writing, the fall of Rome,
// Columbus, and the French Revolution.
var seedEras = []Era{
	{
		ID:         "prehistory",
		Name:       "Prehistory",
		Label:      "Before 3300 BCE",
		Start:      -14_000_000_000,
		End:        -3300,
		EndEventID: "invention-of-writing",
	},
	{
		ID:           "antiquity",
		Name:         "Antiquity",
		Label:        "3300 BCE – 476 CE",
		Start:        -3300,
		End:          476,
		StartEventID: "invention-of-writing",
		EndEventID:   "fall-of-rome",
	},
	{
		ID:           "middle-ages",
		Name:         "Middle Ages",
		Label:        "476 – 1492",
		Start:        476,
		End:          1492,
		StartEventID: "fall-of-rome",
		EndEventID:   "columbus-reaches-america",
	},
	{
		ID:           "early-modern",
		Name:         "Early Modern",
		Label:        "1492 – 1789",
		Start:        1492,
		End:          1789,
		StartEventID: "columbus-reaches-america",
		EndEventID:   "french-revolution",
	},
	{
		ID:           "contemporary",
		Name:         "Contemporary",
		Label:        "1789 – today",
		Start:        1789,
		End:          3000, // nominal; the last era is open-ended
		StartEventID: "french-revolution",
	},
}

// Eras returns the five eras in chronological order.
func Eras() []Era {
	out := make([]Era, len(seedEras))
	copy(out, seedEras)
	return out
}

// GetEra returns the era with the given id.
func GetEra(id string) (Era, bool) {
	for _, e := range seedEras {
		if e.ID == id {
			return e, true
		}
	}
	return Era{}, false
}

// EraForYear returns the era containing the given year.
func EraForYear(year int64) Era {
	last := len(seedEras) - 1
	for i, e := range seedEras {
		if e.Contains(year, i == last) {
			return e
		}
	}
	// Years before the first era's start collapse into it.
	return seedEras[0]
}

// BoundaryEras returns the eras the given event opens or closes. An
// event can mark zero, one, or two boundaries: the same event may end
// one era and start the next.
func BoundaryEras(eventID string) []Era {
	var out []Era
	for _, e := range seedEras {
		if e.StartEventID == eventID || e.EndEventID == eventID {
			out = append(out, e)
		}
	}
	return out
}

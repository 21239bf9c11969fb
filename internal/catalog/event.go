package catalog

// Category classifies an event by theme.
type Category string

const (
	CategoryScience    Category = "science"
	CategoryWar        Category = "war"
	CategoryPolitics   Category = "politics"
	CategoryCulture    Category = "culture"
	CategoryRevolution Category = "revolution"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryScience,
		CategoryWar,
		CategoryPolitics,
		CategoryCulture,
		CategoryRevolution,
	}
}

// CategoryDisplayName returns a human-readable label for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryScience:
		return "Science & Discovery"
	case CategoryWar:
		return "War & Conflict"
	case CategoryPolitics:
		return "Politics & Power"
	case CategoryCulture:
		return "Culture & Ideas"
	case CategoryRevolution:
		return "Revolutions"
	default:
		return string(c)
	}
}

// CategoryColor returns the hex color associated with a category.
func CategoryColor(c Category) string {
	switch c {
	case CategoryScience:
		return "#38BDF8" // Sky
	case CategoryWar:
		return "#F43F5E" // Rose
	case CategoryPolitics:
		return "#FACC15" // Amber
	case CategoryCulture:
		return "#A78BFA" // Violet
	case CategoryRevolution:
		return "#FB923C" // Orange
	default:
		return "#94A3B8"
	}
}

// Location places an event on the map.
type Location struct {
	Lat    float64
	Lng    float64
	Region string // coarse continent/area label used for distractor grouping
	Place  string // display location
}

// Event is an immutable catalog record for one historical event.
// Years use astronomical numbering: negative means BCE, and prehistoric
// events carry magnitudes in the millions or billions.
type Event struct {
	ID              string
	Title           string
	Description     string
	QuizDescription string // short alt description used as an MCQ option
	Date            string // human-readable display string
	Year            int64
	YearEnd         int64 // 0 unless the event spans a range
	HasEnd          bool
	Location        Location
	Category        Category
	Difficulty      int // 1-3, XP multiplier
}

// ShortDescription returns the quiz description, falling back to the
// full description when no short form was authored.
func (e Event) ShortDescription() string {
	if e.QuizDescription != "" {
		return e.QuizDescription
	}
	return e.Description
}

// RepresentativeYear returns the single year used for chronological
// comparisons: the midpoint for ranged events, the year itself otherwise.
func (e Event) RepresentativeYear() int64 {
	if e.HasEnd {
		return (e.Year + e.YearEnd) / 2
	}
	return e.Year
}

// YearRange returns the inclusive [min,max] year span of the event.
// Point events return their year twice.
func (e Event) YearRange() (int64, int64) {
	if !e.HasEnd {
		return e.Year, e.Year
	}
	if e.YearEnd < e.Year {
		return e.YearEnd, e.Year
	}
	return e.Year, e.YearEnd
}

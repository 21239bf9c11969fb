package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/quizgen"
	"github.com/edonnat/chronos/internal/ui/theme"
)

// StudyCard renders a catalog event as a bordered learning card.
type StudyCard struct {
	Event   catalog.Event
	Starred bool
	Width   int
}

// NewStudyCard creates a study card for an event.
func NewStudyCard(ev catalog.Event, starred bool, width int) StudyCard {
	return StudyCard{Event: ev, Starred: starred, Width: width}
}

// View renders the card.
func (c StudyCard) View() string {
	ev := c.Event

	inner := c.Width - 6
	if inner < 20 {
		inner = 20
	}

	title := ev.Title
	if c.Starred {
		title = "★ " + title
	}

	catColor := theme.CategoryColor(ev.Category)
	badge := lipgloss.NewStyle().
		Foreground(catColor).
		Bold(true).
		Render("● " + catalog.CategoryDisplayName(ev.Category))

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title))
	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Render(c.when()))
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.where()))
	lines = append(lines, badge)
	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Width(inner).Render(ev.Description))

	return theme.Card.Width(c.Width - 2).Render(strings.Join(lines, "\n"))
}

func (c StudyCard) when() string {
	ev := c.Event
	if ev.HasEnd {
		return fmt.Sprintf("%s – %s", quizgen.FormatYear(ev.Year), quizgen.FormatYear(ev.YearEnd))
	}
	return quizgen.FormatYear(ev.Year)
}

func (c StudyCard) where() string {
	loc := c.Event.Location
	if loc.Place == "" {
		return loc.Region
	}
	if loc.Region == "" || loc.Region == loc.Place {
		return loc.Place
	}
	return fmt.Sprintf("%s, %s", loc.Place, loc.Region)
}

package components

import (
	"image/color"
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edonnat/chronos/internal/ui/theme"
)

// YearInput is a free-text year entry with a BCE toggle. The learner
// types digits; Tab flips between BCE and CE.
type YearInput struct {
	Model     textinput.Model
	BCE       bool
	submitted bool
	grade     color.Color
}

// NewYearInput creates a focused year input.
func NewYearInput() YearInput {
	ti := textinput.New()
	ti.Placeholder = "Year"
	ti.CharLimit = 10
	ti.Focus()
	return YearInput{Model: ti}
}

// Init returns the initial focus command.
func (y YearInput) Init() tea.Cmd {
	return y.Model.Focus()
}

// Update handles digits and the BCE toggle.
func (y YearInput) Update(msg tea.Msg) (YearInput, tea.Cmd) {
	if y.submitted {
		return y, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if key == "tab" {
			y.BCE = !y.BCE
			return y, nil
		}
		// Digits only; the toggle carries the sign.
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return y, nil
		}
	}

	var cmd tea.Cmd
	y.Model, cmd = y.Model.Update(msg)
	return y, cmd
}

// View renders the input with its era toggle.
func (y YearInput) View() string {
	era := "CE"
	if y.BCE {
		era = "BCE"
	}

	eraStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if y.BCE {
		eraStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}

	view := y.Model.View() + "  " + eraStyle.Render(era)
	if y.submitted {
		view += " " + lipgloss.NewStyle().Foreground(y.grade).Render("●")
	}
	return view + "\n" + theme.Hint.Render("Tab toggles BCE/CE")
}

// Year returns the signed year the learner entered.
func (y YearInput) Year() (int, error) {
	n, err := strconv.Atoi(y.Model.Value())
	if err != nil {
		return 0, err
	}
	if y.BCE {
		n = -n
	}
	return n, nil
}

// Empty reports whether nothing has been typed yet.
func (y YearInput) Empty() bool {
	return y.Model.Value() == ""
}

// Submit locks the input and shows the grade marker.
func (y *YearInput) Submit(grade color.Color) {
	y.submitted = true
	y.grade = grade
}

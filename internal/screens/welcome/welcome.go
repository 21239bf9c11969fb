// Package welcome is the first-launch splash: a short animation, the
// banner, and a one-line pitch before the lesson list.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/router"
	"github.com/edonnat/chronos/internal/screen"
	"github.com/edonnat/chronos/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const hourglassArt = ` ╔═══════════╗
  ╲ ∙ ∙ ∙ ∙ ╱
   ╲ ∙ ∙ ∙ ╱
    ╲ ∙ ∙ ╱
     ╲ ∙ ╱
     ╱   ╲
    ╱  ∙  ╲
   ╱ ∙ ∙ ∙ ╲
  ╱ ∙ ∙ ∙ ∙ ╲
 ╚═══════════╝`

// sparkle frames cycle around the hourglass
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows the splash animation, then hands off to the home
// screen. A keypress at any point skips ahead.
type WelcomeScreen struct {
	prog         *progress.Store
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen
// produced by homeFactory, marking onboarding dismissed on the way out.
func New(prog *progress.Store, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		prog:        prog,
		homeFactory: homeFactory,
	}
}

// CapturesKeys lets any key, digits included, dismiss the splash.
func (w *WelcomeScreen) CapturesKeys() bool { return true }

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	w.prog.Dispatch(progress.DismissOnboarding{})
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(hourglassArt)

	// Phase 2+: sparkles around the hourglass
	if w.elapsed >= phase1End {
		frame := w.tickCount % len(sparkleFrames)
		sparkle := sparkleFrames[frame]

		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[0] = s1 + "  " + lines[0] + "  " + s2
		}
		if len(lines) > 4 {
			lines[4] = s2 + "  " + lines[4] + "  " + s1
		}
		if len(lines) > 8 {
			lines[8] = s1 + "  " + lines[8] + "  " + s2
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner, tagline, catalog line
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("From the Big Bang to the web, one lesson at a time.")
		sections = append(sections, tagline)

		facts := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("60 events · 5 eras · short daily lessons")
		sections = append(sections, facts)

		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to begin")
		sections = append(sections, "", hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Package app wires the Bubble Tea program: the screen router, the
// shared header and footer, and top-level section switching.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/notify"
	"github.com/edonnat/chronos/internal/progress"
	"github.com/edonnat/chronos/internal/quizgen"
	"github.com/edonnat/chronos/internal/router"
	"github.com/edonnat/chronos/internal/screen"
	"github.com/edonnat/chronos/internal/screens/home"
	sessionscreen "github.com/edonnat/chronos/internal/screens/session"
	"github.com/edonnat/chronos/internal/screens/settings"
	"github.com/edonnat/chronos/internal/screens/timeline"
	"github.com/edonnat/chronos/internal/screens/welcome"
	"github.com/edonnat/chronos/internal/store"
	"github.com/edonnat/chronos/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	prog     *progress.Store
	events   store.EventRepo
	notifier notify.Notifier
	width    int
	height   int
}

// Options carries the dependencies the TUI runs on.
type Options struct {
	Progress *progress.Store
	Events   store.EventRepo
	Notifier notify.Notifier

	// StartLesson jumps straight into a lesson, skipping the splash.
	StartLesson *catalog.Lesson
}

// newAppModel creates the root model, starting on the welcome splash or
// directly inside a lesson when one was requested.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		prog:     opts.Progress,
		events:   opts.Events,
		notifier: opts.Notifier,
	}
	if opts.StartLesson != nil {
		m.router = router.New(home.New(m.prog, m.events))
		m.router.Push(sessionscreen.New(*opts.StartLesson, m.prog, m.events, quizgen.SystemRand{}))
		return m
	}
	splash := welcome.New(m.prog, func() screen.Screen {
		return home.New(m.prog, m.events)
	})
	m.router = router.New(splash)
	return m
}

func (m AppModel) Init() tea.Cmd {
	// A lapsed streak zeroes on launch, not mid-session.
	m.prog.Dispatch(progress.RefreshStreak{})
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that need the key themselves (an active lesson,
			// the settings panel) see it first via the router below.
			if !m.wantsKeys() && m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		case "1", "2", "3":
			if !m.wantsKeys() {
				return m, m.switchSection(msg.String())
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// wantsKeys reports whether the active screen owns the whole keyboard,
// so global navigation keys must not fire.
func (m AppModel) wantsKeys() bool {
	c, ok := m.router.Active().(screen.KeyCapturer)
	return ok && c.CapturesKeys()
}

// switchSection moves between the top-level sections. Lessons and the
// timeline replace the stack; settings stacks on top so Esc returns to
// wherever the learner came from.
func (m AppModel) switchSection(key string) tea.Cmd {
	switch key {
	case "1":
		return m.router.ResetTo(home.New(m.prog, m.events))
	case "2":
		return m.router.ResetTo(timeline.New(m.prog))
	case "3":
		if _, open := m.router.Active().(*settings.Screen); open {
			return nil
		}
		return m.router.Push(settings.New(m.prog, m.notifier))
	}
	return nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	state := m.prog.State()
	header := layout.RenderHeader(title, state.TotalXP, state.CurrentStreak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over an already-opened store.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

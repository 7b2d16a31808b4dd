package app

import (
	"errors"
	"io"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapes/internal/random"
	"github.com/abhisek/shapes/internal/router"
	"github.com/abhisek/shapes/internal/schedule"
	"github.com/abhisek/shapes/internal/screen"
	"github.com/abhisek/shapes/internal/screens/welcome"
	"github.com/abhisek/shapes/internal/session"
	"github.com/abhisek/shapes/internal/ui/keys"
	"github.com/abhisek/shapes/internal/ui/layout"
)

// Options holds dependencies for the app.
type Options struct {
	Controller *session.Controller
	// Loop must be the scheduler the Controller was built with.
	Loop *schedule.Loop

	PreferAllShapes bool
	// Splash shows the welcome animation before the home screen.
	Splash bool
	Rand   random.Source
	Logger *slog.Logger

	// Input and Output override the terminal, for tests.
	Input  io.Reader
	Output io.Writer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *session.Controller
	router *router.Router
	splash *welcome.WelcomeScreen
	logger *slog.Logger
	width  int
	height int
}

// newAppModel creates the root model on the home screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := AppModel{
		ctrl: opts.Controller,
		router: router.New(opts.Controller, router.Options{
			PreferAllShapes: opts.PreferAllShapes,
			Rand:            opts.Rand,
			Logger:          logger.With("component", "router"),
		}),
		logger: logger,
	}
	if opts.Splash {
		m.splash = welcome.New(opts.Controller.Catalog().All())
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.splash != nil {
		return m.splash.Init()
	}
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case schedule.FiredMsg:
		msg.Run()
		return m, m.router.Sync()

	case welcome.DoneMsg:
		m.splash = nil
		return m, m.router.Init()

	case tea.KeyMsg:
		if key.Matches(msg, keys.Default.Quit) {
			m.logger.Info("quit", "mode", m.ctrl.Mode().String())
			return m, tea.Quit
		}
	}

	if m.splash != nil {
		_, cmd := m.splash.Update(msg)
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the whole frame, or "" before the first window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	if m.splash != nil {
		return m.splash.View(m.width, m.height)
	}

	active := m.router.Active()
	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)

	footerHints := []layout.KeyHint{keys.Hint(keys.Default.Quit)}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Controller == nil || opts.Loop == nil {
		return errors.New("app: controller and loop are required")
	}

	var progOpts []tea.ProgramOption
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(newAppModel(opts), progOpts...)
	opts.Loop.Bind(func(msg any) { p.Send(msg) })
	defer opts.Loop.Bind(nil)

	_, err := p.Run()
	return err
}

package router

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shapes/internal/random"
	"github.com/abhisek/shapes/internal/screen"
	"github.com/abhisek/shapes/internal/screens/flashcards"
	"github.com/abhisek/shapes/internal/screens/home"
	"github.com/abhisek/shapes/internal/screens/quiz"
	"github.com/abhisek/shapes/internal/screens/quizend"
	"github.com/abhisek/shapes/internal/session"
)

// Options tunes the screens the router builds.
type Options struct {
	// PreferAllShapes starts the home menu on the all-shapes entries.
	PreferAllShapes bool
	// Rand picks the home screen's featured shape. Nil shows none.
	Rand   random.Source
	Logger *slog.Logger
}

// Router shows the screen for the controller's current mode. Screens act
// on the controller directly; after every message the router checks the
// mode and swaps the screen when it changed.
type Router struct {
	ctrl   *session.Controller
	opts   Options
	mode   session.Mode
	active screen.Screen
}

// New creates a Router showing the screen for the controller's mode.
func New(ctrl *session.Controller, opts Options) *Router {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	r := &Router{ctrl: ctrl, opts: opts, mode: ctrl.Mode()}
	r.active = r.screenFor(r.mode)
	return r
}

// Init runs the initial screen's Init.
func (r *Router) Init() tea.Cmd {
	return r.active.Init()
}

// screenFor builds the screen for a mode.
func (r *Router) screenFor(m session.Mode) screen.Screen {
	switch m {
	case session.ModeHome:
		return home.New(r.ctrl, r.opts.PreferAllShapes, r.opts.Rand)
	case session.ModeFlashcards:
		return flashcards.New(r.ctrl)
	case session.ModeQuiz:
		return quiz.New(r.ctrl)
	case session.ModeQuizEnd:
		return quizend.New(r.ctrl)
	}
	r.opts.Logger.Error("no screen for mode, showing home", "mode", m.String())
	return home.New(r.ctrl, r.opts.PreferAllShapes, r.opts.Rand)
}

// Sync swaps in the screen for the controller's mode if it changed since
// the last call, and returns the new screen's Init command.
func (r *Router) Sync() tea.Cmd {
	m := r.ctrl.Mode()
	if m == r.mode {
		return nil
	}
	r.opts.Logger.Debug("screen change", "from", r.mode.String(), "to", m.String())
	r.mode = m
	r.active = r.screenFor(m)
	return r.active.Init()
}

// Active returns the screen on display.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Mode returns the mode the active screen was built for.
func (r *Router) Mode() session.Mode {
	return r.mode
}

// Update forwards a message to the active screen, then syncs with the
// controller's mode.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return tea.Batch(cmd, r.Sync())
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.active.View(width, height)
}

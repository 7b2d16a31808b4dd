package session

import (
	"log/slog"

	"github.com/abhisek/shapes/internal/random"
	"github.com/abhisek/shapes/internal/schedule"
	"github.com/abhisek/shapes/internal/shapes"
)

// Controller owns a learner's session state and applies every transition.
// It is not safe for concurrent use: all methods, including scheduled
// auto-advance callbacks, must run on one goroutine.
type Controller struct {
	catalog shapes.Catalog
	basic   shapes.Catalog

	cfg    Config
	rng    random.Source
	sched  schedule.Scheduler
	cues   Cues
	logger *slog.Logger

	state     State
	pending   schedule.Task
	listeners []func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig overrides DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithRand sets the randomness source.
func WithRand(src random.Source) Option {
	return func(c *Controller) { c.rng = src }
}

// WithScheduler sets the scheduler used for quiz auto-advance.
func WithScheduler(s schedule.Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithCues sets the audio cue player.
func WithCues(cues Cues) Option {
	return func(c *Controller) { c.cues = cues }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a Controller on the home screen. The catalog is expected to
// have passed shapes.Catalog.Validate.
func New(catalog shapes.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog: catalog,
		basic:   catalog.Filter(shapes.BasicCategories...),
		cfg:     DefaultConfig(),
		cues:    nopCues{},
		logger:  slog.New(slog.DiscardHandler),
		state:   State{Mode: ModeHome, UseBasicPool: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = random.Default()
	}
	if c.sched == nil {
		c.sched = schedule.NewLoop()
	}
	if c.cfg.QuizLength <= 0 {
		c.cfg.QuizLength = DefaultConfig().QuizLength
	}
	c.logger = c.logger.With("component", "session")
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state.clone()
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.state.Mode
}

// Config returns the active quiz settings.
func (c *Controller) Config() Config {
	return c.cfg
}

// Catalog returns the full catalog.
func (c *Controller) Catalog() shapes.Catalog {
	return c.catalog
}

// PoolSize returns the number of shapes in the basic or full pool.
func (c *Controller) PoolSize(useBasic bool) int {
	if useBasic {
		return c.basic.Len()
	}
	return c.catalog.Len()
}

// Pending reports whether a quiz auto-advance is scheduled.
func (c *Controller) Pending() bool {
	return c.pending != nil
}

// Subscribe registers fn to receive a snapshot after every state change.
func (c *Controller) Subscribe(fn func(State)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) notify() {
	if len(c.listeners) == 0 {
		return
	}
	snap := c.state.clone()
	for _, fn := range c.listeners {
		fn(snap)
	}
}

// pool returns the shapes the current session draws from.
func (c *Controller) pool() shapes.Catalog {
	if c.state.UseBasicPool {
		return c.basic
	}
	return c.catalog
}

func poolName(basic bool) string {
	if basic {
		return "basic"
	}
	return "all"
}

// cancelPending drops the scheduled auto-advance, if any.
func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
		c.logger.Debug("cancelled pending auto-advance", "quiz_id", c.state.QuizID)
	}
}

// GoHome returns to the home screen from any mode.
func (c *Controller) GoHome() {
	c.cancelPending()
	from := c.state.Mode
	c.state.Mode = ModeHome
	c.logger.Info("mode change", "from", from.String(), "to", ModeHome.String())
	c.notify()
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/abhisek/shapes/internal/audio"
	"github.com/abhisek/shapes/internal/config"
	"github.com/abhisek/shapes/internal/logging"
	"github.com/abhisek/shapes/internal/schedule"
	"github.com/abhisek/shapes/internal/session"
	"github.com/abhisek/shapes/internal/shapes"
	"github.com/spf13/cobra"
)

// env bundles what every interactive command needs.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	catalog shapes.Catalog
	cues    session.Cues
	closers []io.Closer
}

// openEnv resolves config, opens the log file, loads the catalog and
// starts the audio player. Callers must Close the result.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	e := &env{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	e.catalog, err = loadCatalog(cfg.Catalog.Path)
	if err != nil {
		_ = e.Close()
		return nil, err
	}
	logger.Info("catalog loaded", "shapes", e.catalog.Len(), "path", cfg.Catalog.Path)

	cues, closer := newCues(cfg.Audio, logger)
	e.cues = cues
	// Stop playback before the log file closes.
	e.closers = append([]io.Closer{closer}, e.closers...)
	return e, nil
}

// Close releases the audio player and the log file.
func (e *env) Close() error {
	var errs []error
	for _, c := range e.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// newController builds a session controller driven by sched.
func (e *env) newController(sched schedule.Scheduler, opts ...session.Option) *session.Controller {
	base := []session.Option{
		session.WithConfig(sessionConfig(e.cfg.Quiz)),
		session.WithScheduler(sched),
		session.WithCues(e.cues),
		session.WithLogger(e.logger),
	}
	return session.New(e.catalog, append(base, opts...)...)
}

// loadCatalog returns the built-in catalog, or the custom catalog at path
// when one is configured.
func loadCatalog(path string) (shapes.Catalog, error) {
	if path == "" {
		return shapes.Builtin(), nil
	}
	c, err := shapes.LoadFile(path)
	if err != nil {
		return shapes.Catalog{}, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// newCues returns an audio player, or silent cues when audio is disabled or
// the player cannot start. A broken player never stops the app.
func newCues(cfg config.AudioConfig, logger *slog.Logger) (session.Cues, io.Closer) {
	if !cfg.Enabled {
		return audio.Nop{}, audio.Nop{}
	}
	p, err := audio.New(audio.Options{
		Dir:     cfg.SoundDir,
		Command: cfg.Player,
		Logger:  logger,
	})
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Nop{}, audio.Nop{}
	}
	return p, p
}

func sessionConfig(q config.QuizConfig) session.Config {
	return session.Config{
		QuizLength:   q.Length,
		CorrectDelay: q.CorrectDelay,
		WrongDelay:   q.WrongDelay,
	}
}

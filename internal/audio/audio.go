// Package audio plays the sound cues for correct and wrong answers, quiz
// completion, and spoken shape names by running an external player command.
package audio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Cue file names inside the sound directory.
const (
	CorrectFile  = "correct.mp3"
	WrongFile    = "wrong.mp3"
	CompleteFile = "complete.mp3"
)

// DefaultTimeout bounds a single playback.
const DefaultTimeout = 10 * time.Second

// ErrNoPlayer is returned by New when the player command is empty.
var ErrNoPlayer = errors.New("audio: no player command")

// ShapeFile returns the file name holding the spoken name of a shape.
// Spaces become dashes: "right-angled triangle" -> "right-angled-triangle.mp3".
func ShapeFile(name string) string {
	return strings.ReplaceAll(name, " ", "-") + ".mp3"
}

// Runner starts the player on a file and blocks until it exits or ctx is
// done.
type Runner func(ctx context.Context, argv []string, file string) error

// ExecRunner runs argv with file appended as the last argument.
func ExecRunner(ctx context.Context, argv []string, file string) error {
	args := append(append([]string{}, argv[1:]...), file)
	cmd := exec.CommandContext(ctx, argv[0], args...)
	return cmd.Run()
}

// Options configures a Player.
type Options struct {
	// Dir holds the sound files.
	Dir string
	// Command is the player command line, e.g. "mpv --really-quiet".
	Command string
	// Timeout bounds each playback. Zero means DefaultTimeout.
	Timeout time.Duration
	// Runner overrides ExecRunner.
	Runner Runner
	Logger *slog.Logger
}

// Player plays cue files. Every cue returns immediately; playback happens
// on its own goroutine. Replaying a file stops its previous playback.
type Player struct {
	dir     string
	argv    []string
	timeout time.Duration
	run     Runner
	logger  *slog.Logger

	mu      sync.Mutex
	playing map[string]*playback
	closed  bool
	wg      sync.WaitGroup
}

type playback struct {
	cancel context.CancelFunc
}

// New creates a Player.
func New(opts Options) (*Player, error) {
	argv := strings.Fields(opts.Command)
	if len(argv) == 0 {
		return nil, ErrNoPlayer
	}
	p := &Player{
		dir:     opts.Dir,
		argv:    argv,
		timeout: opts.Timeout,
		run:     opts.Runner,
		logger:  opts.Logger,
		playing: make(map[string]*playback),
	}
	if p.timeout <= 0 {
		p.timeout = DefaultTimeout
	}
	if p.run == nil {
		if _, err := exec.LookPath(argv[0]); err != nil {
			return nil, fmt.Errorf("audio: player %q: %w", argv[0], err)
		}
		p.run = ExecRunner
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	p.logger = p.logger.With("component", "audio")
	return p, nil
}

func (p *Player) PlayCorrect()  { p.Play(CorrectFile) }
func (p *Player) PlayWrong()    { p.Play(WrongFile) }
func (p *Player) PlayComplete() { p.Play(CompleteFile) }

// SayShape plays the spoken name of a shape.
func (p *Player) SayShape(name string) { p.Play(ShapeFile(name)) }

// Play starts playing file from the sound directory. Missing files and
// player failures are logged and otherwise ignored.
func (p *Player) Play(file string) {
	path := filepath.Join(p.dir, file)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.logger.Debug("sound file missing", "file", path)
		} else {
			p.logger.Debug("sound file unreadable", "file", path, "error", err)
		}
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	if prev, ok := p.playing[file]; ok {
		prev.cancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	pb := &playback{cancel: cancel}
	p.playing[file] = pb
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		defer cancel()
		err := p.run(ctx, p.argv, path)
		if err != nil && ctx.Err() == nil {
			p.logger.Debug("playback failed", "file", path, "error", err)
		}
		p.mu.Lock()
		if p.playing[file] == pb {
			delete(p.playing, file)
		}
		p.mu.Unlock()
	}()
}

// Close stops every playback and waits for the player processes to exit.
// Cues after Close are ignored.
func (p *Player) Close() error {
	p.mu.Lock()
	p.closed = true
	for _, pb := range p.playing {
		pb.cancel()
	}
	p.mu.Unlock()
	p.wg.Wait()
	return nil
}

// Nop discards every cue.
type Nop struct{}

func (Nop) PlayCorrect()    {}
func (Nop) PlayWrong()      {}
func (Nop) PlayComplete()   {}
func (Nop) SayShape(string) {}
func (Nop) Close() error    { return nil }

package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shapes/internal/screen"
	"github.com/abhisek/shapes/internal/shapes"
)

func newTestWelcome() *WelcomeScreen {
	return New(shapes.Builtin().All())
}

func sendTicks(w *WelcomeScreen, n int) (screen.Screen, tea.Cmd) {
	var s screen.Screen = w
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		s, cmd = s.Update(tickMsg(time.Now()))
	}
	return s, cmd
}

func TestPhaseTransitions(t *testing.T) {
	w := newTestWelcome()

	// Initially no banner visible
	view := w.View(80, 40)
	if strings.Contains(view, Tagline) {
		t.Error("banner should not be visible at start")
	}
	if !strings.Contains(view, "circle") {
		t.Error("expected the first parade shape")
	}

	sendTicks(w, 5)
	if w.elapsed != 500*time.Millisecond {
		t.Errorf("expected elapsed 500ms, got %v", w.elapsed)
	}

	sendTicks(w, 10)
	if w.elapsed != 1500*time.Millisecond {
		t.Errorf("expected elapsed 1500ms, got %v", w.elapsed)
	}
	view = w.View(80, 40)
	if !strings.Contains(view, Tagline) {
		t.Error("banner should be visible after phase 2")
	}
}

func TestParadeAdvances(t *testing.T) {
	w := newTestWelcome()
	first, _ := w.current()
	sendTicks(w, ticksPerShape)
	next, _ := w.current()
	if first.Name == next.Name {
		t.Errorf("parade did not advance from %q", first.Name)
	}
}

func TestKeypressEmitsDone(t *testing.T) {
	w := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should dismiss the splash")
	}
	if _, ok := cmd().(DoneMsg); !ok {
		t.Fatal("expected DoneMsg")
	}
}

func TestDoneEmittedOnce(t *testing.T) {
	w := newTestWelcome()
	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if _, cmd := sendTicks(w, 1); cmd != nil {
		t.Error("ticks stop once dismissed")
	}
}

func TestElapsedCapped(t *testing.T) {
	w := newTestWelcome()
	sendTicks(w, 60)
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestEmptyParade(t *testing.T) {
	w := New(nil)
	if w.View(80, 24) == "" {
		t.Error("expected a view even without shapes")
	}
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}

package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shapes/internal/random"
	"github.com/abhisek/shapes/internal/schedule"
	"github.com/abhisek/shapes/internal/screens/flashcards"
	"github.com/abhisek/shapes/internal/screens/home"
	"github.com/abhisek/shapes/internal/screens/quiz"
	"github.com/abhisek/shapes/internal/screens/quizend"
	"github.com/abhisek/shapes/internal/session"
	"github.com/abhisek/shapes/internal/shapes"
)

func newTestRouter(t *testing.T) (*Router, *session.Controller, *schedule.Manual) {
	t.Helper()
	clock := schedule.NewManual()
	ctrl := session.New(shapes.Builtin(),
		session.WithRand(random.New(4)),
		session.WithScheduler(clock))
	return New(ctrl, Options{}), ctrl, clock
}

func TestStartsOnHome(t *testing.T) {
	r, _, _ := newTestRouter(t)
	if _, ok := r.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", r.Active())
	}
	if r.Mode() != session.ModeHome {
		t.Errorf("mode = %v, want home", r.Mode())
	}
}

func TestEveryModeHasAScreen(t *testing.T) {
	r, ctrl, clock := newTestRouter(t)

	ctrl.StartFlashcards(true)
	r.Sync()
	if _, ok := r.Active().(*flashcards.FlashcardsScreen); !ok {
		t.Errorf("flashcards: got %T", r.Active())
	}

	ctrl.StartQuiz(true)
	r.Sync()
	if _, ok := r.Active().(*quiz.QuizScreen); !ok {
		t.Errorf("quiz: got %T", r.Active())
	}

	for ctrl.Mode() == session.ModeQuiz {
		cur, _ := ctrl.State().Current()
		ctrl.HandleQuizAnswer(cur.Name)
		clock.Flush()
	}
	r.Sync()
	if _, ok := r.Active().(*quizend.QuizEndScreen); !ok {
		t.Errorf("quiz end: got %T", r.Active())
	}

	ctrl.GoHome()
	r.Sync()
	if _, ok := r.Active().(*home.HomeScreen); !ok {
		t.Errorf("home: got %T", r.Active())
	}
}

func TestUpdateFollowsModeChange(t *testing.T) {
	r, ctrl, _ := newTestRouter(t)

	// Enter on the first home item starts basic flashcards.
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ctrl.Mode() != session.ModeFlashcards {
		t.Fatalf("controller mode = %v", ctrl.Mode())
	}
	if r.Active().Title() != "Flashcards" {
		t.Errorf("active = %q, want Flashcards", r.Active().Title())
	}

	r.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if r.Active().Title() != "Home" {
		t.Errorf("active = %q, want Home", r.Active().Title())
	}
}

func TestSyncNoopWithoutModeChange(t *testing.T) {
	r, _, _ := newTestRouter(t)
	before := r.Active()
	if cmd := r.Sync(); cmd != nil {
		t.Error("expected no command when the mode is unchanged")
	}
	if r.Active() != before {
		t.Error("screen must not be rebuilt when the mode is unchanged")
	}
}

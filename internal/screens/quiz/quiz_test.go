package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shapes/internal/random"
	"github.com/abhisek/shapes/internal/schedule"
	"github.com/abhisek/shapes/internal/session"
	"github.com/abhisek/shapes/internal/shapes"
)

func newTestScreen(t *testing.T) (*QuizScreen, *session.Controller, *schedule.Manual) {
	t.Helper()
	clock := schedule.NewManual()
	ctrl := session.New(shapes.Builtin(),
		session.WithRand(random.New(3)),
		session.WithScheduler(clock))
	ctrl.StartQuiz(true)
	return New(ctrl), ctrl, clock
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func correctIndex(st session.State) int {
	cur, _ := st.Current()
	for i, o := range st.QuizOptions {
		if o.Name == cur.Name {
			return i
		}
	}
	return -1
}

func TestQuiz_ViewShowsQuestionAndOptions(t *testing.T) {
	s, ctrl, _ := newTestScreen(t)
	view := s.View(80, 18)

	if !strings.Contains(view, Question) {
		t.Error("expected question prompt")
	}
	for _, o := range ctrl.State().QuizOptions {
		if !strings.Contains(view, o.Name) {
			t.Errorf("expected option %q in view", o.Name)
		}
	}
	if s.Status() != "0 pts" {
		t.Errorf("Status = %q, want %q", s.Status(), "0 pts")
	}
}

func TestQuiz_NumberKeyAnswers(t *testing.T) {
	s, ctrl, _ := newTestScreen(t)
	i := correctIndex(ctrl.State())

	s.Update(press(rune('1' + i)))

	st := ctrl.State()
	if !st.QuizAnswered {
		t.Fatal("expected question to be answered")
	}
	if st.QuizScore != 1 {
		t.Errorf("score = %d, want 1", st.QuizScore)
	}
	if got := Feedback(st); !strings.Contains(got, "Correct!") {
		t.Errorf("feedback = %q, want Correct!", got)
	}
	if s.Status() != "1 pts" {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestQuiz_ArrowsAndEnter(t *testing.T) {
	s, ctrl, _ := newTestScreen(t)
	want := correctIndex(ctrl.State())

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.Cursor() != 0 {
		t.Fatalf("up at the top: cursor = %d, want 0", s.Cursor())
	}
	for range want {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.Cursor() != want {
		t.Fatalf("cursor = %d, want %d", s.Cursor(), want)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !ctrl.State().AnsweredCorrectly() {
		t.Error("expected a correct answer via arrows and Enter")
	}
}

func TestQuiz_WrongAnswerFeedback(t *testing.T) {
	s, ctrl, _ := newTestScreen(t)
	st := ctrl.State()
	wrong := (correctIndex(st) + 1) % len(st.QuizOptions)
	cur, _ := st.Current()

	s.Update(press(rune('1' + wrong)))
	st = ctrl.State()
	if st.QuizScore != 0 {
		t.Errorf("score = %d, want 0", st.QuizScore)
	}
	if got := Feedback(st); !strings.Contains(got, "It's a "+cur.Name+"!") {
		t.Errorf("feedback = %q", got)
	}
}

func TestQuiz_KeysIgnoredWhileAnswered(t *testing.T) {
	s, ctrl, _ := newTestScreen(t)
	s.Update(press('1'))
	selected := ctrl.State().QuizSelected

	s.Update(press('2'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ctrl.State().QuizSelected != selected {
		t.Error("second answer must be ignored")
	}
	if len(s.KeyHints()) != 1 {
		t.Errorf("expected only the Esc hint while answered, got %d", len(s.KeyHints()))
	}
}

func TestQuiz_CursorResetsOnNextQuestion(t *testing.T) {
	s, ctrl, clock := newTestScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	clock.Advance(ctrl.Config().WrongDelay)
	if ctrl.State().Index != 1 {
		t.Fatalf("index = %d, want 1", ctrl.State().Index)
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0 on a new question", s.Cursor())
	}
}

func TestQuiz_EscCancelsPendingAdvance(t *testing.T) {
	s, ctrl, clock := newTestScreen(t)
	s.Update(press('1'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	if ctrl.Mode() != session.ModeHome {
		t.Fatalf("mode = %v, want home", ctrl.Mode())
	}
	clock.Advance(ctrl.Config().WrongDelay)
	if ctrl.Mode() != session.ModeHome || ctrl.State().Index != 0 {
		t.Error("auto-advance must not fire after leaving the quiz")
	}
}

package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shapes/internal/random"
	"github.com/abhisek/shapes/internal/schedule"
	"github.com/abhisek/shapes/internal/screens/welcome"
	"github.com/abhisek/shapes/internal/session"
	"github.com/abhisek/shapes/internal/shapes"
)

// newTestModel builds a model whose controller runs on a Loop that posts
// fired timers into fired instead of a real program.
func newTestModel(t *testing.T, splash bool) (AppModel, *session.Controller, chan any) {
	t.Helper()
	loop := schedule.NewLoop()
	fired := make(chan any, 4)
	loop.Bind(func(msg any) { fired <- msg })

	ctrl := session.New(shapes.Builtin(),
		session.WithRand(random.New(5)),
		session.WithScheduler(loop),
		session.WithConfig(session.Config{
			QuizLength:   10,
			CorrectDelay: time.Millisecond,
			WrongDelay:   time.Millisecond,
		}))
	m := newAppModel(Options{Controller: ctrl, Loop: loop, Splash: splash})
	return m, ctrl, fired
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestCtrlCQuits(t *testing.T) {
	m, _, _ := newTestModel(t, false)
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestFiredTimerAdvancesQuiz(t *testing.T) {
	m, ctrl, fired := newTestModel(t, false)

	// Home: move to "Quiz · Basic" and start it.
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, session.ModeQuiz, ctrl.Mode())
	assert.Equal(t, "Quiz", m.router.Active().Title())

	m, _ = update(t, m, tea.KeyPressMsg{Code: '1', Text: "1"})
	require.True(t, ctrl.State().QuizAnswered)

	var msg any
	select {
	case msg = <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("auto-advance never fired")
	}
	_, isFired := msg.(schedule.FiredMsg)
	require.True(t, isFired)
	assert.True(t, ctrl.State().QuizAnswered, "callback only runs on the UI goroutine")

	_, _ = update(t, m, msg)
	assert.Equal(t, 1, ctrl.State().Index)
	assert.False(t, ctrl.State().QuizAnswered)
}

func TestFiredTimerAfterLeavingQuizIsIgnored(t *testing.T) {
	m, ctrl, fired := newTestModel(t, false)
	ctrl.StartQuiz(true)
	m.router.Sync()

	m, _ = update(t, m, tea.KeyPressMsg{Code: '1', Text: "1"})
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.Equal(t, session.ModeHome, ctrl.Mode())

	select {
	case msg := <-fired:
		// The timer may have posted before Cancel ran; running it must be a no-op.
		_, _ = update(t, m, msg)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, session.ModeHome, ctrl.Mode())
	assert.Equal(t, 0, ctrl.State().Index)
}

func TestSplashThenHome(t *testing.T) {
	m, _, _ := newTestModel(t, true)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	require.NotNil(t, m.splash)

	m, cmd := update(t, m, tea.KeyPressMsg{Code: ' ', Text: " "})
	require.NotNil(t, cmd)
	_, ok := cmd().(welcome.DoneMsg)
	require.True(t, ok)

	m, _ = update(t, m, welcome.DoneMsg{})
	assert.Nil(t, m.splash)
	assert.Equal(t, "Home", m.router.Active().Title())
}

func TestViewFrame(t *testing.T) {
	m, ctrl, _ := newTestModel(t, false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	frame := m.render()
	assert.Contains(t, frame, "Shape Explorer")
	assert.Contains(t, frame, "Home")
	assert.True(t, m.View().AltScreen)

	ctrl.StartQuiz(true)
	m.router.Sync()
	frame = m.render()
	assert.Contains(t, frame, "0 pts")
	assert.Contains(t, frame, "What shape is this?")
}

func TestViewTooSmall(t *testing.T) {
	m, _, _ := newTestModel(t, false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.True(t, strings.Contains(m.render(), "Terminal too small"))
}

package quiz

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapes/internal/art"
	"github.com/abhisek/shapes/internal/screen"
	"github.com/abhisek/shapes/internal/session"
	"github.com/abhisek/shapes/internal/ui/components"
	"github.com/abhisek/shapes/internal/ui/keys"
	"github.com/abhisek/shapes/internal/ui/layout"
	"github.com/abhisek/shapes/internal/ui/theme"
)

// Question is the prompt shown above the options.
const Question = "What shape is this?"

// QuizScreen asks one question at a time. Answers are applied to the
// controller; the move to the next question happens on its timer.
type QuizScreen struct {
	ctrl *session.Controller

	// cursor is reset whenever the question changes.
	cursor   int
	question int
	quizID   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the controller's running quiz.
func New(ctrl *session.Controller) *QuizScreen {
	st := ctrl.State()
	return &QuizScreen{ctrl: ctrl, question: st.Index, quizID: st.QuizID}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Status shows the running score.
func (s *QuizScreen) Status() string {
	return Points(s.ctrl.State().QuizScore)
}

// Points formats a score badge.
func Points(score int) string {
	return fmt.Sprintf("%d pts", score)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.ctrl.State().QuizAnswered {
		return keys.Hints(keys.Default.Cancel)
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		keys.Hint(keys.Default.Up),
		keys.Hint(keys.Default.Down),
		keys.Hint(keys.Default.Select),
		keys.Hint(keys.Default.Cancel),
	}
}

// Cursor returns the highlighted option index.
func (s *QuizScreen) Cursor() int {
	s.sync(s.ctrl.State())
	return s.cursor
}

// sync resets the cursor when a new question is showing.
func (s *QuizScreen) sync(st session.State) {
	if st.Index != s.question || st.QuizID != s.quizID {
		s.question, s.quizID, s.cursor = st.Index, st.QuizID, 0
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	st := s.ctrl.State()
	s.sync(st)

	k := keys.Default
	if key.Matches(kmsg, k.Cancel) {
		s.ctrl.GoHome()
		return s, nil
	}
	if st.QuizAnswered {
		return s, nil
	}

	if i := k.OptionIndex(kmsg); i >= 0 {
		s.cursor = min(i, len(st.QuizOptions)-1)
		s.ctrl.AnswerOption(i)
		return s, nil
	}
	switch {
	case key.Matches(kmsg, k.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(kmsg, k.Down):
		if s.cursor < len(st.QuizOptions)-1 {
			s.cursor++
		}
	case key.Matches(kmsg, k.Select):
		s.ctrl.AnswerOption(s.cursor)
	}
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	st := s.ctrl.State()
	s.sync(st)
	cur, ok := st.Current()
	if !ok {
		return ""
	}

	cw := components.ContentWidth(width)
	rows := artRows(height)

	progress := components.NewProgressBar("Question", st.Index+1, len(st.Deck), cw-lipgloss.Width(Points(st.QuizScore))-4).View()
	top := lipgloss.JoinHorizontal(lipgloss.Center, progress, "  ", theme.Badge.Render(Points(st.QuizScore)))

	names := make([]string, len(st.QuizOptions))
	for i, o := range st.QuizOptions {
		names[i] = o.Name
	}
	mc := components.NewMultiChoice(Question, names)
	mc.Cursor = s.cursor
	mc.Answered = st.QuizAnswered
	mc.Chosen = st.QuizSelected
	mc.Correct = cur.Name

	body := lipgloss.JoinVertical(lipgloss.Center,
		top,
		"",
		art.Render(cur.Art, rows*2, rows),
		"",
		lipgloss.NewStyle().Width(cw).Render(mc.View()),
		Feedback(st),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// Feedback returns the line shown after an answer, or "" before one.
func Feedback(st session.State) string {
	if !st.QuizAnswered {
		return ""
	}
	if st.AnsweredCorrectly() {
		return theme.Correct.Render("Correct!")
	}
	cur, _ := st.Current()
	return theme.Incorrect.Render(fmt.Sprintf("It's a %s!", cur.Name))
}

// artRows sizes the illustration to the available height.
func artRows(height int) int {
	return max(4, min(12, height-14))
}

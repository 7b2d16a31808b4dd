package quizend

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapes/internal/screen"
	"github.com/abhisek/shapes/internal/session"
	"github.com/abhisek/shapes/internal/ui/components"
	"github.com/abhisek/shapes/internal/ui/keys"
	"github.com/abhisek/shapes/internal/ui/layout"
	"github.com/abhisek/shapes/internal/ui/theme"
)

// Heading is the title line of the results card.
const Heading = "Quiz Complete!"

const buttonWidth = 16

// QuizEndScreen displays the final score.
type QuizEndScreen struct {
	ctrl *session.Controller
}

var _ screen.Screen = (*QuizEndScreen)(nil)
var _ screen.KeyHintProvider = (*QuizEndScreen)(nil)

// New creates a QuizEndScreen for the controller's finished quiz.
func New(ctrl *session.Controller) *QuizEndScreen {
	return &QuizEndScreen{ctrl: ctrl}
}

func (s *QuizEndScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizEndScreen) Title() string {
	return "Results"
}

func (s *QuizEndScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r/Enter", Description: "Try Again"},
		{Key: "h/Esc", Description: "Home"},
	}
}

func (s *QuizEndScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, keys.Default.Retry):
			s.ctrl.RestartQuiz()
		case key.Matches(kmsg, keys.Default.Home):
			s.ctrl.GoHome()
		}
	}
	return s, nil
}

func (s *QuizEndScreen) View(width, height int) string {
	st := s.ctrl.State()
	total := len(st.Deck)
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(Heading))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(ScoreLine(st.QuizScore, total)))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(fmt.Sprintf("%d%%", session.Percent(st.QuizScore, total))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(session.Verdict(st.QuizScore, total)))

	if len(st.Missed) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Muted.Render("Keep practicing:"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(cw - 8).
			Align(lipgloss.Center).
			Render(strings.Join(st.Missed, ", ")))
	}

	card := components.ArcadeCard(b.String(), cw)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		components.ArcadeButton("Try Again", true, buttonWidth),
		"  ",
		components.ArcadeButton("Home", false, buttonWidth))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, card, "", buttons))
}

// ScoreLine formats "score / total".
func ScoreLine(score, total int) string {
	return fmt.Sprintf("%d / %d", score, total)
}

package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapes/internal/ui/theme"
)

// MultiChoice renders the answer options of a quiz question. It holds no
// answer state of its own: the caller fills Chosen and Correct once the
// question has been answered.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int

	// Answered switches to feedback colouring.
	Answered bool
	// Chosen is the option the learner picked.
	Chosen string
	// Correct is the right answer.
	Correct string
}

// NewMultiChoice creates a multiple-choice view with the cursor on the
// first option.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{Question: question, Options: options}
}

// MoveUp moves the cursor up one option.
func (m *MultiChoice) MoveUp() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

// MoveDown moves the cursor down one option.
func (m *MultiChoice) MoveDown() {
	if m.Cursor < len(m.Options)-1 {
		m.Cursor++
	}
}

// View renders the question and its numbered options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Answered {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.Answered && opt == m.Correct:
			style = theme.Correct
			line += "  ✓"
		case m.Answered && opt == m.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.Answered:
			style = theme.Muted
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// IsCorrect reports whether the chosen option is the right one.
func (m MultiChoice) IsCorrect() bool {
	return m.Answered && m.Chosen == m.Correct
}

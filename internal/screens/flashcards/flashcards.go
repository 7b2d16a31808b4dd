package flashcards

import (
	"fmt"
	"strings"

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

// RevealPrompt is shown on a card that has not been flipped yet.
const RevealPrompt = "Press Space to reveal"

// FlashcardsScreen shows one shape at a time and reveals its name on flip.
type FlashcardsScreen struct {
	ctrl *session.Controller
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)
var _ screen.StatusProvider = (*FlashcardsScreen)(nil)

// New creates a FlashcardsScreen over the controller's current deck.
func New(ctrl *session.Controller) *FlashcardsScreen {
	return &FlashcardsScreen{ctrl: ctrl}
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardsScreen) Status() string {
	st := s.ctrl.State()
	return fmt.Sprintf("%d / %d", st.Index+1, len(st.Deck))
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	k := keys.Default
	return keys.Hints(k.Prev, k.Next, k.Flip, k.Shuffle, k.Cancel)
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	k := keys.Default
	switch {
	case key.Matches(kmsg, k.Cancel):
		s.ctrl.GoHome()
	case key.Matches(kmsg, k.Flip):
		s.ctrl.FlipCard()
	case key.Matches(kmsg, k.Next):
		s.ctrl.NextCard()
	case key.Matches(kmsg, k.Prev):
		s.ctrl.PrevCard()
	case key.Matches(kmsg, k.Shuffle):
		s.ctrl.ShuffleDeck()
	}
	return s, nil
}

func (s *FlashcardsScreen) View(width, height int) string {
	st := s.ctrl.State()
	cur, ok := st.Current()
	if !ok {
		return ""
	}

	cw := components.ContentWidth(width)
	rows := artRows(height)

	var sections []string
	sections = append(sections, components.NewProgressBar("Card", st.Index+1, len(st.Deck), cw).View())

	var label string
	if st.Flipped {
		label = theme.Reveal.Render(cur.Name)
	} else {
		label = theme.Hint.Render(RevealPrompt)
	}
	card := lipgloss.JoinVertical(lipgloss.Center, art.Render(cur.Art, rows*2, rows), "", label)
	sections = append(sections, components.ArcadeCard(card, cw))

	sections = append(sections, navLine(st))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, strings.Join(sections, "\n\n")))
}

// navLine dims the arrows that cannot move.
func navLine(st session.State) string {
	prev, next := theme.Selected.Render("◀ prev"), theme.Selected.Render("next ▶")
	if st.AtFirst() {
		prev = theme.Muted.Render("◀ prev")
	}
	if st.AtLast() {
		next = theme.Muted.Render("next ▶")
	}
	return prev + "     " + next
}

// artRows sizes the illustration to the available height.
func artRows(height int) int {
	return max(6, min(16, height-12))
}

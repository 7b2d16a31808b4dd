package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shapes/internal/random"
	"github.com/abhisek/shapes/internal/screen"
	"github.com/abhisek/shapes/internal/session"
	"github.com/abhisek/shapes/internal/shapes"
	"github.com/abhisek/shapes/internal/ui/components"
	"github.com/abhisek/shapes/internal/ui/keys"
	"github.com/abhisek/shapes/internal/ui/layout"
)

// Menu labels, in display order.
const (
	LabelFlashcardsBasic = "Flashcards · Basic"
	LabelFlashcardsAll   = "Flashcards · All Shapes"
	LabelQuizBasic       = "Quiz · Basic"
	LabelQuizAll         = "Quiz · All Shapes"
	LabelExit            = "Exit"
)

// HomeScreen is the mode picker.
type HomeScreen struct {
	ctrl       *session.Controller
	menu       components.Menu
	menuLabels []string
	featured   shapes.Shape
	hasArt     bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. preferAll starts the cursor on the all-shapes
// flashcards entry. When rng is set, a random shape decorates the screen.
func New(ctrl *session.Controller, preferAll bool, rng random.Source) *HomeScreen {
	menuLabels := []string{LabelFlashcardsBasic, LabelFlashcardsAll, LabelQuizBasic, LabelQuizAll, LabelExit}

	do := func(fn func()) func() tea.Cmd {
		return func() tea.Cmd {
			fn()
			return nil
		}
	}
	noBasic := ctrl.PoolSize(true) == 0
	items := []components.MenuItem{
		{Label: menuLabels[0], Action: do(func() { ctrl.StartFlashcards(true) }), Disabled: noBasic},
		{Label: menuLabels[1], Action: do(func() { ctrl.StartFlashcards(false) })},
		{Label: menuLabels[2], Action: do(func() { ctrl.StartQuiz(true) }), Disabled: noBasic},
		{Label: menuLabels[3], Action: do(func() { ctrl.StartQuiz(false) })},
		{Label: menuLabels[4], Action: func() tea.Cmd { return tea.Quit }},
	}

	h := &HomeScreen{
		ctrl:       ctrl,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
	if preferAll {
		h.menu.Select(1)
	}
	if rng != nil {
		var ok bool
		h.featured, ok = random.Pick(rng, ctrl.Catalog().All())
		h.hasArt = ok && !h.featured.Art.IsZero()
	}
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.Up, keys.Default.Down, keys.Default.Select, keys.Default.Quit)
}

// Selected returns the label under the cursor.
func (h *HomeScreen) Selected() string {
	return h.menuLabels[h.menu.Selected]
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer to estimate
	// the terminal height.
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact && h.hasArt && height >= featuredMinHeight {
		sections = append(sections, renderFeatured(h.featured, cw))
	}

	sections = append(sections, renderStatsBar(h.ctrl.PoolSize(false), h.ctrl.PoolSize(true), cw, compact))

	if compact || height < buttonsMinHeight {
		sections = append(sections, renderMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, components.ArcadeMenu(h.menuLabels, h.menu.Selected, buttonWidth, cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

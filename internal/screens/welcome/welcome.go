package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapes/internal/art"
	"github.com/abhisek/shapes/internal/screen"
	"github.com/abhisek/shapes/internal/shapes"
	"github.com/abhisek/shapes/internal/ui/components"
	"github.com/abhisek/shapes/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond

	// ticksPerShape is how long each parade shape stays up.
	ticksPerShape = 6

	paradeCols = 20
	paradeRows = 10
)

// Tagline is shown under the banner once it appears.
const Tagline = "Let's learn our shapes!"

// sparkle frames cycle around the parade
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// DoneMsg is emitted once when the learner dismisses the splash.
type DoneMsg struct{}

// WelcomeScreen shows a splash animation: a parade of shapes, then the
// banner. Any key dismisses it.
type WelcomeScreen struct {
	parade    []shapes.Shape
	elapsed   time.Duration
	tickCount int
	done      bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen cycling through parade.
func New(parade []shapes.Shape) *WelcomeScreen {
	kept := make([]shapes.Shape, 0, len(parade))
	for _, s := range parade {
		if !s.Art.IsZero() {
			kept = append(kept, s)
		}
	}
	return &WelcomeScreen{parade: kept}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.done {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.finish()
	}

	return w, nil
}

func (w *WelcomeScreen) finish() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	return func() tea.Msg { return DoneMsg{} }
}

// current returns the parade shape on display.
func (w *WelcomeScreen) current() (shapes.Shape, bool) {
	if len(w.parade) == 0 {
		return shapes.Shape{}, false
	}
	return w.parade[(w.tickCount/ticksPerShape)%len(w.parade)], true
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	if cur, ok := w.current(); ok {
		rendered := art.Render(cur.Art, paradeCols, paradeRows)

		// Phase 2+: sparkles around the shape
		if w.elapsed >= phase1End {
			sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
			s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
			s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

			lines := strings.Split(rendered, "\n")
			for i := range lines {
				switch i {
				case 0, paradeRows - 1:
					lines[i] = s1 + "  " + lines[i] + "  " + s2
				case paradeRows / 2:
					lines[i] = s2 + "  " + lines[i] + "  " + s1
				default:
					lines[i] = "   " + lines[i] + "   "
				}
			}
			rendered = strings.Join(lines, "\n")
		}
		sections = append(sections, rendered, theme.Hint.Render(cur.Name))
	}

	// Phase 3+: banner + tagline
	if w.elapsed >= phase2End {
		sections = append(sections, "", components.RenderBanner(width, false), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline))
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapes/internal/art"
	"github.com/abhisek/shapes/internal/shapes"
	"github.com/abhisek/shapes/internal/ui/components"
	"github.com/abhisek/shapes/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 28

// Content heights needed for the bordered menu buttons and the featured
// shape.
const (
	buttonsMinHeight  = 32
	featuredMinHeight = 44
)

// Featured art size in terminal cells.
const (
	featuredCols = 16
	featuredRows = 8
)

// renderTitle returns the block-letter title or its compact fallback.
func renderTitle(cw int, compact bool) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.RenderBanner(cw, compact))
}

// renderFeatured draws a small illustration with its name underneath.
func renderFeatured(s shapes.Shape, cw int) string {
	pic := art.Render(s.Art, featuredCols, featuredRows)
	caption := theme.Hint.Render(s.Name)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, pic, caption))
}

// renderStatsBar shows the catalog size in a double-bordered box.
func renderStatsBar(total, basic, cw int, compact bool) string {
	totalStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	basicStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			totalStyle.Render(fmt.Sprintf("◆%d", total)),
			basicStyle.Render(fmt.Sprintf("★%d", basic)))
	} else {
		stats = fmt.Sprintf("%s  %s",
			totalStyle.Render(fmt.Sprintf("◆ %d SHAPES", total)),
			basicStyle.Render(fmt.Sprintf("★ %d BASIC", basic)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenuCompact renders menu items as plain lines for small terminals
// where bordered buttons would overflow.
func renderMenuCompact(m components.Menu, cw int) string {
	lines := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		var line string
		switch {
		case item.Disabled:
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + item.Label)
		case i == m.Selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + item.Label + " ")
		default:
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + item.Label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

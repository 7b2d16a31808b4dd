package art

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Raster samples fig at the centre of each cell of a cols×rows grid laid
// over the canvas.
func Raster(fig Figure, cols, rows int) [][]bool {
	if fig == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	grid := make([][]bool, rows)
	for r := range rows {
		grid[r] = make([]bool, cols)
		y := (float64(r) + 0.5) / float64(rows) * CanvasSize
		for c := range cols {
			x := (float64(c) + 0.5) / float64(cols) * CanvasSize
			grid[r][c] = fig.Contains(x, y)
		}
	}
	return grid
}

// Render draws ill as coloured blocks. Terminal cells are roughly twice as
// tall as they are wide, so callers usually pass cols = 2*rows.
func Render(ill Illustration, cols, rows int) string {
	grid := Raster(ill.Figure(), cols, rows)
	if grid == nil {
		return ""
	}
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(ill.Fill()))

	lines := make([]string, len(grid))
	for r, row := range grid {
		var b strings.Builder
		for c := 0; c < len(row); {
			// Render runs of equal cells together to keep escape codes short.
			end := c
			for end < len(row) && row[end] == row[c] {
				end++
			}
			if row[c] {
				b.WriteString(fill.Render(strings.Repeat("█", end-c)))
			} else {
				b.WriteString(strings.Repeat(" ", end-c))
			}
			c = end
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// RenderPlain draws ill with '#' and '.' and no colour, for tests and
// non-terminal output.
func RenderPlain(fig Figure, cols, rows int) string {
	grid := Raster(fig, cols, rows)
	lines := make([]string, len(grid))
	for r, row := range grid {
		var b strings.Builder
		for _, on := range row {
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

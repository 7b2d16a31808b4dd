package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestMenu_Navigation(t *testing.T) {
	chosen := ""
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			chosen = label
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "a", Action: pick("a")},
		{Label: "b", Disabled: true},
		{Label: "c", Action: pick("c")},
	})
	assert.Equal(t, 0, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected, "disabled items are skipped")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "c", chosen)

	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 0, m.Selected)

	m.Select(1)
	assert.Equal(t, 0, m.Selected, "cannot select a disabled item")
	m.Select(2)
	assert.Equal(t, 2, m.Selected)
}

func TestMultiChoice(t *testing.T) {
	mc := NewMultiChoice("What shape is this?", []string{"circle", "square", "oval", "kite"})
	mc.MoveUp()
	assert.Equal(t, 0, mc.Cursor)
	for range 5 {
		mc.MoveDown()
	}
	assert.Equal(t, 3, mc.Cursor)

	view := mc.View()
	assert.Contains(t, view, "What shape is this?")
	assert.Contains(t, view, "1)  circle")
	assert.Contains(t, view, "4)  kite")
	assert.NotContains(t, view, "✓")

	mc.Answered, mc.Chosen, mc.Correct = true, "square", "oval"
	assert.False(t, mc.IsCorrect())
	view = mc.View()
	assert.Contains(t, view, "oval  ✓")
	assert.Contains(t, view, "square  ✗")

	mc.Chosen = "oval"
	assert.True(t, mc.IsCorrect())
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar("", 3, 10, 40)
	assert.InDelta(t, 0.3, p.Fraction(), 1e-9)
	assert.True(t, strings.Contains(p.View(), "3 / 10"))

	assert.Zero(t, NewProgressBar("", 1, 0, 40).Fraction())
	assert.Equal(t, 1.0, NewProgressBar("", 12, 10, 40).Fraction())
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 60, ContentWidth(200))
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 44, ContentWidth(50))
}

package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shapes/internal/random"
	"github.com/abhisek/shapes/internal/schedule"
	"github.com/abhisek/shapes/internal/session"
	"github.com/abhisek/shapes/internal/shapes"
)

// answerer feeds one line per Read, computed from the live quiz state.
// Questions whose index is in wrong get a wrong option number.
type answerer struct {
	ctrl  *session.Controller
	wrong map[int]bool
}

func (a *answerer) Read(p []byte) (int, error) {
	st := a.ctrl.State()
	cur, _ := st.Current()
	answer := cur.Name
	if a.wrong[st.Index] {
		for i, o := range st.QuizOptions {
			if o.Name != cur.Name {
				answer = fmt.Sprint(i + 1)
				break
			}
		}
	}
	return copy(p, answer+"\n"), nil
}

func newDrillController(t *testing.T, catalog shapes.Catalog, length int) (*session.Controller, *schedule.Manual) {
	t.Helper()
	clock := schedule.NewManual()
	cfg := session.DefaultConfig()
	cfg.QuizLength = length
	ctrl := session.New(catalog,
		session.WithConfig(cfg),
		session.WithScheduler(clock),
		session.WithRand(random.New(7)),
	)
	return ctrl, clock
}

func TestDrill_AllCorrect(t *testing.T) {
	ctrl, clock := newDrillController(t, shapes.Builtin(), 5)
	var out bytes.Buffer

	err := drill(&answerer{ctrl: ctrl}, &out, ctrl, clock, true)
	require.NoError(t, err)

	assert.Equal(t, session.ModeQuizEnd, ctrl.Mode())
	got := out.String()
	assert.Contains(t, got, "── Question 1/5 ──  0 pts")
	assert.Contains(t, got, "── Question 5/5 ──  4 pts")
	assert.Contains(t, got, "What shape is this?")
	assert.Equal(t, 5, strings.Count(got, "✓ Correct!"))
	assert.Contains(t, got, "── Summary: 5/5 correct (100%) ──")
	assert.Contains(t, got, "Perfect score! You are a shape master!")
	assert.NotContains(t, got, "Keep practicing")
}

func TestDrill_WrongAnswerListsMissed(t *testing.T) {
	ctrl, clock := newDrillController(t, shapes.Builtin(), 5)
	var out bytes.Buffer

	var missed string
	ctrl.Subscribe(func(st session.State) {
		if st.QuizAnswered && !st.AnsweredCorrectly() {
			cur, _ := st.Current()
			missed = cur.Name
		}
	})

	err := drill(&answerer{ctrl: ctrl, wrong: map[int]bool{2: true}}, &out, ctrl, clock, true)
	require.NoError(t, err)

	got := out.String()
	require.NotEmpty(t, missed)
	assert.Contains(t, got, fmt.Sprintf("✗ It's a %s!", missed))
	assert.Contains(t, got, "── Summary: 4/5 correct (80%) ──")
	assert.Contains(t, got, "Great job! Almost perfect!")
	assert.Contains(t, got, "Keep practicing: "+missed)
}

func TestDrill_InvalidInputThenEOF(t *testing.T) {
	ctrl, clock := newDrillController(t, shapes.Builtin(), 5)
	var out bytes.Buffer

	err := drill(strings.NewReader("9\nbanana\n\n"), &out, ctrl, clock, false)
	require.NoError(t, err)

	got := out.String()
	assert.Equal(t, 3, strings.Count(got, "Type 1-4 or a shape name."))
	assert.Contains(t, got, "(input closed)")
	assert.Equal(t, session.ModeHome, ctrl.Mode())
	assert.NotContains(t, got, "Summary")
}

func TestDrill_EmptyPool(t *testing.T) {
	catalog := shapes.NewCatalog([]shapes.Shape{
		{Name: "kite", Category: shapes.CategoryMore},
		{Name: "parallelogram", Category: shapes.CategoryMore},
		{Name: "trapezium", Category: shapes.CategoryMore},
		{Name: "irregular pentagon", Category: shapes.CategoryMore},
	})
	ctrl, clock := newDrillController(t, catalog, 5)

	err := drill(strings.NewReader(""), &bytes.Buffer{}, ctrl, clock, true)
	assert.ErrorIs(t, err, errEmptyPool)
}

func TestParseAnswer(t *testing.T) {
	options := []shapes.Shape{
		{Name: "circle"}, {Name: "scalene triangle"}, {Name: "kite"}, {Name: "oval"},
	}

	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{"1", "circle", true},
		{" 4 ", "oval", true},
		{"0", "", false},
		{"5", "", false},
		{"Kite", "kite", true},
		{"scalene triangle", "scalene triangle", true},
		{"square", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := parseAnswer(tt.line, options)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlainArt(t *testing.T) {
	circle, ok := shapes.Builtin().ByName("circle")
	require.True(t, ok)

	got := plainArt(circle.Art)
	assert.Contains(t, got, "#")
	assert.NotContains(t, got, ".")
	assert.Empty(t, plainArt(shapes.Shape{}.Art))
}

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartFlashcards(t *testing.T) {
	f := newFixture(t, testCatalog(10, 6))

	f.ctrl.StartFlashcards(true)
	st := f.ctrl.State()
	assert.Equal(t, ModeFlashcards, st.Mode)
	assert.Len(t, st.Deck, 10)
	assert.Zero(t, st.Index)
	assert.False(t, st.Flipped)
	assert.True(t, st.UseBasicPool)
	assert.ElementsMatch(t, names(testCatalog(10, 0).All()), names(st.Deck))

	f.ctrl.StartFlashcards(false)
	st = f.ctrl.State()
	assert.Len(t, st.Deck, 16)
	assert.False(t, st.UseBasicPool)
}

func TestFlipCard(t *testing.T) {
	f := newFixture(t, testCatalog(5, 0))
	f.ctrl.StartFlashcards(true)
	cur, ok := f.ctrl.State().Current()
	require.True(t, ok)

	f.ctrl.FlipCard()
	assert.True(t, f.ctrl.State().Flipped)
	assert.Equal(t, []string{"say:" + cur.Name}, f.cues.events)

	f.ctrl.FlipCard()
	assert.False(t, f.ctrl.State().Flipped)
	assert.Len(t, f.cues.events, 1, "turning a card face down says nothing")
}

func TestNavigation(t *testing.T) {
	f := newFixture(t, testCatalog(3, 0))
	f.ctrl.StartFlashcards(true)

	f.ctrl.FlipCard()
	f.ctrl.NextCard()
	st := f.ctrl.State()
	assert.Equal(t, 1, st.Index)
	assert.False(t, st.Flipped, "moving resets the card face")

	f.ctrl.NextCard()
	assert.Equal(t, 2, f.ctrl.State().Index)
	assert.True(t, f.ctrl.State().AtLast())

	f.ctrl.PrevCard()
	f.ctrl.PrevCard()
	assert.Equal(t, 0, f.ctrl.State().Index)
	assert.True(t, f.ctrl.State().AtFirst())
}

func TestNavigationBoundariesAreNoOps(t *testing.T) {
	f := newFixture(t, testCatalog(3, 0))
	f.ctrl.StartFlashcards(true)

	notified := 0
	f.ctrl.Subscribe(func(State) { notified++ })

	f.ctrl.FlipCard()
	before := f.ctrl.State()
	f.ctrl.PrevCard()
	assert.Equal(t, before, f.ctrl.State(), "PrevCard at index 0 changes nothing")

	f.ctrl.NextCard()
	f.ctrl.NextCard()
	f.ctrl.FlipCard()
	before = f.ctrl.State()
	notified = 0
	f.ctrl.NextCard()
	assert.Equal(t, before, f.ctrl.State(), "NextCard at the last index changes nothing")
	assert.Zero(t, notified)
}

func TestFlashcardOpsIgnoredOutsideFlashcards(t *testing.T) {
	f := newFixture(t, testCatalog(10, 0))

	f.ctrl.FlipCard()
	f.ctrl.NextCard()
	f.ctrl.ShuffleDeck()
	assert.Equal(t, ModeHome, f.ctrl.Mode())
	assert.Empty(t, f.ctrl.State().Deck)

	f.ctrl.StartQuiz(true)
	before := f.ctrl.State()
	f.ctrl.FlipCard()
	f.ctrl.NextCard()
	f.ctrl.PrevCard()
	f.ctrl.ShuffleDeck()
	assert.Equal(t, before, f.ctrl.State())
}

func TestShuffleDeck(t *testing.T) {
	f := newFixture(t, testCatalog(12, 0))
	f.ctrl.StartFlashcards(true)
	f.ctrl.NextCard()
	f.ctrl.NextCard()
	f.ctrl.FlipCard()
	before := f.ctrl.State()

	f.ctrl.ShuffleDeck()
	st := f.ctrl.State()
	assert.Zero(t, st.Index)
	assert.False(t, st.Flipped)
	assert.ElementsMatch(t, names(before.Deck), names(st.Deck))
}

func TestStartFlashcardsCancelsPendingAdvance(t *testing.T) {
	f := newFixture(t, testCatalog(10, 0))
	f.ctrl.StartQuiz(true)
	f.ctrl.AnswerOption(0)
	require.True(t, f.ctrl.Pending())

	f.ctrl.StartFlashcards(true)
	assert.False(t, f.ctrl.Pending())

	before := f.ctrl.State()
	f.clock.Advance(f.ctrl.Config().WrongDelay * 2)
	assert.Equal(t, before, f.ctrl.State())
}

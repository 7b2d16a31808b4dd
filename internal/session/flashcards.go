package session

import "github.com/abhisek/shapes/internal/random"

// StartFlashcards begins a flashcard run over a shuffled pool.
func (c *Controller) StartFlashcards(useBasic bool) {
	c.cancelPending()
	prevBasic := c.state.UseBasicPool
	c.state.UseBasicPool = useBasic
	deck := random.Shuffle(c.rng, c.pool().All())
	if len(deck) == 0 {
		c.state.UseBasicPool = prevBasic
		c.logger.Warn("empty pool, flashcards not started", "pool", poolName(useBasic))
		return
	}
	c.state.Deck = deck
	c.state.Index = 0
	c.state.Flipped = false
	c.state.Mode = ModeFlashcards
	c.logger.Info("flashcards started", "pool", poolName(useBasic), "cards", len(deck))
	c.notify()
}

// FlipCard turns the current card over. The name is spoken when the card
// turns face up.
func (c *Controller) FlipCard() {
	if c.state.Mode != ModeFlashcards {
		return
	}
	c.state.Flipped = !c.state.Flipped
	if c.state.Flipped {
		if cur, ok := c.state.Current(); ok {
			c.cues.SayShape(cur.Name)
		}
	}
	c.notify()
}

// NextCard moves to the next card. No-op on the last card.
func (c *Controller) NextCard() {
	if c.state.Mode != ModeFlashcards || c.state.Index >= len(c.state.Deck)-1 {
		return
	}
	c.state.Index++
	c.state.Flipped = false
	c.notify()
}

// PrevCard moves to the previous card. No-op on the first card.
func (c *Controller) PrevCard() {
	if c.state.Mode != ModeFlashcards || c.state.Index <= 0 {
		return
	}
	c.state.Index--
	c.state.Flipped = false
	c.notify()
}

// ShuffleDeck reshuffles the current flashcard deck and starts it over.
func (c *Controller) ShuffleDeck() {
	if c.state.Mode != ModeFlashcards {
		return
	}
	c.state.Deck = random.Shuffle(c.rng, c.state.Deck)
	c.state.Index = 0
	c.state.Flipped = false
	c.notify()
}

package session

import (
	"github.com/google/uuid"

	"github.com/abhisek/shapes/internal/random"
	"github.com/abhisek/shapes/internal/shapes"
)

// StartQuiz begins a new quiz of at most Config.QuizLength questions drawn
// from a shuffled pool. Any pending auto-advance is cancelled.
func (c *Controller) StartQuiz(useBasic bool) {
	c.cancelPending()
	prevBasic := c.state.UseBasicPool
	c.state.UseBasicPool = useBasic

	deck := random.Shuffle(c.rng, c.pool().All())
	if len(deck) == 0 {
		c.state.UseBasicPool = prevBasic
		c.logger.Warn("empty pool, quiz not started", "pool", poolName(useBasic))
		return
	}
	if len(deck) > c.cfg.QuizLength {
		deck = deck[:c.cfg.QuizLength]
	}

	c.state.Deck = deck
	c.state.Index = 0
	c.state.Flipped = false
	c.state.QuizScore = 0
	c.state.QuizAnswered = false
	c.state.QuizSelected = ""
	c.state.Missed = nil
	c.state.QuizID = uuid.New().String()
	c.generateQuizOptions()
	c.state.Mode = ModeQuiz

	c.logger.Info("quiz started",
		"quiz_id", c.state.QuizID,
		"pool", poolName(useBasic),
		"questions", len(deck))
	c.notify()
}

// RestartQuiz starts a fresh quiz over the same pool.
func (c *Controller) RestartQuiz() {
	c.StartQuiz(c.state.UseBasicPool)
}

// generateQuizOptions fills QuizOptions for the current question: the
// correct shape plus up to three distractors. Distractors come from the
// pool first and are topped up from the full catalog when the pool is too
// small. Names never repeat.
func (c *Controller) generateQuizOptions() {
	correct, ok := c.state.Current()
	if !ok {
		c.state.QuizOptions = nil
		return
	}

	want := OptionsPerQuestion - 1
	chosen := map[string]bool{correct.Name: true}
	distractors := make([]shapes.Shape, 0, want)

	take := func(candidates []shapes.Shape) {
		for _, s := range random.Shuffle(c.rng, candidates) {
			if len(distractors) == want {
				return
			}
			if chosen[s.Name] {
				continue
			}
			chosen[s.Name] = true
			distractors = append(distractors, s)
		}
	}

	take(c.pool().Without(chosen))
	if len(distractors) < want {
		take(c.catalog.Without(chosen))
	}
	if len(distractors) < want {
		c.logger.Warn("catalog too small for a full question",
			"quiz_id", c.state.QuizID,
			"options", len(distractors)+1)
	}

	c.state.QuizOptions = random.Shuffle(c.rng, append(distractors, correct))
}

// HandleQuizAnswer records the learner's choice for the current question
// and schedules the move to the next one. Repeated answers before the
// advance fires are ignored.
func (c *Controller) HandleQuizAnswer(name string) {
	if c.state.Mode != ModeQuiz || c.state.QuizAnswered {
		return
	}
	correct, ok := c.state.Current()
	if !ok {
		return
	}

	c.state.QuizAnswered = true
	c.state.QuizSelected = name

	right := name == correct.Name
	delay := c.cfg.WrongDelay
	if right {
		c.state.QuizScore++
		delay = c.cfg.CorrectDelay
		c.cues.PlayCorrect()
	} else {
		c.state.Missed = append(c.state.Missed, correct.Name)
		c.cues.PlayWrong()
	}

	c.logger.Info("quiz answer",
		"quiz_id", c.state.QuizID,
		"question", c.state.Index+1,
		"shape", correct.Name,
		"selected", name,
		"correct", right,
		"score", c.state.QuizScore)

	c.cancelPending()
	c.pending = c.sched.AfterFunc(delay, c.advanceQuiz)
	c.notify()
}

// AnswerOption answers with the i-th displayed option. Out-of-range
// indexes are ignored.
func (c *Controller) AnswerOption(i int) {
	if i < 0 || i >= len(c.state.QuizOptions) {
		return
	}
	c.HandleQuizAnswer(c.state.QuizOptions[i].Name)
}

// advanceQuiz is the auto-advance callback.
func (c *Controller) advanceQuiz() {
	c.pending = nil
	if c.state.Mode != ModeQuiz {
		return
	}

	c.state.Index++
	c.state.QuizAnswered = false
	c.state.QuizSelected = ""

	if c.state.Index < len(c.state.Deck) {
		c.generateQuizOptions()
		c.notify()
		return
	}

	c.state.QuizOptions = nil
	c.state.Mode = ModeQuizEnd
	c.cues.PlayComplete()
	c.logger.Info("quiz complete",
		"quiz_id", c.state.QuizID,
		"score", c.state.QuizScore,
		"questions", len(c.state.Deck))
	c.notify()
}

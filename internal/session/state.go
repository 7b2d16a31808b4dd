package session

import (
	"slices"
	"time"

	"github.com/abhisek/shapes/internal/shapes"
)

// Mode is the top-level screen the learner is on.
type Mode int

const (
	ModeHome Mode = iota
	ModeFlashcards
	ModeQuiz
	ModeQuizEnd
)

func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "home"
	case ModeFlashcards:
		return "flashcards"
	case ModeQuiz:
		return "quiz"
	case ModeQuizEnd:
		return "quiz-end"
	}
	return "unknown"
}

// OptionsPerQuestion is the number of choices shown for each quiz question.
const OptionsPerQuestion = 4

// State is the learner's session state. Values handed out by the
// Controller are snapshots; mutating them has no effect on the session.
type State struct {
	Mode Mode

	// Deck is the working set for the current flashcard or quiz run.
	Deck []shapes.Shape

	// Index is the cursor into Deck.
	Index int

	// Flipped is true when the current flashcard shows its name.
	Flipped bool

	// UseBasicPool restricts decks to shapes.BasicCategories.
	UseBasicPool bool

	// QuizOptions holds the current question's choices: the correct shape
	// and its distractors in random order.
	QuizOptions []shapes.Shape

	// QuizAnswered is true between an answer and the auto-advance.
	QuizAnswered bool

	// QuizSelected is the name picked for the current question ("" if none).
	QuizSelected string

	// QuizScore counts correct answers in the current quiz.
	QuizScore int

	// QuizID identifies the current quiz run in logs.
	QuizID string

	// Missed lists shapes answered wrongly in the current quiz, in order.
	Missed []string
}

// Current returns the shape under the cursor.
func (s State) Current() (shapes.Shape, bool) {
	if s.Index < 0 || s.Index >= len(s.Deck) {
		return shapes.Shape{}, false
	}
	return s.Deck[s.Index], true
}

// AtFirst reports whether the cursor is on the first card.
func (s State) AtFirst() bool { return s.Index == 0 }

// AtLast reports whether the cursor is on the last card.
func (s State) AtLast() bool { return s.Index >= len(s.Deck)-1 }

// AnsweredCorrectly reports whether the current question was answered and
// the answer was right.
func (s State) AnsweredCorrectly() bool {
	cur, ok := s.Current()
	return ok && s.QuizAnswered && s.QuizSelected == cur.Name
}

func (s State) clone() State {
	s.Deck = slices.Clone(s.Deck)
	s.QuizOptions = slices.Clone(s.QuizOptions)
	s.Missed = slices.Clone(s.Missed)
	return s
}

// Config holds the tunable quiz parameters.
type Config struct {
	// QuizLength caps the number of questions per quiz.
	QuizLength int

	// CorrectDelay is how long feedback stays up after a correct answer.
	CorrectDelay time.Duration

	// WrongDelay is how long feedback stays up after a wrong answer.
	WrongDelay time.Duration
}

// DefaultConfig returns the standard quiz settings.
func DefaultConfig() Config {
	return Config{
		QuizLength:   10,
		CorrectDelay: 1200 * time.Millisecond,
		WrongDelay:   2200 * time.Millisecond,
	}
}

// Cues plays audio feedback. Implementations must return immediately and
// must not panic.
type Cues interface {
	PlayCorrect()
	PlayWrong()
	PlayComplete()
	SayShape(name string)
}

type nopCues struct{}

func (nopCues) PlayCorrect()    {}
func (nopCues) PlayWrong()      {}
func (nopCues) PlayComplete()   {}
func (nopCues) SayShape(string) {}

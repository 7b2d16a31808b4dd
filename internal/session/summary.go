package session

import "math"

// Percent returns score/total as a whole percentage, rounded half up.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(score)*100/float64(total) + 0.5))
}

// Verdict returns the encouragement shown at the end of a quiz.
func Verdict(score, total int) string {
	pct := Percent(score, total)
	switch {
	case pct == 100:
		return "Perfect score! You are a shape master!"
	case pct >= 80:
		return "Great job! Almost perfect!"
	case pct >= 60:
		return "Good work! Keep practicing!"
	default:
		return "Nice try! Practice makes perfect!"
	}
}

package quiz

import (
	"math"

	"github.com/abhisek/sahaay/internal/engine"
)

// Summary holds the data displayed when a quiz is completed.
type Summary struct {
	Score   int
	Total   int
	Percent int
	Answers []AnswerRecord
}

// Summary builds the end-of-quiz summary. Only valid once the quiz is completed.
func (r *Runner) Summary() (Summary, error) {
	if r.state.Phase != PhaseCompleted {
		return Summary{}, &engine.InvalidStateError{Op: "summary", Reason: "quiz not completed"}
	}

	answers := make([]AnswerRecord, len(r.answers))
	copy(answers, r.answers)

	return Summary{
		Score:   r.state.Score,
		Total:   r.state.QuestionCount,
		Percent: Percent(r.state.Score, r.state.QuestionCount),
		Answers: answers,
	}, nil
}

// Percent returns round(100 * score / total), or 0 for an empty total.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

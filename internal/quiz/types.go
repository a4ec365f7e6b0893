package quiz

import (
	"fmt"

	"github.com/abhisek/sahaay/internal/engine"
)

// MinOptions is the minimum number of options a question must offer.
const MinOptions = 2

// Question is an authored multiple-choice question with exactly one correct option.
type Question struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

// Validate checks the question's structural invariants.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return &engine.InvalidArgumentError{Name: "prompt", Reason: "must not be empty"}
	}
	if len(q.Options) < MinOptions {
		return &engine.InvalidArgumentError{
			Name:   "options",
			Reason: fmt.Sprintf("need at least %d, got %d", MinOptions, len(q.Options)),
		}
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return &engine.InvalidArgumentError{
			Name:   "correct",
			Reason: fmt.Sprintf("index %d outside %d options", q.Correct, len(q.Options)),
		}
	}
	return nil
}

// Phase is the runner's top-level state.
type Phase int

const (
	PhaseIdle       Phase = iota // Not started, or abandoned
	PhaseInProgress              // Serving questions
	PhaseCompleted               // All questions answered; score frozen
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in_progress"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// NoSelection marks State.Selected when the current question is unanswered.
const NoSelection = -1

// State is a read-only snapshot of one quiz attempt.
type State struct {
	Phase         Phase
	QuestionIndex int
	QuestionCount int
	Score         int

	// Selected is the chosen option, or NoSelection. Set iff Answered.
	Selected int
	Answered bool
}

// AnswerRecord is the scored attempt for one question.
type AnswerRecord struct {
	QuestionIndex int
	Selected      int
	Correct       bool
}

package quiz

import (
	"fmt"

	"github.com/abhisek/sahaay/internal/engine"
)

// Runner steps a learner through a fixed question set.
//
// Submit and Advance are separate transitions so that every question is
// scored exactly once and the learner sees the result before moving on.
type Runner struct {
	questions []Question
	state     State
	answers   []AnswerRecord

	best    int
	hasBest bool
}

// NewRunner creates an idle Runner over questions. Every question is validated.
func NewRunner(questions []Question) (*Runner, error) {
	if len(questions) == 0 {
		return nil, &engine.InvalidArgumentError{Name: "questions", Reason: "quiz needs at least one question"}
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)

	return &Runner{
		questions: qs,
		state: State{
			Phase:         PhaseIdle,
			QuestionCount: len(qs),
			Selected:      NoSelection,
		},
	}, nil
}

// State returns a snapshot of the current attempt.
func (r *Runner) State() State {
	return r.state
}

// Question returns the question at the current index.
func (r *Runner) Question() Question {
	return r.questions[r.state.QuestionIndex]
}

// Start begins a fresh attempt. Valid from any phase.
func (r *Runner) Start() State {
	r.state = State{
		Phase:         PhaseInProgress,
		QuestionIndex: 0,
		QuestionCount: len(r.questions),
		Score:         0,
		Selected:      NoSelection,
		Answered:      false,
	}
	r.answers = r.answers[:0]
	return r.state
}

// Abandon drops the current attempt without recording it.
func (r *Runner) Abandon() State {
	r.state = State{
		Phase:         PhaseIdle,
		QuestionCount: len(r.questions),
		Selected:      NoSelection,
	}
	r.answers = r.answers[:0]
	return r.state
}

// Submit records the learner's answer for the current question.
func (r *Runner) Submit(option int) (State, error) {
	if r.state.Phase != PhaseInProgress {
		return r.state, &engine.InvalidStateError{Op: "submit", Reason: fmt.Sprintf("quiz is %s", r.state.Phase)}
	}
	if r.state.Answered {
		return r.state, &engine.InvalidStateError{Op: "submit", Reason: "question already answered"}
	}
	q := r.questions[r.state.QuestionIndex]
	if option < 0 || option >= len(q.Options) {
		return r.state, &engine.InvalidStateError{
			Op:     "submit",
			Reason: fmt.Sprintf("option %d outside %d options", option, len(q.Options)),
		}
	}

	correct := option == q.Correct
	r.state.Selected = option
	r.state.Answered = true
	if correct {
		r.state.Score++
	}
	r.answers = append(r.answers, AnswerRecord{
		QuestionIndex: r.state.QuestionIndex,
		Selected:      option,
		Correct:       correct,
	})
	return r.state, nil
}

// LastCorrect reports whether the answered current question was correct.
func (r *Runner) LastCorrect() bool {
	if !r.state.Answered || len(r.answers) == 0 {
		return false
	}
	return r.answers[len(r.answers)-1].Correct
}

// Advance moves past an answered question, completing the quiz after the last one.
func (r *Runner) Advance() (State, error) {
	if r.state.Phase != PhaseInProgress {
		return r.state, &engine.InvalidStateError{Op: "advance", Reason: fmt.Sprintf("quiz is %s", r.state.Phase)}
	}
	if !r.state.Answered {
		return r.state, &engine.InvalidStateError{Op: "advance", Reason: "current question not answered"}
	}

	if r.state.QuestionIndex < len(r.questions)-1 {
		r.state.QuestionIndex++
		r.state.Selected = NoSelection
		r.state.Answered = false
		return r.state, nil
	}

	r.state.Phase = PhaseCompleted
	if !r.hasBest || r.state.Score > r.best {
		r.best = r.state.Score
		r.hasBest = true
	}
	return r.state, nil
}

// Best returns the best completed score in this session.
func (r *Runner) Best() (int, bool) {
	return r.best, r.hasBest
}

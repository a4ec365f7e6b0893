package inclusion

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/quiz"
	"github.com/abhisek/sahaay/internal/router"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/screens/summary"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// quizPane runs the knowledge quiz. Enter starts, answers and advances.
type quizPane struct {
	deps      *screens.Deps
	questions []quiz.Question
	runner    *quiz.Runner
	choice    components.MultiChoice
	hint      string
}

func newQuizPane(deps *screens.Deps, questions []quiz.Question) (*quizPane, error) {
	r, err := quiz.NewRunner(questions)
	if err != nil {
		return nil, fmt.Errorf("quiz: %w", err)
	}
	return &quizPane{deps: deps, questions: questions, runner: r}, nil
}

func (p *quizPane) loadQuestion() {
	q := p.runner.Question()
	p.choice = components.NewMultiChoice(q.Prompt, q.Options, q.Correct)
}

func (p *quizPane) start() {
	p.runner.Start()
	p.loadQuestion()
	p.deps.Record(store.ModuleInclusion, store.ActionQuizStart, "", 0)
}

func (p *quizPane) update(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	p.hint = ""
	st := p.runner.State()

	switch st.Phase {
	case quiz.PhaseIdle:
		if kmsg.String() == "enter" {
			p.start()
		}
		return nil

	case quiz.PhaseCompleted:
		if kmsg.String() == "enter" || kmsg.String() == "r" {
			p.start()
		}
		return nil
	}

	if !st.Answered {
		p.choice, _ = p.choice.Update(msg)
		if !p.choice.Submitted {
			return nil
		}
		next, err := p.runner.Submit(p.choice.ChosenIndex)
		if err != nil {
			p.hint = err.Error()
			return nil
		}
		correct := 0
		if p.runner.LastCorrect() {
			correct = 1
		}
		p.deps.Record(store.ModuleInclusion, store.ActionQuizAnswer,
			fmt.Sprintf("q%d:%d", next.QuestionIndex, next.Selected), correct)
		return nil
	}

	if kmsg.String() != "enter" {
		return nil
	}
	next, err := p.runner.Advance()
	if err != nil {
		p.hint = err.Error()
		return nil
	}
	if next.Phase != quiz.PhaseCompleted {
		p.loadQuestion()
		return nil
	}

	sum, err := p.runner.Summary()
	if err != nil {
		p.hint = err.Error()
		return nil
	}
	p.deps.Record(store.ModuleInclusion, store.ActionQuizComplete, fmt.Sprintf("%d%%", sum.Percent), sum.Score)
	best, _ := p.runner.Best()
	s := summary.New(sum, p.questions, best)
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (p *quizPane) keyHints() []layout.KeyHint {
	st := p.runner.State()
	switch {
	case st.Phase == quiz.PhaseInProgress && !st.Answered:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
	case st.Phase == quiz.PhaseInProgress:
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Start quiz"}}
	}
}

func (p *quizPane) view(width int) string {
	cw := components.ContentWidth(width)
	st := p.runner.State()

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Knowledge Quiz"))

	switch st.Phase {
	case quiz.PhaseIdle:
		sections = append(sections,
			theme.Body.Render(fmt.Sprintf("%d questions on sign language and braille.", st.QuestionCount)),
			theme.Hint.Render("Press Enter to start"))

	case quiz.PhaseCompleted:
		best, _ := p.runner.Best()
		sections = append(sections,
			theme.Body.Render(fmt.Sprintf("Last score: %d / %d (%d%%)", st.Score, st.QuestionCount, quiz.Percent(st.Score, st.QuestionCount))),
			theme.Body.Render(fmt.Sprintf("Best score: %d / %d", best, st.QuestionCount)),
			theme.Hint.Render("Press Enter to try again"))

	default:
		header := fmt.Sprintf("Question %d of %d    Score: %d", st.QuestionIndex+1, st.QuestionCount, st.Score)
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(header),
			components.ArcadeCard(p.choice.View(), cw))
		if st.Answered {
			if p.runner.LastCorrect() {
				sections = append(sections, theme.Correct.Render("Correct!"))
			} else {
				q := p.runner.Question()
				sections = append(sections, theme.Incorrect.Render("Not quite. The answer is "+q.Options[q.Correct]+"."))
			}
			sections = append(sections, theme.Hint.Render("Press Enter to continue"))
		}
	}

	if p.hint != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(p.hint))
	}
	return strings.Join(sections, "\n\n")
}

// Package inclusion is the Inclusion Learning module: sign language and
// braille lessons, the knowledge quiz and a progress view.
package inclusion

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/dashboard"
	"github.com/abhisek/sahaay/internal/screen"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// Tab IDs.
const (
	TabSign     = "sign"
	TabBraille  = "braille"
	TabQuiz     = "quiz"
	TabProgress = "progress"
)

// InclusionScreen hosts one walker per lesson set and the quiz runner.
type InclusionScreen struct {
	tabs     components.Tabs
	sign     *lessonPane
	braille  *lessonPane
	quiz     *quizPane
	progress *progressPane
}

var _ screen.Screen = (*InclusionScreen)(nil)
var _ screen.KeyHintProvider = (*InclusionScreen)(nil)
var _ screen.StatusProvider = (*InclusionScreen)(nil)

// New creates the module screen from the catalog in deps.
func New(deps *screens.Deps) (*InclusionScreen, error) {
	cat := deps.Catalog

	signSet, ok := cat.Set(content.SetSignLanguage)
	if !ok {
		return nil, fmt.Errorf("missing lesson set %q", content.SetSignLanguage)
	}
	brailleSet, ok := cat.Set(content.SetBraille)
	if !ok {
		return nil, fmt.Errorf("missing lesson set %q", content.SetBraille)
	}

	sign, err := newLessonPane(deps, signSet, theme.Inclusion)
	if err != nil {
		return nil, err
	}
	braille, err := newLessonPane(deps, brailleSet, theme.Success)
	if err != nil {
		return nil, err
	}
	qp, err := newQuizPane(deps, cat.Quiz)
	if err != nil {
		return nil, err
	}

	agg := dashboard.New(store.ModuleInclusion, deps.Events, nil)
	agg.TrackLesson(signSet, sign.walker)
	agg.TrackLesson(brailleSet, braille.walker)
	agg.TrackQuiz(qp.runner)

	return &InclusionScreen{
		tabs: components.NewTabs(
			components.Tab{ID: TabSign, Label: "Sign Language"},
			components.Tab{ID: TabBraille, Label: "Braille"},
			components.Tab{ID: TabQuiz, Label: "Quiz"},
			components.Tab{ID: TabProgress, Label: "My Progress"},
		),
		sign:     sign,
		braille:  braille,
		quiz:     qp,
		progress: &progressPane{agg: agg},
	}, nil
}

func (s *InclusionScreen) Init() tea.Cmd {
	return nil
}

func (s *InclusionScreen) Title() string {
	return "Inclusion Learning"
}

// Status shows the quiz best score once there is one.
func (s *InclusionScreen) Status() string {
	if best, ok := s.quiz.runner.Best(); ok {
		return fmt.Sprintf("★ Best %d/%d", best, s.quiz.runner.State().QuestionCount)
	}
	return ""
}

func (s *InclusionScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch"}}
	switch s.tabs.Current().ID {
	case TabSign:
		hints = append(hints, s.sign.keyHints()...)
	case TabBraille:
		hints = append(hints, s.braille.keyHints()...)
	case TabQuiz:
		hints = append(hints, s.quiz.keyHints()...)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// SelectTab activates a tab by ID.
func (s *InclusionScreen) SelectTab(id string) {
	s.tabs.Select(id)
	s.onTabChange()
}

func (s *InclusionScreen) onTabChange() {
	if s.tabs.Current().ID == TabProgress {
		s.progress.refresh()
	}
}

func (s *InclusionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var changed bool
	if s.tabs, changed = s.tabs.Update(msg); changed {
		s.onTabChange()
		return s, nil
	}

	switch s.tabs.Current().ID {
	case TabSign:
		return s, s.sign.update(msg)
	case TabBraille:
		return s, s.braille.update(msg)
	case TabQuiz:
		return s, s.quiz.update(msg)
	}
	return s, nil
}

func (s *InclusionScreen) View(width, height int) string {
	var body string
	switch s.tabs.Current().ID {
	case TabSign:
		body = s.sign.view(width)
	case TabBraille:
		body = s.braille.view(width)
	case TabQuiz:
		body = s.quiz.view(width)
	case TabProgress:
		body = s.progress.view(width)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, s.tabs.View(), "", body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

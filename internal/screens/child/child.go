// Package child is the Child Learning module: speech practice, emotion
// recognition, learning games, the focus trainer and a parent dashboard.
package child

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/dashboard"
	"github.com/abhisek/sahaay/internal/screen"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
)

// Tab IDs.
const (
	TabSpeech    = "speech"
	TabEmotion   = "emotion"
	TabGames     = "games"
	TabFocus     = "focus"
	TabDashboard = "dashboard"
)

// ChildScreen owns the child module's engines. Timers it schedules carry run
// ids or settle tokens so Close can invalidate them.
type ChildScreen struct {
	tabs      components.Tabs
	speech    *speechPane
	emotion   *emotionPane
	games     *gamesPane
	focus     *focusPane
	dashboard *dashboardPane
}

var _ screen.Screen = (*ChildScreen)(nil)
var _ screen.KeyHintProvider = (*ChildScreen)(nil)
var _ screen.StatusProvider = (*ChildScreen)(nil)
var _ screen.Closer = (*ChildScreen)(nil)

// New creates the module screen from the catalog in deps.
func New(deps *screens.Deps) (*ChildScreen, error) {
	cat := deps.Catalog

	words, ok := cat.Set(content.SetSpeechWords)
	if !ok {
		return nil, fmt.Errorf("missing lesson set %q", content.SetSpeechWords)
	}
	alphabet, ok := cat.Set(content.SetAlphabet)
	if !ok {
		return nil, fmt.Errorf("missing lesson set %q", content.SetAlphabet)
	}

	sp, err := newSpeechPane(deps, words)
	if err != nil {
		return nil, err
	}
	gp, err := newGamesPane(deps, alphabet)
	if err != nil {
		return nil, err
	}
	fp := newFocusPane(deps)

	var now func() time.Time
	if deps.Clock != nil {
		now = deps.Clock.Now
	}
	agg := dashboard.New(store.ModuleChild, deps.Events, now)
	agg.TrackLesson(words, sp.walker)
	agg.TrackLesson(alphabet, gp.alphaWalker)
	agg.TrackGame("Color Match", dashboard.ScoreOf(gp.color.game))
	agg.TrackGame("Shape Match", dashboard.ScoreOf(gp.shape.game))
	agg.TrackFocus(fp.task)

	return &ChildScreen{
		tabs: components.NewTabs(
			components.Tab{ID: TabSpeech, Label: "Speech"},
			components.Tab{ID: TabEmotion, Label: "Emotions"},
			components.Tab{ID: TabGames, Label: "Games"},
			components.Tab{ID: TabFocus, Label: "Focus"},
			components.Tab{ID: TabDashboard, Label: "Parent Dashboard"},
		),
		speech:    sp,
		emotion:   newEmotionPane(deps),
		games:     gp,
		focus:     fp,
		dashboard: &dashboardPane{agg: agg},
	}, nil
}

func (s *ChildScreen) Init() tea.Cmd {
	return nil
}

func (s *ChildScreen) Title() string {
	return "Child Learning"
}

// Status shows the combined game score and the attention score.
func (s *ChildScreen) Status() string {
	score := s.games.color.game.State().Score + s.games.shape.game.State().Score
	return fmt.Sprintf("★ %d  ◎ %d", score, s.focus.task.State().AttentionScore)
}

func (s *ChildScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch"}}
	switch s.tabs.Current().ID {
	case TabSpeech:
		hints = append(hints, s.speech.keyHints()...)
	case TabEmotion:
		hints = append(hints, s.emotion.keyHints()...)
	case TabGames:
		hints = append(hints, s.games.keyHints()...)
	case TabFocus:
		hints = append(hints, s.focus.keyHints()...)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// SelectTab activates a tab by ID.
func (s *ChildScreen) SelectTab(id string) {
	s.tabs.Select(id)
	s.onTabChange()
}

func (s *ChildScreen) onTabChange() {
	if s.tabs.Current().ID == TabDashboard {
		s.dashboard.refresh()
	}
}

// Close stops emotion sampling, the focus run and any running game.
func (s *ChildScreen) Close() {
	s.emotion.stop()
	s.focus.cancel()
	s.games.stop()
}

func (s *ChildScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Timer messages go to their pane whichever tab is showing.
	switch msg.(type) {
	case emotionTickMsg:
		return s, s.emotion.update(msg)
	case focusTickMsg:
		return s, s.focus.update(msg)
	case settleMsg, chooseGameMsg:
		return s, s.games.update(msg)
	}

	var changed bool
	if s.tabs, changed = s.tabs.Update(msg); changed {
		s.onTabChange()
		return s, nil
	}

	switch s.tabs.Current().ID {
	case TabSpeech:
		return s, s.speech.update(msg)
	case TabEmotion:
		return s, s.emotion.update(msg)
	case TabGames:
		return s, s.games.update(msg)
	case TabFocus:
		return s, s.focus.update(msg)
	}
	return s, nil
}

func (s *ChildScreen) View(width, height int) string {
	var body string
	switch s.tabs.Current().ID {
	case TabSpeech:
		body = s.speech.view(width)
	case TabEmotion:
		body = s.emotion.view(width)
	case TabGames:
		body = s.games.view(width)
	case TabFocus:
		body = s.focus.view(width)
	case TabDashboard:
		body = s.dashboard.view(width)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, s.tabs.View(), "", body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

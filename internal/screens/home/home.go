// Package home is the module picker shown after the welcome screen.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/sahaay/internal/router"
	"github.com/abhisek/sahaay/internal/screen"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/screens/assistive"
	"github.com/abhisek/sahaay/internal/screens/child"
	"github.com/abhisek/sahaay/internal/screens/inclusion"
	"github.com/abhisek/sahaay/internal/screens/placeholder"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
)

// Menu labels.
const (
	LabelInclusion = "INCLUSION LEARNING"
	LabelChild     = "CHILD LEARNING"
	LabelAssistive = "ASSISTIVE HUB"
	LabelExit      = "EXIT"
)

// HomeScreen is the main menu. Each module screen is built fresh when it is
// opened, so leaving a module discards its engines.
type HomeScreen struct {
	deps  *screens.Deps
	menu  components.Menu
	stats stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps *screens.Deps) *HomeScreen {
	open := func(title string, build func() (screen.Screen, error)) func() tea.Cmd {
		return func() tea.Cmd {
			s, err := build()
			if err != nil {
				log.Warn().Err(err).Str("module", title).Msg("open module")
				s = placeholder.New(title, err)
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}
	}

	items := []components.MenuItem{
		{Label: LabelInclusion, Action: open("Inclusion Learning", func() (screen.Screen, error) {
			return inclusion.New(deps)
		})},
		{Label: LabelChild, Action: open("Child Learning", func() (screen.Screen, error) {
			return child.New(deps)
		})},
		{Label: LabelAssistive, Action: open("Assistive Hub", func() (screen.Screen, error) {
			return assistive.New(deps), nil
		}), Disabled: deps.Recognizer == nil, Reason: "no recognizer configured"},
		{Label: LabelExit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
	h.refresh()
	return h
}

// refresh reloads the stats bar from the journal.
func (h *HomeScreen) refresh() {
	h.stats = stats{locale: h.deps.Config.Speech.Locale}
	if h.deps.Events == nil {
		return
	}
	ctx := context.Background()
	for _, m := range []string{store.ModuleInclusion, store.ModuleChild, store.ModuleAssistive} {
		counts, err := h.deps.Events.CountByAction(ctx, m)
		if err != nil {
			log.Warn().Err(err).Str("module", m).Msg("home stats")
			continue
		}
		for action, n := range counts {
			h.stats.activities += n
			if action == store.ActionLessonView {
				h.stats.lessons += n
			}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume refreshes the stats after a module screen is closed.
func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) emblem() EmblemVariant {
	item, _ := h.menu.Current()
	switch item.Label {
	case LabelInclusion:
		return EmblemInclusion
	case LabelChild:
		return EmblemChild
	case LabelAssistive:
		return EmblemAssistive
	}
	return EmblemIdle
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 32 || width < 100

	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderEmblemBox(h.emblem(), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if termHeight < 24 {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Items, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Items, h.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

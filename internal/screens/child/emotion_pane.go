package child

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/recognition"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// emotionPane samples an emotion reading on a fixed interval while running.
type emotionPane struct {
	deps     *screens.Deps
	running  bool
	run      uint64
	interval time.Duration
	current  content.Choice
	has      bool
}

func newEmotionPane(deps *screens.Deps) *emotionPane {
	return &emotionPane{deps: deps, interval: deps.Config.Recognition.EmotionInterval}
}

func (p *emotionPane) tick() tea.Cmd {
	run := p.run
	return tea.Tick(p.interval, func(time.Time) tea.Msg {
		return emotionTickMsg{run: run}
	})
}

func (p *emotionPane) start() tea.Cmd {
	p.run = screens.NextRun()
	p.running = true
	return p.tick()
}

func (p *emotionPane) stop() {
	if p.running {
		p.run = screens.NextRun()
		p.running = false
	}
}

func (p *emotionPane) sample() {
	if p.deps.Recognizer == nil {
		return
	}
	res, err := p.deps.Recognizer.Recognize(context.Background(), recognition.Request{Kind: recognition.KindEmotion})
	if err != nil {
		log.Warn().Err(err).Msg("emotion recognition")
		return
	}
	ch, ok := content.Find(p.deps.Catalog.Emotions, res.Label)
	if !ok {
		ch = content.Choice{ID: res.Label, Label: res.Label}
	}
	p.current, p.has = ch, true
	p.deps.Record(store.ModuleChild, store.ActionEmotion, ch.ID, 0)
}

func (p *emotionPane) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case emotionTickMsg:
		if !p.running || msg.run != p.run {
			return nil
		}
		p.sample()
		return p.tick()

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if p.running {
				p.stop()
				return nil
			}
			return p.start()
		}
	}
	return nil
}

func (p *emotionPane) keyHints() []layout.KeyHint {
	if p.running {
		return []layout.KeyHint{{Key: "Enter", Description: "Stop detection"}}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Start detection"}}
}

func (p *emotionPane) view(width int) string {
	cw := components.ContentWidth(width)

	status := theme.Hint.Render("Detection stopped")
	if p.running {
		status = lipgloss.NewStyle().Foreground(theme.Success).Render("● Detecting emotions...")
	}

	reading := theme.Hint.Render("No reading yet")
	if p.has {
		fg := theme.Emotions[p.current.ID]
		if fg == nil {
			fg = theme.Text
		}
		reading = lipgloss.NewStyle().Foreground(fg).Bold(true).Render(p.current.Glyph + "  " + strings.ToUpper(p.current.Label))
		if p.current.Note != "" {
			reading += "\n\n" + theme.Body.Render(p.current.Note)
		}
	}

	label := "Start Detection"
	if p.running {
		label = "Stop Detection"
	}
	return strings.Join([]string{
		theme.Title.Width(cw).Render("Emotion Recognition"),
		status,
		components.ArcadeCard(reading, cw),
		components.NewButton(label, "enter", true).View(),
	}, "\n\n")
}

package assistive

import (
	"context"
	"errors"
	"strings"

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

// transcriptPane runs one speech-to-text request at a time. Stopping cancels
// the pending request and bumps run so a late result is dropped.
type transcriptPane struct {
	deps      *screens.Deps
	run       uint64
	listening bool
	cancel    context.CancelFunc
	result    recognition.Result
	has       bool
}

func (p *transcriptPane) start() tea.Cmd {
	p.run = screens.NextRun()
	p.listening = true
	p.has = false

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	run, rz := p.run, p.deps.Recognizer
	return func() tea.Msg {
		res, err := rz.Recognize(ctx, recognition.Request{Kind: recognition.KindTranscript})
		return transcriptMsg{run: run, result: res, err: err}
	}
}

func (p *transcriptPane) stop() {
	if !p.listening {
		return
	}
	p.run = screens.NextRun()
	p.listening = false
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *transcriptPane) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case transcriptMsg:
		if msg.run != p.run {
			return nil
		}
		p.listening = false
		if p.cancel != nil {
			p.cancel()
			p.cancel = nil
		}
		if msg.err != nil {
			if !errors.Is(msg.err, context.Canceled) {
				log.Warn().Err(msg.err).Msg("transcript")
			}
			return nil
		}
		p.result, p.has = msg.result, true
		p.deps.Record(store.ModuleAssistive, store.ActionTranscript, msg.result.Label, 0)
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if p.listening {
				p.stop()
				return nil
			}
			return p.start()
		case "s":
			if p.has {
				p.deps.Speak(p.result.Text, "")
			}
		}
	}
	return nil
}

func (p *transcriptPane) keyHints() []layout.KeyHint {
	if p.listening {
		return []layout.KeyHint{{Key: "Enter", Description: "Stop"}}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Start listening"}}
	if p.has {
		hints = append(hints, layout.KeyHint{Key: "s", Description: "Read aloud"})
	}
	return hints
}

func (p *transcriptPane) view(width int) string {
	cw := components.ContentWidth(width)

	status := theme.Hint.Render("Press Enter and speak")
	if p.listening {
		status = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("● Listening...")
	}

	body := theme.Hint.Render("Transcript appears here")
	if p.has {
		body = theme.Body.Render(p.result.Text)
		if ch, ok := content.Find(p.deps.Catalog.Emotions, p.result.Label); ok {
			fg := theme.Emotions[ch.ID]
			if fg == nil {
				fg = theme.Text
			}
			body += "\n\n" + lipgloss.NewStyle().Foreground(fg).Render("Detected emotion: "+ch.Glyph+" "+ch.Label)
		}
	}

	label := "Start Listening"
	if p.listening {
		label = "Stop Listening"
	}
	return strings.Join([]string{
		theme.Title.Width(cw).Render("Speech to Text"),
		status,
		components.ArcadeCard(body, cw),
		components.NewButton(label, "enter", true).View(),
	}, "\n\n")
}

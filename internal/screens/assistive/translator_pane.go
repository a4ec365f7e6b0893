package assistive

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/sahaay/internal/recognition"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// translatorPane turns typed sign text into a spoken phrase.
type translatorPane struct {
	deps   *screens.Deps
	input  components.TextInput
	output string
}

func newTranslatorPane(deps *screens.Deps) *translatorPane {
	return &translatorPane{
		deps:  deps,
		input: components.NewTextInput("Type a sign, e.g. hello", 40),
	}
}

func (p *translatorPane) translate() {
	res, err := p.deps.Recognizer.Recognize(context.Background(), recognition.Request{
		Kind:  recognition.KindTranslation,
		Input: p.input.Value(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("translate")
		p.output = err.Error()
		p.input.Submit(false)
		return
	}
	p.output = res.Text
	p.input.Submit(res.Text != recognition.NotAvailable)
	p.deps.Record(store.ModuleAssistive, store.ActionTranslate, p.input.Value(), 0)
}

func (p *translatorPane) update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			if p.input.Value() != "" {
				p.translate()
			}
			return nil
		case "ctrl+s":
			if p.output != "" && p.output != recognition.NotAvailable {
				p.deps.Speak(p.output, "")
			}
			return nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *translatorPane) keyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Translate"},
		{Key: "Ctrl+S", Description: "Speak"},
	}
}

func (p *translatorPane) view(width int) string {
	cw := components.ContentWidth(width)

	out := theme.Hint.Render("Translation appears here")
	if p.output != "" {
		out = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(p.output)
	}

	return strings.Join([]string{
		theme.Title.Width(cw).Render("Sign Language Translator"),
		p.input.View(),
		components.ArcadeCard(out, cw),
		components.ButtonRow(
			components.NewButton("Translate", "enter", p.input.Value() != ""),
			components.NewButton("Speak", "ctrl+s", p.output != "" && p.output != recognition.NotAvailable),
		),
	}, "\n\n")
}

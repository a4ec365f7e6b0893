package child

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/lesson"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/speech"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// speechPane practises everyday words. "Next word" wraps around.
type speechPane struct {
	deps   *screens.Deps
	set    lesson.Set
	walker *lesson.Walker
	locale string
}

func newSpeechPane(deps *screens.Deps, set lesson.Set) (*speechPane, error) {
	w, err := lesson.ForSet(set)
	if err != nil {
		return nil, fmt.Errorf("speech words: %w", err)
	}
	return &speechPane{deps: deps, set: set, walker: w, locale: deps.Config.Speech.Locale}, nil
}

func (p *speechPane) word() lesson.Item {
	return p.set.Items[p.walker.Cursor().Index]
}

func (p *speechPane) toggleLocale() {
	if p.locale == speech.LocaleHindi {
		p.locale = speech.LocaleEnglish
	} else {
		p.locale = speech.LocaleHindi
	}
}

func (p *speechPane) update(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key := kmsg.String(); key {
	case "n", "right":
		p.walker.Cycle()
		p.deps.Record(store.ModuleChild, store.ActionLessonView, p.word().ID, p.walker.ProgressPercent())
	case "p", "left":
		p.walker.GoPrev()
		p.deps.Record(store.ModuleChild, store.ActionLessonView, p.word().ID, p.walker.ProgressPercent())
	case "s", "enter":
		p.deps.Speak(p.word().Label, p.locale)
	case "g":
		p.toggleLocale()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if _, err := p.walker.JumpTo(int(key[0] - '1')); err == nil {
				p.deps.Speak(p.word().Label, p.locale)
			}
		}
	}
	return nil
}

func (p *speechPane) keyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "n", Description: "Next word"},
		{Key: "s", Description: "Speak"},
		{Key: "g", Description: "Language"},
		{Key: "1-8", Description: "Say word"},
	}
}

func (p *speechPane) view(width int) string {
	cw := components.ContentWidth(width)
	word := p.word()

	big := lipgloss.NewStyle().Foreground(theme.Child).Bold(true).Render(word.Label)
	card := components.ArcadeCard(big+"\n\n"+theme.Body.Render(word.Content), cw)

	lang := "English"
	if p.locale == speech.LocaleHindi {
		lang = "Hindi"
	}

	var words []string
	for i, it := range p.set.Items {
		label := fmt.Sprintf("%d %s", i+1, it.Label)
		if i == p.walker.Cursor().Index {
			words = append(words, theme.TabActive.Render(label))
		} else {
			words = append(words, theme.TabInactive.Render(label))
		}
	}

	return strings.Join([]string{
		theme.Title.Width(cw).Render("Speech & Communication"),
		card,
		theme.Hint.Render("Language: " + lang + " (" + p.locale + ")"),
		strings.Join(words, " "),
		components.ButtonRow(
			components.NewButton("Speak Word", "s", true),
			components.NewButton("Next Word", "n", true),
		),
	}, "\n\n")
}

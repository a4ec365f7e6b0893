package inclusion

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/engine"
	"github.com/abhisek/sahaay/internal/lesson"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// lessonPane walks one lesson set: prev/next, jump by number, speak.
type lessonPane struct {
	deps   *screens.Deps
	set    lesson.Set
	walker *lesson.Walker
	accent color.Color
	hint   string
}

func newLessonPane(deps *screens.Deps, set lesson.Set, accent color.Color) (*lessonPane, error) {
	w, err := lesson.ForSet(set)
	if err != nil {
		return nil, fmt.Errorf("lesson set %s: %w", set.ID, err)
	}
	return &lessonPane{deps: deps, set: set, walker: w, accent: accent}, nil
}

func (p *lessonPane) current() lesson.Item {
	return p.set.Items[p.walker.Cursor().Index]
}

func (p *lessonPane) update(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	p.hint = ""
	before := p.walker.Cursor()

	switch key := kmsg.String(); key {
	case "right", "l", "n":
		p.walker.GoNext()
	case "left", "h", "p":
		p.walker.GoPrev()
	case "s", "enter":
		item := p.current()
		p.deps.Speak(item.Label+". "+item.Content, "")
		return nil
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if _, err := p.walker.JumpTo(int(key[0] - '1')); err != nil {
				var oor *engine.OutOfRangeError
				if errors.As(err, &oor) {
					p.hint = fmt.Sprintf("Only %d lessons in %s", oor.Total, p.set.Title)
				}
				return nil
			}
		}
	}

	if after := p.walker.Cursor(); after != before {
		p.deps.Record(store.ModuleInclusion, store.ActionLessonView, p.current().ID, p.walker.ProgressPercent())
	}
	return nil
}

func (p *lessonPane) keyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Prev/Next"},
		{Key: "1-9", Description: "Jump"},
		{Key: "s", Description: "Speak"},
	}
}

func (p *lessonPane) view(width int) string {
	cw := components.ContentWidth(width)
	item := p.current()
	cur := p.walker.Cursor()

	glyph := item.Glyph
	if glyph == "" {
		glyph = item.Label
	}
	big := lipgloss.NewStyle().Foreground(p.accent).Bold(true).Render(glyph + "  " + item.Label)
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(item.Content)
	card := components.ArcadeCard(big+"\n\n"+body, cw)

	nav := fmt.Sprintf("Lesson %d of %d", cur.Index+1, cur.Total)
	bar := components.NewProgressBar(nav, float64(p.walker.ProgressPercent())/100, true, cw)
	bar.Fill = p.accent

	var picker []string
	for i, it := range p.set.Items {
		label := fmt.Sprintf("%d %s", i+1, it.Label)
		if i == cur.Index {
			picker = append(picker, theme.TabActive.Render(label))
		} else {
			picker = append(picker, theme.TabInactive.Render(label))
		}
	}

	sections := []string{
		theme.Title.Width(cw).Render(p.set.Title),
		card,
		bar.View(),
		strings.Join(picker, " "),
	}
	if p.hint != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(p.hint))
	}
	return strings.Join(sections, "\n\n")
}

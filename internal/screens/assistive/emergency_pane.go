package assistive

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// emergencyPane sends one of the canned emergency messages.
type emergencyPane struct {
	deps    *screens.Deps
	options []content.Choice
	grid    components.ChoiceGrid
	delay   time.Duration
	run     uint64
	pending string
	notice  string
}

func newEmergencyPane(deps *screens.Deps) *emergencyPane {
	opts := deps.Catalog.Assistive.Emergency
	cells := make([]components.Cell, len(opts))
	for i, o := range opts {
		cells[i] = components.Cell{ID: o.ID, Glyph: o.Glyph, Label: o.Label}
	}
	return &emergencyPane{
		deps:    deps,
		options: opts,
		grid:    components.NewChoiceGrid(cells, 4),
		delay:   deps.Config.Assistive.EmergencyDelay,
	}
}

func (p *emergencyPane) send(id string) tea.Cmd {
	p.run = screens.NextRun()
	p.pending = id
	p.notice = ""
	p.grid.ClearMarks()
	p.grid.SetMark(id, components.MarkChosen)
	p.deps.Record(store.ModuleAssistive, store.ActionEmergency, id, 0)

	run := p.run
	return tea.Tick(p.delay, func(time.Time) tea.Msg {
		return emergencySentMsg{run: run, id: id}
	})
}

func (p *emergencyPane) cancel() {
	if p.pending != "" {
		p.run = screens.NextRun()
		p.pending = ""
	}
}

func (p *emergencyPane) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case emergencySentMsg:
		if msg.run != p.run || p.pending == "" {
			return nil
		}
		p.pending = ""
		label := msg.id
		if o, ok := content.Find(p.options, msg.id); ok {
			label = o.Label
		}
		p.notice = "Emergency message sent: " + label
		p.grid.SetMark(msg.id, components.MarkCorrect)
		p.deps.Record(store.ModuleAssistive, store.ActionEmergencySent, msg.id, 0)
		p.deps.Speak(label, "")
		return nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return p.send(p.grid.Current().ID)
		}
		p.grid = p.grid.Update(msg)
	}
	return nil
}

func (p *emergencyPane) keyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Send"},
	}
}

func (p *emergencyPane) view(width int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		theme.Title.Width(cw).Render("Emergency Communication"),
		p.grid.View(12),
	}
	switch {
	case p.pending != "":
		sections = append(sections, theme.Hint.Render("Sending..."))
	case p.notice != "":
		sections = append(sections, components.AlertCard(p.notice, cw))
	}
	return strings.Join(sections, "\n\n")
}

package child

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/focus"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// focusPane runs the attention trainer.
type focusPane struct {
	deps     *screens.Deps
	task     *focus.Task
	duration int
	interval time.Duration
	message  string
}

func newFocusPane(deps *screens.Deps) *focusPane {
	return &focusPane{
		deps:     deps,
		task:     focus.New(deps.Clock),
		duration: deps.Config.Focus.DurationSeconds,
		interval: deps.Config.Focus.TickInterval,
	}
}

func (p *focusPane) tick() tea.Cmd {
	run := p.task.Run()
	return tea.Tick(p.interval, func(time.Time) tea.Msg {
		return focusTickMsg{run: run}
	})
}

func (p *focusPane) start() tea.Cmd {
	st, err := p.task.Start(p.duration)
	if err != nil {
		p.message = err.Error()
		return nil
	}
	p.message = ""
	p.deps.Record(store.ModuleChild, store.ActionFocusStart, fmt.Sprintf("%ds", st.DurationSeconds), st.AttentionScore)
	return p.tick()
}

// cancel stops an active run. It reports whether anything was running.
func (p *focusPane) cancel() bool {
	if !p.task.State().Active {
		return false
	}
	st := p.task.Cancel()
	p.deps.Record(store.ModuleChild, store.ActionFocusCancel, fmt.Sprintf("%ds", st.ElapsedSeconds), st.AttentionScore)
	return true
}

func (p *focusPane) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case focusTickMsg:
		if msg.run != p.task.Run() || !p.task.State().Active {
			return nil
		}
		st := p.task.Tick(p.deps.Clock.Now())
		if st.Completed {
			p.message = fmt.Sprintf("Great focus! +%d attention", focus.Reward)
			p.deps.Record(store.ModuleChild, store.ActionFocusComplete, fmt.Sprintf("%ds", st.DurationSeconds), st.AttentionScore)
			p.deps.Speak("Great focus!", "")
			return nil
		}
		return p.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if p.task.State().Active {
				return nil
			}
			return p.start()
		case "c":
			if p.cancel() {
				p.message = "Focus task cancelled"
			}
		}
	}
	return nil
}

func (p *focusPane) keyHints() []layout.KeyHint {
	if p.task.State().Active {
		return []layout.KeyHint{{Key: "c", Description: "Cancel"}}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Start focus task"}}
}

func (p *focusPane) view(width int) string {
	cw := components.ContentWidth(width)
	st := p.task.State()

	bar := components.ProgressBar{
		Percent: st.Fraction(),
		Width:   cw - 4,
		Label:   fmt.Sprintf("%ds left", st.Remaining()),
		Fill:    theme.Child,
	}

	body := theme.Body.Render("Keep your eyes on the star until the bar fills up.")
	star := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("★")
	if st.Active {
		body = star + "  " + theme.Body.Render(fmt.Sprintf("Focusing... %d of %d seconds", st.ElapsedSeconds, st.DurationSeconds))
	}

	score := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Attention score: %d", st.AttentionScore))

	sections := []string{
		theme.Title.Width(cw).Render("Focus Trainer"),
		components.ArcadeCard(body, cw),
		bar.View(),
		score,
	}
	if p.message != "" {
		style := theme.Correct
		if !st.Completed {
			style = theme.Hint
		}
		sections = append(sections, style.Render(p.message))
	}
	return strings.Join(sections, "\n\n")
}

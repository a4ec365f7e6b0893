// Package placeholder shows a module that could not be opened.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/screen"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// PlaceholderScreen stands in for a module whose construction failed.
type PlaceholderScreen struct {
	title  string
	reason string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a PlaceholderScreen. err may be nil.
func New(title string, err error) *PlaceholderScreen {
	p := &PlaceholderScreen{title: title}
	if err != nil {
		p.reason = err.Error()
	}
	return p
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	text := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("╌╌ " + p.title + " is unavailable ╌╌")
	if p.reason != "" {
		text += "\n\n" + theme.Hint.Render(p.reason)
	}
	text += "\n\n" + theme.Hint.Render("Press Esc to go back")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

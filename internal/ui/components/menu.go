package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/ui/theme"
)

// MenuItem is one entry of a module or game picker. A disabled item is
// skipped by navigation and shows Reason instead of opening.
type MenuItem struct {
	Label    string
	Glyph    string
	Action   func() tea.Cmd
	Disabled bool
	Reason   string
}

// Menu is a vertical picker. Items can be opened with Enter or by their
// 1-based number.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if next, ok := m.nextEnabled(-1, 1); ok {
		m.Selected = next
	}
	return m
}

// Current returns the selected item.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

func (m Menu) nextEnabled(from, step int) (int, bool) {
	for i := from + step; i >= 0 && i < len(m.Items); i += step {
		if !m.Items[i].Disabled {
			return i, true
		}
	}
	return from, false
}

func (m Menu) activate(i int) tea.Cmd {
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected, _ = m.nextEnabled(m.Selected, -1)
	case "down", "j":
		m.Selected, _ = m.nextEnabled(m.Selected, 1)
	case "enter":
		if _, ok := m.Current(); ok {
			return m, m.activate(m.Selected)
		}
	default:
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > len(m.Items) || m.Items[n-1].Disabled {
			return m, nil
		}
		m.Selected = n - 1
		return m, m.activate(m.Selected)
	}

	return m, nil
}

// View renders the menu, numbering every item.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := strconv.Itoa(i+1) + ". " + item.Label
		if item.Glyph != "" {
			label = item.Glyph + "  " + label
		}
		switch {
		case item.Disabled:
			line := "    " + label
			if item.Reason != "" {
				line += " (" + item.Reason + ")"
			}
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		case i == m.Selected:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ " + label))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("    " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

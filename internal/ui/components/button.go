package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sahaay/internal/ui/theme"
)

// Button is an action bound to a single hotkey, e.g. "[s] Speak".
type Button struct {
	Label  string
	Key    string
	Active bool
}

// NewButton creates a new button.
func NewButton(label, key string, active bool) Button {
	return Button{
		Label:  label,
		Key:    key,
		Active: active,
	}
}

// Pressed reports whether msg presses this button.
func (b Button) Pressed(msg tea.Msg) bool {
	if !b.Active {
		return false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	return ok && kmsg.String() == b.Key
}

// View renders the button.
func (b Button) View() string {
	label := " [" + b.Key + "] " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders buttons side by side.
func ButtonRow(buttons ...Button) string {
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		parts[i] = b.View()
	}
	return strings.Join(parts, "  ")
}

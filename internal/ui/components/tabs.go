package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sahaay/internal/ui/theme"
)

// Tab is one entry in a tab bar.
type Tab struct {
	ID    string
	Label string
}

// Tabs is a horizontal tab bar switched with tab/shift+tab.
type Tabs struct {
	Items  []Tab
	Active int
}

// NewTabs creates a tab bar with the first tab active.
func NewTabs(items ...Tab) Tabs {
	return Tabs{Items: items}
}

// Update moves between tabs. changed is true when the active tab moved.
func (t Tabs) Update(msg tea.Msg) (Tabs, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(t.Items) == 0 {
		return t, false
	}
	prev := t.Active
	switch kmsg.String() {
	case "tab":
		t.Active = (t.Active + 1) % len(t.Items)
	case "shift+tab":
		t.Active = (t.Active - 1 + len(t.Items)) % len(t.Items)
	}
	return t, t.Active != prev
}

// Current returns the active tab.
func (t Tabs) Current() Tab {
	if len(t.Items) == 0 {
		return Tab{}
	}
	return t.Items[t.Active]
}

// Select activates the tab with id. Unknown ids are ignored.
func (t *Tabs) Select(id string) {
	for i, it := range t.Items {
		if it.ID == id {
			t.Active = i
			return
		}
	}
}

// View renders the tab bar.
func (t Tabs) View() string {
	parts := make([]string, len(t.Items))
	for i, it := range t.Items {
		if i == t.Active {
			parts[i] = theme.TabActive.Render(it.Label)
		} else {
			parts[i] = theme.TabInactive.Render(it.Label)
		}
	}
	return strings.Join(parts, " ")
}

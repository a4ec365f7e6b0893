package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)
	return tea.KeyPressMsg{Code: r[0], Text: s}
}

func TestTabsCycle(t *testing.T) {
	tabs := NewTabs(Tab{ID: "a", Label: "A"}, Tab{ID: "b", Label: "B"}, Tab{ID: "c", Label: "C"})

	tabs, changed := tabs.Update(key("tab"))
	if !changed || tabs.Current().ID != "b" {
		t.Errorf("expected tab to move to b, got %q (changed=%v)", tabs.Current().ID, changed)
	}

	tabs, _ = tabs.Update(key("shift+tab"))
	tabs, _ = tabs.Update(key("shift+tab"))
	if tabs.Current().ID != "c" {
		t.Errorf("expected shift+tab to wrap to c, got %q", tabs.Current().ID)
	}

	tabs, changed = tabs.Update(key("x"))
	if changed {
		t.Error("unrelated key should not change tab")
	}

	tabs.Select("a")
	if tabs.Current().ID != "a" {
		t.Errorf("Select(a) = %q", tabs.Current().ID)
	}
	if !strings.Contains(tabs.View(), "B") {
		t.Error("tab bar should render every label")
	}
}

func TestChoiceGridNavigation(t *testing.T) {
	cells := []Cell{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}}
	g := NewChoiceGrid(cells, 3)

	g = g.Update(key("left"))
	if g.Cursor != 0 {
		t.Errorf("left at start should clamp, got %d", g.Cursor)
	}
	g = g.Update(key("down"))
	if g.Current().ID != "4" {
		t.Errorf("down should move one row, got %q", g.Current().ID)
	}
	g = g.Update(key("right"))
	g = g.Update(key("right"))
	if g.Current().ID != "5" {
		t.Errorf("right should clamp at last cell, got %q", g.Current().ID)
	}
	g = g.Update(key("down"))
	if g.Current().ID != "5" {
		t.Errorf("down past last row should be a no-op, got %q", g.Current().ID)
	}
	g = g.Update(key("up"))
	if g.Current().ID != "2" {
		t.Errorf("up should move one row, got %q", g.Current().ID)
	}
}

func TestChoiceGridMarks(t *testing.T) {
	g := NewChoiceGrid([]Cell{{ID: "red", Label: "Red"}}, 2)
	g.SetMark("red", MarkWrong)
	if g.Marks["red"] != MarkWrong {
		t.Error("expected wrong mark")
	}
	g.SetMark("red", MarkNone)
	if _, ok := g.Marks["red"]; ok {
		t.Error("MarkNone should clear the mark")
	}
	if !strings.Contains(g.View(12), "Red") {
		t.Error("grid should render labels")
	}
}

func TestMultiChoiceDigitSelects(t *testing.T) {
	m := NewMultiChoice("Q", []string{"a", "b", "c"}, 1)
	m, _ = m.Update(key("2"))
	if !m.Submitted || m.ChosenIndex != 1 {
		t.Errorf("digit 2 should submit option 1, got submitted=%v chosen=%d", m.Submitted, m.ChosenIndex)
	}
	if m.ChosenIndex != m.CorrectIndex {
		t.Error("expected correct")
	}

	m, _ = m.Update(key("3"))
	if m.ChosenIndex != 1 {
		t.Error("submitted choice must not change")
	}
}

func TestMultiChoiceOutOfRangeDigit(t *testing.T) {
	m := NewMultiChoice("Q", []string{"a", "b"}, 0)
	m, _ = m.Update(key("9"))
	if m.Submitted {
		t.Error("digit beyond options should be ignored")
	}
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("enter"))
	if m.ChosenIndex != 1 || m.ChosenIndex == m.CorrectIndex {
		t.Errorf("expected wrong choice 1, got %d", m.ChosenIndex)
	}
}

func TestButtonPressed(t *testing.T) {
	b := NewButton("Speak", "s", true)
	if !b.Pressed(key("s")) {
		t.Error("expected hotkey to press button")
	}
	if b.Pressed(key("x")) {
		t.Error("other keys should not press button")
	}
	b.Active = false
	if b.Pressed(key("s")) {
		t.Error("inactive button should not press")
	}
}

func TestProgressBarView(t *testing.T) {
	p := NewProgressBar("Sign", 0.6, true, 40)
	if !strings.Contains(p.View(), "60%") {
		t.Errorf("expected 60%% in %q", p.View())
	}
}

func TestMenuNumberKeyOpensItem(t *testing.T) {
	var opened string
	open := func(id string) func() tea.Cmd {
		return func() tea.Cmd {
			opened = id
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Color Match", Action: open("colors")},
		{Label: "Shape Match", Action: open("shapes"), Disabled: true, Reason: "coming soon"},
		{Label: "Alphabet", Action: open("alphabet")},
	})

	m, _ = m.Update(key("2"))
	if opened != "" || m.Selected != 0 {
		t.Errorf("disabled item opened=%q selected=%d", opened, m.Selected)
	}
	m, _ = m.Update(key("3"))
	if opened != "alphabet" || m.Selected != 2 {
		t.Errorf("expected alphabet selected and opened, got %q at %d", opened, m.Selected)
	}
	if !strings.Contains(m.View(), "coming soon") {
		t.Error("disabled item should show its reason")
	}
}

func TestMenuSkipsLeadingDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a", Disabled: true}, {Label: "b"}})
	if it, ok := m.Current(); !ok || it.Label != "b" {
		t.Errorf("expected b selected, got %+v", it)
	}
	m, _ = m.Update(key("up"))
	if m.Selected != 1 {
		t.Error("up must not land on a disabled item")
	}
}

func TestAlertCardShowsNotice(t *testing.T) {
	out := AlertCard("Emergency message sent: Help", 40)
	if !strings.Contains(out, "Emergency message sent") {
		t.Error("alert card should render its notice")
	}
}

package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/screens/welcome"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	art := welcome.RenderBanner(cw, theme.ArcadeYellow)
	if compact {
		art = welcome.RenderBanner(0, theme.ArcadeYellow)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(art)
}

// stats is what the home stats bar shows.
type stats struct {
	lessons    int
	activities int
	locale     string
}

// renderStatsBar renders the session stats in a bordered box matching content width.
func renderStatsBar(s stats, cw int, compact bool) string {
	lessonStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	activityStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	localeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var text string
	if compact {
		text = fmt.Sprintf("%s %s %s",
			lessonStyle.Render(fmt.Sprintf("★%d", s.lessons)),
			activityStyle.Render(fmt.Sprintf("◆%d", s.activities)),
			localeStyle.Render(s.locale),
		)
	} else {
		text = fmt.Sprintf("%s  %s  %s",
			lessonStyle.Render(fmt.Sprintf("★ %d LESSONS", s.lessons)),
			activityStyle.Render(fmt.Sprintf("◆ %d ACTIVITIES", s.activities)),
			localeStyle.Render("🗣 "+strings.ToUpper(s.locale)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderArcadeMenu renders each menu item as a fixed-width button. A
// disabled item carries its reason underneath.
func renderArcadeMenu(items []components.MenuItem, selected int, cw int) string {
	var buttons []string
	for i, it := range items {
		state := components.ButtonIdle
		switch {
		case it.Disabled:
			state = components.ButtonDisabled
		case i == selected:
			state = components.ButtonSelected
		}
		buttons = append(buttons, components.ArcadeButton(it.Label, state, buttonWidth))
		if it.Disabled && it.Reason != "" {
			buttons = append(buttons, theme.Hint.Render(it.Reason))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for terminals
// too short for bordered buttons.
func renderArcadeMenuCompact(items []components.MenuItem, selected int, cw int) string {
	var lines []string
	for i, it := range items {
		var line string
		switch {
		case it.Disabled:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Faint(true).Render("   " + it.Label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + it.Label + " ")
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + it.Label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderEmblemBox renders the emblem centered in a box matching content width.
func renderEmblemBox(v EmblemVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderEmblem(v))
}

package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every pane section so
// cards, grids and titles line up.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	return max(20, min(frameWidth-6, 60))
}

// CabinetFrame wraps content in a double border, centered both ways.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card.
func ArcadeCard(content string, cw int) string {
	return accentCard(content, cw, theme.Border)
}

// AlertCard is an ArcadeCard with a bold body and an error border, used for
// emergency notices.
func AlertCard(content string, cw int) string {
	return accentCard(lipgloss.NewStyle().Bold(true).Foreground(theme.Error).Render(content), cw, theme.Error)
}

func accentCard(content string, cw int, border color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ButtonState is how an arcade button is drawn.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// ArcadeButton renders a fixed-width bordered menu button.
func ArcadeButton(label string, state ButtonState, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch state {
	case ButtonSelected:
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonDisabled:
		return style.
			Faint(true).
			Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Render(label)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}

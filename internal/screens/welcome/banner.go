package welcome

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/ui/theme"
)

// BannerArt is the block-letter SAHAAY title.
const BannerArt = `
 ███████╗ █████╗ ██╗  ██╗ █████╗  █████╗ ██╗   ██╗
 ██╔════╝██╔══██╗██║  ██║██╔══██╗██╔══██╗╚██╗ ██╔╝
 ███████╗███████║███████║███████║███████║ ╚████╔╝
 ╚════██║██╔══██║██╔══██║██╔══██║██╔══██║  ╚██╔╝
 ███████║██║  ██║██║  ██║██║  ██║██║  ██║   ██║
 ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝`

// BannerCompact is used when the terminal is too narrow for BannerArt.
const BannerCompact = "S · A · H · A · A · Y"

// BannerMinWidth is the narrowest width that fits BannerArt.
const BannerMinWidth = 52

// RenderBanner returns the banner in fg, or theme.Primary when fg is nil.
func RenderBanner(width int, fg color.Color) string {
	if fg == nil {
		fg = theme.Primary
	}
	style := lipgloss.NewStyle().Foreground(fg).Bold(true)
	if width < BannerMinWidth {
		return style.Render(BannerCompact)
	}
	return style.Render(BannerArt[1:])
}

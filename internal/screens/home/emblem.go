package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/ui/theme"
)

// EmblemVariant selects the art shown above the menu. It follows the
// highlighted menu item.
type EmblemVariant int

const (
	EmblemIdle      EmblemVariant = iota
	EmblemInclusion               // hands, blue
	EmblemChild                   // star, pink
	EmblemAssistive               // speech bubble, indigo
)

const emblemIdle = `┌─────┐
│ ♥ ♥ │
│  ▽  │
│ ✋✋ │
└─────┘`

const emblemInclusion = `┌─────┐
│ ⠁ ⠃ │
│  ✋  │
│ A B │
└─────┘`

const emblemChild = `┌─────┐
│ ★ ★ │
│  ▿  │
│ 🟥⭕ │
└─╥═╥─┘
  ╚═╝`

const emblemAssistive = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ 🗣 🆘 │
└─────┘`

// RenderEmblem returns the emblem art for the given variant.
func RenderEmblem(v EmblemVariant) string {
	art, fg := emblemIdle, theme.Primary

	switch v {
	case EmblemInclusion:
		art, fg = emblemInclusion, theme.Inclusion
	case EmblemChild:
		art, fg = emblemChild, theme.Child
	case EmblemAssistive:
		art, fg = emblemAssistive, theme.Assistive
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/ui/theme"
)

// Mark is how a grid cell is highlighted beyond the cursor.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
	MarkChosen
)

// Cell is one item in a ChoiceGrid.
type Cell struct {
	ID    string
	Glyph string
	Label string
}

// ChoiceGrid lays out cells in rows and moves a cursor with the arrow keys.
type ChoiceGrid struct {
	Cells   []Cell
	Columns int
	Cursor  int
	Marks   map[string]Mark
}

// NewChoiceGrid creates a grid with the given column count.
func NewChoiceGrid(cells []Cell, columns int) ChoiceGrid {
	if columns < 1 {
		columns = 1
	}
	return ChoiceGrid{Cells: cells, Columns: columns, Marks: map[string]Mark{}}
}

// Update moves the cursor. Enter is left to the caller.
func (g ChoiceGrid) Update(msg tea.Msg) ChoiceGrid {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(g.Cells) == 0 {
		return g
	}
	switch kmsg.String() {
	case "left", "h":
		if g.Cursor > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor < len(g.Cells)-1 {
			g.Cursor++
		}
	case "up", "k":
		if g.Cursor-g.Columns >= 0 {
			g.Cursor -= g.Columns
		}
	case "down", "j":
		if g.Cursor+g.Columns < len(g.Cells) {
			g.Cursor += g.Columns
		}
	}
	return g
}

// Current returns the cell under the cursor.
func (g ChoiceGrid) Current() Cell {
	if len(g.Cells) == 0 {
		return Cell{}
	}
	return g.Cells[g.Cursor]
}

// SetMark highlights the cell with id. MarkNone clears it.
func (g *ChoiceGrid) SetMark(id string, m Mark) {
	if g.Marks == nil {
		g.Marks = map[string]Mark{}
	}
	if m == MarkNone {
		delete(g.Marks, id)
		return
	}
	g.Marks[id] = m
}

// ClearMarks removes every highlight.
func (g *ChoiceGrid) ClearMarks() {
	g.Marks = map[string]Mark{}
}

// View renders the grid with each cell at cellWidth.
func (g ChoiceGrid) View(cellWidth int) string {
	base := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	var rows []string
	for start := 0; start < len(g.Cells); start += g.Columns {
		end := min(start+g.Columns, len(g.Cells))
		var cells []string
		for i := start; i < end; i++ {
			c := g.Cells[i]
			style := base.Foreground(theme.Text).BorderForeground(theme.Border)
			switch g.Marks[c.ID] {
			case MarkCorrect:
				style = style.Foreground(theme.Success).BorderForeground(theme.Success)
			case MarkWrong:
				style = style.Foreground(theme.Error).BorderForeground(theme.Error)
			case MarkChosen:
				style = style.Foreground(theme.Accent).BorderForeground(theme.Accent)
			}
			if i == g.Cursor {
				style = style.Bold(true).BorderForeground(theme.ArcadeYellow)
			}
			text := c.Label
			if c.Glyph != "" {
				text = c.Glyph + " " + c.Label
			}
			cells = append(cells, style.Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

package child

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/lesson"
	"github.com/abhisek/sahaay/internal/matchgame"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// Game IDs.
const (
	GameColor    = "colors"
	GameShape    = "shapes"
	GameAlphabet = "alphabet"
)

type chooseGameMsg struct {
	id string
}

// matchBoard pairs a match game with its grid.
type matchBoard struct {
	title   string
	choices []content.Choice
	game    *matchgame.Game[string]
	grid    components.ChoiceGrid
}

func newMatchBoard(title, domain string, choices []content.Choice, rng matchgame.Source) *matchBoard {
	cells := make([]components.Cell, len(choices))
	for i, c := range choices {
		cells[i] = components.Cell{ID: c.ID, Glyph: c.Glyph, Label: c.Label}
	}
	return &matchBoard{
		title:   title,
		choices: choices,
		game:    matchgame.New[string](domain, rng),
		grid:    components.NewChoiceGrid(cells, 3),
	}
}

func (b *matchBoard) label(id string) string {
	if c, ok := content.Find(b.choices, id); ok {
		return c.Label
	}
	return id
}

// gamesPane hosts the color and shape match games and the alphabet board.
type gamesPane struct {
	deps   *screens.Deps
	menu   components.Menu
	active string

	color *matchBoard
	shape *matchBoard

	alphabet     lesson.Set
	alphaWalker  *lesson.Walker
	alphaGrid    components.ChoiceGrid
	settleDelay  time.Duration
	lastFeedback string
}

func newGamesPane(deps *screens.Deps, alphabet lesson.Set) (*gamesPane, error) {
	w, err := lesson.ForSet(alphabet)
	if err != nil {
		return nil, fmt.Errorf("alphabet: %w", err)
	}
	cells := make([]components.Cell, len(alphabet.Items))
	for i, it := range alphabet.Items {
		cells[i] = components.Cell{ID: it.ID, Label: it.Label}
	}

	choose := func(id string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return chooseGameMsg{id: id} }
		}
	}

	return &gamesPane{
		deps: deps,
		menu: components.NewMenu([]components.MenuItem{
			{Label: "Color Match", Glyph: "🎨", Action: choose(GameColor)},
			{Label: "Shape Match", Glyph: "🔷", Action: choose(GameShape)},
			{Label: "Alphabet Learning", Glyph: "🔤", Action: choose(GameAlphabet)},
		}),
		color:       newMatchBoard("Color Match", GameColor, deps.Catalog.Colors, deps.Rand),
		shape:       newMatchBoard("Shape Match", GameShape, deps.Catalog.Shapes, deps.Rand),
		alphabet:    alphabet,
		alphaWalker: w,
		alphaGrid:   components.NewChoiceGrid(cells, 7),
		settleDelay: deps.Config.Match.SettleDelay,
	}, nil
}

func (p *gamesPane) board(id string) *matchBoard {
	switch id {
	case GameColor:
		return p.color
	case GameShape:
		return p.shape
	}
	return nil
}

func (p *gamesPane) choose(id string) {
	p.active = id
	p.lastFeedback = ""
	b := p.board(id)
	if b == nil {
		return
	}
	if _, err := b.game.Start(content.IDs(b.choices)); err != nil {
		p.lastFeedback = err.Error()
		p.active = ""
		return
	}
	b.grid.ClearMarks()
	p.deps.Record(store.ModuleChild, store.ActionMatchStart, id, 0)
}

// stop ends the running game and invalidates pending settle timers.
func (p *gamesPane) stop() {
	if b := p.board(p.active); b != nil {
		b.game.Stop()
		b.grid.ClearMarks()
	}
	p.active = ""
	p.lastFeedback = ""
}

func (p *gamesPane) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case chooseGameMsg:
		p.choose(msg.id)
		return nil

	case settleMsg:
		b := p.board(msg.game)
		if b == nil {
			return nil
		}
		if _, ok := b.game.Settle(msg.token); ok {
			b.grid.ClearMarks()
			p.lastFeedback = ""
		}
		return nil

	case tea.KeyMsg:
		if p.active == "" {
			var cmd tea.Cmd
			p.menu, cmd = p.menu.Update(msg)
			return cmd
		}
		if msg.String() == "b" {
			p.stop()
			return nil
		}
		if p.active == GameAlphabet {
			return p.updateAlphabet(msg)
		}
		return p.updateMatch(p.board(p.active), msg)
	}
	return nil
}

func (p *gamesPane) updateMatch(b *matchBoard, msg tea.KeyMsg) tea.Cmd {
	if msg.String() != "enter" {
		b.grid = b.grid.Update(msg)
		return nil
	}

	pick := b.grid.Current().ID
	st, err := b.game.Select(pick)
	if err != nil {
		p.lastFeedback = err.Error()
		return nil
	}

	b.grid.ClearMarks()
	if st.Matched() {
		b.grid.SetMark(pick, components.MarkCorrect)
		p.lastFeedback = "Correct! +10"
		p.deps.Record(store.ModuleChild, store.ActionMatchCorrect, pick, st.Score)
		game, token := b.game.Domain(), st.SettleToken
		return tea.Tick(p.settleDelay, func(time.Time) tea.Msg {
			return settleMsg{game: game, token: token}
		})
	}

	b.grid.SetMark(pick, components.MarkWrong)
	p.lastFeedback = "Try again!"
	p.deps.Record(store.ModuleChild, store.ActionMatchWrong, pick, st.Score)
	return nil
}

func (p *gamesPane) updateAlphabet(msg tea.KeyMsg) tea.Cmd {
	if msg.String() != "enter" {
		p.alphaGrid = p.alphaGrid.Update(msg)
		return nil
	}
	if _, err := p.alphaWalker.JumpTo(p.alphaGrid.Cursor); err != nil {
		return nil
	}
	item := p.alphabet.Items[p.alphaWalker.Cursor().Index]
	p.alphaGrid.ClearMarks()
	p.alphaGrid.SetMark(item.ID, components.MarkChosen)
	p.deps.Speak(item.Label, "")
	p.deps.Record(store.ModuleChild, store.ActionLessonView, item.ID, p.alphaWalker.ProgressPercent())
	return nil
}

func (p *gamesPane) keyHints() []layout.KeyHint {
	if p.active == "" {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose game"},
			{Key: "Enter", Description: "Play"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Move"},
		{Key: "Enter", Description: "Pick"},
		{Key: "b", Description: "Games"},
	}
}

func (p *gamesPane) view(width int) string {
	cw := components.ContentWidth(width)
	title := theme.Title.Width(cw)

	switch p.active {
	case "":
		return strings.Join([]string{
			title.Render("Learning Games"),
			p.menu.View(),
		}, "\n\n")

	case GameAlphabet:
		item := p.alphabet.Items[p.alphaWalker.Cursor().Index]
		big := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(item.Label)
		return strings.Join([]string{
			title.Render(p.alphabet.Title),
			big,
			p.alphaGrid.View(3),
			theme.Hint.Render("Pick a letter to hear it"),
		}, "\n\n")
	}

	b := p.board(p.active)
	st := b.game.State()
	target := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render("Find: " + strings.ToUpper(b.label(st.Target)))
	score := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Score: %d", st.Score))

	sections := []string{
		title.Render(b.title),
		target + "    " + score,
		b.grid.View(14),
	}
	if p.lastFeedback != "" {
		style := theme.Incorrect
		if st.Matched() {
			style = theme.Correct
		}
		sections = append(sections, style.Render(p.lastFeedback))
	}
	return strings.Join(sections, "\n\n")
}

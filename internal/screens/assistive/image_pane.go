package assistive

import (
	"context"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sahaay/internal/recognition"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// imagePane describes an image file picked by path.
type imagePane struct {
	deps    *screens.Deps
	input   components.TextInput
	caption string
	err     string
}

func newImagePane(deps *screens.Deps) *imagePane {
	return &imagePane{
		deps:  deps,
		input: components.NewTextInput("Path to an image file", 200),
	}
}

func (p *imagePane) describe() {
	path := p.input.Value()
	res, err := p.deps.Recognizer.Recognize(context.Background(), recognition.Request{
		Kind:  recognition.KindCaption,
		Input: path,
	})
	if err != nil {
		p.caption, p.err = "", err.Error()
		p.input.Submit(false)
		return
	}
	p.caption, p.err = res.Text, ""
	p.input.Submit(true)
	p.deps.Record(store.ModuleAssistive, store.ActionCaption, filepath.Base(path), 0)
}

func (p *imagePane) update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			p.describe()
			return nil
		case "ctrl+s":
			p.deps.Speak(p.caption, "")
			return nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *imagePane) keyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Describe"},
		{Key: "Ctrl+S", Description: "Read aloud"},
	}
}

func (p *imagePane) view(width int) string {
	cw := components.ContentWidth(width)

	body := theme.Hint.Render("Enter the path of an image to describe it")
	switch {
	case p.err != "":
		body = theme.Incorrect.Render(p.err)
	case p.caption != "":
		body = theme.Body.Render(p.caption)
	}

	return strings.Join([]string{
		theme.Title.Width(cw).Render("Image Description"),
		p.input.View(),
		components.ArcadeCard(body, cw),
	}, "\n\n")
}

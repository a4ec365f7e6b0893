// Package assistive is the Assistive Hub: sign translation, speech to text,
// image description and emergency messages.
package assistive

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/screen"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
)

// Tab IDs.
const (
	TabTranslator = "translator"
	TabTranscript = "transcript"
	TabImage      = "image"
	TabEmergency  = "emergency"
)

// AssistiveScreen hosts the four assistive tools.
type AssistiveScreen struct {
	tabs       components.Tabs
	translator *translatorPane
	transcript *transcriptPane
	image      *imagePane
	emergency  *emergencyPane
}

var _ screen.Screen = (*AssistiveScreen)(nil)
var _ screen.KeyHintProvider = (*AssistiveScreen)(nil)
var _ screen.StatusProvider = (*AssistiveScreen)(nil)
var _ screen.Closer = (*AssistiveScreen)(nil)

// New creates the hub. deps.Recognizer must be set.
func New(deps *screens.Deps) *AssistiveScreen {
	return &AssistiveScreen{
		tabs: components.NewTabs(
			components.Tab{ID: TabTranslator, Label: "Sign Translator"},
			components.Tab{ID: TabTranscript, Label: "Speech to Text"},
			components.Tab{ID: TabImage, Label: "Image Description"},
			components.Tab{ID: TabEmergency, Label: "Emergency"},
		),
		translator: newTranslatorPane(deps),
		transcript: &transcriptPane{deps: deps},
		image:      newImagePane(deps),
		emergency:  newEmergencyPane(deps),
	}
}

func (s *AssistiveScreen) Init() tea.Cmd {
	return s.translator.input.Init()
}

func (s *AssistiveScreen) Title() string {
	return "Assistive Hub"
}

// Status flags a pending emergency message or an open microphone.
func (s *AssistiveScreen) Status() string {
	switch {
	case s.emergency.pending != "":
		return "🆘 Sending"
	case s.transcript.listening:
		return "● Listening"
	}
	return ""
}

func (s *AssistiveScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch"}}
	switch s.tabs.Current().ID {
	case TabTranslator:
		hints = append(hints, s.translator.keyHints()...)
	case TabTranscript:
		hints = append(hints, s.transcript.keyHints()...)
	case TabImage:
		hints = append(hints, s.image.keyHints()...)
	case TabEmergency:
		hints = append(hints, s.emergency.keyHints()...)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// SelectTab activates a tab by ID.
func (s *AssistiveScreen) SelectTab(id string) {
	s.tabs.Select(id)
}

// Close cancels the pending transcript and any unsent emergency message.
func (s *AssistiveScreen) Close() {
	s.transcript.stop()
	s.emergency.cancel()
}

func (s *AssistiveScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case transcriptMsg:
		return s, s.transcript.update(msg)
	case emergencySentMsg:
		return s, s.emergency.update(msg)
	}

	var changed bool
	if s.tabs, changed = s.tabs.Update(msg); changed {
		return s, nil
	}

	switch s.tabs.Current().ID {
	case TabTranslator:
		return s, s.translator.update(msg)
	case TabTranscript:
		return s, s.transcript.update(msg)
	case TabImage:
		return s, s.image.update(msg)
	case TabEmergency:
		return s, s.emergency.update(msg)
	}
	return s, nil
}

func (s *AssistiveScreen) View(width, height int) string {
	var body string
	switch s.tabs.Current().ID {
	case TabTranslator:
		body = s.translator.view(width)
	case TabTranscript:
		body = s.transcript.view(width)
	case TabImage:
		body = s.image.view(width)
	case TabEmergency:
		body = s.emergency.view(width)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, s.tabs.View(), "", body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

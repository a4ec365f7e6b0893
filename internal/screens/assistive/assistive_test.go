package assistive

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sahaay/internal/config"
	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/recognition"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/speech"
	"github.com/abhisek/sahaay/internal/store"
)

type fixture struct {
	screen *AssistiveScreen
	deps   *screens.Deps
	speech *speech.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat, err := content.Load()
	require.NoError(t, err)
	st, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	rz, err := recognition.NewStub(cat.Assistive, content.IDs(cat.Emotions))
	require.NoError(t, err)

	rec := &speech.Recorder{}
	deps := &screens.Deps{
		Catalog:    cat,
		Config:     config.Default(),
		Events:     st.EventRepo(),
		Speaker:    rec,
		Recognizer: rz,
	}
	return &fixture{screen: New(deps), deps: deps, speech: rec}
}

func (f *fixture) key(k string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch k {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		msg = tea.KeyPressMsg{Code: tea.KeyTab}
	case "right":
		msg = tea.KeyPressMsg{Code: tea.KeyRight}
	case "ctrl+s":
		msg = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	default:
		msg = tea.KeyPressMsg{Code: []rune(k)[0], Text: k}
	}
	_, cmd := f.screen.Update(msg)
	return cmd
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	_, cmd := f.screen.Update(msg)
	return cmd
}

func (f *fixture) counts(t *testing.T) map[string]int {
	t.Helper()
	c, err := f.deps.Events.CountByAction(context.Background(), store.ModuleAssistive)
	require.NoError(t, err)
	return c
}

func TestAssistive_TitleAndTabs(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "Assistive Hub", f.screen.Title())
	f.key("tab")
	assert.Equal(t, TabTranscript, f.screen.tabs.Current().ID)
}

func TestTranslator(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "Hello"},
		{"  Thank You ", "Thank you"},
		{"goodbye", recognition.NotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := newFixture(t)
			f.screen.translator.input.SetValue(tt.input)
			f.key("enter")
			assert.Equal(t, tt.want, f.screen.translator.output)
			assert.Contains(t, f.screen.View(100, 40), tt.want)
		})
	}
}

func TestTranslator_SpeakOnlyKnownPhrases(t *testing.T) {
	f := newFixture(t)

	f.screen.translator.input.SetValue("xyz")
	f.key("enter")
	f.key("ctrl+s")
	assert.Empty(t, f.speech.Utterances())

	f.screen.translator.input.SetValue("water")
	f.key("enter")
	f.key("ctrl+s")
	u, ok := f.speech.Last()
	require.True(t, ok)
	assert.Equal(t, "Water", u.Text)
	assert.Equal(t, 2, f.counts(t)[store.ActionTranslate])
}

func TestTranscript(t *testing.T) {
	f := newFixture(t)
	f.screen.SelectTab(TabTranscript)

	cmd := f.key("enter")
	require.NotNil(t, cmd)
	assert.True(t, f.screen.transcript.listening)
	assert.Equal(t, "● Listening", f.screen.Status())

	f.send(cmd())
	assert.False(t, f.screen.transcript.listening)
	view := f.screen.View(100, 40)
	assert.Contains(t, view, "I need help")
	assert.Contains(t, view, "Neutral")
	assert.Equal(t, 1, f.counts(t)[store.ActionTranscript])

	f.key("s")
	u, ok := f.speech.Last()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(u.Text, "Hello"))
}

func TestTranscript_StopDropsLateResult(t *testing.T) {
	f := newFixture(t)
	f.screen.SelectTab(TabTranscript)

	cmd := f.key("enter")
	require.NotNil(t, cmd)
	f.key("enter") // stop before the result arrives

	msg := cmd()
	tm, ok := msg.(transcriptMsg)
	require.True(t, ok)
	assert.ErrorIs(t, tm.err, context.Canceled)

	f.send(msg)
	assert.False(t, f.screen.transcript.has)
	assert.Zero(t, f.counts(t)[store.ActionTranscript])
}

func TestImageDescription(t *testing.T) {
	f := newFixture(t)
	f.screen.SelectTab(TabImage)

	f.screen.image.input.SetValue(filepath.Join(t.TempDir(), "missing.png"))
	f.key("enter")
	assert.NotEmpty(t, f.screen.image.err)
	assert.Empty(t, f.screen.image.caption)

	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))
	f.screen.image.input.SetValue(path)
	f.key("enter")
	assert.Empty(t, f.screen.image.err)
	assert.Equal(t, f.deps.Catalog.Assistive.Caption, f.screen.image.caption)

	recent, err := f.deps.Events.Recent(context.Background(), store.QueryOpts{Module: store.ModuleAssistive, Limit: 1})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "photo.png", recent[0].Detail)
}

func TestEmergency(t *testing.T) {
	f := newFixture(t)
	f.screen.SelectTab(TabEmergency)

	f.key("right") // medical
	require.NotNil(t, f.key("enter"))
	assert.Equal(t, "medical", f.screen.emergency.pending)
	assert.Equal(t, "🆘 Sending", f.screen.Status())

	f.send(emergencySentMsg{run: f.screen.emergency.run, id: "medical"})
	assert.Contains(t, f.screen.View(100, 40), "Emergency message sent: Medical emergency")
	u, ok := f.speech.Last()
	require.True(t, ok)
	assert.Equal(t, "Medical emergency", u.Text)

	c := f.counts(t)
	assert.Equal(t, 1, c[store.ActionEmergency])
	assert.Equal(t, 1, c[store.ActionEmergencySent])
}

func TestEmergency_ResendSupersedesPending(t *testing.T) {
	f := newFixture(t)
	f.screen.SelectTab(TabEmergency)

	f.key("enter") // help
	first := f.screen.emergency.run
	f.key("right")
	f.key("enter") // medical

	f.send(emergencySentMsg{run: first, id: "help"})
	assert.Empty(t, f.screen.emergency.notice, "superseded confirmation is dropped")
	assert.Equal(t, "medical", f.screen.emergency.pending)
}

func TestAssistive_CloseCancelsPending(t *testing.T) {
	f := newFixture(t)
	f.screen.SelectTab(TabEmergency)
	f.key("enter")
	run := f.screen.emergency.run

	f.screen.Close()
	f.send(emergencySentMsg{run: run, id: "help"})
	assert.Empty(t, f.screen.emergency.notice)
	assert.Zero(t, f.counts(t)[store.ActionEmergencySent])
}

func TestAssistive_TimersFromClosedScreenAreIgnored(t *testing.T) {
	f := newFixture(t)

	f.screen.SelectTab(TabTranscript)
	require.NotNil(t, f.key("enter"))
	oldTranscript := f.screen.transcript.run
	f.screen.SelectTab(TabEmergency)
	require.NotNil(t, f.key("enter"))
	oldEmergency := f.screen.emergency.run
	f.screen.Close()

	f.screen = New(f.deps)
	t.Cleanup(f.screen.Close)
	f.screen.SelectTab(TabTranscript)
	require.NotNil(t, f.key("enter"))
	f.screen.SelectTab(TabEmergency)
	require.NotNil(t, f.key("enter"))

	f.send(transcriptMsg{run: oldTranscript, result: recognition.Result{Kind: recognition.KindTranscript, Text: "late", Label: "neutral"}})
	assert.True(t, f.screen.transcript.listening, "old result must not end the new request")
	assert.False(t, f.screen.transcript.has)

	f.send(emergencySentMsg{run: oldEmergency, id: "help"})
	assert.Empty(t, f.screen.emergency.notice)
	assert.Equal(t, "help", f.screen.emergency.pending)

	c := f.counts(t)
	assert.Zero(t, c[store.ActionTranscript])
	assert.Zero(t, c[store.ActionEmergencySent])
}

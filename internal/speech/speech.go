// Package speech delivers text to a text-to-speech backend. Speaking is
// fire-and-forget: callers never wait and never see an error.
package speech

import (
	"context"
	"os/exec"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/sahaay/internal/store"
)

// Locales offered by the speech word walker.
const (
	LocaleEnglish = "en-US"
	LocaleHindi   = "hi-IN"
)

// Speaker speaks text in a locale.
type Speaker interface {
	Speak(text, locale string)
}

// LogSpeaker records every utterance in the journal and the log. It is the
// default backend when no TTS command is configured.
type LogSpeaker struct {
	events store.EventRepo
}

// NewLogSpeaker creates a LogSpeaker. events may be nil.
func NewLogSpeaker(events store.EventRepo) *LogSpeaker {
	return &LogSpeaker{events: events}
}

func (s *LogSpeaker) Speak(text, locale string) {
	if text == "" {
		return
	}
	log.Debug().Str("locale", locale).Str("text", text).Msg("speak")
	if s.events == nil {
		return
	}
	err := s.events.Append(context.Background(), store.Activity{
		Module: store.ModuleSpeech,
		Action: store.ActionSpeak,
		Detail: locale + ":" + text,
	})
	if err != nil {
		log.Warn().Err(err).Msg("journal speak")
	}
}

// CommandSpeaker runs an external TTS program (e.g. espeak-ng wrapper)
// with the locale and text as arguments. Utterances are also journaled
// through the embedded LogSpeaker.
type CommandSpeaker struct {
	*LogSpeaker

	command string
	timeout time.Duration

	wg sync.WaitGroup
}

// DefaultCommandTimeout bounds a single TTS invocation.
const DefaultCommandTimeout = 30 * time.Second

// NewCommandSpeaker creates a CommandSpeaker that runs command.
func NewCommandSpeaker(command string, events store.EventRepo) *CommandSpeaker {
	return &CommandSpeaker{
		LogSpeaker: NewLogSpeaker(events),
		command:    command,
		timeout:    DefaultCommandTimeout,
	}
}

func (s *CommandSpeaker) Speak(text, locale string) {
	if text == "" {
		return
	}
	s.LogSpeaker.Speak(text, locale)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if out, err := exec.CommandContext(ctx, s.command, locale, text).CombinedOutput(); err != nil {
			log.Warn().Err(err).Str("command", s.command).Bytes("output", out).Msg("tts command failed")
		}
	}()
}

// Wait blocks until all in-flight utterances finish.
func (s *CommandSpeaker) Wait() {
	s.wg.Wait()
}

// New returns a CommandSpeaker when command is set, otherwise a LogSpeaker.
func New(command string, events store.EventRepo) Speaker {
	if command != "" {
		return NewCommandSpeaker(command, events)
	}
	return NewLogSpeaker(events)
}

// Recorder is an in-memory Speaker that remembers every utterance.
type Recorder struct {
	mu         sync.Mutex
	utterances []Utterance
}

// Utterance is one recorded Speak call.
type Utterance struct {
	Text   string
	Locale string
}

func (r *Recorder) Speak(text, locale string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.utterances = append(r.utterances, Utterance{Text: text, Locale: locale})
}

// Utterances returns a copy of everything spoken so far.
func (r *Recorder) Utterances() []Utterance {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Utterance, len(r.utterances))
	copy(out, r.utterances)
	return out
}

// Last returns the most recent utterance.
func (r *Recorder) Last() (Utterance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.utterances) == 0 {
		return Utterance{}, false
	}
	return r.utterances[len(r.utterances)-1], true
}

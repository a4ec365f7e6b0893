// Package screens holds what the module screens share: their dependencies
// and the journaling helper.
package screens

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/sahaay/internal/config"
	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/focus"
	"github.com/abhisek/sahaay/internal/matchgame"
	"github.com/abhisek/sahaay/internal/recognition"
	"github.com/abhisek/sahaay/internal/speech"
	"github.com/abhisek/sahaay/internal/store"
)

// Deps are the collaborators handed to every module screen.
type Deps struct {
	Catalog    *content.Catalog
	Config     *config.Config
	Events     store.EventRepo // may be nil
	Speaker    speech.Speaker
	Recognizer recognition.Provider
	Clock      focus.Clock
	Rand       matchgame.Source
}

// Record journals one user transition. Failures are logged, never surfaced.
func (d *Deps) Record(module, action, detail string, score int) {
	log.Debug().
		Str("module", module).
		Str("action", action).
		Str("detail", detail).
		Int("score", score).
		Msg("transition")
	if d.Events == nil {
		return
	}
	err := d.Events.Append(context.Background(), store.Activity{
		Module: module,
		Action: action,
		Detail: detail,
		Score:  score,
	})
	if err != nil {
		log.Warn().Err(err).Str("module", module).Str("action", action).Msg("journal append")
	}
}

// Speak forwards to the speaker in the configured locale unless locale is set.
func (d *Deps) Speak(text, locale string) {
	if d.Speaker == nil || text == "" {
		return
	}
	if locale == "" {
		locale = d.Config.Speech.Locale
	}
	d.Speaker.Speak(text, locale)
}

var runs atomic.Uint64

// NextRun returns a timer run id unique within the process. Panes stamp it
// into their tick messages so a tick from a closed screen never matches a
// pane of a screen opened later.
func NextRun() uint64 {
	return runs.Add(1)
}

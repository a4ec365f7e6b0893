package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/sahaay/internal/app"
	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/focus"
	"github.com/abhisek/sahaay/internal/logging"
	"github.com/abhisek/sahaay/internal/matchgame"
	"github.com/abhisek/sahaay/internal/recognition"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/speech"
	"github.com/abhisek/sahaay/internal/store"
)

// runApp loads config and content, opens the session journal, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logs, err := logging.Setup(cfg.Logging)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer logs.Close()

	cat, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	st, err := store.OpenMemory()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	events := st.EventRepo()

	rz, err := recognition.NewStub(cat.Assistive, content.IDs(cat.Emotions),
		recognition.WithTranscriptDelay(cfg.Recognition.TranscriptDelay))
	if err != nil {
		return fmt.Errorf("recognizer: %w", err)
	}

	speaker := speech.New(cfg.Speech.Command, events)
	if cs, ok := speaker.(*speech.CommandSpeaker); ok {
		defer cs.Wait()
	}

	log.Info().
		Str("session", st.SessionID()).
		Str("locale", cfg.Speech.Locale).
		Msg("starting")

	skip, _ := cmd.Flags().GetBool("skip-welcome")
	return app.Run(app.Options{
		Deps: &screens.Deps{
			Catalog:    cat,
			Config:     cfg,
			Events:     events,
			Speaker:    speaker,
			Recognizer: rz,
			Clock:      focus.SystemClock(),
			Rand:       matchgame.DefaultSource(),
		},
		SkipWelcome: skip,
	})
}

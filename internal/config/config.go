// Package config loads runtime settings from defaults, an optional YAML file
// and SAHAAY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override,
// e.g. SAHAAY_FOCUS_DURATION_SECONDS.
const EnvPrefix = "SAHAAY"

// Config holds the complete application configuration.
type Config struct {
	Focus       FocusConfig       `mapstructure:"focus"`
	Match       MatchConfig       `mapstructure:"match"`
	Speech      SpeechConfig      `mapstructure:"speech"`
	Recognition RecognitionConfig `mapstructure:"recognition"`
	Assistive   AssistiveConfig   `mapstructure:"assistive"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// FocusConfig configures the timed focus task.
type FocusConfig struct {
	DurationSeconds int           `mapstructure:"duration_seconds"`
	TickInterval    time.Duration `mapstructure:"tick_interval"`
}

// MatchConfig configures the match games.
type MatchConfig struct {
	SettleDelay time.Duration `mapstructure:"settle_delay"`
}

// SpeechConfig configures the speech output collaborator.
type SpeechConfig struct {
	Locale string `mapstructure:"locale"`
	// Command is an optional external TTS program. It receives the locale
	// and the text as its two arguments. Empty means log-only speech.
	Command string `mapstructure:"command"`
}

// RecognitionConfig configures the simulated recognition providers.
type RecognitionConfig struct {
	EmotionInterval time.Duration `mapstructure:"emotion_interval"`
	TranscriptDelay time.Duration `mapstructure:"transcript_delay"`
}

// AssistiveConfig configures the assistive hub.
type AssistiveConfig struct {
	EmergencyDelay time.Duration `mapstructure:"emergency_delay"`
}

// LoggingConfig configures the zerolog sink.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	// File receives log output. Empty discards logs since the terminal
	// belongs to the TUI.
	File string `mapstructure:"file"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Focus: FocusConfig{
			DurationSeconds: 30,
			TickInterval:    time.Second,
		},
		Match: MatchConfig{
			SettleDelay: time.Second,
		},
		Speech: SpeechConfig{
			Locale: "en-US",
		},
		Recognition: RecognitionConfig{
			EmotionInterval: 3 * time.Second,
			TranscriptDelay: 2 * time.Second,
		},
		Assistive: AssistiveConfig{
			EmergencyDelay: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path (optional), then applies environment
// overrides on top of defaults. A missing path is an error; an empty path
// means defaults plus environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the engines cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Focus.DurationSeconds <= 0 {
		errs = append(errs, fmt.Errorf("focus.duration_seconds must be positive, got %d", c.Focus.DurationSeconds))
	}
	if c.Focus.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("focus.tick_interval must be positive, got %s", c.Focus.TickInterval))
	}
	if c.Match.SettleDelay <= 0 {
		errs = append(errs, fmt.Errorf("match.settle_delay must be positive, got %s", c.Match.SettleDelay))
	}
	if c.Recognition.EmotionInterval <= 0 {
		errs = append(errs, fmt.Errorf("recognition.emotion_interval must be positive, got %s", c.Recognition.EmotionInterval))
	}
	if c.Recognition.TranscriptDelay < 0 {
		errs = append(errs, fmt.Errorf("recognition.transcript_delay must not be negative, got %s", c.Recognition.TranscriptDelay))
	}
	if c.Assistive.EmergencyDelay < 0 {
		errs = append(errs, fmt.Errorf("assistive.emergency_delay must not be negative, got %s", c.Assistive.EmergencyDelay))
	}
	if c.Speech.Locale == "" {
		errs = append(errs, errors.New("speech.locale is required"))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		errs = append(errs, fmt.Errorf("invalid logging.level: %q (must be debug, info, warn, error or disabled)", c.Logging.Level))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("focus.duration_seconds", d.Focus.DurationSeconds)
	v.SetDefault("focus.tick_interval", d.Focus.TickInterval)
	v.SetDefault("match.settle_delay", d.Match.SettleDelay)
	v.SetDefault("speech.locale", d.Speech.Locale)
	v.SetDefault("speech.command", d.Speech.Command)
	v.SetDefault("recognition.emotion_interval", d.Recognition.EmotionInterval)
	v.SetDefault("recognition.transcript_delay", d.Recognition.TranscriptDelay)
	v.SetDefault("assistive.emergency_delay", d.Assistive.EmergencyDelay)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
}

// Package recognition defines the recognition collaborator and the simulated
// providers used in place of real sign, speech, image and emotion models.
package recognition

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/engine"
)

// Kind selects what is being recognized.
type Kind int

const (
	KindTranslation Kind = iota // typed sign text -> spoken phrase
	KindTranscript              // microphone -> text plus emotion
	KindCaption                 // image file -> description
	KindEmotion                 // camera frame -> emotion label
)

func (k Kind) String() string {
	switch k {
	case KindTranslation:
		return "translation"
	case KindTranscript:
		return "transcript"
	case KindCaption:
		return "caption"
	case KindEmotion:
		return "emotion"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NotAvailable is the translation shown for unknown input.
const NotAvailable = "Translation not available"

// Request is one recognition call. Input is the typed text for
// KindTranslation and the file path for KindCaption.
type Request struct {
	Kind  Kind
	Input string
}

// Result is opaque to the engines: a label from a finite set, free-form
// text, or both.
type Result struct {
	Kind  Kind
	Label string
	Text  string
}

// Provider produces recognition results.
type Provider interface {
	Recognize(ctx context.Context, req Request) (Result, error)
}

// Source is the random source for sampled labels.
type Source interface {
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// Stub answers every request from authored content. Transcripts arrive after
// a fixed delay; emotions are sampled uniformly.
type Stub struct {
	assistive       content.Assistive
	emotions        []string
	transcriptDelay time.Duration
	rng             Source
}

// Option configures a Stub.
type Option func(*Stub)

// WithTranscriptDelay sets how long a transcript takes to arrive.
func WithTranscriptDelay(d time.Duration) Option {
	return func(s *Stub) { s.transcriptDelay = d }
}

// WithSource sets the random source for emotion sampling.
func WithSource(src Source) Option {
	return func(s *Stub) { s.rng = src }
}

// NewStub creates a Stub over the catalog's assistive data and emotion labels.
func NewStub(assistive content.Assistive, emotions []string, opts ...Option) (*Stub, error) {
	if len(emotions) == 0 {
		return nil, &engine.EmptyDomainError{Domain: "emotions"}
	}
	s := &Stub{
		assistive: assistive,
		emotions:  append([]string(nil), emotions...),
		rng:       defaultSource{},
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *Stub) Recognize(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	switch req.Kind {
	case KindTranslation:
		return s.translate(req.Input), nil
	case KindTranscript:
		return s.transcribe(ctx)
	case KindCaption:
		return s.caption(req.Input)
	case KindEmotion:
		return Result{Kind: KindEmotion, Label: s.emotions[s.rng.IntN(len(s.emotions))]}, nil
	default:
		return Result{}, &engine.InvalidArgumentError{Name: "recognition kind", Reason: req.Kind.String()}
	}
}

func (s *Stub) translate(input string) Result {
	key := strings.ToLower(strings.TrimSpace(input))
	if text, ok := s.assistive.Translations[key]; ok {
		return Result{Kind: KindTranslation, Label: key, Text: text}
	}
	return Result{Kind: KindTranslation, Text: NotAvailable}
}

func (s *Stub) transcribe(ctx context.Context) (Result, error) {
	if s.transcriptDelay > 0 {
		t := time.NewTimer(s.transcriptDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-t.C:
		}
	}
	return Result{
		Kind:  KindTranscript,
		Label: s.assistive.TranscriptEmotion,
		Text:  s.assistive.Transcript,
	}, nil
}

func (s *Stub) caption(path string) (Result, error) {
	if strings.TrimSpace(path) == "" {
		return Result{}, &engine.InvalidArgumentError{Name: "image path", Reason: "empty"}
	}
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("open image: %w", err)
	}
	if info.IsDir() {
		return Result{}, &engine.InvalidArgumentError{Name: "image path", Reason: "is a directory"}
	}
	return Result{Kind: KindCaption, Text: s.assistive.Caption}, nil
}

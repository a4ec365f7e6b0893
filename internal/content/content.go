// Package content loads the authored lesson, quiz, game and assistive data
// embedded in the binary.
package content

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/sahaay/internal/engine"
	"github.com/abhisek/sahaay/internal/lesson"
	"github.com/abhisek/sahaay/internal/quiz"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Lesson set IDs.
const (
	SetSignLanguage = "sign-language"
	SetBraille      = "braille"
	SetSpeechWords  = "speech-words"
	SetAlphabet     = "alphabet"
)

// Choice is a selectable item in a game or picker.
type Choice struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Glyph string `yaml:"glyph"`
	Note  string `yaml:"note"`
}

// Assistive holds the canned data behind the assistive hub stubs.
type Assistive struct {
	Translations      map[string]string `yaml:"translations"`
	Transcript        string            `yaml:"transcript"`
	TranscriptEmotion string            `yaml:"transcript_emotion"`
	Caption           string            `yaml:"caption"`
	Emergency         []Choice          `yaml:"emergency"`
}

// Catalog is the full set of authored content.
type Catalog struct {
	Sets      []lesson.Set
	Quiz      []quiz.Question
	Colors    []Choice
	Shapes    []Choice
	Emotions  []Choice
	Assistive Assistive
}

type lessonsFile struct {
	Sets []lesson.Set `yaml:"sets"`
}

type quizFile struct {
	Questions []quiz.Question `yaml:"questions"`
}

type gamesFile struct {
	Colors   []Choice `yaml:"colors"`
	Shapes   []Choice `yaml:"shapes"`
	Emotions []Choice `yaml:"emotions"`
}

// Load parses and validates the embedded content.
func Load() (*Catalog, error) {
	var lf lessonsFile
	if err := decode("data/lessons.yaml", &lf); err != nil {
		return nil, err
	}
	var qf quizFile
	if err := decode("data/quiz.yaml", &qf); err != nil {
		return nil, err
	}
	var gf gamesFile
	if err := decode("data/games.yaml", &gf); err != nil {
		return nil, err
	}
	var af Assistive
	if err := decode("data/assistive.yaml", &af); err != nil {
		return nil, err
	}

	c := &Catalog{
		Sets:      append(lf.Sets, Alphabet()),
		Quiz:      qf.Questions,
		Colors:    gf.Colors,
		Shapes:    gf.Shapes,
		Emotions:  gf.Emotions,
		Assistive: af,
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	return c, nil
}

func decode(name string, v any) error {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Alphabet returns the A-Z lesson set used by the alphabet game.
func Alphabet() lesson.Set {
	items := make([]lesson.Item, 0, 26)
	for r := 'A'; r <= 'Z'; r++ {
		l := string(r)
		items = append(items, lesson.Item{
			ID:      "alphabet-" + l,
			Label:   l,
			Content: "Letter " + l,
		})
	}
	return lesson.Set{ID: SetAlphabet, Title: "Alphabet Learning", Items: items}
}

// Validate checks every structural invariant of the catalog.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, s := range c.Sets {
		if s.ID == "" {
			return &engine.InvalidArgumentError{Name: "lesson set", Reason: "missing id"}
		}
		if seen[s.ID] {
			return &engine.InvalidArgumentError{Name: "lesson set", Reason: fmt.Sprintf("duplicate id %q", s.ID)}
		}
		seen[s.ID] = true
		if s.Len() == 0 {
			return &engine.InvalidArgumentError{Name: "lesson set " + s.ID, Reason: "has no items"}
		}
	}

	if len(c.Quiz) == 0 {
		return &engine.InvalidArgumentError{Name: "quiz", Reason: "has no questions"}
	}
	for i, q := range c.Quiz {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("quiz question %d: %w", i, err)
		}
	}

	domains := []struct {
		name    string
		choices []Choice
	}{
		{"colors", c.Colors},
		{"shapes", c.Shapes},
		{"emotions", c.Emotions},
		{"emergency", c.Assistive.Emergency},
	}
	for _, d := range domains {
		if len(d.choices) == 0 {
			return &engine.EmptyDomainError{Domain: d.name}
		}
	}
	return nil
}

// Set returns the lesson set with the given ID.
func (c *Catalog) Set(id string) (lesson.Set, bool) {
	for _, s := range c.Sets {
		if s.ID == id {
			return s, true
		}
	}
	return lesson.Set{}, false
}

// IDs returns the IDs of choices, preserving order.
func IDs(choices []Choice) []string {
	ids := make([]string, len(choices))
	for i, ch := range choices {
		ids[i] = ch.ID
	}
	return ids
}

// Find returns the choice with the given ID.
func Find(choices []Choice, id string) (Choice, bool) {
	for _, ch := range choices {
		if ch.ID == id {
			return ch, true
		}
	}
	return Choice{}, false
}

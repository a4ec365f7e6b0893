package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sahaay/internal/quiz"
	"github.com/abhisek/sahaay/internal/router"
)

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{Prompt: "What is the sign for A?", Options: []string{"Fist", "Wave"}, Correct: 0},
		{Prompt: "How many dots in a braille cell?", Options: []string{"4", "6"}, Correct: 1},
	}
}

func testSummary() quiz.Summary {
	return quiz.Summary{
		Score:   1,
		Total:   2,
		Percent: 50,
		Answers: []quiz.AnswerRecord{
			{QuestionIndex: 0, Selected: 0, Correct: true},
			{QuestionIndex: 1, Selected: 0, Correct: false},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), testQuestions(), 1)
	if s.Title() != "Quiz Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), testQuestions(), 1)
	view := s.View(80, 24)
	if !strings.Contains(view, "Score: 1 / 2") {
		t.Error("expected score line in summary view")
	}
	if !strings.Contains(view, "How many dots in a braille cell?") {
		t.Error("expected question prompts in summary view")
	}
}

func TestSummaryScreen_MissingQuestions(t *testing.T) {
	s := New(testSummary(), nil, 0)
	if !strings.Contains(s.View(80, 24), "Question 2") {
		t.Error("expected numbered fallback when prompts are unknown")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), testQuestions(), 1)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), testQuestions(), 1)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), testQuestions(), 1)
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}

func TestHeadline(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{100, "Perfect score!"},
		{60, "Quiz complete. Well done!"},
		{0, "Quiz complete. Keep practising!"},
	}
	for _, tt := range tests {
		if got := Headline(tt.percent); got != tt.want {
			t.Errorf("Headline(%d) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

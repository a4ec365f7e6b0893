package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahaay/internal/quiz"
	"github.com/abhisek/sahaay/internal/router"
	"github.com/abhisek/sahaay/internal/screen"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/layout"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// SummaryScreen displays the result of a completed quiz.
type SummaryScreen struct {
	summary   quiz.Summary
	questions []quiz.Question
	best      int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. questions supplies the prompts for the
// per-question breakdown; best is the session best score.
func New(summary quiz.Summary, questions []quiz.Question, best int) *SummaryScreen {
	return &SummaryScreen{summary: summary, questions: questions, best: best}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// Headline is the encouragement line for a percentage.
func Headline(percent int) string {
	switch {
	case percent == 100:
		return "Perfect score!"
	case percent >= 60:
		return "Quiz complete. Well done!"
	default:
		return "Quiz complete. Keep practising!"
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(Headline(sum.Percent)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d / %d        Percent: %d%%        Best: %d",
		sum.Score, sum.Total, sum.Percent, s.best)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	bar := components.NewProgressBar("", float64(sum.Percent)/100, true, barWidth)
	bar.Fill = theme.Success
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", barWidth))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answers")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, a := range sum.Answers {
		prompt := fmt.Sprintf("Question %d", a.QuestionIndex+1)
		chosen := ""
		if a.QuestionIndex < len(s.questions) {
			q := s.questions[a.QuestionIndex]
			prompt = q.Prompt
			if a.Selected >= 0 && a.Selected < len(q.Options) {
				chosen = q.Options[a.Selected]
			}
		}

		mark, style := "✓", lipgloss.NewStyle().Foreground(theme.Success)
		if !a.Correct {
			mark, style = "✗", lipgloss.NewStyle().Foreground(theme.Error)
		}
		line := fmt.Sprintf("%s  %s  %s", mark, prompt, chosen)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Press Enter to go back")))

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

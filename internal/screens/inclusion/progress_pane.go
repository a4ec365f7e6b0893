package inclusion

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/sahaay/internal/dashboard"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// progressPane renders the learner's own progress. The snapshot is rebuilt
// whenever the tab is opened.
type progressPane struct {
	agg  *dashboard.Aggregator
	snap dashboard.Snapshot
}

func (p *progressPane) refresh() {
	snap, err := p.agg.Snapshot(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("progress snapshot")
		return
	}
	p.snap = snap
}

func (p *progressPane) view(width int) string {
	cw := components.ContentWidth(width)
	s := p.snap

	sections := []string{theme.Title.Width(cw).Render("My Learning Progress")}

	for _, l := range s.Lessons {
		bar := components.NewProgressBar(l.Title, float64(l.Percent)/100, true, cw)
		bar.Fill = theme.Inclusion
		line := theme.Hint.Render(fmt.Sprintf("%d of %d lessons viewed", l.Visited, l.Total))
		sections = append(sections, bar.View()+"\n"+line)
	}

	if s.Quiz.Tracked {
		quizText := "No quiz completed yet"
		if s.Quiz.HasBest {
			quizText = fmt.Sprintf("Best Score: %d / %d  (%d%%)", s.Quiz.Best, s.Quiz.Total, s.Quiz.Percent)
		}
		if s.Quiz.Attempts > 0 {
			quizText += fmt.Sprintf("   Attempts: %d", s.Quiz.Attempts)
		}
		sections = append(sections, components.ArcadeCard(
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("Quiz")+"\n"+quizText, cw))
	}

	sections = append(sections, renderAchievements(s.Achievements))
	return strings.Join(sections, "\n\n")
}

func renderAchievements(list []dashboard.Achievement) string {
	parts := make([]string, 0, len(list))
	for _, a := range list {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		glyph := "·"
		if a.Earned {
			style = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
			glyph = a.Glyph
		}
		parts = append(parts, style.Render(glyph+" "+a.Title))
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Achievements") +
		"\n" + strings.Join(parts, "    ")
}

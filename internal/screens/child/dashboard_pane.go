package child

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/sahaay/internal/dashboard"
	"github.com/abhisek/sahaay/internal/store"
	"github.com/abhisek/sahaay/internal/ui/components"
	"github.com/abhisek/sahaay/internal/ui/theme"
)

// dashboardPane is the parent view over the child module.
type dashboardPane struct {
	agg  *dashboard.Aggregator
	snap dashboard.Snapshot
}

func (p *dashboardPane) refresh() {
	snap, err := p.agg.Snapshot(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("parent dashboard snapshot")
		return
	}
	p.snap = snap
}

func stat(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(value)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d / time.Minute)
	s := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%dm %02ds", m, s)
}

func (p *dashboardPane) view(width int) string {
	cw := components.ContentWidth(width)
	s := p.snap

	cell := lipgloss.NewStyle().Width(cw / 4).Align(lipgloss.Center)
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		cell.Render(stat("Daily Progress", fmt.Sprintf("%d%%", s.DailyProgress))),
		cell.Render(stat("Speech Score", fmt.Sprintf("%d", s.SpeechScore))),
		cell.Render(stat("Attention", fmt.Sprintf("%d", s.AttentionScore))),
		cell.Render(stat("Activity Time", formatDuration(s.ActivityTime))),
	)

	sections := []string{
		theme.Title.Width(cw).Render("Parent Dashboard"),
		stats,
	}

	var games []string
	for _, g := range s.Games {
		games = append(games, fmt.Sprintf("%s: %d", g.Name, g.Score))
	}
	if s.FocusRuns > 0 {
		games = append(games, fmt.Sprintf("Focus runs: %d", s.FocusRuns))
	}
	if len(games) > 0 {
		sections = append(sections, theme.Body.Render(strings.Join(games, "    ")))
	}

	sections = append(sections, renderEmotionTrend(s.Emotions, cw))
	sections = append(sections, renderRecent(s.Recent))
	return strings.Join(sections, "\n\n")
}

func renderEmotionTrend(shares []dashboard.EmotionShare, width int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Emotion Trends")
	if len(shares) == 0 {
		return heading + "\n" + theme.Hint.Render("No emotion readings yet")
	}
	lines := []string{heading}
	for _, e := range shares {
		bar := components.NewProgressBar(fmt.Sprintf("%-9s", e.Label), float64(e.Percent)/100, true, width)
		if c, ok := theme.Emotions[e.Label]; ok {
			bar.Fill = c
		}
		lines = append(lines, bar.View())
	}
	return strings.Join(lines, "\n")
}

func renderRecent(recent []store.Activity) string {
	heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Recent Activity")
	if len(recent) == 0 {
		return heading + "\n" + theme.Hint.Render("Nothing yet")
	}
	lines := []string{heading}
	for _, a := range recent {
		line := a.Timestamp.Format("15:04:05") + "  " + strings.ReplaceAll(a.Action, "_", " ")
		if a.Detail != "" {
			line += "  " + a.Detail
		}
		lines = append(lines, theme.Hint.Render(line))
	}
	return strings.Join(lines, "\n")
}

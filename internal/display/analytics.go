package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gabe/ecopatrol/internal/models"
	"github.com/gabe/ecopatrol/internal/stats"
	"github.com/gabe/ecopatrol/internal/trend"
)

const barWidth = 20

// RenderSummary renders the header counters
func RenderSummary(sum stats.Summary, opts Options) string {
	cards := []string{
		summaryCard("Total", sum.Total, headerStyle, opts),
		summaryCard("New", sum.New, errorStyle, opts),
		summaryCard("In progress", sum.InProgress, warningStyle, opts),
		summaryCard("Resolved", sum.Resolved, successStyle, opts),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func summaryCard(label string, n int, style lipgloss.Style, opts Options) string {
	body := opts.render(style.Bold(true), fmt.Sprintf("%d", n)) + "\n" + opts.render(mutedStyle, label)
	return opts.frame(cardStyle, body)
}

// RenderAnalytics renders category cards and the status and priority
// breakdowns
func RenderAnalytics(s stats.Stats, opts Options) string {
	var sb strings.Builder

	cards := make([]string, 0, models.NumCategories)
	for _, c := range models.Categories {
		b := s.Category(c)
		body := fmt.Sprintf("%s\n%s\n%s",
			opts.render(categoryStyle(c), c.Label()),
			opts.render(valueStyle.Bold(true), fmt.Sprintf("%d", b.Count)),
			opts.render(mutedStyle, fmt.Sprintf("%d%% of total", b.Percent)))
		cards = append(cards, opts.frame(cardStyle, body))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	sb.WriteString("\n\n")

	sb.WriteString(opts.render(sectionStyle, "Status"))
	sb.WriteString("\n")
	for _, st := range models.Statuses {
		sb.WriteString(bucketLine(st.Label(), s.Status(st), statusStyle(st), opts))
	}
	sb.WriteString("\n")

	sb.WriteString(opts.render(sectionStyle, "Priority"))
	sb.WriteString("\n")
	for _, p := range models.Priorities {
		sb.WriteString(bucketLine(p.Label(), s.Priority(p), priorityStyle(p), opts))
	}

	return sb.String()
}

func bucketLine(label string, b stats.Bucket, style lipgloss.Style, opts Options) string {
	return fmt.Sprintf("  %-12s %s %3d (%d%%)\n",
		label, opts.render(style, bar(b.Percent, barWidth)), b.Count, b.Percent)
}

// bar draws a percent as a fixed-width progress bar
func bar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderTrend renders the weekly activity chart as horizontal bars
func RenderTrend(w trend.Week, opts Options) string {
	var sb strings.Builder
	sb.WriteString(opts.render(sectionStyle, "This week"))
	sb.WriteString("\n")
	for _, b := range w {
		sb.WriteString(fmt.Sprintf("  %s %s %d\n",
			b.Day, opts.render(successStyle, bar(int(b.Height), barWidth)), b.Value))
	}
	return sb.String()
}

package display

import (
	"fmt"
	"strings"

	"github.com/gabe/ecopatrol/internal/filter"
	"github.com/gabe/ecopatrol/internal/models"
)

// EmptyTasksMessage is shown when a filter matches nothing
const EmptyTasksMessage = "No tasks found"

// RenderTasks renders one card per report under a filter header
func RenderTasks(reports []models.EnvironmentalReport, c filter.Criteria, opts Options) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s  %s %s  %s %s  %s\n",
		opts.render(sectionStyle, "Tasks"),
		opts.render(mutedStyle, "type:"), c.CategoryLabel(),
		opts.render(mutedStyle, "status:"), c.StatusLabel(),
		opts.render(mutedStyle, fmt.Sprintf("(%d)", len(reports)))))

	if len(reports) == 0 {
		sb.WriteString("\n  ")
		sb.WriteString(opts.render(mutedStyle, EmptyTasksMessage))
		sb.WriteString("\n")
		return sb.String()
	}

	for i := range reports {
		sb.WriteString(renderTask(&reports[i], opts))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderTask(r *models.EnvironmentalReport, opts Options) string {
	title := truncate(r.Title, 50)
	head := fmt.Sprintf("%s %s  %s",
		opts.render(categoryStyle(r.Category), string(CategoryGlyph(r.Category))),
		opts.render(valueStyle.Bold(true), title),
		opts.render(priorityStyle(r.Priority), "["+string(r.Priority)+"]"))

	meta := []string{r.Category.Label(), r.SubmittedDate}
	if r.ReporterName != "" {
		meta = append(meta, r.ReporterName)
	}
	if r.Address != "" {
		meta = append(meta, r.Address)
	}

	body := fmt.Sprintf("%s\n%s\n%s  %s",
		head,
		opts.render(mutedStyle, truncate(r.Description, 70)),
		opts.render(mutedStyle, strings.Join(meta, " · ")),
		opts.render(statusStyle(r.Status), r.Status.Label()))
	return opts.frame(cardStyle, body)
}

// RenderRecent renders the short "latest reports" list
func RenderRecent(reports []models.EnvironmentalReport, opts Options) string {
	var sb strings.Builder
	sb.WriteString(opts.render(sectionStyle, "Latest reports"))
	sb.WriteString("\n")
	if len(reports) == 0 {
		sb.WriteString(opts.render(mutedStyle, "  No reports yet"))
		sb.WriteString("\n")
		return sb.String()
	}
	for _, r := range reports {
		sb.WriteString(fmt.Sprintf("  %s %s\n    %s\n",
			opts.render(valueStyle, truncate(r.Title, 30)),
			opts.render(priorityStyle(r.Priority), string(r.Priority)),
			opts.render(mutedStyle, r.SubmittedDate)))
	}
	return sb.String()
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

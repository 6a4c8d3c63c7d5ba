package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gabe/ecopatrol/internal/models"
)

// Options configures rendering
type Options struct {
	ColorEnabled bool
}

// DefaultOptions returns default rendering options
func DefaultOptions() Options {
	return Options{ColorEnabled: true}
}

var (
	airColor   = lipgloss.Color("#7fd88f")
	waterColor = lipgloss.Color("#5c9cf5")
	wasteColor = lipgloss.Color("#f5a742")
	noiseColor = lipgloss.Color("#e06c75")

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D4FF"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EEEEEE"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EEEEEE"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E22E"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD971F"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F92672"))

	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3c3c3c"))

	mapStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#484848"))
)

func (o Options) render(style lipgloss.Style, s string) string {
	if !o.ColorEnabled {
		return s
	}
	return style.Render(s)
}

// frame renders a bordered box, dropping the border colour when colour is off
func (o Options) frame(style lipgloss.Style, s string) string {
	if !o.ColorEnabled {
		style = style.UnsetBorderForeground()
	}
	return style.Render(s)
}

func categoryColor(c models.Category) lipgloss.Color {
	switch c {
	case models.CategoryAir:
		return airColor
	case models.CategoryWater:
		return waterColor
	case models.CategoryWaste:
		return wasteColor
	default:
		return noiseColor
	}
}

func categoryStyle(c models.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(categoryColor(c)).Bold(true)
}

// CategoryGlyph is the map pin for a category
func CategoryGlyph(c models.Category) rune {
	switch c {
	case models.CategoryAir:
		return 'A'
	case models.CategoryWater:
		return 'W'
	case models.CategoryWaste:
		return 'T'
	case models.CategoryNoise:
		return 'N'
	}
	return '?'
}

func statusStyle(s models.Status) lipgloss.Style {
	switch s {
	case models.StatusNew:
		return errorStyle
	case models.StatusInProgress:
		return warningStyle
	case models.StatusResolved:
		return successStyle
	}
	return valueStyle
}

func priorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityCritical:
		return errorStyle.Bold(true)
	case models.PriorityHigh:
		return warningStyle
	case models.PriorityMedium:
		return valueStyle
	}
	return mutedStyle
}

package display

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gabe/ecopatrol/internal/filter"
	"github.com/gabe/ecopatrol/internal/layout"
	"github.com/gabe/ecopatrol/internal/models"
	"github.com/gabe/ecopatrol/internal/stats"
	"github.com/gabe/ecopatrol/internal/trend"
)

var plain = Options{ColorEnabled: false}

func reports() []models.EnvironmentalReport {
	return []models.EnvironmentalReport{
		{ID: "1", Category: models.CategoryAir, Title: "Factory emissions", Description: "Smell", Status: models.StatusNew, Priority: models.PriorityHigh, SubmittedDate: "2024-11-24", ReporterName: "P. Ivanov", Latitude: 55.75, Longitude: 37.61},
		{ID: "2", Category: models.CategoryWater, Title: "River contamination", Description: "Oil", Status: models.StatusInProgress, Priority: models.PriorityCritical, SubmittedDate: "2024-11-23", Latitude: 55.74, Longitude: 37.62},
		{ID: "3", Category: models.CategoryNoise, Title: "Night works", Description: "Loud", Status: models.StatusResolved, Priority: models.PriorityLow, SubmittedDate: "2024-11-22", Latitude: 55.76, Longitude: 37.60},
	}
}

func TestRenderMapPlacesEveryPin(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderMap(layout.AssignPositions(reports()), 40, 10, plain)
	for _, glyph := range []string{"A", "W", "N"} {
		if strings.Count(out, glyph) != 1 {
			t.Errorf("expected exactly one %q pin, got map:\n%s", glyph, out)
		}
	}
}

func TestRenderMapResolvesCollisions(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	// Every placement projects to the same cell
	var placements []layout.Placement
	for i := 0; i < 5; i++ {
		placements = append(placements, layout.Placement{
			Report:   models.EnvironmentalReport{Category: models.CategoryWaste},
			Position: layout.Position{TopPercent: 50, LeftPercent: 50},
		})
	}

	out := RenderMap(placements, 10, 4, plain)
	if got := strings.Count(out, "T"); got != 5 {
		t.Fatalf("expected 5 pins after collision shifting, got %d:\n%s", got, out)
	}
}

func TestRenderMapDropsOverflow(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	placements := layout.AssignPositions(make([]models.EnvironmentalReport, 10))
	for i := range placements {
		placements[i].Report.Category = models.CategoryAir
	}
	out := RenderMap(placements, 2, 2, plain)
	if got := strings.Count(out, "A"); got != 4 {
		t.Fatalf("expected grid to hold 4 pins, got %d", got)
	}
}

func TestRenderTasksEmptyState(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderTasks(nil, filter.Criteria{Category: models.CategoryAir}, plain)
	if !strings.Contains(out, EmptyTasksMessage) {
		t.Fatalf("expected empty state, got:\n%s", out)
	}
	if !strings.Contains(out, "Air") || !strings.Contains(out, "All statuses") {
		t.Fatalf("expected filter labels in header, got:\n%s", out)
	}
}

func TestRenderTasksShowsReports(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderTasks(reports(), filter.Criteria{}, plain)
	for _, want := range []string{"Factory emissions", "River contamination", "P. Ivanov", "In progress", "(3)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in tasks output:\n%s", want, out)
		}
	}
}

func TestRenderAnalytics(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderAnalytics(stats.Aggregate(reports()), plain)
	for _, want := range []string{"33% of total", "Status", "Priority", "Critical", "(0%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in analytics output:\n%s", want, out)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderSummary(stats.Aggregate(reports()).Summary(), plain)
	for _, want := range []string{"Total", "3", "Resolved"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in summary:\n%s", want, out)
		}
	}
}

func TestRenderLegendAndExtent(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	legend := RenderLegend(plain)
	for _, c := range models.Categories {
		if !strings.Contains(legend, c.Description()) {
			t.Errorf("legend missing %s", c.Description())
		}
	}

	if got := RenderExtent(nil, plain); !strings.Contains(got, "no reports") {
		t.Errorf("unexpected empty extent caption: %s", got)
	}
	if got := RenderExtent(reports(), plain); !strings.Contains(got, "55.7400..55.7600") {
		t.Errorf("unexpected extent caption: %s", got)
	}
}

func TestRenderTrend(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderTrend(trend.Weekly(trend.NewSource(1)), plain)
	for _, day := range trend.Days {
		if !strings.Contains(out, day) {
			t.Errorf("trend missing %s", day)
		}
	}
}

func TestBar(t *testing.T) {
	if got := bar(50, 10); got != "█████░░░░░" {
		t.Errorf("unexpected bar %q", got)
	}
	if got := bar(150, 4); got != "████" {
		t.Errorf("expected clamp to full, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected unchanged, got %q", got)
	}
	if got := truncate("a very long title indeed", 10); got != "a very ..." {
		t.Errorf("unexpected truncation %q", got)
	}
}

func TestPlainOptionsEmitNoEscapes(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	placements := layout.AssignPositions(reports())
	outputs := map[string]string{
		"tasks": RenderTasks(reports(), filter.Criteria{}, plain),
		"map":   RenderMap(placements, 40, 10, plain),
	}
	for name, out := range outputs {
		if strings.Contains(out, "\x1b[") {
			t.Errorf("%s: expected no escape sequences with colour disabled:\n%q", name, out)
		}
	}

	colored := RenderTasks(reports(), filter.Criteria{}, DefaultOptions())
	if !strings.Contains(colored, "\x1b[") {
		t.Error("expected escape sequences with colour enabled")
	}
}

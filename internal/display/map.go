package display

import (
	"fmt"
	"strings"

	"github.com/gabe/ecopatrol/internal/layout"
	"github.com/gabe/ecopatrol/internal/models"
)

type mapCell struct {
	glyph    rune
	category models.Category
	occupied bool
}

// RenderMap draws one pin per placement on a width x height grid. A pin that
// lands on an occupied cell moves to the next free cell to its right,
// wrapping to the following row; pins that find no free cell are dropped.
func RenderMap(placements []layout.Placement, width, height int, opts Options) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	grid := make([][]mapCell, height)
	for i := range grid {
		grid[i] = make([]mapCell, width)
	}

	for _, p := range placements {
		col, row := layout.Project(p.Position, width, height)
		placePin(grid, col, row, p.Report.Category)
	}

	lines := make([]string, height)
	for r, cells := range grid {
		var sb strings.Builder
		for _, cell := range cells {
			if !cell.occupied {
				sb.WriteString(opts.render(mutedStyle, "·"))
				continue
			}
			sb.WriteString(opts.render(categoryStyle(cell.category), string(cell.glyph)))
		}
		lines[r] = sb.String()
	}

	return opts.frame(mapStyle, strings.Join(lines, "\n"))
}

func placePin(grid [][]mapCell, col, row int, c models.Category) bool {
	height := len(grid)
	width := len(grid[0])
	start := row*width + col
	for n := 0; n < width*height; n++ {
		idx := (start + n) % (width * height)
		cell := &grid[idx/width][idx%width]
		if cell.occupied {
			continue
		}
		*cell = mapCell{glyph: CategoryGlyph(c), category: c, occupied: true}
		return true
	}
	return false
}

// RenderLegend lists the pin glyph and meaning of each category
func RenderLegend(opts Options) string {
	var sb strings.Builder
	sb.WriteString(opts.render(sectionStyle, "Legend"))
	sb.WriteString("\n")
	for _, c := range models.Categories {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			opts.render(categoryStyle(c), string(CategoryGlyph(c))),
			c.Description()))
	}
	return sb.String()
}

// RenderExtent renders the caption under the map. Pins are spread for
// readability, so the caption is the only place real coordinates appear.
func RenderExtent(reports []models.EnvironmentalReport, opts Options) string {
	b, ok := layout.Extent(reports)
	if !ok {
		return opts.render(mutedStyle, "City map (no reports)")
	}
	return opts.render(mutedStyle, fmt.Sprintf("City map  lat %.4f..%.4f  lng %.4f..%.4f  (approximate pin placement)",
		b.Min.Lat(), b.Max.Lat(), b.Min.Lon(), b.Max.Lon()))
}

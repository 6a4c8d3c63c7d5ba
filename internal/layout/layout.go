// Package layout places report markers on the dashboard map.
//
// Placement is an approximate, deterministic spread derived from each
// report's position in the collection. It is not a geographic projection:
// latitude and longitude do not influence where a pin lands, and neighbouring
// pins need not be geographically close.
package layout

import (
	"github.com/paulmach/orb"

	"github.com/gabe/ecopatrol/internal/models"
)

const (
	topOffset  = 15
	topStep    = 18
	topSpan    = 70
	leftOffset = 10
	leftStep   = 22
	leftSpan   = 75
)

// Position is a marker location as percentages of the map area
type Position struct {
	TopPercent  int `json:"top_percent"`
	LeftPercent int `json:"left_percent"`
}

// Placement pairs a report with its marker position
type Placement struct {
	Report   models.EnvironmentalReport `json:"report"`
	Position Position                   `json:"position"`
}

// PositionAt returns the position for the report at index i
func PositionAt(i int) Position {
	return Position{
		TopPercent:  topOffset + (i*topStep)%topSpan,
		LeftPercent: leftOffset + (i*leftStep)%leftSpan,
	}
}

// AssignPositions places every report by its zero-based index.
// The same input sequence always yields the same positions.
func AssignPositions(reports []models.EnvironmentalReport) []Placement {
	out := make([]Placement, len(reports))
	for i, r := range reports {
		out[i] = Placement{Report: r, Position: PositionAt(i)}
	}
	return out
}

// Project scales a position onto a width x height character grid
func Project(p Position, width, height int) (col, row int) {
	col = p.LeftPercent * width / 100
	row = p.TopPercent * height / 100
	if col >= width {
		col = width - 1
	}
	if row >= height {
		row = height - 1
	}
	return col, row
}

// Extent returns the bounding box of the reports' coordinates. It is only
// used as a map caption. ok is false for an empty collection.
func Extent(reports []models.EnvironmentalReport) (b orb.Bound, ok bool) {
	if len(reports) == 0 {
		return orb.Bound{}, false
	}
	mp := make(orb.MultiPoint, len(reports))
	for i, r := range reports {
		mp[i] = orb.Point{r.Longitude, r.Latitude}
	}
	return mp.Bound(), true
}

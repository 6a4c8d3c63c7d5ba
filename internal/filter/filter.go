// Package filter selects reports by category and status.
package filter

import (
	"errors"
	"fmt"

	"github.com/gabe/ecopatrol/internal/models"
)

// All is the criterion value that matches every report
const All = "all"

// ErrUnknownCriterion is returned for filter values that are neither All
// nor a known enum value
var ErrUnknownCriterion = errors.New("unknown filter value")

// Criteria is a conjunction of equality predicates. An empty field matches
// every report.
type Criteria struct {
	Category models.Category
	Status   models.Status
}

// ParseCriteria builds Criteria from user input; "" and "all" mean no
// restriction on that dimension.
func ParseCriteria(category, status string) (Criteria, error) {
	var c Criteria
	if category != "" && category != All {
		c.Category = models.Category(category)
		if !c.Category.Valid() {
			return Criteria{}, fmt.Errorf("%w: category %q", ErrUnknownCriterion, category)
		}
	}
	if status != "" && status != All {
		c.Status = models.Status(status)
		if !c.Status.Valid() {
			return Criteria{}, fmt.Errorf("%w: status %q", ErrUnknownCriterion, status)
		}
	}
	return c, nil
}

// Matches reports whether r satisfies every set predicate
func (c Criteria) Matches(r *models.EnvironmentalReport) bool {
	if c.Category != "" && r.Category != c.Category {
		return false
	}
	if c.Status != "" && r.Status != c.Status {
		return false
	}
	return true
}

// Apply returns the reports matching c in their original order. The result
// is a new slice and is empty, not nil, when nothing matches.
func Apply(reports []models.EnvironmentalReport, c Criteria) []models.EnvironmentalReport {
	out := make([]models.EnvironmentalReport, 0, len(reports))
	for i := range reports {
		if c.Matches(&reports[i]) {
			out = append(out, reports[i])
		}
	}
	return out
}

// Recent returns the first n reports in insertion order
func Recent(reports []models.EnvironmentalReport, n int) []models.EnvironmentalReport {
	if n < 0 {
		n = 0
	}
	if n > len(reports) {
		n = len(reports)
	}
	out := make([]models.EnvironmentalReport, n)
	copy(out, reports[:n])
	return out
}

// CategoryLabel is the display text for a category criterion
func (c Criteria) CategoryLabel() string {
	if c.Category == "" {
		return "All types"
	}
	return c.Category.Label()
}

// StatusLabel is the display text for a status criterion
func (c Criteria) StatusLabel() string {
	if c.Status == "" {
		return "All statuses"
	}
	return c.Status.Label()
}

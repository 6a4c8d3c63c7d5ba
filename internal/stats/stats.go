// Package stats derives count and percentage summaries over a report
// collection for the category, status and priority dimensions.
package stats

import (
	"math"

	"github.com/gabe/ecopatrol/internal/models"
)

// Bucket holds the count for one enumerated value and its share of the total
type Bucket struct {
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

// Stats is a snapshot of per-dimension counts. Each array is indexed by the
// Index() of the corresponding enum value.
type Stats struct {
	Total      int
	Categories [models.NumCategories]Bucket
	Statuses   [models.NumStatuses]Bucket
	Priorities [models.NumPriorities]Bucket
}

// Summary is the header card set: total plus one counter per status
type Summary struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}

// Aggregate counts reports per category, status and priority.
// An empty collection yields zero counts and zero percentages.
func Aggregate(reports []models.EnvironmentalReport) Stats {
	var s Stats
	s.Total = len(reports)

	for _, r := range reports {
		s.Categories[r.Category.Index()].Count++
		s.Statuses[r.Status.Index()].Count++
		s.Priorities[r.Priority.Index()].Count++
	}

	for i := range s.Categories {
		s.Categories[i].Percent = percent(s.Categories[i].Count, s.Total)
	}
	for i := range s.Statuses {
		s.Statuses[i].Percent = percent(s.Statuses[i].Count, s.Total)
	}
	for i := range s.Priorities {
		s.Priorities[i].Percent = percent(s.Priorities[i].Count, s.Total)
	}

	return s
}

func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func (s Stats) Category(c models.Category) Bucket {
	return s.Categories[c.Index()]
}

func (s Stats) Status(st models.Status) Bucket {
	return s.Statuses[st.Index()]
}

func (s Stats) Priority(p models.Priority) Bucket {
	return s.Priorities[p.Index()]
}

// Summary returns the counters shown in the dashboard header
func (s Stats) Summary() Summary {
	return Summary{
		Total:      s.Total,
		New:        s.Status(models.StatusNew).Count,
		InProgress: s.Status(models.StatusInProgress).Count,
		Resolved:   s.Status(models.StatusResolved).Count,
	}
}

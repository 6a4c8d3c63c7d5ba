package stats

import (
	"encoding/json"

	"github.com/gabe/ecopatrol/internal/models"
)

type statsJSON struct {
	Total      int                        `json:"total"`
	Summary    Summary                    `json:"summary"`
	Categories map[models.Category]Bucket `json:"categories"`
	Statuses   map[models.Status]Bucket   `json:"statuses"`
	Priorities map[models.Priority]Bucket `json:"priorities"`
}

// MarshalJSON renders the arrays keyed by enum value so `eco stats --json`
// stays readable.
func (s Stats) MarshalJSON() ([]byte, error) {
	out := statsJSON{
		Total:      s.Total,
		Summary:    s.Summary(),
		Categories: make(map[models.Category]Bucket, models.NumCategories),
		Statuses:   make(map[models.Status]Bucket, models.NumStatuses),
		Priorities: make(map[models.Priority]Bucket, models.NumPriorities),
	}
	for i, c := range models.Categories {
		out.Categories[c] = s.Categories[i]
	}
	for i, st := range models.Statuses {
		out.Statuses[st] = s.Statuses[i]
	}
	for i, p := range models.Priorities {
		out.Priorities[p] = s.Priorities[i]
	}
	return json.Marshal(out)
}

package storage

import "github.com/gabe/ecopatrol/internal/models"

// City centre, used for submissions that carry no coordinates
const (
	CenterLatitude  = 55.755819
	CenterLongitude = 37.617644
)

// DemoReports is the sample data set loaded by `eco init --seed`
func DemoReports() []models.EnvironmentalReport {
	return []models.EnvironmentalReport{
		{
			ID:            "1",
			Category:      models.CategoryAir,
			Title:         "Factory emissions",
			Description:   "Strong chemical smell around the industrial zone",
			Latitude:      55.755819,
			Longitude:     37.617644,
			Status:        models.StatusNew,
			Priority:      models.PriorityHigh,
			SubmittedDate: "2024-11-24",
			ReporterName:  "P. Ivanov",
		},
		{
			ID:            "2",
			Category:      models.CategoryWater,
			Title:         "River contamination",
			Description:   "Oil slicks spotted on the water surface",
			Latitude:      55.745819,
			Longitude:     37.627644,
			Status:        models.StatusInProgress,
			Priority:      models.PriorityCritical,
			SubmittedDate: "2024-11-23",
			ReporterName:  "A. Smirnova",
		},
		{
			ID:            "3",
			Category:      models.CategoryWaste,
			Title:         "Illegal dump",
			Description:   "Large pile of construction debris in the forest park",
			Latitude:      55.765819,
			Longitude:     37.607644,
			Status:        models.StatusNew,
			Priority:      models.PriorityMedium,
			SubmittedDate: "2024-11-24",
			ReporterName:  "S. Petrov",
		},
		{
			ID:            "4",
			Category:      models.CategoryNoise,
			Title:         "Noise limit exceeded",
			Description:   "Construction work at night",
			Latitude:      55.750819,
			Longitude:     37.637644,
			Status:        models.StatusResolved,
			Priority:      models.PriorityLow,
			SubmittedDate: "2024-11-22",
			ReporterName:  "E. Kozlova",
		},
		{
			ID:            "5",
			Category:      models.CategoryAir,
			Title:         "Smoke over the neighbourhood",
			Description:   "Rubbish burning next to residential buildings",
			Latitude:      55.760819,
			Longitude:     37.617644,
			Status:        models.StatusInProgress,
			Priority:      models.PriorityHigh,
			SubmittedDate: "2024-11-23",
			ReporterName:  "D. Volkov",
		},
	}
}

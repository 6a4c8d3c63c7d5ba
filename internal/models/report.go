package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the calendar date format used for SubmittedDate
const DateLayout = "2006-01-02"

// Field length limits, in characters
const (
	MaxTitleLen       = 120
	MaxDescriptionLen = 500
	MaxAddressLen     = 200
	MaxReporterLen    = 80
)

// ErrInvalidReport is wrapped by every validation failure
var ErrInvalidReport = errors.New("invalid report")

// EnvironmentalReport is a single citizen-submitted environmental issue
type EnvironmentalReport struct {
	ID            string   `json:"id"`
	Category      Category `json:"category"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Status        Status   `json:"status"`
	Priority      Priority `json:"priority"`
	SubmittedDate string   `json:"submitted_date"`
	ReporterName  string   `json:"reporter_name,omitempty"`
	Address       string   `json:"address,omitempty"`
}

// Validate checks the report against the invariants every consumer relies on.
// Reports must pass before they are handed to stats, filter or layout.
func (r *EnvironmentalReport) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidReport)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: report %s: missing title", ErrInvalidReport, r.ID)
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("%w: report %s: missing description", ErrInvalidReport, r.ID)
	}
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"title", r.Title, MaxTitleLen},
		{"description", r.Description, MaxDescriptionLen},
		{"address", r.Address, MaxAddressLen},
		{"reporter name", r.ReporterName, MaxReporterLen},
	} {
		if n := utf8.RuneCountInString(f.value); n > f.max {
			return fmt.Errorf("%w: report %s: %s is %d characters, limit %d", ErrInvalidReport, r.ID, f.name, n, f.max)
		}
	}
	if !r.Category.Valid() {
		return fmt.Errorf("%w: report %s: unknown category %q", ErrInvalidReport, r.ID, r.Category)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: report %s: unknown status %q", ErrInvalidReport, r.ID, r.Status)
	}
	if !r.Priority.Valid() {
		return fmt.Errorf("%w: report %s: unknown priority %q", ErrInvalidReport, r.ID, r.Priority)
	}
	if _, err := time.Parse(DateLayout, r.SubmittedDate); err != nil {
		return fmt.Errorf("%w: report %s: bad submitted date %q", ErrInvalidReport, r.ID, r.SubmittedDate)
	}
	if r.Latitude < -90 || r.Latitude > 90 || r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("%w: report %s: location out of range", ErrInvalidReport, r.ID)
	}
	return nil
}

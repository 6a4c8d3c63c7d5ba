package models

import "fmt"

// Category is the environmental domain of a report
type Category string

const (
	CategoryAir   Category = "air"
	CategoryWater Category = "water"
	CategoryWaste Category = "waste"
	CategoryNoise Category = "noise"
)

// Status is the workflow stage of a report
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// Priority is the urgency classification of a report
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Closed enumerations, in display order. Index() of each value is its
// position here, so per-value tables can be fixed-size arrays.
var (
	Categories = [...]Category{CategoryAir, CategoryWater, CategoryWaste, CategoryNoise}
	Statuses   = [...]Status{StatusNew, StatusInProgress, StatusResolved}
	Priorities = [...]Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}
)

const (
	NumCategories = len(Categories)
	NumStatuses   = len(Statuses)
	NumPriorities = len(Priorities)
)

// Index returns the slot of c in Categories, or -1
func (c Category) Index() int {
	for i, v := range Categories {
		if v == c {
			return i
		}
	}
	return -1
}

func (c Category) Valid() bool {
	return c.Index() >= 0
}

func (c Category) Label() string {
	switch c {
	case CategoryAir:
		return "Air"
	case CategoryWater:
		return "Water"
	case CategoryWaste:
		return "Waste"
	case CategoryNoise:
		return "Noise"
	}
	return string(c)
}

// Description is the long legend text for c
func (c Category) Description() string {
	switch c {
	case CategoryAir:
		return "Air pollution"
	case CategoryWater:
		return "Water pollution"
	case CategoryWaste:
		return "Waste and litter"
	case CategoryNoise:
		return "Noise pollution"
	}
	return string(c)
}

// ParseCategory converts s into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidReport, s)
	}
	return c, nil
}

func (s Status) Index() int {
	for i, v := range Statuses {
		if v == s {
			return i
		}
	}
	return -1
}

func (s Status) Valid() bool {
	return s.Index() >= 0
}

func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusInProgress:
		return "In progress"
	case StatusResolved:
		return "Resolved"
	}
	return string(s)
}

// ParseStatus converts s into a Status
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidReport, s)
	}
	return st, nil
}

func (p Priority) Index() int {
	for i, v := range Priorities {
		if v == p {
			return i
		}
	}
	return -1
}

func (p Priority) Valid() bool {
	return p.Index() >= 0
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityCritical:
		return "Critical"
	}
	return string(p)
}

// ParsePriority converts s into a Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown priority %q", ErrInvalidReport, s)
	}
	return p, nil
}

package console

import (
	"strings"

	"travel_console/internal/domain"
)

// CreateForm is the "new package" form. Highlights and Includes are typed as
// comma separated text.
type CreateForm struct {
	Name          string
	Destination   string
	Duration      string
	Price         float64
	OriginalPrice float64
	Description   string
	Highlights    string
	Includes      string
	Category      string
	Featured      bool
	Route         string
	Nights        int
	Days          int
	TripType      string
}

// NewCreateForm returns the blank form the page opens with.
func NewCreateForm() CreateForm {
	return CreateForm{Category: "Adventure", TripType: domain.DefaultTripType}
}

// Input converts the form into a create payload. Submitted packages start Active.
func (f CreateForm) Input() domain.PackageInput {
	status := domain.StatusActive
	return domain.PackageInput{
		Name:          &f.Name,
		Destination:   &f.Destination,
		Duration:      &f.Duration,
		Price:         &f.Price,
		OriginalPrice: &f.OriginalPrice,
		Description:   &f.Description,
		Highlights:    splitList(f.Highlights),
		Includes:      splitList(f.Includes),
		Category:      &f.Category,
		Status:        &status,
		Featured:      &f.Featured,
		Route:         &f.Route,
		Nights:        &f.Nights,
		Days:          &f.Days,
		TripType:      &f.TripType,
	}
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

package app

import "travel_console/internal/domain"

// mapCreateInput turns a client payload into the insert row. Defaults are
// applied in a fixed order and only to the optional fields; a zero value
// counts as absent, so "" status becomes Active and 0 nights stays 0.
func mapCreateInput(in domain.PackageInput) domain.NewPackage {
	return domain.NewPackage{
		Name:          deref(in.Name),
		Destination:   deref(in.Destination),
		Duration:      deref(in.Duration),
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Description:   deref(in.Description),
		Highlights:    in.Highlights,
		Includes:      in.Includes,
		Category:      deref(in.Category),
		Status:        orString(in.Status, domain.StatusActive),
		Featured:      in.Featured != nil && *in.Featured,
		Image:         orString(in.Image, domain.DefaultImage),
		Route:         orString(in.Route, ""),
		Nights:        orInt(in.Nights, 0),
		Days:          orInt(in.Days, 0),
		TripType:      orString(in.TripType, domain.DefaultTripType),
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func orString(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func orInt(p *int, def int) int {
	if p == nil || *p == 0 {
		return def
	}
	return *p
}

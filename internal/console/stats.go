package console

import (
	"strings"

	"travel_console/internal/domain"
)

// Stats is the header summary of the Packages page, computed over the
// unfiltered list.
type Stats struct {
	Total      int            `json:"total"`
	Active     int            `json:"active"`
	Featured   int            `json:"featured"`
	ByStatus   map[string]int `json:"by_status"`
	ByCategory map[string]int `json:"by_category"`
}

func ComputeStats(pkgs []domain.Package) Stats {
	s := Stats{
		Total:      len(pkgs),
		ByStatus:   map[string]int{},
		ByCategory: map[string]int{},
	}
	for _, p := range pkgs {
		if strings.EqualFold(p.Status, domain.StatusActive) {
			s.Active++
		}
		if p.Featured {
			s.Featured++
		}
		s.ByStatus[p.Status]++
		if p.Category != "" {
			s.ByCategory[p.Category]++
		}
	}
	return s
}

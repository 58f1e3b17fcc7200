package console

import (
	"fmt"
	"strings"

	"travel_console/internal/domain"
)

// StatusFilter selects packages by status. The zero value behaves as FilterAll.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterActive   StatusFilter = "active"
	FilterInactive StatusFilter = "inactive"
	FilterDraft    StatusFilter = "draft"
)

// CategoryAll disables the category dimension.
const CategoryAll = "all"

func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive, FilterInactive, FilterDraft:
		return f, nil
	}
	return "", fmt.Errorf("unknown status filter %q (want all, active, inactive or draft)", s)
}

// FilterByStatus keeps packages whose status matches f case-insensitively.
// FilterAll returns pkgs unchanged.
func FilterByStatus(pkgs []domain.Package, f StatusFilter) []domain.Package {
	if f == "" || f == FilterAll {
		return pkgs
	}
	return keep(pkgs, func(p domain.Package) bool {
		return strings.EqualFold(p.Status, string(f))
	})
}

// FilterByCategory keeps packages whose category matches c case-insensitively.
// An empty c or CategoryAll returns pkgs unchanged.
func FilterByCategory(pkgs []domain.Package, c string) []domain.Package {
	c = strings.TrimSpace(c)
	if c == "" || strings.EqualFold(c, CategoryAll) {
		return pkgs
	}
	return keep(pkgs, func(p domain.Package) bool {
		return strings.EqualFold(p.Category, c)
	})
}

// Criteria is the filter selection of the Packages page. Each dimension holds
// a single value; choosing a new one replaces the old.
type Criteria struct {
	Status   StatusFilter
	Category string
}

func (c Criteria) Apply(pkgs []domain.Package) []domain.Package {
	return FilterByCategory(FilterByStatus(pkgs, c.Status), c.Category)
}

func keep(pkgs []domain.Package, ok func(domain.Package) bool) []domain.Package {
	out := make([]domain.Package, 0, len(pkgs))
	for _, p := range pkgs {
		if ok(p) {
			out = append(out, p)
		}
	}
	return out
}

package console

import (
	"context"
	"time"

	"travel_console/internal/domain"
)

type fakeSource struct {
	listCalls   int
	listResults [][]domain.Package
	listErrs    []error
	created     []domain.PackageInput
	createErr   error
}

func (f *fakeSource) ListPackages(ctx context.Context) ([]domain.Package, error) {
	i := f.listCalls
	f.listCalls++
	if i < len(f.listErrs) && f.listErrs[i] != nil {
		return nil, f.listErrs[i]
	}
	if i < len(f.listResults) {
		return f.listResults[i], nil
	}
	return f.listResults[len(f.listResults)-1], nil
}

func (f *fakeSource) CreatePackage(ctx context.Context, in domain.PackageInput) (domain.Package, error) {
	f.created = append(f.created, in)
	if f.createErr != nil {
		return domain.Package{}, f.createErr
	}
	return domain.Package{ID: 99, Name: *in.Name, Status: *in.Status, CreatedAt: time.Now()}, nil
}

func samplePackages() []domain.Package {
	return []domain.Package{
		{ID: 4, Name: "Japan Experience", Category: "Cultural", Status: "Draft"},
		{ID: 3, Name: "Thailand Discovery", Category: "Cultural", Status: "Active"},
		{ID: 2, Name: "European Grand Tour", Category: "Cultural", Status: "Active", Featured: true},
		{ID: 1, Name: "Bali Adventure", Category: "Adventure", Status: "Active", Featured: true},
		{ID: 5, Name: "Dubai Luxury", Category: "Luxury", Status: "inactive"},
	}
}

func ids(pkgs []domain.Package) []int64 {
	out := make([]int64, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, p.ID)
	}
	return out
}

package app_test

import (
	"context"
	"errors"

	"travel_console/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	created []domain.NewPackage
	list    []domain.Package
	listErr error
	err     error
	nextID  int64
	calls   int
}

func (f *fakeRepo) CreatePackage(ctx context.Context, p domain.NewPackage) (domain.Package, error) {
	if f.err != nil {
		return domain.Package{}, f.err
	}
	f.created = append(f.created, p)
	f.nextID++
	return domain.Package{
		ID:            f.nextID,
		Name:          p.Name,
		Destination:   p.Destination,
		Duration:      p.Duration,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Description:   p.Description,
		Highlights:    p.Highlights,
		Includes:      p.Includes,
		Category:      p.Category,
		Status:        p.Status,
		Featured:      p.Featured,
		Image:         p.Image,
		Route:         p.Route,
		Nights:        p.Nights,
		Days:          p.Days,
		TripType:      p.TripType,
	}, nil
}

func (f *fakeRepo) ListPackages(ctx context.Context) ([]domain.Package, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

type fakeCache struct {
	store map[string]any
	incrs []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.Package:
		*d = v.([]domain.Package)
	case *int64:
		*d = v.(int64)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Incr(ctx context.Context, key string) (int64, error) {
	if c.store == nil {
		c.store = map[string]any{}
	}
	n, _ := c.store[key].(int64)
	n++
	c.store[key] = n
	c.incrs = append(c.incrs, key)
	return n, nil
}

type fakeEvents struct {
	got []domain.Package
	err error
}

func (e *fakeEvents) PackageCreated(ctx context.Context, p domain.Package) error {
	e.got = append(e.got, p)
	return e.err
}

var errBoom = errors.New("boom")

func ptr[T any](v T) *T { return &v }

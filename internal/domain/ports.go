package domain

import "context"

type PackageRepository interface {
	// CreatePackage inserts p and returns the stored row with its id and created_at.
	CreatePackage(ctx context.Context, p NewPackage) (Package, error)
	// ListPackages returns every row, newest created_at first.
	ListPackages(ctx context.Context) ([]Package, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	// Incr atomically bumps the integer counter at key and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
}

type EventPublisher interface {
	PackageCreated(ctx context.Context, p Package) error
}

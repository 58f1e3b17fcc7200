package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"travel_console/internal/domain"
)

type PackageCommands struct {
	repo   domain.PackageRepository
	cache  domain.Cache
	events domain.EventPublisher
}

// NewPackageCommands wires the create path. cache and events may be nil.
func NewPackageCommands(r domain.PackageRepository, c domain.Cache, e domain.EventPublisher) *PackageCommands {
	return &PackageCommands{repo: r, cache: c, events: e}
}

// CreatePackage applies the create defaults, persists the row and returns it
// as stored. Store failures come back as *domain.StoreError.
func (s *PackageCommands) CreatePackage(ctx context.Context, in domain.PackageInput) (domain.Package, error) {
	p, err := s.repo.CreatePackage(ctx, mapCreateInput(in))
	if err != nil {
		return domain.Package{}, err
	}

	// retire the cached list generation so the next read sees the new row
	if s.cache != nil {
		if _, err := s.cache.Incr(ctx, listGenKey); err != nil {
			log.Warn().Err(err).Msg("package list cache invalidation failed")
		}
	}

	if s.events != nil {
		if err := s.events.PackageCreated(ctx, p); err != nil {
			log.Warn().Err(err).Int64("id", p.ID).Msg("package.created publish failed")
		}
	}
	return p, nil
}

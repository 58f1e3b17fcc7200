package app

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"travel_console/internal/domain"
)

// The cached list lives under packages:all:<gen>. A create bumps the
// generation, so a snapshot read before the create can only ever be written
// under a generation nobody reads again.
const (
	listKeyPrefix = "packages:all:"
	listGenKey    = "packages:gen"
)

func listKey(gen int64) string { return listKeyPrefix + strconv.FormatInt(gen, 10) }

type PackageQueries struct {
	repo     domain.PackageRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewPackageQueries(r domain.PackageRepository, c domain.Cache, ttl time.Duration) *PackageQueries {
	return &PackageQueries{repo: r, cache: c, cacheTTL: ttl}
}

// ListPackages returns the whole table, newest first. It never returns a nil
// slice on success.
func (s *PackageQueries) ListPackages(ctx context.Context) ([]domain.Package, error) {
	useCache := s.cache != nil && s.cacheTTL > 0

	// the generation must be read before the store
	var gen int64
	if useCache {
		if _, err := s.cache.Get(ctx, listGenKey, &gen); err != nil {
			log.Warn().Err(err).Msg("package list generation read failed, bypassing cache")
			useCache = false
		}
	}

	var out []domain.Package
	if useCache {
		if ok, _ := s.cache.Get(ctx, listKey(gen), &out); ok && out != nil {
			return out, nil
		}
	}

	ps, err := s.repo.ListPackages(ctx)
	if err != nil {
		return nil, err
	}

	// copy so callers can't mutate what went into the cache
	out = make([]domain.Package, len(ps))
	copy(out, ps)

	if useCache {
		if err := s.cache.Set(ctx, listKey(gen), out, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Int64("gen", gen).Msg("package list cache write failed")
		}
	}
	return out, nil
}

package main

import (
	"context"
	"flag"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"travel_console/internal/adapters/apiclient"
	"travel_console/internal/adapters/observability"
	"travel_console/internal/domain"
	"travel_console/internal/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()
	path := flag.String("file", cfg.SeedPath, "YAML fixture with the packages to create")
	workers := flag.Int("workers", cfg.SeedWorkers, "concurrent create requests")
	flag.Parse()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("base", cfg.APIBaseURL).
		Str("file", *path).
		Int("workers", *workers).
		Msg("seeder starting")

	pkgs, err := apiclient.LoadSeed(*path)
	if err != nil {
		log.Fatal().Err(err).Msg("load seed failed")
	}

	client, err := apiclient.New(cfg.APIBaseURL, cfg.ClientRPS, 3)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize API client")
	}

	failed := seed(ctx, client, pkgs, *workers)
	if failed > 0 {
		log.Fatal().Int("failed", failed).Int("total", len(pkgs)).Msg("seeding finished with failures")
	}
	log.Info().Int("total", len(pkgs)).Msg("seeding completed")
}

type creator interface {
	CreatePackage(ctx context.Context, in domain.PackageInput) (domain.Package, error)
}

// seed creates pkgs with at most workers requests in flight and returns how
// many were not created, counting those skipped after ctx was cancelled.
func seed(ctx context.Context, client creator, pkgs []domain.PackageInput, workers int) int {
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for i, in := range pkgs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			skipped := len(pkgs) - i
			failed.Add(int32(skipped))
			log.Warn().Err(err).Int("skipped", skipped).Msg("seeding interrupted")
			break
		}

		wg.Add(1)
		go func(n int, in domain.PackageInput) {
			defer wg.Done()
			defer sem.Release(1)

			p, err := client.CreatePackage(ctx, in)
			if err != nil {
				failed.Add(1)
				log.Warn().Int("n", n).Err(err).Msg("create failed")
				return
			}
			log.Info().Int64("id", p.ID).Str("name", p.Name).Msg("create ok")
		}(i, in)
	}

	wg.Wait()
	return int(failed.Load())
}

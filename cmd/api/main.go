package main

import (
	"context"
	"database/sql"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "travel_console/internal/adapters/http_server"
	"travel_console/internal/adapters/kafka"
	"travel_console/internal/adapters/observability"
	redisad "travel_console/internal/adapters/redis"
	"travel_console/internal/app"
	"travel_console/internal/domain"
	"travel_console/internal/shared"
	mysqlrepo "travel_console/internal/storage/mysql"
	"travel_console/internal/storage/postgres"
)

type store interface {
	domain.PackageRepository
	EnsureSchema(ctx context.Context) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// store
	repo, closeStore := openStore(ctx, cfg)
	defer closeStore()
	if cfg.AutoMigrate {
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("schema bootstrap failed")
		}
		log.Info().Msg("schema ok")
	}

	// optional deps; nil interfaces disable them
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, list cache disabled")
			_ = rc.Close()
		} else {
			defer rc.Close()
			cache = rc
		}
	}

	var events domain.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaPackagesTopic)
		defer p.Close()
		events = p
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaPackagesTopic).Msg("package events enabled")
	}

	q := app.NewPackageQueries(repo, cache, cfg.CacheTTL)
	c := app.NewPackageCommands(repo, cache, events)

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, C: c})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("store", cfg.StoreDriver).Msg("API listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}

// openStore connects the configured record store. The returned func releases it.
func openStore(ctx context.Context, cfg shared.Config) (store, func()) {
	switch cfg.StoreDriver {
	case shared.DriverMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("mysql connection ok")
		return mysqlrepo.New(db), func() { _ = db.Close() }
	default:
		repo, err := postgres.Open(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres connect failed")
		}
		log.Info().Msg("postgres connection ok")
		return repo, repo.Close
	}
}

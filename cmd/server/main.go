package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"mtfuji-paragliding/fujipsystem/internal/api"
	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/config"
	"mtfuji-paragliding/fujipsystem/internal/db"
	"mtfuji-paragliding/fujipsystem/internal/jobs"
	"mtfuji-paragliding/fujipsystem/internal/logging"
	"mtfuji-paragliding/fujipsystem/internal/metrics"
	"mtfuji-paragliding/fujipsystem/internal/routes"
)

const shutdownTimeout = 15 * time.Second

// @title FujipSystem API
// @version 1.0
// @description Back office for the Mt. Fuji paragliding school: contractor reports, availability, entry desk.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	if err := run(cfg); err != nil {
		logging.Error("server stopped with error", "error", err)
		_ = logging.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logging.Info("FujipSystem starting up",
		"environment", cfg.AppEnv,
		"timezone", loc.String(),
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	sqlxDB, err := db.InitPostgres(ctx, cfg.PostgresDSN())
	if err != nil {
		return err
	}
	defer sqlxDB.Close()
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM
	ormDB, err := db.InitPostgresORM(cfg.PostgresDSN())
	if err != nil {
		return err
	}
	logging.Info("Connected to Postgres (GORM)")

	if cfg.Migrate {
		if err := db.AutoMigrate(ctx, ormDB); err != nil {
			return err
		}
		logging.Info("Schema migrated")
	}

	var cache common.CacheInterface
	if cfg.RedisEnabled() {
		cache = common.NewRedisCacheService(common.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword))
	} else {
		cache = common.NewCacheService(cfg.CacheTTL(), 10*time.Minute)
		logging.Info("REDIS_HOST not set, using in-memory cache")
	}
	defer cache.Close()

	deps, err := api.InitDependencies(api.DependencyOptions{
		ORM:      ormDB,
		SQLX:     sqlxDB,
		Cache:    cache,
		CacheTTL: cfg.CacheTTL(),
		Zone:     calendar.NewZone(calendar.SystemClock, loc),
		Metrics:  metrics.Default(),
		Jobs: jobs.Options{
			Location:        loc,
			CleanupSchedule: cfg.CleanupSchedule,
			CleanupEnabled:  cfg.CleanupEnabled,
		},
		UpSince: time.Now(),
	})
	if err != nil {
		return err
	}

	router := routes.RegisterRoutes(deps, routes.Options{
		CORSOrigins:      cfg.CORSOrigins,
		LookupRatePerSec: cfg.LookupRatePerSec,
		LookupBurst:      cfg.LookupBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	deps.Jobs.Scheduler.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := deps.Jobs.Scheduler.Stop(shutdownCtx); err != nil {
			logging.Warn("cron did not stop cleanly", "error", err)
		}
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Command cleanup runs the availability retention purge once and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/config"
	"mtfuji-paragliding/fujipsystem/internal/db"
	"mtfuji-paragliding/fujipsystem/internal/db/repositories"
	"mtfuji-paragliding/fujipsystem/internal/jobs"
	"mtfuji-paragliding/fujipsystem/internal/logging"
	"mtfuji-paragliding/fujipsystem/internal/metrics"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "abort the purge after this long")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logging.Close()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ormDB, err := db.InitPostgresORM(cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	job := jobs.NewAvailabilityCleanupJob(
		repositories.NewWorkContractRepository(ormDB),
		calendar.NewZone(calendar.SystemClock, loc),
		metrics.Default(),
	)
	res, err := job.Run(ctx)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("deleted %d rows dated before %s\n", res.Deleted, calendar.FormatDate(res.Cutoff))
}

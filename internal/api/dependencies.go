package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/common"
	"mtfuji-paragliding/fujipsystem/internal/db/repositories"
	"mtfuji-paragliding/fujipsystem/internal/jobs"
	"mtfuji-paragliding/fujipsystem/internal/metrics"
	"mtfuji-paragliding/fujipsystem/internal/services"
)

type Repositories struct {
	Members     *repositories.MemberRepository
	Contracts   *repositories.ContractRepository
	Reports     *repositories.ContractReportRepository
	Work        *repositories.WorkContractRepository
	IoFlights   *repositories.IoFlightRepository
	Experiences *repositories.ExperienceRepository
}

type Services struct {
	Cache        common.CacheInterface
	Members      *services.MemberDirectory
	Contracts    *services.ContractService
	Availability *services.AvailabilityService
	IoFlights    *services.IoFlightService
	Experiences  *services.ExperienceService
}

type Jobs struct {
	Cleanup   *jobs.AvailabilityCleanupJob
	Scheduler *jobs.Scheduler
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Jobs     *Jobs
	SQLX     *sqlx.DB
	Metrics  *metrics.MetricsRegistry
	UpSince  time.Time
}

// DependencyOptions carries the connections and settings built in main.
type DependencyOptions struct {
	ORM      *gorm.DB
	SQLX     *sqlx.DB
	Cache    common.CacheInterface
	CacheTTL time.Duration
	Zone     calendar.Zone
	Metrics  *metrics.MetricsRegistry
	Jobs     jobs.Options
	UpSince  time.Time
}

func InitDependencies(opts DependencyOptions) (*Dependencies, error) {
	metricsReg := opts.Metrics
	if metricsReg == nil {
		metricsReg = metrics.Default()
	}

	repos := &Repositories{
		Members:     repositories.NewMemberRepository(opts.ORM),
		Contracts:   repositories.NewContractRepository(opts.ORM),
		Reports:     repositories.NewContractReportRepository(opts.SQLX),
		Work:        repositories.NewWorkContractRepository(opts.ORM),
		IoFlights:   repositories.NewIoFlightRepository(opts.ORM),
		Experiences: repositories.NewExperienceRepository(opts.ORM),
	}

	members := services.NewMemberDirectory(repos.Members, opts.Cache, opts.CacheTTL)

	svcs := &Services{
		Cache:        opts.Cache,
		Members:      members,
		Contracts:    services.NewContractService(members, repos.Contracts, repos.Reports, opts.Zone, metricsReg),
		Availability: services.NewAvailabilityService(members, repos.Work, opts.Zone, metricsReg),
		IoFlights:    services.NewIoFlightService(members, repos.IoFlights, opts.Zone, metricsReg),
		Experiences:  services.NewExperienceService(repos.Experiences, metricsReg),
	}

	cleanup := jobs.NewAvailabilityCleanupJob(repos.Work, opts.Zone, metricsReg)
	scheduler, err := jobs.InitializeJobs(opts.Jobs, cleanup)
	if err != nil {
		return nil, err
	}

	upSince := opts.UpSince
	if upSince.IsZero() {
		upSince = time.Now()
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Jobs:     &Jobs{Cleanup: cleanup, Scheduler: scheduler},
		SQLX:     opts.SQLX,
		Metrics:  metricsReg,
		UpSince:  upSince,
	}, nil
}

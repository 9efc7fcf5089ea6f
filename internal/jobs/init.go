package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/logging"
	"mtfuji-paragliding/fujipsystem/internal/models/dtos"
)

// runTimeout bounds a single scheduled run.
const runTimeout = 5 * time.Minute

// Options configures the scheduler.
type Options struct {
	Location        *time.Location
	CleanupSchedule string
	CleanupEnabled  bool
}

// Scheduler owns the cron runner for the background jobs.
type Scheduler struct {
	cron         *cron.Cron
	cleanup      *AvailabilityCleanupJob
	cleanupSpec  string
	cleanupEntry cron.EntryID
	enabled      bool
}

// InitializeJobs registers the jobs on a cron runner in opts.Location. The runner is
// not started; call Start.
func InitializeJobs(opts Options, cleanup *AvailabilityCleanupJob) (*Scheduler, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	logger := cronLogger{}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	s := &Scheduler{
		cron:        c,
		cleanup:     cleanup,
		cleanupSpec: opts.CleanupSchedule,
		enabled:     opts.CleanupEnabled,
	}

	if !opts.CleanupEnabled {
		logging.Info("availability cleanup schedule disabled")
		return s, nil
	}

	id, err := c.AddFunc(opts.CleanupSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		// Run logs its own failures.
		_, _ = cleanup.Run(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", opts.CleanupSchedule, err)
	}
	s.cleanupEntry = id

	logging.Info("availability cleanup scheduled",
		"schedule", opts.CleanupSchedule,
		"timezone", loc.String(),
	)
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the runner and waits for a running job to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Jobs reports the schedule and last outcome of each job.
func (s *Scheduler) Jobs() []dtos.JobInfo {
	status := s.cleanup.Status()

	info := dtos.JobInfo{
		Name:        constants.JobAvailabilityCleanup,
		Description: "Deletes availability rows older than the first day of the month two months back",
		Schedule:    s.cleanupSpec,
		Enabled:     s.enabled,
		LastError:   status.LastError,
	}
	if !status.LastRun.IsZero() {
		info.LastRun = status.LastRun.Format(time.RFC3339)
		deleted := status.LastDeleted
		info.LastDeleted = &deleted
	}
	if s.enabled {
		if next := s.cron.Entry(s.cleanupEntry).Next; !next.IsZero() {
			info.NextRun = next.Format(time.RFC3339)
		}
	}
	return []dtos.JobInfo{info}
}

// cronLogger routes the cron runner's logs through zap.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logging.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logging.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

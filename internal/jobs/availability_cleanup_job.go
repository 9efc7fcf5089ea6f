package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mtfuji-paragliding/fujipsystem/internal/calendar"
	"mtfuji-paragliding/fujipsystem/internal/constants"
	"mtfuji-paragliding/fujipsystem/internal/logging"
	"mtfuji-paragliding/fujipsystem/internal/metrics"
)

// AvailabilityPurger deletes availability rows dated before a cutoff.
type AvailabilityPurger interface {
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// CleanupResult is the outcome of one purge.
type CleanupResult struct {
	Deleted int64
	Cutoff  time.Time
}

// CleanupStatus describes the most recent run. LastRun is zero before the first run.
type CleanupStatus struct {
	LastRun     time.Time
	LastCutoff  time.Time
	LastDeleted int64
	LastError   string
}

// AvailabilityCleanupJob removes availability rows older than day 1 of the month two
// months back. Scheduled and manual runs share Run and never overlap.
type AvailabilityCleanupJob struct {
	store   AvailabilityPurger
	zone    calendar.Zone
	metrics *metrics.MetricsRegistry

	runMu    sync.Mutex
	statusMu sync.RWMutex
	status   CleanupStatus
}

func NewAvailabilityCleanupJob(store AvailabilityPurger, zone calendar.Zone, metricsReg *metrics.MetricsRegistry) *AvailabilityCleanupJob {
	return &AvailabilityCleanupJob{store: store, zone: zone, metrics: metricsReg}
}

// Run purges once. Running it again in the same month deletes nothing.
func (j *AvailabilityCleanupJob) Run(ctx context.Context) (CleanupResult, error) {
	j.runMu.Lock()
	defer j.runMu.Unlock()

	start := time.Now()
	cutoff := calendar.RetentionCutoff(j.zone.Today())
	log := logging.With("job", constants.JobAvailabilityCleanup, "cutoff", calendar.FormatDate(cutoff))

	deleted, err := j.store.DeleteBefore(ctx, cutoff)
	elapsed := time.Since(start)

	status := CleanupStatus{LastRun: j.zone.Now(), LastCutoff: cutoff, LastDeleted: deleted}
	if err != nil {
		status.LastError = err.Error()
		j.setStatus(status)
		j.metrics.JobDuration.WithLabelValues(constants.JobAvailabilityCleanup, "error").Observe(elapsed.Seconds())
		log.Errorw("availability cleanup failed", "error", err)
		return CleanupResult{Cutoff: cutoff}, fmt.Errorf("availability cleanup: %w", err)
	}

	j.setStatus(status)
	j.metrics.JobDuration.WithLabelValues(constants.JobAvailabilityCleanup, "ok").Observe(elapsed.Seconds())
	j.metrics.RetentionDeletedTotal.Add(float64(deleted))
	log.Infow("availability cleanup finished", "deleted", deleted, "duration_ms", elapsed.Milliseconds())

	return CleanupResult{Deleted: deleted, Cutoff: cutoff}, nil
}

func (j *AvailabilityCleanupJob) Status() CleanupStatus {
	j.statusMu.RLock()
	defer j.statusMu.RUnlock()
	return j.status
}

func (j *AvailabilityCleanupJob) setStatus(s CleanupStatus) {
	j.statusMu.Lock()
	j.status = s
	j.statusMu.Unlock()
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

type reconciler interface {
	ReconcileAll(ctx context.Context) (int, error)
}

// ReconcileScheduler periodically repairs collection counters that drifted
// from their word sets.
type ReconcileScheduler struct {
	scheduler *gocron.Scheduler
	svc       reconciler
	timeout   time.Duration
	log       *slog.Logger
}

// NewReconcileScheduler schedules a reconciliation every interval. The first
// run happens one interval after Start.
func NewReconcileScheduler(svc reconciler, interval time.Duration, logger *slog.Logger) (*ReconcileScheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("reconcile interval must be positive, got %s", interval)
	}

	r := &ReconcileScheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		svc:       svc,
		timeout:   interval,
		log:       logger.With("component", "reconcile"),
	}
	r.scheduler.SingletonModeAll()

	if _, err := r.scheduler.Every(interval).WaitForSchedule().Do(r.run); err != nil {
		return nil, fmt.Errorf("schedule reconcile job: %w", err)
	}
	return r, nil
}

// Start runs the scheduler in the background.
func (r *ReconcileScheduler) Start() {
	r.scheduler.StartAsync()
}

// Stop terminates the scheduler; a running job is allowed to finish.
func (r *ReconcileScheduler) Stop() {
	r.scheduler.Stop()
}

func (r *ReconcileScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	repaired, err := r.svc.ReconcileAll(ctx)
	if err != nil {
		r.log.ErrorContext(ctx, "reconciliation failed",
			slog.Int("repaired", repaired),
			slog.String("error", err.Error()),
		)
		return
	}
	r.log.InfoContext(ctx, "reconciliation done",
		slog.Int("repaired", repaired),
		slog.Duration("duration", time.Since(start)),
	)
}

package cleanup

import (
	"context"
	"log"
	"time"
)

// Purger is the black-box purge operation the scheduler triggers. The
// pgx-backed repository satisfies it.
type Purger interface {
	Purge(ctx context.Context) error
}

// Scheduler triggers the purge routine at a fixed interval for the lifetime
// of the process. A failed cycle is logged and the loop continues; there is
// no retry within a cycle.
type Scheduler struct {
	purger   Purger
	interval time.Duration
}

// NewScheduler creates a scheduler. A non-positive interval falls back to
// once per day.
func NewScheduler(purger Purger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{purger: purger, interval: interval}
}

// Run blocks until ctx is cancelled. Cancellation is cooperative: it is
// checked before each purge and while waiting between cycles, so shutdown
// never blocks for a full interval.
func (s *Scheduler) Run(ctx context.Context) {
	log.Printf("[CLEANUP] scheduler started, runs every %s", s.interval)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[CLEANUP] scheduler stopped")
			return
		default:
		}

		s.runOnce(ctx)

		select {
		case <-ctx.Done():
			log.Printf("[CLEANUP] scheduler stopped")
			return
		case <-timer.C:
			timer.Reset(s.interval)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	log.Printf("[CLEANUP] triggering cleanup routine")
	if err := s.purger.Purge(ctx); err != nil {
		log.Printf("[CLEANUP] cleanup failed: %v", err)
		return
	}
	log.Printf("[CLEANUP] cleanup completed at %s", time.Now().UTC().Format(time.RFC3339))
}

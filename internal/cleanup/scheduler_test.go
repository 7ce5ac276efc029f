package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type stubPurger struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubPurger) Purge(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubPurger) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestSchedulerStopsPromptlyDuringWait(t *testing.T) {
	purger := &stubPurger{}
	scheduler := NewScheduler(purger, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	// Let the first cycle fire, then cancel mid-sleep.
	deadline := time.After(2 * time.Second)
	for purger.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatalf("purge never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("scheduler did not stop during the inter-cycle wait")
	}

	if purger.callCount() != 1 {
		t.Fatalf("expected exactly one purge, got %d", purger.callCount())
	}
}

func TestSchedulerContinuesAfterFailedCycle(t *testing.T) {
	purger := &stubPurger{err: errors.New("purge exploded")}
	scheduler := NewScheduler(purger, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for purger.callCount() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 cycles despite failures, got %d", purger.callCount())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	<-done
}

func TestSchedulerDefaultsInterval(t *testing.T) {
	scheduler := NewScheduler(&stubPurger{}, 0)
	if scheduler.interval != 24*time.Hour {
		t.Fatalf("expected daily default, got %s", scheduler.interval)
	}
}

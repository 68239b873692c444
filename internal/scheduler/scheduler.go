// Package scheduler implements the Scheduler (C14): a single ticker that
// fires a collection cycle at a fixed interval, plus a manual TriggerNow
// that coalesces into a size-1 buffered channel so bursts of manual
// triggers collapse to one extra cycle instead of queuing.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prajwalm-hub/newsscope/internal/logging"
)

// RunFunc runs one collection cycle. The Scheduler never calls it
// concurrently with itself — a cycle already in flight absorbs any
// trigger that arrives before it finishes.
type RunFunc func(ctx context.Context) error

// Scheduler fires RunFunc on a fixed interval or on manual trigger,
// single-flight, with a grace window on shutdown for an in-flight cycle
// to finish.
type Scheduler struct {
	interval time.Duration
	grace    time.Duration
	run      RunFunc
	log      *logging.Logger

	trigger chan struct{}
	stop    chan struct{}
	done    chan struct{}

	mu      sync.Mutex
	running bool
}

// New builds a Scheduler. interval is the periodic cycle cadence; grace is
// how long Stop waits for an in-flight cycle before returning anyway.
func New(interval, grace time.Duration, run RunFunc, log *logging.Logger) *Scheduler {
	return &Scheduler{
		interval: interval,
		grace:    grace,
		run:      run,
		log:      log,
		trigger:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the ticker loop in a new goroutine and returns immediately.
func (s *Scheduler) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("scheduler started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.runCycle(ctx)
		case <-s.trigger:
			s.runCycle(ctx)
		}
	}
}

// runCycle single-flights RunFunc: if a cycle is already in progress
// (should not happen given the loop is single-goroutine, but guards
// against a future concurrent caller) it logs and skips.
func (s *Scheduler) runCycle(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.log.Warn("scheduler cycle already running, skipping")
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	cycleID := uuid.NewString()
	ctx = logging.WithCycleID(ctx, cycleID)
	cycleLog := s.log.With("cycle_id", cycleID)

	cycleLog.Info("collection cycle starting")
	if err := s.run(ctx); err != nil {
		cycleLog.Error("collection cycle failed", "error", err)
	}
}

// TriggerNow requests an out-of-band cycle. Returns false and coalesces
// into the in-flight cycle when one is already running — callers should
// treat that as "your request will be covered by the cycle already under
// way" rather than queuing a second one behind it.
func (s *Scheduler) TriggerNow() bool {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()

	select {
	case s.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

// Stop signals the loop to exit and waits up to the configured grace
// window for an in-flight cycle to finish before returning.
func (s *Scheduler) Stop() {
	close(s.stop)
	select {
	case <-s.done:
	case <-time.After(s.grace):
		s.log.Warn("scheduler stop grace window elapsed with cycle still running")
	}
}

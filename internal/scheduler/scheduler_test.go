package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prajwalm-hub/newsscope/internal/logging"
)

func TestSchedulerRunsOnTicker(t *testing.T) {
	var calls int32
	s := New(10*time.Millisecond, time.Second, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}, logging.New())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	time.Sleep(60 * time.Millisecond)
	cancel()
	s.Stop()

	if atomic.LoadInt32(&calls) == 0 {
		t.Fatalf("expected at least one tick-triggered cycle")
	}
}

func TestSchedulerTriggerNowCoalesces(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	s := New(time.Hour, time.Second, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		<-release
		return nil
	}, logging.New())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	if !s.TriggerNow() {
		t.Fatalf("expected first trigger to be accepted")
	}
	time.Sleep(10 * time.Millisecond)

	if s.TriggerNow() {
		t.Fatalf("expected second trigger while one is pending/running to not double-queue")
	}

	close(release)
	time.Sleep(20 * time.Millisecond)

	if atomic.LoadInt32(&calls) == 0 {
		t.Fatalf("expected at least one manually triggered cycle")
	}
}

func TestSchedulerStopReturnsWithinGraceWindow(t *testing.T) {
	s := New(time.Hour, 30*time.Millisecond, func(ctx context.Context) error {
		return nil
	}, logging.New())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("expected Stop to return promptly")
	}
}

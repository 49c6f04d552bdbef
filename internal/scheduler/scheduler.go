package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/atomic"
)

type JobFunc func(ctx context.Context)

// Scheduler runs at most one recurring job at a time.
// Every replaces the running job, Stop discards it.
type Scheduler struct {
	ctx context.Context
	loc *time.Location

	mu       sync.Mutex
	s        *gocron.Scheduler
	cancel   context.CancelFunc
	interval time.Duration

	// generation identifies the current job; runs of older jobs are dropped.
	generation atomic.Uint64
}

func New(ctx context.Context, loc *time.Location) *Scheduler {
	return &Scheduler{ctx: ctx, loc: loc}
}

// Every schedules fn to run each interval, starting one interval from now.
func (sch *Scheduler) Every(interval time.Duration, fn JobFunc) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	sch.mu.Lock()
	defer sch.mu.Unlock()

	old := sch.detachLocked()
	defer stopScheduler(old)

	jobCtx, cancel := context.WithCancel(sch.ctx)
	gen := sch.generation.Load()
	s := gocron.NewScheduler(sch.loc)

	_, err := s.Every(interval).WaitForSchedule().Do(func() {
		sch.run(jobCtx, gen, fn)
	})
	if err != nil {
		cancel()
		return fmt.Errorf("schedule job: %w", err)
	}

	s.StartAsync()

	sch.s = s
	sch.cancel = cancel
	sch.interval = interval
	return nil
}

// Stop discards the scheduled job. Runs that have not started yet are dropped.
func (sch *Scheduler) Stop() {
	sch.mu.Lock()
	old := sch.detachLocked()
	sch.mu.Unlock()

	stopScheduler(old)
}

// Interval returns the period of the scheduled job, or 0 when nothing is scheduled.
func (sch *Scheduler) Interval() time.Duration {
	sch.mu.Lock()
	defer sch.mu.Unlock()

	return sch.interval
}

// detachLocked invalidates the current job and hands its scheduler back for stopping.
func (sch *Scheduler) detachLocked() *gocron.Scheduler {
	sch.generation.Inc()

	if sch.cancel != nil {
		sch.cancel()
		sch.cancel = nil
	}

	old := sch.s
	sch.s = nil
	sch.interval = 0
	return old
}

func (sch *Scheduler) run(ctx context.Context, gen uint64, fn JobFunc) {
	if sch.generation.Load() != gen {
		return
	}

	select {
	case <-ctx.Done():
		return
	default:
		fn(ctx)
	}
}

func stopScheduler(s *gocron.Scheduler) {
	if s != nil {
		s.Stop()
	}
}

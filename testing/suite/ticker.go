package suite

import (
	"context"
	"fmt"
	"sync"
	"time"

	"goldkarat/internal/scheduler"
)

// ManualTicker is a scheduler driven by simulated time.
type ManualTicker struct {
	mu       sync.Mutex
	interval time.Duration
	elapsed  time.Duration
	fn       scheduler.JobFunc
	started  int
}

func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

func (m *ManualTicker) Every(interval time.Duration, fn scheduler.JobFunc) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.interval = interval
	m.elapsed = 0
	m.fn = fn
	m.started++
	return nil
}

func (m *ManualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.interval = 0
	m.elapsed = 0
	m.fn = nil
}

// Interval returns the active period, or 0 when nothing is scheduled.
func (m *ManualTicker) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.interval
}

// Started returns how many times a job was scheduled.
func (m *ManualTicker) Started() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.started
}

// Advance moves simulated time forward by d and runs the job synchronously once per elapsed period.
// It returns the number of runs.
func (m *ManualTicker) Advance(ctx context.Context, d time.Duration) int {
	var runs int

	for {
		m.mu.Lock()
		if m.fn == nil || m.elapsed+d < m.interval {
			if m.fn != nil {
				m.elapsed += d
			}
			m.mu.Unlock()
			return runs
		}

		step := m.interval - m.elapsed
		d -= step
		m.elapsed = 0
		fn := m.fn
		m.mu.Unlock()

		fn(ctx)
		runs++
	}
}

package scheduler

import (
	"context"
	"time"

	"github.com/osse101/Dreadlight_Go/internal/metrics"
)

// Ticker is anything advanced by frame time
type Ticker interface {
	Tick(ctx context.Context, dt time.Duration)
}

// TickJob advances its targets by the wall time since the previous run.
// It must run on a single-worker pool.
type TickJob struct {
	targets []Ticker
	last    time.Time
	now     func() time.Time
}

// NewTickJob creates a frame tick over targets, called in order
func NewTickJob(targets ...Ticker) *TickJob {
	return &TickJob{targets: targets, now: time.Now}
}

// Process runs one frame. The first run only records the start time.
func (j *TickJob) Process(ctx context.Context) error {
	now := j.now()
	if j.last.IsZero() {
		j.last = now
		return nil
	}
	dt := now.Sub(j.last)
	j.last = now

	start := time.Now()
	for _, t := range j.targets {
		t.Tick(ctx, dt)
	}
	metrics.TicksTotal.Inc()
	metrics.TickDuration.Observe(time.Since(start).Seconds())
	return nil
}

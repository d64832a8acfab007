package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Dreadlight_Go/internal/testing/leaktest"
	"github.com/osse101/Dreadlight_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount int
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount++
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	leaktest.VerifyNone(t)

	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{
		Done: make(chan struct{}, 10),
	}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_StopsWithPool(t *testing.T) {
	leaktest.VerifyNone(t)

	pool := worker.NewPool(1, 1)
	pool.Start()

	sched := New(pool)
	sched.Schedule(5*time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})
	pool.Stop()

	stopped := make(chan struct{})
	go func() {
		sched.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

type recordingTicker struct {
	ticks []time.Duration
}

func (r *recordingTicker) Tick(_ context.Context, dt time.Duration) {
	r.ticks = append(r.ticks, dt)
}

func TestTickJob(t *testing.T) {
	a, b := &recordingTicker{}, &recordingTicker{}
	job := NewTickJob(a, b)

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	job.now = func() time.Time { return clock }

	require.NoError(t, job.Process(context.Background()))
	assert.Empty(t, a.ticks, "first frame only starts the clock")

	clock = clock.Add(33 * time.Millisecond)
	require.NoError(t, job.Process(context.Background()))
	clock = clock.Add(17 * time.Millisecond)
	require.NoError(t, job.Process(context.Background()))

	assert.Equal(t, []time.Duration{33 * time.Millisecond, 17 * time.Millisecond}, a.ticks)
	assert.Equal(t, a.ticks, b.ticks)
}

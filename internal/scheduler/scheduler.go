package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/Dreadlight_Go/internal/logger"
	"github.com/osse101/Dreadlight_Go/internal/worker"
)

// LogMsgEnqueueFailed is logged when a scheduled job cannot be queued
const LogMsgEnqueueFailed = "Failed to enqueue scheduled job"

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		workerPool: pool,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Schedule registers a job to run at a fixed interval. A full queue
// delays the next enqueue rather than dropping it.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.workerPool.Enqueue(s.ctx, job); err != nil {
					if !errors.Is(err, context.Canceled) && !errors.Is(err, worker.ErrPoolStopped) {
						logger.Warn(LogMsgEnqueueFailed, "error", err)
					}
					return
				}
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

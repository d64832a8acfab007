package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// ErrPoolStopped is returned when work is submitted after Stop
var ErrPoolStopped = errors.New("worker pool stopped")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

type queuedJob struct {
	ctx  context.Context
	job  Job
	done chan error // nil for fire-and-forget jobs
}

// Pool represents a worker pool. A pool with a single worker runs jobs
// strictly in submission order, which is how the game loop serializes
// access to inventories.
type Pool struct {
	workers  int
	jobQueue chan queuedJob
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan queuedJob, queueSize),
		quit:     make(chan struct{}),
	}
}

// NewGameLoop creates the single-worker pool that owns game state
func NewGameLoop() *Pool {
	return NewPool(1, GameLoopQueueSize)
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	logger.Debug(LogMsgPoolStarted, "workers", p.workers)
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case q := <-p.jobQueue:
			err := p.run(q)
			if q.done != nil {
				q.done <- err
			} else if err != nil {
				logger.FromContext(q.ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// run executes a job, turning a panic into an error so the worker survives
func (p *Pool) run(q queuedJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(q.ctx).Error(LogMsgWorkerPanic, "panic", r)
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return q.job.Process(q.ctx)
}

func (p *Pool) submit(ctx context.Context, q queuedJob) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}

	select {
	case p.jobQueue <- q:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Enqueue adds a job to the queue without waiting for it to run.
// It blocks while the queue is full.
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	return p.submit(ctx, queuedJob{ctx: context.WithoutCancel(ctx), job: job})
}

// Do runs fn on a worker and waits for its result
func (p *Pool) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	done := make(chan error, 1)
	if err := p.submit(ctx, queuedJob{ctx: ctx, job: JobFunc(fn), done: done}); err != nil {
		return err
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Stop stops the workers and waits for them to finish. Queued jobs that
// have not started are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
	logger.Debug(LogMsgPoolStopped)
}

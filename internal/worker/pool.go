package worker

import (
	"context"
	"sync"
	"time"

	"github.com/vytor/pgn2json/internal/logger"
)

type Job interface {
	Run(context.Context) error
	Name() string
}

type Pool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	workers int
	queue   int
	cancel  context.CancelFunc
	log     *logger.Logger
}

func NewPool(workers, queueSize int, log *logger.Logger) *Pool {
	if workers <= 0 {
		workers = 4
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	if log == nil {
		log = logger.Default()
	}
	log = log.WithPrefix("worker-pool")
	log.Debug("creating worker pool with %d workers and queue size %d", workers, queueSize)
	return &Pool{
		jobs:    make(chan Job, queueSize),
		workers: workers,
		queue:   queueSize,
		cancel:  func() {},
		log:     log,
	}
}

// Start launches the workers. They exit when ctx is cancelled, Stop is
// called, or Close has drained the queue.
func (p *Pool) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.log.Debug("starting worker pool with %d workers", p.workers)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i+1)
	}
}

func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	workerLog := p.log.WithField("worker_id", id)

	for {
		select {
		case <-ctx.Done():
			workerLog.Debug("worker shutting down (context cancelled)")
			return
		case job, ok := <-p.jobs:
			if !ok || job == nil {
				workerLog.Debug("worker shutting down (queue closed)")
				return
			}

			jobLog := workerLog.WithField("job", job.Name())
			start := time.Now()

			// Create a context with the logger for the job
			jobCtx := logger.NewContext(ctx, jobLog)

			if err := job.Run(jobCtx); err != nil {
				jobLog.Warn("job failed after %v: %v", time.Since(start), err)
			} else {
				jobLog.Debug("job completed in %v", time.Since(start))
			}
		}
	}
}

// Close stops accepting jobs, waits for queued jobs to finish and releases
// the workers.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	p.cancel()
	p.log.Debug("worker pool drained")
}

// Stop cancels the workers without draining the queue and waits for running
// jobs to return.
func (p *Pool) Stop() {
	p.log.Debug("stopping worker pool")
	p.cancel()
	p.wg.Wait()
	p.log.Debug("worker pool stopped")
}

// Submit queues job, blocking while the queue is full.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// QueueSize returns the current number of pending jobs.
func (p *Pool) QueueSize() int {
	return len(p.jobs)
}

// Workers returns the number of workers the pool runs.
func (p *Pool) Workers() int {
	return p.workers
}

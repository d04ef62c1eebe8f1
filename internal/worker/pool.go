package worker

import (
	"context"
	"sync"
	"time"

	"github.com/Eys-55/infoman-quizzer/internal/logger"
)

type Job interface {
	Run(context.Context) error
	Name() string
}

// Queue accepts jobs for asynchronous execution. Pool implements it;
// tests substitute fakes.
type Queue interface {
	Submit(Job)
}

// Pool runs submitted jobs on a fixed set of workers. It exists so review
// bookkeeping can happen off the request path.
type Pool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	workers int
	cancel  context.CancelFunc
	log     *logger.Logger
}

func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	log := logger.Default().WithPrefix("worker-pool")
	log.Debug("creating worker pool with %d workers and queue size %d", workers, queueSize)
	return &Pool{
		jobs:    make(chan Job, queueSize),
		workers: workers,
		log:     log,
	}
}

func (p *Pool) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.log.Info("starting worker pool with %d workers", p.workers)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i+1)
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log := p.log.WithField("worker_id", id)
	log.Debug("worker started")

	for {
		select {
		case <-ctx.Done():
			log.Debug("worker shutting down (context cancelled)")
			return
		case job := <-p.jobs:
			if job == nil {
				log.Debug("worker shutting down (queue closed)")
				return
			}

			jobLog := log.WithField("job", job.Name())
			start := time.Now()
			jobCtx := logger.NewContext(ctx, jobLog)

			if err := job.Run(jobCtx); err != nil {
				jobLog.Error("job failed after %v: %v", time.Since(start), err)
			} else {
				jobLog.Debug("job completed in %v", time.Since(start))
			}
		}
	}
}

func (p *Pool) Stop() {
	p.log.Info("stopping worker pool")
	if p.cancel != nil {
		p.cancel()
	}
	close(p.jobs)
	p.wg.Wait()
	p.log.Info("worker pool stopped")
}

// Submit enqueues a job, dropping it when the queue is full so callers
// never block on bookkeeping.
func (p *Pool) Submit(job Job) {
	select {
	case p.jobs <- job:
		p.log.Debug("submitted job: %s", job.Name())
	default:
		p.log.Warn("queue full, dropping job: %s", job.Name())
	}
}

// QueueSize returns the current number of pending jobs.
func (p *Pool) QueueSize() int {
	return len(p.jobs)
}

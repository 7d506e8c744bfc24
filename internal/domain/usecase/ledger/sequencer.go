package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
)

const (
	// DefaultQueueSize is the per-user backlog before Submit blocks
	DefaultQueueSize = 100
	// DefaultIdleTimeout is how long a worker waits for work before exiting
	DefaultIdleTimeout = 30 * time.Second

	drainPollInterval = 10 * time.Millisecond
)

// TradeFunc is one unit of ledger work executed by a user's worker
type TradeFunc func(ctx context.Context) (*entity.TradeReceipt, error)

// tradeJob represents a queued ledger operation
type tradeJob struct {
	ctx    context.Context
	run    TradeFunc
	result chan tradeResult
}

// tradeResult represents the outcome of a processed job
type tradeResult struct {
	receipt *entity.TradeReceipt
	err     error
}

// userQueue is the FIFO of one user. pending counts jobs that were accepted
// by Submit and not yet finished, including ones still being sent.
type userQueue struct {
	jobs    chan *tradeJob
	pending int
}

// Sequencer executes ledger operations strictly one at a time per user.
// Operations of different users run in parallel on separate workers.
type Sequencer struct {
	logger      coreport.Logger
	queueSize   int
	idleTimeout time.Duration

	mu      sync.Mutex
	queues  map[uint64]*userQueue
	closed  bool
	done    chan struct{}
	workers sync.WaitGroup
}

// NewSequencer creates a per-user sequencer
func NewSequencer(logger coreport.Logger, queueSize int, idleTimeout time.Duration) *Sequencer {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}

	return &Sequencer{
		logger:      logger,
		queueSize:   queueSize,
		idleTimeout: idleTimeout,
		queues:      make(map[uint64]*userQueue),
		done:        make(chan struct{}),
	}
}

// Submit queues run behind earlier operations of the same user and waits for its result
func (s *Sequencer) Submit(ctx context.Context, userID uint64, run TradeFunc) (*entity.TradeReceipt, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, errs.ErrShuttingDown
	}

	queue, ok := s.queues[userID]
	if !ok {
		queue = &userQueue{jobs: make(chan *tradeJob, s.queueSize)}
		s.queues[userID] = queue
		s.workers.Add(1)
		go s.work(userID, queue)

		s.logger.Debug("Started ledger worker", map[string]any{
			"user_id": userID,
		})
	}
	queue.pending++
	s.mu.Unlock()

	job := &tradeJob{
		ctx:    ctx,
		run:    run,
		result: make(chan tradeResult, 1),
	}

	select {
	case queue.jobs <- job:
	case <-ctx.Done():
		s.mu.Lock()
		queue.pending--
		s.mu.Unlock()

		s.logger.Warn("Context canceled while enqueueing ledger operation", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	select {
	case res := <-job.result:
		return res.receipt, res.err
	case <-ctx.Done():
		s.logger.Warn("Context canceled while waiting for ledger operation", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// ActiveWorkers returns the number of users with a running worker
func (s *Sequencer) ActiveWorkers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queues)
}

// Shutdown rejects new work, finishes queued work and waits for all workers
func (s *Sequencer) Shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	s.logger.Info("Shutting down ledger sequencer", nil)
	s.workers.Wait()
	s.logger.Info("Ledger sequencer shut down", nil)
}

// work is the worker goroutine of one user
func (s *Sequencer) work(userID uint64, queue *userQueue) {
	defer s.workers.Done()

	idle := time.NewTimer(s.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case job := <-queue.jobs:
			s.execute(userID, queue, job)
			idle.Reset(s.idleTimeout)

		case <-idle.C:
			if s.retireIfIdle(userID, queue) {
				return
			}
			idle.Reset(s.idleTimeout)

		case <-s.done:
			s.drain(userID, queue)
			return
		}
	}
}

// drain runs the remaining accepted jobs after shutdown started
func (s *Sequencer) drain(userID uint64, queue *userQueue) {
	for !s.retireIfIdle(userID, queue) {
		select {
		case job := <-queue.jobs:
			s.execute(userID, queue, job)
		case <-time.After(drainPollInterval):
		}
	}
}

// retireIfIdle removes the queue when no job is pending and reports whether it did
func (s *Sequencer) retireIfIdle(userID uint64, queue *userQueue) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if queue.pending > 0 {
		return false
	}

	delete(s.queues, userID)
	s.logger.Debug("Stopped idle ledger worker", map[string]any{
		"user_id": userID,
	})
	return true
}

// execute runs a job and always delivers exactly one result
func (s *Sequencer) execute(userID uint64, queue *userQueue, job *tradeJob) {
	res := tradeResult{}

	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("Panic recovered in ledger worker", map[string]any{
				"user_id": userID,
				"panic":   fmt.Sprint(p),
			})
			res = tradeResult{err: fmt.Errorf("%w: ledger operation panicked", errs.ErrInternalServer)}
		}

		job.result <- res

		s.mu.Lock()
		queue.pending--
		s.mu.Unlock()
	}()

	if err := job.ctx.Err(); err != nil {
		res.err = err
		return
	}

	res.receipt, res.err = job.run(job.ctx)
}

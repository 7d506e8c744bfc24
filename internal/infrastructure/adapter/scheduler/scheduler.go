package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/go-co-op/gocron/v2"

	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
)

// TaskFunc is the body of a scheduled job
type TaskFunc func(ctx context.Context) error

// Scheduler runs background jobs on gocron
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    coreport.Logger
}

// New creates a stopped scheduler
func New(logger coreport.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}
	return &Scheduler{scheduler: s, logger: logger}, nil
}

// Start begins running jobs
func (s *Scheduler) Start() {
	s.scheduler.Start()
}

// Stop waits for running jobs and shuts the scheduler down
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

// JobCount returns the number of registered jobs
func (s *Scheduler) JobCount() int {
	return len(s.scheduler.Jobs())
}

// NewIntervalJob runs fn every interval. A run that is still going when the
// next one is due pushes the next run back instead of overlapping.
func (s *Scheduler) NewIntervalJob(name string, fn TaskFunc, interval time.Duration, startImmediately bool) error {
	opts := []gocron.JobOption{
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if startImmediately {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.taskWithRecover(fn, name)),
		opts...,
	)
	if err != nil {
		s.logger.Error("Scheduler creating job error", map[string]any{
			"job":   name,
			"error": err.Error(),
		})
		return err
	}
	return nil
}

func (s *Scheduler) taskWithRecover(fn TaskFunc, name string) func(ctx context.Context) {
	return func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Panic recovered in scheduler job", map[string]any{
					"job":        name,
					"panic":      fmt.Sprint(r),
					"stacktrace": string(debug.Stack()),
				})
			}
		}()

		start := time.Now()
		if err := fn(ctx); err != nil {
			s.logger.Error("job failed", map[string]any{
				"job":   name,
				"error": err.Error(),
			})
			return
		}
		s.logger.Debug("job completed", map[string]any{
			"job":         name,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}

package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is one recurring task.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

type Scheduler struct {
	interval time.Duration
	jobs     []Job
	log      *zap.Logger

	stopCh   chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func New(interval time.Duration, log *zap.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{
		interval: interval,
		jobs:     jobs,
		log:      log,
		stopCh:   make(chan struct{}),
	}
}

// Start runs every job once immediately and then on each tick.
func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("starting scheduler", zap.Duration("interval", s.interval), zap.Int("jobs", len(s.jobs)))

	s.wg.Add(1)
	go s.loop(ctx)
}

// Stop is safe to call more than once and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.log.Info("stopping scheduler")
		close(s.stopCh)
	})
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runAll(ctx)

	for {
		select {
		case <-ticker.C:
			s.runAll(ctx)
		case <-s.stopCh:
			s.log.Info("scheduler stopped")
			return
		case <-ctx.Done():
			s.log.Info("scheduler cancelled")
			return
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, job := range s.jobs {
		if err := job.Run(ctx); err != nil {
			s.log.Error("scheduled job failed", zap.String("job", job.Name()), zap.Error(err))
		}
	}
}

// Package scheduler wraps cron with explicit start/stop so periodic
// work is owned by one place and job bodies stay plain functions that
// tests can invoke directly instead of waiting on wall-clock timers.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nmfalves/sentinela/internal/pkg/logger"
)

// Scheduler owns the periodic background jobs of the service.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a stopped scheduler.
func New() *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithSeconds())}
}

// AddEvery registers fn to run on a fixed interval.
func (s *Scheduler) AddEvery(name string, interval time.Duration, fn func()) error {
	spec := fmt.Sprintf("@every %s", interval)
	_, err := s.cron.AddFunc(spec, func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Scheduled job panicked",
					logger.String("job", name),
					logger.String("panic", fmt.Sprintf("%v", r)))
			}
		}()
		fn()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}
	return nil
}

// Start begins running scheduled jobs in their own goroutines.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels the timers and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

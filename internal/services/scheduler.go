package services

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/healthindex/healthindex/internal/logger"
)

// Scheduler periodically triggers data refreshes
type Scheduler struct {
	refresh  *Refresh
	schedule string
	cron     *cron.Cron
}

// NewScheduler creates a scheduler that runs the refresh service on the given
// cron schedule (e.g. "@daily").
func NewScheduler(refresh *Refresh, schedule string) *Scheduler {
	return &Scheduler{
		refresh:  refresh,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the schedule and starts the background cron loop. The
// returned context cancellation stops the loop.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.refresh.Run(ctx); err != nil {
			logger.Errorf("Scheduled refresh failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	logger.Infof("Scheduler started with schedule %q", s.schedule)

	go func() {
		<-ctx.Done()
		logger.Info("Scheduler received shutdown signal, stopping...")
		<-s.cron.Stop().Done()
	}()

	return nil
}

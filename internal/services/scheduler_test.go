package services

import (
	"context"
	"time"
)

func (s *RefreshServiceTestSuite) TestSchedulerInvalidSchedule() {
	refresh := s.newRefresh(&fakeClient{measurements: fixtureMeasurements()})
	scheduler := NewScheduler(refresh, "not a schedule")

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	s.Require().Error(scheduler.Start(ctx))
}

func (s *RefreshServiceTestSuite) TestSchedulerRunsRefresh() {
	refresh := s.newRefresh(&fakeClient{measurements: fixtureMeasurements()})
	scheduler := NewScheduler(refresh, "@every 50ms")

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	s.Require().NoError(scheduler.Start(ctx))

	// Wait for at least one scheduled run to land.
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := s.snapshotRepo.LatestSucceeded(s.ctx); err == nil {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	s.FailNow("scheduler did not run a refresh in time")
}

package services

import (
	"bytes"
	"strings"

	"github.com/healthindex/healthindex/internal/db/models"
)

// The query tests reuse the refresh suite's database setup and run a real
// refresh first to have a dataset to query.

func (s *RefreshServiceTestSuite) newQuery() *Query {
	return NewQueryService(s.snapshotRepo, s.measurementRepo, s.scoreRepo)
}

func (s *RefreshServiceTestSuite) TestQueryNoSnapshot() {
	query := s.newQuery()

	_, err := query.LatestSnapshot(s.ctx)
	s.Require().ErrorIs(err, ErrNoSnapshot)

	_, _, err = query.LatestScores(s.ctx, nil)
	s.Require().ErrorIs(err, ErrNoSnapshot)

	_, err = query.StateScore(s.ctx, "Colorado")
	s.Require().ErrorIs(err, ErrNoSnapshot)

	var buf bytes.Buffer
	s.Require().ErrorIs(query.ExportLatest(s.ctx, &buf), ErrNoSnapshot)
}

func (s *RefreshServiceTestSuite) TestQueryLatestScores() {
	refresh := s.newRefresh(&fakeClient{measurements: fixtureMeasurements()})
	_, err := refresh.Run(s.ctx)
	s.Require().NoError(err)

	query := s.newQuery()
	snapshot, scores, err := query.LatestScores(s.ctx, &models.ListOptions{Limit: 10})
	s.Require().NoError(err)
	s.Require().Equal(models.SnapshotStatusSucceeded, snapshot.Status)
	s.Require().Len(scores, 3)
	s.Require().Equal("Colorado", scores[0].State)
}

func (s *RefreshServiceTestSuite) TestQueryStateScore() {
	refresh := s.newRefresh(&fakeClient{measurements: fixtureMeasurements()})
	_, err := refresh.Run(s.ctx)
	s.Require().NoError(err)

	query := s.newQuery()
	score, err := query.StateScore(s.ctx, "Vermont")
	s.Require().NoError(err)
	s.Require().Equal("Vermont", score.State)

	_, err = query.StateScore(s.ctx, "Atlantis")
	s.Require().Error(err)
	s.Require().NotErrorIs(err, ErrNoSnapshot)
}

func (s *RefreshServiceTestSuite) TestQueryServesLatestOnly() {
	first := s.newRefresh(&fakeClient{measurements: fixtureMeasurements()})
	_, err := first.Run(s.ctx)
	s.Require().NoError(err)

	// Second refresh with a smaller dataset supersedes the first.
	second := s.newRefresh(&fakeClient{measurements: fixtureMeasurements()[:2]})
	snapshot, err := second.Run(s.ctx)
	s.Require().NoError(err)

	query := s.newQuery()
	latest, measurements, err := query.LatestMeasurements(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Equal(snapshot.ID, latest.ID)
	s.Require().Len(measurements, 2)
}

func (s *RefreshServiceTestSuite) TestExportLatest() {
	refresh := s.newRefresh(&fakeClient{measurements: fixtureMeasurements()})
	_, err := refresh.Run(s.ctx)
	s.Require().NoError(err)

	var buf bytes.Buffer
	s.Require().NoError(s.newQuery().ExportLatest(s.ctx, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	s.Require().Len(lines, 4)
	s.Require().True(strings.HasPrefix(lines[0], "state,year,"))
	s.Require().Contains(buf.String(), "Colorado")
}

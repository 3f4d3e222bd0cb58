package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthindex/healthindex/internal/db/models"
)

func TestWriteCSV(t *testing.T) {
	measurements := []*models.Measurement{
		{State: "Alabama", Year: 2021, LifeExpectancy: 73.2},
		{State: "Orphan", Year: 2021},
	}
	scores := []*models.IndexScore{
		{State: "Alabama", LifeExpectancyNorm: 0, Score: 0.25},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, measurements, scores))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Header plus Alabama; the measurement without a score is skipped.
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Alabama,2021,73.2,"))
	assert.True(t, strings.HasSuffix(lines[1], ",0.25"))
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
}

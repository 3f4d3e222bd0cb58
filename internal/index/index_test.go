package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthindex/healthindex/internal/db/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{
			name:   "scales into unit interval",
			values: []float64{10, 20, 30},
			want:   []float64{0, 0.5, 1},
		},
		{
			name:   "degenerate range normalizes to zeros",
			values: []float64{5, 5, 5},
			want:   []float64{0, 0, 0},
		},
		{
			name:   "single value",
			values: []float64{42},
			want:   []float64{0},
		},
		{
			name:   "negative values",
			values: []float64{-10, 0, 10},
			want:   []float64{0, 0.5, 1},
		},
		{
			name:   "empty input",
			values: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.values)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestNormalizeBounds(t *testing.T) {
	values := []float64{3.7, 9.1, 0.2, 5.5, 7.7}
	got := Normalize(values)
	for i, v := range got {
		assert.GreaterOrEqual(t, v, 0.0, "index %d", i)
		assert.LessOrEqual(t, v, 1.0, "index %d", i)
	}
}

func TestComputeEmpty(t *testing.T) {
	_, err := Compute(nil)
	require.ErrorIs(t, err, ErrNoMeasurements)
}

func TestComputeWeights(t *testing.T) {
	// Two states at opposite extremes on every metric: the normalized values
	// are all 0 for one and all 1 for the other, so the better state's score
	// is exactly the sum of the weights.
	measurements := []*models.Measurement{
		{
			State:                 "Worstville",
			LifeExpectancy:        70,
			MedianHouseholdIncome: 40000,
			UnemploymentRate:      3,
			ObesityRate:           20,
			PovertyRate:           8,
			AccessToHealthcare:    60,
		},
		{
			State:                 "Bestville",
			LifeExpectancy:        82,
			MedianHouseholdIncome: 90000,
			UnemploymentRate:      9,
			ObesityRate:           38,
			PovertyRate:           18,
			AccessToHealthcare:    95,
		},
	}

	scores, err := Compute(measurements)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	weightSum := WeightLifeExpectancy + WeightMedianHouseholdIncome +
		WeightUnemploymentRate + WeightObesityRate +
		WeightPovertyRate + WeightAccessToHealthcare
	assert.InDelta(t, 1.0, weightSum, 1e-9)

	assert.Equal(t, "Worstville", scores[0].State)
	assert.InDelta(t, 0.0, scores[0].Score, 1e-9)

	assert.Equal(t, "Bestville", scores[1].State)
	assert.InDelta(t, weightSum, scores[1].Score, 1e-9)
	assert.InDelta(t, 1.0, scores[1].LifeExpectancyNorm, 1e-9)
	assert.InDelta(t, 1.0, scores[1].AccessToHealthcareNorm, 1e-9)
}

func TestComputeMixedFixture(t *testing.T) {
	measurements := []*models.Measurement{
		{State: "A", LifeExpectancy: 70, MedianHouseholdIncome: 50000, UnemploymentRate: 4, ObesityRate: 25, PovertyRate: 10, AccessToHealthcare: 80},
		{State: "B", LifeExpectancy: 80, MedianHouseholdIncome: 70000, UnemploymentRate: 6, ObesityRate: 35, PovertyRate: 14, AccessToHealthcare: 90},
		{State: "C", LifeExpectancy: 75, MedianHouseholdIncome: 60000, UnemploymentRate: 5, ObesityRate: 30, PovertyRate: 12, AccessToHealthcare: 85},
	}

	scores, err := Compute(measurements)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// C sits exactly halfway on every metric, so its score is half the weight
	// sum.
	assert.Equal(t, "C", scores[2].State)
	assert.InDelta(t, 0.5, scores[2].Score, 1e-9)
	assert.InDelta(t, 0.5, scores[2].MedianHouseholdIncomeNorm, 1e-9)

	// Snapshot ID carries through from the measurement.
	for _, sc := range scores {
		assert.Equal(t, uint(0), sc.SnapshotID)
	}
}

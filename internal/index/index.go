// Package index computes the weighted health and prosperity index from raw
// state-level measurements.
package index

import (
	"errors"

	"github.com/healthindex/healthindex/internal/db/models"
)

// Metric weights of the composite index
const (
	WeightLifeExpectancy        = 0.20
	WeightMedianHouseholdIncome = 0.20
	WeightUnemploymentRate      = 0.20
	WeightObesityRate           = 0.15
	WeightPovertyRate           = 0.05
	WeightAccessToHealthcare    = 0.20
)

// ErrNoMeasurements indicates there is nothing to compute an index from
var ErrNoMeasurements = errors.New("no measurements to compute index from")

// Normalize min-max scales a series into [0, 1]. A degenerate series where
// every value is equal normalizes to all zeros.
func Normalize(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	normalized := make([]float64, len(values))
	spread := maxVal - minVal
	if spread == 0 {
		return normalized
	}
	for i, v := range values {
		normalized[i] = (v - minVal) / spread
	}
	return normalized
}

// Compute normalizes each metric across all measurements and combines them
// into one weighted score per state.
func Compute(measurements []*models.Measurement) ([]*models.IndexScore, error) {
	if len(measurements) == 0 {
		return nil, ErrNoMeasurements
	}

	n := len(measurements)
	series := func(get func(*models.Measurement) float64) []float64 {
		values := make([]float64, n)
		for i, m := range measurements {
			values[i] = get(m)
		}
		return Normalize(values)
	}

	lifeExpectancy := series(func(m *models.Measurement) float64 { return m.LifeExpectancy })
	income := series(func(m *models.Measurement) float64 { return m.MedianHouseholdIncome })
	unemployment := series(func(m *models.Measurement) float64 { return m.UnemploymentRate })
	obesity := series(func(m *models.Measurement) float64 { return m.ObesityRate })
	poverty := series(func(m *models.Measurement) float64 { return m.PovertyRate })
	healthcare := series(func(m *models.Measurement) float64 { return m.AccessToHealthcare })

	scores := make([]*models.IndexScore, n)
	for i, m := range measurements {
		scores[i] = &models.IndexScore{
			SnapshotID:                m.SnapshotID,
			State:                     m.State,
			LifeExpectancyNorm:        lifeExpectancy[i],
			MedianHouseholdIncomeNorm: income[i],
			UnemploymentRateNorm:      unemployment[i],
			ObesityRateNorm:           obesity[i],
			PovertyRateNorm:           poverty[i],
			AccessToHealthcareNorm:    healthcare[i],
			Score: lifeExpectancy[i]*WeightLifeExpectancy +
				income[i]*WeightMedianHouseholdIncome +
				unemployment[i]*WeightUnemploymentRate +
				obesity[i]*WeightObesityRate +
				poverty[i]*WeightPovertyRate +
				healthcare[i]*WeightAccessToHealthcare,
		}
	}

	return scores, nil
}

package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/healthindex/healthindex/internal/db/models"
)

// csvHeader is the column layout of the exported dataset, raw metrics first,
// then the normalized metrics and the composite index.
var csvHeader = []string{
	"state",
	"year",
	"life_expectancy",
	"median_household_income",
	"unemployment_rate",
	"obesity_rate",
	"poverty_rate",
	"access_to_healthcare",
	"life_expectancy_norm",
	"median_household_income_norm",
	"unemployment_rate_norm",
	"obesity_rate_norm",
	"poverty_rate_norm",
	"access_to_healthcare_norm",
	"index",
}

// WriteCSV writes the joined dataset of raw measurements and computed scores
// to w. Measurements without a matching score are skipped.
func WriteCSV(w io.Writer, measurements []*models.Measurement, scores []*models.IndexScore) error {
	byState := make(map[string]*models.IndexScore, len(scores))
	for _, sc := range scores {
		byState[sc.State] = sc
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, m := range measurements {
		sc, ok := byState[m.State]
		if !ok {
			continue
		}
		record := []string{
			m.State,
			strconv.Itoa(m.Year),
			formatFloat(m.LifeExpectancy),
			formatFloat(m.MedianHouseholdIncome),
			formatFloat(m.UnemploymentRate),
			formatFloat(m.ObesityRate),
			formatFloat(m.PovertyRate),
			formatFloat(m.AccessToHealthcare),
			formatFloat(sc.LifeExpectancyNorm),
			formatFloat(sc.MedianHouseholdIncomeNorm),
			formatFloat(sc.UnemploymentRateNorm),
			formatFloat(sc.ObesityRateNorm),
			formatFloat(sc.PovertyRateNorm),
			formatFloat(sc.AccessToHealthcareNorm),
			formatFloat(sc.Score),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record for %q: %w", m.State, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSVFile writes the joined dataset to a file at path
func ExportCSVFile(path string, measurements []*models.Measurement, scores []*models.IndexScore) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return WriteCSV(f, measurements, scores)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

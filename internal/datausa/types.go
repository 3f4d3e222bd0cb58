package datausa

import (
	"errors"
	"fmt"
	"strconv"
)

// Column names required in every row of the upstream payload
const (
	ColumnState                 = "state"
	ColumnYear                  = "year"
	ColumnLifeExpectancy        = "life_expectancy"
	ColumnMedianHouseholdIncome = "median_household_income"
	ColumnUnemploymentRate      = "unemployment_rate"
	ColumnObesityRate           = "obesity_rate"
	ColumnPovertyRate           = "poverty_rate"
	ColumnAccessToHealthcare    = "access_to_healthcare"
)

// RequiredColumns lists the metric columns every row must carry
var RequiredColumns = []string{
	ColumnLifeExpectancy,
	ColumnMedianHouseholdIncome,
	ColumnUnemploymentRate,
	ColumnObesityRate,
	ColumnPovertyRate,
	ColumnAccessToHealthcare,
}

// Sentinel errors returned by the client
var (
	// ErrEmptyResponse indicates the API returned no rows
	ErrEmptyResponse = errors.New("no data received from API")
	// ErrMissingColumns indicates a required metric column is absent
	ErrMissingColumns = errors.New("missing required columns in API response")
)

// Payload is the envelope the DataUSA API wraps results in
type Payload struct {
	Data   []Row    `json:"data"`
	Source []Source `json:"source"`
}

// Row is a single record of the upstream payload. Columns vary per dataset so
// rows are decoded as loose maps and validated afterwards.
type Row map[string]interface{}

// Source describes the dataset a payload was derived from
type Source struct {
	Name        string `json:"name,omitempty"`
	Annotations struct {
		SourceName        string `json:"source_name,omitempty"`
		SourceDescription string `json:"source_description,omitempty"`
		DatasetName       string `json:"dataset_name,omitempty"`
		DatasetLink       string `json:"dataset_link,omitempty"`
	} `json:"annotations,omitempty"`
}

// String extracts a string column from the row, tolerating absent values
func (r Row) String(column string) string {
	v, ok := r[column]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Float extracts a numeric column from the row. Upstream encodes numbers both
// as JSON numbers and as strings.
func (r Row) Float(column string) (float64, error) {
	v, ok := r[column]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingColumns, column)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("column %q has non-numeric value %q: %w", column, n, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("column %q has unsupported type %T", column, v)
	}
}

// Int extracts an integer column from the row, tolerating absent values
func (r Row) Int(column string) int {
	f, err := r.Float(column)
	if err != nil {
		return 0
	}
	return int(f)
}

// Validate checks that the row carries every required metric column
func (r Row) Validate() error {
	for _, column := range RequiredColumns {
		if _, ok := r[column]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumns, column)
		}
	}
	return nil
}

// Package datausa provides a client for the DataUSA public data API.
package datausa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/healthindex/healthindex/internal/db/models"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client defines the interface for fetching data from the DataUSA API
type Client interface {
	// Fetch retrieves the current dataset and maps it to measurements
	Fetch(ctx context.Context) ([]*models.Measurement, error)
}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the DataUSA API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new DataUSA API client with the given options
func NewClient(opts *Options) (*APIClient, error) {
	if opts == nil {
		return nil, fmt.Errorf("options are required")
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: timeout,
	}, nil
}

// Fetch retrieves the current dataset from the API, validates that every
// required metric column is present, and maps the rows to measurements.
func (c *APIClient) Fetch(ctx context.Context) ([]*models.Measurement, error) {
	agent := fiber.Get(c.baseURL)

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}
	agent.Set("Accept", "application/json")

	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("error fetching data from API: %w", errs[0])
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, fmt.Errorf("API returned status %d", statusCode)
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("error decoding API response: %w", err)
	}
	if len(payload.Data) == 0 {
		return nil, ErrEmptyResponse
	}

	measurements := make([]*models.Measurement, 0, len(payload.Data))
	for _, row := range payload.Data {
		m, err := rowToMeasurement(row)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}

	return measurements, nil
}

func rowToMeasurement(row Row) (*models.Measurement, error) {
	if err := row.Validate(); err != nil {
		return nil, err
	}

	m := &models.Measurement{
		State: row.String(ColumnState),
		Year:  row.Int(ColumnYear),
	}

	fields := []struct {
		column string
		dst    *float64
	}{
		{ColumnLifeExpectancy, &m.LifeExpectancy},
		{ColumnMedianHouseholdIncome, &m.MedianHouseholdIncome},
		{ColumnUnemploymentRate, &m.UnemploymentRate},
		{ColumnObesityRate, &m.ObesityRate},
		{ColumnPovertyRate, &m.PovertyRate},
		{ColumnAccessToHealthcare, &m.AccessToHealthcare},
	}
	for _, f := range fields {
		v, err := row.Float(f.column)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	return m, nil
}

// Package client provides a Go client for the health index API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/healthindex/healthindex/internal/db/models"
	"github.com/healthindex/healthindex/internal/types"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL is the default base URL for the API
const DefaultBaseURL = "http://localhost:8501"

// Client defines the interface for interacting with the health index API
type Client interface {
	// Index methods
	GetIndex(ctx context.Context, page int) (*types.IndexResponse, error)
	GetStateIndex(ctx context.Context, state string) (*models.IndexScore, error)

	// Snapshot methods
	ListSnapshots(ctx context.Context, page int) ([]models.Snapshot, error)

	// Refresh method
	TriggerRefresh(ctx context.Context) (*models.Snapshot, error)

	// Health check
	HealthCheck(ctx context.Context) (map[string]string, error)
}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
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

// createAgent creates a new fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Accept", "application/json")

	return agent, nil
}

// executeRequest sends the request and decodes the response into v
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, v interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint)
	if err != nil {
		return err
	}

	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	if statusCode < 200 || statusCode >= 300 {
		var errResp types.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return &fiber.Error{
				Code:    statusCode,
				Message: errResp.Error,
			}
		}
		return &fiber.Error{
			Code:    statusCode,
			Message: string(body),
		}
	}

	if v == nil {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

// GetIndex retrieves the latest computed index
func (c *APIClient) GetIndex(ctx context.Context, page int) (*types.IndexResponse, error) {
	endpoint := fmt.Sprintf("/api/v1/index?page=%d", page)
	var resp types.IndexResponse
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStateIndex retrieves one state's score from the latest dataset
func (c *APIClient) GetStateIndex(ctx context.Context, state string) (*models.IndexScore, error) {
	endpoint := "/api/v1/index/" + url.PathEscape(state)
	var score models.IndexScore
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

// ListSnapshots retrieves the refresh history
func (c *APIClient) ListSnapshots(ctx context.Context, page int) ([]models.Snapshot, error) {
	endpoint := fmt.Sprintf("/api/v1/snapshots?page=%d", page)
	var resp types.ListResponse[models.Snapshot]
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.Rows, nil
}

// TriggerRefresh triggers an on-demand data refresh
func (c *APIClient) TriggerRefresh(ctx context.Context) (*models.Snapshot, error) {
	var snapshot models.Snapshot
	if err := c.executeRequest(ctx, http.MethodPost, "/api/v1/refresh", &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// HealthCheck verifies the API is reachable
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var resp map[string]string
	if err := c.executeRequest(ctx, http.MethodGet, "/health", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

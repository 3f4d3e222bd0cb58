package datausa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{
	"data": [
		{
			"state": "Alabama",
			"year": "2021",
			"life_expectancy": 73.2,
			"median_household_income": 52035,
			"unemployment_rate": 3.4,
			"obesity_rate": 39.9,
			"poverty_rate": 16.1,
			"access_to_healthcare": 78.5
		},
		{
			"state": "Colorado",
			"year": 2021,
			"life_expectancy": "80.5",
			"median_household_income": 80184,
			"unemployment_rate": 5.4,
			"obesity_rate": 25.1,
			"poverty_rate": 9.6,
			"access_to_healthcare": 91.2
		}
	],
	"source": [
		{"annotations": {"source_name": "Census Bureau"}}
	]
}`

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string) *APIClient {
	t.Helper()
	client, err := NewClient(&Options{BaseURL: baseURL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(nil)
	assert.Error(t, err)

	_, err = NewClient(&Options{BaseURL: ""})
	assert.Error(t, err)

	client, err := NewClient(&Options{BaseURL: "https://datausa.io/api/data"})
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, client.timeout)
}

func TestFetch(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, validPayload)
	client := newTestClient(t, srv.URL)

	measurements, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, measurements, 2)

	alabama := measurements[0]
	assert.Equal(t, "Alabama", alabama.State)
	assert.Equal(t, 2021, alabama.Year)
	assert.InDelta(t, 73.2, alabama.LifeExpectancy, 1e-9)
	assert.InDelta(t, 52035, alabama.MedianHouseholdIncome, 1e-9)
	assert.InDelta(t, 16.1, alabama.PovertyRate, 1e-9)

	// Numbers encoded as strings decode too.
	colorado := measurements[1]
	assert.Equal(t, "Colorado", colorado.State)
	assert.InDelta(t, 80.5, colorado.LifeExpectancy, 1e-9)
}

func TestFetchEmptyData(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"data": [], "source": []}`)
	client := newTestClient(t, srv.URL)

	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestFetchMissingColumn(t *testing.T) {
	body := `{"data": [
		{
			"state": "Alabama",
			"life_expectancy": 73.2,
			"median_household_income": 52035,
			"unemployment_rate": 3.4,
			"obesity_rate": 39.9,
			"poverty_rate": 16.1
		}
	]}`
	srv := newTestServer(t, http.StatusOK, body)
	client := newTestClient(t, srv.URL)

	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), ColumnAccessToHealthcare)
}

func TestFetchServerError(t *testing.T) {
	srv := newTestServer(t, http.StatusBadGateway, `{"error": "upstream down"}`)
	client := newTestClient(t, srv.URL)

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetchInvalidJSON(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{not json`)
	client := newTestClient(t, srv.URL)

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
}

func TestRowFloat(t *testing.T) {
	row := Row{
		"numeric": 4.2,
		"string":  "7.5",
		"bad":     "abc",
		"bool":    true,
	}

	v, err := row.Float("numeric")
	require.NoError(t, err)
	assert.InDelta(t, 4.2, v, 1e-9)

	v, err = row.Float("string")
	require.NoError(t, err)
	assert.InDelta(t, 7.5, v, 1e-9)

	_, err = row.Float("bad")
	assert.Error(t, err)

	_, err = row.Float("bool")
	assert.Error(t, err)

	_, err = row.Float("missing")
	require.ErrorIs(t, err, ErrMissingColumns)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("HEALTHINDEX_TEST_UNSET_KEY", "fallback"))

	t.Setenv(EnvPort, "9000")
	assert.Equal(t, "9000", GetEnv(EnvPort, DefaultPort))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "postgresql://u:p@host:5433/other")
	t.Setenv(EnvDataUSAURL, "https://example.com/api/data")
	t.Setenv(EnvDataFilePath, "/tmp/out.csv")
	t.Setenv(EnvPort, "8502")
	t.Setenv(EnvRefreshSchedule, "@hourly")

	cfg := Load()
	assert.Equal(t, "postgresql://u:p@host:5433/other", cfg.DatabaseURL)
	assert.Equal(t, "https://example.com/api/data", cfg.DataUSAURL)
	assert.Equal(t, "/tmp/out.csv", cfg.DataFilePath)
	assert.Equal(t, "8502", cfg.Port)
	assert.Equal(t, "@hourly", cfg.RefreshSchedule)
}

func TestParseDatabaseURL(t *testing.T) {
	opts, err := ParseDatabaseURL("postgresql://user:password@db:5432/healthindex")
	require.NoError(t, err)
	assert.Equal(t, "db", opts.Host)
	assert.Equal(t, "user", opts.User)
	assert.Equal(t, "password", opts.Password)
	assert.Equal(t, "healthindex", opts.DBName)
	assert.Equal(t, 5432, opts.Port)
	assert.Equal(t, "disable", opts.SSLMode)
}

func TestParseDatabaseURLVariants(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
		check   func(t *testing.T, opts *DBOptions)
	}{
		{
			name: "postgres scheme",
			url:  "postgres://u@localhost/db1",
			check: func(t *testing.T, opts *DBOptions) {
				assert.Equal(t, "localhost", opts.Host)
				assert.Equal(t, "u", opts.User)
				assert.Equal(t, "", opts.Password)
				assert.Equal(t, 5432, opts.Port)
			},
		},
		{
			name: "explicit sslmode",
			url:  "postgres://u:p@h:6000/db1?sslmode=require",
			check: func(t *testing.T, opts *DBOptions) {
				assert.Equal(t, 6000, opts.Port)
				assert.Equal(t, "require", opts.SSLMode)
			},
		},
		{
			name:    "wrong scheme",
			url:     "mysql://u:p@h/db1",
			wantErr: true,
		},
		{
			name:    "missing database name",
			url:     "postgres://u:p@h:5432/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseDatabaseURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

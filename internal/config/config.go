// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	// EnvDatabaseURL is the environment variable containing the Postgres connection URL
	EnvDatabaseURL = "DATABASE_URL"

	// EnvDataUSAURL is the environment variable containing the DataUSA API base URL
	EnvDataUSAURL = "DATAUSA_API_URL"

	// EnvDataFilePath is the environment variable containing the CSV export path
	EnvDataFilePath = "DATA_FILE_PATH"

	// EnvPort is the environment variable containing the HTTP listen port
	EnvPort = "PORT"

	// EnvRefreshSchedule is the environment variable containing the refresh cron expression
	EnvRefreshSchedule = "REFRESH_SCHEDULE"
)

// Default configuration values
const (
	DefaultDatabaseURL     = "postgresql://user:password@db:5432/healthindex"
	DefaultDataUSAURL      = "https://datausa.io/api/data"
	DefaultDataFilePath    = "index_data.csv"
	DefaultPort            = "8501"
	DefaultRefreshSchedule = "@daily"
)

// Config holds the runtime configuration for the service
type Config struct {
	DatabaseURL     string
	DataUSAURL      string
	DataFilePath    string
	Port            string
	RefreshSchedule string
}

// Load reads configuration from the environment, loading a .env file first
// when one is present.
func Load() *Config {
	// A missing .env file is not an error; env vars may be set directly.
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:     GetEnv(EnvDatabaseURL, DefaultDatabaseURL),
		DataUSAURL:      GetEnv(EnvDataUSAURL, DefaultDataUSAURL),
		DataFilePath:    GetEnv(EnvDataFilePath, DefaultDataFilePath),
		Port:            GetEnv(EnvPort, DefaultPort),
		RefreshSchedule: GetEnv(EnvRefreshSchedule, DefaultRefreshSchedule),
	}
}

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// DBOptions holds the parsed parts of a Postgres connection URL.
type DBOptions struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     int
	SSLMode  string
}

// ParseDatabaseURL splits a postgres:// or postgresql:// connection URL into
// connection options.
func ParseDatabaseURL(raw string) (*DBOptions, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return nil, fmt.Errorf("unsupported database URL scheme: %q", u.Scheme)
	}

	opts := &DBOptions{
		Host:    u.Hostname(),
		DBName:  strings.TrimPrefix(u.Path, "/"),
		Port:    5432,
		SSLMode: "disable",
	}
	if u.User != nil {
		opts.User = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			opts.Password = pw
		}
	}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid database port %q: %w", p, err)
		}
		opts.Port = port
	}
	if mode := u.Query().Get("sslmode"); mode != "" {
		opts.SSLMode = mode
	}
	if opts.DBName == "" {
		return nil, fmt.Errorf("database URL %q is missing a database name", raw)
	}

	return opts, nil
}

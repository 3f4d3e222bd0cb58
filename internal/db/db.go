// Package db provides database connectivity and operations
package db

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/healthindex/healthindex/internal/config"
	"github.com/healthindex/healthindex/internal/db/models"
)

// Options represents database connection configuration options
type Options struct {
	// URL is the postgres connection URL, e.g.
	// postgresql://user:password@db:5432/healthindex
	URL      string
	LogLevel logger.LogLevel
}

// New creates a new database connection with the given options
func New(opts Options) (*gorm.DB, error) {
	if opts.URL == "" {
		opts.URL = config.DefaultDatabaseURL
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}

	dbOpts, err := config.ParseDatabaseURL(opts.URL)
	if err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		dbOpts.Host, dbOpts.User, dbOpts.Password, dbOpts.DBName, dbOpts.Port, dbOpts.SSLMode)

	// Configure custom logger to ignore record not found errors
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs the schema migrations for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Snapshot{},
		&models.Measurement{},
		&models.IndexScore{},
	)
}

// IsDuplicateKeyError checks if the given error is a PostgreSQL duplicate key error
func IsDuplicateKeyError(err error) bool {
	return errors.Is(postgres.Dialector{}.Translate(err), gorm.ErrDuplicatedKey)
}

// IsNotFoundError checks if the given error is a gorm record-not-found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

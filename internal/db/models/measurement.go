package models

import (
	"time"

	"gorm.io/gorm"
)

// Measurement holds the raw state-level metrics fetched from the upstream API
// for a single snapshot.
type Measurement struct {
	gorm.Model
	SnapshotID            uint      `json:"-" gorm:"not null; index"`
	State                 string    `json:"state" gorm:"not null; index"`
	Year                  int       `json:"year,omitempty" gorm:"index"`
	LifeExpectancy        float64   `json:"life_expectancy" gorm:"not null"`
	MedianHouseholdIncome float64   `json:"median_household_income" gorm:"not null"`
	UnemploymentRate      float64   `json:"unemployment_rate" gorm:"not null"`
	ObesityRate           float64   `json:"obesity_rate" gorm:"not null"`
	PovertyRate           float64   `json:"poverty_rate" gorm:"not null"`
	AccessToHealthcare    float64   `json:"access_to_healthcare" gorm:"not null"`
	CreatedAt             time.Time `json:"created_at" gorm:"index"`
}

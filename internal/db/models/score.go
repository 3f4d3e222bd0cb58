package models

import (
	"time"

	"gorm.io/gorm"
)

// IndexScore holds the normalized metrics and the weighted index for one
// state within a snapshot.
type IndexScore struct {
	gorm.Model
	SnapshotID                uint      `json:"-" gorm:"not null; index"`
	State                     string    `json:"state" gorm:"not null; index"`
	LifeExpectancyNorm        float64   `json:"life_expectancy_norm" gorm:"not null"`
	MedianHouseholdIncomeNorm float64   `json:"median_household_income_norm" gorm:"not null"`
	UnemploymentRateNorm      float64   `json:"unemployment_rate_norm" gorm:"not null"`
	ObesityRateNorm           float64   `json:"obesity_rate_norm" gorm:"not null"`
	PovertyRateNorm           float64   `json:"poverty_rate_norm" gorm:"not null"`
	AccessToHealthcareNorm    float64   `json:"access_to_healthcare_norm" gorm:"not null"`
	Score                     float64   `json:"index" gorm:"not null; index"`
	CreatedAt                 time.Time `json:"created_at" gorm:"index"`
}

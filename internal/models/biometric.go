package models

import (
	"time"

	"gorm.io/gorm"
)

// BiometricRecord is one dated measurement snapshot for a user. A user has at
// most one record per calendar date; RecordDate is stored at UTC midnight.
type BiometricRecord struct {
	ID               uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt        time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt        time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID           uint           `gorm:"uniqueIndex:idx_user_record_date" json:"user_id" example:"1"`
	User             User           `gorm:"foreignKey:UserID" json:"-"`
	RecordDate       time.Time      `gorm:"uniqueIndex:idx_user_record_date" json:"record_date" example:"2023-01-01T00:00:00Z"`
	WeightKg         *float64       `json:"weight_kg" example:"78.5"`
	BodyFatPct       *float64       `json:"body_fat_pct" example:"18.2"`
	MuscleMassKg     *float64       `json:"muscle_mass_kg" example:"34.1"`
	RestingHeartRate *int           `json:"resting_heart_rate" example:"62"`
}

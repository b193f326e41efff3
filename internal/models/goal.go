package models

import (
	"time"

	"gorm.io/gorm"
)

// Goal types form a closed set; anything else yields an undefined progress
// value rather than an error.
const (
	GoalWeightLoss = "Weight Loss"
	GoalMuscleGain = "Muscle Gain"
	GoalEndurance  = "Endurance"
)

type Goal struct {
	ID           uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID       uint           `gorm:"index" json:"user_id" example:"1"`
	User         User           `gorm:"foreignKey:UserID" json:"-"`
	GoalType     string         `json:"goal_type" example:"Weight Loss"`
	TargetValue  float64        `json:"target_value" example:"75.0"`
	CurrentValue float64        `json:"current_value" example:"78.5"`
	StartDate    time.Time      `json:"start_date" example:"2023-01-01T00:00:00Z"`
	TargetDate   time.Time      `json:"target_date" example:"2023-06-01T00:00:00Z"`
	Completed    bool           `gorm:"default:false" json:"completed" example:"false"`
}

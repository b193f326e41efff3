package models

import (
	"time"

	"gorm.io/gorm"
)

// Exercise categories. The category decides which WorkoutExercise fields are
// meaningful: Strength uses sets/reps/weight, Cardio uses duration or
// distance, Flexibility and Balance use duration.
const (
	CategoryCardio      = "Cardio"
	CategoryStrength    = "Strength"
	CategoryFlexibility = "Flexibility"
	CategoryBalance     = "Balance"
)

type ExerciseType struct {
	ID                 uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt          time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt          time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name               string         `gorm:"unique" json:"name" example:"Bench Press"`
	Category           string         `json:"category" example:"Strength"`
	CaloriesPerMinute  *float64       `json:"calories_per_minute" example:"7.5"`
}

type Workout struct {
	ID          uint              `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time         `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time         `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint              `gorm:"index" json:"user_id" example:"1"`
	User        User              `gorm:"foreignKey:UserID" json:"-"`
	WorkoutDate time.Time         `gorm:"index" json:"workout_date" example:"2023-01-01T00:00:00Z"`
	StartTime   string            `json:"start_time" example:"07:30"`
	EndTime     string            `json:"end_time" example:"08:15"`
	Notes       string            `json:"notes" example:"Upper body day"`
	Exercises   []WorkoutExercise `gorm:"foreignKey:WorkoutID" json:"exercises"`
}

type WorkoutExercise struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	WorkoutID      uint           `gorm:"index" json:"workout_id" example:"1"`
	ExerciseTypeID uint           `json:"exercise_type_id" example:"1"`
	ExerciseType   ExerciseType   `gorm:"foreignKey:ExerciseTypeID" json:"exercise_type"`
	Sets           *int           `json:"sets" example:"3"`
	Reps           *int           `json:"reps" example:"10"`
	WeightKg       *float64       `json:"weight_kg" example:"60.0"`
	DurationMin    *float64       `json:"duration_minutes" example:"30.0"`
	DistanceKm     *float64       `json:"distance_km" example:"5.2"`
}

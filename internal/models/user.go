package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name      string         `json:"name" example:"John Doe"`
	Email     string         `gorm:"unique" json:"email" example:"john@example.com"`
	Password  string         `json:"-"`
	BirthDate time.Time      `json:"birth_date" example:"1990-05-15T00:00:00Z"`
	Gender    string         `json:"gender" example:"Male"`
	HeightCm  float64        `json:"height_cm" example:"178.5"`
}

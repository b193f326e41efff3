package models

import (
	"time"

	"gorm.io/gorm"
)

type FoodItem struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name        string         `json:"name" example:"Oatmeal"`
	Brand       string         `json:"brand" example:"Quaker"`
	ServingSize string         `json:"serving_size" example:"100g"`
	Calories    float64        `json:"calories" example:"389"`
	ProteinG    float64        `json:"protein_g" example:"16.9"`
	CarbsG      float64        `json:"carbs_g" example:"66.3"`
	FatG        float64        `json:"fat_g" example:"6.9"`
}

type Meal struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	MealDate  time.Time      `gorm:"index" json:"meal_date" example:"2023-01-01T00:00:00Z"`
	MealTime  string         `json:"meal_time" example:"08:00"`
	MealType  string         `json:"meal_type" example:"Breakfast"`
	Foods     []MealFood     `gorm:"foreignKey:MealID" json:"foods"`
}

type MealFood struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	MealID     uint           `gorm:"index" json:"meal_id" example:"1"`
	FoodItemID uint           `json:"food_item_id" example:"1"`
	FoodItem   FoodItem       `gorm:"foreignKey:FoodItemID" json:"food_item"`
	Servings   float64        `json:"servings" example:"1.5"`
}

package repository

import (
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

type MealRepository interface {
	Create(meal *models.Meal) error
	FindByID(id uint) (*models.Meal, error)
	FindByUserID(userID uint) ([]models.Meal, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Meal, error)
	Update(meal *models.Meal) error
	Delete(id uint) error
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db}
}

func (r *mealRepository) Create(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

func (r *mealRepository) FindByID(id uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.Preload("Foods.FoodItem").First(&meal, id).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) FindByUserID(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Preload("Foods.FoodItem").
		Where("user_id = ?", userID).
		Order("meal_date ASC, meal_time ASC, id ASC").
		Find(&meals).Error
	return meals, err
}

func (r *mealRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Preload("Foods.FoodItem").
		Where("user_id = ? AND meal_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("meal_date ASC, meal_time ASC, id ASC").
		Find(&meals).Error
	return meals, err
}

func (r *mealRepository) Update(meal *models.Meal) error {
	return r.db.Save(meal).Error
}

func (r *mealRepository) Delete(id uint) error {
	return r.db.Delete(&models.Meal{}, id).Error
}

package repository

import (
	"fittrack/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository serves the reference tables: exercise types and food
// items. Both are small, append-mostly catalogs.
type CatalogRepository interface {
	CreateExerciseType(et *models.ExerciseType) error
	FindExerciseTypeByID(id uint) (*models.ExerciseType, error)
	FindAllExerciseTypes() ([]models.ExerciseType, error)
	CreateFoodItem(item *models.FoodItem) error
	FindFoodItemByID(id uint) (*models.FoodItem, error)
	FindAllFoodItems() ([]models.FoodItem, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db}
}

func (r *catalogRepository) CreateExerciseType(et *models.ExerciseType) error {
	return r.db.Create(et).Error
}

func (r *catalogRepository) FindExerciseTypeByID(id uint) (*models.ExerciseType, error) {
	var et models.ExerciseType
	err := r.db.First(&et, id).Error
	if err != nil {
		return nil, err
	}
	return &et, nil
}

func (r *catalogRepository) FindAllExerciseTypes() ([]models.ExerciseType, error) {
	var types []models.ExerciseType
	err := r.db.Order("name").Find(&types).Error
	return types, err
}

func (r *catalogRepository) CreateFoodItem(item *models.FoodItem) error {
	return r.db.Create(item).Error
}

func (r *catalogRepository) FindFoodItemByID(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) FindAllFoodItems() ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := r.db.Order("name").Find(&items).Error
	return items, err
}

package repository

import (
	"fittrack/internal/models"

	"gorm.io/gorm"
)

type GoalRepository interface {
	Create(goal *models.Goal) error
	FindByID(id uint) (*models.Goal, error)
	FindByUserID(userID uint) ([]models.Goal, error)
	FindByUserIDAndType(userID uint, goalType string) ([]models.Goal, error)
	Update(goal *models.Goal) error
	Delete(id uint) error
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db}
}

func (r *goalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

func (r *goalRepository) FindByID(id uint) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.First(&goal, id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) FindByUserID(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("user_id = ?", userID).Order("start_date ASC, id ASC").Find(&goals).Error
	return goals, err
}

func (r *goalRepository) FindByUserIDAndType(userID uint, goalType string) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("user_id = ? AND goal_type = ?", userID, goalType).
		Order("start_date ASC, id ASC").
		Find(&goals).Error
	return goals, err
}

func (r *goalRepository) Update(goal *models.Goal) error {
	return r.db.Save(goal).Error
}

func (r *goalRepository) Delete(id uint) error {
	return r.db.Delete(&models.Goal{}, id).Error
}

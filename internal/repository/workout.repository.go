package repository

import (
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

type WorkoutRepository interface {
	Create(workout *models.Workout) error
	FindByID(id uint) (*models.Workout, error)
	FindByUserID(userID uint) ([]models.Workout, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Workout, error)
	// FindAllWithExercises loads every workout with its exercises and their
	// types, for the cross-user popularity report.
	FindAllWithExercises() ([]models.Workout, error)
	CountByUserIDAndDateRange(userID uint, startDate, endDate time.Time) (int64, error)
	Update(workout *models.Workout) error
	Delete(id uint) error
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db}
}

func (r *workoutRepository) Create(workout *models.Workout) error {
	return r.db.Create(workout).Error
}

func (r *workoutRepository) FindByID(id uint) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.Preload("Exercises.ExerciseType").First(&workout, id).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) FindByUserID(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Preload("Exercises.ExerciseType").
		Where("user_id = ?", userID).
		Order("workout_date ASC, id ASC").
		Find(&workouts).Error
	return workouts, err
}

func (r *workoutRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Preload("Exercises.ExerciseType").
		Where("user_id = ? AND workout_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("workout_date ASC, id ASC").
		Find(&workouts).Error
	return workouts, err
}

func (r *workoutRepository) FindAllWithExercises() ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Preload("Exercises.ExerciseType").
		Order("workout_date ASC, id ASC").
		Find(&workouts).Error
	return workouts, err
}

func (r *workoutRepository) CountByUserIDAndDateRange(userID uint, startDate, endDate time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Workout{}).
		Where("user_id = ? AND workout_date BETWEEN ? AND ?", userID, startDate, endDate).
		Count(&count).Error
	return count, err
}

func (r *workoutRepository) Update(workout *models.Workout) error {
	return r.db.Save(workout).Error
}

func (r *workoutRepository) Delete(id uint) error {
	return r.db.Delete(&models.Workout{}, id).Error
}

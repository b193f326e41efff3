package mocks

import (
	"time"

	"fittrack/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) CountByGender() (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockBiometricRepository struct {
	mock.Mock
}

func (m *MockBiometricRepository) Create(record *models.BiometricRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockBiometricRepository) FindByID(id uint) (*models.BiometricRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BiometricRecord), args.Error(1)
}

func (m *MockBiometricRepository) FindByUserID(userID uint) ([]models.BiometricRecord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BiometricRecord), args.Error(1)
}

func (m *MockBiometricRepository) FindByUserIDAndDate(userID uint, date time.Time) (*models.BiometricRecord, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BiometricRecord), args.Error(1)
}

func (m *MockBiometricRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.BiometricRecord, error) {
	args := m.Called(userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BiometricRecord), args.Error(1)
}

func (m *MockBiometricRepository) Update(record *models.BiometricRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockBiometricRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(workout *models.Workout) error {
	args := m.Called(workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) FindByID(id uint) (*models.Workout, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) FindByUserID(userID uint) ([]models.Workout, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Workout, error) {
	args := m.Called(userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) FindAllWithExercises() ([]models.Workout, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) CountByUserIDAndDateRange(userID uint, startDate, endDate time.Time) (int64, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkoutRepository) Update(workout *models.Workout) error {
	args := m.Called(workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) Create(meal *models.Meal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockMealRepository) FindByID(id uint) (*models.Meal, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealRepository) FindByUserID(userID uint) ([]models.Meal, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Meal, error) {
	args := m.Called(userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) Update(meal *models.Meal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockMealRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(goal *models.Goal) error {
	args := m.Called(goal)
	return args.Error(0)
}

func (m *MockGoalRepository) FindByID(id uint) (*models.Goal, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindByUserID(userID uint) ([]models.Goal, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindByUserIDAndType(userID uint, goalType string) ([]models.Goal, error) {
	args := m.Called(userID, goalType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Goal), args.Error(1)
}

func (m *MockGoalRepository) Update(goal *models.Goal) error {
	args := m.Called(goal)
	return args.Error(0)
}

func (m *MockGoalRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) CreateExerciseType(et *models.ExerciseType) error {
	args := m.Called(et)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindExerciseTypeByID(id uint) (*models.ExerciseType, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExerciseType), args.Error(1)
}

func (m *MockCatalogRepository) FindAllExerciseTypes() ([]models.ExerciseType, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExerciseType), args.Error(1)
}

func (m *MockCatalogRepository) CreateFoodItem(item *models.FoodItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindFoodItemByID(id uint) (*models.FoodItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodItem), args.Error(1)
}

func (m *MockCatalogRepository) FindAllFoodItems() ([]models.FoodItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

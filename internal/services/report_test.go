package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fittrack/internal/models"
	"fittrack/tests/mocks"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fptr(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }

func newServiceWithMocks() (*ReportService, *mocks.MockUserRepository, *mocks.MockBiometricRepository, *mocks.MockWorkoutRepository, *mocks.MockMealRepository, *mocks.MockGoalRepository) {
	userRepo := new(mocks.MockUserRepository)
	bioRepo := new(mocks.MockBiometricRepository)
	workoutRepo := new(mocks.MockWorkoutRepository)
	mealRepo := new(mocks.MockMealRepository)
	goalRepo := new(mocks.MockGoalRepository)
	service := NewReportService(userRepo, bioRepo, workoutRepo, mealRepo, goalRepo)
	return service, userRepo, bioRepo, workoutRepo, mealRepo, goalRepo
}

func TestUserVitals(t *testing.T) {
	service, userRepo, bioRepo, _, _, _ := newServiceWithMocks()

	userRepo.On("FindByID", uint(1)).Return(&models.User{
		ID:        1,
		Name:      "Alice",
		Gender:    "Female",
		BirthDate: date(1990, 5, 15),
		HeightCm:  170,
	}, nil)
	bioRepo.On("FindByUserID", uint(1)).Return([]models.BiometricRecord{
		{ID: 1, UserID: 1, RecordDate: date(2024, 1, 1), WeightKg: fptr(78.5)},
		{ID: 2, UserID: 1, RecordDate: date(2024, 1, 15), WeightKg: fptr(77.8)},
	}, nil)

	report, err := service.UserVitals(1, date(2024, 6, 1))
	assert.NoError(t, err)
	assert.Equal(t, 34, report.Age)
	assert.True(t, report.BMI.Defined)
	assert.InDelta(t, 26.92, report.BMI.Value, 0.001)
	assert.Equal(t, "2024-01-15", report.LatestRecord)
}

func TestUserVitalsNoBiometrics(t *testing.T) {
	service, userRepo, bioRepo, _, _, _ := newServiceWithMocks()

	userRepo.On("FindByID", uint(1)).Return(&models.User{
		ID: 1, BirthDate: date(1990, 5, 15), HeightCm: 170,
	}, nil)
	bioRepo.On("FindByUserID", uint(1)).Return([]models.BiometricRecord{}, nil)

	report, err := service.UserVitals(1, date(2024, 6, 1))
	assert.NoError(t, err)
	assert.False(t, report.BMI.Defined)
}

func TestWeightTrendSeedScenario(t *testing.T) {
	service, _, bioRepo, _, _, _ := newServiceWithMocks()

	bioRepo.On("FindByUserID", uint(1)).Return([]models.BiometricRecord{
		{ID: 1, RecordDate: date(2024, 1, 1), WeightKg: fptr(78.5)},
		{ID: 2, RecordDate: date(2024, 1, 15), WeightKg: fptr(77.8)},
	}, nil)

	report, err := service.WeightTrend(1)
	assert.NoError(t, err)
	assert.Len(t, report.Points, 2)
	assert.Nil(t, report.Points[0].Delta)
	assert.Equal(t, -0.7, *report.Points[1].Delta)
}

func TestGoalCompletionMissingBaseline(t *testing.T) {
	service, _, bioRepo, workoutRepo, _, goalRepo := newServiceWithMocks()

	goal := models.Goal{
		ID: 1, UserID: 1,
		GoalType:     models.GoalWeightLoss,
		TargetValue:  75.0,
		CurrentValue: 78.5,
		StartDate:    date(2024, 1, 1),
		TargetDate:   date(2024, 4, 1),
	}
	goalRepo.On("FindByUserID", uint(1)).Return([]models.Goal{goal}, nil)
	bioRepo.On("FindByUserIDAndDate", uint(1), goal.StartDate).Return(nil, gorm.ErrRecordNotFound)
	workoutRepo.On("CountByUserIDAndDateRange", uint(1), goal.StartDate, goal.TargetDate).Return(int64(13), nil)

	report, err := service.GoalCompletion(1)
	assert.NoError(t, err, "missing baseline must not fail the report")
	assert.Len(t, report.Goals, 1)
	assert.False(t, report.Goals[0].Progress.Defined)
	assert.Contains(t, report.Goals[0].Note, "baseline")
	assert.Equal(t, 1.0, report.Goals[0].WorkoutsPerWeek.Value)
}

func TestGoalCompletionWithBaseline(t *testing.T) {
	service, _, bioRepo, workoutRepo, _, goalRepo := newServiceWithMocks()

	goal := models.Goal{
		ID: 1, UserID: 1,
		GoalType:     models.GoalWeightLoss,
		TargetValue:  75.0,
		CurrentValue: 78.5,
		StartDate:    date(2024, 1, 1),
		TargetDate:   date(2024, 4, 1),
	}
	goalRepo.On("FindByUserID", uint(1)).Return([]models.Goal{goal}, nil)
	bioRepo.On("FindByUserIDAndDate", uint(1), goal.StartDate).Return(&models.BiometricRecord{
		ID: 1, UserID: 1, RecordDate: goal.StartDate, WeightKg: fptr(78.5),
	}, nil)
	workoutRepo.On("CountByUserIDAndDateRange", uint(1), goal.StartDate, goal.TargetDate).Return(int64(0), nil)

	report, err := service.GoalCompletion(1)
	assert.NoError(t, err)
	assert.True(t, report.Goals[0].Progress.Defined)
	assert.Equal(t, 0.0, report.Goals[0].Progress.Value)
	assert.Empty(t, report.Goals[0].Note)
}

func TestHeartRateDropReportCollectsPerUserErrors(t *testing.T) {
	service, userRepo, bioRepo, _, _, _ := newServiceWithMocks()

	userRepo.On("FindAll").Return([]models.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}, nil)
	bioRepo.On("FindByUserID", uint(1)).Return(nil, errors.New("connection reset"))
	bioRepo.On("FindByUserID", uint(2)).Return([]models.BiometricRecord{
		{ID: 1, RecordDate: date(2024, 1, 1), RestingHeartRate: iptr(75)},
		{ID: 2, RecordDate: date(2024, 3, 1), RestingHeartRate: iptr(64)},
	}, nil)

	report, err := service.HeartRateDropReport(30, 5)
	assert.NoError(t, err, "one bad subject must not abort the report")
	assert.Len(t, report.Qualifying, 1)
	assert.Equal(t, uint(2), report.Qualifying[0].UserID)
	assert.Contains(t, report.Errors[1], "connection reset")
}

func TestStrengthProgression(t *testing.T) {
	service, _, _, workoutRepo, _, _ := newServiceWithMocks()

	bench := models.ExerciseType{ID: 1, Name: "Bench Press", Category: models.CategoryStrength}
	run := models.ExerciseType{ID: 2, Name: "Running", Category: models.CategoryCardio}

	workoutRepo.On("FindByUserID", uint(1)).Return([]models.Workout{
		{ID: 1, WorkoutDate: date(2024, 1, 1), Exercises: []models.WorkoutExercise{
			{ExerciseType: bench, WeightKg: fptr(60)},
			{ExerciseType: run, DistanceKm: fptr(5)},
		}},
		{ID: 2, WorkoutDate: date(2024, 3, 1), Exercises: []models.WorkoutExercise{
			{ExerciseType: bench, WeightKg: fptr(72)},
		}},
	}, nil)

	report, err := service.StrengthProgression(1)
	assert.NoError(t, err)
	assert.Len(t, report.Exercises, 1, "cardio exercises stay out of strength progression")

	prog := report.Exercises[0]
	assert.Equal(t, "Bench Press", prog.Exercise)
	assert.Equal(t, 60.0, prog.First)
	assert.Equal(t, 72.0, prog.Last)
	assert.Equal(t, 20.0, prog.PercentDelta.Value)
	assert.Equal(t, 60, prog.Days)
}

func TestWorkoutWeightCorrelation(t *testing.T) {
	service, userRepo, bioRepo, workoutRepo, _, _ := newServiceWithMocks()

	userRepo.On("FindAll").Return([]models.User{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

	// User 1: many workouts, big loss. User 2: few workouts, small loss.
	bioRepo.On("FindByUserID", uint(1)).Return([]models.BiometricRecord{
		{ID: 1, RecordDate: date(2024, 1, 1), WeightKg: fptr(90)},
		{ID: 2, RecordDate: date(2024, 3, 1), WeightKg: fptr(84)},
	}, nil)
	bioRepo.On("FindByUserID", uint(2)).Return([]models.BiometricRecord{
		{ID: 3, RecordDate: date(2024, 1, 1), WeightKg: fptr(80)},
		{ID: 4, RecordDate: date(2024, 3, 1), WeightKg: fptr(79)},
	}, nil)
	// User 3 has one weigh-in only and is skipped.
	bioRepo.On("FindByUserID", uint(3)).Return([]models.BiometricRecord{
		{ID: 5, RecordDate: date(2024, 1, 1), WeightKg: fptr(70)},
	}, nil)

	workoutRepo.On("FindByUserID", uint(1)).Return(make([]models.Workout, 12), nil)
	workoutRepo.On("FindByUserID", uint(2)).Return(make([]models.Workout, 2), nil)

	report, err := service.WorkoutWeightCorrelation()
	assert.NoError(t, err)
	assert.Len(t, report.Pairs, 2)
	assert.True(t, report.R.Defined)
	assert.Equal(t, 1.0, report.R.Value, "two points always correlate perfectly")
}

func TestBatchRunnerCollectsPartialResults(t *testing.T) {
	service, userRepo, bioRepo, workoutRepo, _, goalRepo := newServiceWithMocks()

	userRepo.On("FindByID", uint(1)).Return(&models.User{
		ID: 1, BirthDate: date(1990, 1, 1), HeightCm: 175,
	}, nil)
	bioRepo.On("FindByUserID", uint(1)).Return([]models.BiometricRecord{}, nil)
	workoutRepo.On("FindByUserID", uint(1)).Return([]models.Workout{}, nil)
	goalRepo.On("FindByUserID", uint(1)).Return([]models.Goal{}, nil)

	userRepo.On("FindByID", uint(2)).Return(nil, errors.New("user not found"))

	runner := NewBatchRunner(service, 2)
	result := runner.Run(context.Background(), []uint{1, 2}, date(2024, 6, 1))

	assert.Len(t, result.Reports, 1)
	assert.NotNil(t, result.Reports[1])
	assert.Contains(t, result.Errors[2], "user not found")
}

func TestBatchRunnerEmptyInput(t *testing.T) {
	service, _, _, _, _, _ := newServiceWithMocks()

	runner := NewBatchRunner(service, 4)
	result := runner.Run(context.Background(), nil, time.Now())
	assert.Empty(t, result.Reports)
	assert.Empty(t, result.Errors)
}

func TestNutritionSummaryAverages(t *testing.T) {
	service, _, _, _, mealRepo, _ := newServiceWithMocks()

	oats := models.FoodItem{Name: "Oatmeal", Calories: 389, ProteinG: 16.9, CarbsG: 66.3, FatG: 6.9}
	from, to := date(2024, 1, 1), date(2024, 1, 31)
	mealRepo.On("FindByUserIDAndDateRange", uint(1), from, to).Return([]models.Meal{
		{MealDate: date(2024, 1, 1), Foods: []models.MealFood{{FoodItem: oats, Servings: 1}}},
		{MealDate: date(2024, 1, 2), Foods: []models.MealFood{{FoodItem: oats, Servings: 2}}},
	}, nil)

	report, err := service.NutritionSummary(1, from, to)
	assert.NoError(t, err)
	assert.Equal(t, 2, report.DaysLogged)
	assert.Equal(t, 583.5, report.DailyAverage.Calories)
	mealRepo.AssertExpectations(t)
}

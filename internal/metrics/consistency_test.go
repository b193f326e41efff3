package metrics

import (
	"testing"
	"time"

	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func workoutOn(d time.Time) models.Workout {
	return models.Workout{WorkoutDate: d}
}

func TestWeeklyConsistencyQualifies(t *testing.T) {
	// Two weeks with 3 workouts each, one week with 1.
	workouts := []models.Workout{
		workoutOn(date(2024, 3, 4)), workoutOn(date(2024, 3, 6)), workoutOn(date(2024, 3, 8)),
		workoutOn(date(2024, 3, 11)), workoutOn(date(2024, 3, 13)), workoutOn(date(2024, 3, 15)),
		workoutOn(date(2024, 3, 20)),
	}

	result := WeeklyConsistency(workouts, 2, 2)
	assert.True(t, result.Qualifies)
	assert.Equal(t, 3, result.ActiveWeeks)
	assert.Equal(t, 2, result.QualifyingWeeks)
}

func TestWeeklyConsistencyStrictPerWeekThreshold(t *testing.T) {
	// Exactly minPerWeek workouts in a week does not make it qualifying.
	workouts := []models.Workout{
		workoutOn(date(2024, 3, 4)), workoutOn(date(2024, 3, 6)),
	}

	result := WeeklyConsistency(workouts, 2, 1)
	assert.False(t, result.Qualifies)
	assert.Equal(t, 0, result.QualifyingWeeks)
}

func TestWeeklyConsistencyISOYearBoundary(t *testing.T) {
	// 2024-12-30 and 2025-01-02 fall in the same ISO week (2025-W01);
	// calendar-year grouping would split them and undercount.
	workouts := []models.Workout{
		workoutOn(date(2024, 12, 30)),
		workoutOn(date(2024, 12, 31)),
		workoutOn(date(2025, 1, 2)),
	}

	result := WeeklyConsistency(workouts, 2, 1)
	assert.True(t, result.Qualifies)
	assert.Equal(t, 1, result.ActiveWeeks)
}

func TestWeeklyConsistencyNoWorkouts(t *testing.T) {
	result := WeeklyConsistency(nil, 1, 1)
	assert.False(t, result.Qualifies)
	assert.Equal(t, 0, result.ActiveWeeks)
}

func TestWorkoutsPerWeek(t *testing.T) {
	m := WorkoutsPerWeek(12, date(2024, 1, 1), date(2024, 2, 26))
	assert.True(t, m.Defined)
	assert.Equal(t, 1.5, m.Value)
}

func TestWorkoutsPerWeekZeroWindow(t *testing.T) {
	m := WorkoutsPerWeek(3, date(2024, 1, 1), date(2024, 1, 1))
	assert.False(t, m.Defined)

	// Sub-week windows still divide by a fractional week count.
	m = WorkoutsPerWeek(7, date(2024, 1, 1), date(2024, 1, 4))
	assert.True(t, m.Defined)
	assert.InDelta(t, 16.33, m.Value, 0.001)
}

package metrics

import (
	"testing"

	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGoalProgressWeightLoss(t *testing.T) {
	goal := models.Goal{
		GoalType:     models.GoalWeightLoss,
		TargetValue:  75.0,
		CurrentValue: 78.5,
	}
	baseline := &models.BiometricRecord{WeightKg: fptr(78.5)}

	// Current equals the baseline, so no progress has been made yet.
	progress, err := GoalProgress(goal, baseline)
	assert.NoError(t, err)
	assert.True(t, progress.Defined)
	assert.Equal(t, 0.0, progress.Value)
}

func TestGoalProgressWeightLossPartial(t *testing.T) {
	goal := models.Goal{
		GoalType:     models.GoalWeightLoss,
		TargetValue:  75.0,
		CurrentValue: 77.8,
	}
	baseline := &models.BiometricRecord{WeightKg: fptr(78.5)}

	progress, err := GoalProgress(goal, baseline)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, progress.Value)
}

func TestGoalProgressMuscleGain(t *testing.T) {
	goal := models.Goal{
		GoalType:     models.GoalMuscleGain,
		TargetValue:  38.0,
		CurrentValue: 36.0,
	}
	baseline := &models.BiometricRecord{MuscleMassKg: fptr(34.0)}

	progress, err := GoalProgress(goal, baseline)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, progress.Value)
}

func TestGoalProgressEndurance(t *testing.T) {
	goal := models.Goal{
		GoalType:     models.GoalEndurance,
		TargetValue:  60.0,
		CurrentValue: 66.0,
	}
	baseline := &models.BiometricRecord{RestingHeartRate: iptr(72)}

	progress, err := GoalProgress(goal, baseline)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, progress.Value)
}

func TestGoalProgressMissingBaseline(t *testing.T) {
	// All three goal types must degrade to an undefined metric, never a
	// panic, when no biometric exists at the goal's start date.
	for _, goalType := range []string{models.GoalWeightLoss, models.GoalMuscleGain, models.GoalEndurance} {
		t.Run(goalType, func(t *testing.T) {
			progress, err := GoalProgress(models.Goal{GoalType: goalType}, nil)
			assert.ErrorIs(t, err, ErrMissingBaseline)
			assert.False(t, progress.Defined)
		})
	}
}

func TestGoalProgressBaselineMissingField(t *testing.T) {
	// A baseline record that lacks the field the goal type needs is as
	// useless as no baseline at all.
	goal := models.Goal{GoalType: models.GoalMuscleGain, TargetValue: 38, CurrentValue: 35}
	progress, err := GoalProgress(goal, &models.BiometricRecord{WeightKg: fptr(80)})
	assert.ErrorIs(t, err, ErrMissingBaseline)
	assert.False(t, progress.Defined)
}

func TestGoalProgressUnknownType(t *testing.T) {
	goal := models.Goal{GoalType: "Marathon", TargetValue: 1, CurrentValue: 0}
	progress, err := GoalProgress(goal, &models.BiometricRecord{WeightKg: fptr(80)})
	assert.ErrorIs(t, err, ErrUnknownGoalType)
	assert.False(t, progress.Defined)
}

func TestGoalProgressZeroDenominator(t *testing.T) {
	// Target equal to the start weight makes the denominator zero; that is
	// an undefined result, not an error.
	goal := models.Goal{
		GoalType:     models.GoalWeightLoss,
		TargetValue:  78.5,
		CurrentValue: 77.0,
	}
	progress, err := GoalProgress(goal, &models.BiometricRecord{WeightKg: fptr(78.5)})
	assert.NoError(t, err)
	assert.False(t, progress.Defined)
}

package metrics

import (
	"fittrack/internal/models"
)

// GoalProgress computes completion percentage for a goal against the
// biometric baseline recorded on the goal's exact start date. The formula
// dispatches on the goal type:
//
//	Weight Loss: (startWeight - current) / (startWeight - target) * 100
//	Muscle Gain: (current - startMuscle) / (target - startMuscle) * 100
//	Endurance:   (current - startHR) / (target - startHR) * 100
//
// A nil baseline (or a baseline missing the needed field) returns an
// undefined Metric with ErrMissingBaseline; an unknown goal type returns an
// undefined Metric with ErrUnknownGoalType. A zero denominator yields an
// undefined Metric with no error. The function never panics, so one bad goal
// cannot abort a batch report.
func GoalProgress(goal models.Goal, baseline *models.BiometricRecord) (Metric, error) {
	if baseline == nil {
		return Undefined(), ErrMissingBaseline
	}

	var start float64
	switch goal.GoalType {
	case models.GoalWeightLoss:
		if baseline.WeightKg == nil {
			return Undefined(), ErrMissingBaseline
		}
		start = *baseline.WeightKg
		return ratioPercent(start-goal.CurrentValue, start-goal.TargetValue), nil
	case models.GoalMuscleGain:
		if baseline.MuscleMassKg == nil {
			return Undefined(), ErrMissingBaseline
		}
		start = *baseline.MuscleMassKg
		return ratioPercent(goal.CurrentValue-start, goal.TargetValue-start), nil
	case models.GoalEndurance:
		if baseline.RestingHeartRate == nil {
			return Undefined(), ErrMissingBaseline
		}
		start = float64(*baseline.RestingHeartRate)
		return ratioPercent(goal.CurrentValue-start, goal.TargetValue-start), nil
	default:
		return Undefined(), ErrUnknownGoalType
	}
}

func ratioPercent(num, denom float64) Metric {
	if denom == 0 {
		return Undefined()
	}
	return Defined(Round2(num / denom * 100))
}

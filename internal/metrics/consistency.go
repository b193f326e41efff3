package metrics

import (
	"time"

	"fittrack/internal/models"
)

// ConsistencyResult reports weekly workout regularity over the supplied
// workouts.
type ConsistencyResult struct {
	Qualifies       bool `json:"qualifies"`
	ActiveWeeks     int  `json:"active_weeks"`
	QualifyingWeeks int  `json:"qualifying_weeks"`
}

type isoWeek struct {
	year int
	week int
}

// WeeklyConsistency groups workouts by ISO-8601 (year, week) so that
// workouts at year boundaries land in the correct week, counts the weeks
// holding strictly more than minPerWeek workouts, and qualifies when at
// least minWeeks such weeks exist.
func WeeklyConsistency(workouts []models.Workout, minPerWeek, minWeeks int) ConsistencyResult {
	counts := make(map[isoWeek]int)
	for _, w := range workouts {
		year, week := w.WorkoutDate.ISOWeek()
		counts[isoWeek{year, week}]++
	}

	qualifying := 0
	for _, n := range counts {
		if n > minPerWeek {
			qualifying++
		}
	}

	return ConsistencyResult{
		Qualifies:       qualifying >= minWeeks,
		ActiveWeeks:     len(counts),
		QualifyingWeeks: qualifying,
	}
}

// WorkoutsPerWeek averages a workout count over the [start, target] window.
// The window length in weeks is whole-days/7, kept fractional; a zero-length
// window yields an undefined Metric instead of dividing by zero.
func WorkoutsPerWeek(count int, start, target time.Time) Metric {
	weeks := float64(DaysBetween(start, target)) / 7
	if weeks <= 0 {
		return Undefined()
	}
	return Defined(Round2(float64(count) / weeks))
}

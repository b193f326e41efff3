// Package metrics computes derived fitness analytics (age, BMI, trends,
// progression, goal completion) from already-fetched record collections.
// Every function is pure: no I/O, no database access, no shared state.
package metrics

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrInvalidDate means a reference date precedes the recorded date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidHeight means a height of zero or less was supplied to a
	// computation that divides by it.
	ErrInvalidHeight = errors.New("height must be positive")
	// ErrUnsortedSeries means an input series violated its required
	// ascending date order.
	ErrUnsortedSeries = errors.New("series not ordered by date")
	// ErrEmptySeries means a computation that needs at least one
	// observation received none.
	ErrEmptySeries = errors.New("empty series")
	// ErrMismatchedSeries means paired series had different lengths.
	ErrMismatchedSeries = errors.New("series lengths differ")
	// ErrMissingBaseline means no biometric record exists at a goal's
	// start date, so there is no reference point for progress.
	ErrMissingBaseline = errors.New("no baseline biometric at goal start date")
	// ErrUnknownGoalType means the goal type is outside the supported set.
	ErrUnknownGoalType = errors.New("unknown goal type")
)

// Metric is an optional computed value. The zero value is undefined, which is
// distinct from a computed zero: ratio computations with a missing or zero
// denominator yield an undefined Metric instead of failing.
type Metric struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// Defined wraps v as a defined Metric.
func Defined(v float64) Metric {
	return Metric{Value: v, Defined: true}
}

// Undefined is the "could not compute" sentinel.
func Undefined() Metric {
	return Metric{}
}

// Observation is one dated numeric sample from a time series.
type Observation struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Round2 rounds half away from zero to two decimals, matching the
// DECIMAL(10,2) semantics of the record store.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DaysBetween returns the whole calendar days from a to b. Both arguments are
// truncated to UTC dates first, so time-of-day never shifts the span.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

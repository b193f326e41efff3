package metrics

import (
	"fmt"
	"math"
)

// ProgressionResult summarizes the change between the first and last
// observation of a series. PercentDelta is undefined when the first value is
// zero (the null-safe division the reports rely on).
type ProgressionResult struct {
	First        float64 `json:"first"`
	Last         float64 `json:"last"`
	FirstDate    string  `json:"first_date"`
	LastDate     string  `json:"last_date"`
	Delta        float64 `json:"delta"`
	PercentDelta Metric  `json:"percent_delta"`
	Days         int     `json:"days"`
}

// Progression computes first/last/delta/percent-delta over a date-ascending
// series. Returns ErrEmptySeries on empty input and ErrUnsortedSeries when
// the order is violated.
func Progression(series []Observation) (ProgressionResult, error) {
	if len(series) == 0 {
		return ProgressionResult{}, ErrEmptySeries
	}
	for i := 1; i < len(series); i++ {
		if series[i].Date.Before(series[i-1].Date) {
			return ProgressionResult{}, fmt.Errorf("%w: %s after %s",
				ErrUnsortedSeries,
				series[i].Date.Format("2006-01-02"),
				series[i-1].Date.Format("2006-01-02"))
		}
	}

	first := series[0]
	last := series[len(series)-1]

	result := ProgressionResult{
		First:     first.Value,
		Last:      last.Value,
		FirstDate: first.Date.Format("2006-01-02"),
		LastDate:  last.Date.Format("2006-01-02"),
		Delta:     Round2(last.Value - first.Value),
		Days:      DaysBetween(first.Date, last.Date),
	}
	if first.Value != 0 {
		result.PercentDelta = Defined(Round2((last.Value - first.Value) / first.Value * 100))
	}
	return result, nil
}

// ImprovementResult reports whether a metric improved enough between two
// observations.
type ImprovementResult struct {
	Qualifies   bool   `json:"qualifies"`
	SpanDays    int    `json:"span_days"`
	PercentGain Metric `json:"percent_gain"`
}

// PercentImprovement qualifies when the span between early and late covers
// at least minSpanDays and the relative gain exceeds minPercent. A zero
// early value leaves the gain undefined, which never qualifies.
func PercentImprovement(early, late Observation, minSpanDays int, minPercent float64) (ImprovementResult, error) {
	if late.Date.Before(early.Date) {
		return ImprovementResult{}, fmt.Errorf("%w: late observation %s precedes early %s",
			ErrInvalidDate,
			late.Date.Format("2006-01-02"),
			early.Date.Format("2006-01-02"))
	}

	result := ImprovementResult{SpanDays: DaysBetween(early.Date, late.Date)}
	if early.Value == 0 {
		return result, nil
	}

	ratio := (late.Value - early.Value) / early.Value
	result.PercentGain = Defined(Round2(ratio * 100))
	result.Qualifies = result.SpanDays >= minSpanDays && ratio > minPercent/100
	return result, nil
}

// Correlation computes the Pearson correlation coefficient over paired
// samples. Fewer than two pairs, or zero variance in either series, yields
// an undefined Metric. Mismatched lengths are a caller error.
func Correlation(xs, ys []float64) (Metric, error) {
	if len(xs) != len(ys) {
		return Undefined(), fmt.Errorf("%w: %d vs %d", ErrMismatchedSeries, len(xs), len(ys))
	}
	n := float64(len(xs))
	if len(xs) < 2 {
		return Undefined(), nil
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return Undefined(), nil
	}

	r := cov / math.Sqrt(varX*varY)
	return Defined(Round2(r)), nil
}

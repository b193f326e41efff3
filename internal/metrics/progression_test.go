package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgression(t *testing.T) {
	series := []Observation{
		{Date: date(2024, 1, 1), Value: 60},
		{Date: date(2024, 2, 1), Value: 65},
		{Date: date(2024, 3, 1), Value: 72},
	}

	result, err := Progression(series)
	assert.NoError(t, err)
	assert.Equal(t, 60.0, result.First)
	assert.Equal(t, 72.0, result.Last)
	assert.Equal(t, 12.0, result.Delta)
	assert.True(t, result.PercentDelta.Defined)
	assert.Equal(t, 20.0, result.PercentDelta.Value)
	assert.Equal(t, 60, result.Days)
}

func TestProgressionZeroFirstValue(t *testing.T) {
	series := []Observation{
		{Date: date(2024, 1, 1), Value: 0},
		{Date: date(2024, 2, 1), Value: 10},
	}

	result, err := Progression(series)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, result.Delta)
	assert.False(t, result.PercentDelta.Defined, "zero first value must leave percent undefined, not error")
}

func TestProgressionSinglePoint(t *testing.T) {
	result, err := Progression([]Observation{{Date: date(2024, 1, 1), Value: 50}})
	assert.NoError(t, err)
	assert.Equal(t, 50.0, result.First)
	assert.Equal(t, 50.0, result.Last)
	assert.Equal(t, 0.0, result.Delta)
	assert.Equal(t, 0, result.Days)
}

func TestProgressionEmpty(t *testing.T) {
	_, err := Progression(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestProgressionUnsorted(t *testing.T) {
	_, err := Progression([]Observation{
		{Date: date(2024, 2, 1), Value: 1},
		{Date: date(2024, 1, 1), Value: 2},
	})
	assert.ErrorIs(t, err, ErrUnsortedSeries)
}

func TestPercentImprovement(t *testing.T) {
	result, err := PercentImprovement(
		Observation{Date: date(2024, 1, 1), Value: 5.0},
		Observation{Date: date(2024, 3, 1), Value: 6.0},
		30, 10,
	)
	assert.NoError(t, err)
	assert.True(t, result.Qualifies)
	assert.Equal(t, 20.0, result.PercentGain.Value)
	assert.Equal(t, 60, result.SpanDays)
}

func TestPercentImprovementSpanTooShort(t *testing.T) {
	result, err := PercentImprovement(
		Observation{Date: date(2024, 1, 1), Value: 5.0},
		Observation{Date: date(2024, 1, 10), Value: 6.0},
		30, 10,
	)
	assert.NoError(t, err)
	assert.False(t, result.Qualifies)
}

func TestPercentImprovementZeroEarlyValue(t *testing.T) {
	result, err := PercentImprovement(
		Observation{Date: date(2024, 1, 1), Value: 0},
		Observation{Date: date(2024, 3, 1), Value: 6.0},
		0, 0,
	)
	assert.NoError(t, err)
	assert.False(t, result.Qualifies)
	assert.False(t, result.PercentGain.Defined)
}

func TestPercentImprovementReversedDates(t *testing.T) {
	_, err := PercentImprovement(
		Observation{Date: date(2024, 3, 1), Value: 5.0},
		Observation{Date: date(2024, 1, 1), Value: 6.0},
		0, 0,
	)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCorrelation(t *testing.T) {
	// Perfectly linear, negative slope.
	r, err := Correlation([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2})
	assert.NoError(t, err)
	assert.True(t, r.Defined)
	assert.Equal(t, -1.0, r.Value)
}

func TestCorrelationUndefinedCases(t *testing.T) {
	r, err := Correlation([]float64{1}, []float64{2})
	assert.NoError(t, err)
	assert.False(t, r.Defined)

	// Constant series has no variance to correlate against.
	r, err = Correlation([]float64{1, 2, 3}, []float64{5, 5, 5})
	assert.NoError(t, err)
	assert.False(t, r.Defined)
}

func TestCorrelationMismatchedLengths(t *testing.T) {
	_, err := Correlation([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrMismatchedSeries)
}

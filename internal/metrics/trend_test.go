package metrics

import (
	"testing"

	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTrendDeltas(t *testing.T) {
	series := []Observation{
		{Date: date(2024, 1, 1), Value: 78.5},
		{Date: date(2024, 1, 15), Value: 77.8},
		{Date: date(2024, 2, 20), Value: 77.8},
	}

	points, err := Trend(series)
	assert.NoError(t, err)
	assert.Len(t, points, 3)

	assert.Nil(t, points[0].Delta)
	assert.NotNil(t, points[1].Delta)
	assert.Equal(t, -0.7, *points[1].Delta)
	assert.Equal(t, 0.0, *points[2].Delta)
}

func TestTrendSingleObservation(t *testing.T) {
	points, err := Trend([]Observation{{Date: date(2024, 1, 1), Value: 80}})
	assert.NoError(t, err)
	assert.Len(t, points, 1)
	assert.Nil(t, points[0].Delta)
}

func TestTrendEmpty(t *testing.T) {
	points, err := Trend(nil)
	assert.NoError(t, err)
	assert.Empty(t, points)
}

func TestTrendUnsorted(t *testing.T) {
	_, err := Trend([]Observation{
		{Date: date(2024, 2, 1), Value: 78},
		{Date: date(2024, 1, 1), Value: 79},
	})
	assert.ErrorIs(t, err, ErrUnsortedSeries)
}

func TestLatestBiometricTieBreak(t *testing.T) {
	records := []models.BiometricRecord{
		{ID: 1, RecordDate: date(2024, 1, 1)},
		{ID: 3, RecordDate: date(2024, 1, 10)},
		{ID: 2, RecordDate: date(2024, 1, 10)},
	}

	latest := LatestBiometric(records)
	assert.Equal(t, uint(3), latest.ID)

	earliest := EarliestBiometric(records)
	assert.Equal(t, uint(1), earliest.ID)

	assert.Nil(t, LatestBiometric(nil))
}

func TestHeartRateDropQualifies(t *testing.T) {
	records := []models.BiometricRecord{
		{ID: 1, RecordDate: date(2024, 1, 1), RestingHeartRate: iptr(72)},
		{ID: 2, RecordDate: date(2024, 1, 20), RestingHeartRate: iptr(70)},
		{ID: 3, RecordDate: date(2024, 3, 1), RestingHeartRate: iptr(64)},
	}

	result := HeartRateDrop(records, 30, 5)
	assert.True(t, result.Qualifies)
	assert.Equal(t, 60, result.SpanDays)
	assert.Equal(t, 8, result.DropBpm)
	assert.Equal(t, uint(1), result.Earliest.ID)
	assert.Equal(t, uint(3), result.Latest.ID)
}

func TestHeartRateDropSpanTooShort(t *testing.T) {
	// The seed scenario: two records 14 days apart never qualify for a
	// 30-day minimum span, whatever the drop.
	records := []models.BiometricRecord{
		{ID: 1, RecordDate: date(2024, 1, 1), RestingHeartRate: iptr(80)},
		{ID: 2, RecordDate: date(2024, 1, 15), RestingHeartRate: iptr(60)},
	}

	result := HeartRateDrop(records, 30, 5)
	assert.False(t, result.Qualifies)
	assert.Equal(t, 14, result.SpanDays)
}

func TestHeartRateDropSingleRecordNeverQualifies(t *testing.T) {
	records := []models.BiometricRecord{
		{ID: 1, RecordDate: date(2024, 1, 1), RestingHeartRate: iptr(72)},
	}

	result := HeartRateDrop(records, 0, 0)
	assert.False(t, result.Qualifies)
	assert.Nil(t, result.Earliest)
}

func TestHeartRateDropStrictThreshold(t *testing.T) {
	records := []models.BiometricRecord{
		{ID: 1, RecordDate: date(2024, 1, 1), RestingHeartRate: iptr(70)},
		{ID: 2, RecordDate: date(2024, 3, 1), RestingHeartRate: iptr(65)},
	}

	// Drop of exactly 5 must not pass a "> 5" threshold.
	assert.False(t, HeartRateDrop(records, 30, 5).Qualifies)
	assert.True(t, HeartRateDrop(records, 30, 4).Qualifies)
}

func TestHeartRateDropIgnoresRecordsWithoutRate(t *testing.T) {
	records := []models.BiometricRecord{
		{ID: 1, RecordDate: date(2024, 1, 1), RestingHeartRate: iptr(72)},
		{ID: 2, RecordDate: date(2024, 6, 1)},
		{ID: 3, RecordDate: date(2024, 3, 1), RestingHeartRate: iptr(60)},
	}

	result := HeartRateDrop(records, 30, 5)
	assert.True(t, result.Qualifies)
	assert.Equal(t, uint(3), result.Latest.ID)
}

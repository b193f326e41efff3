package metrics

import (
	"fmt"

	"fittrack/internal/models"
)

// TrendPoint is one element of a trend series: the observation plus its
// change from the previous observation. Delta is nil on the first point.
type TrendPoint struct {
	Date  string   `json:"date"`
	Value float64  `json:"value"`
	Delta *float64 `json:"delta"`
}

// Trend turns a date-ascending series of observations into a lag-by-one
// delta series. Deltas are rounded to two decimals; gaps between dates do
// not matter, only the previous row does. Returns ErrUnsortedSeries when the
// input is not in ascending date order.
func Trend(series []Observation) ([]TrendPoint, error) {
	points := make([]TrendPoint, 0, len(series))
	for i, obs := range series {
		if i > 0 && obs.Date.Before(series[i-1].Date) {
			return nil, fmt.Errorf("%w: %s after %s",
				ErrUnsortedSeries,
				obs.Date.Format("2006-01-02"),
				series[i-1].Date.Format("2006-01-02"))
		}

		point := TrendPoint{
			Date:  obs.Date.Format("2006-01-02"),
			Value: obs.Value,
		}
		if i > 0 {
			delta := Round2(obs.Value - series[i-1].Value)
			point.Delta = &delta
		}
		points = append(points, point)
	}
	return points, nil
}

// EarliestBiometric returns the record with the lowest record date, ties
// broken by lowest ID (insertion order). Nil when records is empty.
func EarliestBiometric(records []models.BiometricRecord) *models.BiometricRecord {
	var earliest *models.BiometricRecord
	for i := range records {
		r := &records[i]
		if earliest == nil ||
			r.RecordDate.Before(earliest.RecordDate) ||
			(r.RecordDate.Equal(earliest.RecordDate) && r.ID < earliest.ID) {
			earliest = r
		}
	}
	return earliest
}

// LatestBiometric returns the record with the highest record date, ties
// broken by highest ID. Nil when records is empty.
func LatestBiometric(records []models.BiometricRecord) *models.BiometricRecord {
	var latest *models.BiometricRecord
	for i := range records {
		r := &records[i]
		if latest == nil ||
			r.RecordDate.After(latest.RecordDate) ||
			(r.RecordDate.Equal(latest.RecordDate) && r.ID > latest.ID) {
			latest = r
		}
	}
	return latest
}

// HeartRateDropResult reports whether a user's resting heart rate dropped
// enough between their globally earliest and latest measurements.
type HeartRateDropResult struct {
	Qualifies bool                    `json:"qualifies"`
	Earliest  *models.BiometricRecord `json:"earliest,omitempty"`
	Latest    *models.BiometricRecord `json:"latest,omitempty"`
	SpanDays  int                     `json:"span_days"`
	DropBpm   int                     `json:"drop_bpm"`
}

// HeartRateDrop compares the earliest and latest records carrying a resting
// heart rate. It qualifies when the span covers at least minSpanDays and the
// rate fell by strictly more than minDropBpm. A user with fewer than two
// usable records never qualifies.
func HeartRateDrop(records []models.BiometricRecord, minSpanDays, minDropBpm int) HeartRateDropResult {
	usable := make([]models.BiometricRecord, 0, len(records))
	for _, r := range records {
		if r.RestingHeartRate != nil {
			usable = append(usable, r)
		}
	}

	earliest := EarliestBiometric(usable)
	latest := LatestBiometric(usable)
	if earliest == nil || latest == nil || earliest.ID == latest.ID {
		return HeartRateDropResult{}
	}

	span := DaysBetween(earliest.RecordDate, latest.RecordDate)
	drop := *earliest.RestingHeartRate - *latest.RestingHeartRate
	return HeartRateDropResult{
		Qualifies: span >= minSpanDays && drop > minDropBpm,
		Earliest:  earliest,
		Latest:    latest,
		SpanDays:  span,
		DropBpm:   drop,
	}
}

package metrics

import (
	"fmt"
	"time"
)

// ComputeAge returns whole years elapsed between birth and asOf, flooring
// partial years. Returns ErrInvalidDate when birth is after asOf.
func ComputeAge(birth, asOf time.Time) (int, error) {
	if birth.After(asOf) {
		return 0, fmt.Errorf("%w: birth date %s is after reference date %s",
			ErrInvalidDate, birth.Format("2006-01-02"), asOf.Format("2006-01-02"))
	}

	age := asOf.Year() - birth.Year()
	// Birthday not reached yet this year.
	if asOf.Month() < birth.Month() ||
		(asOf.Month() == birth.Month() && asOf.Day() < birth.Day()) {
		age--
	}
	return age, nil
}

// ComputeBMI returns weight(kg) / height(m)^2 rounded to two decimals.
// A nil weight yields an undefined Metric; a non-positive height is a caller
// error and returns ErrInvalidHeight.
func ComputeBMI(heightCm float64, weightKg *float64) (Metric, error) {
	if heightCm <= 0 {
		return Undefined(), fmt.Errorf("%w: got %.2f cm", ErrInvalidHeight, heightCm)
	}
	if weightKg == nil {
		return Undefined(), nil
	}

	heightM := heightCm / 100
	return Defined(Round2(*weightKg / (heightM * heightM))), nil
}

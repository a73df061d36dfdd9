package mathutil

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundToUnit rounds value to the nearest multiple of unit.
// Ties go away from zero (150 -> 200, 250 -> 300, -150 -> -200), unlike
// math.RoundToEven. A non-positive unit returns value unchanged.
func RoundToUnit(value, unit float64) float64 {
	if unit <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}

	u := decimal.NewFromFloat(unit)
	// decimal.Round breaks ties away from zero
	return decimal.NewFromFloat(value).Div(u).Round(0).Mul(u).InexactFloat64()
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

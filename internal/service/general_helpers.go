package service

import "math"

// RoundingPrecision yields two decimal places for monetary values.
const RoundingPrecision = 100

// round rounds a monetary value to two decimal places. Rounding is applied
// only when shaping values for API responses, never during accumulation.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

package utils

import "math"

// RoundDecimal rounds a float64 value half away from zero to the specified
// number of decimal places. For example, RoundDecimal(0.123456, 4) returns 0.1235.
func RoundDecimal(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}

package utils

import "math"

// Cents converts a decimal amount to integer cents. Rounding (rather than
// truncation) keeps wire amounts like 29.99 exact.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Decimal converts integer cents back to a decimal amount
func Decimal(cents int64) float64 {
	return float64(cents) / 100
}

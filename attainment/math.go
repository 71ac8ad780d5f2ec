package attainment

import "math"

// SafeDivide is the single zero-denominator rule for every ratio in this
// package. A zero denominator resolves to def, never a NaN or an Inf.
func SafeDivide(numerator, denominator, def float64) float64 {
	if denominator == 0 {
		return def
	}
	return numerator / denominator
}

// ClampPercent keeps a percentage inside [0, 100]
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Round2 rounds to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package util holds the small numeric helpers shared by the equation-of-state
// engine and the property layer.
package util

import "math"

// SafeDiv returns n/d, or 0 when |d| is below 1e-300.
func SafeDiv(n, d float64) float64 {
	const eps = 1e-300
	if d > eps || d < -eps {
		return n / d
	}
	return 0
}

// RelDiff returns |a-b|/|b|, or |a-b| when b is zero.
func RelDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if b == 0 {
		return d
	}
	return d / math.Abs(b)
}

// Pow returns a^b for a > 0 and 0 otherwise.
func Pow(a, b float64) float64 {
	if a <= 0 {
		return 0
	}
	return math.Exp(b * math.Log(a))
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

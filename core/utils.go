package core

import "math"

// approxEqualTest checks float equality within tolerance. Used by tests.
func approxEqualTest(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) < tolerance
}

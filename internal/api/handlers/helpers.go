package handlers

import "math"

// allFinite reports whether every value is a finite number.
// NaN and ±Inf cannot round-trip through JSON, so the API rejects them.
func allFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// orDefault returns the pointed-to value, or def when the field was absent.
func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

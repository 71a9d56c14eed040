package service

import "math"

// round rounds v to places decimals with halves going toward +Inf,
// so -0.125 becomes -0.12 and 0.125 becomes 0.13.
func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Floor(v*p+0.5) / p
}

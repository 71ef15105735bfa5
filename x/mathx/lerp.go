package mathx

import "math"

// Lerp blends a towards b by t, where t is clamped to [0,1].
// t<=0 returns a and t>=1 returns b exactly; in between the result never
// leaves the segment [a, b].
func Lerp(a, b, t float64) float64 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + t*(b-a)
}

// RoundU16 rounds x to the nearest integer and saturates to [0, top].
func RoundU16(x float64, top uint16) uint16 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	r := math.Round(x)
	if r >= float64(top) {
		return top
	}
	return uint16(r)
}

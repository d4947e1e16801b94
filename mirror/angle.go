package mirror

import "math"

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad / math.Pi * 180
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg / 180 * math.Pi
}

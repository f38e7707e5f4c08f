package math

import "github.com/chewxy/math32"

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float32) float32 {
	return radians * 180 / math32.Pi
}

package game

import "math"

// Magnitude returns the Euclidean magnitude of a raw accelerometer sample.
// At rest this reads about 1000 milli-g from gravity alone.
func Magnitude(x, y, z int) float64 {
	return math.Sqrt(float64(x*x + y*y + z*z))
}

// ShouldMove reports whether a sample is energetic enough to count as a
// step. Strictly greater than the threshold: exactly 1200 does not move.
// This is an instantaneous per-tick test with no debounce, so a sustained
// shake keeps the player walking every tick it stays above threshold.
func ShouldMove(x, y, z int) bool {
	return Magnitude(x, y, z) > MoveThreshold
}

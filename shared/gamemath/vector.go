package gamemath

import "math"

// Normalize returns the unit vector of (x, y). ok is false for a zero vector.
func Normalize(x, y float64) (nx, ny float64, ok bool) {
	length := math.Hypot(x, y)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return 0, 0, false
	}
	return x / length, y / length, true
}

// SeekVelocity returns a velocity of the given speed from (fromX, fromY)
// towards (toX, toY). It is zero when both points coincide.
func SeekVelocity(fromX, fromY, toX, toY, speed float64) (vx, vy float64) {
	dx, dy, ok := Normalize(toX-fromX, toY-fromY)
	if !ok {
		return 0, 0
	}
	return dx * speed, dy * speed
}

// Clamp constrains value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

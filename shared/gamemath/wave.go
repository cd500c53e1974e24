package gamemath

import "math"

// WaveEnemyCount returns the number of enemies spawned by wave index:
// floor(log_base(index) + baseCount). An index of 0 is treated as 1.
func WaveEnemyCount(index uint32, logBase, baseCount float64) int {
	if index == 0 {
		index = 1
	}
	n := math.Log(float64(index))/math.Log(logBase) + baseCount
	if n < 0 {
		return 0
	}
	return int(math.Floor(n))
}

// SpawnRadius returns the radius of the circle enemies spawn on: half of the
// larger window dimension.
func SpawnRadius(width, height float64) float64 {
	return math.Max(width, height) / 2
}

// RingPoint returns the point at angle theta on the circle around (cx, cy).
func RingPoint(cx, cy, radius, theta float64) (x, y float64) {
	return cx + radius*math.Cos(theta), cy + radius*math.Sin(theta)
}

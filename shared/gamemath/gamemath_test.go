package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaveEnemyCount(t *testing.T) {
	cases := []struct {
		index uint32
		want  int
	}{
		{0, 10}, // clamped to index 1
		{1, 10},
		{2, 17},
		{10, 34},
		{100, 58},
		{1000, 82},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, WaveEnemyCount(c.index, 1.1, 10), "index %d", c.index)
	}
}

func TestWaveEnemyCountIsMonotonic(t *testing.T) {
	prev := WaveEnemyCount(1, 1.1, 10)
	for i := uint32(2); i < 5000; i++ {
		n := WaveEnemyCount(i, 1.1, 10)
		assert.GreaterOrEqual(t, n, prev, "index %d", i)
		prev = n
	}
}

func TestSubtractHealth(t *testing.T) {
	cases := []struct {
		name            string
		current, amount uint32
		want            uint32
	}{
		{"partial", 16, 8, 8},
		{"exact", 8, 8, 0},
		{"overkill", 3, 100, 0},
		{"zero_amount", 5, 0, 5},
		{"already_dead", 0, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SubtractHealth(c.current, c.amount))
		})
	}
}

func TestRingPoint(t *testing.T) {
	r := SpawnRadius(1280, 720)
	assert.Equal(t, 640.0, r)

	for _, theta := range []float64{0, math.Pi / 3, math.Pi, 1.5 * math.Pi, 6.0} {
		x, y := RingPoint(640, 360, r, theta)
		assert.InDelta(t, r, math.Hypot(x-640, y-360), 1e-9)
	}

	x, y := RingPoint(10, 20, 5, 0)
	assert.InDelta(t, 15, x, 1e-9)
	assert.InDelta(t, 20, y, 1e-9)
}

func TestNormalize(t *testing.T) {
	x, y, ok := Normalize(3, 4)
	assert.True(t, ok)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	_, _, ok = Normalize(0, 0)
	assert.False(t, ok)
}

func TestSeekVelocity(t *testing.T) {
	vx, vy := SeekVelocity(0, 0, 10, 0, 100)
	assert.InDelta(t, 100, vx, 1e-9)
	assert.InDelta(t, 0, vy, 1e-9)

	vx, vy = SeekVelocity(5, 5, 5, 5, 100)
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}

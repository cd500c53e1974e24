package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerOnce(t *testing.T) {
	timer := NewTimer(100*time.Millisecond, TimerOnce)

	assert.False(t, timer.Tick(60*time.Millisecond))
	assert.Equal(t, 40*time.Millisecond, timer.Remaining())
	assert.True(t, timer.Tick(60*time.Millisecond), "fires on the crossing tick")
	assert.True(t, timer.Finished())
	assert.False(t, timer.Tick(60*time.Millisecond), "fires only once")
	assert.Zero(t, timer.Remaining())

	timer.Reset()
	assert.Equal(t, 100*time.Millisecond, timer.Remaining())
	assert.False(t, timer.Finished())
}

func TestTimerRepeating(t *testing.T) {
	timer := NewTimer(time.Second, TimerRepeating)

	fired := 0
	for i := 0; i < 200; i++ {
		if timer.Tick(10 * time.Millisecond) {
			fired++
		}
	}
	assert.Equal(t, 2, fired)
	assert.False(t, timer.Finished(), "repeating timers never stay finished")

	assert.True(t, timer.Tick(5*time.Second), "one fire per tick regardless of overshoot")
	assert.Equal(t, time.Second, timer.Remaining(), "restarts at the full period")
}

func TestTimerIgnoresNegativeDelta(t *testing.T) {
	timer := NewTimer(time.Second, TimerOnce)
	assert.False(t, timer.Tick(-time.Second))
	assert.Equal(t, time.Second, timer.Remaining())
}

func TestHealthApplyDamage(t *testing.T) {
	h := NewHealth(16)
	assert.False(t, h.ApplyDamage(8))
	assert.Equal(t, uint32(8), h.Current)
	assert.InDelta(t, 0.5, h.Ratio(), 1e-9)

	assert.True(t, h.ApplyDamage(100))
	assert.Equal(t, uint32(0), h.Current)
	assert.Equal(t, uint32(16), h.Total)
	assert.True(t, h.IsDead())
}

func TestHitFeedbackRefresh(t *testing.T) {
	fb := NewHitFeedback(100*time.Millisecond, 3)
	fb.Timer.Tick(70 * time.Millisecond)
	fb.Fade.Update(0.07)
	assert.Equal(t, 30*time.Millisecond, fb.Remaining())

	fb.Fresh = false
	fb.Refresh()
	assert.Equal(t, 100*time.Millisecond, fb.Remaining())
	assert.True(t, fb.Fresh)
	current, finished := fb.Fade.Update(0)
	assert.False(t, finished)
	assert.InDelta(t, 3, current, 1e-6)
}

func TestContactQueueDrain(t *testing.T) {
	var q ContactQueueData
	q.Push(ContactPair{A: 1, B: 2}, ContactPair{A: 3, B: 4})

	batch := q.Drain()
	assert.Equal(t, []ContactPair{{A: 1, B: 2}, {A: 3, B: 4}}, batch)
	assert.Empty(t, q.Pending)

	q.Push(ContactPair{A: 5, B: 6})
	assert.Equal(t, []ContactPair{{A: 5, B: 6}}, q.Drain())
	assert.Empty(t, q.Drain(), "nothing pushed since the last drain")
}

func TestContactPair(t *testing.T) {
	p := ContactPair{A: 7, B: 9}
	assert.True(t, p.Involves(7))
	assert.True(t, p.Involves(9))
	assert.False(t, p.Involves(8))
	assert.Equal(t, p.B, p.Other(7))
	assert.Equal(t, p.A, p.Other(9))
}

package components

import "time"

type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer accumulates elapsed simulation time towards Duration.
// A repeating timer restarts from zero on the tick it fires; a one-shot
// timer stays finished until Reset.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode
}

func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// Tick advances the timer by dt and reports whether it fired on this tick.
func (t *Timer) Tick(dt time.Duration) bool {
	if t.Mode == TimerOnce && t.Finished() {
		return false
	}
	if dt > 0 {
		t.Elapsed += dt
	}
	if t.Elapsed < t.Duration {
		return false
	}
	if t.Mode == TimerRepeating {
		t.Elapsed = 0
	} else {
		t.Elapsed = t.Duration
	}
	return true
}

func (t *Timer) Finished() bool {
	return t.Mode == TimerOnce && t.Elapsed >= t.Duration
}

func (t *Timer) Remaining() time.Duration {
	if t.Elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.Elapsed
}

func (t *Timer) Reset() {
	t.Elapsed = 0
}

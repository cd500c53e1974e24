package simulation

import (
	"context"
	"log"
	"time"
)

// Loop drives a Simulation at a fixed tick rate.
type Loop struct {
	sim      *Simulation
	tickRate int

	// OnTick runs after every tick with the total simulated time so far.
	OnTick func(elapsed time.Duration)
}

func NewLoop(sim *Simulation, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		sim:      sim,
		tickRate: tickRate,
	}
}

// Period is the simulated time of one tick.
func (l *Loop) Period() time.Duration {
	return time.Second / time.Duration(l.tickRate)
}

// Run ticks in real time until ctx is done, passing the measured time
// between ticks as the delta.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.Period())
	defer ticker.Stop()

	log.Printf("Simulation loop started at %d ticks/second", l.tickRate)

	var elapsed time.Duration
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Println("Simulation loop stopped")
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			elapsed += dt
			l.tick(dt, elapsed)
		}
	}
}

// RunFor ticks as fast as possible with a fixed delta until duration of
// simulated time has passed or ctx is done. It returns the simulated time.
func (l *Loop) RunFor(ctx context.Context, duration time.Duration) time.Duration {
	dt := l.Period()
	var elapsed time.Duration

	log.Printf("Simulating %s at %d ticks/second", duration, l.tickRate)
	for elapsed < duration {
		if ctx.Err() != nil {
			log.Println("Simulation loop stopped")
			break
		}
		elapsed += dt
		l.tick(dt, elapsed)
	}
	return elapsed
}

func (l *Loop) tick(dt, elapsed time.Duration) {
	l.sim.Tick(dt)
	if l.OnTick != nil {
		l.OnTick(elapsed)
	}
}

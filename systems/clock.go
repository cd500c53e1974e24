package systems

import (
	"time"

	"github.com/automoto/spellwave/components"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceClock records the elapsed time for the tick about to run.
// Negative deltas are treated as zero.
func AdvanceClock(ecs *ecs.ECS, dt time.Duration) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	if dt < 0 {
		dt = 0
	}
	clock := components.Clock.Get(entry)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Ticks++
}

// Delta returns the current tick's elapsed time.
func Delta(ecs *ecs.ECS) time.Duration {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

func deltaSeconds(ecs *ecs.ECS) float64 {
	return Delta(ecs).Seconds()
}

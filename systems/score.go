package systems

import (
	"github.com/automoto/spellwave/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ReconcileScore applies the deaths recorded this tick to the score.
func ReconcileScore(ecs *ecs.ECS) {
	EnemyDiedEvent.ProcessEvents(ecs.World)
}

// FlushEvents delivers every remaining queued event.
func FlushEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

// Score returns the current score, or 0 when the world has none.
func Score(w donburi.World) uint64 {
	entry, ok := components.Score.First(w)
	if !ok {
		return 0
	}
	return components.Score.Get(entry).Value
}

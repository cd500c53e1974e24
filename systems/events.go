package systems

import (
	"log"

	"github.com/automoto/spellwave/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EnemyDied is published once per enemy, on the tick its health reached zero.
type EnemyDied struct {
	Enemy donburi.Entity
	Wave  uint32
}

// WaveSpawned is published after each wave burst.
type WaveSpawned struct {
	Index uint32
	Count int
}

var (
	EnemyDiedEvent   = events.NewEventType[EnemyDied]()
	WaveSpawnedEvent = events.NewEventType[WaveSpawned]()
)

// RegisterEventHandlers subscribes the score counter and wave logging to the
// world. It must run once per world before the first tick.
func RegisterEventHandlers(w donburi.World) {
	EnemyDiedEvent.Subscribe(w, onEnemyDied)
	WaveSpawnedEvent.Subscribe(w, onWaveSpawned)
}

func onEnemyDied(w donburi.World, e EnemyDied) {
	scoreEntry, ok := components.Score.First(w)
	if !ok {
		return
	}
	components.Score.Get(scoreEntry).Value++
}

func onWaveSpawned(w donburi.World, e WaveSpawned) {
	log.Printf("wave %d: spawned %d enemies", e.Index, e.Count)
}

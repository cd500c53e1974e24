package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/shared/gamemath"
	"github.com/automoto/spellwave/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWave advances the wave timer and spawns a burst when it fires.
// The timer restarts at its full period, so a single tick spawns at most one
// wave however long it was.
func UpdateWave(ecs *ecs.ECS) {
	entry, ok := components.Wave.First(ecs.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(entry)
	if wave.Timer.Tick(Delta(ecs)) {
		SpawnWave(ecs, wave)
	}
}

// SpawnWave increments the wave index and places that wave's enemies on the
// circle around the window centre. It returns the new enemies.
func SpawnWave(ecs *ecs.ECS, wave *components.WaveData) []*donburi.Entry {
	if wave.Index < math.MaxUint32 {
		wave.Index++
	}
	count := gamemath.WaveEnemyCount(wave.Index, cfg.Wave.LogBase, cfg.Wave.BaseCount)

	width, height := windowSize(ecs)
	cx, cy := width/2, height/2
	radius := gamemath.SpawnRadius(width, height)

	spawned := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		theta := randomAngle(wave.Rand)
		x, y := gamemath.RingPoint(cx, cy, radius, theta)
		spawned = append(spawned, factory.CreateEnemy(ecs, x, y, wave.Index))
	}

	WaveSpawnedEvent.Publish(ecs.World, WaveSpawned{Index: wave.Index, Count: count})
	return spawned
}

func randomAngle(r *rand.Rand) float64 {
	if r == nil {
		return rand.Float64() * 2 * math.Pi
	}
	return r.Float64() * 2 * math.Pi
}

// windowSize reads the window singleton, falling back to the configured size.
func windowSize(ecs *ecs.ECS) (width, height float64) {
	if entry, ok := components.Window.First(ecs.World); ok {
		w := components.Window.Get(entry)
		return w.Width, w.Height
	}
	return float64(cfg.C.Width), float64(cfg.C.Height)
}

package factory

import (
	"math/rand/v2"

	"github.com/automoto/spellwave/archetypes"
	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWave creates the wave spawner singleton at index 0.
func CreateWave(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	wave := archetypes.Wave.Spawn(ecs)
	components.Wave.SetValue(wave, components.WaveData{
		Index: 0,
		Timer: components.NewTimer(cfg.Wave.Period, components.TimerRepeating),
		Rand:  rng,
	})
	return wave
}

func CreateScore(ecs *ecs.ECS) *donburi.Entry {
	score := archetypes.Score.Spawn(ecs)
	components.Score.SetValue(score, components.ScoreData{})
	return score
}

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{})
	return clock
}

func CreateWindow(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	window := archetypes.Window.Spawn(ecs)
	components.Window.SetValue(window, components.WindowData{Width: width, Height: height})
	return window
}

func CreateContactQueue(ecs *ecs.ECS) *donburi.Entry {
	queue := archetypes.ContactQueue.Spawn(ecs)
	components.ContactQueue.SetValue(queue, components.ContactQueueData{})
	return queue
}

func CreateCastQueue(ecs *ecs.ECS) *donburi.Entry {
	queue := archetypes.CastQueue.Spawn(ecs)
	components.CastQueue.SetValue(queue, components.CastQueueData{})
	return queue
}

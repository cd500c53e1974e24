package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/systems/factory"
	"github.com/automoto/spellwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const testTick = 10 * time.Millisecond

var projectiles = donburi.NewQuery(filter.Contains(tags.Projectile))

// newTestECS returns a world with every singleton and the player at the
// window centre, but no stages.
func newTestECS(t *testing.T, seed uint64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	world := donburi.NewWorld()
	e := ecs.NewECS(world)
	RegisterEventHandlers(world)

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	factory.CreateWindow(e, float64(cfg.C.Width), float64(cfg.C.Height))
	factory.CreateClock(e)
	factory.CreateScore(e)
	factory.CreateContactQueue(e)
	factory.CreateCastQueue(e)
	factory.CreateWave(e, rand.New(rand.NewPCG(seed, seed)))
	player := factory.CreatePlayer(e, float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)
	return e, player
}

// step advances the clock by dt and runs the given stages in order.
func step(e *ecs.ECS, dt time.Duration, stages ...func(*ecs.ECS)) {
	AdvanceClock(e, dt)
	for _, s := range stages {
		s(e)
	}
}

// combatStages is the core tick without any collaborators.
func combatStages() []func(*ecs.ECS) {
	return []func(*ecs.ECS){
		DrainContacts,
		ResolveContactDamage,
		ResolveProjectileContacts,
		FlushDespawns,
		UpdateHitFeedback,
		ReconcileScore,
	}
}

func moveTo(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry)
	obj.SetCenter(x, y)
	obj.Update()
}

func health(entry *donburi.Entry) uint32 {
	return components.Health.Get(entry).Current
}

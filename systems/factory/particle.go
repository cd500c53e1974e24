package factory

import (
	"github.com/automoto/spellwave/archetypes"
	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateAuraParticle spawns a cosmetic particle. It is not added to the
// collision space so it never produces contacts.
func CreateAuraParticle(ecs *ecs.ECS, x, y, vx, vy float64) *donburi.Entry {
	p := archetypes.Particle.Spawn(ecs)

	size := cfg.Aura.Size
	components.Object.Set(p, &components.ObjectData{
		Object: resolv.NewObject(x-size/2, y-size/2, size, size),
	})
	components.Velocity.SetValue(p, math.Vec2{X: vx, Y: vy})
	components.AutoDestroy.SetValue(p, components.AutoDestroyData{
		Timer: components.NewTimer(cfg.Aura.Lifetime, components.TimerOnce),
	})

	return p
}

package systems

import (
	"math"

	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/shared/gamemath"
	"github.com/automoto/spellwave/systems/factory"
	"github.com/automoto/spellwave/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAura emits a ring of cosmetic particles around the player on every
// aura period.
func UpdateAura(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	p := components.Player.Get(player)
	if !p.AuraTimer.Tick(Delta(ecs)) {
		return
	}

	cx, cy := components.Object.Get(player).Center()
	count := cfg.Aura.Count
	for i := 0; i < count; i++ {
		theta := 2 * math.Pi * float64(i) / float64(count)
		x, y := gamemath.RingPoint(cx, cy, cfg.Aura.Radius, theta)
		vx, vy := gamemath.RingPoint(0, 0, cfg.Aura.Speed, theta)
		factory.CreateAuraParticle(ecs, x, y, vx, vy)
	}
}

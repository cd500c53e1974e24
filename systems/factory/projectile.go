package factory

import (
	"github.com/automoto/spellwave/archetypes"
	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a cast projectile at the owner's centre travelling
// along dir, which must be a unit vector.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, dir math.Vec2) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	startX, startY := components.Object.Get(owner).Center()
	size := cfg.Spell.Radius * 2
	obj := resolv.NewObject(startX-size/2, startY-size/2, size, size, tags.ResolvProjectile)
	obj.Data = p
	components.Object.Set(p, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Projectile.SetValue(p, components.ProjectileData{
		Damage:    cfg.Spell.Damage,
		Direction: dir,
		Owner:     owner.Entity(),
	})
	components.Velocity.SetValue(p, math.Vec2{
		X: dir.X * cfg.Spell.Speed,
		Y: dir.Y * cfg.Spell.Speed,
	})

	return p
}

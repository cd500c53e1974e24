package systems

import (
	"github.com/automoto/spellwave/components"
	"github.com/automoto/spellwave/shared/gamemath"
	"github.com/automoto/spellwave/systems/factory"
	"github.com/automoto/spellwave/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// QueueCast records a cast towards dir. It is consumed on the next tick.
func QueueCast(ecs *ecs.ECS, dir math.Vec2) {
	entry, ok := components.CastQueue.First(ecs.World)
	if !ok {
		return
	}
	q := components.CastQueue.Get(entry)
	q.Pending = append(q.Pending, components.CastEvent{Direction: dir})
}

// UpdateCasts turns queued casts into projectiles leaving the player's centre.
// Casts with no direction or with no live player are dropped.
func UpdateCasts(ecs *ecs.ECS) {
	entry, ok := components.CastQueue.First(ecs.World)
	if !ok {
		return
	}
	q := components.CastQueue.Get(entry)
	pending := q.Pending
	q.Pending = q.Pending[:0]

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	for _, cast := range pending {
		x, y, ok := gamemath.Normalize(cast.Direction.X, cast.Direction.Y)
		if !ok {
			continue
		}
		factory.CreateProjectile(ecs, player, math.Vec2{X: x, Y: y})
	}
}

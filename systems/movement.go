package systems

import (
	"math"

	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/shared/gamemath"
	"github.com/automoto/spellwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

var movingBodies = donburi.NewQuery(filter.And(
	filter.Contains(components.Object, components.Velocity),
	filter.Not(filter.Contains(tags.Despawn)),
))

// UpdateEnemySeek points every enemy at the player's centre.
func UpdateEnemySeek(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	var px, py float64
	if ok {
		px, py = components.Object.Get(player).Center()
	}

	liveEnemies.Each(ecs.World, func(e *donburi.Entry) {
		vel := components.Velocity.Get(e)
		if !ok {
			*vel = dmath.Vec2{}
			return
		}
		ex, ey := components.Object.Get(e).Center()
		vel.X, vel.Y = gamemath.SeekVelocity(ex, ey, px, py, cfg.Enemy.SeekSpeed)
	})
}

// SetPlayerDestination starts the player travelling towards (x, y), clamped
// to the window.
func SetPlayerDestination(ecs *ecs.ECS, x, y float64) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	width, height := windowSize(ecs)
	half := components.Object.Get(player).W / 2

	p := components.Player.Get(player)
	p.Destination = dmath.Vec2{
		X: gamemath.Clamp(x, half, math.Max(half, width-half)),
		Y: gamemath.Clamp(y, half, math.Max(half, height-half)),
	}
	p.Travelling = true
}

// UpdatePlayerTravel sets the player's velocity towards its destination and
// stops it once it is within the arrival radius.
func UpdatePlayerTravel(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	p := components.Player.Get(player)
	vel := components.Velocity.Get(player)
	if !p.Travelling {
		*vel = dmath.Vec2{}
		return
	}

	x, y := components.Object.Get(player).Center()
	dist := math.Hypot(p.Destination.X-x, p.Destination.Y-y)
	if dist <= cfg.Player.ArrivalRadius {
		p.Travelling = false
		*vel = dmath.Vec2{}
		return
	}

	speed := cfg.Player.MoveSpeed
	if dt := deltaSeconds(ecs); dt > 0 && speed*dt > dist {
		speed = dist / dt
	}
	vel.X, vel.Y = gamemath.SeekVelocity(x, y, p.Destination.X, p.Destination.Y, speed)
}

// UpdateMovement integrates velocities into positions, keeps the player in
// the window, and tombstones projectiles that left the arena.
func UpdateMovement(ecs *ecs.ECS) {
	dt := deltaSeconds(ecs)
	width, height := windowSize(ecs)
	margin := cfg.Spell.CullMargin

	var culled []*donburi.Entry
	movingBodies.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		vel := components.Velocity.Get(e)
		obj.X += vel.X * dt
		obj.Y += vel.Y * dt

		if e.HasComponent(tags.Player) {
			obj.X = gamemath.Clamp(obj.X, 0, math.Max(0, width-obj.W))
			obj.Y = gamemath.Clamp(obj.Y, 0, math.Max(0, height-obj.H))
		}

		if e.HasComponent(tags.Projectile) {
			cx, cy := obj.Center()
			if cx < -margin || cx > width+margin || cy < -margin || cy > height+margin {
				culled = append(culled, e)
			}
		}

		if obj.Space != nil {
			obj.Update()
		}
	})

	for _, e := range culled {
		Tombstone(e)
	}
}

package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/systems/factory"
	"github.com/automoto/spellwave/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

var particles = donburi.NewQuery(filter.Contains(tags.Particle))

func TestCastSpawnsProjectileAtPlayer(t *testing.T) {
	e, player := newTestECS(t, 1)

	QueueCast(e, dmath.Vec2{X: 3, Y: 4})
	QueueCast(e, dmath.Vec2{})
	step(e, testTick, UpdateCasts)

	require.Equal(t, 1, projectiles.Count(e.World), "zero-length casts are ignored")
	p, ok := tags.Projectile.First(e.World)
	require.True(t, ok)

	px, py := components.Object.Get(player).Center()
	x, y := components.Object.Get(p).Center()
	assert.InDelta(t, px, x, 1e-9)
	assert.InDelta(t, py, y, 1e-9)

	data := components.Projectile.Get(p)
	assert.Equal(t, uint32(8), data.Damage)
	assert.Equal(t, player.Entity(), data.Owner)
	assert.InDelta(t, 0.6, data.Direction.X, 1e-9)
	assert.InDelta(t, 0.8, data.Direction.Y, 1e-9)

	vel := components.Velocity.Get(p)
	assert.InDelta(t, 180, vel.X, 1e-9)
	assert.InDelta(t, 240, vel.Y, 1e-9)

	step(e, testTick, UpdateCasts)
	assert.Equal(t, 1, projectiles.Count(e.World), "casts are consumed once")
}

func TestCastWithoutPlayerIsDropped(t *testing.T) {
	e, player := newTestECS(t, 1)
	e.World.Remove(player.Entity())

	QueueCast(e, dmath.Vec2{X: 1})
	step(e, testTick, UpdateCasts)
	assert.Zero(t, projectiles.Count(e.World))
}

func TestProjectileTravelsAndIsCulled(t *testing.T) {
	e, player := newTestECS(t, 1)
	QueueCast(e, dmath.Vec2{X: 1})
	step(e, testTick, UpdateCasts)
	p, ok := tags.Projectile.First(e.World)
	require.True(t, ok)

	px, _ := components.Object.Get(player).Center()
	step(e, 100*time.Millisecond, UpdateMovement)
	x, _ := components.Object.Get(p).Center()
	assert.InDelta(t, px+30, x, 1e-9)

	// 640px to the edge plus the cull margin at 300px/s
	step(e, 3*time.Second, UpdateMovement, FlushDespawns)
	assert.False(t, p.Valid())
}

func TestEnemySeeksPlayer(t *testing.T) {
	e, player := newTestECS(t, 1)
	px, py := components.Object.Get(player).Center()
	enemy := factory.CreateEnemy(e, px-300, py, 1)

	step(e, testTick, UpdateEnemySeek)
	vel := components.Velocity.Get(enemy)
	assert.InDelta(t, cfg.Enemy.SeekSpeed, vel.X, 1e-9)
	assert.InDelta(t, 0, vel.Y, 1e-9)

	step(e, time.Second, UpdateMovement)
	x, _ := components.Object.Get(enemy).Center()
	assert.InDelta(t, px-200, x, 1e-9)
}

func TestPlayerTravelStopsAtDestination(t *testing.T) {
	e, player := newTestECS(t, 1)
	px, py := components.Object.Get(player).Center()

	SetPlayerDestination(e, px+60, py)
	for i := 0; i < 100; i++ {
		step(e, 10*time.Millisecond, UpdatePlayerTravel, UpdateMovement)
	}

	x, y := components.Object.Get(player).Center()
	assert.InDelta(t, px+60, x, cfg.Player.ArrivalRadius)
	assert.InDelta(t, py, y, 1e-9)

	step(e, 10*time.Millisecond, UpdatePlayerTravel)
	assert.False(t, components.Player.Get(player).Travelling)
	assert.Zero(t, components.Velocity.Get(player).X)
}

func TestPlayerConfinedToWindow(t *testing.T) {
	e, player := newTestECS(t, 1)

	SetPlayerDestination(e, -500, -500)
	dest := components.Player.Get(player).Destination
	half := cfg.Player.Size / 2
	assert.Equal(t, half, dest.X)
	assert.Equal(t, half, dest.Y)

	components.Velocity.SetValue(player, dmath.Vec2{X: -1e6, Y: 1e6})
	step(e, time.Second, UpdateMovement)
	obj := components.Object.Get(player)
	assert.Zero(t, obj.X)
	assert.Equal(t, float64(cfg.C.Height)-obj.H, obj.Y)
}

func TestAuraRing(t *testing.T) {
	e, player := newTestECS(t, 1)
	px, py := components.Object.Get(player).Center()

	step(e, 500*time.Millisecond, UpdateAura)
	assert.Zero(t, particles.Count(e.World))

	step(e, 500*time.Millisecond, UpdateAura)
	require.Equal(t, cfg.Aura.Count, particles.Count(e.World))

	particles.Each(e.World, func(entry *donburi.Entry) {
		x, y := components.Object.Get(entry).Center()
		assert.InDelta(t, cfg.Aura.Radius, math.Hypot(x-px, y-py), 1e-9)
		vel := components.Velocity.Get(entry)
		assert.InDelta(t, cfg.Aura.Speed, math.Hypot(vel.X, vel.Y), 1e-9)
	})

	step(e, 500*time.Millisecond, UpdateAutoDestroy)
	assert.Equal(t, cfg.Aura.Count, particles.Count(e.World))
	step(e, 100*time.Millisecond, UpdateAutoDestroy)
	assert.Zero(t, particles.Count(e.World))
}

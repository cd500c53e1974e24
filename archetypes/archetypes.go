package archetypes

import (
	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Velocity,
		components.Tint,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Velocity,
		components.Tint,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Velocity,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Object,
		components.Velocity,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	Wave = newArchetype(
		components.Wave,
	)
	Score = newArchetype(
		components.Score,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Window = newArchetype(
		components.Window,
	)
	ContactQueue = newArchetype(
		components.ContactQueue,
	)
	CastQueue = newArchetype(
		components.CastQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components[:len(a.components):len(a.components)], cs...)...,
	))
	return e
}

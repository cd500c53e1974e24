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

// CreateEnemy spawns a fully initialised enemy centred on (x, y): full
// health, zero velocity, neutral tint.
func CreateEnemy(ecs *ecs.ECS, x, y float64, wave uint32) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	size := cfg.Enemy.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.Set(enemy, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{Wave: wave})
	components.Health.SetValue(enemy, components.NewHealth(cfg.Enemy.Health))
	components.Velocity.SetValue(enemy, math.Vec2{})
	components.Tint.SetValue(enemy, components.NeutralTint)

	return enemy
}

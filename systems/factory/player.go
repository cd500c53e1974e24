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

// CreatePlayer spawns the player centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.Set(player, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Destination: math.Vec2{X: x, Y: y},
		AuraTimer:   components.NewTimer(cfg.Aura.Period, components.TimerRepeating),
	})
	components.Health.SetValue(player, components.NewHealth(cfg.Player.Health))
	components.Velocity.SetValue(player, math.Vec2{})
	components.Tint.SetValue(player, components.NeutralTint)

	return player
}

package systems

import (
	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/tags"
	"github.com/yohamta/donburi/ecs"
)

// ResolveContactDamage applies contact damage to the player for every
// player/enemy pair in this tick's batch. Sustained overlap yields no new
// pair, so the player is only hurt again after separating and touching anew.
func ResolveContactDamage(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	self := player.Entity()

	for _, pair := range contactBatch(ecs) {
		if !pair.Involves(self) {
			continue
		}
		other, ok := liveEntry(ecs.World, pair.Other(self))
		if !ok || other.Entity() == self || !other.HasComponent(tags.Enemy) {
			continue
		}

		components.Health.Get(player).ApplyDamage(cfg.Combat.ContactDamage)
		TriggerHitFeedback(player)
	}
}

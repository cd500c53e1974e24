package systems

import (
	"github.com/automoto/spellwave/components"
	"github.com/automoto/spellwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var liveEnemies = donburi.NewQuery(filter.And(
	filter.Contains(tags.Enemy, components.Health),
	filter.Not(filter.Contains(tags.Despawn)),
))

// ResolveProjectileContacts consumes projectiles on their first contact and
// damages at most one enemy per projectile.
func ResolveProjectileContacts(ecs *ecs.ECS) {
	for _, pair := range contactBatch(ecs) {
		projectile, ok := consumeProjectiles(ecs.World, pair)
		if !ok {
			continue
		}

		enemy, ok := firstEnemyIn(ecs.World, pair)
		if !ok {
			continue
		}

		hp := components.Health.Get(enemy)
		if hp.ApplyDamage(projectile.Damage) {
			Tombstone(enemy)
			died := EnemyDied{Enemy: enemy.Entity()}
			if enemy.HasComponent(components.Enemy) {
				died.Wave = components.Enemy.Get(enemy).Wave
			}
			EnemyDiedEvent.Publish(ecs.World, died)
		}
		TriggerHitFeedback(enemy)
	}
}

// consumeProjectiles tombstones every live projectile in the pair and returns
// the data of the first one. ok is false when neither side is a live
// projectile, including projectiles already consumed earlier in the batch.
func consumeProjectiles(w donburi.World, pair components.ContactPair) (components.ProjectileData, bool) {
	var (
		first components.ProjectileData
		found bool
	)
	for _, e := range [2]donburi.Entity{pair.A, pair.B} {
		entry, ok := liveEntry(w, e)
		if !ok || !entry.HasComponent(tags.Projectile) {
			continue
		}
		if !found {
			first = *components.Projectile.Get(entry)
			found = true
		}
		Tombstone(entry)
		if pair.A == pair.B {
			break
		}
	}
	return first, found
}

// firstEnemyIn scans live enemies in iteration order and returns the first
// that is either side of the pair.
func firstEnemyIn(w donburi.World, pair components.ContactPair) (*donburi.Entry, bool) {
	var match *donburi.Entry
	liveEnemies.Each(w, func(e *donburi.Entry) {
		if match == nil && pair.Involves(e.Entity()) {
			match = e
		}
	})
	return match, match != nil
}

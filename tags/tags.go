package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Particle   = donburi.NewTag().SetName("Particle")

	// Despawn tombstones an entity. Tombstoned entities are skipped by every
	// resolver and removed at the next flush.
	Despawn = donburi.NewTag().SetName("Despawn")
)

// Resolv tags for physics collision
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
)

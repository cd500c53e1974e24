package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProjectileData is created by a cast and resolves on its first contact.
type ProjectileData struct {
	Damage    uint32
	Direction math.Vec2 // unit vector
	Owner     donburi.Entity
}

var Projectile = donburi.NewComponentType[ProjectileData]()

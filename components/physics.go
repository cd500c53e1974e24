package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Velocity is in pixels per second.
var Velocity = donburi.NewComponentType[math.Vec2]()

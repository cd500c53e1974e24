package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CastEvent struct {
	Direction math.Vec2
}

// CastQueueData is a singleton holding casts requested since the last tick.
type CastQueueData struct {
	Pending []CastEvent
}

var CastQueue = donburi.NewComponentType[CastQueueData]()

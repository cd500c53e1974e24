package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Destination math.Vec2 // centre position the player is travelling to
	Travelling  bool
	AuraTimer   Timer // cosmetic particle ring
}

var Player = donburi.NewComponentType[PlayerData]()

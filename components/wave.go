package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// WaveData is a singleton. Index only ever grows by one per burst.
type WaveData struct {
	Index uint32
	Timer Timer
	Rand  *rand.Rand
}

var Wave = donburi.NewComponentType[WaveData]()

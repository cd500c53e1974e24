package components

import "github.com/yohamta/donburi"

// ScoreData is a singleton counting confirmed enemy deaths.
type ScoreData struct {
	Value uint64
}

var Score = donburi.NewComponentType[ScoreData]()

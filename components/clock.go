package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is a singleton carrying the current tick's elapsed time.
type ClockData struct {
	Delta   time.Duration
	Elapsed time.Duration
	Ticks   uint64
}

var Clock = donburi.NewComponentType[ClockData]()

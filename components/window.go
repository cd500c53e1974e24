package components

import "github.com/yohamta/donburi"

// WindowData is a singleton with the arena size in pixels.
type WindowData struct {
	Width  float64
	Height float64
}

func (w *WindowData) Center() (x, y float64) {
	return w.Width / 2, w.Height / 2
}

var Window = donburi.NewComponentType[WindowData]()

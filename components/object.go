package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's body in the collision space. X/Y are the
// top-left corner.
type ObjectData struct {
	*resolv.Object
}

// Center returns the centre of the body.
func (o *ObjectData) Center() (x, y float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// SetCenter moves the body so its centre is at (x, y).
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

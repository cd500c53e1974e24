package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionTravel
	ActionCast
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			// Travel towards the cursor
			ActionTravel: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
			},
			// Cast towards the cursor
			ActionCast: {
				Keys:         []ebiten.Key{ebiten.KeyQ},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
		},
	}
}

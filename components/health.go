package components

import (
	"github.com/automoto/spellwave/shared/gamemath"
	"github.com/yohamta/donburi"
)

// HealthData is attached to the player and every enemy.
// Current never exceeds Total and never goes below zero.
type HealthData struct {
	Current uint32
	Total   uint32
}

// NewHealth returns full health.
func NewHealth(total uint32) HealthData {
	return HealthData{Current: total, Total: total}
}

// ApplyDamage subtracts amount, flooring at zero, and reports whether the
// owner is dead afterwards.
func (h *HealthData) ApplyDamage(amount uint32) bool {
	h.Current = gamemath.SubtractHealth(h.Current, amount)
	return h.IsDead()
}

func (h *HealthData) IsDead() bool {
	return h.Current == 0
}

// Ratio returns Current/Total for health bars.
func (h *HealthData) Ratio() float64 {
	if h.Total == 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Total)
}

var Health = donburi.NewComponentType[HealthData]()

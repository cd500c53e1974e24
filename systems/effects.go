package systems

import (
	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances hit feedback and removes expired particles.
func UpdateEffects(ecs *ecs.ECS) {
	UpdateHitFeedback(ecs)
	UpdateAutoDestroy(ecs)
}

// UpdateHitFeedback advances every feedback timer by the tick's elapsed time,
// fades the tint, and restores the neutral tint once a timer runs out. A
// feedback that runs out in the tick it was triggered is removed one tick
// later.
func UpdateHitFeedback(ecs *ecs.ECS) {
	dt := Delta(ecs)
	var expired []*donburi.Entry

	components.HitFeedback.Each(ecs.World, func(e *donburi.Entry) {
		fb := components.HitFeedback.Get(e)
		fb.Timer.Tick(dt)
		fresh := fb.Fresh
		fb.Fresh = false

		if fb.Timer.Finished() {
			// A flash triggered this tick keeps its peak tint until the next one.
			if !fresh {
				expired = append(expired, e)
			}
			return
		}

		if e.HasComponent(components.Tint) && fb.Fade != nil {
			v, _ := fb.Fade.Update(float32(dt.Seconds()))
			components.Tint.Get(e).SetUniform(v)
		}
	})

	for _, e := range expired {
		if e.HasComponent(components.Tint) {
			components.Tint.SetValue(e, components.NeutralTint)
		}
		donburi.Remove[components.HitFeedbackData](e, components.HitFeedback)
	}
}

// TriggerHitFeedback starts the hit flash on an entity, or restarts it at the
// full duration if it is already flashing.
func TriggerHitFeedback(entry *donburi.Entry) {
	if entry.HasComponent(components.HitFeedback) {
		components.HitFeedback.Get(entry).Refresh()
	} else {
		fb := components.NewHitFeedback(cfg.Combat.HitFeedbackDuration, cfg.Combat.HitTint)
		donburi.Add(entry, components.HitFeedback, &fb)
	}

	if entry.HasComponent(components.Tint) {
		components.Tint.Get(entry).SetUniform(cfg.Combat.HitTint)
	}
}

// UpdateAutoDestroy removes entities whose lifetime has run out
func UpdateAutoDestroy(ecs *ecs.ECS) {
	dt := Delta(ecs)
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.Timer.Tick(dt) {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		removeEntry(ecs, e)
	}
}

package systems

import (
	"github.com/automoto/spellwave/components"
	"github.com/automoto/spellwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FlushDespawns removes every tombstoned entity and its collision body.
func FlushDespawns(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Despawn.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})

	for _, e := range toRemove {
		removeEntry(ecs, e)
	}
}

func removeEntry(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

package systems

import (
	"github.com/automoto/spellwave/components"
	"github.com/yohamta/donburi/ecs"
)

// PushContacts queues contact-begin pairs for the next drain.
func PushContacts(ecs *ecs.ECS, pairs ...components.ContactPair) {
	entry, ok := components.ContactQueue.First(ecs.World)
	if !ok {
		return
	}
	components.ContactQueue.Get(entry).Push(pairs...)
}

// DrainContacts moves everything queued so far into this tick's batch.
// Contacts pushed after the drain wait for the next tick.
func DrainContacts(ecs *ecs.ECS) {
	entry, ok := components.ContactQueue.First(ecs.World)
	if !ok {
		return
	}
	components.ContactQueue.Get(entry).Drain()
}

// contactBatch returns the pairs drained for the current tick.
func contactBatch(ecs *ecs.ECS) []components.ContactPair {
	entry, ok := components.ContactQueue.First(ecs.World)
	if !ok {
		return nil
	}
	return components.ContactQueue.Get(entry).Batch
}

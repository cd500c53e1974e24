package systems

import (
	"github.com/automoto/spellwave/components"
	"github.com/automoto/spellwave/tags"
	"github.com/yohamta/donburi"
)

// liveEntry returns the entry for e unless it was removed or tombstoned.
func liveEntry(w donburi.World, e donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(e) {
		return nil, false
	}
	entry := w.Entry(e)
	if entry.HasComponent(tags.Despawn) {
		return nil, false
	}
	return entry, true
}

func isLive(entry *donburi.Entry) bool {
	return entry != nil && entry.Valid() && !entry.HasComponent(tags.Despawn)
}

// Tombstone hides an entity from every later stage of the tick. It leaves the
// world at the next FlushDespawns.
func Tombstone(entry *donburi.Entry) {
	if entry.HasComponent(tags.Despawn) {
		return
	}
	entry.AddComponent(tags.Despawn)
	if entry.HasComponent(components.Velocity) {
		components.Velocity.Get(entry).X = 0
		components.Velocity.Get(entry).Y = 0
	}
}

package systems

import (
	"github.com/automoto/spellwave/components"
	"github.com/automoto/spellwave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// ResolvContacts turns overlaps in the resolv space into contact-begin pairs.
// Only enemies are checked, against the player and projectiles; enemies pass
// through each other and casts never touch their caster. A pair is reported
// on the tick its bodies start overlapping and not again until they have
// separated.
type ResolvContacts struct {
	overlapping map[components.ContactPair]struct{}
	query       *donburi.Query
}

func NewResolvContacts() *ResolvContacts {
	return &ResolvContacts{
		overlapping: make(map[components.ContactPair]struct{}),
		query: donburi.NewQuery(filter.And(
			filter.Contains(tags.Enemy, components.Object),
			filter.Not(filter.Contains(tags.Despawn)),
		)),
	}
}

func (d *ResolvContacts) Update(ecs *ecs.ECS) {
	current := make(map[components.ContactPair]struct{}, len(d.overlapping))
	var begins []components.ContactPair

	d.query.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil || obj.Space == nil {
			return
		}
		check := obj.Check(0, 0, tags.ResolvPlayer, tags.ResolvProjectile)
		if check == nil {
			return
		}
		for _, other := range check.ObjectsByTags(tags.ResolvPlayer, tags.ResolvProjectile) {
			otherEntry, ok := other.Data.(*donburi.Entry)
			if !ok || !isLive(otherEntry) || !overlaps(obj.Object, other) {
				continue
			}
			pair := components.ContactPair{A: e.Entity(), B: otherEntry.Entity()}
			current[pair] = struct{}{}
			if _, ok := d.overlapping[pair]; !ok {
				begins = append(begins, pair)
			}
		}
	})

	d.overlapping = current
	if len(begins) > 0 {
		PushContacts(ecs, begins...)
	}
}

// overlaps is a strict AABB test; touching edges do not count.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

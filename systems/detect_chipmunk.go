package systems

import (
	"log"
	"math"

	"github.com/automoto/spellwave/components"
	"github.com/automoto/spellwave/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const (
	collisionTypeEnemy cp.CollisionType = iota + 1
	collisionTypeTarget
)

type chipmunkBody struct {
	body  *cp.Body
	shape *cp.Shape
}

// ChipmunkContacts mirrors every body into a chipmunk space of sensor shapes
// and reports the enemy/player and enemy/projectile pairs chipmunk begins
// colliding. Chipmunk only calls Begin once per separation, so sustained
// overlap produces a single pair.
type ChipmunkContacts struct {
	space  *cp.Space
	bodies map[donburi.Entity]chipmunkBody
	shapes map[*cp.Shape]donburi.Entity
	begins []components.ContactPair
	query  *donburi.Query
}

func NewChipmunkContacts() *ChipmunkContacts {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	d := &ChipmunkContacts{
		space:  space,
		bodies: make(map[donburi.Entity]chipmunkBody),
		shapes: make(map[*cp.Shape]donburi.Entity),
		query: donburi.NewQuery(filter.And(
			filter.Contains(components.Object),
			filter.Not(filter.Contains(tags.Despawn)),
			filter.Not(filter.Contains(tags.Particle)),
		)),
	}

	handler := space.NewCollisionHandler(collisionTypeEnemy, collisionTypeTarget)
	handler.UserData = d
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*ChipmunkContacts)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		a, okA := sys.shapes[shapeA]
		b, okB := sys.shapes[shapeB]
		if okA && okB {
			sys.begins = append(sys.begins, components.ContactPair{A: a, B: b})
		}
		return true
	}

	log.Printf("Chipmunk contact detector ready")
	return d
}

func (d *ChipmunkContacts) Update(ecs *ecs.ECS) {
	seen := make(map[donburi.Entity]struct{}, len(d.bodies))

	d.query.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil || obj.Space == nil {
			return
		}
		seen[e.Entity()] = struct{}{}

		b, ok := d.bodies[e.Entity()]
		if !ok {
			b = d.addBody(e, obj.W, obj.H)
		}
		cx, cy := obj.Center()
		b.body.SetPosition(cp.Vector{X: cx, Y: cy})
		b.body.SetVelocityVector(cp.Vector{})
	})

	for e, b := range d.bodies {
		if _, ok := seen[e]; !ok {
			d.removeBody(e, b)
		}
	}

	d.begins = d.begins[:0]
	d.space.Step(1.0)

	if len(d.begins) > 0 {
		PushContacts(ecs, d.begins...)
	}
}

func (d *ChipmunkContacts) addBody(entry *donburi.Entry, w, h float64) chipmunkBody {
	body := cp.NewBody(1, math.Inf(1))
	shape := cp.NewBox(body, w, h, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeTarget)
	if entry.HasComponent(tags.Enemy) {
		shape.SetCollisionType(collisionTypeEnemy)
	}

	d.space.AddBody(body)
	d.space.AddShape(shape)

	b := chipmunkBody{body: body, shape: shape}
	d.bodies[entry.Entity()] = b
	d.shapes[shape] = entry.Entity()
	return b
}

func (d *ChipmunkContacts) removeBody(e donburi.Entity, b chipmunkBody) {
	d.space.RemoveShape(b.shape)
	d.space.RemoveBody(b.body)
	delete(d.shapes, b.shape)
	delete(d.bodies, e)
}

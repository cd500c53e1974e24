package simulation

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/systems"
	"github.com/automoto/spellwave/systems/factory"
	"github.com/automoto/spellwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

// Options configures a Simulation. The zero value runs only the combat and
// wave stages in a window of the configured size, with contacts supplied
// through PushContacts.
type Options struct {
	// Physics selects the contact detector: cfg.PhysicsNone (or ""),
	// cfg.PhysicsResolv or cfg.PhysicsChipmunk.
	Physics string
	Seed    uint64
	Width   float64
	Height  float64

	// Collaborators enables steering, player travel, movement and the aura.
	Collaborators bool
}

var enemies = donburi.NewQuery(filter.Contains(tags.Enemy))

type detector interface {
	Update(ecs *ecs.ECS)
}

// Simulation owns one arena world and runs its stages in a fixed order on
// every Tick. It is safe to call from several goroutines.
type Simulation struct {
	mu       sync.Mutex
	ecs      *ecs.ECS
	detector detector
	player   donburi.Entity
}

// New builds the world: singletons, the player at the window centre and the
// tick stages.
func New(opts Options) (*Simulation, error) {
	if opts.Physics == "" {
		opts.Physics = cfg.PhysicsNone
	}
	if err := cfg.ValidatePhysics(opts.Physics); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	if opts.Width <= 0 {
		opts.Width = float64(cfg.C.Width)
	}
	if opts.Height <= 0 {
		opts.Height = float64(cfg.C.Height)
	}

	world := donburi.NewWorld()
	e := ecs.NewECS(world)
	systems.RegisterEventHandlers(world)

	cell := cfg.Physics.CellSize
	factory.CreateSpace(e, int(math.Ceil(opts.Width)), int(math.Ceil(opts.Height)), cell, cell)
	factory.CreateWindow(e, opts.Width, opts.Height)
	factory.CreateClock(e)
	factory.CreateScore(e)
	factory.CreateContactQueue(e)
	factory.CreateCastQueue(e)
	factory.CreateWave(e, rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)))
	player := factory.CreatePlayer(e, opts.Width/2, opts.Height/2)

	s := &Simulation{
		ecs:    e,
		player: player.Entity(),
	}

	switch opts.Physics {
	case cfg.PhysicsResolv:
		s.detector = systems.NewResolvContacts()
	case cfg.PhysicsChipmunk:
		s.detector = systems.NewChipmunkContacts()
	}

	s.addStages(opts)
	log.Printf("Simulation ready: %.0fx%.0f, physics %s, seed %d", opts.Width, opts.Height, opts.Physics, opts.Seed)
	return s, nil
}

func (s *Simulation) addStages(opts Options) {
	s.ecs.AddSystem(systems.UpdateCasts)
	if opts.Collaborators {
		s.ecs.AddSystem(systems.UpdateEnemySeek)
		s.ecs.AddSystem(systems.UpdatePlayerTravel)
		s.ecs.AddSystem(systems.UpdateMovement)
		s.ecs.AddSystem(systems.UpdateAura)
	}
	if s.detector != nil {
		s.ecs.AddSystem(s.detector.Update)
	}

	s.ecs.AddSystem(systems.DrainContacts)
	s.ecs.AddSystem(systems.ResolveContactDamage)
	s.ecs.AddSystem(systems.ResolveProjectileContacts)
	s.ecs.AddSystem(systems.FlushDespawns)
	s.ecs.AddSystem(systems.UpdateHitFeedback)
	s.ecs.AddSystem(systems.UpdateAutoDestroy)
	s.ecs.AddSystem(systems.UpdateWave)
	s.ecs.AddSystem(systems.ReconcileScore)
	s.ecs.AddSystem(systems.FlushEvents)
}

// Tick runs every stage once with dt as the elapsed time.
func (s *Simulation) Tick(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	systems.AdvanceClock(s.ecs, dt)
	s.ecs.Update()
}

// Cast queues a projectile from the player towards dir for the next tick.
func (s *Simulation) Cast(dir dmath.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	systems.QueueCast(s.ecs, dir)
}

// PushContacts queues contact-begin pairs for the next tick.
func (s *Simulation) PushContacts(pairs ...components.ContactPair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	systems.PushContacts(s.ecs, pairs...)
}

// TravelTo sets the player's destination.
func (s *Simulation) TravelTo(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	systems.SetPlayerDestination(s.ecs, x, y)
}

// Do runs fn with exclusive access to the world, for readers such as the
// renderer and tests.
func (s *Simulation) Do(fn func(e *ecs.ECS)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ecs)
}

// AddRenderer registers a draw function on the given layer. Renderers run
// from Do, under the same lock as Tick.
func (s *Simulation) AddRenderer(l ecs.LayerID, r any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ecs.AddRenderer(l, r)
}

// World returns the underlying world without locking. It is only safe while
// no other goroutine calls Tick; use Do otherwise.
func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

// Player returns the player entity.
func (s *Simulation) Player() donburi.Entity {
	return s.player
}

// PlayerHealth returns a copy of the player's health.
func (s *Simulation) PlayerHealth() components.HealthData {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ecs.World.Valid(s.player) {
		return components.HealthData{}
	}
	return *components.Health.Get(s.ecs.World.Entry(s.player))
}

func (s *Simulation) Score() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return systems.Score(s.ecs.World)
}

func (s *Simulation) WaveIndex() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := components.Wave.First(s.ecs.World)
	if !ok {
		return 0
	}
	return components.Wave.Get(entry).Index
}

// EnemyCount returns the number of enemies in the world.
func (s *Simulation) EnemyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return enemies.Count(s.ecs.World)
}

// NearestEnemy returns the direction from the player to the closest enemy.
func (s *Simulation) NearestEnemy() (dmath.Vec2, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ecs.World.Valid(s.player) {
		return dmath.Vec2{}, false
	}
	px, py := components.Object.Get(s.ecs.World.Entry(s.player)).Center()

	best := math.Inf(1)
	var dir dmath.Vec2
	tags.Enemy.Each(s.ecs.World, func(e *donburi.Entry) {
		ex, ey := components.Object.Get(e).Center()
		d := math.Hypot(ex-px, ey-py)
		if d < best {
			best = d
			dir = dmath.Vec2{X: ex - px, Y: ey - py}
		}
	})
	return dir, !math.IsInf(best, 1)
}

package scenes

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/simulation"
	"github.com/automoto/spellwave/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ArenaScene runs a simulation with steering, movement and a contact
// detector, driven by mouse and keyboard.
type ArenaScene struct {
	sim     *simulation.Simulation
	physics string
	seed    uint64
	watcher *cfg.Watcher // optional tuning file hot reload
	once    sync.Once
}

func NewArenaScene(physics string, seed uint64, watcher *cfg.Watcher) *ArenaScene {
	return &ArenaScene{physics: physics, seed: seed, watcher: watcher}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	if as.sim == nil {
		return
	}

	as.reloadTuning()
	as.handleInput()
	as.sim.Tick(time.Second / time.Duration(ebiten.TPS()))
}

// reloadTuning applies tuning file edits between ticks. New values affect
// entities and timers created afterwards.
func (as *ArenaScene) reloadTuning() {
	if as.watcher == nil {
		return
	}
	select {
	case path := <-as.watcher.Events:
		if err := cfg.LoadFile(path); err != nil {
			log.Printf("Keeping previous tuning: %v", err)
		}
	case err := <-as.watcher.Errors:
		log.Printf("Tuning watcher error: %v", err)
	default:
	}
}

// handleInput queues a travel destination or a cast towards the cursor.
func (as *ArenaScene) handleInput() {
	cx, cy := ebiten.CursorPosition()

	if justPressed(cfg.ActionTravel) {
		as.sim.TravelTo(float64(cx), float64(cy))
	}

	if justPressed(cfg.ActionCast) {
		var px, py float64
		as.sim.Do(func(e *ecs.ECS) {
			if e.World.Valid(as.sim.Player()) {
				px, py = components.Object.Get(e.World.Entry(as.sim.Player())).Center()
			}
		})
		as.sim.Cast(dmath.Vec2{X: float64(cx) - px, Y: float64(cy) - py})
	}
}

// justPressed reports whether any binding of the action was pressed this frame.
func justPressed(action cfg.ActionID) bool {
	binding := cfg.Input.Bindings[action]
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, button := range binding.MouseButtons {
		if inpututil.IsMouseButtonJustPressed(button) {
			return true
		}
	}
	return false
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if as.sim == nil {
		return
	}
	as.sim.Do(func(e *ecs.ECS) {
		e.Draw(screen)
	})
}

func (as *ArenaScene) configure() {
	sim, err := simulation.New(simulation.Options{
		Physics:       as.physics,
		Seed:          as.seed,
		Width:         float64(cfg.C.Width),
		Height:        float64(cfg.C.Height),
		Collaborators: true,
	})
	if err != nil {
		log.Printf("Could not start arena: %v", err)
		return
	}

	// Add renderers
	sim.AddRenderer(cfg.Default, systems.DrawProjectiles)
	sim.AddRenderer(cfg.Default, systems.DrawBodies)
	sim.AddRenderer(cfg.Default, systems.DrawHUD)

	as.sim = sim
}

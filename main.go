package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/fonts"
	"github.com/automoto/spellwave/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(physics string, seed uint64, watcher *config.Watcher) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(physics, seed, watcher),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("config", "", "YAML tuning file applied over the defaults")
	physics := flag.String("physics", config.PhysicsResolv, "Contact detector: none, resolv or chipmunk")
	seed := flag.Uint64("seed", 1, "Wave spawner seed")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	flag.Parse()

	var watcher *config.Watcher
	if *tuning != "" {
		if err := config.LoadFile(*tuning); err != nil {
			log.Fatalf("Failed to load tuning file: %v", err)
		}
		if *watch {
			w, err := config.WatchFile(*tuning)
			if err != nil {
				log.Fatalf("Failed to watch tuning file: %v", err)
			}
			defer w.Close()
			watcher = w
		}
	}
	if err := config.ValidatePhysics(*physics); err != nil {
		log.Fatalf("Invalid -physics: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Spellwave")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(*physics, *seed, watcher)); err != nil {
		log.Fatal(err)
	}
}

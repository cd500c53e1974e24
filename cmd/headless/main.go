package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/simulation"
)

func main() {
	runner, err := config.LoadRunner()
	if err != nil {
		log.Fatalf("Failed to load runner config: %v", err)
	}
	if runner.TuningFile != "" {
		if err := config.LoadFile(runner.TuningFile); err != nil {
			log.Fatalf("Failed to load tuning file: %v", err)
		}
	}

	sim, err := simulation.New(simulation.Options{
		Physics:       runner.Physics,
		Seed:          runner.Seed,
		Width:         float64(config.C.Width),
		Height:        float64(config.C.Height),
		Collaborators: true,
	})
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := simulation.NewLoop(sim, runner.TickRate)
	loop.OnTick = scriptedCaster(sim, runner.CastInterval)

	log.Printf("Starting headless run for %s (physics: %s, seed: %d)", runner.Duration, runner.Physics, runner.Seed)
	if runner.Realtime {
		ctx, cancel := context.WithTimeout(ctx, runner.Duration)
		defer cancel()
		loop.Run(ctx)
	} else {
		loop.RunFor(ctx, runner.Duration)
	}

	hp := sim.PlayerHealth()
	log.Printf("Finished: wave %d, score %d, player health %d/%d, enemies alive %d",
		sim.WaveIndex(), sim.Score(), hp.Current, hp.Total, sim.EnemyCount())
}

// scriptedCaster fires at the nearest enemy every interval of simulated time.
func scriptedCaster(sim *simulation.Simulation, interval time.Duration) func(time.Duration) {
	var next time.Duration
	return func(elapsed time.Duration) {
		if interval <= 0 || elapsed < next {
			return
		}
		next = elapsed + interval
		if dir, ok := sim.NearestEnemy(); ok {
			sim.Cast(dir)
		}
	}
}

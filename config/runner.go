package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Physics backends for contact detection.
const (
	PhysicsNone     = "none"
	PhysicsResolv   = "resolv"
	PhysicsChipmunk = "chipmunk"
)

// RunnerConfig configures the headless runner. Values come from
// SPELLWAVE_* environment variables.
type RunnerConfig struct {
	TickRate     int           `env:"TICK_RATE" envDefault:"60"`
	Seed         uint64        `env:"SEED" envDefault:"1"`
	Duration     time.Duration `env:"DURATION" envDefault:"30s"`
	Physics      string        `env:"PHYSICS" envDefault:"resolv"`
	TuningFile   string        `env:"CONFIG"`
	CastInterval time.Duration `env:"CAST_INTERVAL" envDefault:"250ms"`
	Realtime     bool          `env:"REALTIME" envDefault:"false"`
}

// LoadRunner parses the runner configuration from the environment.
func LoadRunner() (RunnerConfig, error) {
	var r RunnerConfig
	if err := env.ParseWithOptions(&r, env.Options{Prefix: "SPELLWAVE_"}); err != nil {
		return RunnerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if r.TickRate <= 0 {
		return RunnerConfig{}, fmt.Errorf("tick rate must be positive, got %d", r.TickRate)
	}
	if err := ValidatePhysics(r.Physics); err != nil {
		return RunnerConfig{}, err
	}
	return r, nil
}

// ValidatePhysics reports whether name is a known contact backend.
func ValidatePhysics(name string) error {
	switch name {
	case PhysicsNone, PhysicsResolv, PhysicsChipmunk:
		return nil
	}
	return fmt.Errorf("unknown physics backend %q", name)
}

package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// tuning mirrors the global configuration blocks for YAML overrides.
// Keys missing from the file keep their current value.
type tuning struct {
	Window  Config        `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Combat  CombatConfig  `yaml:"combat"`
	Spell   SpellConfig   `yaml:"spell"`
	Wave    WaveConfig    `yaml:"wave"`
	Aura    AuraConfig    `yaml:"aura"`
	Physics PhysicsConfig `yaml:"physics"`
}

// LoadFile applies the YAML tuning file at path on top of the current values.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded tuning overrides from %s", path)
	return nil
}

// Apply decodes YAML tuning data on top of the current values. Nothing is
// changed when the data is invalid.
func Apply(data []byte) error {
	t := tuning{
		Window:  *C,
		Player:  Player,
		Enemy:   Enemy,
		Combat:  Combat,
		Spell:   Spell,
		Wave:    Wave,
		Aura:    Aura,
		Physics: Physics,
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return err
	}

	window := t.Window
	C = &window
	Player = t.Player
	Enemy = t.Enemy
	Combat = t.Combat
	Spell = t.Spell
	Wave = t.Wave
	Aura = t.Aura
	Physics = t.Physics
	return nil
}

func (t *tuning) validate() error {
	switch {
	case t.Window.Width <= 0 || t.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", t.Window.Width, t.Window.Height)
	case t.Wave.Period <= 0:
		return fmt.Errorf("wave period must be positive, got %s", t.Wave.Period)
	case t.Wave.LogBase <= 1:
		return fmt.Errorf("wave log base must be greater than 1, got %g", t.Wave.LogBase)
	case t.Combat.HitFeedbackDuration <= 0:
		return fmt.Errorf("hit feedback duration must be positive, got %s", t.Combat.HitFeedbackDuration)
	case t.Enemy.Health == 0 || t.Player.Health == 0:
		return fmt.Errorf("health totals must be positive")
	case t.Physics.CellSize <= 0:
		return fmt.Errorf("physics cell size must be positive, got %d", t.Physics.CellSize)
	}
	return nil
}

package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render/update layer the arena uses.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health        uint32  `yaml:"health"`
	Size          float64 `yaml:"size"`
	MoveSpeed     float64 `yaml:"move_speed"`     // pixels per second
	ArrivalRadius float64 `yaml:"arrival_radius"` // stop travelling when this close to the destination
}

// EnemyConfig contains configuration for spawned enemies
type EnemyConfig struct {
	Health    uint32  `yaml:"health"`
	Size      float64 `yaml:"size"`
	SeekSpeed float64 `yaml:"seek_speed"` // pixels per second towards the player
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Damage applied to the player per enemy contact-begin
	ContactDamage uint32 `yaml:"contact_damage"`

	// Hit feedback
	HitFeedbackDuration time.Duration `yaml:"hit_feedback_duration"`
	HitTint             float32       `yaml:"hit_tint"` // colour multiplier at the start of the flash
}

// SpellConfig contains the cast projectile configuration
type SpellConfig struct {
	Damage     uint32  `yaml:"damage"`
	Speed      float64 `yaml:"speed"`
	Radius     float64 `yaml:"radius"`
	CullMargin float64 `yaml:"cull_margin"` // projectiles further than this outside the window are dropped
}

// WaveConfig contains wave spawner configuration
type WaveConfig struct {
	Period    time.Duration `yaml:"period"`
	LogBase   float64       `yaml:"log_base"`
	BaseCount float64       `yaml:"base_count"`
}

// AuraConfig contains the cosmetic particle ring emitted around the player
type AuraConfig struct {
	Period   time.Duration `yaml:"period"`
	Count    int           `yaml:"count"`
	Radius   float64       `yaml:"radius"`
	Speed    float64       `yaml:"speed"`
	Lifetime time.Duration `yaml:"lifetime"`
	Size     float64       `yaml:"size"`
}

// PhysicsConfig contains collision space configuration
type PhysicsConfig struct {
	CellSize int `yaml:"cell_size"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Spell SpellConfig
var Wave WaveConfig
var Aura AuraConfig
var Physics PhysicsConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightRed   = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGray   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	HealthFg   = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	Background = color.RGBA{R: 15, G: 25, B: 50, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Player = PlayerConfig{
		Health:        20,
		Size:          32,
		MoveSpeed:     120,
		ArrivalRadius: 1,
	}

	Enemy = EnemyConfig{
		Health:    16,
		Size:      32,
		SeekSpeed: 100,
	}

	Combat = CombatConfig{
		ContactDamage:       1,
		HitFeedbackDuration: 100 * time.Millisecond,
		HitTint:             3,
	}

	Spell = SpellConfig{
		Damage:     8,
		Speed:      300,
		Radius:     10,
		CullMargin: 64,
	}

	Wave = WaveConfig{
		Period:    time.Second,
		LogBase:   1.1,
		BaseCount: 10,
	}

	Aura = AuraConfig{
		Period:   time.Second,
		Count:    10,
		Radius:   32,
		Speed:    100,
		Lifetime: 600 * time.Millisecond,
		Size:     8,
	}

	Physics = PhysicsConfig{
		CellSize: 32,
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverridesOnlyPresentKeys(t *testing.T) {
	t.Cleanup(Reset)

	err := Apply([]byte(`
wave:
  period: 2s
enemy:
  health: 24
combat:
  hit_feedback_duration: 250ms
`))
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, Wave.Period)
	assert.Equal(t, 1.1, Wave.LogBase, "untouched keys keep defaults")
	assert.Equal(t, uint32(24), Enemy.Health)
	assert.Equal(t, 32.0, Enemy.Size)
	assert.Equal(t, 250*time.Millisecond, Combat.HitFeedbackDuration)
	assert.Equal(t, 1280, C.Width)
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad_yaml", "wave: [unclosed"},
		{"zero_period", "wave:\n  period: 0s\n"},
		{"log_base_one", "wave:\n  log_base: 1\n"},
		{"zero_health", "enemy:\n  health: 0\n"},
		{"negative_window", "window:\n  width: -1\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Cleanup(Reset)

			require.Error(t, Apply([]byte(c.yaml)))
			assert.Equal(t, time.Second, Wave.Period, "failed apply must not change values")
			assert.Equal(t, uint32(16), Enemy.Health)
			assert.Equal(t, 1280, C.Width)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spell:\n  damage: 4\n"), 0o600))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, uint32(4), Spell.Damage)

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRunner(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, err := LoadRunner()
		require.NoError(t, err)
		assert.Equal(t, 60, r.TickRate)
		assert.Equal(t, uint64(1), r.Seed)
		assert.Equal(t, 30*time.Second, r.Duration)
		assert.Equal(t, PhysicsResolv, r.Physics)
		assert.Equal(t, 250*time.Millisecond, r.CastInterval)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SPELLWAVE_TICK_RATE", "30")
		t.Setenv("SPELLWAVE_SEED", "99")
		t.Setenv("SPELLWAVE_PHYSICS", "chipmunk")
		t.Setenv("SPELLWAVE_DURATION", "5s")

		r, err := LoadRunner()
		require.NoError(t, err)
		assert.Equal(t, 30, r.TickRate)
		assert.Equal(t, uint64(99), r.Seed)
		assert.Equal(t, PhysicsChipmunk, r.Physics)
		assert.Equal(t, 5*time.Second, r.Duration)
	})

	t.Run("unknown_physics", func(t *testing.T) {
		t.Setenv("SPELLWAVE_PHYSICS", "box2d")
		_, err := LoadRunner()
		require.Error(t, err)
	})

	t.Run("bad_tick_rate", func(t *testing.T) {
		t.Setenv("SPELLWAVE_TICK_RATE", "0")
		_, err := LoadRunner()
		require.Error(t, err)
	})
}

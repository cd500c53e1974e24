package systems

import (
	"fmt"

	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/fonts"
	"github.com/automoto/spellwave/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

// DrawHUD renders the player's health bar, the score and the wave index in
// the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if ok {
		hp := components.Health.Get(playerEntry)

		vector.DrawFilledRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth), float32(hudBarHeight),
			cfg.DarkGray, false)

		vector.DrawFilledRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth)*float32(hp.Ratio()), float32(hudBarHeight),
			cfg.HealthFg, false)
	}

	var wave uint32
	if entry, ok := components.Wave.First(ecs.World); ok {
		wave = components.Wave.Get(entry).Index
	}
	face := fonts.HUD.Get()
	line := fmt.Sprintf("Score: %d  Wave: %d", Score(ecs.World), wave)
	// text.Draw positions the baseline, so drop by the ascent.
	y := hudMargin + hudBarHeight + 4 + face.Metrics().Ascent.Ceil()
	text.Draw(screen, line, face, hudMargin, y, cfg.White)
}

package systems

import (
	"image/color"

	"github.com/automoto/spellwave/components"
	cfg "github.com/automoto/spellwave/config"
	"github.com/automoto/spellwave/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBodies renders the player and enemies as tinted squares.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		drawBody(screen, e, cfg.LightRed)
	})
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawBody(screen, e, cfg.LightBlue)
	})
}

func drawBody(screen *ebiten.Image, e *donburi.Entry, base color.RGBA) {
	o := components.Object.Get(e)
	clr := base
	if e.HasComponent(components.Tint) {
		clr = applyTint(base, *components.Tint.Get(e))
	}
	vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), clr, false)
}

// DrawProjectiles renders casts and aura particles. Particles fade out over
// their lifetime.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		x, y := components.Object.Get(e).Center()
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(cfg.Spell.Radius), cfg.Orange, true)
	})

	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		x, y := o.Center()
		clr := cfg.White
		ad := components.AutoDestroy.Get(e)
		if ad.Timer.Duration > 0 {
			alpha := float64(ad.Timer.Remaining()) / float64(ad.Timer.Duration)
			clr.A = uint8(255 * alpha)
			clr.R = uint8(float64(clr.R) * alpha)
			clr.G = uint8(float64(clr.G) * alpha)
			clr.B = uint8(float64(clr.B) * alpha)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(o.W/2), clr, true)
	})
}

// applyTint scales each channel, saturating at 255.
func applyTint(c color.RGBA, t components.TintData) color.RGBA {
	scale := func(v uint8, f float32) uint8 {
		s := float32(v) * f
		if s > 255 {
			return 255
		}
		if s < 0 {
			return 0
		}
		return uint8(s)
	}
	return color.RGBA{R: scale(c.R, t.R), G: scale(c.G, t.G), B: scale(c.B, t.B), A: c.A}
}

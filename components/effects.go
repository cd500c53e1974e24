package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// HitFeedbackData marks an entity that was just damaged. It is cosmetic only:
// it drives the tint and never gates damage.
type HitFeedbackData struct {
	Timer Timer
	Fade  *gween.Tween // tint multiplier from the flash peak back to 1

	// Fresh is set on every (re)trigger and cleared by the first update, so
	// a flash always survives the tick it was triggered in.
	Fresh bool
}

// NewHitFeedback returns a feedback countdown of duration d starting at the
// given tint peak.
func NewHitFeedback(d time.Duration, peak float32) HitFeedbackData {
	return HitFeedbackData{
		Timer: NewTimer(d, TimerOnce),
		Fade:  gween.New(peak, 1, float32(d.Seconds()), ease.OutQuad),
		Fresh: true,
	}
}

// Refresh restarts the countdown at its full duration.
func (h *HitFeedbackData) Refresh() {
	h.Timer.Reset()
	h.Fresh = true
	if h.Fade != nil {
		h.Fade.Reset()
	}
}

func (h *HitFeedbackData) Remaining() time.Duration {
	return h.Timer.Remaining()
}

var HitFeedback = donburi.NewComponentType[HitFeedbackData]()

// TintData is the colour multiplier renderers apply to an entity.
type TintData struct {
	R, G, B float32
}

var NeutralTint = TintData{R: 1, G: 1, B: 1}

func (t *TintData) SetUniform(v float32) {
	t.R, t.G, t.B = v, v, v
}

func (t TintData) IsNeutral() bool {
	return t == NeutralTint
}

var Tint = donburi.NewComponentType[TintData]()

// AutoDestroyData marks entities that are removed once their timer runs out
type AutoDestroyData struct {
	Timer Timer
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

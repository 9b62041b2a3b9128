package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Flash overlay timing.
const (
	flashStart    = 0.6 // Initial overlay opacity
	flashDuration = 0.4 // Seconds to fade out
)

// Flash is a white overlay that fades out after a state change.
type Flash struct {
	tween *gween.Tween
	alpha float32
}

// Trigger restarts the fade from full strength.
func (f *Flash) Trigger() {
	f.tween = gween.New(flashStart, 0, flashDuration, ease.OutQuad)
	f.alpha = flashStart
}

// Update advances the fade by dt seconds.
func (f *Flash) Update(dt float32) {
	if f.tween == nil {
		return
	}
	val, finished := f.tween.Update(dt)
	f.alpha = val
	if finished {
		f.tween = nil
		f.alpha = 0
	}
}

// Active reports whether the overlay is visible.
func (f *Flash) Active() bool {
	return f.alpha > 0
}

// Alpha returns the current overlay opacity.
func (f *Flash) Alpha() float32 {
	return f.alpha
}

// Draw paints the overlay over the whole screen.
func (f *Flash) Draw(screen *ebiten.Image) {
	if !f.Active() {
		return
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), overlayColor(f.alpha), false)
}

// overlayColor returns premultiplied white at the given opacity.
func overlayColor(alpha float32) color.RGBA {
	a := uint8(min(max(alpha, 0), 1) * 255)
	return color.RGBA{R: a, G: a, B: a, A: a}
}

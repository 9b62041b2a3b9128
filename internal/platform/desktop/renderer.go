package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/breakout/internal/core"
)

// Renderer draws the game onto an ebiten image. Call Begin with the frame's
// screen before drawing.
type Renderer struct {
	screen *ebiten.Image
	font   *Font
	w, h   float64
}

// NewRenderer creates a renderer for a screen of the given size.
func NewRenderer(font *Font, w, h int) *Renderer {
	return &Renderer{font: font, w: float64(w), h: float64(h)}
}

// Begin sets the image drawn into for this frame.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
}

// SetSize updates the size reported by ScreenSize.
func (r *Renderer) SetSize(w, h int) {
	r.w, r.h = float64(w), float64(h)
}

// ClearBackground implements core.Renderer.
func (r *Renderer) ClearBackground(c core.Color) {
	r.screen.Fill(c.RGBA())
}

// DrawRectangle implements core.Renderer.
func (r *Renderer) DrawRectangle(rect core.Rect, c core.Color) {
	vector.DrawFilledRect(r.screen,
		float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H),
		c.RGBA(), false)
}

// DrawText implements core.Renderer.
func (r *Renderer) DrawText(s string, x, y, size float64, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.LineSpacing = r.font.LineHeight(size)
	text.Draw(r.screen, s, r.font.Face(size), op)
}

// MeasureText implements core.Renderer.
func (r *Renderer) MeasureText(s string, size float64) (w, h float64) {
	return r.font.Measure(s, size)
}

// ScreenSize implements core.Renderer.
func (r *Renderer) ScreenSize() (w, h float64) {
	return r.w, r.h
}

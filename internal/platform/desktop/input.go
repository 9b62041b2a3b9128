package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/breakout/internal/core"
)

// keyBindings maps game keys to the physical keys that drive them.
var keyBindings = map[core.Key][]ebiten.Key{
	core.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.KeySpace: {ebiten.KeySpace},
}

// Keyboard reads the keyboard state ebiten collected for the current tick.
type Keyboard struct{}

// IsKeyDown implements core.Input.
func (Keyboard) IsKeyDown(k core.Key) bool {
	for _, ek := range keyBindings[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

// IsKeyPressed implements core.Input.
func (Keyboard) IsKeyPressed(k core.Key) bool {
	for _, ek := range keyBindings[k] {
		if inpututil.IsKeyJustPressed(ek) {
			return true
		}
	}
	return false
}

// Package desktop runs the breakout simulation in an ebiten window.
package desktop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/storage"
)

// Options configures the desktop window and its game.
type Options struct {
	Width, Height int
	Title         string
	Resizable     bool
	TickRate      int
	Seed          int64 // 0 = time based
	Font          *Font
	Player        string
	Scores        storage.ScoreSaver // Optional
	Logger        *log.Logger
}

// App implements ebiten.Game for one breakout session.
type App struct {
	game     *breakout.Game
	renderer *Renderer
	input    core.Input
	flash    Flash
	recorder *storage.Recorder
	logger   *log.Logger
	phase    breakout.State
	width    int
	height   int
}

// NewApp creates the game and its renderer.
func NewApp(opts Options) *App {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	game := breakout.New(core.RuntimeConfig{
		ScreenW:  float64(opts.Width),
		ScreenH:  float64(opts.Height),
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})

	return &App{
		game:     game,
		renderer: NewRenderer(opts.Font, opts.Width, opts.Height),
		input:    Keyboard{},
		recorder: storage.NewRecorder(opts.Scores, opts.Player, opts.Logger),
		logger:   opts.Logger,
		phase:    game.Phase(),
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Update advances the game by one tick. Escape closes the window.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	// Update runs at a fixed TPS, so one tick is always 1/TPS seconds.
	a.step(1.0 / float64(ebiten.TPS()))
	return nil
}

// step runs one frame of the simulation with the app's input.
func (a *App) step(dt float64) {
	result := a.game.Step(a.input, dt)

	if phase := a.game.Phase(); phase != a.phase {
		a.logger.Debug("state changed", "from", a.phase, "to", phase, "score", result.State.Score)
		a.phase = phase
		if phase != breakout.StateMenu {
			a.flash.Trigger()
		}
	}
	a.flash.Update(float32(dt))
	a.recorder.Observe(result.State)
}

// Draw renders the game and the fade overlay.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Begin(screen)
	a.game.Draw(a.renderer)
	a.flash.Draw(screen)
}

// Layout keeps one logical unit per pixel and reports size changes to the game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.renderer.SetSize(outsideWidth, outsideHeight)
		a.game.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Font == nil {
		return fmt.Errorf("desktop: no font loaded")
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	if opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(NewApp(opts)); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

// Package breakout implements the block-breaking simulation: a paddle, a grid
// of blocks and any number of balls, advanced one frame at a time.
//
// The package has no platform dependencies. Platforms feed it a core.Input
// and the elapsed frame time, then hand it a core.Renderer to draw into.
package breakout

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/breakout/internal/core"
)

// Block grid layout.
const (
	GridCols     = 6
	GridRows     = 6
	GridPadding  = 5
	GridTop      = 50
	TitleSize    = 50
	HUDSize      = 30
	HUDTop       = 16
	HUDLivesLeft = 30
)

// State is the game's top-level mode.
type State int

const (
	StateMenu           State = iota // Waiting for the player to start
	StatePlaying                     // Simulation running
	StateLevelCompleted              // Every block destroyed
	StateDead                        // Player lives exhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateLevelCompleted:
		return "level_completed"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Game holds one play session.
type Game struct {
	score  int
	state  State
	player Player
	blocks []Block
	balls  []Ball

	rng     *rand.Rand
	screenW float64
	screenH float64
}

// New creates a game in the menu with a full grid and one ball waiting at
// the screen center.
func New(cfg core.RuntimeConfig) *Game {
	seed := uint64(cfg.Seed)
	g := &Game{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		screenW: cfg.ScreenW,
		screenH: cfg.ScreenH,
	}
	g.state = StateMenu
	g.player = NewPlayer(g.screenW, g.screenH)
	g.initBlocks()
	g.SpawnBall()
	return g
}

// Reset returns to the menu with a fresh paddle and grid, no balls and a
// zero score.
func (g *Game) Reset() {
	g.state = StateMenu
	g.score = 0
	g.player = NewPlayer(g.screenW, g.screenH)
	g.balls = g.balls[:0]
	g.initBlocks()
}

// Resize updates the screen size used by the simulation. Entities already on
// screen are not moved.
func (g *Game) Resize(w, h float64) {
	g.screenW = w
	g.screenH = h
}

// initBlocks lays out the grid centered horizontally below the HUD.
func (g *Game) initBlocks() {
	g.blocks = g.blocks[:0]

	stepX := float64(BlockW + GridPadding)
	stepY := float64(BlockH + GridPadding)
	start := core.Vec2{
		X: (g.screenW - stepX*GridCols) * 0.5,
		Y: GridTop,
	}

	for i := range GridCols * GridRows {
		offset := core.Vec2{
			X: float64(i%GridCols) * stepX,
			Y: float64(i/GridCols) * stepY,
		}
		g.blocks = append(g.blocks, NewBlock(start.Add(offset)))
	}
}

// SpawnBall adds a ball at the screen center.
func (g *Game) SpawnBall() {
	center := core.Vec2{X: g.screenW * 0.5, Y: g.screenH * 0.5}
	g.balls = append(g.balls, NewBall(center, g.rng))
}

// Step advances the game by one frame of dt seconds.
func (g *Game) Step(in core.Input, dt float64) core.StepResult {
	switch g.state {
	case StateMenu:
		if in.IsKeyPressed(core.KeySpace) {
			g.state = StatePlaying
		}

	case StatePlaying:
		if in.IsKeyPressed(core.KeySpace) {
			g.SpawnBall()
		}
		g.player.Update(in, dt, g.screenW)
		g.updateBalls(dt)
		g.checkCollisions()

	case StateLevelCompleted, StateDead:
		if in.IsKeyPressed(core.KeySpace) {
			g.Reset()
		}
	}

	return core.StepResult{State: g.State()}
}

// updateBalls moves every ball.
func (g *Game) updateBalls(dt float64) {
	for i := range g.balls {
		g.balls[i].Update(dt, g.screenW)
	}
}

// checkCollisions resolves hits, then drops lost balls and destroyed blocks.
func (g *Game) checkCollisions() {
	for i := range g.balls {
		ball := &g.balls[i]
		ResolveCollision(&ball.Rect, &ball.Vel, g.player.Rect)

		for j := range g.blocks {
			block := &g.blocks[j]
			if !block.Alive() {
				continue
			}
			if ResolveCollision(&ball.Rect, &ball.Vel, block.Rect) {
				block.Lives--
				if block.Lives == 0 {
					g.score += BlockPoints
				}
			}
		}
	}

	ballsBefore := len(g.balls)
	wasLastBall := ballsBefore == 1
	kept := g.balls[:0]
	for _, b := range g.balls {
		if b.Rect.Y < g.screenH {
			kept = append(kept, b)
		}
	}
	g.balls = kept

	if len(g.balls) < ballsBefore && wasLastBall {
		g.player.Lives--
		if g.player.Lives <= 0 {
			g.state = StateDead
		}
	}

	alive := g.blocks[:0]
	for _, b := range g.blocks {
		if b.Alive() {
			alive = append(alive, b)
		}
	}
	g.blocks = alive

	if len(g.blocks) == 0 {
		g.state = StateLevelCompleted
	}
}

// Draw renders the playfield and the overlay text for the current state.
func (g *Game) Draw(r core.Renderer) {
	r.ClearBackground(core.ColorWhite)

	g.player.Draw(r)
	for i := range g.blocks {
		g.blocks[i].Draw(r)
	}
	for i := range g.balls {
		g.balls[i].Draw(r)
	}

	switch g.state {
	case StateMenu:
		drawTitle(r, "Press SPACE to start")
	case StatePlaying:
		g.drawHUD(r)
	case StateLevelCompleted:
		drawTitle(r, fmt.Sprintf("You win! Score: %d", g.score))
	case StateDead:
		drawTitle(r, fmt.Sprintf("You DIED! Score: %d", g.score))
	}
}

// drawHUD shows the score centered at the top and lives on the left.
func (g *Game) drawHUD(r core.Renderer) {
	w, _ := r.ScreenSize()

	score := fmt.Sprintf("score: %d", g.score)
	sw, _ := r.MeasureText(score, HUDSize)
	r.DrawText(score, w*0.5-sw*0.5, HUDTop, HUDSize, core.ColorBlack)

	r.DrawText(fmt.Sprintf("lives: %d", g.player.Lives), HUDLivesLeft, HUDTop, HUDSize, core.ColorBlack)
}

// drawTitle centers a large message on screen.
func drawTitle(r core.Renderer, text string) {
	w, h := r.ScreenSize()
	tw, th := r.MeasureText(text, TitleSize)
	r.DrawText(text, w*0.5-tw*0.5, h*0.5-th*0.5, TitleSize, core.ColorBlack)
}

// Phase returns the current game state.
func (g *Game) Phase() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Player returns a copy of the paddle.
func (g *Game) Player() Player {
	return g.player
}

// Blocks returns the remaining blocks. The slice must not be modified.
func (g *Game) Blocks() []Block {
	return g.blocks
}

// Balls returns the balls in play. The slice must not be modified.
func (g *Game) Balls() []Ball {
	return g.balls
}

// State returns the summary reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.state.String(),
		Score:    g.score,
		Lives:    g.player.Lives,
		GameOver: g.state == StateLevelCompleted || g.state == StateDead,
	}
}

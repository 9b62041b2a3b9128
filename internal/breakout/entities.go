package breakout

import (
	"math/rand/v2"

	"github.com/vovakirdan/breakout/internal/core"
)

// Entity dimensions and speeds in logical units (per second for speeds).
const (
	PlayerW      = 150
	PlayerH      = 40
	PlayerSpeed  = 700
	PlayerLives  = 3
	PlayerOffset = 100 // Distance from the paddle's top to the screen bottom

	BlockW      = 100
	BlockH      = 40
	BlockLives  = 2
	BlockPoints = 10

	BallSize  = 50
	BallSpeed = 400
)

// Player is the paddle at the bottom of the screen.
type Player struct {
	Rect  core.Rect
	Lives int
}

// NewPlayer places a paddle horizontally centered near the screen bottom.
func NewPlayer(screenW, screenH float64) Player {
	return Player{
		Rect:  core.NewRect(screenW*0.5-PlayerW*0.5, screenH-PlayerOffset, PlayerW, PlayerH),
		Lives: PlayerLives,
	}
}

// Update moves the paddle from horizontal input and keeps it on screen.
// Left and right together cancel out.
func (p *Player) Update(in core.Input, dt, screenW float64) {
	var move float64
	left, right := in.IsKeyDown(core.KeyLeft), in.IsKeyDown(core.KeyRight)
	switch {
	case left && !right:
		move = -1
	case right && !left:
		move = 1
	}

	p.Rect.X += move * dt * PlayerSpeed
	p.Rect.X = core.ClampF(p.Rect.X, 0, screenW-p.Rect.W)
}

// Draw renders the paddle.
func (p *Player) Draw(r core.Renderer) {
	r.DrawRectangle(p.Rect, core.ColorBlue)
}

// Block is a destructible brick.
type Block struct {
	Rect  core.Rect
	Lives int
}

// NewBlock creates a block with full lives at pos.
func NewBlock(pos core.Vec2) Block {
	return Block{
		Rect:  core.NewRect(pos.X, pos.Y, BlockW, BlockH),
		Lives: BlockLives,
	}
}

// Alive reports whether the block can still be hit.
func (b *Block) Alive() bool {
	return b.Lives > 0
}

// Draw renders the block, red while undamaged and orange after one hit.
func (b *Block) Draw(r core.Renderer) {
	c := core.ColorOrange
	if b.Lives >= BlockLives {
		c = core.ColorRed
	}
	r.DrawRectangle(b.Rect, c)
}

// Ball is a square projectile with a unit direction vector.
type Ball struct {
	Rect core.Rect
	Vel  core.Vec2
}

// NewBall creates a ball at pos heading downward with a random horizontal lean.
func NewBall(pos core.Vec2, rng *rand.Rand) Ball {
	dx := rng.Float64()*2 - 1
	return Ball{
		Rect: core.NewRect(pos.X, pos.Y, BallSize, BallSize),
		Vel:  core.Vec2{X: dx, Y: 1}.Normalize(),
	}
}

// Update moves the ball and turns it back from the left and right edges.
// The top and bottom are left open.
func (b *Ball) Update(dt, screenW float64) {
	b.Rect.X += b.Vel.X * dt * BallSpeed
	b.Rect.Y += b.Vel.Y * dt * BallSpeed

	bounceOffSides(b.Rect, &b.Vel, screenW)
}

// Draw renders the ball.
func (b *Ball) Draw(r core.Renderer) {
	r.DrawRectangle(b.Rect, core.ColorDarkGray)
}

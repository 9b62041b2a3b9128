package breakout

import (
	"math"

	"github.com/vovakirdan/breakout/internal/core"
)

// ResolveCollision pushes rect out of other and turns vel away from it.
//
// The bounce axis is picked from the overlap shape: an overlap wider than it
// is tall is a hit on the top or bottom face, anything else is a side hit.
// The push direction comes from the sign of the center-to-center offset on
// that axis. When the centers line up exactly (offset 0) the rect is not
// moved and the velocity on that axis is kept as is.
//
// Returns false, touching nothing, when the rectangles do not overlap.
func ResolveCollision(rect *core.Rect, vel *core.Vec2, other core.Rect) bool {
	overlap, ok := rect.Intersect(other)
	if !ok {
		return false
	}

	to := other.Center().Sub(rect.Center())

	if overlap.W > overlap.H {
		// bounce on y
		dir := core.Sign(to.Y)
		rect.Y -= dir * overlap.H
		if dir != 0 {
			vel.Y = -dir * math.Abs(vel.Y)
		}
	} else {
		// bounce on x
		dir := core.Sign(to.X)
		rect.X -= dir * overlap.W
		if dir != 0 {
			vel.X = -dir * math.Abs(vel.X)
		}
	}
	return true
}

// bounceOffSides points the horizontal velocity back into the screen when
// the ball has left it on the left or right. Magnitude is preserved.
func bounceOffSides(rect core.Rect, vel *core.Vec2, screenW float64) {
	if rect.X < 0 {
		vel.X = towards(1, vel.X)
	}
	if rect.X > screenW-rect.W {
		vel.X = towards(-1, vel.X)
	}
}

// towards returns v with its sign set to dir. A zero component becomes a
// unit step so the ball always heads back into play.
func towards(dir, v float64) float64 {
	if v == 0 {
		return dir
	}
	return dir * math.Abs(v)
}

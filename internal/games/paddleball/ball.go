// Package paddleball implements the paddle-and-ball engine behind the
// classic, brick and target game variants.
//
// The engine works in continuous world units with y growing downwards.
// Velocities are per-tick displacements; there is no delta-time scaling.
package paddleball

import (
	"math"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Ball is the moving ball. Pos is the centre.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Box returns the ball's bounding box.
func (b *Ball) Box() core.Box {
	return core.BoxAround(b.Pos, b.Radius)
}

// Bottom returns the lowest point of the ball.
func (b *Ball) Bottom() float64 {
	return b.Pos.Y + b.Radius
}

// Integrate moves the ball by one tick and reflects it off the left, right
// and top walls of a field of width w. It returns the number of wall
// contacts. The bottom is open.
func (b *Ball) Integrate(w float64) int {
	b.Pos = b.Pos.Add(b.Vel)
	hits := 0

	if b.Pos.X-b.Radius < 0 {
		b.Pos.X = b.Radius
		b.Vel.X = -b.Vel.X
		hits++
	}
	if b.Pos.X+b.Radius > w {
		b.Pos.X = w - b.Radius
		b.Vel.X = -b.Vel.X
		hits++
	}
	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = -b.Vel.Y
		hits++
	}
	return hits
}

// Lost reports whether the ball has left the field of height h through the
// bottom edge.
func (b *Ball) Lost(h float64) bool {
	return b.Pos.Y+b.Radius > h+b.Radius*2
}

// speedUp grows both velocity components by inc, keeping their signs, with
// each magnitude capped at limit.
func speedUp(v core.Vec2, inc, limit float64) core.Vec2 {
	grow := func(c float64) float64 {
		if c == 0 {
			return 0
		}
		return math.Copysign(math.Min(math.Abs(c)+inc, limit), c)
	}
	return core.Vec2{X: grow(v.X), Y: grow(v.Y)}
}

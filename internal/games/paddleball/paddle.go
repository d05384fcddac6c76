package paddleball

import (
	"math"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Paddle is the player's bat. Left is its left edge; Top is derived from the
// field height.
type Paddle struct {
	Left   float64
	Width  float64
	Height float64
	Top    float64
}

// Right returns the right edge.
func (p Paddle) Right() float64 {
	return p.Left + p.Width
}

// Center returns the horizontal centre.
func (p Paddle) Center() float64 {
	return p.Left + p.Width/2
}

// Clamp keeps the paddle inside [0, w-width].
func (p *Paddle) Clamp(w float64) {
	p.Left = core.ClampF(p.Left, 0, math.Max(0, w-p.Width))
}

// Place positions the paddle for a field of size w×h.
func (p *Paddle) Place(geo config.PaddleGeometry, w, h float64) {
	p.Width = geo.Width
	p.Height = geo.Height
	p.Top = h - geo.BottomOffset - geo.Height
	p.Clamp(w)
}

// Deflect handles ball contact. A contact counts only for a ball moving down
// whose bottom edge was strictly above the paddle top before the move
// (prevY is the previous centre) and is at or below it now, with horizontal
// extents overlapping. On contact the ball is put back on the paddle top, sent
// upwards and steered by where it landed.
func (p *Paddle) Deflect(b *Ball, prevY float64, ballCfg config.BallConfig, influence float64) bool {
	if b.Vel.Y <= 0 {
		return false
	}
	if prevY+b.Radius >= p.Top || b.Bottom() < p.Top {
		return false
	}
	if b.Pos.X+b.Radius < p.Left || b.Pos.X-b.Radius > p.Right() {
		return false
	}

	b.Pos.Y = p.Top - b.Radius

	up := math.Abs(b.Vel.Y)
	if ballCfg.HitSpeedUp > 0 {
		up *= ballCfg.HitSpeedUp
	}
	up = core.ClampF(math.Max(up, ballCfg.MinVertical), 0, ballCfg.MaxComponent)
	b.Vel.Y = -up

	hit := core.ClampF((b.Pos.X-p.Left)/p.Width, 0, 1)
	b.Vel.X = core.ClampF(b.Vel.X+(hit-0.5)*influence, -ballCfg.MaxComponent, ballCfg.MaxComponent)
	return true
}

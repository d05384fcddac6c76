package paddleball

import (
	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Brick is one damageable obstacle. Active stays equal to
// CurrentHits < HitsRequired.
type Brick struct {
	Row, Col     int
	Bounds       core.Box
	HitsRequired int
	CurrentHits  int
	Active       bool
	Base         core.RGB
	Color        core.RGB
}

// Hit applies one hit. It reports whether the hit landed and whether it broke
// the brick. Hitting an inactive brick does nothing.
func (b *Brick) Hit() (landed, broken bool) {
	if !b.Active {
		return false, false
	}
	b.CurrentHits++
	if b.CurrentHits >= b.HitsRequired {
		b.Active = false
		return true, true
	}
	return true, false
}

// shade recolours the brick toward dmg in proportion to the damage taken.
func (b *Brick) shade(dmg core.RGB, blend float64) {
	if b.HitsRequired <= 0 {
		b.Color = b.Base
		return
	}
	b.Color = b.Base.Lerp(dmg, blend*float64(b.CurrentHits)/float64(b.HitsRequired))
}

// Grid is the brick wall for one level.
type Grid struct {
	cfg     config.BricksConfig
	Bricks  []Brick
	Tier    int
	palette []core.RGB
	damage  core.RGB
}

// TierFor returns the index of the last tier whose MinScore is <= score.
func TierFor(tiers []config.BrickTier, score int) int {
	idx := 0
	for i, t := range tiers {
		if score >= t.MinScore {
			idx = i
		}
	}
	return idx
}

// HitsFor returns the hits required for a row under a tier's rules.
func HitsFor(tier config.BrickTier, row, rows int) int {
	for _, rule := range tier.Rows {
		if float64(row) >= float64(rows)*rule.From {
			return max(1, rule.Hits)
		}
	}
	return 1
}

// NewGrid builds a fresh wall for a field of width w. The difficulty tier is
// picked once from score and not revisited until the next level.
func NewGrid(cfg config.BricksConfig, w float64, score int) *Grid {
	g := &Grid{cfg: cfg, damage: core.Hex(0xFFFFFF)}
	for _, s := range cfg.Palette {
		if c, err := core.ParseHex(s); err == nil {
			g.palette = append(g.palette, c)
		}
	}
	if c, err := core.ParseHex(cfg.DamageColor); err == nil {
		g.damage = c
	}

	var tier config.BrickTier
	if len(cfg.Tiers) > 0 {
		g.Tier = TierFor(cfg.Tiers, score)
		tier = cfg.Tiers[g.Tier]
	}

	g.Bricks = make([]Brick, 0, cfg.Rows*cfg.Cols)
	for r := 0; r < cfg.Rows; r++ {
		hits := HitsFor(tier, r, cfg.Rows)
		for c := 0; c < cfg.Cols; c++ {
			b := Brick{
				Row:          r,
				Col:          c,
				HitsRequired: hits,
				Active:       true,
				Base:         g.colorFor(hits),
			}
			b.Color = b.Base
			g.Bricks = append(g.Bricks, b)
		}
	}
	g.Layout(w)
	return g
}

func (g *Grid) colorFor(hits int) core.RGB {
	if len(g.palette) == 0 {
		return core.ColorSecondary
	}
	return g.palette[(hits-1)%len(g.palette)]
}

// brickWidth is the width of one brick for a field of width w.
func (g *Grid) brickWidth(w float64) float64 {
	if g.cfg.Cols <= 0 {
		return 0
	}
	return (w - 2*g.cfg.OffsetSide - float64(g.cfg.Cols-1)*g.cfg.Padding) / float64(g.cfg.Cols)
}

// Fits reports whether the grid can be laid out across width w.
func (g *Grid) Fits(w float64) bool {
	return g.brickWidth(w) > 0
}

// Layout recomputes brick bounds for width w, keeping damage state.
func (g *Grid) Layout(w float64) {
	bw := g.brickWidth(w)
	for i := range g.Bricks {
		b := &g.Bricks[i]
		b.Bounds = core.Box{
			X: g.cfg.OffsetSide + float64(b.Col)*(bw+g.cfg.Padding),
			Y: g.cfg.OffsetTop + float64(b.Row)*(g.cfg.Height+g.cfg.Padding),
			W: bw,
			H: g.cfg.Height,
		}
	}
}

// Collision is the outcome of resolving the ball against the grid.
type Collision struct {
	Index  int
	Broken bool
}

// Resolve tests the ball against active bricks and handles at most one
// contact: the first overlapping brick in row-major order. The ball reflects
// on the axis with the shallower overlap and is pushed clear of the brick on
// that axis.
func (g *Grid) Resolve(ball *Ball) (Collision, bool) {
	bb := ball.Box()
	for i := range g.Bricks {
		brick := &g.Bricks[i]
		if !brick.Active {
			continue
		}
		ox, oy, ok := bb.Overlap(brick.Bounds)
		if !ok {
			continue
		}

		landed, broken := brick.Hit()
		if !landed {
			return Collision{}, false
		}
		if !broken {
			brick.shade(g.damage, g.cfg.DamageBlend)
		}

		center := brick.Bounds.Center()
		if ox < oy {
			ball.Vel.X = -ball.Vel.X
			if ball.Pos.X < center.X {
				ball.Pos.X = brick.Bounds.Left() - ball.Radius
			} else {
				ball.Pos.X = brick.Bounds.Right() + ball.Radius
			}
		} else {
			ball.Vel.Y = -ball.Vel.Y
			if ball.Pos.Y < center.Y {
				ball.Pos.Y = brick.Bounds.Top() - ball.Radius
			} else {
				ball.Pos.Y = brick.Bounds.Bottom() + ball.Radius
			}
		}
		return Collision{Index: i, Broken: broken}, true
	}
	return Collision{}, false
}

// Cleared reports whether every brick is inactive. An empty grid is never
// cleared.
func (g *Grid) Cleared() bool {
	if len(g.Bricks) == 0 {
		return false
	}
	for i := range g.Bricks {
		if g.Bricks[i].Active {
			return false
		}
	}
	return true
}

// Remaining returns the number of active bricks.
func (g *Grid) Remaining() int {
	n := 0
	for i := range g.Bricks {
		if g.Bricks[i].Active {
			n++
		}
	}
	return n
}

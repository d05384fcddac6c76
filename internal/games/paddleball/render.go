package paddleball

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Visual characters for rendering
const (
	BallChar      = '●'
	TrailChar     = '·'
	PaddleChar    = '▀'
	BrickChar     = '█'
	CrackedChar   = '▓'
	RoundChar     = '◍'
	SquareChar    = '■'
	HitFlashChar  = '✶'
	SeparatorChar = '─'
)

type palette struct {
	ball, paddle, border, text, field, trail core.RGB
}

func newPalette(c config.PaddleColors) palette {
	pick := func(s string, fallback core.RGB) core.RGB {
		if v, err := core.ParseHex(s); err == nil {
			return v
		}
		return fallback
	}
	return palette{
		ball:   pick(c.Ball, core.ColorPrimary),
		paddle: pick(c.Paddle, core.ColorSecondary),
		border: pick(c.Border, core.ColorBorder),
		text:   pick(c.Text, core.ColorText),
		field:  pick(c.Background, core.ColorField),
		trail:  pick(c.Trail, core.ColorAccent),
	}
}

// col and row map world coordinates to screen cells.
func (g *Game) col(x float64) int {
	return int(math.Floor(x / g.cfg.Viewport.UnitsPerCol))
}

func (g *Game) row(y float64) int {
	return g.cfg.Viewport.HUDRows + int(math.Floor(y/g.cfg.Viewport.UnitsPerRow))
}

// cellRect returns the cells covered by a world box, at least one cell.
func (g *Game) cellRect(b core.Box) core.Rect {
	x0, y0 := g.col(b.Left()), g.row(b.Top())
	x1, y1 := g.col(b.Right()-1e-9), g.row(b.Bottom()-1e-9)
	return core.NewRect(x0, y0, max(1, x1-x0+1), max(1, y1-y0+1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	e := g.engine

	hud := g.cfg.Viewport.HUDRows
	field := g.colors.field
	if t := e.Targets(); t != nil {
		field = t.BackgroundColor()
	}
	dst.FillBG(core.NewRect(0, hud, dst.Width(), dst.Height()-hud), field)

	g.renderHUD(dst)
	if !e.Valid() {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", g.colors.text)
		return
	}

	g.renderBricks(dst)
	g.renderTargets(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.engine.State()
	left := fmt.Sprintf("Score: %d", st.Score)
	dst.DrawTextFG(1, 0, left, g.colors.text)

	right := fmt.Sprintf("High: %d", st.High)
	if g.cfg.Gameplay.Lives > 1 {
		right = fmt.Sprintf("Lives: %d  %s", st.Lives, right)
	}
	if g.engine.Grid() != nil {
		right = fmt.Sprintf("Level: %d  %s", st.Level, right)
	}
	dst.DrawTextFG(dst.Width()-len([]rune(right))-1, 0, right, g.colors.text)

	if g.cfg.Viewport.HUDRows > 1 {
		for x, w := 0, dst.Width(); x < w; x++ {
			dst.SetFG(x, 1, SeparatorChar, g.colors.border)
		}
	}
}

func (g *Game) renderBricks(dst *core.Screen) {
	grid := g.engine.Grid()
	if grid == nil {
		return
	}
	for i := range grid.Bricks {
		b := &grid.Bricks[i]
		if !b.Active {
			continue
		}
		glyph := BrickChar
		if b.CurrentHits > 0 {
			glyph = CrackedChar
		}
		dst.DrawRect(g.cellRect(b.Bounds), glyph, b.Color)
	}
}

func (g *Game) renderTargets(dst *core.Screen) {
	tf := g.engine.Targets()
	if tf == nil {
		return
	}
	for i := range tf.Targets {
		t := &tf.Targets[i]
		switch {
		case t.Live():
			glyph := SquareChar
			if t.Round {
				glyph = RoundChar
			}
			dst.DrawRect(g.cellRect(t.Bounds), glyph, t.Color)
		case tf.Animating(t):
			c := t.Bounds.Center()
			dst.SetFG(g.col(c.X), g.row(c.Y), HitFlashChar, t.Color)
		}
	}

	if tf.TrailActive() {
		for _, p := range g.engine.Trail() {
			dst.SetFG(g.col(p.X), g.row(p.Y), TrailChar, g.colors.trail)
		}
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	p := g.engine.Paddle()
	r := g.cellRect(core.Box{X: p.Left, Y: p.Top, W: p.Width, H: p.Height})
	r.H = 1
	dst.DrawRect(r, PaddleChar, g.colors.paddle)
}

func (g *Game) renderBall(dst *core.Screen) {
	b := g.engine.Ball()
	y := g.row(b.Pos.Y)
	if y >= dst.Height() {
		return
	}
	dst.SetFG(g.col(b.Pos.X), y, BallChar, g.colors.ball)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	st := g.engine.State()
	mid := dst.Height() / 2
	switch g.engine.Status() {
	case StateReady:
		dst.DrawTextCentered(mid+2, "Tap SPACE to start", g.colors.text)
		if st.High > 0 {
			dst.DrawTextCentered(mid+3, fmt.Sprintf("High Score: %d", st.High), g.colors.text)
		}
	case StateCleared:
		g.drawCenteredBox(dst, fmt.Sprintf("LEVEL %d CLEARED", st.Level), "SPACE for the next wall")
	case StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  High: %d  |  SPACE to restart", st.Score, st.High))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ', g.colors.text)
	dst.FillBG(r, core.Hex(0x000000))
	dst.DrawBox(r, g.colors.border)
	dst.DrawTextCentered(r.Y+1, title, g.colors.ball)
	dst.DrawTextCentered(r.Y+3, subtitle, g.colors.text)
}

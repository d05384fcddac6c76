package helix

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	SafeChar     = '▬'
	KillChar     = '▓'
	CoreChar     = '┊'
	hudRows      = 2
	minFieldRows = 6
	minFieldCols = 12
)

type palette struct {
	ball, safe, kill, text, border core.RGB
}

func newPalette(c config.HelixColors) palette {
	pick := func(s string, fallback core.RGB) core.RGB {
		if v, err := core.ParseHex(s); err == nil {
			return v
		}
		return fallback
	}
	return palette{
		ball:   pick(c.Ball, core.ColorAccent),
		safe:   pick(c.Safe, core.ColorBorder),
		kill:   pick(c.Kill, core.ColorPrimary),
		text:   pick(c.Text, core.ColorText),
		border: pick(c.Border, core.ColorBorder),
	}
}

// view maps tower coordinates to screen cells. The tower is unrolled: the
// full circumference spans the field width with the ball in the centre
// column, and the camera keeps the ball on a fixed row.
type view struct {
	w, h    int
	ballCol int
	ballRow int
	rows    float64 // screen rows per tower unit
}

func (g *Game) view(dst *core.Screen) view {
	h := dst.Height() - hudRows
	return view{
		w:       dst.Width(),
		h:       h,
		ballCol: dst.Width() / 2,
		ballRow: hudRows + h/3,
		rows:    g.cfg.Tower.RowsPerUnit,
	}
}

// angleAt returns the tower angle shown in column x.
func (v view) angleAt(x int) float64 {
	return ballAngle + float64(x-v.ballCol)*2*math.Pi/float64(v.w)
}

// rowOf returns the screen row of tower height y.
func (v view) rowOf(y, ballY float64) int {
	return v.ballRow + int(math.Round((ballY-y)*v.rows))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	colors := newPalette(g.cfg.Colors)

	field := g.params.Core.Lerp(core.Hex(0x000000), 0.8)
	dst.FillBG(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows), field)
	g.renderHUD(dst, colors)

	if dst.Width() < minFieldCols || dst.Height()-hudRows < minFieldRows {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", colors.text)
		return
	}

	v := g.view(dst)
	for y := hudRows; y < dst.Height(); y++ {
		dst.SetFG(0, y, CoreChar, g.params.Core)
		dst.SetFG(v.w-1, y, CoreChar, g.params.Core)
	}

	for i := range g.platforms {
		p := &g.platforms[i]
		row := v.rowOf(p.Y, g.ballY)
		if row < hudRows || row >= dst.Height() {
			continue
		}
		for x := 1; x < v.w-1; x++ {
			switch p.SegmentAt(v.angleAt(x), g.rotation) {
			case SegmentSafe:
				dst.SetFG(x, row, SafeChar, colors.safe)
			case SegmentKill:
				dst.SetFG(x, row, KillChar, colors.kill)
			}
		}
	}

	// The ball sits just above whatever surface shares its row.
	dst.SetFG(v.ballCol, v.ballRow-1, BallChar, colors.ball)

	g.renderOverlay(dst, colors)
}

// comboLabel names the current streak for the HUD.
func (g *Game) comboLabel() string {
	switch {
	case g.combo >= g.cfg.Scoring.ComboHigh && g.cfg.Scoring.ComboHigh > 0:
		return fmt.Sprintf("ON FIRE x%d", g.combo)
	case g.combo >= g.cfg.Scoring.ComboMedium && g.cfg.Scoring.ComboMedium > 0:
		return fmt.Sprintf("HOT x%d", g.combo)
	case g.combo > 1:
		return fmt.Sprintf("x%d", g.combo)
	}
	return ""
}

func (g *Game) renderHUD(dst *core.Screen, colors palette) {
	st := g.State()
	dst.DrawTextFG(1, 0, fmt.Sprintf("Score: %d", st.Score), colors.text)

	if label := g.comboLabel(); label != "" {
		dst.DrawTextCentered(0, label, colors.ball)
	}

	right := fmt.Sprintf("Level: %d  High: %d", st.Level, st.High)
	dst.DrawTextFG(dst.Width()-len([]rune(right))-1, 0, right, colors.text)

	for x, w := 0, dst.Width(); x < w; x++ {
		dst.SetFG(x, 1, '─', colors.border)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, colors palette) {
	mid := dst.Height() / 2
	switch g.state {
	case StateIdle:
		msg := "Tap SPACE to start"
		if g.resume != "" {
			msg = "Tap SPACE to resume"
		}
		dst.DrawTextCentered(mid+2, msg, colors.text)
		if g.high > 0 {
			dst.DrawTextCentered(mid+3, fmt.Sprintf("High Score: %d", g.high), colors.text)
		}
	case StateTransition:
		dst.DrawTextCentered(mid+2, fmt.Sprintf("LEVEL %d", g.level), colors.ball)
		switch {
		case g.params.Breather:
			dst.DrawTextCentered(mid+3, "Breather level", colors.safe)
		case g.params.Adaptive:
			dst.DrawTextCentered(mid+3, "Kill zones narrowed", colors.safe)
		}
	case StateGameOver:
		drawCenteredBox(dst, colors, "GAME OVER",
			fmt.Sprintf("Score: %d  High: %d  |  SPACE to restart", g.score, max(g.high, g.score)))
	}
	if g.mercyFlash > 0 && g.state == StatePlaying {
		dst.DrawTextCentered(mid+2, "SAVED!", colors.safe)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, colors palette, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ', colors.text)
	dst.FillBG(r, core.Hex(0x000000))
	dst.DrawBox(r, colors.border)
	dst.DrawTextCentered(r.Y+1, title, colors.kill)
	dst.DrawTextCentered(r.Y+3, subtitle, colors.text)
}

package paddleball

import (
	"math"
	"testing"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
)

func newTestEngine(t *testing.T, variant string, w, h float64) *Engine {
	t.Helper()
	cfg := config.DefaultPaddleConfig(variant)
	e := NewEngine(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	e.SetField(w, h)
	e.Reset()
	return e
}

func play(e *Engine) {
	e.state = StatePlaying
}

func TestWallReflection(t *testing.T) {
	tests := []struct {
		name       string
		ball       Ball
		expectedX  float64
		expectedY  float64
		expectedVX float64
		expectedVY float64
	}{
		{"left", Ball{Pos: core.Vec2{X: 4, Y: 50}, Vel: core.Vec2{X: -6, Y: 1}, Radius: 3}, 3, 51, 6, 1},
		{"right", Ball{Pos: core.Vec2{X: 95, Y: 50}, Vel: core.Vec2{X: 4, Y: 1}, Radius: 3}, 97, 51, -4, 1},
		{"top", Ball{Pos: core.Vec2{X: 50, Y: 4}, Vel: core.Vec2{X: 1, Y: -5}, Radius: 3}, 51, 3, 1, 5},
		{"none", Ball{Pos: core.Vec2{X: 50, Y: 50}, Vel: core.Vec2{X: 1, Y: 1}, Radius: 3}, 51, 51, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.ball
			hits := b.Integrate(100)
			if b.Pos.X != tc.expectedX || b.Pos.Y != tc.expectedY {
				t.Errorf("pos = (%v, %v), expected (%v, %v)", b.Pos.X, b.Pos.Y, tc.expectedX, tc.expectedY)
			}
			if b.Vel.X != tc.expectedVX || b.Vel.Y != tc.expectedVY {
				t.Errorf("vel = (%v, %v), expected (%v, %v)", b.Vel.X, b.Vel.Y, tc.expectedVX, tc.expectedVY)
			}
			if (tc.name == "none") != (hits == 0) {
				t.Errorf("wall hits = %d", hits)
			}
		})
	}
}

func TestBallDoesNotLeaveThroughTop(t *testing.T) {
	b := Ball{Pos: core.Vec2{X: 50, Y: 2}, Vel: core.Vec2{X: 0, Y: -10}, Radius: 3}
	b.Integrate(100)
	if b.Pos.Y != 3 || b.Vel.Y <= 0 {
		t.Errorf("ball escaped the top: pos %v vel %v", b.Pos, b.Vel)
	}
}

func TestPaddleContactScenario(t *testing.T) {
	// 300x400 field, radius 10, paddle spanning [100,200] with its top at 385.
	cfg := config.DefaultPaddleConfig(config.VariantClassic)
	cfg.Ball.Radius = 10
	cfg.Paddle.Width = 100
	cfg.Paddle.Height = 10
	cfg.Paddle.BottomOffset = 5

	e := NewEngine(cfg, core.RuntimeConfig{TickRate: 60, Seed: 1})
	e.SetField(300, 400)
	e.Reset()
	e.paddle.Left = 100
	if e.paddle.Top != 385 {
		t.Fatalf("paddle top = %v, expected 385", e.paddle.Top)
	}

	// Bottom edge at 380 is above the paddle top; after the move it is at 388.
	e.ball = Ball{Pos: core.Vec2{X: 150, Y: 370}, Vel: core.Vec2{X: 0, Y: 8}, Radius: 10}
	play(e)

	ev := e.Step(core.NewInputFrame())

	if !ev.Has(core.EventPaddleHit) {
		t.Fatal("expected a paddle hit")
	}
	if e.ball.Pos.Y != 375 {
		t.Errorf("ball y = %v, expected 375", e.ball.Pos.Y)
	}
	if e.ball.Vel.Y >= 0 {
		t.Errorf("ball dy = %v, expected upward", e.ball.Vel.Y)
	}
	if e.score != cfg.Scoring.PaddleHit {
		t.Errorf("score = %d, expected %d", e.score, cfg.Scoring.PaddleHit)
	}
}

func TestPaddleGuardRejectsBallAlreadyBelowTop(t *testing.T) {
	p := Paddle{Left: 100, Width: 100, Height: 10, Top: 385}
	bc := config.BallConfig{MaxComponent: 20, MinVertical: 1, HitSpeedUp: 1}

	// Previous bottom exactly on the top edge: the strict guard refuses it.
	b := Ball{Pos: core.Vec2{X: 150, Y: 380}, Vel: core.Vec2{Y: 5}, Radius: 10}
	if p.Deflect(&b, 375, bc, 1) {
		t.Error("ball whose previous bottom touched the top must not register")
	}

	// Moving up never registers.
	b = Ball{Pos: core.Vec2{X: 150, Y: 380}, Vel: core.Vec2{Y: -5}, Radius: 10}
	if p.Deflect(&b, 370, bc, 1) {
		t.Error("upward ball must not register")
	}

	// Outside the horizontal span.
	b = Ball{Pos: core.Vec2{X: 250, Y: 380}, Vel: core.Vec2{Y: 5}, Radius: 10}
	if p.Deflect(&b, 370, bc, 1) {
		t.Error("ball beside the paddle must not register")
	}
}

func TestPaddleBiasIsMonotonic(t *testing.T) {
	p := Paddle{Left: 100, Width: 100, Height: 10, Top: 385}
	bc := config.BallConfig{MaxComponent: 5, MinVertical: 1, HitSpeedUp: 1}

	dxAt := func(x float64) float64 {
		b := Ball{Pos: core.Vec2{X: x, Y: 380}, Vel: core.Vec2{Y: 3}, Radius: 5}
		if !p.Deflect(&b, 376, bc, 2) {
			t.Fatalf("expected contact at x=%v", x)
		}
		return b.Vel.X
	}

	left, mid, right := dxAt(100), dxAt(150), dxAt(200)
	if left >= 0 {
		t.Errorf("left edge dx = %v, expected < 0", left)
	}
	if mid != 0 {
		t.Errorf("centre dx = %v, expected 0", mid)
	}
	if right <= 0 {
		t.Errorf("right edge dx = %v, expected > 0", right)
	}
	if !(left < mid && mid < right) {
		t.Errorf("dx not monotonic: %v %v %v", left, mid, right)
	}
}

func TestPaddleClampsAndFloorsSpeed(t *testing.T) {
	p := Paddle{Left: 0, Width: 100, Height: 10, Top: 385}
	bc := config.BallConfig{MaxComponent: 2, MinVertical: 1.5, HitSpeedUp: 1.1}

	b := Ball{Pos: core.Vec2{X: 100, Y: 380}, Vel: core.Vec2{X: 1.9, Y: 0.2}, Radius: 5}
	if !p.Deflect(&b, 379, bc, 4) {
		t.Fatal("expected contact")
	}
	if b.Vel.X != 2 {
		t.Errorf("dx = %v, expected clamp to 2", b.Vel.X)
	}
	if b.Vel.Y != -1.5 {
		t.Errorf("dy = %v, expected floor of -1.5", b.Vel.Y)
	}
}

func TestMilestoneIdempotence(t *testing.T) {
	e := newTestEngine(t, config.VariantBricks, 320, 400)
	e.ball = Ball{Pos: core.Vec2{X: 160, Y: 250}, Vel: core.Vec2{X: 1, Y: -1}, Radius: 3}
	e.score = 55
	play(e)

	speedUps := 0
	for j := 0; j < 10; j++ {
		ev := e.Step(core.NewInputFrame())
		speedUps += ev.Count(core.EventSpeedUp)
	}

	if speedUps != 1 {
		t.Errorf("speed ups = %d, expected exactly 1", speedUps)
	}
	inc := e.cfg.Milestones.Increment
	if math.Abs(e.ball.Vel.X-(1+inc)) > 1e-9 || math.Abs(e.ball.Vel.Y-(-1-inc)) > 1e-9 {
		t.Errorf("velocity = %v, expected one increment of %v", e.ball.Vel, inc)
	}
}

func TestMilestoneAdvancesOneThresholdAtATime(t *testing.T) {
	m := Milestone{Interval: 50}
	if m.Advance(49) {
		t.Error("no threshold below 50")
	}
	if !m.Advance(120) || !m.Advance(120) {
		t.Error("score 120 should consume two thresholds")
	}
	if m.Advance(120) {
		t.Error("thresholds already consumed")
	}
	if m.Reached != 2 {
		t.Errorf("Reached = %d, expected 2", m.Reached)
	}
}

func TestBrickDamageIsTerminal(t *testing.T) {
	for n := 1; n <= 3; n++ {
		b := Brick{HitsRequired: n, Active: true}
		for i := 1; i <= n; i++ {
			landed, broken := b.Hit()
			if !landed {
				t.Fatalf("hit %d of %d did not land", i, n)
			}
			if broken != (i == n) {
				t.Errorf("n=%d hit %d broken=%v", n, i, broken)
			}
			if b.Active != (b.CurrentHits < b.HitsRequired) {
				t.Errorf("active flag out of sync at hit %d", i)
			}
		}
		if landed, _ := b.Hit(); landed || b.CurrentHits != n {
			t.Errorf("hit after break changed state: hits=%d", b.CurrentHits)
		}
	}
}

func TestGridClearedOnlyWhenAllBroken(t *testing.T) {
	cfg := *config.DefaultPaddleConfig(config.VariantBricks).Bricks
	g := NewGrid(cfg, 320, 0)
	if len(g.Bricks) != cfg.Rows*cfg.Cols {
		t.Fatalf("bricks = %d, expected %d", len(g.Bricks), cfg.Rows*cfg.Cols)
	}
	if g.Cleared() {
		t.Fatal("fresh grid reported cleared")
	}

	for i := range g.Bricks {
		for g.Bricks[i].Active {
			g.Bricks[i].Hit()
		}
		if i < len(g.Bricks)-1 && g.Cleared() {
			t.Fatalf("cleared with %d bricks left", g.Remaining())
		}
	}
	if !g.Cleared() {
		t.Error("grid with every brick broken should be cleared")
	}

	if (&Grid{}).Cleared() {
		t.Error("empty grid must not count as cleared")
	}
}

func TestTierSelection(t *testing.T) {
	tiers := config.DefaultPaddleConfig(config.VariantBricks).Bricks.Tiers
	tests := []struct {
		score    int
		expected int
	}{
		{0, 0}, {199, 0}, {200, 1}, {499, 1}, {500, 2}, {10000, 2},
	}
	for _, tc := range tests {
		if got := TierFor(tiers, tc.score); got != tc.expected {
			t.Errorf("TierFor(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}

	// Five rows at tier 0: only row 4 (>= 3.5) is tough.
	expected := []int{1, 1, 1, 1, 2}
	for r, want := range expected {
		if got := HitsFor(tiers[0], r, 5); got != want {
			t.Errorf("tier 0 row %d hits = %d, expected %d", r, got, want)
		}
	}

	// Tier 2: rows >= 3 take three hits, rows >= 1 take two.
	expected = []int{1, 2, 2, 3, 3}
	for r, want := range expected {
		if got := HitsFor(tiers[2], r, 5); got != want {
			t.Errorf("tier 2 row %d hits = %d, expected %d", r, got, want)
		}
	}
}

func TestGridResolveReflectsAndPushesOut(t *testing.T) {
	cfg := config.BricksConfig{Rows: 1, Cols: 1, Height: 10, OffsetTop: 20, OffsetSide: 0, DamageBlend: 0.5,
		Tiers: []config.BrickTier{{Rows: []config.RowRule{{From: 0, Hits: 2}}}}}
	g := NewGrid(cfg, 100, 0)
	brick := g.Bricks[0].Bounds // 0..100 x 20..30

	// Coming up into the underside: shallow y overlap.
	ball := Ball{Pos: core.Vec2{X: 50, Y: 32}, Vel: core.Vec2{X: 1, Y: -2}, Radius: 3}
	hit, ok := g.Resolve(&ball)
	if !ok || hit.Broken {
		t.Fatalf("expected a damaging hit, got %+v ok=%v", hit, ok)
	}
	if ball.Vel.Y != 2 || ball.Vel.X != 1 {
		t.Errorf("vel = %v, expected dy flipped", ball.Vel)
	}
	if ball.Pos.Y != brick.Bottom()+3 {
		t.Errorf("ball y = %v, expected pushed below brick", ball.Pos.Y)
	}
	if g.Bricks[0].Color == g.Bricks[0].Base {
		t.Error("damaged brick should be recoloured")
	}

	ball = Ball{Pos: core.Vec2{X: 50, Y: 28}, Vel: core.Vec2{Y: -2}, Radius: 3}
	if hit, ok = g.Resolve(&ball); !ok || !hit.Broken {
		t.Fatalf("second hit should break the brick, got %+v", hit)
	}
	ball = Ball{Pos: core.Vec2{X: 50, Y: 28}, Vel: core.Vec2{Y: -2}, Radius: 3}
	if _, ok = g.Resolve(&ball); ok {
		t.Error("broken brick must not be hit again")
	}
}

func TestEngineBrickScoring(t *testing.T) {
	e := newTestEngine(t, config.VariantBricks, 320, 400)
	b := e.grid.Bricks[0]
	c := b.Bounds.Center()
	e.ball = Ball{Pos: core.Vec2{X: c.X, Y: b.Bounds.Bottom() + 2}, Vel: core.Vec2{Y: -2}, Radius: 3}
	play(e)

	ev := e.Step(core.NewInputFrame())
	if b.HitsRequired == 1 {
		if !ev.Has(core.EventBrickBroken) || e.score != e.cfg.Scoring.BrickBreakPerHit {
			t.Errorf("break: events %v score %d", ev, e.score)
		}
	} else if !ev.Has(core.EventBrickDamaged) || e.score != e.cfg.Scoring.BrickDamage {
		t.Errorf("damage: events %v score %d", ev, e.score)
	}
}

func TestLevelClearAndNextLevel(t *testing.T) {
	e := newTestEngine(t, config.VariantBricks, 320, 400)
	for i := range e.grid.Bricks[1:] {
		b := &e.grid.Bricks[i+1]
		for b.Active {
			b.Hit()
		}
	}
	last := e.grid.Bricks[0]
	for j, n := 0, last.HitsRequired-1; j < n; j++ {
		e.grid.Bricks[0].Hit()
	}
	c := last.Bounds.Center()
	e.ball = Ball{Pos: core.Vec2{X: c.X, Y: last.Bounds.Bottom() + 2}, Vel: core.Vec2{Y: -2}, Radius: 3}
	e.score = 210
	play(e)

	ev := e.Step(core.NewInputFrame())
	if !ev.Has(core.EventLevelClear) || e.state != StateCleared {
		t.Fatalf("expected level clear, state %s events %v", e.state, ev)
	}
	if e.State().Active {
		t.Error("cleared level must not be active")
	}

	score := e.score
	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	ev = e.Step(start)
	if !ev.Has(core.EventLevelStart) {
		t.Error("expected level start")
	}
	if e.level != 2 || e.score != score || e.grid.Cleared() {
		t.Errorf("next level: level %d score %d cleared %v", e.level, e.score, e.grid.Cleared())
	}
	if e.grid.Tier != 1 {
		t.Errorf("tier = %d, expected 1 for score %d", e.grid.Tier, score)
	}
}

func TestBallLostUsesLivesThenGameOver(t *testing.T) {
	e := newTestEngine(t, config.VariantBricks, 320, 400)
	lives := e.lives
	if lives < 2 {
		t.Fatalf("bricks preset should have spare lives, got %d", lives)
	}

	lose := func() core.Events {
		e.ball = Ball{Pos: core.Vec2{X: 160, Y: 405}, Vel: core.Vec2{Y: 5}, Radius: 3}
		play(e)
		return e.Step(core.NewInputFrame())
	}

	for i := 1; i < lives; i++ {
		ev := lose()
		if !ev.Has(core.EventBallLost) || e.state != StateReady {
			t.Fatalf("life %d: state %s events %v", i, e.state, ev)
		}
	}
	ev := lose()
	if !ev.Has(core.EventGameOver) || e.state != StateGameOver || !e.State().GameOver {
		t.Fatalf("expected game over, state %s", e.state)
	}
}

func TestClassicSingleLifeGameOver(t *testing.T) {
	e := newTestEngine(t, config.VariantClassic, 300, 400)
	e.ball = Ball{Pos: core.Vec2{X: 150, Y: 405}, Vel: core.Vec2{Y: 5}, Radius: 3}
	play(e)
	if ev := e.Step(core.NewInputFrame()); !ev.Has(core.EventGameOver) {
		t.Errorf("expected game over, events %v", ev)
	}

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	e.Step(start)
	if e.state != StatePlaying || e.score != 0 {
		t.Errorf("tap after game over should start a fresh round, state %s score %d", e.state, e.score)
	}
}

func TestInvalidLayoutIsNoOp(t *testing.T) {
	for _, size := range [][2]float64{{0, 0}, {-10, 400}, {300, 0}, {math.Inf(1), 400}, {300, 10}} {
		e := newTestEngine(t, config.VariantBricks, size[0], size[1])
		play(e)
		before := e.Snapshot()
		e.Step(core.NewInputFrame())
		after := e.Snapshot()
		if before.Hash() != after.Hash() {
			t.Errorf("size %v: step changed state", size)
		}
		if !e.ball.Pos.Finite() {
			t.Errorf("size %v: ball position %v", size, e.ball.Pos)
		}
	}
}

func TestBackgroundKeepsBallAndScore(t *testing.T) {
	e := newTestEngine(t, config.VariantClassic, 300, 400)
	play(e)
	for j := 0; j < 5; j++ {
		e.Step(core.NewInputFrame())
	}
	e.score = 7
	ball := e.ball

	e.Background()
	if e.State().Active || e.state != StateReady {
		t.Fatalf("background should leave play, state %s", e.state)
	}
	if e.ball != ball || e.score != 7 {
		t.Error("background must not alter ball or score")
	}

	before := e.Snapshot()
	e.Step(core.NewInputFrame())
	if after := e.Snapshot(); after.Hash() != before.Hash() {
		t.Error("inactive engine advanced")
	}
}

func TestResizeKeepsScore(t *testing.T) {
	e := newTestEngine(t, config.VariantBricks, 320, 400)
	e.score = 42
	e.grid.Bricks[3].Hit()
	e.ball.Pos = core.Vec2{X: 100, Y: 200}

	e.Resize(640, 800)

	if e.score != 42 {
		t.Errorf("score = %d after resize", e.score)
	}
	if e.ball.Pos.X != 200 || e.ball.Pos.Y != 400 {
		t.Errorf("ball = %v, expected scaled to (200, 400)", e.ball.Pos)
	}
	if e.grid.Bricks[3].CurrentHits != 1 {
		t.Error("resize lost brick damage")
	}
	if e.paddle.Top != 800-e.cfg.Paddle.BottomOffset-e.cfg.Paddle.Height {
		t.Errorf("paddle top = %v", e.paddle.Top)
	}
	if e.paddle.Right() > 640 {
		t.Error("paddle outside field after resize")
	}
}

func TestResizeThroughUnusableFieldKeepsBall(t *testing.T) {
	e := newTestEngine(t, config.VariantBricks, 320, 400)
	play(e)
	e.ball.Pos = core.Vec2{X: 160, Y: 300}
	e.ball.Vel = core.Vec2{X: 0, Y: 1.2}
	lives := e.lives

	e.Resize(320, -8)
	e.Resize(320, 176)

	if math.Abs(e.ball.Pos.Y-132) > 1e-9 {
		t.Errorf("ball y = %v, expected 132 scaled from the last usable field", e.ball.Pos.Y)
	}
	ev := e.Step(core.NewInputFrame())
	if ev.Has(core.EventBallLost) || e.lives != lives {
		t.Errorf("resize cost a life: lives %d -> %d, events %v", lives, e.lives, ev)
	}
}

func TestResizeClampsBallIntoField(t *testing.T) {
	e := newTestEngine(t, config.VariantClassic, 300, 400)
	e.ball.Pos = core.Vec2{X: 150, Y: 500}

	e.Resize(300, 400)

	if e.ball.Pos.Y != 400-e.ball.Radius {
		t.Errorf("ball y = %v, expected clamped to %v", e.ball.Pos.Y, 400-e.ball.Radius)
	}
}

func TestFirstUsableSizeLaysOutRound(t *testing.T) {
	e := newTestEngine(t, config.VariantBricks, math.Inf(1), 400)
	if e.grid != nil || e.Valid() {
		t.Fatal("round should wait for a usable field")
	}
	if !e.ball.Pos.Finite() {
		t.Fatalf("ball position %v", e.ball.Pos)
	}

	e.Resize(320, 400)

	if !e.Valid() || e.grid == nil {
		t.Fatal("usable resize should lay out the round")
	}
	if e.ball.Pos != (core.Vec2{X: 160, Y: 200}) {
		t.Errorf("ball = %v, expected served at the field centre", e.ball.Pos)
	}
}

func TestDragClampsPaddle(t *testing.T) {
	e := newTestEngine(t, config.VariantClassic, 300, 400)
	e.Drag(-1000)
	if e.paddle.Left != 0 {
		t.Errorf("left = %v, expected 0", e.paddle.Left)
	}
	e.Drag(1000)
	if e.paddle.Right() != 300 {
		t.Errorf("right = %v, expected 300", e.paddle.Right())
	}
	e.PointAt(150)
	if e.paddle.Center() != 150 {
		t.Errorf("centre = %v, expected 150", e.paddle.Center())
	}

	nudge := core.NewInputFrame()
	nudge.Set(core.ActionRight)
	e.Step(nudge)
	if want := 150 + e.cfg.Paddle.DragStep; e.paddle.Center() != want {
		t.Errorf("centre after nudge = %v, expected %v", e.paddle.Center(), want)
	}
}

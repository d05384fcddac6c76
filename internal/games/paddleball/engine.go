package paddleball

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Engine states.
const (
	StateReady    = "ready"    // waiting for a tap
	StatePlaying  = "playing"  // simulation advancing
	StateCleared  = "cleared"  // every brick broken, waiting for a tap
	StateGameOver = "gameover" // no lives left
)

const trailLength = 8

// Engine is one paddle-ball round in world units.
type Engine struct {
	cfg     config.PaddleConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	w, h float64

	// fw, fh is the last usable field the round was laid out on; resizes
	// scale from it so an unusable size in between loses nothing.
	fw, fh  float64
	laidOut bool

	ball      Ball
	paddle    Paddle
	grid      *Grid
	targets   *TargetField
	milestone Milestone
	boost     float64
	trail     []core.Vec2

	state string
	score int
	high  int
	lives int
	level int
	tick  int
}

// NewEngine creates an engine for cfg. Call SetField and Reset before use.
func NewEngine(cfg config.PaddleConfig, rc core.RuntimeConfig) *Engine {
	return &Engine{
		cfg:     cfg,
		runtime: rc,
		rng:     rand.New(rand.NewSource(rc.Seed)), //#nosec G404 -- gameplay RNG, must be seedable
		state:   StateReady,
	}
}

// SetField sets the playfield size without touching round state.
func (e *Engine) SetField(w, h float64) {
	e.w, e.h = w, h
}

// Field returns the playfield size.
func (e *Engine) Field() (w, h float64) {
	return e.w, e.h
}

// Valid reports whether the playfield can host a round. Steps on an invalid
// field are skipped.
func (e *Engine) Valid() bool {
	if !e.laidOut || !usable(e.w, e.h) {
		return false
	}
	if e.w < 2*e.cfg.Ball.Radius || e.h <= e.cfg.Paddle.BottomOffset+e.cfg.Paddle.Height+2*e.cfg.Ball.Radius {
		return false
	}
	if e.grid != nil && !e.grid.Fits(e.w) {
		return false
	}
	return true
}

// Reset starts a fresh round: score, lives, level, speed and obstacles.
func (e *Engine) Reset() {
	e.score = 0
	e.lives = max(1, e.cfg.Gameplay.Lives)
	e.level = 1
	e.tick = 0
	e.boost = 0
	e.milestone = Milestone{Interval: e.cfg.Milestones.Interval}
	if !e.cfg.Milestones.Enabled {
		e.milestone.Interval = 0
	}

	e.grid = nil
	e.targets = nil
	e.trail = e.trail[:0]
	e.laidOut = false
	e.state = StateReady

	e.ball = Ball{Radius: e.cfg.Ball.Radius}
	if usable(e.w, e.h) {
		e.layout()
	}
}

// usable reports whether w×h is a finite, positive field size.
func usable(w, h float64) bool {
	return w > 0 && h > 0 && !math.IsInf(w, 0) && !math.IsInf(h, 0)
}

// layout places paddle, obstacles and ball on the current field. It runs
// once per round, on the first usable size.
func (e *Engine) layout() {
	e.paddle.Place(e.cfg.Paddle, e.w, e.h)
	e.paddle.Left = (e.w - e.paddle.Width) / 2
	e.paddle.Clamp(e.w)

	if e.cfg.Bricks != nil {
		e.grid = NewGrid(*e.cfg.Bricks, e.w, e.score)
	}
	if e.cfg.Targets != nil {
		e.targets = NewTargetField(*e.cfg.Targets, e.runtime, e.rng, e.w, e.h)
	}

	e.fw, e.fh = e.w, e.h
	e.serve()
	e.laidOut = true
}

// serve puts the ball in the middle of the field with the launch velocity
// plus any speed already earned this round.
func (e *Engine) serve() {
	bc := e.cfg.Ball
	limit := bc.MaxComponent
	dx := math.Min(math.Abs(bc.SpeedX)+e.boost, limit)
	if bc.SpeedX == 0 {
		dx = 0
	}
	if e.rng.Intn(2) == 0 {
		dx = -dx
	}
	dy := math.Copysign(math.Min(math.Abs(bc.SpeedY)+e.boost, limit), bc.SpeedY)
	if bc.SpeedY == 0 {
		dy = -math.Min(bc.MinVertical, limit)
	}

	e.ball = Ball{
		Pos:    core.Vec2{X: e.fw / 2, Y: e.fh / 2},
		Vel:    core.Vec2{X: dx, Y: dy},
		Radius: bc.Radius,
	}
	e.trail = e.trail[:0]
}

// Start handles a tap. From ready it resumes play; after a cleared level it
// builds the next wall; after game over it starts a new round.
func (e *Engine) Start(ev *core.Events) {
	switch e.state {
	case StateReady:
		e.state = StatePlaying
		ev.Emit(core.EventStart)
	case StateCleared:
		e.level++
		if e.cfg.Bricks != nil {
			e.grid = NewGrid(*e.cfg.Bricks, e.fw, e.score)
		}
		e.serve()
		e.state = StatePlaying
		ev.Emit(core.EventLevelStart)
	case StateGameOver:
		e.Reset()
		e.state = StatePlaying
		ev.Emit(core.EventStart)
	}
}

// Background drops an active round back to the tap-to-start state. Ball,
// paddle and score are left as they are.
func (e *Engine) Background() {
	if e.state == StatePlaying {
		e.state = StateReady
	}
}

// Resize moves the round onto a new field size, scaling positions and keeping
// score and obstacle damage.
func (e *Engine) Resize(w, h float64) {
	e.w, e.h = w, h
	if !usable(w, h) {
		return
	}
	if !e.laidOut {
		e.layout()
		return
	}

	sx, sy := w/e.fw, h/e.fh
	e.ball.Pos.X *= sx
	e.ball.Pos.Y *= sy
	e.paddle.Left *= sx
	for i := range e.trail {
		e.trail[i].X *= sx
		e.trail[i].Y *= sy
	}
	e.fw, e.fh = w, h

	e.paddle.Place(e.cfg.Paddle, w, h)
	r := e.ball.Radius
	e.ball.Pos.X = core.ClampF(e.ball.Pos.X, r, math.Max(r, w-r))
	e.ball.Pos.Y = core.ClampF(e.ball.Pos.Y, r, math.Max(r, h-r))
	if e.grid != nil {
		e.grid.Layout(w)
	}
	if e.targets != nil {
		e.targets.Resize(w, h)
	}
}

// Drag moves the paddle by dx world units.
func (e *Engine) Drag(dx float64) {
	e.paddle.Left += dx
	e.paddle.Clamp(e.fw)
}

// PointAt centres the paddle on x.
func (e *Engine) PointAt(x float64) {
	e.paddle.Left = x - e.paddle.Width/2
	e.paddle.Clamp(e.fw)
}

// Step advances one tick. Drag and pointer fields of in are world units.
func (e *Engine) Step(in core.InputFrame) core.Events {
	var ev core.Events

	if in.Has(core.ActionRestart) && e.state == StateGameOver {
		e.Reset()
	}
	if in.Has(core.ActionPause) {
		e.Background()
	}
	if in.Has(core.ActionStart) {
		e.Start(&ev)
	}

	if e.state == StateGameOver {
		return ev
	}
	if in.HasAbs {
		e.PointAt(in.AbsX)
	} else if in.DragX != 0 {
		e.Drag(in.DragX)
	}
	if in.Has(core.ActionLeft) {
		e.Drag(-e.cfg.Paddle.DragStep)
	}
	if in.Has(core.ActionRight) {
		e.Drag(e.cfg.Paddle.DragStep)
	}

	if e.state != StatePlaying || !e.Valid() {
		return ev
	}
	e.tick++

	if e.targets != nil {
		e.targets.Tick(&ev)
	}

	prev := e.ball.Pos
	for i, n := 0, e.ball.Integrate(e.w); i < n; i++ {
		ev.Emit(core.EventWallHit)
	}

	if e.grid != nil {
		if hit, ok := e.grid.Resolve(&e.ball); ok {
			if hit.Broken {
				pts := e.grid.Bricks[hit.Index].HitsRequired * e.cfg.Scoring.BrickBreakPerHit
				e.score += pts
				ev.Award(core.EventBrickBroken, pts)
			} else {
				e.score += e.cfg.Scoring.BrickDamage
				ev.Award(core.EventBrickDamaged, e.cfg.Scoring.BrickDamage)
			}
		}
		if e.grid.Cleared() {
			e.state = StateCleared
			ev.Emit(core.EventLevelClear)
			return ev
		}
	}
	if e.targets != nil && e.targets.Resolve(&e.ball, prev, e.cfg.Scoring.TargetHit, &ev) {
		e.score += e.cfg.Scoring.TargetHit
	}

	if e.paddle.Deflect(&e.ball, prev.Y, e.cfg.Ball, e.cfg.Paddle.Influence) {
		e.score += e.cfg.Scoring.PaddleHit
		ev.Award(core.EventPaddleHit, e.cfg.Scoring.PaddleHit)
	}

	if e.milestone.Advance(e.score) {
		inc := e.cfg.Milestones.Increment
		e.ball.Vel = speedUp(e.ball.Vel, inc, e.cfg.Ball.MaxComponent)
		e.boost += inc
		ev.Emit(core.EventSpeedUp)
	}

	if e.targets != nil && e.targets.TrailActive() {
		e.trail = append(e.trail, e.ball.Pos)
		if len(e.trail) > trailLength {
			e.trail = e.trail[1:]
		}
	} else {
		e.trail = e.trail[:0]
	}

	if e.ball.Lost(e.h) {
		e.lives--
		if e.lives > 0 {
			e.serve()
			e.state = StateReady
			ev.Emit(core.EventBallLost)
		} else {
			e.lives = 0
			e.state = StateGameOver
			ev.Emit(core.EventGameOver)
		}
	}
	return ev
}

// SetHigh records the best known score for the HUD.
func (e *Engine) SetHigh(n int) {
	e.high = n
}

// Ball returns a copy of the ball.
func (e *Engine) Ball() Ball { return e.ball }

// Paddle returns a copy of the paddle.
func (e *Engine) Paddle() Paddle { return e.paddle }

// Grid returns the brick grid, nil for variants without bricks.
func (e *Engine) Grid() *Grid { return e.grid }

// Targets returns the target field, nil for variants without targets.
func (e *Engine) Targets() *TargetField { return e.targets }

// Trail returns the recent ball positions while the trail effect is on.
func (e *Engine) Trail() []core.Vec2 { return e.trail }

// Status returns the engine state name.
func (e *Engine) Status() string { return e.state }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// State reports the round for the platform.
func (e *Engine) State() core.GameState {
	high := max(e.high, e.score)
	return core.GameState{
		Score:    e.score,
		High:     high,
		Level:    e.level,
		Lives:    e.lives,
		Active:   e.state == StatePlaying,
		GameOver: e.state == StateGameOver,
		Status:   e.state,
	}
}

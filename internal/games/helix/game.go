package helix

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
)

// ID is the registered game ID.
const ID = "helix"

// Game states.
const (
	StateIdle       = "idle"       // waiting for a tap
	StateTransition = "transition" // level intro, tower built, ball parked
	StatePlaying    = "playing"
	StateGameOver   = "gameover"
)

// ballAngle is where the ball sits around the tower axis. The ball starts at
// (projectedRadius, y, 0), so atan2(0, r) = 0.
const ballAngle = 0.0

// keyNudgeColumns is how many drag columns one arrow key press is worth.
const keyNudgeColumns = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the helix tower descent.
type Game struct {
	cfg     config.HelixConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	params    Params
	platforms []Platform
	rotation  float64
	ballY     float64
	ballVY    float64

	state  string
	resume string // state to return to after a tap from idle
	score  int
	high   int
	level  int
	tick   int

	combo      int
	deaths     int
	mercyUsed  bool
	graceLeft  int
	transLeft  int
	mercyFlash int
}

// New creates a new helix game instance.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "Helix Drop" }

// HighScoreKey returns the persistence key for the best score.
func (g *Game) HighScoreKey() string {
	if g.cfg.Scoring.HighScoreKey != "" {
		return g.cfg.Scoring.HighScoreKey
	}
	return config.DefaultHelixConfig().Scoring.HighScoreKey
}

// Reset loads the tuning and starts a fresh game at the tap-to-start screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	cfg, err := config.LoadHelix(configPath)
	if err != nil {
		cfg = config.DefaultHelixConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHelixPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed)) //#nosec G404 -- gameplay RNG, must be seedable

	g.score = 0
	g.deaths = 0
	g.tick = 0
	g.state = StateIdle
	g.resume = ""
	g.buildLevel(g.startLevel())
}

func (g *Game) startLevel() int {
	if g.cfg.Difficulty.Enabled {
		return max(1, g.cfg.Difficulty.StartLevel)
	}
	return 1
}

// buildLevel lays out a fresh tower and parks the ball above it.
func (g *Game) buildLevel(level int) {
	g.level = level
	g.params = LevelParams(g.cfg, level, g.deaths)
	g.combo = 0
	g.mercyUsed = false
	g.rotation = 0

	g.platforms = make([]Platform, g.params.PlatformCount)
	for i := range g.platforms {
		g.platforms[i] = Platform{
			Y:               -float64(i) * g.cfg.Tower.LevelHeight,
			InitialRotation: g.rng.Float64() * 2 * math.Pi,
			Gap:             g.params.Gap,
			Kill:            g.params.Kill,
		}
	}

	g.ballY = g.cfg.Tower.LevelHeight * g.cfg.Ball.StartHeight
	g.ballVY = 0
}

// beginTransition shows the level intro before play resumes.
func (g *Game) beginTransition() {
	g.state = StateTransition
	g.transLeft = g.runtime.TicksFor(g.cfg.Pacing.TransitionMS)
}

// Start handles a tap.
func (g *Game) Start(ev *core.Events) {
	switch g.state {
	case StateIdle:
		if g.resume == "" {
			g.beginTransition()
		} else {
			g.state = g.resume
			g.resume = ""
		}
		ev.Emit(core.EventStart)
	case StateGameOver:
		g.restart()
		ev.Emit(core.EventStart)
	}
}

// restart begins a new run after game over. Consecutive deaths carry over so
// the adaptive kill reduction can kick in.
func (g *Game) restart() {
	g.score = 0
	g.buildLevel(g.startLevel())
	g.beginTransition()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var ev core.Events

	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.restart()
		ev.Emit(core.EventStart)
	}
	if in.Has(core.ActionPause) {
		g.Background()
	}
	if in.Has(core.ActionStart) {
		g.Start(&ev)
	}

	if g.state == StatePlaying || g.state == StateTransition {
		g.rotate(in)
	}

	switch g.state {
	case StateTransition:
		g.tick++
		g.transLeft--
		if g.transLeft <= 0 {
			g.state = StatePlaying
			g.graceLeft = g.runtime.TicksFor(g.cfg.Pacing.GraceMS)
			ev.Emit(core.EventLevelStart)
		}
	case StatePlaying:
		g.tick++
		g.physics(&ev)
	}

	return core.StepResult{State: g.State(), Events: ev}
}

// rotate turns the tower from drag and nudge input.
func (g *Game) rotate(in core.InputFrame) {
	perCol := g.cfg.Angles.DragStep * g.cfg.Angles.InputSensitivity
	cols := in.DragX
	if in.Has(core.ActionLeft) {
		cols -= keyNudgeColumns
	}
	if in.Has(core.ActionRight) {
		cols += keyNudgeColumns
	}
	g.rotation = NormalizeAngle(g.rotation + cols*perCol)
}

// bounceSpeed is the base bounce plus the combo bonus.
func (g *Game) bounceSpeed() float64 {
	bonus := math.Min(float64(g.combo)*g.cfg.Physics.ComboBounceStep, g.cfg.Physics.MaxComboBounce)
	return g.cfg.Physics.BounceSpeed + math.Max(0, bonus)
}

func (g *Game) physics(ev *core.Events) {
	ph := g.cfg.Tower.PlatformHeight
	r := g.cfg.Ball.Radius

	g.ballVY += g.params.Gravity
	if g.cfg.Physics.MaxFallSpeed > 0 {
		g.ballVY = math.Max(g.ballVY, -g.cfg.Physics.MaxFallSpeed)
	}
	prevBottom := g.ballY - r
	g.ballY += g.ballVY
	bottom := g.ballY - r

	grace := g.graceLeft > 0
	if g.graceLeft > 0 {
		g.graceLeft--
	}
	if g.mercyFlash > 0 {
		g.mercyFlash--
	}

	contact := false
	for i := range g.platforms {
		p := &g.platforms[i]

		// Swept test: the bottom edge entered or crossed the platform band.
		if !contact && g.ballVY < 0 && bottom <= p.Top(ph) && prevBottom > p.Bottom(ph) {
			switch p.SegmentAt(ballAngle, g.rotation) {
			case SegmentSafe:
				contact = true
				g.bounce(p, ph, r)
				ev.Emit(core.EventBounce)
			case SegmentKill:
				contact = true
				switch {
				case grace:
					g.combo = 0
					g.bounce(p, ph, r)
					ev.Emit(core.EventBounce)
				case g.mercyAvailable():
					g.mercyUsed = true
					g.combo = 0
					g.mercyFlash = g.runtime.TicksFor(g.cfg.Pacing.GraceMS)
					g.bounce(p, ph, r)
					ev.Emit(core.EventMercy)
				default:
					g.gameOver(ev)
					return
				}
			}
		}

		if !p.Passed && bottom < p.Bottom(ph) {
			p.Passed = true
			g.combo++
			pts := 1
			if g.combo > 1 {
				pts += (g.combo - 1) * g.cfg.Scoring.ComboFactor
			}
			g.score += pts
			ev.Award(core.EventPass, pts)
		}
	}

	towerBottom := -float64(len(g.platforms)) * g.cfg.Tower.LevelHeight
	if g.ballY < towerBottom {
		bonus := g.cfg.Scoring.LevelComplete
		g.score += bonus
		g.deaths = 0
		ev.Award(core.EventLevelClear, bonus)
		g.buildLevel(g.level + 1)
		g.beginTransition()
	}
}

// bounce sends the ball back up off platform p, resting on its top surface.
func (g *Game) bounce(p *Platform, ph, r float64) {
	g.ballY = math.Max(g.ballY, p.Top(ph)+r)
	g.ballVY = g.bounceSpeed()
}

func (g *Game) mercyAvailable() bool {
	m := g.cfg.Pacing.MercyCombo
	return m > 0 && !g.mercyUsed && g.combo >= m
}

func (g *Game) gameOver(ev *core.Events) {
	g.state = StateGameOver
	g.combo = 0
	g.deaths++
	ev.Emit(core.EventGameOver)
}

// Background drops play back to the tap-to-start screen without touching the
// ball or score.
func (g *Game) Background() {
	if g.state == StatePlaying || g.state == StateTransition {
		g.resume = g.state
		g.state = StateIdle
	}
}

// Resize is a no-op for the simulation: tower units do not depend on the
// terminal. Rendering reads the screen size directly.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
}

// SetHighScore gives the HUD the persisted best score.
func (g *Game) SetHighScore(n int) {
	g.high = n
}

// Active reports whether the game should keep ticking. The level intro counts
// as active so its timer runs.
func (g *Game) Active() bool {
	return g.state == StatePlaying || g.state == StateTransition
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		High:     max(g.high, g.score),
		Level:    g.level,
		Active:   g.Active(),
		GameOver: g.state == StateGameOver,
		Status:   g.state,
	}
}

// Platforms returns the current tower.
func (g *Game) Platforms() []Platform { return g.platforms }

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

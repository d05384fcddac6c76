package paddleball

import (
	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
)

// Registered game IDs.
const (
	IDClassic = "paddle_classic"
	IDBricks  = "paddle_bricks"
	IDTargets = "paddle_targets"
)

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

// Game adapts an Engine to the character grid: one column is
// Viewport.UnitsPerCol world units, one row Viewport.UnitsPerRow, and the
// playfield starts below Viewport.HUDRows rows of HUD.
type Game struct {
	id      string
	title   string
	variant string

	cfg     config.PaddleConfig
	runtime core.RuntimeConfig
	engine  *Engine
	colors  palette
	high    int
}

// New creates a game for a variant in paddle.yaml.
func New(id, title, variant string) *Game {
	return &Game{id: id, title: title, variant: variant}
}

func (g *Game) ID() string    { return g.id }
func (g *Game) Title() string { return g.title }

// HighScoreKey returns the persistence key for this variant's best score.
func (g *Game) HighScoreKey() string {
	if g.cfg.Gameplay.HighScoreKey != "" {
		return g.cfg.Gameplay.HighScoreKey
	}
	return config.DefaultPaddleConfig(g.variant).Gameplay.HighScoreKey
}

// Reset loads the tuning and starts a fresh round.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	cfg, err := config.LoadPaddle(g.variant, configPath)
	if err != nil {
		cfg = config.DefaultPaddleConfig(g.variant)
	}
	if difficultyPreset != "" {
		config.ApplyPaddlePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.colors = newPalette(cfg.Colors)

	g.engine = NewEngine(cfg, rc)
	g.engine.SetHigh(g.high)
	g.engine.SetField(g.fieldSize(rc.ScreenW, rc.ScreenH))
	g.engine.Reset()
}

// fieldSize converts a terminal size to playfield world units.
func (g *Game) fieldSize(cols, rows int) (w, h float64) {
	vp := g.cfg.Viewport
	return float64(cols) * vp.UnitsPerCol, float64(rows-vp.HUDRows) * vp.UnitsPerRow
}

// Step converts cell-based input to world units and advances the engine.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	frame := in
	frame.DragX = in.DragX * g.cfg.Viewport.UnitsPerCol
	if in.HasAbs {
		frame.AbsX = (in.AbsX + 0.5) * g.cfg.Viewport.UnitsPerCol
	}
	ev := g.engine.Step(frame)
	return core.StepResult{State: g.State(), Events: ev}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.engine.State()
}

// Active reports whether the simulation should keep ticking.
func (g *Game) Active() bool {
	return g.engine.Status() == StatePlaying
}

// Background pauses into the tap-to-start state.
func (g *Game) Background() {
	g.engine.Background()
}

// Resize adapts the round to a new terminal size.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
	g.engine.Resize(g.fieldSize(cols, rows))
}

// SetHighScore gives the HUD the persisted best score.
func (g *Game) SetHighScore(n int) {
	g.high = n
	if g.engine != nil {
		g.engine.SetHigh(n)
	}
}

// Engine exposes the simulation for tests and tools.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Register the games with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New(IDClassic, "Red Ball Classic", config.VariantClassic)
	})
	registry.Register(IDBricks, func() registry.Game {
		return New(IDBricks, "Brick Breaker", config.VariantBricks)
	})
	registry.Register(IDTargets, func() registry.Game {
		return New(IDTargets, "Target Playground", config.VariantTargets)
	})
}

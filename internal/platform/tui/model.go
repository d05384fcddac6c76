package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/feedback"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
	"github.com/vovakirdan/bounce-arcade/internal/scoring"
	"github.com/vovakirdan/bounce-arcade/internal/settings"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

// Options carries the services a game session uses. Every field may be nil.
type Options struct {
	Store    *storage.Store
	Settings *settings.Manager
	Feedback feedback.Dispatcher
	Logger   *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

func (o Options) highScoreStore() scoring.HighScoreStore {
	if o.Store == nil {
		return nil
	}
	return o.Store
}

// Model is the Bubble Tea model for running one arcade game.
//
// The frame loop runs only while the game is active: each tick schedules the
// next one, and when a step leaves the game inactive the loop stops. Input
// that arrives while stopped schedules a single tick so the game can react.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	keeper   *scoring.Keeper
	feedback feedback.Dispatcher
	settings *settings.Manager
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     *KeyMapper
	input    core.InputFrame
	state    core.GameState

	gen     int  // current tick loop; stale ticks carry an older value
	ticking bool // a tick for gen is in flight

	mouseX    int
	dragging  bool
	submitted bool // score of the current round has been recorded

	toast      string
	toastTicks int

	embedded   bool // back returns to the session menu instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.logger().WithPrefix(game.ID())
	dispatch := opts.Feedback
	if dispatch == nil {
		dispatch = feedback.NopRouter{}
	}

	game.Reset(cfg)
	game.Resize(cfg.ScreenW, cfg.ScreenH)

	keeper := scoring.NewKeeper(opts.highScoreStore(), game.ID(), game.HighScoreKey(), logger)
	if hs, ok := game.(registry.HighScorer); ok {
		hs.SetHighScore(keeper.Load())
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keeper:   keeper,
		feedback: dispatch,
		settings: opts.Settings,
		logger:   logger,
		config:   cfg,
		keys:     NewKeyMapper(),
		input:    core.NewInputFrame(),
		state:    game.State(),
	}
}

// Init waits for the first tap; the game starts idle.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		m.pause()
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapCommand(msg) {
	case CommandToggleHaptics:
		if m.settings != nil {
			m.showToast(fmt.Sprintf("Haptics %s", onOff(m.settings.ToggleHaptics())))
		}
		return m, nil
	case CommandToggleSound:
		if m.settings != nil {
			m.showToast(fmt.Sprintf("Sound %s", onOff(m.settings.ToggleSound())))
		}
		return m, nil
	case CommandScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	m.toast, m.toastTicks = "", 0
	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.finishRound()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.game.Active() {
			m.pause()
			return m, nil
		}
		m.finishRound()
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case action == core.ActionPause:
		m.pause()
		return m, nil

	case action == core.ActionNone:
		return m, nil
	}

	m.input.Set(action)
	return m, m.ensureTicking()
}

// handleMouse turns clicks into taps and drags into paddle or tower motion.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.input.Set(core.ActionStart)
		m.input.PointAt(float64(msg.X))
		m.mouseX, m.dragging = msg.X, true
	case tea.MouseActionMotion:
		if m.dragging {
			m.input.Drag(float64(msg.X - m.mouseX))
		}
		m.input.PointAt(float64(msg.X))
		m.mouseX = msg.X
	case tea.MouseActionRelease:
		m.dragging = false
		return m, nil
	}
	return m, m.ensureTicking()
}

// ensureTicking starts a tick loop if none is running.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.gen++
	m.ticking = true
	return tickCmd(m.config.TickRate, m.gen)
}

// pause backgrounds the game and invalidates any tick in flight.
func (m *Model) pause() {
	m.game.Background()
	m.state = m.game.State()
	m.gen++
	m.ticking = false
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.input.Clear()
	m.state = result.State

	m.feedback.Dispatch(result.Events)
	if result.Events.Has(core.EventStart) {
		m.submitted = false
	}
	if result.Events.Has(core.EventGameOver) {
		m.finishRound()
	}

	if m.toastTicks > 0 {
		m.toastTicks--
		if m.toastTicks == 0 {
			m.toast = ""
		}
	}

	if !result.State.Active {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// finishRound records the current score once per round.
func (m *Model) finishRound() {
	if m.submitted || m.state.Score <= 0 {
		return
	}
	m.submitted = true
	if m.keeper.Submit(m.state.Score) {
		m.logger.Info("new high score", "key", m.keeper.Key(), "score", m.state.Score)
		if hs, ok := m.game.(registry.HighScorer); ok {
			hs.SetHighScore(m.keeper.High())
		}
	}
}

func (m *Model) showToast(text string) {
	m.toast = text
	m.toastTicks = m.config.TickRate * 3 / 2
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	m.showToast("Screenshot saved")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.toast != "" && m.screen.Height() > 0 {
		x := m.screen.Width() - len([]rune(m.toast)) - 1
		m.screen.DrawTextFG(x, m.screen.Height()-1, m.toast, core.ColorAccent)
	}
	return RenderScreen(m.screen)
}

// State returns the game state after the last step.
func (m Model) State() core.GameState { return m.state }

// Ticking reports whether a tick loop is running.
func (m Model) Ticking() bool { return m.ticking }

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/feedback"
	"github.com/vovakirdan/bounce-arcade/internal/games/helix"
	"github.com/vovakirdan/bounce-arcade/internal/games/paddleball"
	"github.com/vovakirdan/bounce-arcade/internal/platform/tui"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
	"github.com/vovakirdan/bounce-arcade/internal/settings"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Enter/Click  - Start or resume
  Left/Right/A/D     - Move paddle, rotate tower
  Mouse drag         - Move paddle, rotate tower
  P                  - Pause
  Esc                - Pause, press again to leave
  H / M              - Toggle haptics / sound
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slower, more forgiving rounds
  normal - Default tuning
  hard   - Faster ball, helix starts at level 6 without mercy
  fixed  - No progression, difficulty never ramps

Examples:
  arcade play paddle_classic
  arcade play paddle_targets --difficulty easy
  arcade play helix --difficulty fixed
  arcade play helix --config ./my-helix.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame hands the CLI config path and preset to the chosen game only;
// a paddle config file is meaningless to the helix loader and vice versa.
func configureGame(gameID string) {
	paddleball.SetConfigPath("")
	helix.SetConfigPath("")
	paddleball.SetDifficultyPreset(flagDifficulty)
	helix.SetDifficultyPreset(flagDifficulty)

	switch gameID {
	case helix.ID:
		helix.SetConfigPath(flagConfig)
	case paddleball.IDClassic, paddleball.IDBricks, paddleball.IDTargets:
		paddleball.SetConfigPath(flagConfig)
	}
}

// openOptions wires storage, settings and feedback for a local session.
// The returned cleanup closes the store.
func openOptions(logger *log.Logger) (tui.Options, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	prefs := settings.Open(logger)

	var sounds feedback.Sounds = feedback.Silence
	if a, audioErr := feedback.NewAudio(logger); audioErr == nil {
		sounds = a
	} else {
		logger.Info("sound unavailable", "error", audioErr)
	}

	opts := tui.Options{
		Store:    store,
		Settings: prefs,
		Feedback: feedback.NewRouter(feedback.NewBellHaptics(os.Stdout, logger), sounds, prefs),
		Logger:   logger,
	}
	return opts, func() {
		if store != nil {
			store.Close()
		}
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	configureGame(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts, cleanup := openOptions(logger)
	logger.Info("starting game", "game", gameID, "fps", flagFPS, "difficulty", flagDifficulty)

	runErr := tui.Run(game, opts, terminalConfig())
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

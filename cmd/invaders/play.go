package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
	"github.com/vovakirdan/alien-attack/internal/games/invaders"
	"github.com/vovakirdan/alien-attack/internal/platform"
	"github.com/vovakirdan/alien-attack/internal/platform/console"
	"github.com/vovakirdan/alien-attack/internal/platform/sound"
	"github.com/vovakirdan/alien-attack/internal/platform/tui"
	"github.com/vovakirdan/alien-attack/internal/platform/window"
	"github.com/vovakirdan/alien-attack/internal/registry"
)

// Frontend names accepted by --frontend.
const (
	frontendTUI    = "tui"
	frontendTcell  = "tcell"
	frontendWindow = "window"
)

// Window playfield in cells when not running in a terminal.
const (
	windowCols = 80
	windowRows = 60
)

var (
	flagConfig     string
	flagDifficulty string
	flagFrontend   string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to "invaders".

Controls:
  Arrows/WASD - Move
  Space       - Fire
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Frontends:
  tui    - Bubble Tea in the current terminal (default)
  tcell  - Raw terminal screen
  window - Desktop window

Difficulty options:
  easy   - Level 1, fewer spawns
  normal - Level 1
  hard   - Level 3, more spawns
  fixed  - Level never advances

Examples:
  invaders play
  invaders play invaders_classic
  invaders play --difficulty hard --frontend tcell
  invaders play --config ./my-invaders.yaml --sound`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: registry.IDs(),
	Run:       runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagFrontend, "frontend", frontendTUI, "Frontend: tui, tcell, window")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "invaders"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available games.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal frontends own stdout, so logs are dropped unless --log-file is set
	var fallback io.Writer = io.Discard
	if flagFrontend == frontendWindow {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cues, closeCues := openCues(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("starting", "game", gameID, "frontend", flagFrontend, "fps", flagFPS, "seed", flagSeed)

	var runErr error
	switch flagFrontend {
	case frontendTUI:
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cfg.ScreenW, cfg.ScreenH = w, h
		}
		runErr = tui.Run(game, cfg, tui.Options{Logger: logger, Cues: cues})
	case frontendTcell:
		runErr = console.Run(game, cfg, console.Options{Logger: logger, Cues: cues})
	case frontendWindow:
		cfg.ScreenW, cfg.ScreenH = windowCols, windowRows
		runErr = window.Run(game, cfg, window.Options{Logger: logger, Cues: cues})
	default:
		runErr = fmt.Errorf("unknown frontend %q (want tui, tcell or window)", flagFrontend)
	}

	// Release resources before potential exit
	closeCues()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags validates --difficulty and --config and hands them to the
// game package. An explicit config file that cannot be used is an error.
func applyGameFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadInvaders(flagConfig); err != nil {
			return err
		}
	}

	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openCues starts audio when --sound is set. Audio failures are logged and
// the game runs silent.
func openCues(logger *log.Logger) (platform.CuePlayer, func()) {
	if !flagSound {
		return nil, func() {}
	}
	c, err := sound.Open()
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil, func() {}
	}
	return c, c.Close
}

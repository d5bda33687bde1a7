package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
	"github.com/vovakirdan/torus-snake/internal/platform/tui"
	"github.com/vovakirdan/torus-snake/internal/registry"
)

var flagWidth int

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a board",
	Long: `Start playing the specified board.

Without --width the standard board asks for a size first.

Controls:
  Arrows/WASD/HJKL  - Steer
  Enter/Space       - Start
  P                 - Pause
  R                 - Restart (after the round ends)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Examples:
  torus play snake
  torus play snake --width 8
  torus play snake_mini --seed 42
  torus play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board side length (0 = from config or picker)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'torus list' to see available games", gameID)
	}
	if flagWidth != 0 && flagWidth < snake.MinWidth {
		return fmt.Errorf("--width must be at least %d", snake.MinWidth)
	}
	checkConfig()

	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if sizer, ok := game.(tui.BoardSizer); ok && gameID != "snake_mini" {
		width := flagWidth
		if width == 0 {
			selection, updatedCfg, selErr := tui.RunBoardSelector(cfg)
			if selErr != nil {
				return selErr
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				return nil
			}
			width = selection.Width
		}
		sizer.SetBoardWidth(width)
	}

	logger.Debug("starting game", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	if err := tui.Run(game, nil, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// checkConfig warns about a config file that cannot be used. Games fall
// back to defaults in that case.
func checkConfig() {
	if _, err := snake.LoadConfig(); err != nil {
		logger.Warn("using default snake config", "error", err)
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tcellui"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Frontends accepted by --frontend.
const (
	frontendTea   = "tea"
	frontendTcell = "tcell"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a rules variant",
	Long: `Start playing the specified rules variant (default: flappy).

Variants:
  flappy          - Any jump starts the run; a crash stops every pipe
  flappy-classic  - The first jump only starts the run; pipes behind
                    the one you hit keep their place

Controls:
  Space/Up/W  - Flap (also starts and restarts)
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Examples:
  flappy play
  flappy play flappy-classic
  flappy play --seed 42
  flappy play --frontend tcell
  flappy play --config ./my-flappy.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", frontendTea, "Terminal frontend: tea or tcell")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := flappy.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if flagFrontend != frontendTea && flagFrontend != frontendTcell {
		return fmt.Errorf("unknown frontend %q (want %s or %s)", flagFrontend, frontendTea, frontendTcell)
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'flappy list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	gameLog, closeLog := gameLogger()
	defer closeLog()

	cfg := runtimeConfig()

	if flagFrontend == frontendTcell {
		return tcellui.Play(context.Background(), game, cfg, tcellui.Options{
			Store:  store,
			Logger: gameLog,
		})
	}

	return tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: gameLog,
	})
}

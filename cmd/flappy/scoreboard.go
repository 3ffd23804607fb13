package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse high scores interactively",
	Long: `Open an interactive table of recorded runs for every variant.

Controls:
  Tab/Left/Right  - Switch variant
  Up/Down         - Scroll
  Esc/Q           - Close`,
	Args: cobra.NoArgs,
	RunE: runScoreboard,
}

func runScoreboard(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	return err
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a rules variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a variant and Enter to play it.
Pause (P) or crash, then press B to return to the menu.
Tab opens the scoreboard.

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	gameLog, closeLog := gameLogger()
	defer closeLog()

	return tui.RunSession(runtimeConfig(), tui.Options{
		Store:  store,
		Logger: gameLog,
	})
}

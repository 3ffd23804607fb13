// flappy is a Flappy Bird clone that runs in the terminal.
//
// Usage:
//
//	flappy play [game]       - Play a rules variant (default: flappy)
//	flappy menu              - Pick a variant interactively
//	flappy list              - List rules variants
//	flappy scores [game]     - Show high scores
//	flappy scoreboard        - Browse high scores interactively
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.arcade/scores.db)
//	--config <path>  - Load a YAML or TOML game config
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagLog    string
)

// gameConfig is the configuration loaded before every command.
var gameConfig config.FlappyConfig

// logger reports to stderr before and after the terminal UI owns the screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "flappy"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird in your terminal.

Flap through the gaps between pipes; every pipe that scrolls off
screen is worth a point. Touching a pipe or the floor ends the run.

Available commands:
  play        - Play a rules variant directly
  menu        - Pick a variant interactively
  list        - Show all rules variants
  scores      - Print high scores
  scoreboard  - Browse high scores interactively
  serve       - Start SSH server for remote play
  config      - Print the effective game configuration

Examples:
  flappy play
  flappy play flappy-classic --seed 42
  flappy menu
  flappy serve --ssh :2222
  flappy scores flappy`,
	SilenceUsage:      true,
	PersistentPreRunE: loadGameConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write in-game logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig installs the game configuration before any command runs.
func loadGameConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	gameConfig = cfg
	flappy.SetConfig(cfg)
	return nil
}

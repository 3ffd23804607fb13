package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration games would start with, after applying
--config or the first config file found in ~/.arcade/configs or ./configs.

The output is a complete config file; save it and edit it to tune physics.

Examples:
  flappy config > ~/.arcade/configs/flappy.yaml
  flappy config --format toml > ./configs/flappy.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) error {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	return config.Encode(os.Stdout, gameConfig, format)
}

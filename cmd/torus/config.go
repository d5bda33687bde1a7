package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default YAML config for a board",
	Long: `Print the embedded default config. Save it to
~/.torus/configs/snake.yaml or pass it with --config to customize.

Examples:
  torus config snake > ~/.torus/configs/snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'torus list' to see available games", gameID)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("game %q has no config", gameID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}

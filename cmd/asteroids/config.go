package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective game config as YAML",
	Long: `Print the config a game would start with: the first file found
(--config, ~/.asteroids/configs/asteroids.yaml, ./configs/asteroids.yaml)
or the built-in defaults, with the difficulty preset applied.

The output is a valid config file and can be edited and passed back with
--config.

Examples:
  asteroids config dump > my-asteroids.yaml
  asteroids config dump --difficulty hard
  asteroids config dump --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeConfig(cmd.OutOrStdout(), flagConfig, flagDifficulty)
	},
}

func init() {
	configDumpCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configDumpCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.AddCommand(configDumpCmd)
}

// writeConfig writes the effective config followed by the values the
// difficulty scaling derives from it at the start of a session.
func writeConfig(w io.Writer, path, preset string) error {
	cfg, err := loadGameConfig(path, preset)
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}

	d := config.NewDifficultyManager(cfg.Difficulty)
	_, err = fmt.Fprintf(w, "\n# effective at session start: %d asteroids, speed x%.2f\n",
		d.StartCount(cfg.Asteroids.StartCount), d.SpeedFactor(0, 0))
	return err
}

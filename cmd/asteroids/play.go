package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

const defaultVariant = "asteroids"

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, "asteroids" when omitted.

Controls:
  Left/Right, A/D  - Rotate
  Up/W             - Thrust
  Space            - Fire
  Down/S           - Shield (asteroids only, dropped while firing)
  Enter/R          - Play again after a win or loss
  P                - Pause
  Esc/B            - Back (while paused or after the game ends)
  Q/Ctrl+C         - Quit

Difficulty options (numbers for the default config):
  (none) - Config as written: 10 asteroids, tier speed ranges unchanged
  easy   - 6 asteroids, wider spawn clearance, tier speed ranges unchanged
  normal - 11 asteroids, asteroid speeds x1.24
  hard   - 14 asteroids, asteroid speeds x1.56, shorter bullet lifetime
  fixed  - Scaling off: the config's start count and initial level

Run 'asteroids config dump --difficulty <preset>' to see the exact values.

Examples:
  asteroids play
  asteroids play asteroids_classic
  asteroids play --difficulty hard
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'asteroids list' to see them", gameID)
	}
	if err := useGameConfig(flagConfig, flagDifficulty); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadGameConfig loads the config a game would run with and applies the
// difficulty preset. An empty preset leaves the config as loaded.
func loadGameConfig(path, preset string) (config.AsteroidsConfig, error) {
	p := config.ParsePreset(preset)
	if preset != "" && p == "" {
		return config.AsteroidsConfig{}, fmt.Errorf("unknown difficulty %q, expected easy, normal, hard or fixed", preset)
	}
	cfg, err := config.LoadAsteroids(path)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			return cfg, err
		}
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	config.ApplyAsteroidsPreset(&cfg, p)
	return cfg, nil
}

// useGameConfig checks the config up front, so a bad file fails before the
// terminal switches to the game, then hands path and preset to the game.
func useGameConfig(path, preset string) error {
	if _, err := loadGameConfig(path, preset); err != nil {
		return err
	}
	asteroids.SetConfigPath(path)
	asteroids.SetDifficultyPreset(preset)
	return nil
}

// runtimeConfig builds the config for the current terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

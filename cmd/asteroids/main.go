// asteroids is a terminal Asteroids game with local scores and SSH play.
//
// Usage:
//
//	asteroids list              - List available variants
//	asteroids play [variant]    - Play a variant (default: asteroids)
//	asteroids menu              - Pick variants interactively
//	asteroids serve             - Start SSH server for remote play
//	asteroids scores [variant]  - Show high scores and recent sessions
//	asteroids config dump       - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.asteroids/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the game variants.
	_ "github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// logger is shared by every subcommand.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "asteroids",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids in your terminal",
	Long: `Fly a ship through a field of asteroids and shoot them apart.
Large rocks split into smaller ones until nothing is left.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent sessions
  config   - Print the effective game config

Examples:
  asteroids play
  asteroids play asteroids_classic --difficulty hard
  asteroids menu
  asteroids serve --ssh :2222
  asteroids scores asteroids`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

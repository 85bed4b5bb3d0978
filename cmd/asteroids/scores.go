package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagRecent    int
	flagAllScores bool
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores and recent sessions",
	Long: `Without a variant, print a summary line for every variant that has
been played. With one, display its top 10 scores (or all of them with
--all), aggregate stats and the most recent sessions.

--clear deletes every score and session recorded for the variant.

Examples:
  asteroids scores
  asteroids scores asteroids
  asteroids scores asteroids_classic --recent 20
  asteroids scores asteroids --all
  asteroids scores asteroids --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent sessions to show")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and sessions for the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a variant")
		}
		return writeSummary(out, store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'asteroids list' to see them", gameID)
	}
	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Fprintf(out, "Cleared all scores and sessions for %s.\n", gameID)
		return nil
	}
	return writeScores(out, store, gameID, scoresOptions{
		all:      flagAllScores,
		recent:   flagRecent,
		tickRate: flagFPS,
	})
}

// writeSummary prints one line per variant with recorded scores.
func writeSummary(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Fprintf(w, "  %-20s  %-6s  %-8s  %-8s  %s\n", "Variant", "Best", "Sessions", "Win rate", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(w, "  %-20s  %-6d  %-8d  %7.0f%%  %s\n",
			id, s.HighScore, s.Sessions, s.WinRate()*100, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

type scoresOptions struct {
	all      bool // every score, not just the top 10
	recent   int
	tickRate int
}

// writeScores prints the score table, the stats line and recent sessions
// for one variant.
func writeScores(w io.Writer, store *storage.Store, gameID string, opts scoresOptions) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var scores []storage.ScoreEntry
	if opts.all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'asteroids play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.Sessions > 0 {
		fmt.Fprintf(w, "\nBest: %d  Avg: %.0f  Sessions: %d  Wins: %d (%.0f%%)\n",
			stats.HighScore, stats.AvgScore, stats.Sessions, stats.Wins, stats.WinRate()*100)
	}

	if opts.recent <= 0 {
		return nil
	}
	sessions, err := store.RecentSessions(gameID, opts.recent)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent sessions")
	fmt.Fprintf(w, "  %-7s  %-7s  %-9s  %-8s  %-8s  %s\n", "Outcome", "Score", "Destroyed", "Accuracy", "Time", "Date")
	for _, s := range sessions {
		fmt.Fprintf(w, "  %-7s  %-7d  %-9d  %7.0f%%  %-8s  %s\n",
			s.Outcome, s.Score, s.Destroyed, s.Accuracy()*100,
			fmt.Sprintf("%.1fs", float64(s.Ticks)/float64(max(opts.tickRate, 1))),
			s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

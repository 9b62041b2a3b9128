package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout/internal/platform/tui"
	"github.com/vovakirdan/breakout/internal/storage"
)

var (
	flagLimit       int
	flagPlayer      string
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished games.

Examples:
  breakout scores
  breakout scores --limit 20
  breakout scores --player alice
  breakout scores -i               # Scrollable table
  breakout scores --clear          # Delete all recorded games`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show this player's scores")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history")
	scoresCmd.MarkFlagsMutuallyExclusive("clear", "interactive")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(settings.Storage.ScorePath())
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		return clearScores(os.Stdout, store)
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		player := flagPlayer
		if player == "" {
			player = playerName()
		}
		return tui.RunScoreboard(store, player, width, height)
	}

	var scores []storage.ScoreEntry
	if flagPlayer != "" {
		scores, err = store.PlayerScores(flagPlayer, flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	best, err := store.HighScore()
	if err != nil {
		logger.Warn("cannot read high score", "err", err)
	}

	printScores(os.Stdout, scores, best, stats)
	return nil
}

// clearScores wipes the history and reports how many games were removed.
func clearScores(w io.Writer, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if err := store.ClearScores(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d recorded games.\n", stats.GamesCount)
	return nil
}

// printScores writes a plain score table followed by the all-time best.
func printScores(w io.Writer, scores []storage.ScoreEntry, best int, stats *storage.Stats) {
	fmt.Fprintln(w, "High Scores - Breakout")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'breakout play' or 'breakout term' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %-6s  %s\n", "----", "------", "-----", "------", "----")

	for i, e := range scores {
		result := "lost"
		if e.Outcome == "level_completed" {
			result = "won"
		}
		fmt.Fprintf(w, "  %-4d  %-16s  %-8d  %-6s  %s\n",
			i+1, e.Player, e.Score, result, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
	if stats != nil {
		fmt.Fprintf(w, "Games: %d   Wins: %d   Average: %.1f\n",
			stats.GamesCount, stats.Wins, stats.AvgScore)
	}
}

// breakout is a block-breaking arcade game for the desktop and the terminal.
//
// Usage:
//
//	breakout play            - Play in a desktop window
//	breakout term            - Play in the current terminal
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show high scores
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--fps <rate>        - Override the tick rate
//	--db <path>         - Set database path (default: ~/.breakout/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagDBPath   string
	flagLogLevel string

	// Set by the root command before any subcommand runs
	settings config.Config
	logger   *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce balls, break blocks",
	Long: `Breakout is a small block-breaking arcade game.

Move the paddle with the arrow keys, press Space to start and to launch
extra balls. Every block takes two hits; clear them all to win.

Available commands:
  play     - Desktop window
  term     - Current terminal
  serve    - SSH server for remote play
  scores   - View high scores

Examples:
  breakout play
  breakout term --seed 42
  breakout serve --ssh :2222
  breakout scores --limit 20`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time based)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = config value)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	if flagFPS > 0 {
		cfg.Game.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	})
	settings = cfg
	return nil
}

// openScores opens the score database. Failures are logged and play
// continues without score history.
func openScores() (*storage.Store, storage.ScoreSaver) {
	store, err := storage.Open(settings.Storage.ScorePath())
	if err != nil {
		logger.Warn("could not open scores database", "path", settings.Storage.ScorePath(), "err", err)
		return nil, nil
	}
	return store, store
}

// playerName returns the local user's name for the score table.
func playerName() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(env); name != "" {
			return name
		}
	}
	return "player"
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the current terminal",
	Long: `Play inside the terminal. Each character cell stands for a fixed patch of
the playfield (terminal.cell_width x terminal.cell_height units), so larger
terminals show more of it.

Terminals only report key presses, so a key counts as held for
terminal.key_hold after each press; hold an arrow key to keep moving.

Controls:
  Left/Right (A/D, H/L)  - Move paddle
  Space                  - Start, launch another ball, back to menu after a game
  Q/Ctrl+C               - Quit

Examples:
  breakout term
  breakout term --seed 42`,
	Args: cobra.NoArgs,
	Run:  runTerm,
}

func runTerm(_ *cobra.Command, _ []string) {
	// Get terminal size before starting; Bubble Tea reports changes later
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	store, scores := openScores()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Cols:     width,
		Rows:     height,
		CellW:    settings.Terminal.CellWidth,
		CellH:    settings.Terminal.CellHeight,
		KeyHold:  settings.Terminal.KeyHold,
		TickRate: settings.Game.TickRate,
		Seed:     settings.Game.Seed,
		Player:   playerName(),
		Scores:   scores,
		Logger:   logger,
	}

	if err := tui.Run(opts); err != nil {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/platform/desktop"
)

var flagFont string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Open a window and play.

Controls:
  Left/Right (A/D)  - Move paddle
  Space             - Start, launch another ball, back to menu after a game
  Esc               - Quit

The window needs a TrueType font; set window.font_path in the config or
pass --font. The game will not start without one.

Examples:
  breakout play
  breakout play --font ./fonts/DejaVuSans.ttf
  breakout play --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFont, "font", "", "Path to a TTF/OTF font (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	fontPath := settings.Window.FontPath
	if flagFont != "" {
		fontPath = flagFont
	}

	font, err := desktop.LoadFont(fontPath)
	if err != nil {
		logger.Fatal("could not load font", "path", fontPath, "err", err)
	}

	store, scores := openScores()
	if store != nil {
		defer store.Close()
	}

	opts := desktop.Options{
		Width:     settings.Window.Width,
		Height:    settings.Window.Height,
		Title:     settings.Window.Title,
		Resizable: settings.Window.Resizable,
		TickRate:  settings.Game.TickRate,
		Seed:      settings.Game.Seed,
		Font:      font,
		Player:    playerName(),
		Scores:    scores,
		Logger:    logger,
	}

	logger.Debug("opening window", "width", opts.Width, "height", opts.Height, "tps", opts.TickRate)
	if err := desktop.Run(opts); err != nil {
		logger.Error("game stopped", "err", err)
	}
}

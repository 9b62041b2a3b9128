package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the breakout SSH server",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection gets its own game. Scores are stored per-server under
the SSH user name (all users share the same leaderboard). With --seed set,
the seed is mixed with the user name, so each user replays their own fixed
ball sequence.

Host key handling:
  - If --host-key or server.host_key_path is set, uses that key file
  - A missing key file is generated on first start

Examples:
  breakout serve                           # Listen on server.host:server.port
  breakout serve --ssh :2222               # Listen on port 2222
  breakout serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:     settings.Server.Addr(),
		HostKeyPath: settings.Server.HostKeyPath,
		IdleTimeout: settings.Server.IdleTimeout,
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	store, scores := openScores()
	if store != nil {
		defer store.Close()
	}

	cfg.Game = tui.Options{
		CellW:    settings.Terminal.CellWidth,
		CellH:    settings.Terminal.CellHeight,
		KeyHold:  settings.Terminal.KeyHold,
		TickRate: settings.Game.TickRate,
		Seed:     settings.Game.Seed,
		Scores:   scores,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting breakout SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

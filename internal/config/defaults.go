package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Breakout",
			FontPath:  "res/Heebo-VariableFont_wght.ttf",
			Resizable: true,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
			KeyHold:    150 * time.Millisecond,
		},
		Game: GameConfig{
			TickRate: 60,
			Seed:     0,
		},
		Storage: StorageConfig{
			Path: "",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        2222,
			HostKeyPath: ".ssh/breakout_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

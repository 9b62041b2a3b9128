// Package config provides YAML-based configuration loading for the
// breakout frontends.
//
// Only presentation and runtime settings live here. Gameplay constants are
// fixed in the breakout package.
package config

import "time"

// Config contains all configuration for the breakout binary.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Game     GameConfig     `yaml:"game"`
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	FontPath  string `yaml:"font_path"`
	Resizable bool   `yaml:"resizable"`
}

// TerminalConfig defines how the game maps onto character cells.
type TerminalConfig struct {
	CellWidth  float64       `yaml:"cell_width"`  // Logical units per column
	CellHeight float64       `yaml:"cell_height"` // Logical units per row
	KeyHold    time.Duration `yaml:"key_hold"`    // How long a key counts as held after its last press
}

// GameConfig defines the simulation runtime.
type GameConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"` // 0 = time based
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	Path string `yaml:"path"` // Empty = ~/.breakout/scores.db
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

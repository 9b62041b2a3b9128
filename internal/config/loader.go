package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "breakout.yaml"

// Load loads the breakout configuration. Fields missing from the file keep
// their Default() values.
// Search order: customPath -> ~/.breakout/config.yaml -> ./configs/breakout.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects sizes and rates the frontends cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight))
	}
	if c.Terminal.KeyHold <= 0 {
		errs = append(errs, fmt.Errorf("terminal key_hold must be positive, got %s", c.Terminal.KeyHold))
	}
	if c.Game.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("game tick_rate must be positive, got %d", c.Game.TickRate))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port out of range: %d", c.Server.Port))
	}
	return errors.Join(errs...)
}

// Addr returns the SSH listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ScorePath returns the score database path, defaulting to ~/.breakout/scores.db.
func (s StorageConfig) ScorePath() string {
	if s.Path != "" {
		return s.Path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "scores.db"
	}
	return filepath.Join(home, ".breakout", "scores.db")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", filename)
}

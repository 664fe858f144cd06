package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "brickbreaker.yaml"

// Load loads the brick breaker configuration.
// Search order: customPath -> ~/.arcade/configs/brickbreaker.yaml -> ./configs/brickbreaker.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func Load(customPath string) (BrickBreakerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BrickBreakerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return BrickBreakerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultBrickBreakerYAML)
	if err != nil {
		return DefaultBrickBreakerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(data []byte) (BrickBreakerConfig, error) {
	cfg := DefaultBrickBreakerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c BrickBreakerConfig) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	case c.Bricks.Columns <= 0 || c.Bricks.Rows <= 0:
		return fmt.Errorf("brick grid must be non-empty, got %dx%d", c.Bricks.Columns, c.Bricks.Rows)
	case c.Paddle.Width <= 0 || c.Paddle.Width > c.Viewport.Width:
		return fmt.Errorf("paddle width %v out of range", c.Paddle.Width)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius)
	case c.Speed.Base <= 0:
		return fmt.Errorf("base speed must be positive, got %v", c.Speed.Base)
	case c.Countdown.From < 1:
		return fmt.Errorf("countdown must start at 1 or more, got %d", c.Countdown.From)
	}
	seen := make(map[string]bool, len(c.Economy.Items))
	for _, it := range c.Economy.Items {
		if seen[it.ID] {
			return fmt.Errorf("duplicate bazaar item %q", it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}

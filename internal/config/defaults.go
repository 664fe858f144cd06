package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/brickbreaker.yaml
var defaultBrickBreakerYAML []byte

// Bazaar item identifiers.
const (
	ItemViewBalance = "view_balance"
	ItemHighScore   = "high_score"
	ItemBricko      = "bricko"
	ItemExtraBall   = "extra_ball"
)

// DefaultBrickBreakerConfig returns the built-in configuration.
func DefaultBrickBreakerConfig() BrickBreakerConfig {
	return BrickBreakerConfig{
		Viewport: ViewportConfig{
			Width:  1000,
			Height: 640,
		},
		Ball: BallConfig{
			Radius:       8,
			SpawnOffsetY: 50,
		},
		Paddle: PaddleConfig{
			Width:  80,
			Height: 8,
			Step:   5,
		},
		Bricks: BricksConfig{
			Columns:     25,
			Rows:        12,
			Width:       30,
			Height:      12,
			Padding:     8,
			OffsetTop:   80,
			BlinkFrames: 2,
		},
		Speed: SpeedCurve{
			Base:      1.5,
			Increment: 0.1,
			Interval:  10,
		},
		Countdown: CountdownConfig{
			From:    3,
			Step:    time.Second,
			GoDelay: 500 * time.Millisecond,
		},
		Economy: EconomyConfig{
			HintThreshold: 50,
			Items: []ItemConfig{
				{ID: ItemViewBalance, Name: "View Balance", Cost: 75, RevealAt: 50},
				{ID: ItemHighScore, Name: "High Score", Cost: 120, RevealAt: 80},
				{ID: ItemBricko, Name: "Bricko", Cost: 160, RevealAt: 150},
				{ID: ItemExtraBall, Name: "Extra Ball", Cost: 1000, RevealAt: 500, Repeatable: true},
			},
		},
		Input: InputConfig{
			HoldFrames: 12,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBrickBreakerYAML
}

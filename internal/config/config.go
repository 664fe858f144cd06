// Package config provides YAML-based game configuration loading and
// difficulty presets for the brick breaker.
package config

import "time"

// BrickBreakerConfig contains all tunables of the game.
// World units are abstract pixels; the terminal renderer scales them down.
type BrickBreakerConfig struct {
	Viewport  ViewportConfig  `yaml:"viewport"`
	Ball      BallConfig      `yaml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Bricks    BricksConfig    `yaml:"bricks"`
	Speed     SpeedCurve      `yaml:"speed"`
	Countdown CountdownConfig `yaml:"countdown"`
	Economy   EconomyConfig   `yaml:"economy"`
	Input     InputConfig     `yaml:"input"`
}

// ViewportConfig is the playfield size.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball geometry and spawn point.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	SpawnOffsetY float64 `yaml:"spawn_offset_y"` // Distance from the bottom edge
}

// PaddleConfig defines paddle geometry and per-tick step.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Columns     int     `yaml:"columns"`
	Rows        int     `yaml:"rows"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Padding     float64 `yaml:"padding"`
	OffsetTop   float64 `yaml:"offset_top"`
	BlinkFrames int     `yaml:"blink_frames"` // Frames a hit brick flashes before removal
}

// SpeedCurve maps the score to the shared ball speed magnitude.
type SpeedCurve struct {
	Base      float64 `yaml:"base"`
	Increment float64 `yaml:"increment"`
	Interval  int     `yaml:"interval"` // Recompute every N bricks
}

// At returns the speed for the given score.
func (c SpeedCurve) At(score int) float64 {
	if c.Interval <= 0 {
		return c.Base
	}
	return c.Base + float64(score/c.Interval)*c.Increment
}

// IsStep reports whether reaching score triggers a speed recompute.
func (c SpeedCurve) IsStep(score int) bool {
	return c.Interval > 0 && score > 0 && score%c.Interval == 0
}

// CountdownConfig defines the pre-run countdown.
type CountdownConfig struct {
	From    int           `yaml:"from"`
	Step    time.Duration `yaml:"step"`
	GoDelay time.Duration `yaml:"go_delay"` // Pause after "GO!" before the first frame
}

// EconomyConfig defines the bazaar catalog and hint threshold.
type EconomyConfig struct {
	HintThreshold int          `yaml:"hint_threshold"`
	Items         []ItemConfig `yaml:"items"`
}

// ItemConfig is one purchasable bazaar entry.
type ItemConfig struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Cost       int    `yaml:"cost"`
	RevealAt   int    `yaml:"reveal_at"`
	Repeatable bool   `yaml:"repeatable"`
}

// InputConfig tunes keyboard handling in the terminal front-end.
type InputConfig struct {
	// HoldFrames is how many frames a direction stays held after a key
	// press. Terminals report no key release, so repeats refresh it.
	HoldFrames int `yaml:"hold_frames"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty input means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

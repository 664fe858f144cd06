package config

// speedScaleForPreset returns the multiplier applied to the speed curve.
func speedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Fixed keeps the base speed and disables ramping.
func ApplyPreset(cfg *BrickBreakerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Speed.Increment = 0
		return
	}

	scale := speedScaleForPreset(preset)
	cfg.Speed.Base *= scale
	cfg.Speed.Increment *= scale

	// Adjust paddle based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width *= 1.25
		cfg.Paddle.Step *= 1.2
	case DifficultyHard:
		cfg.Paddle.Width *= 0.75
	}
}

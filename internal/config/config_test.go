package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("decode(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBrickBreakerConfig()) {
		t.Errorf("embedded defaults differ from DefaultBrickBreakerConfig():\n got %+v\nwant %+v", cfg, DefaultBrickBreakerConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("paddle:\n  width: 120\ncountdown:\n  step: 250ms\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Paddle.Width != 120 {
		t.Errorf("Paddle.Width = %v, expected 120", cfg.Paddle.Width)
	}
	if cfg.Countdown.Step != 250*time.Millisecond {
		t.Errorf("Countdown.Step = %v, expected 250ms", cfg.Countdown.Step)
	}
	if cfg.Bricks.Columns != 25 {
		t.Errorf("Bricks.Columns = %d, expected default 25", cfg.Bricks.Columns)
	}
	if len(cfg.Economy.Items) != 4 {
		t.Errorf("len(Economy.Items) = %d, expected 4", len(cfg.Economy.Items))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("bricks:\n  columns: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with empty grid should fail validation")
	}
}

func TestSpeedCurve(t *testing.T) {
	c := DefaultBrickBreakerConfig().Speed

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 1.5},
		{9, 1.5},
		{10, 1.6},
		{25, 1.7},
		{300, 4.5},
	}
	for _, tc := range tests {
		if got := c.At(tc.score); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("At(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if c.IsStep(0) || c.IsStep(9) || !c.IsStep(10) || !c.IsStep(20) {
		t.Error("IsStep() should fire on positive multiples of the interval")
	}
}

func TestApplyPreset(t *testing.T) {
	fixed := DefaultBrickBreakerConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Speed.Increment != 0 {
		t.Errorf("fixed Increment = %v, expected 0", fixed.Speed.Increment)
	}
	if fixed.Speed.At(100) != fixed.Speed.Base {
		t.Error("fixed preset should not ramp speed")
	}

	hard := DefaultBrickBreakerConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Speed.Base <= 1.5 {
		t.Errorf("hard Base = %v, expected faster than 1.5", hard.Speed.Base)
	}

	normal := DefaultBrickBreakerConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultBrickBreakerConfig()) {
		t.Error("normal preset should leave defaults untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("BRICK_STORE", "bolt")
	t.Setenv("BRICK_FPS", "30")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if e.Store != "bolt" {
		t.Errorf("Store = %q, expected bolt", e.Store)
	}
	if e.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", e.FPS)
	}
	if e.SSHAddr != ":23234" {
		t.Errorf("SSHAddr = %q, expected default", e.SSHAddr)
	}

	t.Setenv("BRICK_FPS", "fast")
	if _, err := LoadEnv(); err == nil {
		t.Error("LoadEnv() should fail on non-numeric FPS")
	}
}

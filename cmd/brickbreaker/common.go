package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-bazaar/internal/config"
	"github.com/vovakirdan/brick-bazaar/internal/platform/tui"
	"github.com/vovakirdan/brick-bazaar/internal/progression"
	"github.com/vovakirdan/brick-bazaar/internal/storage"
)

// loadGameConfig loads the game config and applies the difficulty preset.
func loadGameConfig() (config.BrickBreakerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openBackend opens the progression backend selected by --store and --db.
func openBackend() (storage.Backend, error) {
	return storage.OpenBackend(flagStore, flagDBPath)
}

// playerKV returns the key space of a player. The local player owns the
// unprefixed keys; SSH users live under their own namespace.
func playerKV(backend storage.KV, player string) storage.KV {
	if player == "" || player == storage.LocalPlayer {
		return backend
	}
	return storage.WithNamespace(backend, tui.PlayerNamespace(player))
}

// openPlayer opens the backend and loads the --player record.
func openPlayer(logger *log.Logger) (storage.Backend, *progression.Store, error) {
	backend, err := openBackend()
	if err != nil {
		return nil, nil, err
	}
	return backend, progression.Load(playerKV(backend, flagPlayer), logger), nil
}

// newLogger returns the stderr logger used by non-interactive commands.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreaker",
		Level:           log.WarnLevel,
	})
}

// newFileLogger writes to ~/.arcade/brickbreaker.log so log lines do not
// tear the TUI. The returned closer is never nil.
func newFileLogger() (*log.Logger, io.Closer) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	dir := filepath.Join(home, ".arcade")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	f, err := os.OpenFile(filepath.Join(dir, "brickbreaker.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreaker",
	}), f
}

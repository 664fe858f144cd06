// Package storage provides persistence for progression counters and run
// history. Backends are SQLite (pure-Go modernc.org/sqlite driver), BoltDB
// and an in-memory store for tests and throwaway sessions.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// KV is a durable string key/value store.
// Get reports ok=false for absent keys.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// RunRecord is one finished run.
type RunRecord struct {
	ID        int64
	Player    string
	Score     int
	Won       bool
	Balls     int // Balls the run started with
	BallsLost int
	Duration  time.Duration
	CreatedAt time.Time
}

// RunStats contains aggregated statistics for one player.
type RunStats struct {
	Player     string
	Runs       int
	Wins       int
	BestScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// RunRecorder receives finished runs.
type RunRecorder interface {
	RecordRun(run RunRecord) error
}

// RunHistory records and queries finished runs.
type RunHistory interface {
	RunRecorder
	TopRuns(player string, limit int) ([]RunRecord, error)
	Stats(player string) (RunStats, error)
}

// Backend is a complete storage implementation.
type Backend interface {
	KV
	RunHistory
	Close() error
}

// Backend kinds accepted by OpenBackend.
const (
	KindSQLite = "sqlite"
	KindBolt   = "bolt"
	KindMemory = "memory"
)

// OpenBackend opens the backend of the given kind at path.
// The memory backend ignores path.
func OpenBackend(kind, path string) (Backend, error) {
	switch strings.ToLower(kind) {
	case "", KindSQLite:
		return Open(path)
	case KindBolt:
		return OpenBolt(path)
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}
}

// LocalPlayer is the player name used for runs outside the SSH host.
const LocalPlayer = "local"

// expandPath expands ~ to the home directory and creates parent directories.
func expandPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("storage: path is required")
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return filepath.Clean(path), nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	return limit
}

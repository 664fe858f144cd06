package storage

import (
	"slices"
	"sync"
	"time"
)

// Memory is an in-memory Backend. It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	runs   []RunRecord
	nextID int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements KV.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements KV.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete implements KV.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// RecordRun implements RunRecorder.
func (m *Memory) RecordRun(run RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	run.ID = m.nextID
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	m.runs = append(m.runs, run)
	return nil
}

// TopRuns returns the best runs of a player, highest score first.
func (m *Memory) TopRuns(player string, limit int) ([]RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return topRuns(m.runs, player, normalizeLimit(limit)), nil
}

// Stats returns aggregated statistics for a player.
func (m *Memory) Stats(player string) (RunStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return aggregate(m.runs, player), nil
}

// Close implements Backend.
func (m *Memory) Close() error {
	return nil
}

// topRuns filters runs by player and orders them by score, then recency.
func topRuns(runs []RunRecord, player string, limit int) []RunRecord {
	var out []RunRecord
	for _, r := range runs {
		if r.Player == player {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b RunRecord) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func aggregate(runs []RunRecord, player string) RunStats {
	stats := RunStats{Player: player}
	for _, r := range runs {
		if r.Player != player {
			continue
		}
		stats.Runs++
		if r.Won {
			stats.Wins++
		}
		stats.BestScore = max(stats.BestScore, r.Score)
		stats.TotalScore += int64(r.Score)
		if r.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = r.CreatedAt
		}
	}
	if stats.Runs > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.Runs)
	}
	return stats
}

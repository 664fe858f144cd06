package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	kvBucket   = "kv"
	runsBucket = "runs"
)

// BoltStore provides a BoltDB-backed Backend.
type BoltStore struct {
	db *bbolt.DB
}

var _ Backend = (*BoltStore)(nil)

// OpenBolt opens a BoltDB-backed store at the provided path.
func OpenBolt(path string) (*BoltStore, error) {
	cleanPath, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("storage: open bolt db: %w", err)
	}

	store := &BoltStore{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *BoltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get implements KV.
func (s *BoltStore) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(kvBucket))
		if bucket == nil {
			return fmt.Errorf("kv bucket is missing")
		}
		if payload := bucket.Get([]byte(key)); payload != nil {
			value, found = string(payload), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, found, nil
}

// Set implements KV.
func (s *BoltStore) Set(key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(kvBucket))
		if bucket == nil {
			return fmt.Errorf("kv bucket is missing")
		}
		return bucket.Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Delete implements KV.
func (s *BoltStore) Delete(key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(kvBucket))
		if bucket == nil {
			return fmt.Errorf("kv bucket is missing")
		}
		return bucket.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", key, err)
	}
	return nil
}

// RecordRun implements RunRecorder. Runs are stored as JSON under a
// big-endian sequence key.
func (s *BoltStore) RecordRun(run RunRecord) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(runsBucket))
		if bucket == nil {
			return fmt.Errorf("runs bucket is missing")
		}
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		run.ID = int64(seq) //#nosec G115 -- sequence fits int64
		payload, err := json.Marshal(run)
		if err != nil {
			return fmt.Errorf("marshal run: %w", err)
		}
		return bucket.Put(sequenceKey(seq), payload)
	})
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

// TopRuns retrieves the top N runs for the given player.
func (s *BoltStore) TopRuns(player string, limit int) ([]RunRecord, error) {
	runs, err := s.loadRuns()
	if err != nil {
		return nil, err
	}
	return topRuns(runs, player, normalizeLimit(limit)), nil
}

// Stats retrieves aggregated statistics for a player.
func (s *BoltStore) Stats(player string) (RunStats, error) {
	runs, err := s.loadRuns()
	if err != nil {
		return RunStats{Player: player}, err
	}
	return aggregate(runs, player), nil
}

func (s *BoltStore) loadRuns() ([]RunRecord, error) {
	var runs []RunRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(runsBucket))
		if bucket == nil {
			return fmt.Errorf("runs bucket is missing")
		}
		return bucket.ForEach(func(_, payload []byte) error {
			var r RunRecord
			if err := json.Unmarshal(payload, &r); err != nil {
				return fmt.Errorf("unmarshal run: %w", err)
			}
			runs = append(runs, r)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return runs, nil
}

func (s *BoltStore) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{kvBucket, runsBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("storage: create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// Package progression holds the durable meta-game: currency, lifetime
// counters, unlock flags and the bazaar economy built on top of them.
package progression

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-bazaar/internal/storage"
)

// Record is a snapshot of all persisted progression values.
type Record struct {
	Balance     int // Blocks broken, spendable
	BestScore   int
	TimesPlayed int
	Wins        int
	Tickles     int
	BallCount   int // Balls each run starts with

	ViewBalance bool
	HighScore   bool
	Bricko      bool
	BazaarHint  bool
	PeruseHint  bool
}

// DefaultRecord returns the values used for absent or corrupt entries.
func DefaultRecord() Record {
	return Record{BallCount: 1}
}

// Store keeps the progression record in memory and writes every change
// through to a key/value store. Write failures are logged and the
// in-memory value is kept, so play continues. Store is not safe for
// concurrent use.
type Store struct {
	kv  storage.KV
	log *log.Logger
	rec Record
}

// Load reads the record from kv. Missing or unparsable values fall back
// to defaults.
func Load(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{kv: kv, log: logger}

	def := DefaultRecord()
	s.rec = Record{
		Balance:     s.readInt(KeyBlocksBroken, def.Balance, 0),
		BestScore:   s.readInt(KeyRecord, def.BestScore, 0),
		TimesPlayed: s.readInt(KeyTimesPlayed, def.TimesPlayed, 0),
		Wins:        s.readInt(KeyWins, def.Wins, 0),
		Tickles:     s.readInt(KeyBrickoTickles, def.Tickles, 0),
		BallCount:   s.readInt(KeyBallCount, def.BallCount, 1),
		ViewBalance: s.readBool(KeyViewBalanceUnlocked),
		HighScore:   s.readBool(KeyHighScoreUnlocked),
		Bricko:      s.readBool(KeyBrickoVisible),
		BazaarHint:  s.readBool(KeyBazaarUnlocked),
		PeruseHint:  s.readBool(KeyPeruseHintVisible),
	}
	return s
}

// readInt parses key as an integer; values below min are treated as corrupt.
func (s *Store) readInt(key string, def, min int) int {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Warn("progression read failed", "key", key, "err", err)
		return def
	}
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		s.log.Debug("ignoring corrupt progression value", "key", key, "value", raw)
		return def
	}
	return v
}

func (s *Store) readBool(key string) bool {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Warn("progression read failed", "key", key, "err", err)
		return false
	}
	return ok && raw == "true"
}

func (s *Store) writeInt(key string, v int) {
	if err := s.kv.Set(key, strconv.Itoa(v)); err != nil {
		s.log.Warn("progression write failed", "key", key, "err", err)
	}
}

func (s *Store) remove(key string) {
	if err := s.kv.Delete(key); err != nil {
		s.log.Warn("progression write failed", "key", key, "err", err)
	}
}

func (s *Store) writeBool(key string, v bool) {
	if err := s.kv.Set(key, strconv.FormatBool(v)); err != nil {
		s.log.Warn("progression write failed", "key", key, "err", err)
	}
}

// Record returns a copy of the current record.
func (s *Store) Record() Record { return s.rec }

// Balance returns the spendable currency.
func (s *Store) Balance() int { return s.rec.Balance }

// BestScore returns the best run score.
func (s *Store) BestScore() int { return s.rec.BestScore }

// BallCount returns how many balls a run starts with.
func (s *Store) BallCount() int { return s.rec.BallCount }

// SetBalance stores a new balance. Negative values are clamped to zero.
func (s *Store) SetBalance(v int) {
	s.rec.Balance = max(v, 0)
	s.writeInt(KeyBlocksBroken, s.rec.Balance)
}

// SetBestScore stores a new best score.
func (s *Store) SetBestScore(v int) {
	s.rec.BestScore = max(v, 0)
	s.writeInt(KeyRecord, s.rec.BestScore)
}

// IncrementTimesPlayed counts a started run.
func (s *Store) IncrementTimesPlayed() {
	s.rec.TimesPlayed++
	s.writeInt(KeyTimesPlayed, s.rec.TimesPlayed)
}

// IncrementWins counts a cleared grid.
func (s *Store) IncrementWins() {
	s.rec.Wins++
	s.writeInt(KeyWins, s.rec.Wins)
}

// ResetWins zeroes the win count by removing its key.
func (s *Store) ResetWins() {
	s.rec.Wins = 0
	s.remove(KeyWins)
}

// IncrementTickles counts a Bricko tickle.
func (s *Store) IncrementTickles() {
	s.rec.Tickles++
	s.writeInt(KeyBrickoTickles, s.rec.Tickles)
}

// ResetTickles zeroes the tickle count by removing its key.
func (s *Store) ResetTickles() {
	s.rec.Tickles = 0
	s.remove(KeyBrickoTickles)
}

// ResetBalance zeroes the balance by removing its key.
func (s *Store) ResetBalance() {
	s.rec.Balance = 0
	s.remove(KeyBlocksBroken)
}

// ResetBestScore zeroes the best score by removing its key.
func (s *Store) ResetBestScore() {
	s.rec.BestScore = 0
	s.remove(KeyRecord)
}

// SetBallCount stores the owned ball count, never below one.
func (s *Store) SetBallCount(v int) {
	s.rec.BallCount = max(v, 1)
	s.writeInt(KeyBallCount, s.rec.BallCount)
}

// SetViewBalance stores the ViewBalance unlock.
func (s *Store) SetViewBalance(v bool) {
	s.rec.ViewBalance = v
	s.writeBool(KeyViewBalanceUnlocked, v)
}

// SetHighScore stores the HighScore unlock.
func (s *Store) SetHighScore(v bool) {
	s.rec.HighScore = v
	s.writeBool(KeyHighScoreUnlocked, v)
}

// SetBricko stores the Bricko unlock.
func (s *Store) SetBricko(v bool) {
	s.rec.Bricko = v
	s.writeBool(KeyBrickoVisible, v)
}

// SetPeruseHint stores the peruse hint flag.
func (s *Store) SetPeruseHint(v bool) {
	s.rec.PeruseHint = v
	s.writeBool(KeyPeruseHintVisible, v)
}

// SetBazaarHint stores the bazaar hint flag. Clearing it removes the key.
func (s *Store) SetBazaarHint(v bool) {
	s.rec.BazaarHint = v
	if v {
		s.writeBool(KeyBazaarUnlocked, true)
		return
	}
	s.remove(KeyBazaarUnlocked)
}

// ClearUpgrades resets the ball count and every unlock and hint flag.
// Counters and balance are kept.
func (s *Store) ClearUpgrades() {
	s.SetBallCount(1)
	s.SetHighScore(false)
	s.SetViewBalance(false)
	s.SetBricko(false)
	s.SetPeruseHint(false)
	s.SetBazaarHint(false)
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// DefaultPath is where the stats file lives unless configured otherwise.
const DefaultPath = "data/gamestats.json"

type gameStats struct {
	HighScore    int          `json:"highScore"`
	ScoreHistory []GameRecord `json:"scoreHistory"`
}

// JSONStore keeps the high score and history in a single JSON file.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load returns the persisted high score. A missing file is a fresh install
// and loads as zero.
func (s *JSONStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.read()
	if err != nil {
		return 0, err
	}
	return stats.HighScore, nil
}

func (s *JSONStore) Save(highScore int) error {
	if highScore < 0 {
		return fmt.Errorf("store: negative high score %d", highScore)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.read()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	stats.HighScore = highScore
	return s.write(stats)
}

// Record appends a finished game to the history, keeping the newest
// MaxHistory entries.
func (s *JSONStore) Record(rec GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.read()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	stats.ScoreHistory = appendRecord(stats.ScoreHistory, rec)
	return s.write(stats)
}

// History returns the recorded games, oldest first.
func (s *JSONStore) History() ([]GameRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.read()
	if err != nil {
		return nil, err
	}
	return stats.ScoreHistory, nil
}

func (s *JSONStore) read() (gameStats, error) {
	var stats gameStats

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &stats); err != nil {
		return gameStats{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if stats.HighScore < 0 {
		return gameStats{}, fmt.Errorf("%w: %s: negative high score", ErrCorrupt, s.path)
	}
	return stats, nil
}

func (s *JSONStore) write(stats gameStats) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("store: create data directory: %w", err)
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode stats: %w", err)
	}

	// Write next to the target and rename so a crash never leaves a
	// half-written stats file behind.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".gamestats-*")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: replace %s: %w", s.path, err)
	}
	return nil
}

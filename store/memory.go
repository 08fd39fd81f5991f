package store

import "sync"

// Memory is an in-process ScoreStore. Nothing survives the process.
type Memory struct {
	mu        sync.Mutex
	highScore int
	history   []GameRecord
}

func NewMemory(highScore int) *Memory {
	return &Memory{highScore: highScore}
}

func (m *Memory) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highScore, nil
}

func (m *Memory) Save(highScore int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highScore = highScore
	return nil
}

func (m *Memory) Record(rec GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = appendRecord(m.history, rec)
	return nil
}

func (m *Memory) History() []GameRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]GameRecord, len(m.history))
	copy(out, m.history)
	return out
}

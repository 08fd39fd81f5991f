package manager

import (
	"log"

	"snake-classic/store"
)

// StateManager owns the high score and talks to the score store. Storage
// failures are logged and never reach the tick loop.
type StateManager struct {
	store     store.ScoreStore
	highScore int
}

// NewStateManager loads the persisted high score. A nil store disables
// persistence.
func NewStateManager(s store.ScoreStore) *StateManager {
	sm := &StateManager{store: s}
	if s == nil {
		return sm
	}

	high, err := s.Load()
	if err != nil {
		log.Printf("Warning: could not load high score, starting from 0: %v", err)
		return sm
	}
	sm.highScore = high
	return sm
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

// Commit raises the in-memory high score to score when it is beaten. It
// reports whether a new high score was set; the caller then calls Save.
func (sm *StateManager) Commit(score int) bool {
	if score <= sm.highScore {
		return false
	}
	sm.highScore = score
	return true
}

// Save writes highScore to the store. It only reads the immutable store
// field, so it may run without the caller's lock.
func (sm *StateManager) Save(highScore int) {
	if sm.store == nil {
		return
	}
	if err := sm.store.Save(highScore); err != nil {
		log.Printf("Warning: could not save high score %d: %v", highScore, err)
	}
}

// Record adds a finished game to the history when the store keeps one.
func (sm *StateManager) Record(rec store.GameRecord) {
	recorder, ok := sm.store.(store.Recorder)
	if !ok {
		return
	}
	if err := recorder.Record(rec); err != nil {
		log.Printf("Warning: could not record game %s: %v", rec.Session, err)
	}
}

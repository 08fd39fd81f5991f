// Package store persists the high score and the recent game history.
package store

import (
	"errors"
	"time"
)

// MaxHistory bounds the number of finished games kept by a store.
const MaxHistory = 50

// ErrCorrupt is returned when persisted stats cannot be decoded.
var ErrCorrupt = errors.New("store: corrupt stats")

// ScoreStore is the persistence port for the high score. The game never
// touches the storage medium directly.
type ScoreStore interface {
	Load() (int, error)
	Save(highScore int) error
}

// Recorder is implemented by stores that also keep a history of finished
// games.
type Recorder interface {
	Record(rec GameRecord) error
}

// GameRecord describes one finished game.
type GameRecord struct {
	Session   string    `json:"session"`
	Score     int       `json:"score"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Duration is how long the game lasted.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func appendRecord(history []GameRecord, rec GameRecord) []GameRecord {
	history = append(history, rec)
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}
	return history
}

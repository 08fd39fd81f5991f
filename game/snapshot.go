package game

import "snake-classic/game/types"

// Phase is the state of the game state machine.
type Phase int

const (
	Idle Phase = iota
	Running
	Over
	// Won means the snake filled the board.
	Won
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Over:
		return "game over"
	case Won:
		return "won"
	default:
		return "idle"
	}
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Snake         []types.Point // head first
	Food          types.Point   // stale once Phase is Won, see HasFood
	Score         int
	HighScore     int
	TileCount     int
	Running       bool
	Phase         Phase
	Direction     types.Direction
	LastCollision types.CollisionType
	Ticks         uint64
}

// Head returns the head cell.
func (s Snapshot) Head() types.Point {
	return s.Snake[0]
}

// Finished reports whether the game reached a terminal phase.
func (s Snapshot) Finished() bool {
	return s.Phase == Over || s.Phase == Won
}

// HasFood reports whether Food should be drawn. A won board has no free
// cell, so Food is left on the cell the head just ate.
func (s Snapshot) HasFood() bool {
	return s.Phase != Won
}

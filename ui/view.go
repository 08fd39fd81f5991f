package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"
)

// View is the UI state drawn on top of a snapshot.
type View struct {
	Tutorial  bool
	Autopilot bool
}

// TutorialLines is the help shown by the tutorial overlay.
var TutorialLines = []string{
	"How to play",
	"",
	"Arrow keys or WASD steer the snake.",
	"Eat the red food: +10 points.",
	"Hitting a wall or yourself ends the game.",
	"The snake speeds up every 100 points.",
	"",
	"Space  start      R  restart",
	"P      autopilot  H  close help",
	"Q      quit",
}

// ScoreLine is the text shown under the board.
func ScoreLine(snap game.Snapshot, v View) string {
	line := fmt.Sprintf("Score: %d  High Score: %d", snap.Score, snap.HighScore)
	if v.Autopilot {
		line += "  [autopilot]"
	}
	return line
}

// Banner returns the message centred on the board, if any.
func Banner(snap game.Snapshot) []string {
	switch snap.Phase {
	case game.Idle:
		return []string{"Press Space to start", "H for help"}
	case game.Over:
		lines := []string{fmt.Sprintf("Game Over! Score: %d", snap.Score)}
		if snap.Score > 0 && snap.Score == snap.HighScore {
			lines = append(lines, "New high score!")
		}
		return append(lines, crashText(snap.LastCollision)+" R to restart")
	case game.Won:
		return []string{fmt.Sprintf("Board cleared! Score: %d", snap.Score), "R to restart"}
	default:
		return nil
	}
}

func crashText(cause types.CollisionType) string {
	switch cause {
	case types.WallCollision:
		return "You hit the wall."
	case types.SelfCollision:
		return "You ran into yourself."
	default:
		return ""
	}
}

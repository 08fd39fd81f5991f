// Package ui holds the presentation pieces shared by the window and the
// terminal front ends: input actions, the controller that routes them to the
// game, and the text shown around the board.
package ui

import (
	"sync/atomic"

	"snake-classic/ai"
	"snake-classic/game"
	"snake-classic/game/types"
)

// Action is a user intent decoded from a key press.
type Action int

const (
	NoAction Action = iota
	MoveUp
	MoveRight
	MoveDown
	MoveLeft
	StartGame
	RestartGame
	ToggleTutorial
	ToggleAutopilot
	Quit
)

// Direction maps movement actions to a direction.
func (a Action) Direction() (types.Direction, bool) {
	switch a {
	case MoveUp:
		return types.Up, true
	case MoveRight:
		return types.Right, true
	case MoveDown:
		return types.Down, true
	case MoveLeft:
		return types.Left, true
	default:
		return types.None, false
	}
}

// ActionForRune decodes the letter keys shared by both front ends.
func ActionForRune(r rune) Action {
	switch r {
	case 'w', 'W':
		return MoveUp
	case 'd', 'D':
		return MoveRight
	case 's', 'S':
		return MoveDown
	case 'a', 'A':
		return MoveLeft
	case ' ':
		return StartGame
	case 'r', 'R':
		return RestartGame
	case 'h', 'H':
		return ToggleTutorial
	case 'p', 'P':
		return ToggleAutopilot
	case 'q', 'Q':
		return Quit
	default:
		return NoAction
	}
}

// Controller routes actions to the game. It only reaches the game through
// SetPendingDirection, Start and Restart.
type Controller struct {
	game  *game.Game
	pilot *ai.Autopilot

	tutorial  atomic.Bool
	autopilot atomic.Bool
	quit      atomic.Bool
}

func NewController(g *game.Game, autopilot bool) *Controller {
	c := &Controller{game: g, pilot: ai.New()}
	c.autopilot.Store(autopilot)
	return c
}

// Handle applies a. It reports false once the user asked to quit.
func (c *Controller) Handle(a Action) bool {
	if dir, ok := a.Direction(); ok {
		// Manual steering takes over from the autopilot.
		c.autopilot.Store(false)
		c.game.SetPendingDirection(dir)
		return true
	}

	switch a {
	case StartGame:
		if c.game.Phase() == game.Idle {
			c.tutorial.Store(false)
			c.game.Start()
		} else if c.game.Snapshot().Finished() {
			c.game.Restart()
		}
	case RestartGame:
		c.tutorial.Store(false)
		c.game.Restart()
	case ToggleTutorial:
		c.tutorial.Store(!c.tutorial.Load())
	case ToggleAutopilot:
		c.autopilot.Store(!c.autopilot.Load())
	case Quit:
		c.quit.Store(true)
		return false
	}
	return true
}

// Tick runs after every game update. It lets the autopilot pick the next
// move.
func (c *Controller) Tick(snap game.Snapshot) {
	if c.autopilot.Load() {
		c.pilot.Drive(c.game, snap)
	}
}

func (c *Controller) View() View {
	return View{
		Tutorial:  c.tutorial.Load(),
		Autopilot: c.autopilot.Load(),
	}
}

func (c *Controller) Quitting() bool {
	return c.quit.Load()
}

// Package ai steers the snake on its own for demo play.
package ai

import (
	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/joonazan/vec2"
)

// State is what the autopilot senses around the head.
type State struct {
	DangerDirs [4]bool // indexed like types.Directions
}

// Sense reads the board around the head. A cell is dangerous under the same
// rules the game uses for collisions, including the tail cell.
func Sense(snap game.Snapshot) State {
	head := snap.Head()
	occupied := occupancy(snap)
	grid := types.NewGrid(snap.TileCount)

	var st State
	for i, d := range types.Directions {
		st.DangerDirs[i] = blocked(head.Add(d.ToPoint()), grid, occupied)
	}
	return st
}

// Danger reports whether stepping toward d ends the game.
func (st State) Danger(d types.Direction) bool {
	for i, dir := range types.Directions {
		if dir == d {
			return st.DangerDirs[i]
		}
	}
	return true
}

// DirectionSetter is the input port the autopilot drives.
type DirectionSetter interface {
	SetPendingDirection(d types.Direction) bool
}

// Autopilot picks the safe move that gets closest to the food.
type Autopilot struct{}

func New() *Autopilot {
	return &Autopilot{}
}

type move struct {
	dir       types.Direction
	magnitude float64
	exits     int
}

// Next returns the direction for the coming tick. ok is false when every
// move collides.
func (a *Autopilot) Next(snap game.Snapshot) (types.Direction, bool) {
	if len(snap.Snake) == 0 {
		return types.None, false
	}
	head := snap.Head()
	grid := types.NewGrid(snap.TileCount)
	occupied := occupancy(snap)
	food := toVec(snap.Food)

	// Straight first, so ties keep the current heading.
	candidates := []types.Direction{snap.Direction, snap.Direction.TurnLeft(), snap.Direction.TurnRight()}

	st := Sense(snap)
	var best *move
	for _, dir := range candidates {
		if st.Danger(dir) {
			continue
		}
		next := head.Add(dir.ToPoint())
		m := &move{
			dir:       dir,
			magnitude: toVec(next).Minus(food).Length(),
			exits:     exits(next, grid, occupied),
		}
		if best == nil || better(m, best) {
			best = m
		}
	}
	if best == nil {
		return types.None, false
	}
	return best.dir, true
}

// Drive feeds the next move into the game.
func (a *Autopilot) Drive(g DirectionSetter, snap game.Snapshot) {
	if !snap.Running {
		return
	}
	if dir, ok := a.Next(snap); ok {
		g.SetPendingDirection(dir)
	}
}

// better prefers moves that keep an exit open, then the shortest distance.
func better(m, than *move) bool {
	if (m.exits == 0) != (than.exits == 0) {
		return m.exits > 0
	}
	return m.magnitude < than.magnitude
}

func exits(p types.Point, grid types.Grid, occupied map[types.Point]struct{}) int {
	n := 0
	for _, d := range types.Directions {
		if !blocked(p.Add(d.ToPoint()), grid, occupied) {
			n++
		}
	}
	return n
}

func blocked(p types.Point, grid types.Grid, occupied map[types.Point]struct{}) bool {
	if !grid.Contains(p) {
		return true
	}
	_, hit := occupied[p]
	return hit
}

func occupancy(snap game.Snapshot) map[types.Point]struct{} {
	occupied := make(map[types.Point]struct{}, len(snap.Snake))
	for _, p := range snap.Snake {
		occupied[p] = struct{}{}
	}
	return occupied
}

func toVec(p types.Point) vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

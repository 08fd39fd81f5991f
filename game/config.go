package game

import (
	"time"

	"snake-classic/game/types"
)

// Config holds the tunables of a game. DefaultConfig matches the classic
// 24x24 board.
type Config struct {
	TileCount    int
	Start        types.Point
	InitialDir   types.Direction
	FoodScore    int
	BaseInterval time.Duration
	SpeedStep    time.Duration
	StepEvery    int // points needed for each SpeedStep
	MinInterval  time.Duration
	Seed         uint64
}

func DefaultConfig() Config {
	return Config{
		TileCount:    24,
		Start:        types.Point{X: 5, Y: 5},
		InitialDir:   types.Right,
		FoodScore:    10,
		BaseInterval: 200 * time.Millisecond,
		SpeedStep:    20 * time.Millisecond,
		StepEvery:    100,
		MinInterval:  50 * time.Millisecond,
		Seed:         uint64(time.Now().UnixNano()),
	}
}

// minTileCount leaves room for food next to a fresh one-segment snake.
const minTileCount = 2

// normalize fills zero values from DefaultConfig and clamps the board size
// and the start cell.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.TileCount <= 0 {
		c.TileCount = def.TileCount
	}
	c.TileCount = max(c.TileCount, minTileCount)
	if !c.InitialDir.Valid() {
		c.InitialDir = def.InitialDir
	}
	if c.FoodScore <= 0 {
		c.FoodScore = def.FoodScore
	}
	if c.BaseInterval <= 0 {
		c.BaseInterval = def.BaseInterval
	}
	if c.SpeedStep < 0 {
		c.SpeedStep = 0
	}
	if c.StepEvery <= 0 {
		c.StepEvery = def.StepEvery
	}
	if c.MinInterval <= 0 || c.MinInterval > c.BaseInterval {
		c.MinInterval = min(def.MinInterval, c.BaseInterval)
	}
	if !types.NewGrid(c.TileCount).Contains(c.Start) {
		c.Start = types.Point{X: c.TileCount / 4, Y: c.TileCount / 2}
	}
	return c
}

package game

import (
	"sync"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
	"snake-classic/store"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Game owns the snake, the food and the score. Every method is safe to call
// from the input goroutine while the loop goroutine ticks.
type Game struct {
	mu sync.Mutex

	cfg           Config
	grid          types.Grid
	snake         *entity.Snake
	pending       types.Direction
	food          types.Point
	score         int
	phase         Phase
	lastCollision types.CollisionType
	ticks         uint64

	session   string
	startTime time.Time
	now       func() time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	observers    observers

	wake chan struct{}
}

// New creates a game in the Idle phase. The high score is loaded from scores
// once; a nil store keeps it in memory only.
func New(cfg Config, scores store.ScoreStore, obs ...Observer) *Game {
	cfg = cfg.normalize()
	grid := types.NewGrid(cfg.TileCount)
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		cfg:          cfg,
		grid:         grid,
		now:          time.Now,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, rand.New(rand.NewSource(cfg.Seed))),
		stateMgr:     manager.NewStateManager(scores),
		observers:    obs,
		wake:         make(chan struct{}, 1),
	}
	g.Reset()
	return g
}

// Config returns the normalized configuration.
func (g *Game) Config() Config {
	return g.cfg
}

// Reset puts a fresh snake on the start cell and returns to Idle. The high
// score survives.
func (g *Game) Reset() {
	g.mu.Lock()
	g.resetLocked()
	score, high := g.score, g.stateMgr.HighScore()
	g.mu.Unlock()

	g.observers.scoreChanged(score, high)
}

func (g *Game) resetLocked() {
	g.snake = entity.NewSnake(g.cfg.Start, g.cfg.InitialDir)
	g.pending = g.cfg.InitialDir
	g.score = 0
	g.phase = Idle
	g.lastCollision = types.NoCollision
	g.ticks = 0
	g.session = uuid.New().String()
	g.startTime = time.Time{}
	// normalize keeps at least minTileCount cells per side, so a single
	// segment always leaves a free cell.
	g.food, _ = g.foodMgr.GenerateFood(g.snake)
}

// Start moves an Idle game to Running. It reports whether the phase changed.
func (g *Game) Start() bool {
	g.mu.Lock()
	if g.phase != Idle {
		g.mu.Unlock()
		return false
	}
	g.phase = Running
	g.startTime = g.now()
	g.mu.Unlock()

	select {
	case g.wake <- struct{}{}:
	default:
	}
	return true
}

// Restart is Reset followed by Start.
func (g *Game) Restart() {
	g.Reset()
	g.Start()
}

// SetPendingDirection queues d for the next tick. Reversing onto the
// currently applied direction is ignored, as are invalid directions.
func (g *Game) SetPendingDirection(d types.Direction) bool {
	if !d.Valid() {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if d == g.snake.Direction.Opposite() {
		return false
	}
	g.pending = d
	return true
}

// PendingDirection returns the direction the next tick will apply.
func (g *Game) PendingDirection() types.Direction {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}

// tickResult carries the notifications of one tick out of the lock.
type tickResult struct {
	ate       bool
	finished  bool
	newHigh   bool
	cause     types.CollisionType
	score     int
	highScore int
	record    store.GameRecord
}

// Update advances the game by one tick. It does nothing unless Running.
func (g *Game) Update() {
	g.mu.Lock()
	res, changed := g.updateLocked()
	g.mu.Unlock()

	if !changed {
		return
	}
	if res.finished {
		// Store I/O stays outside g.mu.
		if res.newHigh {
			g.stateMgr.Save(res.score)
		}
		g.stateMgr.Record(res.record)
	}
	if res.ate {
		g.observers.foodEaten(res.score)
		g.observers.scoreChanged(res.score, res.highScore)
	}
	if res.finished {
		if res.newHigh && !res.ate {
			g.observers.scoreChanged(res.score, res.highScore)
		}
		g.observers.gameOver(res.score, res.cause, res.newHigh)
	}
}

func (g *Game) updateLocked() (tickResult, bool) {
	if g.phase != Running {
		return tickResult{}, false
	}
	g.ticks++

	g.snake.Direction = g.pending
	newHead := g.snake.NextHead(g.snake.Direction)

	var res tickResult
	if cause := g.collisionMgr.CheckCollision(newHead, g.snake); cause != types.NoCollision {
		res = g.finishLocked(Over, cause)
		return res, true
	}

	g.snake.Move(newHead)

	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.score += g.cfg.FoodScore
		food, ok := g.foodMgr.GenerateFood(g.snake)
		if !ok {
			res = g.finishLocked(Won, types.BoardFull)
		} else {
			g.food = food
		}
		res.ate = true
	} else {
		g.snake.RemoveTail()
	}

	res.score = g.score
	res.highScore = g.stateMgr.HighScore()
	return res, true
}

// finishLocked ends the game and raises the in-memory high score. The
// caller persists the returned record once g.mu is released.
func (g *Game) finishLocked(phase Phase, cause types.CollisionType) tickResult {
	g.phase = phase
	g.lastCollision = cause
	newHigh := g.stateMgr.Commit(g.score)

	return tickResult{
		finished:  true,
		newHigh:   newHigh,
		cause:     cause,
		score:     g.score,
		highScore: g.stateMgr.HighScore(),
		record: store.GameRecord{
			Session:   g.session,
			Score:     g.score,
			StartTime: g.startTime,
			EndTime:   g.now(),
		},
	}
}

// CurrentSpeed is the delay before the next tick. It shrinks by SpeedStep
// for every StepEvery points and never drops below MinInterval.
func (g *Game) CurrentSpeed() time.Duration {
	g.mu.Lock()
	score := g.score
	g.mu.Unlock()
	return g.cfg.speedFor(score)
}

func (c Config) speedFor(score int) time.Duration {
	reduction := time.Duration(score/c.StepEvery) * c.SpeedStep
	return max(c.MinInterval, c.BaseInterval-reduction)
}

func (g *Game) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase == Running
}

func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

func (g *Game) HighScore() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateMgr.HighScore()
}

// Session identifies the current game in the score history.
func (g *Game) Session() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

// Snapshot copies the state for rendering.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Snapshot{
		Snake:         g.snake.Cells(),
		Food:          g.food,
		Score:         g.score,
		HighScore:     g.stateMgr.HighScore(),
		TileCount:     g.grid.Width,
		Running:       g.phase == Running,
		Phase:         g.phase,
		Direction:     g.snake.Direction,
		LastCollision: g.lastCollision,
		Ticks:         g.ticks,
	}
}

// Wake fires after Start moves the game to Running.
func (g *Game) Wake() <-chan struct{} {
	return g.wake
}

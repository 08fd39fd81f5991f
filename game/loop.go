package game

import (
	"context"
	"sync"
	"time"
)

// Loop drives a Game: each iteration runs Update and then the paint callback
// as one unit, then waits CurrentSpeed before the next one. While the game is
// not Running the loop parks until Start wakes it.
type Loop struct {
	game *Game
	tick func(Snapshot)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLoop returns a loop for g. tick may be nil.
func NewLoop(g *Game, tick func(Snapshot)) *Loop {
	return &Loop{game: g, tick: tick}
}

// Run ticks until ctx is cancelled and returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	for {
		if !l.game.Running() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-l.game.Wake():
			}
			continue
		}

		l.game.Update()
		if l.tick != nil {
			l.tick(l.game.Snapshot())
		}
		if !l.game.Running() {
			continue
		}

		timer := time.NewTimer(l.game.CurrentSpeed())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Start runs the loop on its own goroutine. Calling Start on a loop that is
// already running does nothing.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.Run(ctx)
	}()
}

// Stop cancels the pending tick and waits for the loop goroutine, so no
// callback runs after Stop returns. It is safe to call more than once.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}

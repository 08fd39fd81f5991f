// Package term is the tcell terminal front end.
package term

import (
	"context"

	"snake-classic/game"
	"snake-classic/ui"

	"github.com/gdamore/tcell/v2"
)

// KeyAction decodes a key event.
func KeyAction(ev *tcell.EventKey) ui.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ui.MoveUp
	case tcell.KeyRight:
		return ui.MoveRight
	case tcell.KeyDown:
		return ui.MoveDown
	case tcell.KeyLeft:
		return ui.MoveLeft
	case tcell.KeyEnter:
		return ui.StartGame
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ui.Quit
	case tcell.KeyRune:
		return ui.ActionForRune(ev.Rune())
	}
	return ui.NoAction
}

// Run plays on screen until the user quits or ctx is cancelled. screen must
// already be initialised; the caller owns Fini.
func Run(ctx context.Context, g *game.Game, ctrl *ui.Controller, screen tcell.Screen) error {
	renderer := NewRenderer(screen)
	screen.HideCursor()

	redraw := make(chan struct{}, 1)
	loop := game.NewLoop(g, func(snap game.Snapshot) {
		ctrl.Tick(snap)
		select {
		case redraw <- struct{}{}:
		default:
		}
	})
	loop.Start(ctx)
	defer loop.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	renderer.Draw(g.Snapshot(), ctrl.View())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-redraw:
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !ctrl.Handle(KeyAction(ev)) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
		renderer.Draw(g.Snapshot(), ctrl.View())
	}
}

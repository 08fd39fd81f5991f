// Package window is the raylib front end.
package window

import (
	"context"

	"snake-classic/game"
	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type binding struct {
	key    int32
	action ui.Action
}

var keyTable = []binding{
	{rl.KeyUp, ui.MoveUp},
	{rl.KeyRight, ui.MoveRight},
	{rl.KeyDown, ui.MoveDown},
	{rl.KeyLeft, ui.MoveLeft},
	{rl.KeyW, ui.MoveUp},
	{rl.KeyD, ui.MoveRight},
	{rl.KeyS, ui.MoveDown},
	{rl.KeyA, ui.MoveLeft},
	{rl.KeySpace, ui.StartGame},
	{rl.KeyEnter, ui.StartGame},
	{rl.KeyR, ui.RestartGame},
	{rl.KeyH, ui.ToggleTutorial},
	{rl.KeyP, ui.ToggleAutopilot},
	{rl.KeyQ, ui.Quit},
}

// pollActions returns the actions whose keys went down this frame.
func pollActions() []ui.Action {
	var actions []ui.Action
	for _, b := range keyTable {
		if rl.IsKeyPressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

// Run opens a window and plays until it is closed, Q is pressed or ctx is
// cancelled. The game ticks on its own goroutine; raylib drawing stays on
// the calling goroutine, which must be the main one.
func Run(ctx context.Context, g *game.Game, ctrl *ui.Controller, width, height int) error {
	rl.InitWindow(int32(width), int32(height), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	loop := game.NewLoop(g, ctrl.Tick)
	loop.Start(ctx)
	defer loop.Stop()

	renderer := NewRenderer()
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		for _, a := range pollActions() {
			if !ctrl.Handle(a) {
				return nil
			}
		}
		renderer.Draw(g.Snapshot(), ctrl.View())
	}
	return nil
}

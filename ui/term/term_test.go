package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/store"
	"snake-classic/ui"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func rowText(screen tcell.SimulationScreen, y int) string {
	_, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		Snake:     []types.Point{{X: 3, Y: 2}, {X: 2, Y: 2}},
		Food:      types.Point{X: 5, Y: 6},
		Score:     10,
		HighScore: 40,
		TileCount: 8,
		Running:   true,
		Phase:     game.Running,
		Direction: types.Right,
	}
}

func TestRendererDrawsBoard(t *testing.T) {
	screen := newScreen(t, 40, 20)
	NewRenderer(screen).Draw(testSnapshot(), ui.View{})

	ox, oy := Origin()
	if got := runeAt(screen, ox+5*cellWidth, oy+6); got != foodRune {
		t.Errorf("food cell = %q, want %q", got, foodRune)
	}
	if got := runeAt(screen, ox+3*cellWidth, oy+2); got != bodyRune {
		t.Errorf("head cell = %q, want %q", got, bodyRune)
	}
	if got := runeAt(screen, ox+2*cellWidth+1, oy+2); got != bodyRune {
		t.Errorf("body cell = %q, want %q", got, bodyRune)
	}
	if got := runeAt(screen, ox+0, oy+0); got != ' ' {
		t.Errorf("empty cell = %q", got)
	}
	if got := runeAt(screen, ox-1, oy-1); got != '┌' {
		t.Errorf("corner = %q, want ┌", got)
	}

	status := rowText(screen, oy+8+1)
	if !strings.Contains(status, "Score: 10  High Score: 40") {
		t.Errorf("status line = %q", status)
	}
}

func TestRendererHeadStyleDiffers(t *testing.T) {
	screen := newScreen(t, 40, 20)
	NewRenderer(screen).Draw(testSnapshot(), ui.View{})

	ox, oy := Origin()
	_, _, headStyleGot, _ := screen.GetContent(ox+3*cellWidth, oy+2)
	_, _, bodyStyleGot, _ := screen.GetContent(ox+2*cellWidth, oy+2)
	if headStyleGot == bodyStyleGot {
		t.Error("head and body share a style")
	}
}

func TestRendererBannerAndTooSmall(t *testing.T) {
	screen := newScreen(t, 40, 20)
	snap := testSnapshot()
	snap.Phase = game.Idle
	snap.Running = false
	NewRenderer(screen).Draw(snap, ui.View{})

	found := false
	for y := 0; y < 20; y++ {
		if strings.Contains(rowText(screen, y), "Press Space") {
			found = true
		}
	}
	if !found {
		t.Error("idle banner not drawn")
	}

	small := newScreen(t, 10, 5)
	NewRenderer(small).Draw(testSnapshot(), ui.View{})
	if !strings.HasPrefix(rowText(small, 0), "Terminal") {
		t.Errorf("row 0 = %q, want size warning", rowText(small, 0))
	}
}

func TestRendererSkipsFoodOnWonBoard(t *testing.T) {
	screen := newScreen(t, 40, 20)
	snap := testSnapshot()
	snap.Phase = game.Won
	snap.Running = false
	NewRenderer(screen).Draw(snap, ui.View{})

	ox, oy := Origin()
	if got := runeAt(screen, ox+5*cellWidth, oy+6); got == foodRune {
		t.Error("food drawn on a won board")
	}
}

func TestKeyAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want ui.Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ui.MoveUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ui.MoveLeft},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ui.StartGame},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ui.Quit},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ui.MoveRight},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ui.RestartGame},
	}
	for _, c := range cases {
		if got := KeyAction(c.ev); got != c.want {
			t.Errorf("KeyAction(%v) = %v, want %v", c.ev.Name(), got, c.want)
		}
	}
}

func TestRunQuitsOnQ(t *testing.T) {
	screen := newScreen(t, 60, 30)
	cfg := game.DefaultConfig()
	cfg.Seed = 9
	g := game.New(cfg, store.NewMemory(0))
	ctrl := ui.NewController(g, false)

	errc := make(chan error, 1)
	go func() { errc <- Run(context.Background(), g, ctrl, screen) }()

	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
	if !ctrl.Quitting() {
		t.Error("controller should be quitting")
	}
	if g.Phase() == game.Idle {
		t.Error("space should have started the game")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 60, 30)
	g := game.New(game.DefaultConfig(), nil)
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- Run(ctx, g, ui.NewController(g, false), screen) }()
	cancel()

	select {
	case <-errc:
	case <-time.After(2 * time.Second):
		t.Fatal("Run ignored cancellation")
	}
}

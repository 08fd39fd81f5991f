package window

import (
	"snake-classic/game"
	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	statusHeight  = 40 // Room for the score line under the board
)

var (
	backgroundColor = rl.NewColor(0x2c, 0x2c, 0x2e, 255)
	boardColor      = rl.NewColor(0x1c, 0x1c, 0x1e, 255)
	foodColor       = rl.NewColor(0xff, 0x45, 0x3a, 255)
	headColor       = rl.NewColor(0x32, 0xd7, 0x4b, 255)
	bodyColor       = rl.NewColor(0x30, 0xd1, 0x58, 255)
	overlayColor    = rl.NewColor(0, 0, 0, 180)
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gridSize     int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// layout sizes the square board to fit the window and centres it.
func (r *Renderer) layout(tiles int32) {
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2 - statusHeight

	r.cellSize = max(min(availableWidth, availableHeight)/tiles, 1)
	r.gridSize = r.cellSize * tiles
	r.offsetX = (r.screenWidth - r.gridSize) / 2
	r.offsetY = borderPadding
}

func (r *Renderer) Draw(snap game.Snapshot, view ui.View) {
	r.UpdateDimensions()
	r.layout(int32(snap.TileCount))

	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(backgroundColor)
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.gridSize+2, r.gridSize+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.gridSize, r.gridSize, boardColor)

	// Food is a filled circle inside its cell.
	if snap.HasFood() {
		rl.DrawCircle(
			r.offsetX+int32(snap.Food.X)*r.cellSize+r.cellSize/2,
			r.offsetY+int32(snap.Food.Y)*r.cellSize+r.cellSize/2,
			float32(r.cellSize)/2.5,
			foodColor)
	}

	// Draw the body first so the head stays on top.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		p := snap.Snake[i]
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize+1,
			r.offsetY+int32(p.Y)*r.cellSize+1,
			r.cellSize-2, r.cellSize-2, color)
	}

	fontSize := max(r.screenHeight/40, 10)
	rl.DrawText(ui.ScoreLine(snap, view), r.offsetX, r.offsetY+r.gridSize+borderPadding, fontSize, rl.White)

	if lines := ui.Banner(snap); lines != nil && !view.Tutorial {
		r.drawOverlay(lines, fontSize, rl.White)
	}
	if view.Tutorial {
		r.drawOverlay(ui.TutorialLines, fontSize, rl.White)
	}
}

func (r *Renderer) drawOverlay(lines []string, fontSize int32, color rl.Color) {
	rl.DrawRectangle(r.offsetX, r.offsetY, r.gridSize, r.gridSize, overlayColor)

	lineHeight := fontSize + fontSize/2
	y := r.offsetY + (r.gridSize-lineHeight*int32(len(lines)))/2
	for _, line := range lines {
		width := rl.MeasureText(line, fontSize)
		rl.DrawText(line, r.offsetX+(r.gridSize-width)/2, y, fontSize, color)
		y += lineHeight
	}
}

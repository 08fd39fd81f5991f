package term

import (
	"snake-classic/game"
	"snake-classic/ui"

	"github.com/gdamore/tcell/v2"
)

// Every board cell is two columns wide so the board looks square.
const cellWidth = 2

var (
	boardStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x2c, 0x2c, 0x2e))
	foodStyle   = boardStyle.Foreground(tcell.NewRGBColor(0xff, 0x45, 0x3a))
	headStyle   = boardStyle.Foreground(tcell.NewRGBColor(0x32, 0xd7, 0x4b))
	bodyStyle   = boardStyle.Foreground(tcell.NewRGBColor(0x1f, 0x8a, 0x3a))
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
)

const (
	foodRune = '●'
	bodyRune = '█'
)

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Origin is the screen cell of board cell (0, 0); the border sits around it.
func Origin() (x, y int) {
	return 1, 1
}

// MinSize is the terminal size needed for a board of tiles cells per side.
func MinSize(tiles int) (width, height int) {
	return tiles*cellWidth + 2, tiles + 3
}

func (r *Renderer) Draw(snap game.Snapshot, view ui.View) {
	r.screen.Clear()
	defer r.screen.Show()

	w, h := r.screen.Size()
	minW, minH := MinSize(snap.TileCount)
	if w < minW || h < minH {
		r.drawText(0, 0, "Terminal too small, please enlarge", textStyle)
		return
	}

	ox, oy := Origin()
	r.drawBorder(ox-1, oy-1, snap.TileCount*cellWidth+1, snap.TileCount+1)
	for y := 0; y < snap.TileCount; y++ {
		for x := 0; x < snap.TileCount*cellWidth; x++ {
			r.screen.SetContent(ox+x, oy+y, ' ', nil, boardStyle)
		}
	}

	if snap.HasFood() {
		r.setCell(snap.Food.X, snap.Food.Y, foodRune, ' ', foodStyle)
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		p := snap.Snake[i]
		if i == 0 {
			r.setCell(p.X, p.Y, bodyRune, bodyRune, headStyle)
			continue
		}
		r.setCell(p.X, p.Y, bodyRune, bodyRune, bodyStyle)
	}

	r.drawText(ox, oy+snap.TileCount+1, ui.ScoreLine(snap, view), textStyle)

	switch {
	case view.Tutorial:
		r.drawCentered(snap.TileCount, ui.TutorialLines)
	case ui.Banner(snap) != nil:
		r.drawCentered(snap.TileCount, ui.Banner(snap))
	}
}

func (r *Renderer) setCell(x, y int, left, right rune, style tcell.Style) {
	ox, oy := Origin()
	r.screen.SetContent(ox+x*cellWidth, oy+y, left, nil, style)
	r.screen.SetContent(ox+x*cellWidth+1, oy+y, right, nil, style)
}

func (r *Renderer) drawBorder(x0, y0, x1, y1 int) {
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, borderStyle)
		r.screen.SetContent(x, y1, '─', nil, borderStyle)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, borderStyle)
		r.screen.SetContent(x1, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(x0, y0, '┌', nil, borderStyle)
	r.screen.SetContent(x1, y0, '┐', nil, borderStyle)
	r.screen.SetContent(x0, y1, '└', nil, borderStyle)
	r.screen.SetContent(x1, y1, '┘', nil, borderStyle)
}

// drawCentered writes lines in the middle of the board, clipped to its width.
func (r *Renderer) drawCentered(tiles int, lines []string) {
	ox, oy := Origin()
	width := tiles * cellWidth
	y := oy + (tiles-len(lines))/2
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) > width {
			runes = runes[:width]
		}
		x := ox + (width-len(runes))/2
		r.drawText(x, y, string(runes), bannerStyle)
		y++
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, c := range text {
		r.screen.SetContent(x, y, c, nil, style)
		x++
	}
}

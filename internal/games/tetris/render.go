package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of a rendered frame.
const (
	wellX      = 2  // Screen column of board column 0
	panelX     = 26 // Screen column of the side panel
	ViewWidth  = 40
	ViewHeight = Rows + 2
)

const (
	emptyGlyph  = " ."
	filledGlyph = "[]"
	floorLine   = "<!====================!>"
	baseLine    = `  \/\/\/\/\/\/\/\/\/\/`
)

// Render draws f into dst. The screen is not cleared first; frontends hand
// in a cleared screen each tick so every frame is a full redraw.
func Render(f *Frame, dst *core.Screen) {
	for row := 0; row < Rows; row++ {
		dst.DrawText(0, row, "<!", core.ColorDefault)
		for col := 0; col < Cols; col++ {
			drawCell(dst, wellX+2*col, row, f.CellAt(row, col))
		}
		dst.DrawText(wellX+2*Cols, row, "!>", core.ColorDefault)
	}
	dst.DrawText(0, Rows, floorLine, core.ColorDefault)
	dst.DrawText(0, Rows+1, baseLine, core.ColorDefault)

	renderPanel(f, dst)
}

func drawCell(dst *core.Screen, x, y int, cell Cell) {
	glyph := emptyGlyph
	if cell.Occupied {
		glyph = filledGlyph
	}
	dst.DrawText(x, y, glyph, cell.Color)
}

func renderPanel(f *Frame, dst *core.Screen) {
	dst.DrawText(panelX, 1, fmt.Sprintf("| score: %d |", f.Score), core.ColorDefault)
	dst.DrawText(panelX, 2, fmt.Sprintf("| pieces: %d |", f.Pieces), core.ColorGray)

	dst.DrawText(panelX, 4, "next", core.ColorDefault)
	if f.Next != KindNone {
		color := ColorOf(f.Next)
		for _, off := range ShapeOf(f.Next, 0).Cells() {
			dst.DrawText(panelX+2*off.Col, 5+off.Row, filledGlyph, color)
		}
	}

	if f.GameOver {
		dst.DrawText(panelX, 10, "GAME OVER", core.ColorRed)
		dst.DrawText(panelX, 11, "r: restart", core.ColorGray)
		dst.DrawText(panelX, 12, "q: quit", core.ColorGray)
	}
}

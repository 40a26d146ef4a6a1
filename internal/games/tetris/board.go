package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Board dimensions. Row 0 is the top.
const (
	Rows = 20
	Cols = 10
)

// Cell is one board position.
type Cell struct {
	Color    core.Color
	Occupied bool
}

// emptyCell is the default cell: unoccupied and white.
var emptyCell = Cell{Color: core.ColorWhite}

// Board is the grid of placed cells. It is a value type; copying a Board
// copies every cell.
type Board struct {
	cells [Rows][Cols]Cell
}

// NewBoard returns an empty board.
func NewBoard() Board {
	var b Board
	for r := range b.cells {
		b.cells[r] = emptyRow()
	}
	return b
}

func emptyRow() [Cols]Cell {
	var row [Cols]Cell
	for c := range row {
		row[c] = emptyCell
	}
	return row
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func mustInBounds(row, col int) {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("tetris: board query out of range (%d, %d)", row, col))
	}
}

// Occupied reports whether a piece has been placed at (row, col).
// Panics if the coordinate is off the board.
func (b *Board) Occupied(row, col int) bool {
	mustInBounds(row, col)
	return b.cells[row][col].Occupied
}

// Cell returns the cell at (row, col). Panics if the coordinate is off the board.
func (b *Board) Cell(row, col int) Cell {
	mustInBounds(row, col)
	return b.cells[row][col]
}

// Place writes every set cell of shape, offset by anchor, into the grid.
// The caller guarantees each target is on the board and unoccupied; a
// violation panics.
func (b *Board) Place(shape Shape, anchor core.Point, color core.Color) {
	for _, off := range shape.Cells() {
		p := anchor.Add(off)
		if b.Occupied(p.Row, p.Col) {
			panic(fmt.Sprintf("tetris: placing onto occupied cell (%d, %d)", p.Row, p.Col))
		}
		b.cells[p.Row][p.Col] = Cell{Color: color, Occupied: true}
	}
}

// Fits reports whether every set cell of shape at anchor is on the board
// and unoccupied.
func (b *Board) Fits(shape Shape, anchor core.Point) bool {
	for _, off := range shape.Cells() {
		p := anchor.Add(off)
		if !InBounds(p.Row, p.Col) || b.cells[p.Row][p.Col].Occupied {
			return false
		}
	}
	return true
}

// RowFull reports whether every cell of the row is occupied.
func (b *Board) RowFull(row int) bool {
	mustInBounds(row, 0)
	for _, cell := range b.cells[row] {
		if !cell.Occupied {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, compacting the rows above downward and
// inserting empty rows at the top. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	write := Rows - 1
	for read := Rows - 1; read >= 0; read-- {
		if b.RowFull(read) {
			continue
		}
		b.cells[write] = b.cells[read]
		write--
	}
	cleared := write + 1
	for ; write >= 0; write-- {
		b.cells[write] = emptyRow()
	}
	return cleared
}

// OccupiedCount returns the number of occupied cells on the board.
func (b *Board) OccupiedCount() int {
	n := 0
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c].Occupied {
				n++
			}
		}
	}
	return n
}

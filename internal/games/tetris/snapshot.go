package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Frame is an immutable copy of the game taken under the game mutex.
// Frontends render frames; they never touch a live Game.
type Frame struct {
	Board    Board
	Piece    Piece
	Next     Kind
	Score    int // Lines cleared
	Pieces   int // Pieces locked
	GameOver bool
}

// CellAt returns what should be displayed at (row, col): the falling piece
// if it covers the position, otherwise the board cell.
func (f *Frame) CellAt(row, col int) Cell {
	rel := core.Pt(row-f.Piece.Anchor.Row, col-f.Piece.Anchor.Col)
	if rel.Row >= 0 && rel.Row < ShapeSize && rel.Col >= 0 && rel.Col < ShapeSize {
		if f.Piece.Shape()[rel.Row][rel.Col] {
			return Cell{Color: f.Piece.Color(), Occupied: true}
		}
	}
	return f.Board.Cell(row, col)
}

package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// SpawnAnchor is where every new piece's bounding box starts: the top rows,
// centered horizontally.
var SpawnAnchor = core.Pt(0, (Cols-ShapeSize)/2)

// Direction selects a rotation sense.
type Direction int

const (
	CW Direction = iota
	CCW
)

// MoveResult is the outcome of a descent step.
type MoveResult int

const (
	Moved MoveResult = iota
	Locked
)

func (r MoveResult) String() string {
	if r == Locked {
		return "locked"
	}
	return "moved"
}

// maxCorrections bounds the rotation correction search. Every nudge moves a
// cell strictly toward the board, so the width plus the height is enough.
const maxCorrections = Rows + Cols

// Piece is the falling piece: its kind, orientation and the board position
// of the top-left corner of its 4x4 bounding box.
//
// Piece consults the Board for legality and mutates it only in Lock.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	Anchor   core.Point
}

// Spawn returns a piece of kind k at the spawn anchor in rotation 0.
// No collision check is made here.
func Spawn(k Kind) Piece {
	return Piece{Kind: k, Anchor: SpawnAnchor}
}

// Shape returns the current occupancy mask.
func (p Piece) Shape() Shape {
	return ShapeOf(p.Kind, p.Rotation)
}

// Color returns the display color of the piece.
func (p Piece) Color() core.Color {
	return ColorOf(p.Kind)
}

// Cells returns the board coordinates covered by the piece.
func (p Piece) Cells() []core.Point {
	cells := p.Shape().Cells()
	for i := range cells {
		cells[i] = p.Anchor.Add(cells[i])
	}
	return cells
}

// Fits reports whether the piece is on the board and overlaps nothing.
func (p Piece) Fits(b *Board) bool {
	return b.Fits(p.Shape(), p.Anchor)
}

// MoveDown descends one row, or locks the piece into the board when the row
// below is the floor or already occupied.
func (p *Piece) MoveDown(b *Board) MoveResult {
	next := p.Anchor.Add(core.Pt(1, 0))
	if !b.Fits(p.Shape(), next) {
		p.Lock(b)
		return Locked
	}
	p.Anchor = next
	return Moved
}

// QuickDrop descends to the resting position and locks. Returns the number
// of rows travelled. The board is only written once, at the final row.
func (p *Piece) QuickDrop(b *Board) int {
	rows := 0
	for p.MoveDown(b) == Moved {
		rows++
	}
	return rows
}

// MoveLeft shifts one column left. Returns false, leaving the piece
// unchanged, if the shift would leave the board or overlap a placed cell.
func (p *Piece) MoveLeft(b *Board) bool {
	return p.shift(b, -1)
}

// MoveRight shifts one column right under the same rules as MoveLeft.
func (p *Piece) MoveRight(b *Board) bool {
	return p.shift(b, 1)
}

func (p *Piece) shift(b *Board, dc int) bool {
	next := p.Anchor.Add(core.Pt(0, dc))
	if !b.Fits(p.Shape(), next) {
		return false
	}
	p.Anchor = next
	return true
}

// Rotate turns the piece one step in dir. The new shape is first nudged
// back inside the walls and above the floor; if it then overlaps a placed
// cell the rotation is rejected and the piece is left unchanged.
func (p *Piece) Rotate(b *Board, dir Direction) bool {
	rot := p.Rotation.CW()
	if dir == CCW {
		rot = p.Rotation.CCW()
	}
	shape := ShapeOf(p.Kind, rot)

	anchor, ok := correct(shape, p.Anchor)
	if !ok || !b.Fits(shape, anchor) {
		return false
	}
	p.Rotation = rot
	p.Anchor = anchor
	return true
}

// Lock writes the piece into the board.
func (p *Piece) Lock(b *Board) {
	b.Place(p.Shape(), p.Anchor, p.Color())
}

// correct nudges anchor right while shape pokes past the left wall, left
// while it pokes past the right wall, and up while it sits below the floor.
// Reports false if the shape still is not inside the board after
// maxCorrections nudges.
func correct(shape Shape, anchor core.Point) (core.Point, bool) {
	cells := shape.Cells()
	for i := 0; i < maxCorrections; i++ {
		minCol, maxCol, maxRow := extent(cells, anchor)
		switch {
		case minCol < 0:
			anchor.Col++
		case maxCol >= Cols:
			anchor.Col--
		case maxRow >= Rows:
			anchor.Row--
		default:
			return anchor, true
		}
	}
	minCol, maxCol, maxRow := extent(cells, anchor)
	return anchor, minCol >= 0 && maxCol < Cols && maxRow < Rows
}

// extent returns the leftmost column, rightmost column and lowest row of
// cells placed at anchor.
func extent(cells []core.Point, anchor core.Point) (minCol, maxCol, maxRow int) {
	minCol, maxCol, maxRow = Cols, -1, -1
	for _, off := range cells {
		p := anchor.Add(off)
		minCol = core.Min(minCol, p.Col)
		maxCol = core.Max(maxCol, p.Col)
		maxRow = core.Max(maxRow, p.Row)
	}
	return minCol, maxCol, maxRow
}

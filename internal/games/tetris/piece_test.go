package tetris

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestSpawn(t *testing.T) {
	p := Spawn(KindT)
	if p.Rotation != 0 {
		t.Errorf("Rotation = %d, want 0", p.Rotation)
	}
	if p.Anchor != core.Pt(0, 3) {
		t.Errorf("Anchor = %v, want (0, 3)", p.Anchor)
	}
}

func TestMoveDownLocksAtBottom(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			b := NewBoard()
			p := Spawn(k)

			steps := 0
			for p.MoveDown(&b) == Moved {
				steps++
				if steps > Rows {
					t.Fatal("piece never locked")
				}
			}

			lowest := -1
			for _, c := range p.Cells() {
				lowest = core.Max(lowest, c.Row)
				if !b.Occupied(c.Row, c.Col) {
					t.Errorf("cell %v not written on lock", c)
				}
			}
			if lowest != Rows-1 {
				t.Errorf("piece locked with lowest row %d, want %d", lowest, Rows-1)
			}
		})
	}
}

func TestQuickDropMatchesRepeatedMoveDown(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		b := NewBoard()
		// Random rubble in the lower half.
		for i := 0; i < 25; i++ {
			r, c := Rows/2+rng.Intn(Rows/2), rng.Intn(Cols)
			b.cells[r][c] = Cell{Color: core.ColorGray, Occupied: true}
		}

		p := Spawn(Kinds()[rng.Intn(KindCount)])
		if !p.Fits(&b) {
			continue
		}
		for i := rng.Intn(4); i > 0; i-- {
			p.Rotate(&b, CW)
		}
		for i := rng.Intn(5); i > 0; i-- {
			if rng.Intn(2) == 0 {
				p.MoveLeft(&b)
			} else {
				p.MoveRight(&b)
			}
		}

		stepBoard, stepPiece := b, p
		for stepPiece.MoveDown(&stepBoard) == Moved {
		}

		dropBoard, dropPiece := b, p
		dropPiece.QuickDrop(&dropBoard)

		if dropPiece.Anchor != stepPiece.Anchor {
			t.Fatalf("trial %d: QuickDrop anchor %v, MoveDown anchor %v", trial, dropPiece.Anchor, stepPiece.Anchor)
		}
		if dropBoard != stepBoard {
			t.Fatalf("trial %d: boards differ after drop", trial)
		}
	}
}

func TestQuickDropReturnsRows(t *testing.T) {
	b := NewBoard()
	p := Spawn(KindI)
	if rows := p.QuickDrop(&b); rows != 18 {
		t.Errorf("QuickDrop() = %d rows, want 18", rows)
	}
}

func TestWallsRejectShift(t *testing.T) {
	b := NewBoard()

	p := Spawn(KindI)
	for p.MoveLeft(&b) {
	}
	if p.Anchor.Col != 0 {
		t.Fatalf("I should stop with anchor col 0, got %d", p.Anchor.Col)
	}
	before := p
	if p.MoveLeft(&b) || p != before {
		t.Error("shifting left at the left wall should be rejected")
	}

	p = Spawn(KindI)
	for p.MoveRight(&b) {
	}
	if p.Anchor.Col != Cols-ShapeSize {
		t.Fatalf("I should stop with anchor col %d, got %d", Cols-ShapeSize, p.Anchor.Col)
	}
	before = p
	if p.MoveRight(&b) || p != before {
		t.Error("shifting right at the right wall should be rejected")
	}
}

func TestShiftNeverLeavesBoard(t *testing.T) {
	for _, k := range Kinds() {
		for r := Rotation(0); r < RotationCount; r++ {
			b := NewBoard()
			p := Piece{Kind: k, Rotation: r, Anchor: core.Pt(5, 3)}
			for i := 0; i < Cols; i++ {
				p.MoveLeft(&b)
			}
			for _, c := range p.Cells() {
				if c.Col < 0 {
					t.Errorf("%v rot %d reached column %d", k, r, c.Col)
				}
			}
			for i := 0; i < Cols; i++ {
				p.MoveRight(&b)
			}
			for _, c := range p.Cells() {
				if c.Col >= Cols {
					t.Errorf("%v rot %d reached column %d", k, r, c.Col)
				}
			}
		}
	}
}

func TestShiftBlockedByStack(t *testing.T) {
	b := NewBoard()
	b.cells[1][2] = Cell{Color: core.ColorGray, Occupied: true}
	p := Spawn(KindI) // cells (1, 3..6)

	if p.MoveLeft(&b) {
		t.Error("shift into an occupied cell should be rejected")
	}
	if p.Anchor != SpawnAnchor {
		t.Errorf("anchor moved to %v", p.Anchor)
	}
	if !p.MoveRight(&b) {
		t.Error("shift away from the block should succeed")
	}
}

func TestRotateFourTimesRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		for _, dir := range []Direction{CW, CCW} {
			b := NewBoard()
			p := Spawn(k)
			p.Anchor = core.Pt(8, 3)
			start := p

			for i := 0; i < 4; i++ {
				if !p.Rotate(&b, dir) {
					t.Fatalf("%v: rotation %d rejected on empty board", k, i)
				}
			}
			if p.Rotation != start.Rotation {
				t.Errorf("%v: rotation = %d after four turns, want %d", k, p.Rotation, start.Rotation)
			}
			if p.Shape() != start.Shape() {
				t.Errorf("%v: shape differs after four turns", k)
			}
			if p.Anchor != start.Anchor {
				t.Errorf("%v: anchor drifted from %v to %v", k, start.Anchor, p.Anchor)
			}
		}
	}
}

// fullBoardAround occupies every cell not covered by p.
func fullBoardAround(p Piece) Board {
	b := NewBoard()
	covered := make(map[core.Point]bool)
	for _, c := range p.Cells() {
		covered[c] = true
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if !covered[core.Pt(r, c)] {
				b.cells[r][c] = Cell{Color: core.ColorGray, Occupied: true}
			}
		}
	}
	return b
}

func TestRotateIntoFullBoardRejected(t *testing.T) {
	for _, k := range Kinds() {
		if k == KindO {
			// Every O orientation covers the same cells.
			continue
		}
		for _, dir := range []Direction{CW, CCW} {
			p := Spawn(k)
			b := fullBoardAround(p)
			before := p

			if p.Rotate(&b, dir) {
				t.Errorf("%v: rotation accepted on a full board", k)
			}
			if p != before {
				t.Errorf("%v: piece mutated by rejected rotation", k)
			}
		}
	}
}

func TestRotateOOnFullBoard(t *testing.T) {
	p := Spawn(KindO)
	b := fullBoardAround(p)
	cells := p.Cells()

	p.Rotate(&b, CW)
	for i, c := range p.Cells() {
		if c != cells[i] {
			t.Errorf("O cells moved from %v to %v", cells[i], c)
		}
	}
}

func TestRotateCorrection(t *testing.T) {
	tests := []struct {
		name       string
		start      Piece
		dir        Direction
		wantRot    Rotation
		wantAnchor core.Point
	}{
		{
			// Vertical I against the right wall turns flat and is pushed left.
			name:       "right wall",
			start:      Piece{Kind: KindI, Rotation: 1, Anchor: core.Pt(5, 7)},
			dir:        CW,
			wantRot:    2,
			wantAnchor: core.Pt(5, 6),
		},
		{
			// Vertical I against the left wall turns flat and is pushed right.
			name:       "left wall",
			start:      Piece{Kind: KindI, Rotation: 3, Anchor: core.Pt(5, -1)},
			dir:        CCW,
			wantRot:    2,
			wantAnchor: core.Pt(5, 0),
		},
		{
			// Flat I on the floor turns vertical and is lifted.
			name:       "floor",
			start:      Piece{Kind: KindI, Rotation: 0, Anchor: core.Pt(18, 3)},
			dir:        CW,
			wantRot:    1,
			wantAnchor: core.Pt(16, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			p := tt.start
			if !p.Fits(&b) {
				t.Fatalf("start position %v does not fit", p.Anchor)
			}
			if !p.Rotate(&b, tt.dir) {
				t.Fatal("rotation rejected")
			}
			if p.Rotation != tt.wantRot || p.Anchor != tt.wantAnchor {
				t.Errorf("got rotation %d anchor %v, want %d %v", p.Rotation, p.Anchor, tt.wantRot, tt.wantAnchor)
			}
			if !p.Fits(&b) {
				t.Error("corrected piece does not fit")
			}
		})
	}
}

func TestRotateCorrectionThenCollisionRejected(t *testing.T) {
	b := NewBoard()
	// Block the column the corrected flat I would need.
	b.cells[7][6] = Cell{Color: core.ColorGray, Occupied: true}
	p := Piece{Kind: KindI, Rotation: 1, Anchor: core.Pt(5, 7)}
	before := p

	if p.Rotate(&b, CW) {
		t.Fatal("rotation onto an occupied cell should be rejected")
	}
	if p != before {
		t.Errorf("piece changed to %+v", p)
	}
}

func TestCorrectIsBounded(t *testing.T) {
	// An anchor far outside the board cannot be corrected within the budget.
	if _, ok := correct(ShapeOf(KindI, 0), core.Pt(0, -100)); ok {
		t.Error("correction far off the board should fail")
	}
	anchor, ok := correct(ShapeOf(KindI, 0), core.Pt(0, -3))
	if !ok || anchor.Col != 0 {
		t.Errorf("correct() = %v, %v; want col 0, true", anchor, ok)
	}
}

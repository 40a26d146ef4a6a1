package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fillRow occupies every cell of row except the listed columns.
func fillRow(b *Board, row int, holes ...int) {
	skip := make(map[int]bool, len(holes))
	for _, c := range holes {
		skip[c] = true
	}
	for c := 0; c < Cols; c++ {
		if !skip[c] {
			b.cells[row][c] = Cell{Color: core.ColorGray, Occupied: true}
		}
	}
}

func TestNewBoardIsEmptyAndWhite(t *testing.T) {
	b := NewBoard()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			cell := b.Cell(r, c)
			if cell.Occupied {
				t.Fatalf("cell (%d, %d) occupied on new board", r, c)
			}
			if cell.Color != core.ColorWhite {
				t.Fatalf("cell (%d, %d) color = %v, want white", r, c, cell.Color)
			}
		}
	}
}

func TestBoardPlace(t *testing.T) {
	b := NewBoard()
	b.Place(ShapeOf(KindO, 0), core.Pt(17, 0), core.ColorYellow)

	want := []core.Point{core.Pt(18, 1), core.Pt(18, 2), core.Pt(19, 1), core.Pt(19, 2)}
	for _, p := range want {
		cell := b.Cell(p.Row, p.Col)
		if !cell.Occupied || cell.Color != core.ColorYellow {
			t.Errorf("cell %v = %+v, want occupied yellow", p, cell)
		}
	}
	if n := b.OccupiedCount(); n != 4 {
		t.Errorf("OccupiedCount() = %d, want 4", n)
	}
}

func TestBoardContractViolationsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Board)
	}{
		{"occupied row -1", func(b *Board) { b.Occupied(-1, 0) }},
		{"occupied row 20", func(b *Board) { b.Occupied(Rows, 0) }},
		{"occupied col 10", func(b *Board) { b.Occupied(0, Cols) }},
		{"place off board", func(b *Board) { b.Place(ShapeOf(KindI, 0), core.Pt(19, 0), core.ColorCyan) }},
		{"place overlap", func(b *Board) {
			b.Place(ShapeOf(KindO, 0), core.Pt(0, 0), core.ColorYellow)
			b.Place(ShapeOf(KindO, 0), core.Pt(0, 0), core.ColorYellow)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(&b)
		})
	}
}

func TestBoardFits(t *testing.T) {
	b := NewBoard()
	fillRow(&b, 19, 0)
	shape := ShapeOf(KindI, 0) // cells on mask row 1

	tests := []struct {
		name   string
		anchor core.Point
		want   bool
	}{
		{"spawn", SpawnAnchor, true},
		{"resting above stack", core.Pt(17, 0), true},
		{"into stack", core.Pt(18, 0), false},
		{"past left wall", core.Pt(5, -1), false},
		{"past right wall", core.Pt(5, 7), false},
		{"below floor", core.Pt(19, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Fits(shape, tt.anchor); got != tt.want {
				t.Errorf("Fits(I, %v) = %v, want %v", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestClearLines(t *testing.T) {
	b := NewBoard()
	fillRow(&b, 19)
	fillRow(&b, 18, 4)
	fillRow(&b, 17)
	b.cells[16][2] = Cell{Color: core.ColorRed, Occupied: true}

	if n := b.ClearLines(); n != 2 {
		t.Fatalf("ClearLines() = %d, want 2", n)
	}

	// Row 18 (with its hole) drops to 19, the lone cell from 16 drops to 18.
	if !b.Occupied(19, 0) || b.Occupied(19, 4) {
		t.Error("partial row should have dropped to the bottom with its hole intact")
	}
	if cell := b.Cell(18, 2); !cell.Occupied || cell.Color != core.ColorRed {
		t.Errorf("cell (18, 2) = %+v, want red block", cell)
	}
	if n := b.OccupiedCount(); n != Cols {
		t.Errorf("OccupiedCount() = %d, want %d", n, Cols)
	}
	for r := 0; r < 18; r++ {
		for c := 0; c < Cols; c++ {
			if b.Cell(r, c) != emptyCell {
				t.Fatalf("cell (%d, %d) should be empty after compaction", r, c)
			}
		}
	}
}

func TestClearLinesNoneFull(t *testing.T) {
	b := NewBoard()
	fillRow(&b, 19, 9)
	before := b

	if n := b.ClearLines(); n != 0 {
		t.Fatalf("ClearLines() = %d, want 0", n)
	}
	if b != before {
		t.Error("board changed although no row was full")
	}
}

package tetris

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// newGameWith returns a game whose falling piece is forced to kind k.
func newGameWith(k Kind) *Game {
	g := New(1)
	g.piece = Spawn(k)
	return g
}

func TestNewGame(t *testing.T) {
	g := New(99)
	f := g.Snapshot()

	if f.Piece.Kind == KindNone {
		t.Fatal("first piece should be drawn from the bag")
	}
	if f.Piece.Anchor != SpawnAnchor || f.Piece.Rotation != 0 {
		t.Errorf("first piece not at spawn: %+v", f.Piece)
	}
	if f.Board.OccupiedCount() != 0 || f.Score != 0 || f.GameOver {
		t.Errorf("new game not clean: %+v", f)
	}
	if f.Next == KindNone {
		t.Error("next-piece preview should be populated")
	}
}

func TestHardDropIScenario(t *testing.T) {
	g := newGameWith(KindI)

	if !g.Apply(core.ActionHardDrop) {
		t.Fatal("hard drop should change state")
	}

	f := g.Snapshot()
	for c := 3; c <= 6; c++ {
		cell := f.Board.Cell(Rows-1, c)
		if !cell.Occupied || cell.Color != core.ColorCyan {
			t.Errorf("bottom cell %d = %+v, want cyan block", c, cell)
		}
	}
	if f.Board.OccupiedCount() != 4 {
		t.Errorf("OccupiedCount() = %d, want 4", f.Board.OccupiedCount())
	}
	if f.Pieces != 1 {
		t.Errorf("Pieces = %d, want 1", f.Pieces)
	}
	if f.Piece.Anchor != SpawnAnchor {
		t.Error("a new piece should spawn after the lock")
	}
}

func TestSideBySideIPieces(t *testing.T) {
	g := newGameWith(KindI)
	for i := 0; i < 3; i++ {
		g.Apply(core.ActionMoveLeft)
	}
	g.Apply(core.ActionHardDrop)

	g.piece = Spawn(KindI)
	g.Apply(core.ActionMoveRight)
	g.Apply(core.ActionHardDrop)

	f := g.Snapshot()
	filled := 0
	for c := 0; c < Cols; c++ {
		if f.Board.Occupied(Rows-1, c) {
			filled++
		}
	}
	if filled != 8 {
		t.Fatalf("bottom row has %d cells filled, want 8", filled)
	}

	g.piece = Spawn(KindI)
	for i := 0; i < 3; i++ {
		g.Apply(core.ActionMoveLeft)
	}
	g.Apply(core.ActionHardDrop)

	f = g.Snapshot()
	for c := 0; c < 4; c++ {
		if !f.Board.Occupied(Rows-2, c) {
			t.Errorf("third I should rest on row %d, col %d empty", Rows-2, c)
		}
	}
	if f.Board.OccupiedCount() != 12 {
		t.Errorf("OccupiedCount() = %d, want 12", f.Board.OccupiedCount())
	}
}

func TestSoftDropLocksAndSpawns(t *testing.T) {
	g := newGameWith(KindO)

	for i := 0; i < Rows; i++ {
		g.Apply(core.ActionSoftDrop)
	}

	f := g.Snapshot()
	if f.Pieces != 1 {
		t.Fatalf("Pieces = %d, want 1", f.Pieces)
	}
	if !f.Board.Occupied(Rows-1, 4) || !f.Board.Occupied(Rows-2, 5) {
		t.Error("O should rest on the floor")
	}
}

func TestLineClearScores(t *testing.T) {
	g := newGameWith(KindI)
	fillRow(&g.board, Rows-1, 3, 4, 5, 6)
	fillRow(&g.board, Rows-2, 0, 3, 4, 5, 6)

	g.Apply(core.ActionHardDrop)

	f := g.Snapshot()
	if f.Score != 1 {
		t.Errorf("Score = %d, want 1", f.Score)
	}
	// The partial row dropped to the bottom.
	if f.Board.Occupied(Rows-1, 0) || !f.Board.Occupied(Rows-1, 1) {
		t.Error("row above the cleared line should have shifted down")
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, want 1", g.Score())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := New(5)
	for i := 0; i < 200 && !g.GameOver(); i++ {
		g.Apply(core.ActionHardDrop)
	}
	if !g.GameOver() {
		t.Fatal("stacking in the middle should end the game")
	}

	before := g.Snapshot()
	for _, a := range []core.Action{core.ActionMoveLeft, core.ActionRotateCW, core.ActionHardDrop, core.ActionSoftDrop} {
		if g.Apply(a) {
			t.Errorf("%v should be ignored after game over", a)
		}
	}
	if after := g.Snapshot(); after != before {
		t.Error("state changed after game over")
	}

	if !g.Restart(6) {
		t.Fatal("Restart should act once the game is over")
	}
	f := g.Snapshot()
	if f.GameOver || f.Board.OccupiedCount() != 0 || f.Pieces != 0 {
		t.Errorf("restart did not reset state: %+v", f)
	}
	if g.Restart(7) {
		t.Error("Restart should be refused while playing")
	}
}

func TestQuitSetOnce(t *testing.T) {
	g := New(1)
	if g.Quit() {
		t.Fatal("new game should not be quitting")
	}
	if !g.Apply(core.ActionQuit) {
		t.Error("first quit should change state")
	}
	if g.Apply(core.ActionQuit) {
		t.Error("second quit should be a no-op")
	}
	if !g.Quit() {
		t.Error("Quit() should report true")
	}
}

func TestConcurrentApplyAndSnapshot(t *testing.T) {
	g := New(11)
	actions := []core.Action{
		core.ActionMoveLeft, core.ActionMoveRight, core.ActionRotateCW,
		core.ActionRotateCCW, core.ActionSoftDrop, core.ActionHardDrop,
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 2000; i++ {
				if !g.Apply(actions[rng.Intn(len(actions))]) && g.GameOver() {
					g.Restart(seed + int64(i))
				}
			}
		}(int64(w))
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		f := g.Snapshot()
		if !f.GameOver && !f.Board.Fits(f.Piece.Shape(), f.Piece.Anchor) {
			t.Fatalf("torn snapshot: live piece %+v overlaps the board", f.Piece)
		}
		if n := f.Board.OccupiedCount(); n != 4*f.Pieces-Cols*f.Score {
			t.Fatalf("torn snapshot: %d cells for %d pieces and %d lines", n, f.Pieces, f.Score)
		}
		select {
		case <-done:
			return
		default:
		}
	}
}

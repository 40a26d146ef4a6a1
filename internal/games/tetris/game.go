package tetris

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game owns the board, the falling piece, the bag and the score.
//
// Every exported method takes the game mutex for its whole duration, so an
// input mutation and a Snapshot for rendering never interleave. The quit
// flag is atomic and can be read without the mutex.
type Game struct {
	mu sync.Mutex

	board    Board
	piece    Piece
	bag      *Bag
	lines    int // Lines cleared, also the score
	pieces   int // Pieces locked so far
	gameOver bool

	quit atomic.Bool
}

// New creates a game with an empty board and the first piece drawn from a
// bag seeded with seed.
func New(seed int64) *Game {
	g := &Game{}
	g.reset(seed)
	return g
}

// reset reinitializes all state. Caller holds g.mu or owns g exclusively.
func (g *Game) reset(seed int64) {
	g.board = NewBoard()
	g.bag = NewBag(rand.New(rand.NewSource(seed)))
	g.lines = 0
	g.pieces = 0
	g.gameOver = false
	g.piece = Spawn(g.bag.Draw())
}

// Restart clears the board and score and starts a fresh bag seeded with
// seed. It only acts once the game is over; returns true if it did.
func (g *Game) Restart(seed int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.gameOver {
		return false
	}
	g.reset(seed)
	return true
}

// Apply performs one player action. Returns true if the game state changed.
// While the game is over only quit is honoured here; restart goes through
// Restart because it needs a fresh seed.
func (g *Game) Apply(a core.Action) bool {
	if a == core.ActionQuit {
		return g.quit.CompareAndSwap(false, true)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver {
		return false
	}

	switch a {
	case core.ActionMoveLeft:
		return g.piece.MoveLeft(&g.board)
	case core.ActionMoveRight:
		return g.piece.MoveRight(&g.board)
	case core.ActionRotateCW:
		return g.piece.Rotate(&g.board, CW)
	case core.ActionRotateCCW:
		return g.piece.Rotate(&g.board, CCW)
	case core.ActionSoftDrop:
		if g.piece.MoveDown(&g.board) == Locked {
			g.afterLock()
		}
		return true
	case core.ActionHardDrop:
		g.piece.QuickDrop(&g.board)
		g.afterLock()
		return true
	}
	return false
}

// afterLock clears full rows, counts them, and spawns the next piece. If the
// new piece overlaps the stack the game is over. Caller holds g.mu.
func (g *Game) afterLock() {
	g.pieces++
	g.lines += g.board.ClearLines()
	g.piece = Spawn(g.bag.Draw())
	if !g.piece.Fits(&g.board) {
		g.gameOver = true
	}
}

// Quit reports whether a quit action has been applied.
func (g *Game) Quit() bool {
	return g.quit.Load()
}

// GameOver reports whether the stack has reached the spawn area.
func (g *Game) GameOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gameOver
}

// Score returns the number of lines cleared.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lines
}

// Snapshot returns a consistent copy of the state for rendering.
func (g *Game) Snapshot() Frame {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Frame{
		Board:    g.board,
		Piece:    g.piece,
		Next:     g.bag.Peek(),
		Score:    g.lines,
		Pieces:   g.pieces,
		GameOver: g.gameOver,
	}
}

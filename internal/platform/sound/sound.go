// Package sound adds short audio cues to a display: a click when a piece
// locks, a chime on line clears and a falling phrase on game over.
package sound

import (
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueLock Cue = iota
	CueClear
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueLock:
		return "lock"
	case CueClear:
		return "clear"
	case CueGameOver:
		return "game_over"
	}
	return "unknown"
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
}

// Display forwards frames to another display and plays a cue for each
// transition it sees between consecutive frames.
type Display struct {
	next    engine.Display
	player  Player
	last    tetris.Frame
	started bool
}

// Wrap decorates next with cues played on p.
func Wrap(next engine.Display, p Player) *Display {
	return &Display{next: next, player: p}
}

// Draw plays any cues for f, then draws it.
func (d *Display) Draw(f tetris.Frame) error {
	if d.started {
		for _, c := range Cues(d.last, f) {
			d.player.Play(c)
		}
	}
	d.last = f
	d.started = true
	return d.next.Draw(f)
}

// Cues returns the cues for the step from prev to cur. A restart (fewer
// locked pieces than before) is silent.
func Cues(prev, cur tetris.Frame) []Cue {
	if cur.Pieces < prev.Pieces {
		return nil
	}
	var cues []Cue
	switch {
	case cur.Score > prev.Score:
		cues = append(cues, CueClear)
	case cur.Pieces > prev.Pieces:
		cues = append(cues, CueLock)
	}
	if cur.GameOver && !prev.GameOver {
		cues = append(cues, CueGameOver)
	}
	return cues
}

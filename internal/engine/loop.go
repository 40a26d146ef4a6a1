// Package engine runs the fixed-cadence game loop: each tick it drains
// pending input into the game, hands a snapshot to the display, and sleeps
// for the rest of the tick budget.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Display renders one full frame per tick.
type Display interface {
	Draw(f tetris.Frame) error
}

// Input yields pending actions without blocking. ok is false when nothing
// is waiting.
type Input interface {
	Poll() (a core.Action, ok bool)
}

// MaxEventsPerTick bounds how many actions one tick applies, so a flood of
// key repeats cannot starve rendering. The remainder waits for the next tick.
const MaxEventsPerTick = 64

// Loop drives a Game from an Input to a Display.
type Loop struct {
	game     *tetris.Game
	display  Display
	input    Input
	tickRate int
	logger   *log.Logger

	now   func() time.Time
	seeds func() int64

	ticks uint64
	last  tetris.Frame
}

// Option configures a Loop.
type Option func(*Loop)

// WithTickRate sets the number of ticks per second.
func WithTickRate(rate int) Option {
	return func(l *Loop) {
		if rate > 0 {
			l.tickRate = rate
		}
	}
}

// WithLogger sets the logger for loop events.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSeedSource sets where restart seeds come from.
func WithSeedSource(seeds func() int64) Option {
	return func(l *Loop) {
		if seeds != nil {
			l.seeds = seeds
		}
	}
}

// New creates a loop over game reading from in and drawing to out.
func New(game *tetris.Game, in Input, out Display, opts ...Option) *Loop {
	l := &Loop{
		game:     game,
		display:  out,
		input:    in,
		tickRate: core.DefaultTickRate,
		logger:   log.New(io.Discard),
		now:      time.Now,
		seeds:    func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Budget returns the wall-clock length of one tick.
func (l *Loop) Budget() time.Duration {
	return time.Second / time.Duration(l.tickRate)
}

// Ticks returns the number of completed ticks.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Run ticks until the game's quit flag is set, ctx is cancelled, or the
// display fails. A quit returns nil.
func (l *Loop) Run(ctx context.Context) error {
	budget := l.Budget()
	l.logger.Info("loop started", "tick_rate", l.tickRate, "budget", budget)
	defer func() {
		l.logger.Info("loop stopped", "ticks", l.ticks, "score", l.last.Score)
	}()

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		if l.game.Quit() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		begin := l.now()
		if err := l.Tick(); err != nil {
			return err
		}

		wait := budget - l.now().Sub(begin)
		if wait <= 0 {
			continue
		}
		timer.Reset(wait)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Tick runs one iteration without sleeping: drain input, then draw.
func (l *Loop) Tick() error {
	l.drain()
	if l.game.Quit() {
		return nil
	}

	frame := l.game.Snapshot()
	l.observe(frame)
	if err := l.display.Draw(frame); err != nil {
		return fmt.Errorf("engine: draw: %w", err)
	}
	l.ticks++
	return nil
}

// drain applies up to MaxEventsPerTick pending actions.
func (l *Loop) drain() {
	for i := 0; i < MaxEventsPerTick; i++ {
		a, ok := l.input.Poll()
		if !ok {
			return
		}
		switch a {
		case core.ActionRestart:
			if l.game.Restart(l.seeds()) {
				l.logger.Info("game restarted")
			}
		case core.ActionQuit:
			l.game.Apply(a)
			l.logger.Debug("quit requested")
			return
		default:
			l.game.Apply(a)
		}
	}
}

// observe logs transitions between the previous frame and f.
func (l *Loop) observe(f tetris.Frame) {
	prev := l.last
	l.last = f
	if f.Pieces < prev.Pieces {
		return // restarted
	}
	if f.Pieces > prev.Pieces {
		l.logger.Debug("piece locked", "pieces", f.Pieces, "next", f.Next)
	}
	if f.Score > prev.Score {
		l.logger.Debug("lines cleared", "lines", f.Score-prev.Score, "score", f.Score)
	}
	if f.GameOver && !prev.GameOver {
		l.logger.Info("game over", "score", f.Score, "pieces", f.Pieces)
	}
}

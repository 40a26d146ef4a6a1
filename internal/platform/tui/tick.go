// Package tui provides the Bubble Tea frontend for the game.
// The engine loop owns the clock; frames reach the Bubble Tea program
// through a single-slot mailbox and keys flow back through an input queue.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// FrameMsg carries the latest snapshot into the Bubble Tea update loop.
type FrameMsg tetris.Frame

// closedMsg reports that the engine side hung up.
type closedMsg struct{}

// mailbox holds at most one pending frame. A newer frame replaces an
// unread one, so a slow terminal skips frames instead of stalling the loop.
type mailbox struct {
	frames chan tetris.Frame
	closed chan struct{}
	once   sync.Once
}

func newMailbox() *mailbox {
	return &mailbox{
		frames: make(chan tetris.Frame, 1),
		closed: make(chan struct{}),
	}
}

// put stores f, discarding any unread frame. Only the loop goroutine puts.
func (m *mailbox) put(f tetris.Frame) error {
	select {
	case <-m.closed:
		return ErrClosed
	default:
	}

	select {
	case <-m.frames:
	default:
	}
	select {
	case m.frames <- f:
	default:
	}
	return nil
}

func (m *mailbox) close() {
	m.once.Do(func() { close(m.closed) })
}

// waitForFrame returns a command that blocks until a frame arrives or the
// mailbox is closed.
func waitForFrame(m *mailbox) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-m.frames:
			return FrameMsg(f)
		case <-m.closed:
			return closedMsg{}
		}
	}
}

// pipe connects an engine loop to one Bubble Tea program. It satisfies the
// loop's Display and Input sides.
type pipe struct {
	box   *mailbox
	input *core.InputQueue
}

func newPipe() *pipe {
	return &pipe{
		box:   newMailbox(),
		input: core.NewInputQueue(core.DefaultQueueSize),
	}
}

// Draw hands a frame to the program.
func (p *pipe) Draw(f tetris.Frame) error {
	return p.box.put(f)
}

// Poll returns the next key action pushed by the program.
func (p *pipe) Poll() (core.Action, bool) {
	return p.input.Poll()
}

// hangUp tells the program to exit once it has drained.
func (p *pipe) hangUp() {
	p.box.close()
}

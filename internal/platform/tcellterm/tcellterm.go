// Package tcellterm is a frontend that draws frames directly with tcell.
package tcellterm

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// FrontendID is the --frontend value for this frontend.
const FrontendID = "tcell"

// ErrClosed is returned by Draw after Close.
var ErrClosed = errors.New("tcellterm: session closed")

const closeTimeout = 2 * time.Second

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Frontend opens sessions on the controlling terminal through tcell.
type Frontend struct{}

func (Frontend) ID() string    { return FrontendID }
func (Frontend) Title() string { return "tcell (direct cells)" }

// Open initializes the terminal and starts reading key events.
func (Frontend) Open(opts registry.Options) (registry.Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellterm: new screen: %w", err)
	}
	return newSession(screen, opts)
}

// Session draws frames on a tcell screen and turns key events into actions.
type Session struct {
	screen tcell.Screen
	buf    *core.Screen
	input  *core.InputQueue
	lookup map[string]core.Action
	hint   string
	logger *log.Logger

	mu     sync.Mutex // serializes drawing with Close
	closed bool

	done      chan struct{}
	closeOnce sync.Once
}

func newSession(screen tcell.Screen, opts registry.Options) (*Session, error) {
	lookup, err := opts.Keys.Lookup()
	if err != nil {
		return nil, fmt.Errorf("tcellterm: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellterm: init: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		screen: screen,
		buf:    core.NewScreen(tetris.ViewWidth, tetris.ViewHeight),
		input:  core.NewInputQueue(core.DefaultQueueSize),
		lookup: lookup,
		hint:   hintLine(opts.Keys),
		logger: logger,
		done:   make(chan struct{}),
	}
	go s.readEvents()
	return s, nil
}

// readEvents runs until the screen is finalized.
func (s *Session) readEvents() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			name := KeyName(ev)
			if a, ok := s.lookup[name]; ok {
				if !s.input.Push(a) {
					s.logger.Warn("input queue full, key dropped", "key", name)
				}
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// Draw renders f centered on the terminal and shows it.
func (s *Session) Draw(f tetris.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	s.buf.Clear()
	tetris.Render(&f, s.buf)

	w, h := s.screen.Size()
	ox := core.Max(0, (w-tetris.ViewWidth)/2)
	oy := core.Max(0, (h-tetris.ViewHeight-2)/2)

	s.screen.Clear()
	for y := 0; y < s.buf.Height(); y++ {
		for x := 0; x < s.buf.Width(); x++ {
			cell := s.buf.GetCell(x, y)
			s.screen.SetContent(ox+x, oy+y, cell.Rune, nil, Style(cell.Color))
		}
	}
	hintStyle := Style(core.ColorGray)
	for i, r := range []rune(s.hint) {
		s.screen.SetContent(ox+i, oy+tetris.ViewHeight+1, r, nil, hintStyle)
	}
	s.screen.Show()
	return nil
}

// Poll returns the next pending action.
func (s *Session) Poll() (core.Action, bool) {
	return s.input.Poll()
}

// Done is closed once the event reader has stopped.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close restores the terminal.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.screen.Fini()
		select {
		case <-s.done:
		case <-time.After(closeTimeout):
			s.logger.Warn("tcell event reader did not stop")
		}
	})
	return nil
}

// Style maps a cell color to a tcell style.
func Style(c core.Color) tcell.Style {
	if c.IsDefault() {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

var specialKeys = map[tcell.Key]string{
	tcell.KeyCtrlC:  "ctrl+c",
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyEnter:  "enter",
	tcell.KeyEscape: "esc",
	tcell.KeyTab:    "tab",
}

// KeyName returns the configuration name of a key event, using the same
// spelling as the Bubble Tea frontend ("a", "space", "ctrl+c", "left").
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return "space"
		}
		return string(ev.Rune())
	}
	if name, ok := specialKeys[ev.Key()]; ok {
		return name
	}
	return strings.ReplaceAll(strings.ToLower(ev.Name()), "-", "+")
}

// hintLine summarizes the main bindings for the line under the well.
func hintLine(kb config.KeyBindings) string {
	parts := []struct {
		action core.Action
		label  string
	}{
		{core.ActionMoveLeft, "left"},
		{core.ActionMoveRight, "right"},
		{core.ActionRotateCW, "rotate"},
		{core.ActionHardDrop, "drop"},
		{core.ActionQuit, "quit"},
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		keys := kb.Keys(p.action)
		if len(keys) == 0 {
			continue
		}
		out = append(out, keys[0]+" "+p.label)
	}
	return strings.Join(out, "  ")
}

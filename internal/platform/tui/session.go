package tui

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// FrontendID is the --frontend value for the Bubble Tea frontend.
const FrontendID = "tea"

// closeTimeout bounds how long Close waits for the program to restore the
// terminal before killing it.
const closeTimeout = 2 * time.Second

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game inside a Bubble Tea program on the local terminal.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string { return FrontendID }

// Title returns a human-readable name.
func (Frontend) Title() string { return "Bubble Tea (alt screen)" }

// Open starts the program in the background and returns its session.
func (Frontend) Open(opts registry.Options) (registry.Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := newPipe()
	model := newModel(p, NewKeyMap(opts.Keys), nil)
	model.width, model.height = opts.Runtime.ScreenW, opts.Runtime.ScreenH
	model.help.Width = opts.Runtime.ScreenW
	if home, err := os.UserHomeDir(); err == nil {
		model.screenshotDir = filepath.Join(home, ".tetris", "screenshots")
	}

	s := &Session{
		pipe:    p,
		program: tea.NewProgram(model, tea.WithAltScreen()),
		done:    make(chan struct{}),
		logger:  logger,
	}
	go s.run()
	return s, nil
}

// Session is a running Bubble Tea program fed by the engine loop.
type Session struct {
	*pipe
	program *tea.Program
	done    chan struct{}
	err     error
	logger  *log.Logger

	closeOnce sync.Once
}

func (s *Session) run() {
	defer close(s.done)
	if _, err := s.program.Run(); err != nil {
		s.err = err
		s.logger.Error("bubble tea program failed", "err", err)
	}
}

// Done is closed when the program exits.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close hangs up the mailbox and waits for the program to restore the
// terminal. Returns the program's error, if any.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.hangUp()
		select {
		case <-s.done:
		case <-time.After(closeTimeout):
			s.logger.Warn("bubble tea program did not exit, killing")
			s.program.Kill()
			<-s.done
		}
	})
	return s.err
}

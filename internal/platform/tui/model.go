package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// ErrClosed is returned by Draw after the session has been closed.
var ErrClosed = errors.New("tui: session closed")

// Model is the Bubble Tea model for one game view. It never advances the
// game itself: it shows whatever frame the engine last published and turns
// key presses into actions.
type Model struct {
	pipe     *pipe
	keys     KeyMap
	help     help.Model
	palette  *palette
	screen   *core.Screen
	frame    tetris.Frame
	hasFrame bool
	width    int
	height   int
	quitting bool

	// screenshotDir receives ctrl+s dumps; empty disables them.
	screenshotDir string
}

// newModel creates a model that reads frames from and writes actions to p.
func newModel(p *pipe, keys KeyMap, r *lipgloss.Renderer) Model {
	h := help.New()
	if r != nil {
		h.Styles.ShortKey = r.NewStyle().Foreground(lipgloss.Color("245"))
		h.Styles.ShortDesc = r.NewStyle().Foreground(lipgloss.Color("240"))
	}
	return Model{
		pipe:    p,
		keys:    keys,
		help:    h,
		palette: newPalette(r),
		screen:  core.NewScreen(tetris.ViewWidth, tetris.ViewHeight),
	}
}

// Init starts waiting for the first frame.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.pipe.box)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.frame = tetris.Frame(msg)
		m.hasFrame = true
		return m, waitForFrame(m.pipe.box)

	case closedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input. Quit goes through the engine like any
// other action; the program exits when the engine hangs up.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.pipe.input.Push(a)
	}
	return m, nil
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" || !m.hasFrame {
		return
	}
	m.draw()

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("tetris_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m Model) draw() {
	m.screen.Clear()
	tetris.Render(&m.frame, m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.hasFrame {
		return "loading..."
	}

	m.draw()
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.palette.RenderScreen(m.screen),
		"",
		m.help.View(m.keys),
	)

	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return m.palette.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

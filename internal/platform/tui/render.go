package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// palette caches one lipgloss style per color for a renderer. Over SSH
// every session has its own renderer, so palettes are not shared.
type palette struct {
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) *palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &palette{
		renderer: r,
		styles:   make(map[core.Color]lipgloss.Style),
	}
}

func (p *palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if !c.IsDefault() {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	p.styles[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

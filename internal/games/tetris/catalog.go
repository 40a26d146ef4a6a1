// Package tetris implements the falling-block engine: the piece catalog, the
// 7-bag randomizer, the board grid, the active-piece state machine and the
// Game aggregate that serializes access to them.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies a tetromino. KindNone is reserved and never drawn.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindZ
	KindT
	KindO
	KindS
	KindL
	KindJ
)

// KindCount is the number of playable kinds.
const KindCount = 7

// Kinds returns the playable kinds in catalog order.
func Kinds() [KindCount]Kind {
	return [KindCount]Kind{KindI, KindZ, KindT, KindO, KindS, KindL, KindJ}
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindI:
		return "I"
	case KindZ:
		return "Z"
	case KindT:
		return "T"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Rotation is one of four cyclic orientations.
type Rotation uint8

// RotationCount is the number of orientations per kind.
const RotationCount = 4

// CW returns the next orientation clockwise.
func (r Rotation) CW() Rotation {
	return (r + 1) % RotationCount
}

// CCW returns the next orientation counterclockwise.
func (r Rotation) CCW() Rotation {
	return (r + RotationCount - 1) % RotationCount
}

// ShapeSize is the side of a shape's bounding box.
const ShapeSize = 4

// Shape is a 4x4 occupancy mask indexed [row][col].
type Shape [ShapeSize][ShapeSize]bool

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for _, row := range s {
		for _, set := range row {
			if set {
				n++
			}
		}
	}
	return n
}

// Cells returns the offsets of the occupied cells, top to bottom,
// left to right.
func (s Shape) Cells() []core.Point {
	cells := make([]core.Point, 0, 4)
	for r, row := range s {
		for c, set := range row {
			if set {
				cells = append(cells, core.Pt(r, c))
			}
		}
	}
	return cells
}

// mask builds a Shape from four rows of '#' and '.'.
func mask(rows ...string) Shape {
	var s Shape
	for r, line := range rows {
		for c, ch := range line {
			s[r][c] = ch == '#'
		}
	}
	return s
}

var shapes = [KindCount + 1][RotationCount]Shape{
	KindNone: {},
	KindI: {
		mask("....", "####", "....", "...."),
		mask("..#.", "..#.", "..#.", "..#."),
		mask("....", "....", "####", "...."),
		mask(".#..", ".#..", ".#..", ".#.."),
	},
	KindZ: {
		mask("##..", ".##.", "....", "...."),
		mask("..#.", ".##.", ".#..", "...."),
		mask("....", "##..", ".##.", "...."),
		mask(".#..", "##..", "#...", "...."),
	},
	KindT: {
		mask("....", "###.", ".#..", "...."),
		mask(".#..", "##..", ".#..", "...."),
		mask(".#..", "###.", "....", "...."),
		mask(".#..", ".##.", ".#..", "...."),
	},
	KindO: {
		mask("....", ".##.", ".##.", "...."),
		mask("....", ".##.", ".##.", "...."),
		mask("....", ".##.", ".##.", "...."),
		mask("....", ".##.", ".##.", "...."),
	},
	KindS: {
		mask(".##.", "##..", "....", "...."),
		mask(".#..", ".##.", "..#.", "...."),
		mask("....", ".##.", "##..", "...."),
		mask("#...", "##..", ".#..", "...."),
	},
	KindL: {
		mask("..#.", "###.", "....", "...."),
		mask(".#..", ".#..", ".##.", "...."),
		mask("....", "###.", "#...", "...."),
		mask("##..", ".#..", ".#..", "...."),
	},
	KindJ: {
		mask("#...", "###.", "....", "...."),
		mask(".##.", ".#..", ".#..", "...."),
		mask("....", "###.", "..#.", "...."),
		mask(".#..", ".#..", "##..", "...."),
	},
}

var colors = [KindCount + 1]core.Color{
	KindNone: core.RGB(0, 0, 0),
	KindI:    core.ColorCyan,
	KindZ:    core.ColorRed,
	KindT:    core.ColorMagenta,
	KindO:    core.ColorYellow,
	KindS:    core.ColorGreen,
	KindL:    core.ColorOrange,
	KindJ:    core.ColorBlue,
}

// ShapeOf returns the occupancy mask of kind k in rotation r.
// Panics on an out-of-range kind or rotation.
func ShapeOf(k Kind, r Rotation) Shape {
	if k > KindJ || r >= RotationCount {
		panic(fmt.Sprintf("tetris: no shape for kind %d rotation %d", k, r))
	}
	return shapes[k][r]
}

// ColorOf returns the display color of kind k.
// Panics on an out-of-range kind.
func ColorOf(k Kind) core.Color {
	if k > KindJ {
		panic(fmt.Sprintf("tetris: no color for kind %d", k))
	}
	return colors[k]
}

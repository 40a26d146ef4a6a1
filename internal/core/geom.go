// Package core provides fundamental types and utilities shared by the game
// engine and the terminal frontends. It has no external dependencies so the
// game logic stays pure and testable.
package core

// Point is a grid coordinate. Row grows downward, Col grows to the right.
// Either component may be negative for transient off-grid positions.
type Point struct {
	Row, Col int
}

// Pt is shorthand for Point{Row: row, Col: col}.
func Pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

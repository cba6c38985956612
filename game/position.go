package game

import (
	"fmt"
	"strings"
)

// Position is an absolute (row, column) coordinate on the backing grid.
// The playable region is 1..8 on both axes.
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Playable reports whether p lies inside the 8x8 playable region.
func (p Position) Playable() bool {
	return p.Row >= 1 && p.Row <= PlayableSize && p.Col >= 1 && p.Col <= PlayableSize
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// ValidatePosition rejects coordinates outside the playable region.
func ValidatePosition(p Position) error {
	if !p.Playable() {
		return fmt.Errorf("%w: %s", ErrOffBoard, p)
	}
	return nil
}

// FormatPositions renders positions as a bracketed list, e.g. "[(3, 4), (4, 3)]".
func FormatPositions(positions []Position) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Direction is a unit step vector along one of the 8 compass rays.
type Direction struct {
	DRow, DCol int
}

var (
	Up        = Direction{-1, 0}
	Down      = Direction{1, 0}
	Left      = Direction{0, -1}
	Right     = Direction{0, 1}
	UpLeft    = Direction{-1, -1}
	UpRight   = Direction{-1, 1}
	DownLeft  = Direction{1, -1}
	DownRight = Direction{1, 1}
)

// Directions lists all 8 rays. The order carries no meaning.
var Directions = [8]Direction{
	UpLeft, Up, UpRight,
	Left, Right,
	DownLeft, Down, DownRight,
}

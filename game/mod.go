package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOffBoard     = errors.New("position is outside the playable region")
	ErrUnknownColor = errors.New("unknown piece color")
)

// Cell is the content of a single square of the backing grid.
type Cell byte

const (
	Empty      Cell = '.'
	Edge       Cell = '*'
	BlackPiece Cell = 'X'
	WhitePiece Cell = 'O'
)

func (c Cell) String() string {
	return string(c)
}

// Color identifies a side. Each color owns exactly one piece kind.
type Color int

const (
	Black Color = iota + 1
	White
)

// Colors in playing order, Black moves first.
var Colors = [2]Color{Black, White}

// Token returns the piece a player of this color places on the board.
func (c Color) Token() Cell {
	switch c {
	case Black:
		return BlackPiece
	case White:
		return WhitePiece
	default:
		panic(fmt.Sprintf("no token for color %d", c))
	}
}

func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// ParseColor maps "black" / "white" (any case) to a Color.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}

// Outcome is the ranking of a finished game by raw piece count.
type Outcome int

const (
	Tie Outcome = iota
	BlackWins
	WhiteWins
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "black wins"
	case WhiteWins:
		return "white wins"
	default:
		return "tie"
	}
}

// Winner returns the color that won, or false for a tie.
func (o Outcome) Winner() (Color, bool) {
	switch o {
	case BlackWins:
		return Black, true
	case WhiteWins:
		return White, true
	default:
		return 0, false
	}
}

package game

import (
	"hash/fnv"
	"strings"
)

// Size is the side length of the backing grid: the 8x8 playable region
// plus a one-cell sentinel ring of Edge cells.
const Size = 10

// PlayableSize is the side length of the playable region.
const PlayableSize = Size - 2

type BoardHash uint64

// Board is the backing grid indexed [row][col]. Rows and columns 0 and 9 are
// Edge and never change after construction. Board is a value type: assigning
// it copies the grid, and two boards are equal iff every cell is equal.
type Board [Size][Size]Cell

// NewBoard returns a board with the edge ring in place and every playable
// cell empty.
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if row == 0 || row == Size-1 || col == 0 || col == Size-1 {
				b[row][col] = Edge
			} else {
				b[row][col] = Empty
			}
		}
	}
	return b
}

// NewStartBoard returns a board in the opening position.
func NewStartBoard() *Board {
	b := NewBoard()
	b[4][4], b[5][5] = WhitePiece, WhitePiece
	b[4][5], b[5][4] = BlackPiece, BlackPiece
	return b
}

// Copy creates a deep copy of the board
func (b *Board) Copy() *Board {
	newBoard := *b
	return &newBoard
}

// Get returns the cell at pos. Any coordinate of the backing grid is valid.
func (b *Board) Get(pos Position) Cell {
	return b[pos.Row][pos.Col]
}

// Set overwrites a playable cell. Writing to the edge ring is a programming
// error and panics.
func (b *Board) Set(pos Position, token Cell) {
	if !pos.Playable() {
		panic("cannot set cell " + pos.String() + ": not in playable region")
	}
	b[pos.Row][pos.Col] = token
}

// Count returns the number of pieces of the given color on the board.
func (b *Board) Count(c Color) int {
	return b.countCells(c.Token())
}

// Empty returns the number of empty playable cells.
func (b *Board) Empty() int {
	return b.countCells(Empty)
}

func (b *Board) countCells(cell Cell) int {
	count := 0
	for row := range b {
		for col := range b[row] {
			if b[row][col] == cell {
				count++
			}
		}
	}
	return count
}

// Render returns one line per grid row with cells separated by a single
// space, edge ring included.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.Grow(Size * Size * 2)
	for row := range b {
		for col := range b[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(b[row][col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Render()
}

func (b *Board) Hash() BoardHash {
	hasher := fnv.New64a()
	for row := range b {
		for col := range b[row] {
			hasher.Write([]byte{byte(b[row][col])})
		}
	}
	return BoardHash(hasher.Sum64())
}

// Result ranks the board by raw piece count.
func Result(b *Board) Outcome {
	black, white := b.Count(Black), b.Count(White)
	switch {
	case black > white:
		return BlackWins
	case white > black:
		return WhiteWins
	default:
		return Tie
	}
}

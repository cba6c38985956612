package game

import "golang.org/x/exp/slices"

// LegalMoves returns every empty position where c can play, in row-major
// order without duplicates. An empty result means c has no move this turn.
//
// Each of c's pieces is scanned along all 8 rays: a ray yields a move when
// one or more opponent pieces are followed directly by an empty cell. The
// edge ring stops every ray before it can leave the grid.
func LegalMoves(b *Board, c Color) []Position {
	own, opp := c.Token(), c.Opponent().Token()
	seen := make(map[Position]struct{})
	moves := []Position{}

	for row := 1; row <= PlayableSize; row++ {
		for col := 1; col <= PlayableSize; col++ {
			if b[row][col] != own {
				continue
			}
			origin := Position{Row: row, Col: col}
			for _, dir := range Directions {
				target, ok := scanForEmpty(b, origin, dir, opp)
				if !ok {
					continue
				}
				if _, dup := seen[target]; dup {
					continue
				}
				seen[target] = struct{}{}
				moves = append(moves, target)
			}
		}
	}

	slices.SortFunc(moves, comparePositions)
	return moves
}

// scanForEmpty walks from origin along dir over a contiguous run of opp
// pieces and returns the empty cell that ends it, if any.
func scanForEmpty(b *Board, origin Position, dir Direction, opp Cell) (Position, bool) {
	pos := origin.Step(dir)
	if b.Get(pos) != opp {
		return Position{}, false
	}
	for b.Get(pos) == opp {
		pos = pos.Step(dir)
	}
	return pos, b.Get(pos) == Empty
}

// IsLegal reports whether c may play at pos.
func IsLegal(b *Board, c Color, pos Position) bool {
	return slices.Contains(LegalMoves(b, c), pos)
}

// Flips returns the opponent pieces that would turn to c if c played at
// pos, without touching the board.
func Flips(b *Board, c Color, pos Position) []Position {
	flipped := []Position{}
	for _, dir := range Directions {
		flipped = append(flipped, flipsAlong(b, c, pos, dir)...)
	}
	return flipped
}

// flipsAlong collects the run of opponent pieces next to pos in dir. The run
// only counts if c's own piece closes it; reaching Empty or Edge first
// discards it.
func flipsAlong(b *Board, c Color, pos Position, dir Direction) []Position {
	own, opp := c.Token(), c.Opponent().Token()
	var run []Position
	next := pos.Step(dir)
	for b.Get(next) == opp {
		run = append(run, next)
		next = next.Step(dir)
	}
	if b.Get(next) != own {
		return nil
	}
	return run
}

// ApplyMove places c's piece at pos and flips every captured run. The caller
// must have checked pos against LegalMoves; the move is not re-validated.
// It returns the flipped positions.
func ApplyMove(b *Board, c Color, pos Position) []Position {
	return applyMove(b, c, pos, Directions[:])
}

// applyMove processes dirs in the given order. Runs from a single origin
// never overlap, so any order yields the same board.
func applyMove(b *Board, c Color, pos Position, dirs []Direction) []Position {
	own := c.Token()
	b.Set(pos, own)

	flipped := []Position{}
	for _, dir := range dirs {
		run := flipsAlong(b, c, pos, dir)
		for _, p := range run {
			b.Set(p, own)
		}
		flipped = append(flipped, run...)
	}
	return flipped
}

// HasMoves reports whether c has at least one legal move.
func HasMoves(b *Board, c Color) bool {
	return len(LegalMoves(b, c)) > 0
}

// IsTerminal reports whether neither color can move.
func IsTerminal(b *Board) bool {
	return !HasMoves(b, Black) && !HasMoves(b, White)
}

func comparePositions(a, b Position) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

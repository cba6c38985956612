package gamemaster

import (
	"othello/game"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession()

	require.NotEqual(t, uuid.Nil, s.ID())
	require.Equal(t, InProgress, s.Status())
	require.Equal(t, game.Black, s.Turn())
	require.Equal(t, *game.NewStartBoard(), *s.Board())
	require.Empty(t, s.History())

	black, white := s.Counts()
	require.Equal(t, 2, black)
	require.Equal(t, 2, white)
}

func TestRegisterPlayer(t *testing.T) {
	s := NewSession()
	fiona := s.RegisterPlayer("Fiona", game.Black)
	s.RegisterPlayer("Mom", game.White)

	require.Equal(t, "Fiona", s.Player(game.Black).Name())
	require.Equal(t, game.White, s.Player(game.White).Color())
	require.Equal(t, game.WhitePiece, s.Player(game.White).Token())

	fiona.SetName("Fi")
	require.Equal(t, "Fi", s.Player(game.Black).Name())

	s.RegisterPlayer("Dad", game.White)
	require.Equal(t, "Dad", s.Player(game.White).Name(), "Later registration should replace the earlier one")
}

func TestSubmitMove(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		s := NewSession()
		res := s.SubmitMove(game.Black, game.Position{Row: 5, Col: 6})

		require.Equal(t, Accepted, res.Kind)
		require.Equal(t, []game.Position{{Row: 5, Col: 5}}, res.Flipped)
		require.Equal(t, 4, res.Black)
		require.Equal(t, 1, res.White)
		require.Equal(t, game.White, s.Turn())

		history := s.History()
		require.Len(t, history, 1)
		require.Equal(t, 1, history[0].Step)
		require.Equal(t, s.Board().Hash(), history[0].Hash)
	})

	t.Run("occupied cell is invalid and leaves board unchanged", func(t *testing.T) {
		s := NewSession()
		before := *s.Board()

		res := s.SubmitMove(game.Black, game.Position{Row: 4, Col: 4})

		require.Equal(t, InvalidMove, res.Kind)
		require.Equal(t, []game.Position{{Row: 3, Col: 4}, {Row: 4, Col: 3}, {Row: 5, Col: 6}, {Row: 6, Col: 5}}, res.Legal)
		require.Empty(t, res.Flipped)
		require.Equal(t, before, *s.Board())
		require.Empty(t, s.History())
		require.Equal(t, InProgress, s.Status())
	})

	t.Run("same color may move twice", func(t *testing.T) {
		s := NewSession()
		require.Equal(t, Accepted, s.SubmitMove(game.Black, game.Position{Row: 5, Col: 6}).Kind)
		require.Equal(t, game.White, s.Turn())

		res := s.SubmitMove(game.Black, game.Position{Row: 3, Col: 4})
		require.Equal(t, []game.Position{{Row: 4, Col: 4}}, res.Flipped, "Turn order is advisory")
		require.Equal(t, 0, res.White)
		require.Equal(t, GameEnded, res.Kind, "No white pieces left means neither color can move")
		require.Equal(t, game.BlackWins, res.Outcome)
	})

	t.Run("last capture ends the game", func(t *testing.T) {
		b := game.NewBoard()
		for row := 1; row <= game.PlayableSize; row++ {
			for col := 1; col <= game.PlayableSize; col++ {
				b.Set(game.Position{Row: row, Col: col}, game.BlackPiece)
			}
		}
		b.Set(game.Position{Row: 1, Col: 1}, game.Empty)
		b.Set(game.Position{Row: 1, Col: 2}, game.WhitePiece)

		var updates []Update
		s := NewSession(WithBoard(b), WithObserver(func(u Update) { updates = append(updates, u) }))
		s.RegisterPlayer("Fiona", game.Black)
		s.RegisterPlayer("Mom", game.White)
		require.Equal(t, InProgress, s.Status())
		require.Empty(t, s.Legal(game.White))

		res := s.SubmitMove(game.Black, game.Position{Row: 1, Col: 1})

		require.Equal(t, GameEnded, res.Kind)
		require.Equal(t, game.BlackWins, res.Outcome)
		require.Equal(t, 64, res.Black)
		require.Equal(t, 0, res.White)
		require.Equal(t, Ended, s.Status())
		require.Equal(t, game.BlackWins, s.Winner())
		require.Equal(t, "Winner is black player: Fiona", s.Announcement())
		require.Len(t, updates, 1)
		require.Equal(t, Ended, updates[0].Status)

		again := s.SubmitMove(game.White, game.Position{Row: 1, Col: 1})
		require.Equal(t, InvalidMove, again.Kind)
		require.Empty(t, again.Legal)
	})

	t.Run("WithBoard copies its argument", func(t *testing.T) {
		b := game.NewStartBoard()
		s := NewSession(WithBoard(b))
		s.SubmitMove(game.Black, game.Position{Row: 5, Col: 6})
		require.Equal(t, *game.NewStartBoard(), *b)
	})
}

func TestWinnerTie(t *testing.T) {
	b := game.NewBoard()
	for row := 1; row <= game.PlayableSize; row++ {
		for col := 1; col <= game.PlayableSize; col++ {
			token := game.WhitePiece
			if col <= 4 {
				token = game.BlackPiece
			}
			b.Set(game.Position{Row: row, Col: col}, token)
		}
	}

	s := NewSession(WithBoard(b))

	require.Equal(t, Ended, s.Status(), "A board with no moves for either color starts ended")
	require.Equal(t, game.Tie, s.Winner())
	require.Equal(t, "It's a tie", s.Announcement())
}

func TestSubmitMoveConcurrent(t *testing.T) {
	s := NewSession()
	pos := game.Position{Row: 5, Col: 6}

	var wg sync.WaitGroup
	results := make(chan Result, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.SubmitMove(game.Black, pos)
		}()
	}
	wg.Wait()
	close(results)

	accepted := 0
	for res := range results {
		if res.Kind == Accepted {
			accepted++
		}
	}
	require.Equal(t, 1, accepted, "Only one submission of the same move should be applied")
	require.Len(t, s.History(), 1)
}

package gamemaster

import (
	"fmt"
	"othello/game"
	"othello/utils"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Status int

const (
	InProgress Status = iota
	Ended
)

func (s Status) String() string {
	if s == Ended {
		return "ended"
	}
	return "in progress"
}

type ResultKind int

const (
	Accepted ResultKind = iota
	InvalidMove
	GameEnded
)

func (k ResultKind) String() string {
	switch k {
	case Accepted:
		return "accepted"
	case InvalidMove:
		return "invalid move"
	case GameEnded:
		return "game ended"
	default:
		return "unknown"
	}
}

// Result reports the effect of a single SubmitMove call.
type Result struct {
	Kind     ResultKind
	Color    game.Color
	Position game.Position
	Flipped  []game.Position // Captured pieces, empty for InvalidMove
	Legal    []game.Position // The mover's legal moves, set for InvalidMove
	Black    int
	White    int
	Outcome  game.Outcome // Set for GameEnded
}

// Update is one accepted move as seen by observers.
type Update struct {
	Step     int
	Color    game.Color
	Position game.Position
	Flipped  []game.Position
	Black    int
	White    int
	Hash     game.BoardHash
	Status   Status
}

// Observer is notified after every accepted move, inside the session lock.
type Observer func(Update)

type Option func(s *Session)

// WithBoard starts the session from a custom position instead of the
// opening one.
func WithBoard(b *game.Board) Option {
	return func(s *Session) {
		if b != nil {
			s.board = b.Copy()
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// Session owns the board for one game. A mutex makes each
// check-then-apply of SubmitMove atomic, so concurrent callers cannot race
// on the same board snapshot.
type Session struct {
	mu        sync.Mutex
	id        uuid.UUID
	board     *game.Board
	players   map[game.Color]*Player
	status    Status
	turn      game.Color
	history   []Update
	observers []Observer
}

func NewSession(options ...Option) *Session {
	s := &Session{ // Default values
		id:      uuid.New(),
		board:   game.NewStartBoard(),
		players: make(map[game.Color]*Player, 2),
		status:  InProgress,
		turn:    game.Black,
	}
	for _, option := range options {
		option(s)
	}
	if game.IsTerminal(s.board) {
		s.status = Ended
	}
	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// RegisterPlayer binds name to color. Registering a color again replaces
// the previous player.
func (s *Session) RegisterPlayer(name string, color game.Color) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.players[color]; ok {
		log.Warn().Str("session", s.id.String()).Msgf("replacing %s player %q with %q", color, prev.Name(), name)
	}
	p := NewPlayer(name, color)
	s.players[color] = p
	return p
}

// Player returns the player registered for color, or nil.
func (s *Session) Player(color game.Color) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players[color]
}

// SubmitMove plays pos for color if it is legal. An illegal position leaves
// the board untouched and returns InvalidMove with the legal set.
//
// Turn order is not enforced: callers may submit for either color.
func (s *Session) SubmitMove(color game.Color, pos game.Position) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := log.With().Str("session", s.id.String()).Str("color", color.String()).Stringer("position", pos).Logger()

	legal := game.LegalMoves(s.board, color)
	if !utils.Contains(legal, pos) {
		logger.Info().Msgf("invalid move, legal moves are %s", game.FormatPositions(legal))
		return Result{
			Kind:     InvalidMove,
			Color:    color,
			Position: pos,
			Flipped:  []game.Position{},
			Legal:    legal,
			Black:    s.board.Count(game.Black),
			White:    s.board.Count(game.White),
		}
	}

	flipped := game.ApplyMove(s.board, color, pos)
	black, white := s.board.Count(game.Black), s.board.Count(game.White)
	logger.Debug().Int("flipped", len(flipped)).Int("black", black).Int("white", white).Msg("move applied")

	res := Result{
		Kind:     Accepted,
		Color:    color,
		Position: pos,
		Flipped:  flipped,
		Black:    black,
		White:    white,
	}

	if game.IsTerminal(s.board) {
		s.status = Ended
		res.Kind = GameEnded
		res.Outcome = game.Result(s.board)
		log.Info().Str("session", s.id.String()).Int("black", black).Int("white", white).Msgf("game ended: %s", res.Outcome)
	} else {
		s.turn = s.nextTurn(color)
	}

	u := Update{
		Step:     len(s.history) + 1,
		Color:    color,
		Position: pos,
		Flipped:  flipped,
		Black:    black,
		White:    white,
		Hash:     s.board.Hash(),
		Status:   s.status,
	}
	s.history = append(s.history, u)
	for _, observe := range s.observers {
		observe(u)
	}

	return res
}

// nextTurn picks the opponent of the last mover, or the mover again when
// the opponent has to pass.
func (s *Session) nextTurn(last game.Color) game.Color {
	if game.HasMoves(s.board, last.Opponent()) {
		return last.Opponent()
	}
	return last
}

// Turn returns the color expected to move next. It is advisory only.
func (s *Session) Turn() game.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Legal returns the current legal moves for color.
func (s *Session) Legal(color game.Color) []game.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return game.LegalMoves(s.board, color)
}

// Board returns a copy of the current board.
func (s *Session) Board() *game.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Copy()
}

// Counts returns the black and white piece counts.
func (s *Session) Counts() (black, white int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Count(game.Black), s.board.Count(game.White)
}

// Winner ranks the board by piece count. Only meaningful once Ended.
func (s *Session) Winner() game.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return game.Result(s.board)
}

// Announcement returns the winner line naming the winning player,
// e.g. "Winner is black player: Fiona".
func (s *Session) Announcement() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	winner, ok := game.Result(s.board).Winner()
	if !ok {
		return "It's a tie"
	}
	name := ""
	if p := s.players[winner]; p != nil {
		name = p.Name()
	}
	return fmt.Sprintf("Winner is %s player: %s", winner, name)
}

// History returns every accepted move in order.
func (s *Session) History() []Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]Update, len(s.history))
	copy(history, s.history)
	return history
}

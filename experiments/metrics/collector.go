package metrics

import (
	"othello/game"
	"othello/gamemaster"
	"sync"
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step     int
	Color    game.Color
	Position game.Position
	Flipped  int
	Black    int
	White    int
	Elapsed  time.Duration // Since the collector started
}

type GameMetric struct {
	Session      string
	BlackPlayer  string
	WhitePlayer  string
	Outcome      game.Outcome
	Ended        bool
	Black        int
	White        int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	InvalidMoves int
}

type Collector interface {
	Start()
	Observe(u gamemaster.Update)
	AddInvalidMove()
	Moves() []MoveMetric
	Complete(s *gamemaster.Session) GameMetric
}

type collector struct {
	startTime    time.Time
	mu           sync.Mutex
	moves        []MoveMetric
	invalidMoves atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

// Observe records an accepted move. It matches gamemaster.Observer.
func (m *collector) Observe(u gamemaster.Update) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moves = append(m.moves, MoveMetric{
		Step:     u.Step,
		Color:    u.Color,
		Position: u.Position,
		Flipped:  len(u.Flipped),
		Black:    u.Black,
		White:    u.White,
		Elapsed:  time.Since(m.startTime),
	})
}

func (m *collector) AddInvalidMove() {
	m.invalidMoves.Add(1)
}

func (m *collector) Moves() []MoveMetric {
	m.mu.Lock()
	defer m.mu.Unlock()
	moves := make([]MoveMetric, len(m.moves))
	copy(moves, m.moves)
	return moves
}

func (m *collector) Complete(s *gamemaster.Session) GameMetric {
	end := time.Now()
	black, white := s.Counts()
	metric := GameMetric{
		Session:      s.ID().String(),
		Outcome:      s.Winner(),
		Ended:        s.Status() == gamemaster.Ended,
		Black:        black,
		White:        white,
		StartTime:    m.startTime,
		EndTime:      end,
		Duration:     end.Sub(m.startTime),
		TotalMoves:   len(m.Moves()),
		InvalidMoves: int(m.invalidMoves.Load()),
	}
	if p := s.Player(game.Black); p != nil {
		metric.BlackPlayer = p.Name()
	}
	if p := s.Player(game.White); p != nil {
		metric.WhitePlayer = p.Name()
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                                    {}
func (m *dummyCollector) Observe(u gamemaster.Update)               {}
func (m *dummyCollector) AddInvalidMove()                           {}
func (m *dummyCollector) Moves() []MoveMetric                       { return nil }
func (m *dummyCollector) Complete(s *gamemaster.Session) GameMetric { return GameMetric{} }

package engine

import (
	"fmt"
	"io"
	"othello/experiments/metrics"
	"othello/game"
	"othello/gamemaster"

	"github.com/rs/zerolog/log"
)

// Summary is the outcome of running a script.
type Summary struct {
	Session      string
	Accepted     int
	Invalid      int
	Ended        bool
	Black        int
	White        int
	Outcome      game.Outcome
	Announcement string
}

type Option func(e *Engine)

// WithQuiet suppresses board printing. Invalid move and end-of-game lines
// are still written.
func WithQuiet() Option {
	return func(e *Engine) {
		e.quiet = true
	}
}

func WithMetrics(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.metrics = c
		}
	}
}

// WithSessionOptions forwards options to the session the engine creates.
func WithSessionOptions(options ...gamemaster.Option) Option {
	return func(e *Engine) {
		e.sessionOptions = append(e.sessionOptions, options...)
	}
}

// Engine drives one session through a script, writing a text transcript.
type Engine struct {
	Session        *gamemaster.Session
	out            io.Writer
	quiet          bool
	metrics        metrics.Collector
	sessionOptions []gamemaster.Option
}

func New(out io.Writer, options ...Option) *Engine {
	e := &Engine{
		out:     out,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	opts := append([]gamemaster.Option{gamemaster.WithObserver(e.metrics.Observe)}, e.sessionOptions...)
	e.Session = gamemaster.NewSession(opts...)
	return e
}

// Run submits every scripted move in order. Illegal moves are reported in
// the transcript and do not stop the run; malformed moves fail before any
// move is played.
func (e *Engine) Run(script *Script) (Summary, error) {
	if err := script.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid script: %w", err)
	}

	session := e.Session
	session.RegisterPlayer(script.Players.Black, game.Black)
	session.RegisterPlayer(script.Players.White, game.White)

	logger := log.With().Str("session", session.ID().String()).Logger()
	logger.Info().Msgf("starting script with %d moves, %s plays black and %s plays white",
		len(script.Moves), script.Players.Black, script.Players.White)

	e.metrics.Start()
	summary := Summary{Session: session.ID().String()}
	e.printBoard()

	for i, m := range script.Moves {
		color, pos, _ := m.Parse()

		res := session.SubmitMove(color, pos)
		switch res.Kind {
		case gamemaster.InvalidMove:
			summary.Invalid++
			e.metrics.AddInvalidMove()
			e.printf("Here are the valid moves: %s\n", game.FormatPositions(res.Legal))
			e.printf("Invalid move\n")
			logger.Debug().Msgf("move %d: %s %s rejected", i+1, color, pos)
		case gamemaster.Accepted:
			summary.Accepted++
			e.printBoard()
		case gamemaster.GameEnded:
			summary.Accepted++
			e.printBoard()
			e.printf("Game is ended white piece: %d black piece: %d\n", res.White, res.Black)
			e.printf("%s\n", session.Announcement())
		}
	}

	summary.Ended = session.Status() == gamemaster.Ended
	summary.Black, summary.White = session.Counts()
	summary.Outcome = session.Winner()
	summary.Announcement = session.Announcement()
	// A game that ended during the script was already announced.
	if script.AnnounceWinner && !summary.Ended {
		e.printf("%s\n", summary.Announcement)
	}

	logger.Info().Int("accepted", summary.Accepted).Int("invalid", summary.Invalid).Bool("ended", summary.Ended).
		Msgf("script finished: %s", summary.Outcome)
	return summary, nil
}

func (e *Engine) printBoard() {
	if e.quiet {
		return
	}
	e.printf("%s\n", e.Session.Board().Render())
}

func (e *Engine) printf(format string, args ...any) {
	fmt.Fprintf(e.out, format, args...)
}

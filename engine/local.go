package engine

import (
	"fmt"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Engine runs a match between two seats on one board. It owns the turn order,
// which the board engine does not track.
type Engine struct {
	game     *game.Game
	agents   [2]agent.Agent
	turn     game.Player
	history  []Update
	observer game.Observer
}

type Option func(e *Engine)

// WithObserver attaches observer to every game the engine creates
func WithObserver(observer game.Observer) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

// LocalEngine starts an empty game with PlayerA to move. agents[0] plays
// PlayerA and agents[1] PlayerB; a nil agent is a seat driven through Play.
func LocalEngine(agents []agent.Agent, options ...Option) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	e := &Engine{agents: [2]agent.Agent{agents[0], agents[1]}}
	for _, option := range options {
		option(e)
	}
	e.Reset()
	return e
}

// Reset discards the current game and starts a new one with PlayerA to move
func (e *Engine) Reset() {
	var options []game.Option
	if e.observer != nil {
		options = append(options, game.WithObserver(e.observer))
	}
	e.game = game.NewGame(options...)
	e.turn = game.PlayerA
	e.history = nil
}

// Turn returns the side to move
func (e *Engine) Turn() game.Player {
	return e.turn
}

func (e *Engine) Outcome() game.Outcome {
	return e.game.Outcome()
}

// Board returns a copy of the current grid
func (e *Engine) Board() game.Board {
	return e.game.Board()
}

// History returns the moves played so far, oldest first
func (e *Engine) History() []Update {
	history := make([]Update, len(e.history))
	copy(history, e.history)
	return history
}

// Agent returns the agent seated for player, or nil for an externally driven seat
func (e *Engine) Agent(player game.Player) agent.Agent {
	if !player.Valid() {
		return nil
	}
	return e.agents[player-1]
}

// Play drops a disc for the side to move into col and passes the turn
func (e *Engine) Play(col int) (Update, error) {
	if e.game.IsGameOver() {
		return Update{}, ErrGameOver
	}
	if !e.game.IsValidMove(col) {
		return Update{}, fmt.Errorf("%w: column %d", ErrInvalidMove, col)
	}

	e.game.MakeMove(col, e.turn)
	board := e.game.Board()
	u := Update{
		Step:   len(e.history) + 1,
		Player: e.turn,
		Column: col,
		Row:    game.Rows - board.Height(col),
	}
	e.history = append(e.history, u)
	e.turn = e.turn.Opponent()
	return u, nil
}

// Step asks the agent of the side to move for a column and plays it
func (e *Engine) Step() (metrics.MoveMetric, error) {
	return e.StepWith(e.Agent(e.turn))
}

// StepWith plays the column a chooses for the side to move, ignoring the seated agent
func (e *Engine) StepWith(a agent.Agent) (metrics.MoveMetric, error) {
	if e.game.IsGameOver() {
		return metrics.MoveMetric{}, ErrGameOver
	}
	player := e.turn
	if a == nil {
		return metrics.MoveMetric{}, fmt.Errorf("%w: %s", ErrNoAgent, player)
	}

	col, search := a.FindMove(e.game, player)
	if !e.game.IsValidMove(col) {
		fallback := e.game.LegalMoves()[0]
		log.Warn().Msgf("%s chose invalid column %d, playing column %d", player, col, fallback)
		col = fallback
		search.Column = col
	}

	u, err := e.Play(col)
	if err != nil {
		return metrics.MoveMetric{}, err
	}
	return metrics.MoveMetric{
		Step:         u.Step,
		Player:       int(player),
		SearchMetric: search,
	}, nil
}

// Run executes the entire game loop until a win or a draw
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.turn),
		StartTime:      time.Now(),
	}
	log.Debug().Msgf("%s is starting", e.turn)

	var moveMetrics []metrics.MoveMetric
	for !e.game.IsGameOver() && len(e.history) < MaxMoves {
		moveMetric, err := e.Step()
		if err != nil {
			return e.Outcome(), gameMetric, moveMetrics, err
		}
		moveMetrics = append(moveMetrics, moveMetric)
	}

	outcome := e.Outcome()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.history)
	gameMetric.Winner = int(outcome.Winner)
	log.Debug().Msgf("game finished after %d moves: %s", gameMetric.TotalMoves, outcome)
	return outcome, gameMetric, moveMetrics, nil
}

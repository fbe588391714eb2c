package searcher

import (
	"math"

	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/rs/zerolog"
)

type Option func(m *Minimax)

// Minimax is a fixed-depth alpha-beta search over a borrowed board engine.
// It keeps no state between calls other than the reference to the engine.
type Minimax struct {
	state    State
	depth    int
	player   game.Player
	evaluate game.Evaluate
	pruning  bool
	metrics  metrics.Collector
	logger   zerolog.Logger
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithPlayer sets the side the search maximizes for
func WithPlayer(player game.Player) Option {
	return func(m *Minimax) {
		if player.Valid() {
			m.player = player
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithoutPruning turns the search into plain exhaustive minimax
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Minimax) {
		m.logger = logger
	}
}

func NewMinimax(state State, options ...Option) *Minimax {
	m := &Minimax{ // Default values
		state:    state,
		depth:    DefaultDepth,
		player:   game.PlayerB,
		evaluate: game.EvaluateWindows,
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
		logger:   zerolog.Nop(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ChooseMove returns the best column for the searching player, or NoColumn
// when the board is full
func (m *Minimax) ChooseMove() int {
	move, _ := m.FindMove()
	return move.Column
}

// FindMove searches to the configured depth and reports the work done
func (m *Minimax) FindMove() (Move, metrics.SearchMetric) {
	m.metrics.Start(m.depth, m.pruning)
	move := m.Search(m.depth)
	metric := m.metrics.Complete()
	metric.Column = move.Column
	metric.Score = move.Score

	m.logger.Debug().
		Stringer("player", m.player).
		Int("column", move.Column).
		Int("score", move.Score).
		Msg("best move found")
	return move, metric
}

// Search runs minimax from the current position with the searching player to
// move, stopping depth plies ahead
func (m *Minimax) Search(depth int) Move {
	return m.search(0, depth, math.MinInt, math.MaxInt, true)
}

func (m *Minimax) search(ply, depth, alpha, beta int, maximizing bool) Move {
	m.metrics.AddNode()
	if ply >= depth || m.state.IsGameOver() {
		return m.leaf()
	}

	mover := m.player
	if !maximizing {
		mover = m.player.Opponent()
	}

	// Columns are tried in ascending order and only a strictly better score
	// replaces the best, so ties go to the lowest column
	best := Move{Column: NoColumn}
	for col := 0; col < game.Columns; col++ {
		if !m.state.IsValidMove(col) || !m.state.MakeMove(col, mover) {
			continue
		}
		score := m.search(ply+1, depth, alpha, beta, !maximizing).Score
		m.state.UndoMove(col)

		if maximizing {
			if best.Column == NoColumn || score > best.Score {
				best = Move{Column: col, Score: score}
			}
			alpha = max(alpha, score)
		} else {
			if best.Column == NoColumn || score < best.Score {
				best = Move{Column: col, Score: score}
			}
			beta = min(beta, score)
		}

		if m.pruning && beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}

	if best.Column == NoColumn { // No legal column
		return m.leaf()
	}

	m.logger.Trace().
		Int("ply", ply).
		Bool("maximizing", maximizing).
		Int("column", best.Column).
		Int("score", best.Score).
		Msg("node searched")
	return best
}

func (m *Minimax) leaf() Move {
	m.metrics.AddLeaf()
	board := m.state.Board()
	return Move{Column: NoColumn, Score: m.evaluate(&board, m.player)}
}

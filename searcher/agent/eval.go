package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type evaluationAgent struct {
	options []searcher.Option
}

// NewEvaluationAgent returns a minimax agent. The options are applied to a
// fresh search for every move, after the searching player is set.
func NewEvaluationAgent(options ...searcher.Option) Agent {
	return evaluationAgent{options: options}
}

func (a evaluationAgent) FindMove(g *game.Game, player game.Player) (int, metrics.SearchMetric) {
	options := append([]searcher.Option{searcher.WithPlayer(player)}, a.options...)
	move, metric := searcher.NewMinimax(g, options...).FindMove()
	return move.Column, metric
}

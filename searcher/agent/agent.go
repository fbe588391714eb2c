package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

type Agent interface {
	// FindMove returns the column to play for player and performance metrics (if collected) from the search
	FindMove(g *game.Game, player game.Player) (int, metrics.SearchMetric)
}

package agent

import (
	"time"

	"connect4/experiments/metrics"
	"connect4/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing a uniformly random legal column.
// Agents built with the same seed play the same sequence of moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(g *game.Game, player game.Player) (int, metrics.SearchMetric) {
	start := time.Now()
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.NoColumn, metrics.SearchMetric{Column: game.NoColumn, Duration: time.Since(start)}
	}
	col := moves[a.rng.Intn(len(moves))]
	return col, metrics.SearchMetric{Column: col, Duration: time.Since(start)}
}

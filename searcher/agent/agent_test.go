package agent

import (
	"testing"

	"connect4/game"
	"connect4/searcher"

	"github.com/stretchr/testify/require"
)

func gameFrom(t *testing.T, rows ...string) *game.Game {
	t.Helper()
	b, err := game.ParseBoard(rows...)
	require.NoError(t, err)
	g, err := game.FromBoard(b)
	require.NoError(t, err)
	return g
}

var fullBoard = []string{
	"XXOOXXO",
	"XXOOXXO",
	"XXOOXXO",
	"OOXXOOX",
	"XXOOXXO",
	"XXOOXXO",
}

func TestEvaluationAgent(t *testing.T) {
	t.Run("blocks for the side it is asked to play", func(t *testing.T) {
		g := gameFrom(t,
			".......",
			".......",
			".......",
			"...X...",
			"...X...",
			"...X...",
		)
		a := NewEvaluationAgent()

		col, _ := a.FindMove(g, game.PlayerB)
		require.Equal(t, 3, col)

		g = gameFrom(t,
			".......",
			".......",
			".......",
			"...O...",
			"...O...",
			"...O...",
		)
		col, _ = a.FindMove(g, game.PlayerA)
		require.Equal(t, 3, col)
	})

	t.Run("reports search metrics when enabled", func(t *testing.T) {
		g := game.NewGame()
		a := NewEvaluationAgent(searcher.WithMetrics(), searcher.WithDepth(2), searcher.WithoutPruning())

		col, metric := a.FindMove(g, game.PlayerA)

		require.Equal(t, col, metric.Column)
		require.Equal(t, 2, metric.Depth)
		require.Equal(t, 1+7+49, metric.Nodes, "Nodes should include the root")
		require.Equal(t, 49, metric.Leaves)
		require.Zero(t, g.MoveCount(), "Agent should leave the game untouched")
	})

	t.Run("full board", func(t *testing.T) {
		g := gameFrom(t, fullBoard...)

		col, _ := NewEvaluationAgent().FindMove(g, game.PlayerB)

		require.Equal(t, game.NoColumn, col)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal columns", func(t *testing.T) {
		g := game.NewGame()
		a := NewRandomAgent(7)
		player := game.PlayerA
		for !g.IsGameOver() {
			col, metric := a.FindMove(g, player)
			require.True(t, g.IsValidMove(col), "Column %d should be playable", col)
			require.Equal(t, col, metric.Column)
			require.True(t, g.MakeMove(col, player))
			player = player.Opponent()
		}
	})

	t.Run("same seed gives the same game", func(t *testing.T) {
		play := func(seed uint64) []int {
			g := game.NewGame()
			a := NewRandomAgent(seed)
			var cols []int
			player := game.PlayerA
			for !g.IsGameOver() {
				col, _ := a.FindMove(g, player)
				g.MakeMove(col, player)
				cols = append(cols, col)
				player = player.Opponent()
			}
			return cols
		}

		require.Equal(t, play(42), play(42))
	})

	t.Run("full board", func(t *testing.T) {
		g := gameFrom(t, fullBoard...)

		col, metric := NewRandomAgent(1).FindMove(g, game.PlayerA)

		require.Equal(t, game.NoColumn, col)
		require.Equal(t, game.NoColumn, metric.Column)
	})
}

package searcher

import (
	"testing"

	"connect4/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// countingState wraps a game and tracks the balance of applied and undone moves
type countingState struct {
	*game.Game
	made   int
	undone int
	depth  int
	peak   int
}

func (s *countingState) MakeMove(col int, player game.Player) bool {
	ok := s.Game.MakeMove(col, player)
	if ok {
		s.made++
		s.depth++
		s.peak = max(s.peak, s.depth)
	}
	return ok
}

func (s *countingState) UndoMove(col int) {
	s.Game.UndoMove(col)
	s.undone++
	s.depth--
}

func gameFrom(t *testing.T, rows ...string) *game.Game {
	t.Helper()
	b, err := game.ParseBoard(rows...)
	require.NoError(t, err)
	g, err := game.FromBoard(b)
	require.NoError(t, err)
	return g
}

// randomPosition plays random legal moves, alternating sides, and stops early
// if the game ends
func randomPosition(rng *rand.Rand, plies int) *game.Game {
	g := game.NewGame()
	player := game.PlayerA
	for i := 0; i < plies && !g.IsGameOver(); i++ {
		moves := g.LegalMoves()
		g.MakeMove(moves[rng.Intn(len(moves))], player)
		player = player.Opponent()
	}
	return g
}

func TestChooseMove(t *testing.T) {
	t.Run("empty board yields a legal column", func(t *testing.T) {
		g := game.NewGame()
		col := NewMinimax(g).ChooseMove()

		require.GreaterOrEqual(t, col, 0)
		require.Less(t, col, game.Columns)
		require.True(t, g.IsValidMove(col), "Chosen column should be playable")
		require.Equal(t, 3, col, "Centre column scores best on an empty board")
	})

	t.Run("identical positions give identical moves", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 20; i++ {
			g := randomPosition(rng, 1+rng.Intn(20))
			if g.IsGameOver() {
				continue
			}
			clone, err := game.FromBoard(g.Board())
			require.NoError(t, err)

			first := NewMinimax(g).ChooseMove()
			second := NewMinimax(g).ChooseMove()
			third := NewMinimax(clone).ChooseMove()

			require.Equal(t, first, second)
			require.Equal(t, first, third)
		}
	})

	t.Run("board is left exactly as found", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for i := 0; i < 20; i++ {
			g := randomPosition(rng, rng.Intn(30))
			state := &countingState{Game: g}
			before := g.Board()
			count := g.MoveCount()

			NewMinimax(state).ChooseMove()

			require.Equal(t, before, g.Board())
			require.Equal(t, count, g.MoveCount())
			require.Equal(t, state.made, state.undone, "Every applied move should be undone")
			require.LessOrEqual(t, state.peak, DefaultDepth, "Search should not look past its horizon")
		}
	})

	t.Run("blocks an immediate vertical loss", func(t *testing.T) {
		for depth := 1; depth <= DefaultDepth; depth++ {
			g := gameFrom(t,
				".......",
				".......",
				".......",
				"...X...",
				"...X...",
				"...X...",
			)

			col := NewMinimax(g, WithDepth(depth)).ChooseMove()

			require.Equal(t, 3, col, "Depth %d search should block column 3", depth)
		}
	})

	t.Run("searches for either side", func(t *testing.T) {
		g := gameFrom(t,
			".......",
			".......",
			".......",
			"...O...",
			"...O...",
			"...O...",
		)

		col := NewMinimax(g, WithPlayer(game.PlayerA)).ChooseMove()

		require.Equal(t, 3, col, "Player A should block column 3")
	})

	t.Run("skips full columns", func(t *testing.T) {
		g := gameFrom(t,
			"...X...",
			"...O...",
			"...X...",
			"...O...",
			"...X...",
			"...O...",
		)

		col := NewMinimax(g).ChooseMove()

		require.NotEqual(t, 3, col)
		require.True(t, g.IsValidMove(col))
	})
}

func TestChooseMoveTerminal(t *testing.T) {
	t.Run("full board has no column", func(t *testing.T) {
		g := gameFrom(t,
			"XXOOXXO",
			"XXOOXXO",
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
			"XXOOXXO",
		)
		board := g.Board()

		move, metric := NewMinimax(g, WithMetrics()).FindMove()

		require.Equal(t, NoColumn, move.Column)
		require.Equal(t, game.EvaluateWindows(&board, game.PlayerB), move.Score, "Terminal position is scored by the evaluator")
		require.Equal(t, 1, metric.Nodes)
		require.Equal(t, 1, metric.Leaves)
	})

	t.Run("won board has no column", func(t *testing.T) {
		g := gameFrom(t,
			".......",
			".......",
			".......",
			".......",
			"OOO....",
			"XXXX...",
		)

		require.Equal(t, NoColumn, NewMinimax(g).ChooseMove())
	})
}

func TestSearchOptions(t *testing.T) {
	t.Run("ties go to the lowest column", func(t *testing.T) {
		g := game.NewGame()
		flat := func(*game.Board, game.Player) int { return 0 }

		move := NewMinimax(g, WithEvaluationFn(flat)).Search(DefaultDepth)

		require.Equal(t, Move{Column: 0, Score: 0}, move)
	})

	t.Run("evaluator is called with the searching player", func(t *testing.T) {
		g := game.NewGame()
		var seen []game.Player
		spy := func(b *game.Board, p game.Player) int {
			seen = append(seen, p)
			return 0
		}

		NewMinimax(g, WithPlayer(game.PlayerA), WithEvaluationFn(spy), WithDepth(1)).ChooseMove()

		require.Len(t, seen, game.Columns)
		for _, p := range seen {
			require.Equal(t, game.PlayerA, p)
		}
	})

	t.Run("invalid options keep the defaults", func(t *testing.T) {
		m := NewMinimax(game.NewGame(), WithDepth(0), WithPlayer(game.Empty), WithEvaluationFn(nil))

		require.Equal(t, DefaultDepth, m.depth)
		require.Equal(t, game.PlayerB, m.player)
		require.NotNil(t, m.evaluate)
		require.True(t, m.pruning)
	})

	t.Run("search depth is an explicit parameter", func(t *testing.T) {
		g := game.NewGame()
		state := &countingState{Game: g}

		NewMinimax(state).Search(2)

		require.Equal(t, 2, state.peak)
	})
}

func TestAlphaBetaEquivalence(t *testing.T) {
	t.Run("pruning never changes the chosen move", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2024))
		checked := 0
		for attempts := 0; checked < 100; attempts++ {
			require.Less(t, attempts, 1000, "Too few playable positions generated")
			g := randomPosition(rng, rng.Intn(32))
			if g.IsGameOver() {
				continue
			}
			checked++

			pruned := NewMinimax(g).Search(DefaultDepth)
			exhaustive := NewMinimax(g, WithoutPruning()).Search(DefaultDepth)

			require.Equal(t, exhaustive, pruned, "Board:\n%s", g.Board())
		}
	})

	t.Run("pruning reduces the work done", func(t *testing.T) {
		g := game.NewGame()

		_, pruned := NewMinimax(g, WithMetrics()).FindMove()
		_, exhaustive := NewMinimax(g, WithMetrics(), WithoutPruning()).FindMove()

		require.Equal(t, 1+7+49+343+2401, exhaustive.Nodes, "Exhaustive search visits every position to depth 4")
		require.Equal(t, 2401, exhaustive.Leaves)
		require.Zero(t, exhaustive.Cutoffs)
		require.False(t, exhaustive.Pruning)

		require.True(t, pruned.Pruning)
		require.Less(t, pruned.Nodes, exhaustive.Nodes)
		require.Positive(t, pruned.Cutoffs)
		require.Equal(t, exhaustive.Column, pruned.Column)
		require.Equal(t, exhaustive.Score, pruned.Score)
		require.Equal(t, DefaultDepth, pruned.Depth)
	})
}

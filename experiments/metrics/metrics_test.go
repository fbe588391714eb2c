package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("counts one search", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, true)
		for i := 0; i < 5; i++ {
			c.AddNode()
		}
		c.AddLeaf()
		c.AddLeaf()
		c.AddCutoff()

		metric := c.Complete()
		require.Equal(t, 4, metric.Depth)
		require.True(t, metric.Pruning)
		require.Equal(t, 5, metric.Nodes)
		require.Equal(t, 2, metric.Leaves)
		require.Equal(t, 1, metric.Cutoffs)
		require.GreaterOrEqual(t, metric.Duration, time.Duration(0))
	})

	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, true)
		c.AddNode()
		c.Complete()

		c.Start(2, false)
		metric := c.Complete()
		require.Zero(t, metric.Nodes)
		require.Equal(t, 2, metric.Depth)
		require.False(t, metric.Pruning)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4, true)
		c.AddNode()
		c.AddLeaf()
		c.AddCutoff()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "strength")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "strength"), filepath.Dir(w.Dir()))

	err = w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Kind: MinimaxAgent, Depth: 4, Pruning: true},
		{ID: 2, Kind: RandomAgent, Seed: 9},
	})
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err = w.WriteGameRecords([]GameRecord{{
		ID:      1,
		PlayerA: 1,
		PlayerB: 2,
		GameMetric: GameMetric{
			StartingPlayer: 1,
			Winner:         2,
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     12,
		},
	}})
	require.NoError(t, err)

	err = w.WriteMoveRecords([]MoveRecord{{
		Game: 1,
		MoveMetric: MoveMetric{
			Step:   1,
			Player: 1,
			SearchMetric: SearchMetric{
				Depth: 4, Pruning: true, Nodes: 874, Leaves: 600, Cutoffs: 90,
				Column: 3, Score: -14, Duration: time.Millisecond,
			},
		},
	}})
	require.NoError(t, err)

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "kind", "depth", "pruning", "seed"},
		{"1", "minimax", "4", "true", "0"},
		{"2", "random", "0", "false", "9"},
	}, configs)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"1", "1", "2", "1", "2", "12", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, []string{"1", "1", "1", "3", "-14", "4", "true", "874", "600", "90", "1ms"}, moves[1])
}

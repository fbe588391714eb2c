package experiments

import (
	"connect4/experiments/metrics"
)

// MaxThroughputDepth is the deepest search measured by RunThroughput
const MaxThroughputDepth = 6

// RunThroughput measures how the cost of a search grows with its depth. Each
// depth plays itself with pruning on, so the move records hold the node
// counts and durations of every search.
func RunThroughput(games int, out string) error {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 1; depth <= MaxThroughputDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Kind: metrics.MinimaxAgent, Depth: depth, Pruning: true}
		configs = append(configs, config)
		// Same config for both players for similar game length
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment("throughput", games, out, configs, matchUps)
}

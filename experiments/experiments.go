package experiments

import (
	"fmt"

	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"
	"connect4/searcher/agent"

	"github.com/rs/zerolog/log"
)

var randomConfig = metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: meta.RANDOM_SEED}

// RunStrength plays minimax at every depth up to the default against a random
// agent, alternating which side moves first
func RunStrength(games int, out string) error {
	configs := []metrics.AgentConfig{randomConfig}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 1; depth <= searcher.DefaultDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Kind: metrics.MinimaxAgent, Depth: depth, Pruning: true}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{config, randomConfig})
	}

	return runExperiment("strength", games, out, configs, matchUps)
}

// RunPruning plays alpha-beta against exhaustive minimax at the default depth.
// Both pick the same moves, so the records compare the work done per move.
func RunPruning(games int, out string) error {
	pruned := metrics.AgentConfig{ID: 1, Kind: metrics.MinimaxAgent, Depth: searcher.DefaultDepth, Pruning: true}
	exhaustive := metrics.AgentConfig{ID: 2, Kind: metrics.MinimaxAgent, Depth: searcher.DefaultDepth}
	configs := []metrics.AgentConfig{pruned, exhaustive}
	matchUps := [][]metrics.AgentConfig{{pruned, exhaustive}}

	return runExperiment("pruning", games, out, configs, matchUps)
}

func runExperiment(name string, games int, out string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		wins := map[int]int{}
		for i := 0; i < games; i++ {
			// Alternate the first move between the two agents
			configA, configB := matchup[0], matchup[1]
			if i%2 == 1 {
				configA, configB = configB, configA
			}
			seed := uint64(meta.RANDOM_SEED + count)

			outcome, gameMetric, moveMetrics, err := runGame(configA, configB, seed)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				PlayerA:    configA.ID,
				PlayerB:    configB.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch outcome.Winner {
			case game.PlayerA:
				wins[configA.ID]++
			case game.PlayerB:
				wins[configB.ID]++
			}
			log.Debug().Msgf("matchup %d of %d game %d: %s", mi+1, len(matchUps), i+1, outcome)
		}
		log.Info().Msgf("completed matchup %d of %d: agent %d won %d, agent %d won %d, %d drawn",
			mi+1, len(matchUps),
			matchup[0].ID, wins[matchup[0].ID],
			matchup[1].ID, wins[matchup[1].ID],
			games-wins[matchup[0].ID]-wins[matchup[1].ID])
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(out, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return nil
}

// runGame plays a seeded random opening and then lets the two agents finish the game
func runGame(configA, configB metrics.AgentConfig, seed uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.LocalEngine([]agent.Agent{
		createAgent(configA, seed),
		createAgent(configB, seed+1),
	})

	opening := agent.NewRandomAgent(seed)
	for i := 0; i < meta.OPENING_MOVES; i++ {
		if _, err := e.StepWith(opening); err != nil {
			return game.Outcome{}, metrics.GameMetric{}, nil, err
		}
	}

	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Kind == metrics.RandomAgent {
		return agent.NewRandomAgent(config.Seed + seed)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return agent.NewEvaluationAgent(options...)
}

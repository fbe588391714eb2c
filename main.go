// connect4 plays Connect Four in the terminal against a depth-4 minimax
// opponent, and runs the search experiments.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"
	"connect4/searcher/agent"
	"connect4/ui"
)

// Command-line flags
var (
	flagMode       = flag.String("mode", "play", "play or experiment")
	flagExperiment = flag.String("experiment", "strength", "Experiment to run (strength, pruning or throughput)")
	flagGames      = flag.Int("games", meta.GAMES_PER_MATCHUP, "Games per experiment matchup")
	flagOut        = flag.String("out", meta.OUTPUT_DIR, "Directory for experiment results")
	flagLogLevel   = flag.String("log-level", "", "Log level, overrides the config file and LOG_LEVEL")
	flagConfig     = flag.String("config", "", "Config file, defaults to connect4/config.json in the XDG config dirs")
)

func main() {
	flag.Parse()

	envErr := config.LoadEnv()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level := cfg.Level()
	if *flagLogLevel != "" {
		level, err = zerolog.ParseLevel(*flagLogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid log level %q\n", *flagLogLevel)
			os.Exit(2)
		}
	}
	zerolog.SetGlobalLevel(level)
	if envErr != nil {
		log.Warn().Err(envErr).Msg("failed to load .env file")
	}

	switch *flagMode {
	case "play":
		err = play(cfg)
	case "experiment":
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		err = runExperiment(*flagExperiment, *flagGames, *flagOut)
	default:
		err = fmt.Errorf("unknown mode %q", *flagMode)
	}
	if err != nil {
		log.Error().Err(err).Msg("connect4 failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if *flagConfig != "" {
		return config.Load(*flagConfig)
	}
	return config.InitConfig()
}

func runExperiment(name string, games int, out string) error {
	switch name {
	case "strength":
		return experiments.RunStrength(games, out)
	case "pruning":
		return experiments.RunPruning(games, out)
	case "throughput":
		return experiments.RunThroughput(games, out)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
}

// play runs the terminal UI. Logs go to a file so they do not corrupt the screen.
func play(cfg *config.Config) error {
	path, err := cfg.LogFilePath()
	if err != nil {
		return fmt.Errorf("failed to locate log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()
	log.Logger = zerolog.New(f).With().Timestamp().Logger()

	var opponent agent.Agent
	switch cfg.Game.Opponent {
	case config.OpponentRandom:
		opponent = agent.NewRandomAgent(cfg.Game.Seed)
	default:
		opponent = agent.NewEvaluationAgent(searcher.WithLogger(log.Logger), searcher.WithMetrics())
	}
	e := engine.LocalEngine(
		[]agent.Agent{nil, opponent},
		engine.WithObserver(game.NewLogObserver(log.Logger)),
	)

	log.Info().Msgf("starting game against the %s opponent", cfg.Game.Opponent)
	return ui.NewApp(cfg, e).Run()
}

package main

import (
	"flag"
	"os"
	"time"

	"checkers/config"
	"checkers/engine"
	"checkers/experiments"
	"checkers/searcher"
	"checkers/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Flags override the environment
	mode := flag.String("mode", "play", "What to run: play, difficulty or throughput")
	flag.IntVar(&cfg.Size, "size", cfg.Size, "Number of playable rows and columns")
	flag.IntVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "Search depth of side A")
	flag.IntVar(&cfg.OpponentDifficulty, "opponent-difficulty", cfg.OpponentDifficulty, "Search depth of side B")
	flag.IntVar(&cfg.StaleThreshold, "stale-threshold", cfg.StaleThreshold, "Turns without capture or promotion before a draw")
	flag.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Turn cap per game")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Games per matchup")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Tie-break seed, 0 for a time-based one")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory for experiment results")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	switch *mode {
	case "play":
		play(cfg)
	case "difficulty":
		result, err := experiments.RunDifficultyExperiment(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("difficulty experiment failed")
		}
		log.Info().Msgf("results stored in %s", result.Dir)
	case "throughput":
		result, err := experiments.RunThroughputExperiment(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
		log.Info().Msgf("results stored in %s", result.Dir)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// play runs a single game between two minimax agents and prints the final board.
func play(cfg config.Config) {
	options := func(offset uint64) []searcher.Option {
		if cfg.Seed == 0 {
			return nil
		}
		return []searcher.Option{searcher.WithSeed(cfg.Seed + offset)}
	}
	agents := []agent.Agent{
		agent.NewDepthAgent(searcher.NewMinimax(options(0)...), cfg.Difficulty),
		agent.NewDepthAgent(searcher.NewMinimax(options(1)...), cfg.OpponentDifficulty),
	}

	e, err := engine.LocalEngine(agents, cfg.Size, cfg.Difficulty, cfg.StaleThreshold, cfg.MaxTurns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up the game")
	}

	winner, gameMetric, _ := e.Run()
	log.Info().Msgf("winner %d after %d moves in %s\n%s", winner, gameMetric.TotalMoves, gameMetric.Duration, e.Board.Render(cfg.StaleThreshold))
}

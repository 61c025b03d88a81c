package experiments

import (
	"fmt"

	"checkers/config"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/searcher"
	"checkers/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	MinimaxKind = "minimax"
	RandomKind  = "random"
)

type Result struct {
	Dir         string
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// RunDifficultyExperiment pits a minimax agent at the configured difficulty
// against a weaker minimax agent and a random baseline, alternating sides.
func RunDifficultyExperiment(cfg config.Config) (Result, error) {
	strong := metrics.AgentConfig{ID: 1, Kind: MinimaxKind, Difficulty: cfg.Difficulty, Seed: cfg.Seed}
	weak := metrics.AgentConfig{ID: 2, Kind: MinimaxKind, Difficulty: cfg.OpponentDifficulty, Seed: cfg.Seed}
	baseline := metrics.AgentConfig{ID: 3, Kind: RandomKind, Seed: cfg.Seed}

	// Each pairing is played from both sides
	matchUps := [][]metrics.AgentConfig{
		{strong, weak},
		{weak, strong},
		{strong, baseline},
		{baseline, strong},
	}

	return runExperiment(cfg, "difficulty", []metrics.AgentConfig{strong, weak, baseline}, matchUps)
}

func runExperiment(cfg config.Config, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, cfg.Games)

			winner, gameMetric, moveMetrics, err := runGame(cfg, config1, config2, count)
			if err != nil {
				return Result{}, fmt.Errorf("failed to run game %d of matchup %d: %w", i+1, mi+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := store(cfg.OutputDir, name, configs, gameRecords, moveRecords)
	if err != nil {
		return Result{}, err
	}
	return Result{Dir: dir, GameRecords: gameRecords, MoveRecords: moveRecords}, nil
}

func store(root, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	// Store experiment metadata
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	if gameRecords != nil {
		err = writer.WriteGameRecords(gameRecords)
		if err != nil {
			return "", fmt.Errorf("failed to write game records: %w", err)
		}
		log.Info().Msg("stored game records")
	}

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(cfg config.Config, config1, config2 metrics.AgentConfig, game int) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := []agent.Agent{
		createAgent(config1, game),
		createAgent(config2, game),
	}
	// Both agents search at their own depth, so the board difficulty is only a default
	e, err := engine.LocalEngine(agents, cfg.Size, cfg.Difficulty, cfg.StaleThreshold, cfg.MaxTurns)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

// createAgent builds the agent for a config. A non-zero seed is offset per
// game and agent so that runs are reproducible without repeating games.
func createAgent(config metrics.AgentConfig, game int) agent.Agent {
	seed := config.Seed
	if seed != 0 {
		seed += uint64(game)*100 + uint64(config.ID)
	}

	if config.Kind == RandomKind {
		return agent.NewRandomAgent(seed)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if seed != 0 {
		options = append(options, searcher.WithSeed(seed))
	}
	return agent.NewDepthAgent(searcher.NewMinimax(options...), config.Difficulty)
}

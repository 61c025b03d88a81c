package experiments

import (
	"checkers/config"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment times the minimax search on the opening position
// at every depth up to the configured difficulty.
func RunThroughputExperiment(cfg config.Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	board, err := game.NewBoard(game.NoSide, cfg.Size, cfg.Difficulty)
	if err != nil {
		return Result{}, err
	}
	board.SetBoard()

	runID := uuid.NewString()
	configs := []metrics.AgentConfig{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting throughput experiment...")

	for depth := game.MinDifficulty; depth <= cfg.Difficulty; depth++ {
		options := []searcher.Option{searcher.WithMetrics()}
		if cfg.Seed != 0 {
			options = append(options, searcher.WithSeed(cfg.Seed))
		}
		minimax := searcher.NewMinimax(options...)

		move, _ := minimax.Search(board, depth)
		metric := minimax.Metrics()
		configs = append(configs, metrics.AgentConfig{ID: depth, Kind: MinimaxKind, Difficulty: depth, Seed: cfg.Seed})
		moveRecords = append(moveRecords, metrics.MoveRecord{
			Game: runID,
			MoveMetric: metrics.MoveMetric{
				Step:         depth,
				Player:       board.Turn,
				Move:         move.String(),
				SearchMetric: metric,
			},
		})

		log.Info().Msgf("depth %d: %d nodes in %s", depth, metric.Nodes, metric.Duration)
	}

	log.Info().Msg("completed throughput experiment")

	dir, err := store(cfg.OutputDir, "throughput", configs, nil, moveRecords)
	if err != nil {
		return Result{}, err
	}
	return Result{Dir: dir, MoveRecords: moveRecords}, nil
}

package engine

import (
	"fmt"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher/agent"
	"checkers/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Seating order of the agents
var sides = []int{game.SideA, game.SideB}

type Engine struct {
	ID             string
	Board          *game.Board
	Agents         []agent.Agent
	StaleThreshold int
	MaxTurns       int
}

// LocalEngine sets up an AI-vs-AI game on the opening position. The first
// agent plays side A, the second side B.
func LocalEngine(agents []agent.Agent, size, difficulty, staleThreshold, maxTurns int) (*Engine, error) {
	if len(agents) != len(sides) {
		return nil, fmt.Errorf("%w: need exactly %d agents, got %d", game.ErrInvalidConfig, len(sides), len(agents))
	}
	if staleThreshold <= 0 || maxTurns <= 0 {
		return nil, fmt.Errorf("%w: stale threshold %d and max turns %d must be positive", game.ErrInvalidConfig, staleThreshold, maxTurns)
	}

	board, err := game.NewBoard(game.NoSide, size, difficulty)
	if err != nil {
		return nil, err
	}
	board.SetBoard()

	return &Engine{
		ID:             uuid.NewString(),
		Board:          board,
		Agents:         agents,
		StaleThreshold: staleThreshold,
		MaxTurns:       maxTurns,
	}, nil
}

// Run executes the entire game loop until the game is over or the turn cap is hit.
func (e *Engine) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		StartingPlayer: e.Board.Turn,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: side %d is starting", e.ID, e.Board.Turn)

	for !e.Board.IsOver(e.StaleThreshold) && e.Board.TurnCount <= e.MaxTurns {
		side := e.Board.Turn
		current := e.Agents[utils.FindIndex(sides, side)]

		move, searchMetric := current.FindMove(e.Board.Clone())
		fallback := false
		if err := e.Board.MoveTile(move, true); err != nil {
			log.Warn().Err(err).Msgf("game %s: agent for side %d played an illegal move, forcing the first legal one", e.ID, side)
			move = e.Board.LegalMoves()[0]
			fallback = true
			if err := e.Board.MoveTile(move, false); err != nil {
				log.Error().Err(err).Msgf("game %s: fallback move %s failed", e.ID, move)
				break
			}
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.Board.TurnCount,
			Player:       side,
			Move:         move.String(),
			Fallback:     fallback,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("game %s turn %d: side %d played %s", e.ID, e.Board.TurnCount, side, move)

		e.Board.ChangeTurn()
	}

	winner := game.NoSide
	if e.Board.IsOver(e.StaleThreshold) {
		winner = e.Board.Winner()
	} else {
		log.Info().Msgf("game %s: stopped after %d turns without a result", e.ID, e.MaxTurns)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Captured = [2]int{e.Board.CemeteryCount(game.SideB), e.Board.CemeteryCount(game.SideA)}

	log.Info().Msgf("game %s: over after %d moves with winner %d", e.ID, len(moveMetrics), winner)
	return winner, gameMetric, moveMetrics
}

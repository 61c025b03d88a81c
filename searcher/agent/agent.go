package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

type Agent interface {
	// FindMove returns the move to play and search metrics (if collected) for the side to move
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric)
}

package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
	depth   int // 0 searches at the board's difficulty
}

// NewMinimaxAgent returns an agent playing the minimax move at the board's difficulty.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

// NewDepthAgent returns an agent searching at a fixed depth, whatever the
// board's difficulty.
func NewDepthAgent(minimax *searcher.Minimax, depth int) Agent {
	return minimaxAgent{minimax: minimax, depth: depth}
}

func (a minimaxAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	depth := a.depth
	if depth <= 0 {
		depth = board.Difficulty
	}
	move, _ := a.minimax.Search(board, depth)
	return move, a.minimax.Metrics()
}

package searcher

import (
	"checkers/game"
)

type Searcher interface {
	Search(board *game.Board, depth int) (game.Move, int)
}

var defaultMinimax = NewMinimax()

// Search runs a full-width minimax with the default weights and the
// process-level random source for tie-breaking.
func Search(board *game.Board, depth int) (game.Move, int) {
	return defaultMinimax.Search(board, depth)
}

// Score appraises a single move on the board it is about to be played on,
// from side A's point of view.
func Score(move game.Move, board *game.Board) int {
	return score(move, board, MOVE_WEIGHT, CAPTURE_WEIGHT)
}

func score(move game.Move, board *game.Board, moveWeight, captureWeight int) int {
	if move.IsNoMove() {
		return 0
	}

	total := 0
	mover := board.Occupant(move.Origin())
	for i := 1; i < len(move); i++ {
		from, to := move[i-1], move[i]

		// Kings gain nothing from moving around
		if !game.IsKing(mover) {
			total += moveWeight
			if board.IsPromotionRow(to.X, game.SideOf(mover)) {
				total += moveWeight
			}
		}

		if abs(to.X-from.X) < 2 {
			continue
		}
		jumped := game.Square(from.X+sign(to.X-from.X), from.Y+sign(to.Y-from.Y))
		if !board.InsideBounds(jumped, false) {
			continue
		}
		total += captureWeight
		if game.IsKing(board.Occupant(jumped)) {
			total += captureWeight
		}
	}
	return board.Turn * total
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

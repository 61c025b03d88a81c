package agent

import (
	"time"

	"checkers/experiments/metrics"
	"checkers/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal
// move. A zero seed is replaced by the current time.
func NewRandomAgent(seed uint64) Agent {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}
	}
	move := moves[a.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{Nodes: 1, Ties: len(moves), Duration: time.Since(start)}
}

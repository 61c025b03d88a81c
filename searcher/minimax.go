package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *Minimax)

type Minimax struct {
	moveWeight    int
	captureWeight int
	rng           *rand.Rand // nil draws from the process-level source
	metrics       metrics.Collector
	last          metrics.SearchMetric
}

func WithWeights(move, capture int) Option {
	return func(m *Minimax) {
		if move >= 0 && capture >= 0 {
			m.moveWeight = move
			m.captureWeight = capture
		}
	}
}

// WithRand injects the generator used to break ties. Not safe to share
// between searchers running concurrently.
func WithRand(rng *rand.Rand) Option {
	return func(m *Minimax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		moveWeight:    MOVE_WEIGHT,
		captureWeight: CAPTURE_WEIGHT,
		metrics:       metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// BestMove searches the board at its configured difficulty.
func (m *Minimax) BestMove(board *game.Board) (game.Move, int) {
	return m.Search(board, board.Difficulty)
}

// Search returns the best move for the side to move along with its score,
// maximising for side A and minimising for side B. The board is only read;
// every candidate is played on a clone. Among moves sharing the best score
// one is drawn uniformly once all of them are known.
func (m *Minimax) Search(board *game.Board, depth int) (game.Move, int) {
	m.metrics.Start(depth)
	move, score, ties := m.search(board, depth)
	m.metrics.AddTies(ties)
	m.last = m.metrics.Complete(score)

	log.Debug().Msgf("minimax at depth %d picked %s with score %d among %d tied moves", depth, move, score, ties)
	return move, score
}

// Metrics returns the metrics of the last search, empty unless WithMetrics was given.
func (m *Minimax) Metrics() metrics.SearchMetric {
	return m.last
}

func (m *Minimax) search(board *game.Board, depth int) (game.Move, int, int) {
	m.metrics.AddNode()
	if depth <= 0 {
		return game.NoMove, 0, 0
	}

	var best []game.Move
	bestScore := 0
	for _, move := range board.LegalMoves() {
		value := score(move, board, m.moveWeight, m.captureWeight)

		clone := board.Clone()
		if err := clone.MoveTile(move, false); err != nil {
			log.Warn().Err(err).Msgf("generated move %s could not be played", move)
			continue
		}
		clone.ChangeTurn()
		_, reply, _ := m.search(clone, depth-1)
		value += reply

		switch {
		case best == nil || better(board.Turn, value, bestScore):
			bestScore = value
			best = []game.Move{move}
		case value == bestScore:
			best = append(best, move)
		}
	}

	if len(best) == 0 {
		return game.NoMove, 0, 0
	}
	return best[m.intn(len(best))], bestScore, len(best)
}

func better(turn, score, best int) bool {
	if turn == game.SideB {
		return score < best
	}
	return score > best
}

func (m *Minimax) intn(n int) int {
	if n == 1 {
		return 0
	}
	if m.rng == nil {
		return rand.Intn(n)
	}
	return m.rng.Intn(n)
}

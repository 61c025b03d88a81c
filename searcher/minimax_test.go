package searcher

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, turn int) *game.Board {
	t.Helper()
	b, err := game.NewBoard(turn, 8, 3)
	require.NoError(t, err)
	return b
}

func openingBoard(t *testing.T) *game.Board {
	t.Helper()
	b := newBoard(t, game.NoSide)
	b.SetBoard()
	return b
}

func containsMove(moves []game.Move, move game.Move) bool {
	for _, m := range moves {
		if m.Equal(move) {
			return true
		}
	}
	return false
}

func TestSearch(t *testing.T) {
	t.Run("depth zero returns the sentinel", func(t *testing.T) {
		move, score := NewMinimax().Search(openingBoard(t), 0)

		require.True(t, move.IsNoMove())
		require.Equal(t, 0, score)
	})

	t.Run("side without moves returns the sentinel", func(t *testing.T) {
		b := newBoard(t, game.SideA)
		b.Place(2, 3, game.ManB)

		move, score := NewMinimax().Search(b, 3)

		require.True(t, move.IsNoMove())
		require.Equal(t, 0, score)
	})

	t.Run("taking the only capture", func(t *testing.T) {
		b := newBoard(t, game.SideA)
		b.Place(5, 2, game.ManA)
		b.Place(4, 3, game.ManB)
		want := game.NewMove(game.Square(5, 2), game.Square(3, 4))

		for depth := 1; depth <= 2; depth++ {
			move, score := NewMinimax().Search(b, depth)

			require.True(t, move.Equal(want), "Depth %d should capture, got %s", depth, move)
			require.Equal(t, 30, score, "Depth %d should score one step and one capture", depth)
		}
	})

	t.Run("side B minimising", func(t *testing.T) {
		b := newBoard(t, game.SideB)
		b.Place(2, 3, game.ManB)
		b.Place(3, 4, game.ManA)

		move, score := NewMinimax().Search(b, 1)

		require.True(t, move.Equal(game.NewMove(game.Square(2, 3), game.Square(4, 5))))
		require.Equal(t, -30, score)
	})

	t.Run("same single best move on every run", func(t *testing.T) {
		b := newBoard(t, game.SideA)
		b.Place(5, 2, game.ManA)
		b.Place(4, 3, game.ManB)
		b.Place(2, 5, game.ManB)

		first, _ := Search(b, 2)
		second, _ := Search(b, 2)

		require.True(t, first.Equal(second))
		require.Len(t, first, 3, "Full chain should outscore its prefix")
	})

	t.Run("tied moves at the opening", func(t *testing.T) {
		b := openingBoard(t)
		legal := b.LegalMoves()
		m := NewMinimax(WithMetrics())

		for i := 0; i < 10; i++ {
			move, score := m.Search(b, 1)

			require.True(t, containsMove(legal, move), "Tie-break should pick a legal move, got %s", move)
			require.Equal(t, 10, score)
		}
		require.Equal(t, 7, m.Metrics().Ties, "Every opening step should tie")
		require.Equal(t, 8, m.Metrics().Nodes, "Root plus one node per move")
		require.Equal(t, 1, m.Metrics().Depth)
	})

	t.Run("seeded searchers agree", func(t *testing.T) {
		b := openingBoard(t)

		first, _ := NewMinimax(WithSeed(7)).Search(b, 2)
		second, _ := NewMinimax(WithSeed(7)).Search(b, 2)

		require.True(t, first.Equal(second), "Same seed should break ties the same way")
	})

	t.Run("leaving the board untouched", func(t *testing.T) {
		b := openingBoard(t)
		hash := b.Hash()

		NewMinimax().Search(b, 3)

		require.Equal(t, hash, b.Hash())
		require.Equal(t, 1, b.TurnCount)
	})

	t.Run("searching at the board difficulty", func(t *testing.T) {
		b := openingBoard(t)
		m := NewMinimax(WithMetrics())

		m.BestMove(b)

		require.Equal(t, b.Difficulty, m.Metrics().Depth)
	})
}

func TestSearchMatchesStalemate(t *testing.T) {
	blocked := newBoard(t, game.SideA)
	blocked.Place(7, 1, game.ManA)
	blocked.Place(6, 2, game.ManB)
	blocked.Place(5, 3, game.ManB)

	for _, b := range []*game.Board{blocked, openingBoard(t)} {
		move, _ := NewMinimax().Search(b, 1)

		require.Equal(t, move.IsNoMove(), b.IsStalemate(game.DefaultStaleThreshold),
			"Depth one search should find nothing exactly when the side is stuck")
	}
}

func TestScore(t *testing.T) {
	t.Run("simple step", func(t *testing.T) {
		b := openingBoard(t)

		require.Equal(t, 10, Score(game.NewMove(game.Square(6, 2), game.Square(5, 1)), b))
	})

	t.Run("step onto the promotion rank", func(t *testing.T) {
		b := newBoard(t, game.SideA)
		b.Place(1, 2, game.ManA)

		require.Equal(t, 20, Score(game.NewMove(game.Square(1, 2), game.Square(0, 1)), b))
	})

	t.Run("king step", func(t *testing.T) {
		b := newBoard(t, game.SideA)
		b.Place(4, 3, game.KingA)

		require.Equal(t, 0, Score(game.NewMove(game.Square(4, 3), game.Square(5, 4)), b))
	})

	t.Run("capturing a king", func(t *testing.T) {
		b := newBoard(t, game.SideA)
		b.Place(5, 2, game.ManA)
		b.Place(4, 3, game.KingB)

		require.Equal(t, 50, Score(game.NewMove(game.Square(5, 2), game.Square(3, 4)), b))
	})

	t.Run("double capture", func(t *testing.T) {
		b := newBoard(t, game.SideA)
		b.Place(5, 2, game.ManA)
		b.Place(4, 3, game.ManB)
		b.Place(2, 5, game.ManB)

		require.Equal(t, 60, Score(game.NewMove(game.Square(5, 2), game.Square(3, 4), game.Square(1, 6)), b))
	})

	t.Run("side B scores negative", func(t *testing.T) {
		b := openingBoard(t)
		b.ChangeTurn()

		require.Equal(t, -10, Score(game.NewMove(game.Square(1, 3), game.Square(2, 2)), b))
	})

	t.Run("custom weights", func(t *testing.T) {
		b := newBoard(t, game.SideA)
		b.Place(5, 2, game.ManA)
		b.Place(4, 3, game.ManB)
		m := NewMinimax(WithWeights(1, 100))

		_, score := m.Search(b, 1)

		require.Equal(t, 101, score)
	})

	t.Run("sentinel", func(t *testing.T) {
		require.Equal(t, 0, Score(game.NoMove, openingBoard(t)))
	})
}

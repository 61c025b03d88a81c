package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveTile(t *testing.T) {
	t.Run("simple step", func(t *testing.T) {
		b := newOpeningBoard(t, 8)
		b.StaleTurns = 3

		err := b.MoveTile(NewMove(Square(6, 2), Square(5, 1)), true)

		require.NoError(t, err)
		require.Equal(t, Empty, b.Occupant(Square(6, 2)))
		require.Equal(t, ManA, b.Occupant(Square(5, 1)))
		require.Equal(t, 3, b.StaleTurns, "A quiet move should not reset the clock")
	})

	t.Run("capture chain buries both pieces", func(t *testing.T) {
		b := newEmptyBoard(t, SideA)
		b.Place(5, 2, ManA)
		b.Place(4, 3, ManB)
		b.Place(2, 5, ManB)
		b.StaleTurns = 5

		err := b.MoveTile(NewMove(Square(5, 2), Square(3, 4), Square(1, 6)), true)

		require.NoError(t, err)
		require.Equal(t, ManA, b.Occupant(Square(1, 6)))
		require.Equal(t, Empty, b.Occupant(Square(5, 2)))
		require.Equal(t, Empty, b.Occupant(Square(4, 3)), "Jumped piece should leave the board")
		require.Equal(t, Empty, b.Occupant(Square(2, 5)), "Jumped piece should leave the board")
		require.Equal(t, ManB, b.Occupant(Square(0, 9)), "Side A fills its cemetery top-down")
		require.Equal(t, ManB, b.Occupant(Square(1, 9)))
		require.Equal(t, 2, b.CemeteryCount(SideB))
		require.Equal(t, 0, b.StaleTurns, "A capture should reset the clock")
	})

	t.Run("side B buries bottom-up on the left", func(t *testing.T) {
		b := newEmptyBoard(t, SideB)
		b.Place(2, 3, ManB)
		b.Place(3, 4, ManA)

		err := b.MoveTile(NewMove(Square(2, 3), Square(4, 5)), true)

		require.NoError(t, err)
		require.Equal(t, ManA, b.Occupant(Square(7, 0)))
		require.Equal(t, ManB, b.Occupant(Square(4, 5)))
	})

	t.Run("captured king is buried as a man", func(t *testing.T) {
		b := newEmptyBoard(t, SideA)
		b.Place(5, 2, ManA)
		b.Place(4, 3, KingB)

		err := b.MoveTile(NewMove(Square(5, 2), Square(3, 4)), true)

		require.NoError(t, err)
		require.Equal(t, ManB, b.Occupant(Square(0, 9)), "Cemetery should only hold men")
		require.Equal(t, 0, b.CountOccupant(KingB, true))
	})

	t.Run("rejected move leaves the board untouched", func(t *testing.T) {
		b := newOpeningBoard(t, 8)
		hash := b.Hash()

		err := b.MoveTile(NewMove(Square(6, 2), Square(4, 4)), true)

		require.ErrorIs(t, err, ErrMoveRejected)
		require.Equal(t, hash, b.Hash())
	})

	t.Run("jump off the grid", func(t *testing.T) {
		b := newEmptyBoard(t, SideA)
		b.Place(6, 1, ManA)
		hash := b.Hash()

		err := b.MoveTile(NewMove(Square(6, 1), Square(4, -1)), false)

		require.ErrorIs(t, err, ErrIllegalJumpTarget)
		require.Equal(t, hash, b.Hash())
	})

	t.Run("illegal step after a completed jump keeps the jump", func(t *testing.T) {
		b := newEmptyBoard(t, SideA)
		b.Place(5, 2, ManA)
		b.Place(4, 3, ManB)

		err := b.MoveTile(NewMove(Square(5, 2), Square(3, 4), Square(3, 12)), false)

		require.ErrorIs(t, err, ErrIllegalJumpTarget)
		require.Equal(t, ManA, b.Occupant(Square(3, 4)), "Completed steps should stay applied")
		require.Equal(t, ManB, b.Occupant(Square(0, 9)))
	})

	t.Run("full cemetery spills over", func(t *testing.T) {
		b := newEmptyBoard(t, SideA)
		for i := 0; i < b.Height; i++ {
			b.Place(i, b.Width-1, ManB)
		}
		b.Place(5, 2, ManA)
		b.Place(4, 3, ManB)
		before := totalPieces(b)

		err := b.MoveTile(NewMove(Square(5, 2), Square(3, 4)), true)

		require.NoError(t, err)
		require.Equal(t, Empty, b.Occupant(Square(4, 3)))
		require.Equal(t, 1, b.Spilled[spillIndex(SideB)])
		require.Equal(t, 9, b.CemeteryCount(SideB))
		require.Equal(t, before, totalPieces(b), "Spilled pieces should still be counted")
	})
}

func TestPromotion(t *testing.T) {
	t.Run("side A man reaching row zero", func(t *testing.T) {
		b := newEmptyBoard(t, SideA)
		b.Place(1, 2, ManA)
		b.StaleTurns = 7

		require.NoError(t, b.MoveTile(NewMove(Square(1, 2), Square(0, 1)), true))

		require.Equal(t, KingA, b.Occupant(Square(0, 1)))
		require.Equal(t, 0, b.StaleTurns, "Promotion should reset the clock")
	})

	t.Run("side B man reaching the last row", func(t *testing.T) {
		b := newEmptyBoard(t, SideB)
		b.Place(6, 3, ManB)

		require.NoError(t, b.MoveTile(NewMove(Square(6, 3), Square(7, 4)), true))

		require.Equal(t, KingB, b.Occupant(Square(7, 4)))
	})

	t.Run("king landing on the back rank again", func(t *testing.T) {
		b := newEmptyBoard(t, SideA)
		b.Place(1, 2, KingA)
		b.StaleTurns = 7

		require.NoError(t, b.MoveTile(NewMove(Square(1, 2), Square(0, 1)), true))

		require.Equal(t, KingA, b.Occupant(Square(0, 1)), "Kings should not be promoted twice")
		require.Equal(t, 7, b.StaleTurns)
	})

	t.Run("man capturing backward onto its own back rank", func(t *testing.T) {
		b := newEmptyBoard(t, SideA)
		b.Place(5, 2, ManA)
		b.Place(6, 3, ManB)

		require.NoError(t, b.MoveTile(NewMove(Square(5, 2), Square(7, 4)), true))

		require.Equal(t, ManA, b.Occupant(Square(7, 4)), "Only the opponent's back rank promotes")
	})
}

func TestConservation(t *testing.T) {
	for _, size := range []int{6, 8} {
		b := newOpeningBoard(t, size)
		total := totalPieces(b)

		for turn := 0; turn < 200 && !b.IsOver(DefaultStaleThreshold); turn++ {
			moves := b.LegalMoves()
			move := moves[(turn*7)%len(moves)]

			require.NoError(t, b.MoveTile(move, true), "size %d turn %d", size, turn)
			require.Equal(t, total, totalPieces(b), "size %d turn %d: pieces should be conserved", size, turn)
			for i := 0; i < b.Height; i++ {
				for _, j := range []int{0, b.Width - 1} {
					require.LessOrEqual(t, abs(b.Occupant(Square(i, j))), 1, "Cemetery should only hold men")
				}
			}
			b.ChangeTurn()
		}
	}
}

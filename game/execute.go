package game

import "fmt"

// MoveTile applies a move to the board. Jumped pieces are buried in the
// mover's cemetery column and a man reaching the far rank is promoted.
//
// With validate unset the caller vouches for the move; an illegal jump then
// returns ErrIllegalJumpTarget with the earlier steps already applied.
func (b *Board) MoveTile(move Move, validate bool) error {
	if validate && !b.ValidateMovement(move) {
		return fmt.Errorf("%w: %s does not match any legal path", ErrMoveRejected, move)
	}
	if len(move) < 2 {
		return fmt.Errorf("%w: %s has no steps", ErrMoveRejected, move)
	}
	return b.moveTile(move, false)
}

func (b *Board) moveTile(move Move, relocation bool) error {
	for i := 1; i < len(move); i++ {
		from, to := move[i-1], move[i]
		if !b.InsideBounds(from, true) || !b.InsideBounds(to, true) {
			return fmt.Errorf("%w: step %d of %s leaves the board", ErrIllegalJumpTarget, i, move)
		}
		b.swap(from, to)

		dx, dy := to.X-from.X, to.Y-from.Y
		if relocation || abs(dx) <= 1 || abs(dy) <= 1 {
			continue
		}
		jumped := from.offset(sign(dx), sign(dy))
		if !b.InsideBounds(jumped, false) {
			return fmt.Errorf("%w: jumped square (%d,%d) is not playable", ErrIllegalJumpTarget, jumped.X, jumped.Y)
		}
		if err := b.bury(jumped, sign(b.Occupant(to))); err != nil {
			return err
		}
		b.StaleTurns = 0
	}

	if relocation {
		return nil
	}

	last := move.Destination()
	occupant := b.Occupant(last)
	if occupant != Empty && !IsKing(occupant) && last.X == b.promotionRow(sign(occupant)) {
		b.grid[last.X][last.Y].Occupant *= 2
		b.StaleTurns = 0
	}
	return nil
}

func (b *Board) swap(p, q Position) {
	b.grid[p.X][p.Y].Occupant, b.grid[q.X][q.Y].Occupant = b.grid[q.X][q.Y].Occupant, b.grid[p.X][p.Y].Occupant
}

// promotionRow returns the opponent's back rank for the side.
func (b *Board) promotionRow(side int) int {
	if side == SideA {
		return 0
	}
	return b.Height - 1
}

// IsPromotionRow reports whether a man of the side reaching row x is promoted.
func (b *Board) IsPromotionRow(x, side int) bool {
	return x == b.promotionRow(side)
}

// bury moves the piece on a jumped square into the first free slot of the
// capturer's cemetery column. Kings are stored as men of the same side.
func (b *Board) bury(jumped Position, capturer int) error {
	victim := b.Occupant(jumped)
	if victim == Empty {
		return nil
	}

	slot, ok := b.cemeterySlot(capturer)
	if !ok {
		b.grid[jumped.X][jumped.Y].Occupant = Empty
		b.Spilled[spillIndex(sign(victim))]++
		return nil
	}
	if err := b.moveTile(Move{jumped, slot}, true); err != nil {
		return err
	}
	b.grid[slot.X][slot.Y].Occupant = sign(victim)
	return nil
}

// cemeterySlot finds the first empty cemetery cell for the capturing side:
// side A fills the right column top-down, side B the left column bottom-up.
func (b *Board) cemeterySlot(capturer int) (Position, bool) {
	if capturer == SideA {
		j := b.Width - 1
		for i := 0; i < b.Height; i++ {
			if b.grid[i][j].Occupant == Empty {
				return Square(i, j), true
			}
		}
		return Position{}, false
	}

	for i := b.Height - 1; i >= 0; i-- {
		if b.grid[i][0].Occupant == Empty {
			return Square(i, 0), true
		}
	}
	return Position{}, false
}

package game

import "fmt"

// ChangeValues compares two boards cell by cell: 1 where a piece appeared,
// -1 where one left, 0 elsewhere. Only magnitudes are compared, so a
// promotion reads as a piece appearing.
func (b *Board) ChangeValues(other *Board) [][]int {
	values := make([][]int, b.Height)
	for i := 0; i < b.Height; i++ {
		values[i] = make([]int, b.Width)
		for j := 0; j < b.Width; j++ {
			values[i][j] = sign(abs(other.grid[i][j].Occupant) - abs(b.grid[i][j].Occupant))
		}
	}
	return values
}

func sameChanges(a, c [][]int) bool {
	if len(a) != len(c) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(c[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != c[i][j] {
				return false
			}
		}
	}
	return true
}

// FindMovement reconstructs which legal move turned the board into the
// observed one, by replaying every candidate on a clone and comparing the
// change signatures.
func (b *Board) FindMovement(observed *Board) (Move, error) {
	if observed == nil || observed.Height != b.Height || observed.Width != b.Width {
		return nil, fmt.Errorf("%w: observed board does not match a %dx%d board", ErrNotFound, b.Height, b.Height)
	}

	changes := b.ChangeValues(observed)
	for _, move := range b.LegalMoves() {
		origin := move.Origin()
		if changes[origin.X][origin.Y] != -1 {
			continue
		}
		clone := b.Clone()
		if err := clone.MoveTile(move, false); err != nil {
			continue
		}
		if sameChanges(b.ChangeValues(clone), changes) {
			return move, nil
		}
	}
	return nil, fmt.Errorf("%w: no legal move explains the observed board", ErrNotFound)
}

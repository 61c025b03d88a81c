package game

// Occupant codes. The sign identifies the side, the magnitude the rank.
const (
	Empty = 0
	ManA  = 1
	KingA = 2
	ManB  = -1
	KingB = -2
)

// Sides. Side A starts on the bottom rows and moves first after SetBoard.
const (
	SideA   = 1
	SideB   = -1
	NoSide  = 0
	MinSize = 2
)

const (
	MinDifficulty = 1
	MaxDifficulty = 5

	// DefaultStaleThreshold is the tournament limit of turns without a capture or promotion.
	DefaultStaleThreshold = 40
)

type StateHash uint64

// Position is one cell of the board: X is the row, Y the column.
type Position struct {
	X        int
	Y        int
	Occupant int
}

// Square returns an unoccupied position at the given row and column.
func Square(x, y int) Position {
	return Position{X: x, Y: y}
}

// SameSquare compares coordinates only.
func (p Position) SameSquare(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Position) offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// IsKing reports whether the occupant code is a promoted piece.
func IsKing(occupant int) bool {
	return abs(occupant) == 2
}

// SideOf returns the side owning the occupant code, NoSide for an empty cell.
func SideOf(occupant int) int {
	return sign(occupant)
}

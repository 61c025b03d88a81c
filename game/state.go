package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Board holds the playable area plus the two cemetery columns, and the turn
// bookkeeping of the game being played on it.
type Board struct {
	Height     int    // Rows, equal to the board size N
	Width      int    // Columns, N playable plus two cemetery columns
	Turn       int    // Side to move, 0 when no game is active
	TurnCount  int    // Number of the current turn, starting at 1
	StaleTurns int    // Consecutive turns without capture or promotion
	Difficulty int    // Default search depth
	Spilled    [2]int // Captured pieces per side that found their cemetery column full
	grid       [][]Position
}

// NewBoard creates an empty size×size board with its cemetery columns.
func NewBoard(turn, size, difficulty int) (*Board, error) {
	if size < MinSize || size%2 != 0 {
		return nil, fmt.Errorf("%w: size %d must be even and positive", ErrInvalidConfig, size)
	}
	if turn < SideB || turn > SideA {
		return nil, fmt.Errorf("%w: turn %d must be -1, 0 or 1", ErrInvalidConfig, turn)
	}
	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return nil, fmt.Errorf("%w: difficulty %d must be between %d and %d", ErrInvalidConfig, difficulty, MinDifficulty, MaxDifficulty)
	}

	b := &Board{
		Height:     size,
		Width:      size + 2,
		Turn:       turn,
		TurnCount:  1,
		Difficulty: difficulty,
		grid:       make([][]Position, size),
	}
	for i := range b.grid {
		b.grid[i] = make([]Position, b.Width)
		for j := range b.grid[i] {
			b.grid[i][j] = Position{X: i, Y: j}
		}
	}
	return b, nil
}

// CreateBoard is an alias of NewBoard for callers driving the physical board.
func CreateBoard(turn, size, difficulty int) (*Board, error) {
	return NewBoard(turn, size, difficulty)
}

// SetBoard resets the board to the opening position with side A to move.
func (b *Board) SetBoard() {
	b.TurnCount = 1
	b.Turn = SideA
	b.StaleTurns = 0
	b.Spilled = [2]int{}

	for i := 0; i < b.Height; i++ {
		for j := 0; j < b.Width; j++ {
			b.grid[i][j].Occupant = Empty
		}
		// Checkerboard pattern over the playable columns only
		for j := 0; j < b.Height; j++ {
			if j%2 != (i+1)%2 {
				continue
			}
			switch {
			case i < 2:
				b.grid[i][j+1].Occupant = ManB
			case i > b.Height-3:
				b.grid[i][j+1].Occupant = ManA
			}
		}
	}
}

// Clone returns a deep copy of the board. Mutating the clone never affects b.
func (b *Board) Clone() *Board {
	gridCopy := make([][]Position, len(b.grid))
	for i, row := range b.grid {
		rowCopy := make([]Position, len(row))
		copy(rowCopy, row)
		gridCopy[i] = rowCopy
	}

	return &Board{
		Height:     b.Height,
		Width:      b.Width,
		Turn:       b.Turn,
		TurnCount:  b.TurnCount,
		StaleTurns: b.StaleTurns,
		Difficulty: b.Difficulty,
		Spilled:    b.Spilled,
		grid:       gridCopy,
	}
}

// InsideBounds checks a position against the playable area, or against the
// whole grid when includeCemetery is set.
func (b *Board) InsideBounds(pos Position, includeCemetery bool) bool {
	minY, maxY := 1, b.Width-2
	if includeCemetery {
		minY, maxY = 0, b.Width-1
	}
	return pos.X >= 0 && pos.X <= b.Height-1 && pos.Y >= minY && pos.Y <= maxY
}

// At returns the cell at the given coordinates, occupant included.
func (b *Board) At(pos Position) Position {
	return b.grid[pos.X][pos.Y]
}

// Occupant returns the occupant code at the given coordinates.
func (b *Board) Occupant(pos Position) int {
	return b.grid[pos.X][pos.Y].Occupant
}

// Place puts an occupant on a cell of the grid, cemetery included.
func (b *Board) Place(x, y, occupant int) {
	b.grid[x][y].Occupant = occupant
}

// CountOccupant counts cells holding the code on the playable area, or on the
// whole grid plus spilled captures when includeCemetery is set.
func (b *Board) CountOccupant(code int, includeCemetery bool) int {
	count := 0
	for i := 0; i < b.Height; i++ {
		for j := 0; j < b.Width; j++ {
			if !b.InsideBounds(Square(i, j), includeCemetery) {
				continue
			}
			if b.grid[i][j].Occupant == code {
				count++
			}
		}
	}
	if includeCemetery && abs(code) == 1 {
		count += b.Spilled[spillIndex(code)]
	}
	return count
}

// CemeteryCount returns how many pieces of the side have been captured.
func (b *Board) CemeteryCount(side int) int {
	count := b.Spilled[spillIndex(side)]
	for i := 0; i < b.Height; i++ {
		for _, j := range []int{0, b.Width - 1} {
			if sign(b.grid[i][j].Occupant) == side {
				count++
			}
		}
	}
	return count
}

func spillIndex(side int) int {
	if side > 0 {
		return 1
	}
	return 0
}

// ChangeTurn hands the move to the other side and advances the counters.
func (b *Board) ChangeTurn() {
	b.StaleTurns++
	b.TurnCount++
	if b.Turn == NoSide {
		b.Turn = SideA
	} else {
		b.Turn = -b.Turn
	}
}

// IsCheckmate reports whether the side to move has no pieces left in play.
func (b *Board) IsCheckmate() bool {
	return b.CountOccupant(b.Turn, false)+b.CountOccupant(2*b.Turn, false) == 0
}

// IsStalemate reports whether too many turns passed without a capture or
// promotion, or the side to move cannot move at all.
func (b *Board) IsStalemate(threshold int) bool {
	if b.StaleTurns > threshold {
		return true
	}
	return len(b.LegalMoves()) == 0
}

// IsOver reports whether the game on the board has ended.
func (b *Board) IsOver(threshold int) bool {
	return b.IsCheckmate() || b.IsStalemate(threshold)
}

// Winner returns the winning side once the game is over, NoSide otherwise or on a draw.
// A side that cannot move or has no pieces loses; running out the stale-turn
// clock is a draw.
func (b *Board) Winner() int {
	if b.Turn == NoSide {
		return NoSide
	}
	if b.IsCheckmate() || len(b.LegalMoves()) == 0 {
		return -b.Turn
	}
	return NoSide
}

// Hash returns an FNV-64a hash of the side to move and the grid contents.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.Turn))
	for _, row := range b.grid {
		for _, cell := range row {
			binary.Write(hasher, binary.LittleEndian, int8(cell.Occupant))
		}
	}
	binary.Write(hasher, binary.LittleEndian, int64(b.Spilled[0]))
	binary.Write(hasher, binary.LittleEndian, int64(b.Spilled[1]))

	return StateHash(hasher.Sum64())
}

func (b *Board) String() string {
	return b.Render(DefaultStaleThreshold)
}

// Render draws the board for logs: cemetery columns are separated from the
// playable area and rows are numbered from 1.
func (b *Board) Render(threshold int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Turn: %d | To stalemate: %d | ", b.TurnCount, threshold-b.StaleTurns)
	switch b.Turn {
	case SideA:
		sb.WriteString("A moves\n")
	case SideB:
		sb.WriteString("B moves\n")
	default:
		sb.WriteString("no game\n")
	}

	for i := 0; i < b.Height; i++ {
		for j := 0; j < b.Width; j++ {
			if j == 1 {
				fmt.Fprintf(&sb, "| %d ", i+1)
			}
			sb.WriteString(symbol(b.grid[i][j].Occupant))
			if j == b.Width-2 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func symbol(occupant int) string {
	switch occupant {
	case ManA:
		return "o "
	case KingA:
		return "O "
	case ManB:
		return "x "
	case KingB:
		return "X "
	default:
		return ". "
	}
}

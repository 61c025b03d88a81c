package game

import (
	"fmt"
	"strings"
)

// Diagonal directions in search order.
var directions = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// pathSet collects distinct paths in discovery order.
type pathSet struct {
	paths [][]Position
	seen  map[string]struct{}
}

func newPathSet() *pathSet {
	return &pathSet{seen: make(map[string]struct{})}
}

// add records a copy of the path unless it is empty or already recorded.
func (s *pathSet) add(path []Position) {
	if len(path) == 0 {
		return
	}
	key := pathKey(path)
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	pathCopy := make([]Position, len(path))
	copy(pathCopy, path)
	s.paths = append(s.paths, pathCopy)
}

func (s *pathSet) merge(other *pathSet) {
	for _, path := range other.paths {
		s.add(path)
	}
}

func contains(squares []Position, pos Position) bool {
	for _, sq := range squares {
		if sq.SameSquare(pos) {
			return true
		}
	}
	return false
}

// BuildMovementsTable returns, for every cell, the moves available to the
// piece of the side to move standing on it.
func (b *Board) BuildMovementsTable() [][][]Move {
	table := make([][][]Move, b.Height)
	for i := range table {
		table[i] = make([][]Move, b.Width)
	}

	for i := 0; i < b.Height; i++ {
		for j := 1; j <= b.Width-2; j++ {
			occupant := b.grid[i][j].Occupant
			if occupant == Empty || sign(occupant) != b.Turn {
				continue
			}
			origin := b.grid[i][j]
			for _, path := range b.ExtractMovements(origin) {
				move := make(Move, 0, len(path)+1)
				move = append(move, origin)
				move = append(move, path...)
				table[i][j] = append(table[i][j], move)
			}
		}
	}
	return table
}

// LegalMoves returns every move of the side to move in row-major order of origin.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	for _, row := range b.BuildMovementsTable() {
		for _, cell := range row {
			moves = append(moves, cell...)
		}
	}
	return moves
}

// ExtractMovements returns every path of landing squares the piece at origin
// can follow: single forward steps, and capture chains together with each of
// their prefixes. Paths exclude the origin.
func (b *Board) ExtractMovements(origin Position) [][]Position {
	if !b.InsideBounds(origin, false) || b.Occupant(origin) == Empty {
		return nil
	}
	return b.extract(origin, origin, nil, nil).paths
}

// extract searches the four diagonals from pos. Both path and visited are
// treated as values: every branch works on its own copy.
func (b *Board) extract(pos, origin Position, path, visited []Position) *pathSet {
	paths := newPathSet()
	piece := b.Occupant(origin)
	side := sign(piece)
	king := IsKing(piece)

	// Own copy so squares marked here reach later directions and their branches only
	visited = append([]Position(nil), visited...)

	for _, d := range directions {
		next := pos.offset(d[0], d[1])
		if !b.InsideBounds(next, false) || contains(visited, next) {
			paths.add(path)
			continue
		}

		occupant := b.Occupant(next)
		if occupant != Empty && sign(occupant) == side {
			paths.add(path)
			visited = append(visited, next)
			continue
		}

		if occupant == Empty {
			// Men step forward only, and a step never follows a jump
			forward := d[0] == -side
			if len(path) == 0 && (king || forward) {
				paths.add([]Position{Square(next.X, next.Y)})
			} else {
				paths.add(path)
			}
			continue
		}

		landing := next.offset(d[0], d[1])
		if !b.InsideBounds(landing, false) || b.Occupant(landing) != Empty {
			paths.add(path)
			visited = append(visited, next)
			continue
		}

		chain := make([]Position, len(path), len(path)+1)
		copy(chain, path)
		chain = append(chain, landing)
		paths.add(chain)
		paths.merge(b.extract(landing, origin, chain, append(visited, next)))
		visited = append(visited, next)
	}
	return paths
}

// ValidateMovement accepts a move only if it starts on a piece of the side to
// move and matches one generated path exactly.
func (b *Board) ValidateMovement(move Move) bool {
	if len(move) < 2 {
		return false
	}
	origin := move.Origin()
	if !b.InsideBounds(origin, false) {
		return false
	}
	occupant := b.Occupant(origin)
	if occupant == Empty || sign(occupant) != b.Turn {
		return false
	}

	for _, path := range b.ExtractMovements(origin) {
		candidate := append(Move{origin}, path...)
		if candidate.Equal(move) {
			return true
		}
	}
	return false
}

// PossibleMovements lists the moves of the piece at origin, numbered from 1,
// for presentation layers that let a player pick one.
func (b *Board) PossibleMovements(origin Position) (string, []Move) {
	if !b.InsideBounds(origin, false) {
		return fmt.Sprintf("Position [%d, %d] is outside the board\n", origin.X+1, origin.Y), nil
	}
	moves := b.BuildMovementsTable()[origin.X][origin.Y]

	var sb strings.Builder
	fmt.Fprintf(&sb, "Movements available for tile at position [%d, %d]:\n", origin.X+1, origin.Y)
	for i, move := range moves {
		fmt.Fprintf(&sb, "%d: From [%d, %d]", i+1, origin.X+1, origin.Y)
		for _, step := range move[1:] {
			fmt.Fprintf(&sb, " to [%d, %d]", step.X+1, step.Y)
		}
		sb.WriteString("\n")
	}
	return sb.String(), moves
}

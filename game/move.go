package game

import (
	"fmt"
	"strings"
)

// Move is an ordered path: the origin followed by every landing square.
// A length-two move is either a simple step or a single jump; longer moves
// are capture chains.
type Move []Position

// NoMove is returned by the search when the side to move has nothing to play.
var NoMove = Move{{X: -1, Y: -1}}

func NewMove(steps ...Position) Move {
	return Move(steps)
}

func (m Move) IsNoMove() bool {
	return len(m) < 2
}

func (m Move) Origin() Position {
	return m[0]
}

func (m Move) Destination() Position {
	return m[len(m)-1]
}

// Equal compares the step coordinates of two moves.
func (m Move) Equal(other Move) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if !m[i].SameSquare(other[i]) {
			return false
		}
	}
	return true
}

// Captures returns the squares jumped over by the move, in order.
func (m Move) Captures() []Position {
	var jumped []Position
	for i := 1; i < len(m); i++ {
		dx, dy := m[i].X-m[i-1].X, m[i].Y-m[i-1].Y
		if abs(dx) > 1 && abs(dy) > 1 {
			jumped = append(jumped, m[i-1].offset(sign(dx), sign(dy)))
		}
	}
	return jumped
}

func (m Move) IsCapture() bool {
	return len(m.Captures()) > 0
}

func (m Move) String() string {
	if m.IsNoMove() {
		return "Move(none)"
	}
	steps := make([]string, len(m))
	for i, step := range m {
		steps[i] = fmt.Sprintf("(%d,%d)", step.X, step.Y)
	}
	return "Move(" + strings.Join(steps, " -> ") + ")"
}

func pathKey(path []Position) string {
	var sb strings.Builder
	for _, p := range path {
		fmt.Fprintf(&sb, "%d,%d;", p.X, p.Y)
	}
	return sb.String()
}

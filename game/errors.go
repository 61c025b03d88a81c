package game

import "errors"

var (
	// ErrInvalidConfig is returned when a board cannot be created with the given arguments.
	ErrInvalidConfig = errors.New("invalid board configuration")
	// ErrMoveRejected is returned when a submitted move matches no generated path.
	ErrMoveRejected = errors.New("move rejected")
	// ErrIllegalJumpTarget is returned when a jump leaves the board or the jumped square is not playable.
	ErrIllegalJumpTarget = errors.New("illegal jump target")
	// ErrNotFound is returned when no legal move explains an observed board.
	ErrNotFound = errors.New("movement not found")
)

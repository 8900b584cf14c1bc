package game

import "errors"

var (
	// ErrHomeSquaresFull rejects a placement when the mover has no empty
	// home square left to generate stones on.
	ErrHomeSquaresFull = errors.New("home squares full")

	// ErrIllegalJump rejects a jump whose origin, midpoint, and target do
	// not satisfy the ownership-and-emptiness rule, or which names a square
	// off the board.
	ErrIllegalJump = errors.New("illegal jump")
)

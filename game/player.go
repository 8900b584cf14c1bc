// Package game implements the Quorum rules engine: an 8x8 board where two
// players alternately generate stones on their home squares or jump stones
// across the grid, suffocating and converting enemy stones, until one side
// holds all four center squares.
package game

// Player identifies a side. Empty is a sentinel for unowned squares and for
// "no winner yet"; it never acts as a participant.
type Player int8

const (
	Black Player = -1
	Empty Player = 0
	White Player = +1
)

// Value projects the player onto the signed representation used by the
// legality arithmetic and the evaluation sums. Game logic otherwise compares
// Player identities directly.
func (p Player) Value() int {
	return int(p)
}

// Opponent returns the opposing side. It panics for Empty, which has no
// opponent.
func (p Player) Opponent() Player {
	if p == Empty {
		panic("game: empty has no opponent")
	}
	return -p
}

// HomeSquares returns the four squares the player generates stones on,
// in their corner of the board. It panics for Empty.
func (p Player) HomeSquares() [4]Square {
	switch p {
	case Black:
		return [4]Square{H8, H7, G8, G7}
	case White:
		return [4]Square{A1, A2, B1, B2}
	}
	panic("game: empty has no home squares")
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

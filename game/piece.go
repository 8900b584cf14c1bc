package game

// Piece is the content of one board square: a stone of either color, or
// nothing.
type Piece struct {
	Player Player
}

// IsEmpty reports whether the piece is the empty placeholder.
func (p Piece) IsEmpty() bool {
	return p.Player == Empty
}

// Opponent returns a piece of the opposing color. It panics for an empty
// piece.
func (p Piece) Opponent() Piece {
	return Piece{p.Player.Opponent()}
}

package game

// winSquares are the four center squares. The game ends when one player's
// stones sit on all four.
var winSquares = [4]Square{D4, D5, E4, E5}

// pieceWeights scores each square for the static evaluation, concentric
// rings growing toward the center. Laid out like the board array, rank 8
// down to rank 1.
var pieceWeights = [64]int{
	// a  b  c   d   e  f  g  h
	1, 1, 1, 1, 1, 1, 1, 1, // 8
	1, 1, 1, 2, 2, 1, 1, 1, // 7
	1, 1, 2, 5, 5, 2, 1, 1, // 6
	1, 2, 5, 10, 10, 5, 2, 1, // 5
	1, 2, 5, 10, 10, 5, 2, 1, // 4
	1, 1, 2, 5, 5, 2, 1, 1, // 3
	1, 1, 1, 2, 2, 1, 1, 1, // 2
	1, 1, 1, 1, 1, 1, 1, 1, // 1
}

// WinProgress sums the stone values on the four center squares. It ranges
// over [-4, 4]; the extremes mean one side holds the whole center.
func (p Position) WinProgress() int {
	sum := 0
	for _, sq := range winSquares {
		sum += p.At(sq).Player.Value()
	}
	return sum
}

// Winner returns the player holding all four center squares, or Empty while
// the center is still contested.
func (p Position) Winner() Player {
	switch p.WinProgress() {
	case 4:
		return White
	case -4:
		return Black
	}
	return Empty
}

// Evaluate returns a heuristic score of the position: the weighted sum of
// all stone values, scaled down by 10. Positive favors White. It drives no
// game logic; it exists for observers.
func (p Position) Evaluate() float64 {
	sum := 0
	for i, piece := range p.Board {
		sum += piece.Player.Value() * pieceWeights[i]
	}
	return float64(sum) / 10
}

package game

import "fmt"

// Square addresses a board intersection by 1-based file (a=1..h=8) and rank
// (1..8). Squares outside that range are representable; they occur
// transiently during neighbor arithmetic and must be filtered through
// InBounds before indexing a board.
type Square struct {
	File, Rank int
}

// neighbors holds the 8 king-move unit offsets, expressed as Square deltas.
// The order is fixed: the suffocation scan applies removals as it goes, so
// reordering would change which stones an earlier removal rescues.
var neighbors = [8]Square{
	{-1, -1},
	{-1, 0},
	{-1, +1},
	{0, +1},
	{+1, +1},
	{+1, 0},
	{+1, -1},
	{0, -1},
}

// InBounds reports whether both coordinates lie on the 8x8 board.
func (s Square) InBounds() bool {
	return 1 <= s.File && s.File <= 8 && 1 <= s.Rank && s.Rank <= 8
}

// Add returns the component-wise sum. It never fails; the result may be out
// of bounds.
func (s Square) Add(d Square) Square {
	return Square{s.File + d.File, s.Rank + d.Rank}
}

// Div divides both components by n, flooring toward negative infinity. It is
// meant for halving the sum of two squares an even vector apart; for odd
// displacements the result is simply not a midpoint.
func (s Square) Div(n int) Square {
	return Square{floorDiv(s.File, n), floorDiv(s.Rank, n)}
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

// String renders the square in algebraic form ("a1".."h8"). Out-of-range
// components render as "<n>" so stray squares stay identifiable in messages.
func (s Square) String() string {
	file := fmt.Sprintf("<%d>", s.File)
	if 1 <= s.File && s.File <= 8 {
		file = string(rune('a' + s.File - 1))
	}
	rank := fmt.Sprintf("<%d>", s.Rank)
	if 1 <= s.Rank && s.Rank <= 8 {
		rank = string(rune('0' + s.Rank))
	}
	return file + rank
}

// Named squares, file by file.
var (
	A1 = Square{1, 1}
	A2 = Square{1, 2}
	A3 = Square{1, 3}
	A4 = Square{1, 4}
	A5 = Square{1, 5}
	A6 = Square{1, 6}
	A7 = Square{1, 7}
	A8 = Square{1, 8}

	B1 = Square{2, 1}
	B2 = Square{2, 2}
	B3 = Square{2, 3}
	B4 = Square{2, 4}
	B5 = Square{2, 5}
	B6 = Square{2, 6}
	B7 = Square{2, 7}
	B8 = Square{2, 8}

	C1 = Square{3, 1}
	C2 = Square{3, 2}
	C3 = Square{3, 3}
	C4 = Square{3, 4}
	C5 = Square{3, 5}
	C6 = Square{3, 6}
	C7 = Square{3, 7}
	C8 = Square{3, 8}

	D1 = Square{4, 1}
	D2 = Square{4, 2}
	D3 = Square{4, 3}
	D4 = Square{4, 4}
	D5 = Square{4, 5}
	D6 = Square{4, 6}
	D7 = Square{4, 7}
	D8 = Square{4, 8}

	E1 = Square{5, 1}
	E2 = Square{5, 2}
	E3 = Square{5, 3}
	E4 = Square{5, 4}
	E5 = Square{5, 5}
	E6 = Square{5, 6}
	E7 = Square{5, 7}
	E8 = Square{5, 8}

	F1 = Square{6, 1}
	F2 = Square{6, 2}
	F3 = Square{6, 3}
	F4 = Square{6, 4}
	F5 = Square{6, 5}
	F6 = Square{6, 6}
	F7 = Square{6, 7}
	F8 = Square{6, 8}

	G1 = Square{7, 1}
	G2 = Square{7, 2}
	G3 = Square{7, 3}
	G4 = Square{7, 4}
	G5 = Square{7, 5}
	G6 = Square{7, 6}
	G7 = Square{7, 7}
	G8 = Square{7, 8}

	H1 = Square{8, 1}
	H2 = Square{8, 2}
	H3 = Square{8, 3}
	H4 = Square{8, 4}
	H5 = Square{8, 5}
	H6 = Square{8, 6}
	H7 = Square{8, 7}
	H8 = Square{8, 8}
)

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquareInBounds(t *testing.T) {
	cases := []struct {
		square Square
		want   bool
	}{
		{A1, true},
		{H8, true},
		{Square{1, 8}, true},
		{Square{0, 1}, false},
		{Square{9, 1}, false},
		{Square{1, 0}, false},
		{Square{1, 9}, false},
		{Square{-1, -1}, false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.square.InBounds(), "InBounds(%v)", c.square)
	}
}

func TestSquareAdd(t *testing.T) {
	require.Equal(t, Square{3, 5}, Square{1, 2}.Add(Square{2, 3}))
	require.Equal(t, Square{0, 1}, A1.Add(Square{-1, 0}),
		"Add should produce out-of-bounds squares without complaint")
	require.Equal(t, Square{10, 9}, H8.Add(Square{2, 1}))
}

func TestSquareDivFloors(t *testing.T) {
	require.Equal(t, Square{2, 3}, Square{4, 6}.Div(2))
	require.Equal(t, Square{1, 2}, Square{3, 5}.Div(2),
		"odd components should floor down")
	require.Equal(t, Square{-1, -2}, Square{-1, -3}.Div(2),
		"negative odd components should floor toward negative infinity")
}

func TestSquareMidpoint(t *testing.T) {
	// The midpoint of a two-square displacement is the intervening square.
	require.Equal(t, C1, B1.Add(D1).Div(2))
	require.Equal(t, E5, D4.Add(F6).Div(2))
	require.Equal(t, G7, H8.Add(F6).Div(2))
}

func TestSquareString(t *testing.T) {
	require.Equal(t, "a1", A1.String())
	require.Equal(t, "h8", H8.String())
	require.Equal(t, "e4", E4.String())
	require.Equal(t, "<0>1", Square{0, 1}.String())
	require.Equal(t, "a<9>", Square{1, 9}.String())
	require.Equal(t, "<-1><0>", Square{-1, 0}.String())
}

func TestNeighborOffsets(t *testing.T) {
	seen := map[Square]bool{}
	for _, d := range neighbors {
		require.False(t, seen[d], "offset %v should appear once", d)
		seen[d] = true
		require.NotEqual(t, Square{}, d, "no offset should be the zero vector")
		require.LessOrEqual(t, abs(d.File), 1)
		require.LessOrEqual(t, abs(d.Rank), 1)
	}
	require.Len(t, seen, 8, "there should be eight distinct king-move offsets")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

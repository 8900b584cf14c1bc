package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DancingGrumpyCat/quorum/game"
	"github.com/DancingGrumpyCat/quorum/pgn"
)

const demoScript = "b1-d3 g8-e6 c1-e5 e8-e4 a1-e3 f7-d5 d1-f5 h8-f6 + " +
	"f8-f4 c2-g4 h7-h3 a2-c4 + b2-d6 h5-f3 a1-c5 h6-d4 b1-b5 g6-c6 " +
	"a3-e5 h7-d5 b3-d7 g7-e5"

func TestNewGame(t *testing.T) {
	g := New()
	require.Equal(t, game.Start(), g.Current())
	require.Equal(t, game.Empty, g.Winner())
	require.Empty(t, g.Moves())
	require.Equal(t, []game.Position{game.Start()}, g.History(),
		"history should begin with the starting position")
}

func TestPlayAdvancesTheSession(t *testing.T) {
	g := New()
	m := game.Jump(game.B1, game.D3)

	pos, err := g.Play(m)
	require.NoError(t, err)
	require.Equal(t, pos, g.Current())
	require.Equal(t, 1, pos.Ply)
	require.Equal(t, m, *pos.LastMove)
	require.Equal(t, []game.Move{m}, g.Moves())
	require.Len(t, g.History(), 2)
}

func TestPlayRejectionLeavesSessionUntouched(t *testing.T) {
	g := New()
	_, err := g.Play(game.Placement())
	require.ErrorIs(t, err, game.ErrHomeSquaresFull)
	require.Equal(t, game.Start(), g.Current())
	require.Empty(t, g.Moves())
	require.Len(t, g.History(), 1)
}

func TestPlayRefusesMovesAfterTheWin(t *testing.T) {
	g := New()
	moves, err := pgn.ParseMoves(demoScript)
	require.NoError(t, err)
	for _, m := range moves {
		_, err := g.Play(m)
		require.NoError(t, err)
	}
	require.Equal(t, game.Black, g.Winner())

	_, err = g.Play(game.Placement())
	require.ErrorIs(t, err, ErrGameOver)
	require.Len(t, g.Moves(), len(moves), "the rejected move should not be recorded")
}

func TestHistoryEntriesAreSnapshots(t *testing.T) {
	g := New()
	moves, err := pgn.ParseMoves("b1-d3 g8-e6 c1-e5")
	require.NoError(t, err)
	for _, m := range moves {
		_, err := g.Play(m)
		require.NoError(t, err)
	}

	history := g.History()
	require.Equal(t, game.Start(), history[0], "earlier plies must not observe later moves")
	require.Equal(t, game.White, history[1].At(game.D3).Player)
	require.Equal(t, game.Empty, history[1].At(game.E6).Player)
	require.Equal(t, game.Black, history[2].At(game.E6).Player)

	// Mutating a returned slice must not reach the session.
	history[0] = game.Position{}
	require.Equal(t, game.Start(), g.History()[0])
}

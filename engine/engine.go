// Package engine runs a Quorum game session: it threads moves through the
// rules engine, keeps the move list and per-ply position history, and stops
// accepting moves once a winner exists.
package engine

import (
	"errors"

	"github.com/DancingGrumpyCat/quorum/game"
	"github.com/rs/zerolog/log"
)

// ErrGameOver rejects moves played after a winner has been decided.
var ErrGameOver = errors.New("game is over - no moves allowed")

// Game is one playthrough from the starting position. Positions are values,
// so every entry in the history is an immutable snapshot of its ply.
type Game struct {
	current game.Position
	moves   []game.Move
	history []game.Position
}

// New starts a game at the opening position.
func New() *Game {
	start := game.Start()
	return &Game{
		current: start,
		history: []game.Position{start},
	}
}

// Play applies the next move. It fails with ErrGameOver once a winner
// exists, and passes through the rules engine's rejections otherwise; on any
// error the session is unchanged.
func (g *Game) Play(m game.Move) (game.Position, error) {
	if g.current.Winner() != game.Empty {
		return game.Position{}, ErrGameOver
	}

	mover := g.current.ToMove()
	next, err := g.current.Play(m)
	if err != nil {
		log.Warn().Stringer("player", mover).Stringer("move", m).Err(err).
			Msg("move rejected")
		return game.Position{}, err
	}

	g.current = next
	g.moves = append(g.moves, m)
	g.history = append(g.history, next)

	event := log.Info().Int("ply", next.Ply).Stringer("player", mover).Stringer("move", m)
	if winner := next.Winner(); winner != game.Empty {
		event = event.Stringer("winner", winner)
	}
	event.Msg("move played")
	return next, nil
}

// Current returns the latest position.
func (g *Game) Current() game.Position {
	return g.current
}

// Moves returns the moves played so far, in order.
func (g *Game) Moves() []game.Move {
	moves := make([]game.Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// History returns every position of the game so far, the starting position
// first. Entry i is the position after i moves.
func (g *Game) History() []game.Position {
	history := make([]game.Position, len(g.history))
	copy(history, g.history)
	return history
}

// Winner returns the winning player, or Empty while the game is running.
func (g *Game) Winner() game.Player {
	return g.current.Winner()
}

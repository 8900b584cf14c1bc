package game

import "fmt"

// Position is one state of a game: the 64-square board, the ply counter,
// and the move that produced it. It is a value type; Play returns a fresh
// Position and never touches its receiver, so every ply in a game's history
// stays a valid immutable snapshot.
//
// Board is ordered row-major from rank 8 down to rank 1, file a to h:
// index 0 is a8, index 63 is h1, and a square maps to file - 8*rank + 63.
type Position struct {
	Board    [64]Piece
	Ply      int
	LastMove *Move
}

// startBoard is the fixed opening layout: ten stones per side stacked into
// mirrored staircases around the White and Black corners.
var startBoard = [64]Piece{
	//  a        b        c        d        e        f        g        h
	{Empty}, {Empty}, {Empty}, {Empty}, {Black}, {Black}, {Black}, {Black}, // 8
	{Empty}, {Empty}, {Empty}, {Empty}, {Empty}, {Black}, {Black}, {Black}, // 7
	{Empty}, {Empty}, {Empty}, {Empty}, {Empty}, {Empty}, {Black}, {Black}, // 6
	{Empty}, {Empty}, {Empty}, {Empty}, {Empty}, {Empty}, {Empty}, {Black}, // 5
	{White}, {Empty}, {Empty}, {Empty}, {Empty}, {Empty}, {Empty}, {Empty}, // 4
	{White}, {White}, {Empty}, {Empty}, {Empty}, {Empty}, {Empty}, {Empty}, // 3
	{White}, {White}, {White}, {Empty}, {Empty}, {Empty}, {Empty}, {Empty}, // 2
	{White}, {White}, {White}, {White}, {Empty}, {Empty}, {Empty}, {Empty}, // 1
}

// Start returns the opening position: ply 0, White to move, no move played.
func Start() Position {
	return Position{Board: startBoard}
}

func index(sq Square) int {
	return sq.File - 8*sq.Rank + 63
}

// At returns the piece on sq. The square must be in bounds; indexing an
// unchecked square would silently wrap to an unrelated board cell, so At
// panics instead.
func (p Position) At(sq Square) Piece {
	if !sq.InBounds() {
		panic(fmt.Sprintf("game: square %s out of bounds", sq))
	}
	return p.Board[index(sq)]
}

func (p *Position) set(sq Square, piece Piece) {
	if !sq.InBounds() {
		panic(fmt.Sprintf("game: square %s out of bounds", sq))
	}
	p.Board[index(sq)] = piece
}

// ToMove returns the player whose turn it is: White on even plies, Black on
// odd.
func (p Position) ToMove() Player {
	if p.Ply%2 == 0 {
		return White
	}
	return Black
}

// WholeMove returns the conventional move number for display, starting at 1.
func (p Position) WholeMove() int {
	return p.Ply/2 + 1
}

// Play applies m for the player to move and returns the resulting position.
// On error the receiver's state is unchanged and the returned position is
// the zero value.
//
// A placement fills every empty home square of the mover; it fails with
// ErrHomeSquaresFull when none is empty. A jump relocates the origin stone
// onto the empty target; legality is the arithmetic rule
// origin - center == target == 0 over stone values, which deliberately also
// admits a jump from an empty origin over an empty center. After the stone
// lands, adjacent opponent stones with no empty in-bounds neighbor are
// suffocated, then stones sandwiched between the target and a mover stone
// two squares out are converted. Both scans read the board as it is being
// updated: a stone removed by suffocation cannot be converted in the same
// move, and an earlier removal can free a neighbor that a later suffocation
// check then spares.
//
// A move carrying only one coordinate fits neither shape and passes through
// with no board effect. Every accepted move, including such a pass, advances
// the ply and records itself as LastMove.
func (p Position) Play(m Move) (Position, error) {
	next := p
	mover := p.ToMove()

	switch {
	case m.IsPlacement():
		home := mover.HomeSquares()
		full := true
		for _, sq := range home {
			if p.At(sq).IsEmpty() {
				full = false
				break
			}
		}
		if full {
			return Position{}, fmt.Errorf("cannot place for %s: %w", mover, ErrHomeSquaresFull)
		}
		for _, sq := range home {
			if next.At(sq).IsEmpty() {
				next.set(sq, Piece{mover})
			}
		}

	case m.IsJump():
		origin, target := *m.Origin, *m.Target
		center, _ := m.Center()
		for _, sq := range []Square{origin, center, target} {
			if !sq.InBounds() {
				return Position{}, fmt.Errorf("%w: square %s is off the board", ErrIllegalJump, sq)
			}
		}

		o := p.At(origin)
		c := p.At(center)
		t := p.At(target)
		if o.Player.Value()-c.Player.Value() != t.Player.Value() || t.Player.Value() != 0 {
			return Position{}, fmt.Errorf(
				"%w: origin %s holds %s, center %s holds %s, target %s holds %s",
				ErrIllegalJump, origin, o.Player, center, c.Player, target, t.Player)
		}

		next.set(target, o)
		next.set(origin, Piece{Empty})

		// Suffocation: opponent stones around the landing square die when
		// they have no empty square left to breathe on.
		opponent := mover.Opponent()
		for _, d := range neighbors {
			n := target.Add(d)
			if !n.InBounds() {
				continue
			}
			if next.At(n).Player != opponent {
				continue
			}
			smothered := true
			for _, dd := range neighbors {
				h := n.Add(dd)
				if !h.InBounds() {
					continue
				}
				if next.At(h).IsEmpty() {
					smothered = false
					break
				}
			}
			if smothered {
				next.set(n, Piece{Empty})
			}
		}

		// Conversion: a stone flanked by the landing square and a mover
		// stone two squares out flips to the mover's color.
		for _, d := range neighbors {
			far := target.Add(d).Add(d)
			if !far.InBounds() {
				continue
			}
			mid := far.Add(target).Div(2)
			if next.At(mid).IsEmpty() {
				continue
			}
			if next.At(mid).Opponent().Player == next.At(far).Player {
				next.set(mid, Piece{mover})
			}
		}
	}

	next.Ply++
	next.LastMove = &m
	return next, nil
}

package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DancingGrumpyCat/quorum/game"
)

// Piece returns the glyph for one square's content.
func (s Style) Piece(p game.Piece) string {
	switch p.Player {
	case game.Black:
		return glyph(s.Pieces, 0)
	case game.White:
		return glyph(s.Pieces, 1)
	}
	return glyph(s.Pieces, 2)
}

// Player returns the glyph for a player's stone.
func (s Style) Player(p game.Player) string {
	return s.Piece(game.Piece{Player: p})
}

// Square renders a square with the style's file and rank symbols. A
// component outside [1,8] renders as "<n>" so stray squares stay
// identifiable.
func (s Style) Square(sq game.Square) string {
	file := fmt.Sprintf("<%d>", sq.File)
	if 1 <= sq.File && sq.File <= 8 {
		file = glyph(s.Files, sq.File-1)
	}
	rank := fmt.Sprintf("<%d>", sq.Rank)
	if 1 <= sq.Rank && sq.Rank <= 8 {
		rank = glyph(s.Ranks, sq.Rank-1)
	}
	return file + rank
}

// Move renders a move: the placement marker when there is no origin, then
// the separator and target when a target exists. The formula covers the
// degenerate one-coordinate shapes too: an origin-only move renders as the
// bare origin, a target-only move as markerplus-target.
func (s Style) Move(m game.Move) string {
	var b strings.Builder
	if m.Origin != nil {
		b.WriteString(s.Square(*m.Origin))
	} else {
		b.WriteString(s.Placement)
	}
	if m.Target != nil {
		b.WriteString(s.Separator)
		b.WriteString(s.Square(*m.Target))
	}
	return b.String()
}

// Position renders the full board, rank 8 at the top, under a file-symbol
// header, with an annotation column to the right of the divider: whose turn
// it is (or who won), the move and ply numbers, the last move, the win
// progress, and the static evaluation.
func (s Style) Position(p game.Position) string {
	lastMove := "none"
	if p.LastMove != nil {
		lastMove = s.Move(*p.LastMove)
	}
	turn := s.Player(p.ToMove()) + " to move"
	if w := p.Winner(); w != game.Empty {
		turn = s.Player(w) + " wins by quorum"
	}
	extras := [5]string{
		turn,
		fmt.Sprintf("Move: %d (ply %d)", p.WholeMove(), p.Ply),
		"Last move: " + lastMove,
		fmt.Sprintf("Win progress: %d", p.WinProgress()),
		"Static evaluation: " + strconv.FormatFloat(p.Evaluate(), 'f', 1, 64),
	}

	divider := "  " + s.Divider + "  "
	files := make([]string, 8)
	for i := range files {
		files[i] = glyph(s.Files, i)
	}

	var b strings.Builder
	b.WriteString("  " + strings.Join(files, " ") + divider + "\n")
	for i := 0; i < 8; i++ {
		rank := 8 - i
		row := make([]string, 8)
		for file := 1; file <= 8; file++ {
			row[file-1] = s.Piece(p.At(game.Square{File: file, Rank: rank}))
		}
		extra := ""
		if i < len(extras) {
			extra = extras[i]
		}
		b.WriteString(glyph(s.Ranks, rank-1) + " " + strings.Join(row, " ") + divider + extra)
		if i < 7 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Package pgn formats Quorum games as two-column score sheets and parses
// the plain move notation back into moves.
package pgn

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DancingGrumpyCat/quorum/display"
	"github.com/DancingGrumpyCat/quorum/game"
)

// Result records how a game ended. An Empty winner means a draw.
type Result struct {
	Winner game.Player
}

// String renders the conventional result token: "1-0" for a White win,
// "0-1" for a Black win, "½-½" otherwise.
func (r Result) String() string {
	switch r.Winner {
	case game.White:
		return "1-0"
	case game.Black:
		return "0-1"
	}
	return "½-½"
}

// Format lays the moves out as a numbered score sheet, two moves per row,
// each column padded to the style's move width. A non-nil result takes the
// column after the last move.
func Format(moves []game.Move, result *Result, style display.Style) string {
	columns := make([]string, 0, len(moves)+1)
	for _, m := range moves {
		columns = append(columns, style.Move(m))
	}
	if result != nil {
		columns = append(columns, result.String())
	}

	width := style.MoveWidth()
	var rows []string
	for i := 0; i < len(columns); i += 2 {
		row := columns[i:min(i+2, len(columns))]
		for j := range row {
			row[j] = padRight(row[j], width)
		}
		label := fmt.Sprintf("%3s", fmt.Sprintf("%d.", i/2+1))
		rows = append(rows, label+" "+strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

// padRight pads s with spaces to width runes. Strings already that wide
// pass through unchanged.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// ParseSquare reads a two-character square like "b1". Files are
// case-insensitive.
func ParseSquare(s string) (game.Square, error) {
	if len(s) != 2 {
		return game.Square{}, fmt.Errorf("bad square %q: want a file letter and a rank digit", s)
	}
	file := s[0]
	if 'A' <= file && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' {
		return game.Square{}, fmt.Errorf("bad square %q: file must be a-h", s)
	}
	rank := s[1]
	if rank < '1' || rank > '8' {
		return game.Square{}, fmt.Errorf("bad square %q: rank must be 1-8", s)
	}
	return game.Square{File: int(file-'a') + 1, Rank: int(rank - '0')}, nil
}

// ParseMove reads one move token: "+" or "++" for a placement, "b1d3" or
// "b1-d3" for a jump.
func ParseMove(s string) (game.Move, error) {
	switch s {
	case "+", "++":
		return game.Placement(), nil
	}
	pair := s
	if len(s) == 5 && s[2] == '-' {
		pair = s[:2] + s[3:]
	}
	if len(pair) != 4 {
		return game.Move{}, fmt.Errorf("bad move %q: want \"+\" or an origin-target pair like b1-d3", s)
	}
	origin, err := ParseSquare(pair[:2])
	if err != nil {
		return game.Move{}, fmt.Errorf("bad move %q: %w", s, err)
	}
	target, err := ParseSquare(pair[2:])
	if err != nil {
		return game.Move{}, fmt.Errorf("bad move %q: %w", s, err)
	}
	return game.Jump(origin, target), nil
}

// ParseMoves reads a whitespace-separated sequence of move tokens.
func ParseMoves(s string) ([]game.Move, error) {
	tokens := strings.Fields(s)
	moves := make([]game.Move, 0, len(tokens))
	for i, token := range tokens {
		m, err := ParseMove(token)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

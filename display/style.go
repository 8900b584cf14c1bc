// Package display renders Quorum positions, moves, and squares as text. A
// Style carries every glyph choice, so the same position can print as
// unicode circles, ASCII, or Greek-lettered files.
package display

import (
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Style configures rendering: the three stone glyphs (black, white, empty),
// the placement-move marker, the separator between a jump's origin and
// target, the divider between the board and its annotation column, and the
// file and rank symbols. All string fields are indexed by rune.
type Style struct {
	Pieces    string // exactly three glyphs: black stone, white stone, empty square
	Placement string
	Separator string
	Divider   string
	Files     string // exactly eight glyphs, file a through h
	Ranks     string // exactly eight glyphs, rank 1 through 8
}

// MoveWidth returns the column width a score sheet pads each move to: wide
// enough for a jump (two squares plus the separator) and for the placement
// marker.
func (s Style) MoveWidth() int {
	jump := 5 + utf8.RuneCountInString(s.Separator)
	if placement := utf8.RuneCountInString(s.Placement); placement > jump {
		return placement
	}
	return jump
}

// Built-in styles.
var (
	Circles = Style{
		Pieces:    "●○·",
		Placement: "++",
		Separator: "-",
		Divider:   "⎸",
		Files:     "abcdefgh",
		Ranks:     "12345678",
	}
	LowercaseASCII = Style{
		Pieces:    "xo.",
		Placement: "+",
		Divider:   "|",
		Files:     "abcdefgh",
		Ranks:     "12345678",
	}
	UppercaseASCII = Style{
		Pieces:    "XO.",
		Placement: "+",
		Divider:   "|",
		Files:     "ABCDEFGH",
		Ranks:     "12345678",
	}
	Greek = Style{
		Pieces:    "●○·",
		Placement: "+",
		Divider:   "⎸",
		Files:     "αβγδεζηθ",
		Ranks:     "12345678",
	}
)

// Default is the style used when nothing else is asked for.
var Default = Circles

var styles = map[string]Style{
	"circles":         Circles,
	"lowercase-ascii": LowercaseASCII,
	"uppercase-ascii": UppercaseASCII,
	"greek":           Greek,
}

// Names lists the registered style names in sorted order.
func Names() []string {
	names := maps.Keys(styles)
	slices.Sort(names)
	return names
}

// Lookup finds a registered style by name.
func Lookup(name string) (Style, bool) {
	s, ok := styles[name]
	return s, ok
}

// glyph returns the i-th rune of a glyph string.
func glyph(glyphs string, i int) string {
	for _, r := range glyphs {
		if i == 0 {
			return string(r)
		}
		i--
	}
	return ""
}

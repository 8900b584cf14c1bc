// Command quorum replays a game of Quorum and prints the score sheet
// followed by every position, in a configurable display style. By default it
// replays a complete sample game; -script replays any move sequence.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DancingGrumpyCat/quorum/display"
	"github.com/DancingGrumpyCat/quorum/engine"
	"github.com/DancingGrumpyCat/quorum/game"
	"github.com/DancingGrumpyCat/quorum/pgn"
)

// demoScript is a full sample game, won by Black on the 24th move.
const demoScript = "b1-d3 g8-e6 c1-e5 e8-e4 a1-e3 f7-d5 d1-f5 h8-f6 + " +
	"f8-f4 c2-g4 h7-h3 a2-c4 + b2-d6 h5-f3 a1-c5 h6-d4 b1-b5 g6-c6 " +
	"a3-e5 h7-d5 b3-d7 g7-e5"

func main() {
	styleName := flag.String("style", "circles",
		"display style: "+strings.Join(display.Names(), ", "))
	script := flag.String("script", demoScript,
		"whitespace-separated move script to replay")
	flag.Parse()

	// Boards go to stdout; logs stay on stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	style, ok := display.Lookup(*styleName)
	if !ok {
		log.Fatal().Str("style", *styleName).Strs("valid", display.Names()).
			Msg("unknown display style")
	}

	moves, err := pgn.ParseMoves(*script)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse move script")
	}

	g := engine.New()
	positions := []game.Position{g.Current()}
	for _, m := range moves {
		pos, err := g.Play(m)
		if err != nil {
			log.Fatal().Stringer("move", m).Err(err).Msg("replay failed")
		}
		positions = append(positions, pos)
	}

	var result *pgn.Result
	if winner := g.Winner(); winner != game.Empty {
		result = &pgn.Result{Winner: winner}
	}
	fmt.Println(pgn.Format(moves, result, style))
	for _, pos := range positions {
		fmt.Println()
		fmt.Println(style.Position(pos))
	}
}

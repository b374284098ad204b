// Command wyvern is a small demo driver over the board, game, and
// engine packages: it runs move generation dumps, perft, and a
// self-play search loop from the command line. It does not speak UCI
// or any other engine protocol.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/brannoch/wyvern/board"
)

var (
	movegenRun = flag.Bool("movegen", false, "dump legal moves for the given FEN")

	perftRun      = flag.Bool("perft", false, "run perft to the given depth")
	perftDepth    = flag.Int("perft.depth", 5, "perft search depth")
	perftParallel = flag.Bool("perft.parallel", false, "fan perft's root moves out across goroutines")

	searchRun      = flag.Bool("search", false, "self-play a game against a random mover")
	searchDepth    = flag.Int("search.depth", 4, "negamax search depth")
	searchMaxMoves = flag.Int("search.maxmoves", 80, "maximum number of half-moves before giving up")
)

func main() {
	flag.Parse()

	fen := board.StartingPositionFEN
	if args := flag.Args(); len(args) > 0 {
		fen = strings.Join(args, " ")
	}

	var err error
	switch {
	case *movegenRun:
		err = movegen(fen)
	case *perftRun:
		err = perft(fen, *perftDepth, *perftParallel)
	case *searchRun:
		err = search(fen, *searchDepth, *searchMaxMoves)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

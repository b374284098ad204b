package board

import (
	"github.com/brannoch/wyvern/bitboard"
	"github.com/brannoch/wyvern/square"
)

// castleInfo describes one castling leg: the king and rook's origin and
// destination squares, the squares that must be empty, and the squares
// (including the king's own) that must not be attacked.
type castleInfo struct {
	KingFrom, KingTo square.Square
	RookFrom, RookTo square.Square
	Between          bitboard.Bitboard
	KingPath         bitboard.Bitboard
}

var castleTable = map[square.Color][2]castleInfo{
	square.White: {
		{ // kingside
			KingFrom: mustSquare("e1"), KingTo: mustSquare("g1"),
			RookFrom: mustSquare("h1"), RookTo: mustSquare("f1"),
			Between:  squares("f1", "g1"),
			KingPath: squares("e1", "f1", "g1"),
		},
		{ // queenside
			KingFrom: mustSquare("e1"), KingTo: mustSquare("c1"),
			RookFrom: mustSquare("a1"), RookTo: mustSquare("d1"),
			Between:  squares("b1", "c1", "d1"),
			KingPath: squares("e1", "d1", "c1"),
		},
	},
	square.Black: {
		{
			KingFrom: mustSquare("e8"), KingTo: mustSquare("g8"),
			RookFrom: mustSquare("h8"), RookTo: mustSquare("f8"),
			Between:  squares("f8", "g8"),
			KingPath: squares("e8", "f8", "g8"),
		},
		{
			KingFrom: mustSquare("e8"), KingTo: mustSquare("c8"),
			RookFrom: mustSquare("a8"), RookTo: mustSquare("d8"),
			Between:  squares("b8", "c8", "d8"),
			KingPath: squares("e8", "d8", "c8"),
		},
	},
}

// rookCorner maps a color's starting rook squares to which castling side
// they guard, used to clear rights when a rook moves or is captured.
var rookCorner = map[square.Square]struct {
	Color    square.Color
	Kingside bool
}{
	mustSquare("h1"): {square.White, true},
	mustSquare("a1"): {square.White, false},
	mustSquare("h8"): {square.Black, true},
	mustSquare("a8"): {square.Black, false},
}

func mustSquare(notation string) square.Square {
	s, err := square.ParseSquare(notation)
	if err != nil {
		panic(err)
	}
	return s
}

func squares(notations ...string) bitboard.Bitboard {
	var bb bitboard.Bitboard
	for _, n := range notations {
		bb = bb.With(mustSquare(n))
	}
	return bb
}

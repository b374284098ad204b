// Package eval implements the engine's incremental material and
// piece-square-table evaluator: a single white-relative integer score,
// maintained by XOR-like add/remove contributions rather than
// recomputed on every call.
package eval

import "github.com/brannoch/wyvern/square"

// Standard "simplified evaluation function" piece values
// (https://www.chessprogramming.org/Simplified_Evaluation_Function).
var materialValue = [6]int32{
	square.King:   20000,
	square.Queen:  900,
	square.Bishop: 330,
	square.Knight: 320,
	square.Rook:   500,
	square.Pawn:   100,
}

// pieceSquareTable holds per-type positional bonuses written with array
// index 0 at a8, increasing left-to-right then down to a1 at index 56
// (the conventional layout for pasting these tables as printed boards).
// A piece's own back rank therefore always lands in the table's last
// row: White's bonus at square s is pieceSquareTable[pt][s.FlipHorizontal()]
// (a8-first index), while Black's is pieceSquareTable[pt][s] directly,
// since Black's back rank (h8) is LERF-numbered high, matching the
// table's high-index row.
var pieceSquareTable = [6][64]int32{
	square.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	square.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	square.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	square.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	square.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	square.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

func pstValue(c square.Color, pt square.PieceType, s square.Square) int32 {
	if c == square.White {
		s = s.FlipHorizontal()
	}
	return pieceSquareTable[pt][s] // Black reads the table directly; White flips first.
}

func contribution(c square.Color, pt square.PieceType, s square.Square) int32 {
	v := materialValue[pt] + pstValue(c, pt, s)
	if c == square.Black {
		return -v
	}
	return v
}

// Evaluator holds an incrementally maintained, white-relative material
// and piece-square-table score.
type Evaluator struct {
	score int32
}

// Reset zeroes the score, as if the board held no pieces.
func (e *Evaluator) Reset() { e.score = 0 }

// Place adds the contribution of a piece newly appearing at s. Used
// both to seed an evaluator from a board's full piece set and as the
// "add half" of a move.
func (e *Evaluator) Place(c square.Color, pt square.PieceType, s square.Square) {
	e.score += contribution(c, pt, s)
}

// Remove subtracts the contribution of a piece disappearing from s.
func (e *Evaluator) Remove(c square.Color, pt square.PieceType, s square.Square) {
	e.score -= contribution(c, pt, s)
}

// OnMove updates the score for a piece relocating from `from` to `to`
// without changing type (a plain move or a castling leg).
func (e *Evaluator) OnMove(c square.Color, pt square.PieceType, from, to square.Square) {
	e.Remove(c, pt, from)
	e.Place(c, pt, to)
}

// OnCapture removes a victim piece's contribution; for en-passant the
// caller passes the captured pawn's actual square, not the mover's
// destination.
func (e *Evaluator) OnCapture(victimColor square.Color, victimType square.PieceType, at square.Square) {
	e.Remove(victimColor, victimType, at)
}

// OnPromotion replaces a pawn's contribution at `from` with the
// promoted piece's contribution at `to`.
func (e *Evaluator) OnPromotion(c square.Color, from, to square.Square, toType square.PieceType) {
	e.Remove(c, square.Pawn, from)
	e.Place(c, toType, to)
}

// ScoreFor returns the score relative to c: as stored for White,
// negated for Black.
func (e *Evaluator) ScoreFor(c square.Color) int32 {
	if c == square.Black {
		return -e.score
	}
	return e.score
}

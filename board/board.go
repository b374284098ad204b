// Package board implements the chess engine's position type: bitboard
// storage, FEN parsing, move application, and legal move generation.
package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/brannoch/wyvern/bitboard"
	"github.com/brannoch/wyvern/eval"
	"github.com/brannoch/wyvern/square"
	"github.com/brannoch/wyvern/zobrist"
)

// StartingPositionFEN is the standard chess opening position.
const StartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func ci(c square.Color) int {
	if c == square.Black {
		return 1
	}
	return 0
}

// ChessBoard is a full chess position: the twelve piece bitboards plus
// side to move, castling rights, en-passant square, move clocks, and
// check/mate flags, together with an embedded incremental evaluator and
// Zobrist hasher. It is mutated only by Apply; every other consumer
// (the search) works on clones.
type ChessBoard struct {
	bb         [2][7]bitboard.Bitboard // [color][square.King..square.Pawn, square.AllPieces]
	cells      [64]square.Piece        // mailbox cache, redundant with bb
	nextPlayer square.Color

	shortCastleRight [2]bool
	longCastleRight  [2]bool
	enPassantSquare  square.Square

	halfMoveClock int
	fullMoveClock int

	kingInCheck [2]bool
	checkmate   [2]bool
	stalemate   bool

	lastCapturedPiece square.Piece
	capturedPieces    []square.Piece

	eval eval.Evaluator
	hash zobrist.Hasher
}

// Option configures a ChessBoard at construction time.
type Option func(*ChessBoard) error

// WithFEN loads the board from a Forsyth-Edwards Notation string.
func WithFEN(fen string) Option {
	return func(b *ChessBoard) error { return b.FromFEN(fen) }
}

// New builds a ChessBoard, defaulting to the standard starting position
// when no options are given.
func New(opts ...Option) (*ChessBoard, error) {
	b := &ChessBoard{}
	if len(opts) == 0 {
		opts = []Option{WithFEN(StartingPositionFEN)}
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Clone returns an independent value copy. The search clones a board
// before every recursive descent rather than mutating shared state.
func (b *ChessBoard) Clone() *ChessBoard {
	cp := *b
	cp.capturedPieces = append([]square.Piece(nil), b.capturedPieces...)
	return &cp
}

func (b *ChessBoard) place(c square.Color, pt square.PieceType, s square.Square) {
	b.bb[ci(c)][pt] = b.bb[ci(c)][pt].With(s)
	b.bb[ci(c)][square.AllPieces] = b.bb[ci(c)][square.AllPieces].With(s)
	b.cells[s] = square.Piece{Color: c, Type: pt}
	b.eval.Place(c, pt, s)
	b.hash.TogglePiece(c, pt, s)
}

func (b *ChessBoard) remove(c square.Color, pt square.PieceType, s square.Square) {
	b.bb[ci(c)][pt] = b.bb[ci(c)][pt].Without(s)
	b.bb[ci(c)][square.AllPieces] = b.bb[ci(c)][square.AllPieces].Without(s)
	b.cells[s] = square.NoPiece
	b.eval.Remove(c, pt, s)
	b.hash.TogglePiece(c, pt, s)
}

// Bitboard returns the raw bitboard for (c, pt); pt may be
// square.AllPieces for the per-color union.
func (b *ChessBoard) Bitboard(c square.Color, pt square.PieceType) bitboard.Bitboard {
	return b.bb[ci(c)][pt]
}

// Occupied returns every occupied square on the board.
func (b *ChessBoard) Occupied() bitboard.Bitboard {
	return b.bb[ci(square.White)][square.AllPieces] | b.bb[ci(square.Black)][square.AllPieces]
}

// PieceAt returns the piece on s, or square.NoPiece if empty.
func (b *ChessBoard) PieceAt(s square.Square) square.Piece {
	return b.cells[s]
}

// NextPlayer returns the side to move.
func (b *ChessBoard) NextPlayer() square.Color { return b.nextPlayer }

// Hash returns the incrementally maintained Zobrist hash.
func (b *ChessBoard) Hash() uint64 { return b.hash.Value() }

// ScoreFor returns the incremental evaluator's score relative to c.
func (b *ChessBoard) ScoreFor(c square.Color) int32 { return b.eval.ScoreFor(c) }

// EnPassantSquare returns the current en-passant target, or square.ERR.
func (b *ChessBoard) EnPassantSquare() square.Square { return b.enPassantSquare }

// CastleRight reports whether c still holds the right to castle to the
// given side (true=kingside).
func (b *ChessBoard) CastleRight(c square.Color, kingside bool) bool {
	if kingside {
		return b.shortCastleRight[ci(c)]
	}
	return b.longCastleRight[ci(c)]
}

// HalfMoveClock returns plies since the last capture or pawn move.
func (b *ChessBoard) HalfMoveClock() int { return b.halfMoveClock }

// FullMoveClock returns the current full-move number.
func (b *ChessBoard) FullMoveClock() int { return b.fullMoveClock }

// LastCapturedPiece returns the piece captured by the most recent
// Apply call, or square.NoPiece if it captured nothing.
func (b *ChessBoard) LastCapturedPiece() square.Piece { return b.lastCapturedPiece }

// CapturedPieces returns the ordered sequence of pieces captured so far.
func (b *ChessBoard) CapturedPieces() []square.Piece { return b.capturedPieces }

// IsCheck reports whether c's king is in check. Valid only after at
// least one GenerateMoves call on the current position.
func (b *ChessBoard) IsCheck(c square.Color) bool { return b.kingInCheck[ci(c)] }

// IsCheckmate reports whether c is checkmated. Valid only after at
// least one GenerateMoves call on the current position.
func (b *ChessBoard) IsCheckmate(c square.Color) bool { return b.checkmate[ci(c)] }

// IsStalemate reports whether the position is a stalemate. Valid only
// after at least one GenerateMoves call on the current position.
func (b *ChessBoard) IsStalemate() bool { return b.stalemate }

// IsDrawByFiftyMoveRule reports whether 50 full moves (100 plies) have
// passed without a capture or pawn move.
func (b *ChessBoard) IsDrawByFiftyMoveRule() bool { return b.halfMoveClock >= 100 }

// Draw renders the board as a colorized 8x8 grid for console debugging.
func (b *ChessBoard) Draw() string {
	var out strings.Builder
	white := color.New(color.FgWhite, color.Bold)
	black := color.New(color.FgCyan, color.Bold)
	for r := 7; r >= 0; r-- {
		out.WriteString(fmt.Sprintf("%d |", r+1))
		for f := 0; f < 8; f++ {
			p := b.cells[square.NewSquare(square.File(f), square.Rank(r))]
			sym := " . "
			if !p.IsEmpty() {
				letter := string(p.Type.FENLetter())
				if p.Color == square.White {
					sym = white.Sprintf(" %s ", letter)
				} else {
					sym = black.Sprintf(" %s ", strings.ToLower(letter))
				}
			}
			out.WriteString(sym)
		}
		out.WriteString("\n")
	}
	out.WriteString("    a  b  c  d  e  f  g  h")
	return out.String()
}

package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/brannoch/wyvern/square"
)

// ErrInvalidFEN is wrapped by every FEN parsing failure.
var ErrInvalidFEN = errors.New("board: invalid FEN")

// FromFEN resets b and loads the position described by a Forsyth-Edwards
// Notation string. Parsing is permissive: it rejects malformed syntax
// but does not check the result for chess legality.
func (b *ChessBoard) FromFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fmt.Errorf("%w: expected 6 space-separated fields, got %d", ErrInvalidFEN, len(fields))
	}

	*b = ChessBoard{}
	for s := range b.cells {
		b.cells[s] = square.NoPiece
	}
	b.enPassantSquare = square.ERR

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		r := square.Rank(7 - i)
		f := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += int(ch - '0')
				continue
			}
			pt, c, ok := square.PieceTypeFromFENLetter(byte(ch))
			if !ok {
				return fmt.Errorf("%w: unknown piece letter %q", ErrInvalidFEN, ch)
			}
			if f >= 8 {
				return fmt.Errorf("%w: rank %d has too many cells", ErrInvalidFEN, 8-i)
			}
			b.place(c, pt, square.NewSquare(square.File(f), r))
			f++
		}
		if f != 8 {
			return fmt.Errorf("%w: rank %d does not sum to 8 cells", ErrInvalidFEN, 8-i)
		}
	}

	switch fields[1] {
	case "w":
		b.nextPlayer = square.White
	case "b":
		b.nextPlayer = square.Black
		b.hash.ToggleSideToMove()
	default:
		return fmt.Errorf("%w: unknown active color %q", ErrInvalidFEN, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.shortCastleRight[ci(square.White)] = true
				b.hash.ToggleCastleRight(square.White, true)
			case 'Q':
				b.longCastleRight[ci(square.White)] = true
				b.hash.ToggleCastleRight(square.White, false)
			case 'k':
				b.shortCastleRight[ci(square.Black)] = true
				b.hash.ToggleCastleRight(square.Black, true)
			case 'q':
				b.longCastleRight[ci(square.Black)] = true
				b.hash.ToggleCastleRight(square.Black, false)
			default:
				return fmt.Errorf("%w: unknown castling letter %q", ErrInvalidFEN, ch)
			}
		}
	}

	if fields[3] != "-" {
		s, err := square.ParseSquare(fields[3])
		if err != nil {
			return fmt.Errorf("%w: bad en-passant square: %v", ErrInvalidFEN, err)
		}
		b.enPassantSquare = s
		b.hash.ToggleEnPassantFile(s.File())
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil || half < 0 {
		return fmt.Errorf("%w: bad half-move clock %q", ErrInvalidFEN, fields[4])
	}
	b.halfMoveClock = half

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 0 {
		return fmt.Errorf("%w: bad full-move clock %q", ErrInvalidFEN, fields[5])
	}
	b.fullMoveClock = full

	return nil
}

// ToFEN serializes the board's current position to Forsyth-Edwards
// Notation.
func (b *ChessBoard) ToFEN() string {
	var out strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b.cells[square.NewSquare(square.File(f), square.Rank(r))]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := p.Type.FENLetter()
			if p.Color == square.Black {
				letter |= 0x20
			}
			out.WriteByte(letter)
		}
		if empty > 0 {
			out.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			out.WriteByte('/')
		}
	}

	out.WriteByte(' ')
	if b.nextPlayer == square.White {
		out.WriteByte('w')
	} else {
		out.WriteByte('b')
	}

	out.WriteByte(' ')
	rights := ""
	if b.shortCastleRight[ci(square.White)] {
		rights += "K"
	}
	if b.longCastleRight[ci(square.White)] {
		rights += "Q"
	}
	if b.shortCastleRight[ci(square.Black)] {
		rights += "k"
	}
	if b.longCastleRight[ci(square.Black)] {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	out.WriteString(rights)

	out.WriteByte(' ')
	if b.enPassantSquare == square.ERR {
		out.WriteByte('-')
	} else {
		out.WriteString(b.enPassantSquare.String())
	}

	out.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))
	return out.String()
}

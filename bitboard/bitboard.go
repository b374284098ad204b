// Package bitboard implements the 64-bit bitmap primitives the rest of
// the engine is built on: per-square set/clear/test, scan-first-set, and
// the eight direction rays used by sliding-piece attack generation.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/brannoch/wyvern/square"
)

// Bitboard is a bit-set over the 64 squares of the board; bit k set
// means square k is a member.
type Bitboard uint64

// Direction is one of the eight compass rays from a square.
type Direction uint8

const (
	N Direction = iota
	S
	E
	W
	NE
	NW
	SE
	SW
)

var directionDelta = [8]struct{ df, dr int }{
	N:  {0, 1},
	S:  {0, -1},
	E:  {1, 0},
	W:  {-1, 0},
	NE: {1, 1},
	NW: {-1, 1},
	SE: {1, -1},
	SW: {-1, -1},
}

// towardHigherBit reports whether squares further along a direction have
// a strictly increasing bit index; it determines whether the nearest
// blocker along a ray is its least- or most-significant set bit.
var towardHigherBit = [8]bool{N: true, S: false, E: true, W: false, NE: true, NW: true, SE: false, SW: false}

var rayTable [8][64]Bitboard

var maskFileTable [8]Bitboard
var maskRankTable [8]Bitboard

func init() {
	for f := square.File(0); f < 8; f++ {
		var bb Bitboard
		for r := square.Rank(0); r < 8; r++ {
			bb = bb.With(square.NewSquare(f, r))
		}
		maskFileTable[f] = bb
	}
	for r := square.Rank(0); r < 8; r++ {
		var bb Bitboard
		for f := square.File(0); f < 8; f++ {
			bb = bb.With(square.NewSquare(f, r))
		}
		maskRankTable[r] = bb
	}
	for d := N; d <= SW; d++ {
		for s := square.Square(0); s < 64; s++ {
			rayTable[d][s] = computeRay(s, d)
		}
	}
}

func computeRay(s square.Square, d Direction) Bitboard {
	delta := directionDelta[d]
	var bb Bitboard
	f, r := int(s.File())+delta.df, int(s.Rank())+delta.dr
	for f >= 0 && f < 8 && r >= 0 && r < 8 {
		bb = bb.With(square.NewSquare(square.File(f), square.Rank(r)))
		f += delta.df
		r += delta.dr
	}
	return bb
}

// MaskFile returns the bitboard of every square on file f.
func MaskFile(f square.File) Bitboard { return maskFileTable[f] }

// MaskRank returns the bitboard of every square on rank r.
func MaskRank(r square.Rank) Bitboard { return maskRankTable[r] }

// ClearFile returns the complement of MaskFile(f).
func ClearFile(f square.File) Bitboard { return ^maskFileTable[f] }

// Ray returns the bitboard of every square strictly in direction d from
// s, bounded by the board edge; it never wraps around a file or rank.
func Ray(s square.Square, d Direction) Bitboard { return rayTable[d][s] }

func RayN(s square.Square) Bitboard  { return rayTable[N][s] }
func RayS(s square.Square) Bitboard  { return rayTable[S][s] }
func RayE(s square.Square) Bitboard  { return rayTable[E][s] }
func RayW(s square.Square) Bitboard  { return rayTable[W][s] }
func RayNE(s square.Square) Bitboard { return rayTable[NE][s] }
func RayNW(s square.Square) Bitboard { return rayTable[NW][s] }
func RaySE(s square.Square) Bitboard { return rayTable[SE][s] }
func RaySW(s square.Square) Bitboard { return rayTable[SW][s] }

// Test reports whether square s is a member of bb.
func (bb Bitboard) Test(s square.Square) bool {
	return bb&(1<<uint(s)) != 0
}

// With returns bb with square s added.
func (bb Bitboard) With(s square.Square) Bitboard {
	return bb | 1<<uint(s)
}

// Without returns bb with square s removed.
func (bb Bitboard) Without(s square.Square) Bitboard {
	return bb &^ (1 << uint(s))
}

// Set adds square s to bb in place.
func (bb *Bitboard) Set(s square.Square) { *bb = bb.With(s) }

// Clear removes square s from bb in place.
func (bb *Bitboard) Clear(s square.Square) { *bb = bb.Without(s) }

// Toggle flips membership of square s in bb in place.
func (bb *Bitboard) Toggle(s square.Square) { *bb ^= 1 << uint(s) }

// Count returns the number of set bits.
func (bb Bitboard) Count() int {
	return bits.OnesCount64(uint64(bb))
}

// ScanLSB returns the field of the least-significant set bit. It does
// not check for an empty bitboard: for bb == 0 it returns 64 (the
// bits.TrailingZeros64 result), which is not a valid field; callers must
// check Count or the zero value before calling.
func (bb Bitboard) ScanLSB() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(bb)))
}

// ScanMSB returns the field of the most-significant set bit. Undefined
// for an empty bitboard.
func (bb Bitboard) ScanMSB() square.Square {
	return square.Square(63 - bits.LeadingZeros64(uint64(bb)))
}

// PopLSB clears and returns the least-significant set square, for
// iterating a bitboard's members.
func (bb *Bitboard) PopLSB() square.Square {
	s := bb.ScanLSB()
	bb.Clear(s)
	return s
}

// Slide returns the attack set of a sliding piece standing on s looking
// along direction d, given the board's occupied squares: every empty
// square up to but not past the first blocker, plus the blocker itself.
func Slide(s square.Square, d Direction, occupied Bitboard) Bitboard {
	ray := rayTable[d][s]
	blockers := ray & occupied
	if blockers == 0 {
		return ray
	}
	var blocker square.Square
	if towardHigherBit[d] {
		blocker = blockers.ScanLSB()
	} else {
		blocker = blockers.ScanMSB()
	}
	return ray &^ rayTable[d][blocker]
}

// SlideRook returns the rook-style attack set (N, S, E, W rays) from s.
func SlideRook(s square.Square, occupied Bitboard) Bitboard {
	return Slide(s, N, occupied) | Slide(s, S, occupied) | Slide(s, E, occupied) | Slide(s, W, occupied)
}

// SlideBishop returns the bishop-style attack set (diagonal rays) from s.
func SlideBishop(s square.Square, occupied Bitboard) Bitboard {
	return Slide(s, NE, occupied) | Slide(s, NW, occupied) | Slide(s, SE, occupied) | Slide(s, SW, occupied)
}

// SlideQueen returns the union of SlideRook and SlideBishop from s.
func SlideQueen(s square.Square, occupied Bitboard) Bitboard {
	return SlideRook(s, occupied) | SlideBishop(s, occupied)
}

// Dump renders bb as an 8x8 ASCII grid, rank 8 first, for debugging.
func (bb Bitboard) Dump() string {
	var b strings.Builder
	for r := 7; r >= 0; r-- {
		b.WriteByte(byte('1' + r))
		b.WriteString(" |")
		for f := 0; f < 8; f++ {
			if bb.Test(square.NewSquare(square.File(f), square.Rank(r))) {
				b.WriteString(" #")
			} else {
				b.WriteString(" .")
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a b c d e f g h")
	return b.String()
}

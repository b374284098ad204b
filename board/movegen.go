package board

import (
	"github.com/brannoch/wyvern/bitboard"
	"github.com/brannoch/wyvern/square"
)

var knightAttackTable [64]bitboard.Bitboard
var kingAttackTable [64]bitboard.Bitboard
var pawnAttackTable [2][64]bitboard.Bitboard // [ci(color)][square]

func init() {
	knightDeltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	for s := square.Square(0); s < 64; s++ {
		f, r := int(s.File()), int(s.Rank())

		var kn bitboard.Bitboard
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				kn = kn.With(square.NewSquare(square.File(nf), square.Rank(nr)))
			}
		}
		knightAttackTable[s] = kn

		var kg bitboard.Bitboard
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				kg = kg.With(square.NewSquare(square.File(nf), square.Rank(nr)))
			}
		}
		kingAttackTable[s] = kg

		if r < 7 {
			var wp bitboard.Bitboard
			if f > 0 {
				wp = wp.With(square.NewSquare(square.File(f-1), square.Rank(r+1)))
			}
			if f < 7 {
				wp = wp.With(square.NewSquare(square.File(f+1), square.Rank(r+1)))
			}
			pawnAttackTable[ci(square.White)][s] = wp
		}
		if r > 0 {
			var bp bitboard.Bitboard
			if f > 0 {
				bp = bp.With(square.NewSquare(square.File(f-1), square.Rank(r-1)))
			}
			if f < 7 {
				bp = bp.With(square.NewSquare(square.File(f+1), square.Rank(r-1)))
			}
			pawnAttackTable[ci(square.Black)][s] = bp
		}
	}
}

func pawnAttackMask(c square.Color, s square.Square) bitboard.Bitboard {
	return pawnAttackTable[ci(c)][s]
}

// attacksBy returns every square c attacks. When kingTransparent is
// true, the opponent's king is removed from the occupancy set before
// computing sliding attacks, so that squares beyond the king along an
// attacker's ray are correctly reported as unsafe for the king to flee
// to.
func (b *ChessBoard) attacksBy(c square.Color, kingTransparent bool) bitboard.Bitboard {
	occ := b.Occupied()
	if kingTransparent {
		if kingBB := b.bb[ci(c.Opposite())][square.King]; kingBB != 0 {
			occ = occ.Without(kingBB.ScanLSB())
		}
	}

	var attacks bitboard.Bitboard
	pawns := b.bb[ci(c)][square.Pawn]
	for pawns != 0 {
		attacks |= pawnAttackMask(c, pawns.PopLSB())
	}
	knights := b.bb[ci(c)][square.Knight]
	for knights != 0 {
		attacks |= knightAttackTable[knights.PopLSB()]
	}
	if kingBB := b.bb[ci(c)][square.King]; kingBB != 0 {
		attacks |= kingAttackTable[kingBB.ScanLSB()]
	}
	bishops := b.bb[ci(c)][square.Bishop]
	for bishops != 0 {
		attacks |= bitboard.SlideBishop(bishops.PopLSB(), occ)
	}
	rooks := b.bb[ci(c)][square.Rook]
	for rooks != 0 {
		attacks |= bitboard.SlideRook(rooks.PopLSB(), occ)
	}
	queens := b.bb[ci(c)][square.Queen]
	for queens != 0 {
		attacks |= bitboard.SlideQueen(queens.PopLSB(), occ)
	}

	// Castling destinations contribute too, unconditioned on the king's
	// path being safe: a square only reachable by c castling through it
	// is still a square c controls for the opponent's own king-safety
	// check, even though c's own castling legality check (generateCastles)
	// additionally requires KingPath to be unattacked.
	for _, leg := range castleTable[c] {
		if b.castleRightFor(c, leg) && occ&leg.Between == 0 {
			attacks |= bitboard.Bitboard(0).With(leg.KingTo)
		}
	}
	return attacks
}

func (b *ChessBoard) castleRightFor(c square.Color, leg castleInfo) bool {
	if leg.KingTo.File() > leg.KingFrom.File() {
		return b.shortCastleRight[ci(c)]
	}
	return b.longCastleRight[ci(c)]
}

var diagonalDirections = [4]bitboard.Direction{bitboard.NE, bitboard.NW, bitboard.SE, bitboard.SW}
var lateralDirections = [4]bitboard.Direction{bitboard.N, bitboard.S, bitboard.E, bitboard.W}

// evasionMask returns the set of squares a non-king move must land on
// (or, for en passant, the square of the pawn it captures) to resolve
// every check currently on us's king: the checking piece's own square
// for a contact check (knight or pawn), or that square plus every
// interposing square for a sliding check. Each checker's resolving set
// is intersected into the running mask rather than overwriting it, so
// a double check is never special-cased: two checkers' resolving sets
// essentially never share a square, so the intersection - and hence
// every non-king move - comes out empty on its own.
func (b *ChessBoard) evasionMask(us square.Color, kingSquare square.Square) bitboard.Bitboard {
	them := us.Opposite()
	occ := b.Occupied()
	mask := ^bitboard.Bitboard(0)

	if m := knightAttackTable[kingSquare] & b.bb[ci(them)][square.Knight]; m != 0 {
		mask &= bitboard.Bitboard(0).With(m.ScanLSB())
	}
	if m := pawnAttackMask(us, kingSquare) & b.bb[ci(them)][square.Pawn]; m != 0 {
		mask &= bitboard.Bitboard(0).With(m.ScanLSB())
	}
	diagonalAttackers := b.bb[ci(them)][square.Bishop] | b.bb[ci(them)][square.Queen]
	for _, d := range diagonalDirections {
		if ray := bitboard.Slide(kingSquare, d, occ); ray&diagonalAttackers != 0 {
			mask &= ray
		}
	}
	lateralAttackers := b.bb[ci(them)][square.Rook] | b.bb[ci(them)][square.Queen]
	for _, d := range lateralDirections {
		if ray := bitboard.Slide(kingSquare, d, occ); ray&lateralAttackers != 0 {
			mask &= ray
		}
	}
	return mask
}

// GenerateMoves returns every legal move for the side to move, and
// records whether that side is in check, checkmated, or stalemated.
// It does not detect moves that expose a pin on a piece other than the
// king: a non-king piece that blocks a would-be check may still
// legally move away along the generated pseudo-legal squares, matching
// the move generator this engine's design is grounded on.
func (b *ChessBoard) GenerateMoves() []Turn {
	us := b.nextPlayer
	them := us.Opposite()
	kingBB := b.bb[ci(us)][square.King]
	if kingBB == 0 {
		return nil
	}
	kingSquare := kingBB.ScanLSB()

	allOppAttacks := b.attacksBy(them, true)
	inCheck := allOppAttacks.Test(kingSquare)
	b.kingInCheck[ci(us)] = inCheck

	mask := ^bitboard.Bitboard(0)
	canCastle := !inCheck
	if inCheck {
		mask = b.evasionMask(us, kingSquare)
	}

	moves := b.generatePieceMoves(us, kingSquare, allOppAttacks, mask, canCastle)

	if len(moves) == 0 {
		if inCheck {
			b.checkmate[ci(us)] = true
		} else {
			b.stalemate = true
		}
	}
	return moves
}

func (b *ChessBoard) generatePieceMoves(us square.Color, kingSquare square.Square, oppAttacks, mask bitboard.Bitboard, canCastle bool) []Turn {
	var moves []Turn
	own := b.bb[ci(us)][square.AllPieces]
	occ := b.Occupied()

	// King, first: resolves king safety before anything else.
	targets := kingAttackTable[kingSquare] &^ own &^ oppAttacks
	for targets != 0 {
		to := targets.PopLSB()
		moves = append(moves, Turn{Piece: square.Piece{Color: us, Type: square.King}, From: kingSquare, To: to, Action: ActionMove})
	}
	if canCastle {
		moves = append(moves, b.generateCastles(us, occ, oppAttacks)...)
	}

	// Queen, Bishop, Knight, Rook: sliding and leaper pieces.
	queens := b.bb[ci(us)][square.Queen]
	for queens != 0 {
		from := queens.PopLSB()
		moves = appendSliderMoves(moves, us, square.Queen, from, bitboard.SlideQueen(from, occ)&^own&mask)
	}
	bishops := b.bb[ci(us)][square.Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		moves = appendSliderMoves(moves, us, square.Bishop, from, bitboard.SlideBishop(from, occ)&^own&mask)
	}
	knights := b.bb[ci(us)][square.Knight]
	for knights != 0 {
		from := knights.PopLSB()
		moves = appendSliderMoves(moves, us, square.Knight, from, knightAttackTable[from]&^own&mask)
	}
	rooks := b.bb[ci(us)][square.Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		moves = appendSliderMoves(moves, us, square.Rook, from, bitboard.SlideRook(from, occ)&^own&mask)
	}

	// Pawn, last: pushes, captures, en-passant, and promotion expansion.
	moves = b.generatePawnMoves(us, occ, mask, moves)

	return moves
}

func appendSliderMoves(moves []Turn, c square.Color, pt square.PieceType, from square.Square, targets bitboard.Bitboard) []Turn {
	for targets != 0 {
		to := targets.PopLSB()
		moves = append(moves, Turn{Piece: square.Piece{Color: c, Type: pt}, From: from, To: to, Action: ActionMove})
	}
	return moves
}

func (b *ChessBoard) generateCastles(us square.Color, occ, oppAttacks bitboard.Bitboard) []Turn {
	var moves []Turn
	legs := castleTable[us]
	if b.shortCastleRight[ci(us)] {
		leg := legs[0]
		if occ&leg.Between == 0 && leg.KingPath&oppAttacks == 0 {
			moves = append(moves, Turn{Piece: square.Piece{Color: us, Type: square.King}, From: leg.KingFrom, To: leg.KingTo, Action: ActionCastle})
		}
	}
	if b.longCastleRight[ci(us)] {
		leg := legs[1]
		if occ&leg.Between == 0 && leg.KingPath&oppAttacks == 0 {
			moves = append(moves, Turn{Piece: square.Piece{Color: us, Type: square.King}, From: leg.KingFrom, To: leg.KingTo, Action: ActionCastle})
		}
	}
	return moves
}

func (b *ChessBoard) generatePawnMoves(us square.Color, occ, mask bitboard.Bitboard, moves []Turn) []Turn {
	them := us.Opposite()
	forward := 1
	startRank := square.Rank(1)
	promoteRank := square.Rank(7)
	if us == square.Black {
		forward = -1
		startRank = square.Rank(6)
		promoteRank = square.Rank(0)
	}

	pawns := b.bb[ci(us)][square.Pawn]
	for pawns != 0 {
		from := pawns.PopLSB()
		f, r := int(from.File()), int(from.Rank())

		// Single and double push.
		if nr := r + forward; nr >= 0 && nr < 8 {
			to := square.NewSquare(square.File(f), square.Rank(nr))
			if !occ.Test(to) {
				if mask.Test(to) {
					moves = appendPawnMove(moves, us, from, to, promoteRank)
				}
				if square.Rank(r) == startRank {
					if nr2 := nr + forward; nr2 >= 0 && nr2 < 8 {
						to2 := square.NewSquare(square.File(f), square.Rank(nr2))
						if !occ.Test(to2) && mask.Test(to2) {
							moves = append(moves, Turn{Piece: square.Piece{Color: us, Type: square.Pawn}, From: from, To: to2, Action: ActionMove})
						}
					}
				}
			}
		}

		// Captures, including en passant.
		capturesBB := pawnAttackMask(us, from)
		for capturesBB != 0 {
			to := capturesBB.PopLSB()
			if to == b.enPassantSquare {
				capturedSquare := square.NewSquare(to.File(), from.Rank())
				if mask.Test(capturedSquare) {
					moves = append(moves, Turn{Piece: square.Piece{Color: us, Type: square.Pawn}, From: from, To: to, Action: ActionMove})
				}
				continue
			}
			if victim := b.cells[to]; !victim.IsEmpty() && victim.Color == them && mask.Test(to) {
				moves = appendPawnMove(moves, us, from, to, promoteRank)
			}
		}
	}
	return moves
}

func appendPawnMove(moves []Turn, c square.Color, from, to square.Square, promoteRank square.Rank) []Turn {
	if to.Rank() == promoteRank {
		for _, pt := range square.PromotionCandidates {
			moves = append(moves, Turn{Piece: square.Piece{Color: c, Type: square.Pawn}, From: from, To: to, Action: promotionAction[pt]})
		}
		return moves
	}
	return append(moves, Turn{Piece: square.Piece{Color: c, Type: square.Pawn}, From: from, To: to, Action: ActionMove})
}

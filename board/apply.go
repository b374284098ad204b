package board

import "github.com/brannoch/wyvern/square"

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}

// Apply mutates b by performing t, in order: clearing the previous
// en-passant square and setting a new one on a pawn double-step,
// resolving any capture (including en-passant), dispatching the move
// itself by action, updating castling rights, advancing the half- and
// full-move clocks, and finally handing the turn to the other side.
func (b *ChessBoard) Apply(t Turn) {
	mover := t.Piece
	wasPawnMove := mover.Type == square.Pawn
	wasCapture := false

	// 1. En-passant bookkeeping: clear the old target, set a new one
	// only when this turn is a pawn double-step.
	if b.enPassantSquare != square.ERR {
		b.hash.ToggleEnPassantFile(b.enPassantSquare.File())
		b.enPassantSquare = square.ERR
	}
	if mover.Type == square.Pawn && absDiff(int(t.From.Rank()), int(t.To.Rank())) == 2 {
		mid := square.NewSquare(t.From.File(), square.Rank((int(t.From.Rank())+int(t.To.Rank()))/2))
		b.enPassantSquare = mid
		b.hash.ToggleEnPassantFile(mid.File())
	}

	// 2. Resolve capture, including en-passant.
	captureSquare := t.To
	if mover.Type == square.Pawn && t.From.File() != t.To.File() && b.cells[t.To].IsEmpty() {
		captureSquare = square.NewSquare(t.To.File(), t.From.Rank())
	}
	if victim := b.cells[captureSquare]; !victim.IsEmpty() {
		wasCapture = true
		b.remove(victim.Color, victim.Type, captureSquare)
		b.capturedPieces = append(b.capturedPieces, victim)
		b.lastCapturedPiece = victim
	} else {
		b.lastCapturedPiece = square.NoPiece
	}

	// 3. Dispatch the move itself.
	switch {
	case t.Action == ActionCastle:
		b.remove(mover.Color, square.King, t.From)
		b.place(mover.Color, square.King, t.To)
		leg := castleLegFor(mover.Color, t.To)
		b.remove(mover.Color, square.Rook, leg.RookFrom)
		b.place(mover.Color, square.Rook, leg.RookTo)
	case t.Action == ActionPass || t.Action == ActionForfeit:
		// no board mutation beyond the side-to-move toggle in step 7.
	default:
		if pt, ok := t.Action.PromotionType(); ok {
			b.remove(mover.Color, square.Pawn, t.From)
			b.place(mover.Color, pt, t.To)
		} else {
			b.remove(mover.Color, mover.Type, t.From)
			b.place(mover.Color, mover.Type, t.To)
		}
	}

	// 4. Castling rights: a king move forfeits both sides; a rook
	// move or a rook capture on its home corner forfeits one side.
	if t.Action != ActionPass && t.Action != ActionForfeit {
		if mover.Type == square.King {
			b.clearCastleRight(mover.Color, true)
			b.clearCastleRight(mover.Color, false)
		}
		if corner, ok := rookCorner[t.From]; ok && mover.Type == square.Rook {
			b.clearCastleRight(corner.Color, corner.Kingside)
		}
		if wasCapture {
			if corner, ok := rookCorner[captureSquare]; ok {
				b.clearCastleRight(corner.Color, corner.Kingside)
			}
		}
	}

	// 5. Move clocks.
	if wasPawnMove || wasCapture {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if mover.Color == square.Black {
		b.fullMoveClock++
	}

	// 6. bb[color][AllPieces] is already current: place/remove keep it
	// updated incrementally, so no separate recompute is needed here.

	// 7. Hand the turn to the other side.
	b.nextPlayer = b.nextPlayer.Opposite()
	b.hash.ToggleSideToMove()
}

func (b *ChessBoard) clearCastleRight(c square.Color, kingside bool) {
	right := &b.shortCastleRight[ci(c)]
	if !kingside {
		right = &b.longCastleRight[ci(c)]
	}
	if *right {
		*right = false
		b.hash.ToggleCastleRight(c, kingside)
	}
}

func castleLegFor(c square.Color, kingTo square.Square) castleInfo {
	legs := castleTable[c]
	if legs[0].KingTo == kingTo {
		return legs[0]
	}
	return legs[1]
}

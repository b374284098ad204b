package board

import (
	"testing"

	"github.com/brannoch/wyvern/square"
)

func TestStartingPositionHasTwentyMoves(t *testing.T) {
	t.Parallel()
	b, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	moves := b.GenerateMoves()
	if len(moves) != 20 {
		t.Errorf("len(moves) = %d, want 20", len(moves))
	}
	if b.IsCheck(square.White) || b.IsCheckmate(square.White) || b.IsStalemate() {
		t.Error("starting position incorrectly flagged as check, checkmate, or stalemate")
	}
}

func findMove(moves []Turn, from, to string) (Turn, bool) {
	f := mustSquare(from)
	toS := mustSquare(to)
	for _, m := range moves {
		if m.From == f && m.To == toS {
			return m, true
		}
	}
	return Turn{}, false
}

func TestFoolsMateEndsInCheckmate(t *testing.T) {
	t.Parallel()
	b, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	apply := func(from, to string) {
		moves := b.GenerateMoves()
		m, ok := findMove(moves, from, to)
		if !ok {
			t.Fatalf("move %s%s not found among legal moves", from, to)
		}
		b.Apply(m)
	}
	apply("f2", "f3")
	apply("e7", "e5")
	apply("g2", "g4")

	moves := b.GenerateMoves()
	m, ok := findMove(moves, "d8", "h4")
	if !ok {
		t.Fatal("Qh4# not found among legal moves")
	}
	b.Apply(m)

	finalMoves := b.GenerateMoves()
	if !b.IsCheckmate(square.White) {
		t.Error("White is not flagged as checkmated after fool's mate")
	}
	if len(finalMoves) != 0 {
		t.Errorf("len(moves) = %d after checkmate, want 0", len(finalMoves))
	}
}

func TestCastlingThroughCheckForbidden(t *testing.T) {
	t.Parallel()
	// White king e1, rook h1, kingside rights intact; a black rook on
	// f8 sweeps the f-file and attacks f1, the square the king must
	// pass through to reach g1.
	b, err := New(WithFEN("5r1k/8/8/8/8/8/8/4K2R w K - 0 1"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	moves := b.GenerateMoves()
	if _, ok := findMove(moves, "e1", "g1"); ok {
		t.Error("O-O allowed while the king's path is attacked")
	}
}

func TestEnPassantCapture(t *testing.T) {
	t.Parallel()
	b, err := New(WithFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	moves := b.GenerateMoves()
	m, ok := findMove(moves, "e5", "d6")
	if !ok {
		t.Fatal("en-passant capture e5xd6 not found among legal moves")
	}
	b.Apply(m)
	if !b.cells[mustSquare("d5")].IsEmpty() {
		t.Error("captured pawn still on d5 after en-passant capture")
	}
	if p := b.cells[mustSquare("d6")]; p.IsEmpty() || p.Type != square.Pawn || p.Color != square.White {
		t.Error("capturing pawn not relocated to d6")
	}
}

func TestPromotionExpandsToFourMoves(t *testing.T) {
	t.Parallel()
	b, err := New(WithFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	moves := b.GenerateMoves()
	var promos []Turn
	for _, m := range moves {
		if m.From == mustSquare("a7") {
			promos = append(promos, m)
		}
	}
	if len(promos) != 4 {
		t.Fatalf("len(promotion moves) = %d, want 4", len(promos))
	}
	wantOrder := []square.PieceType{square.Queen, square.Bishop, square.Rook, square.Knight}
	for i, m := range promos {
		pt, ok := m.Action.PromotionType()
		if !ok {
			t.Fatalf("move %d has no promotion type", i)
		}
		if pt != wantOrder[i] {
			t.Errorf("promotion %d = %s, want %s", i, pt, wantOrder[i])
		}
	}
}

func TestDoubleCheckOnlyAllowsKingMoves(t *testing.T) {
	t.Parallel()
	// White king on e1; a black rook on e8 gives check along the
	// open e-file and a black bishop on h4 simultaneously checks along
	// the open e1-h4 diagonal.
	b, err := New(WithFEN("4r3/8/8/8/7b/8/8/4K3 w - - 0 1"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	moves := b.GenerateMoves()
	if !b.IsCheck(square.White) {
		t.Fatal("expected White to be in check")
	}
	for _, m := range moves {
		if m.Piece.Type != square.King {
			t.Errorf("non-king move %s generated while in double check", m)
		}
	}
}

func TestCastleDestinationSquareCountsAsAttacked(t *testing.T) {
	t.Parallel()
	// Black holds kingside castling rights with f8/g8 empty; g8 is a
	// square Black's own castling move could land the king on, and that
	// must count as Black-controlled for White's own king safety even
	// though nothing else on the board attacks g8.
	b, err := New(WithFEN("4k3/5K2/8/8/8/8/8/8 w k - 0 1"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	moves := b.GenerateMoves()
	if _, ok := findMove(moves, "f7", "g8"); ok {
		t.Error("Kf7-g8 allowed onto a square Black's own castling move could land on")
	}
	if _, ok := findMove(moves, "f7", "g7"); !ok {
		t.Error("Kf7-g7 should remain legal; g7 is not attacked by anything on this board")
	}
}

func TestFiftyMoveRuleTriggersAtLimitAndResetsOnPawnMove(t *testing.T) {
	t.Parallel()
	b, err := New(WithFEN("8/7k/8/8/8/8/7K/8 w - - 99 30"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Apply(Turn{Piece: square.Piece{Color: square.White, Type: square.King}, From: mustSquare("h2"), To: mustSquare("h3"), Action: ActionMove})
	if !b.IsDrawByFiftyMoveRule() {
		t.Error("expected fifty-move rule to trigger at half-move clock 100")
	}

	b2, err := New(WithFEN("8/7k/8/8/8/8/P6K/8 w - - 49 30"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b2.Apply(Turn{Piece: square.Piece{Color: square.White, Type: square.Pawn}, From: mustSquare("a2"), To: mustSquare("a3"), Action: ActionMove})
	if b2.IsDrawByFiftyMoveRule() {
		t.Error("pawn move should reset the half-move clock")
	}
	if b2.HalfMoveClock() != 0 {
		t.Errorf("HalfMoveClock() = %d after a pawn move, want 0", b2.HalfMoveClock())
	}
}

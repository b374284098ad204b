package engine

import (
	"testing"

	"github.com/brannoch/wyvern/board"
	"github.com/brannoch/wyvern/square"
)

func TestTranspositionTableRoundTrip(t *testing.T) {
	t.Parallel()
	tt := NewTranspositionTable(1 << 10)
	mv := board.Turn{Piece: square.Piece{Color: square.White, Type: square.Pawn}, From: 12, To: 20, Action: board.ActionMove}
	tt.Set(0xABCD, mv, 42, 3, BoundExact)

	got, score, depth, bound, ok := tt.Get(0xABCD)
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if got != mv || score != 42 || depth != 3 || bound != BoundExact {
		t.Errorf("Get = (%v, %d, %d, %s), want (%v, 42, 3, exact)", got, score, depth, bound, mv)
	}
}

func TestTranspositionTableMissOnHashCollision(t *testing.T) {
	t.Parallel()
	tt := NewTranspositionTable(1 << 4) // tiny table forces same-slot collisions
	mv := board.Turn{Piece: square.Piece{Color: square.White, Type: square.Queen}, From: 0, To: 7, Action: board.ActionMove}
	tt.Set(1, mv, 10, 1, BoundExact)

	// Hash 1 and 1+16 collide on the same slot in a 16-entry table but
	// are different positions; the slot's own hash must disambiguate.
	if _, _, _, _, ok := tt.Get(17); ok {
		t.Error("Get reported a hit for a colliding-but-different hash")
	}
}

func TestTranspositionTableAlwaysReplace(t *testing.T) {
	t.Parallel()
	tt := NewTranspositionTable(1 << 4)
	mv := board.Turn{Piece: square.Piece{Color: square.White, Type: square.Knight}, From: 1, To: 18, Action: board.ActionMove}

	// A deep, exact entry...
	tt.Set(5, mv, 100, 10, BoundExact)
	// ...is unconditionally overwritten by a shallower write to the same
	// hash, regardless of depth or bound kind: there is no age/depth
	// comparison gating the write.
	tt.Set(5, mv, -5, 1, BoundUpperBound)

	_, score, depth, bound, ok := tt.Get(5)
	if !ok || score != -5 || depth != 1 || bound != BoundUpperBound {
		t.Errorf("Get = (score=%d, depth=%d, bound=%s, ok=%v), want the shallow overwrite to have won", score, depth, bound, ok)
	}
}

func TestTranspositionTableClear(t *testing.T) {
	t.Parallel()
	tt := NewTranspositionTable(1 << 4)
	mv := board.Turn{Action: board.ActionMove}
	tt.Set(9, mv, 1, 1, BoundExact)
	tt.Clear()
	if _, _, _, _, ok := tt.Get(9); ok {
		t.Error("expected a miss after Clear")
	}
}

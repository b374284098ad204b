package engine

import (
	"testing"

	"github.com/brannoch/wyvern/board"
	"github.com/brannoch/wyvern/game"
)

// backRankMateFEN has a single legal reply that mates immediately:
// Ra1-a8, with Black's own f7/g7/h7 pawns sealing the king's escape.
const backRankMateFEN = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"

func TestSearchFindsForcedMateInOne(t *testing.T) {
	t.Parallel()
	gs, err := game.FromFEN(backRankMateFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	n := NewNegamax()
	result := n.Search(gs, 2)
	if !result.Found {
		t.Fatal("search did not find a move")
	}
	if result.Move.String() != "a1a8" {
		t.Errorf("Move = %s, want a1a8", result.Move)
	}
	after := gs.Apply(result.Move)
	if !after.IsGameOver() {
		t.Fatal("expected the returned move to be checkmate")
	}
}

func TestFeatureTogglesDoNotChangeUniqueBestMove(t *testing.T) {
	t.Parallel()
	gs, err := game.FromFEN(backRankMateFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	combos := []struct {
		name                                              string
		alphaBeta, moveOrdering, transpositionTableInUse bool
	}{
		{"all on", true, true, true},
		{"no alpha-beta", false, true, true},
		{"no move ordering", true, false, true},
		{"no transposition table", true, true, false},
		{"everything off", false, false, false},
	}

	for _, c := range combos {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			n := NewNegamax()
			n.UseAlphaBeta = c.alphaBeta
			n.UseMoveOrdering = c.moveOrdering
			n.UseTranspositionTable = c.transpositionTableInUse
			result := n.Search(gs, 2)
			if !result.Found {
				t.Fatal("search did not find a move")
			}
			if result.Move.String() != "a1a8" {
				t.Errorf("Move = %s, want a1a8 regardless of feature toggles", result.Move)
			}
		})
	}
}

func TestAbortBeforeSearchReportsNotFound(t *testing.T) {
	t.Parallel()
	gs := game.New()
	n := NewNegamax()
	n.Abort()
	result := n.Search(gs, 3)
	if result.Found {
		t.Error("expected Found=false when Abort fired before Search produced a root move")
	}
}

func TestChildEstimatePrefersTranspositionTableScoreOverStatic(t *testing.T) {
	t.Parallel()
	gs, err := game.FromFEN(backRankMateFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	n := NewNegamax()
	n.tt.Set(gs.Hash(), board.Turn{}, 1234, 5, BoundExact)
	if got := n.childEstimate(gs, 0); got != 1234 {
		t.Errorf("childEstimate = %d, want the primed transposition table score 1234", got)
	}

	n.UseTranspositionTable = false
	if got := n.childEstimate(gs, 0); got == 1234 {
		t.Error("childEstimate used the transposition table score while UseTranspositionTable is false")
	}
}

func TestClearTableDropsEntries(t *testing.T) {
	t.Parallel()
	gs, err := game.FromFEN(backRankMateFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	n := NewNegamax()
	n.Search(gs, 2)
	if _, _, _, _, ok := n.tt.Get(gs.Hash()); !ok {
		t.Fatal("expected the root position to be cached after Search")
	}
	n.ClearTable()
	if _, _, _, _, ok := n.tt.Get(gs.Hash()); ok {
		t.Error("expected ClearTable to drop the cached entry")
	}
}

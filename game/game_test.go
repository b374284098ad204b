package game

import (
	"testing"

	"github.com/brannoch/wyvern/board"
	"github.com/brannoch/wyvern/square"
)

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()
	gs := New()
	before := gs.ToFEN()
	moves := gs.Moves()
	if len(moves) == 0 {
		t.Fatal("starting position has no legal moves")
	}
	_ = gs.Apply(moves[0])
	if gs.ToFEN() != before {
		t.Errorf("Apply mutated the receiver: FEN changed from %q to %q", before, gs.ToFEN())
	}
}

func TestFoolsMateIsGameOverWithBlackWinner(t *testing.T) {
	t.Parallel()
	gs := New()
	play := func(from, to string) {
		var found board.Turn
		ok := false
		for _, m := range gs.Moves() {
			if m.From.String() == from && m.To.String() == to {
				found, ok = m, true
				break
			}
		}
		if !ok {
			t.Fatalf("move %s%s not legal", from, to)
		}
		gs = gs.Apply(found)
	}
	play("f2", "f3")
	play("e7", "e5")
	play("g2", "g4")
	play("d8", "h4")

	if !gs.IsGameOver() {
		t.Fatal("expected game over after fool's mate")
	}
	if gs.Winner() != square.Black {
		t.Errorf("Winner() = %s, want black", gs.Winner())
	}
	if gs.Score(0) != LoseScore {
		t.Errorf("Score(0) = %d, want %d", gs.Score(0), LoseScore)
	}
}

func TestFiftyMoveRuleReportedAsGameOver(t *testing.T) {
	t.Parallel()
	gs, err := FromFEN("7k/8/8/8/8/8/7K/8 w - - 100 60")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if !gs.IsDrawByFiftyMoveRule() {
		t.Fatal("expected fifty-move rule to be in effect")
	}
	if !gs.IsGameOver() {
		t.Error("expected IsGameOver() to report true under the fifty-move rule")
	}
	if gs.Winner() != square.NoPlayer {
		t.Errorf("Winner() = %s, want NoPlayer on a fifty-move draw", gs.Winner())
	}
}

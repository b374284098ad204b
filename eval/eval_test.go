package eval

import (
	"testing"

	"github.com/brannoch/wyvern/square"
)

func TestPlaceRemoveIsInverse(t *testing.T) {
	t.Parallel()
	var e Evaluator
	e.Place(square.White, square.Queen, 28)
	e.Place(square.Black, square.Knight, 45)
	e.Remove(square.White, square.Queen, 28)
	e.Remove(square.Black, square.Knight, 45)
	if e.ScoreFor(square.White) != 0 {
		t.Errorf("score = %d after placing and removing the same pieces, want 0", e.ScoreFor(square.White))
	}
}

func TestScoreForSymmetry(t *testing.T) {
	t.Parallel()
	var e Evaluator
	e.Place(square.White, square.Pawn, 12)
	white := e.ScoreFor(square.White)
	black := e.ScoreFor(square.Black)
	if white != -black {
		t.Errorf("ScoreFor(White)=%d, ScoreFor(Black)=%d; want negatives of each other", white, black)
	}
}

func TestOnMoveMatchesRemovePlace(t *testing.T) {
	t.Parallel()
	var viaOnMove, viaPrimitives Evaluator
	from, to := square.Square(8), square.Square(24)

	viaOnMove.OnMove(square.White, square.Knight, from, to)

	viaPrimitives.Remove(square.White, square.Knight, from)
	viaPrimitives.Place(square.White, square.Knight, to)

	if viaOnMove.ScoreFor(square.White) != viaPrimitives.ScoreFor(square.White) {
		t.Errorf("OnMove and Remove+Place diverge: %d != %d",
			viaOnMove.ScoreFor(square.White), viaPrimitives.ScoreFor(square.White))
	}
}

func TestOnPromotionAddsMaterialDelta(t *testing.T) {
	t.Parallel()
	var e Evaluator
	from, to := square.Square(48), square.Square(56) // a7 -> a8
	e.OnPromotion(square.White, from, to, square.Queen)
	want := materialValue[square.Queen] - materialValue[square.Pawn] +
		pstValue(square.White, square.Queen, to) - pstValue(square.White, square.Pawn, from)
	if got := e.ScoreFor(square.White); got != want {
		t.Errorf("ScoreFor(White) = %d, want %d", got, want)
	}
}

func TestBackRankKingBonusMatchesOwnSide(t *testing.T) {
	t.Parallel()
	// g1 and g8 are mirror images of each other's castled corner; each
	// color should see the same bonus on its own back rank.
	g1, _ := square.ParseSquare("g1")
	g8, _ := square.ParseSquare("g8")
	white := pstValue(square.White, square.King, g1)
	black := pstValue(square.Black, square.King, g8)
	if white != black {
		t.Errorf("White king on g1 scores %d, Black king on g8 scores %d; want equal", white, black)
	}
}

package bitboard

import (
	"testing"

	"github.com/brannoch/wyvern/square"
)

func TestRayDoesNotWrap(t *testing.T) {
	t.Parallel()
	// A rook on h4 has an empty east ray: file H is the board edge.
	h4, _ := square.ParseSquare("h4")
	if got := RayE(h4); got != 0 {
		t.Errorf("RayE(h4) = %#x, want 0", uint64(got))
	}
	a4, _ := square.ParseSquare("a4")
	if got := RayW(a4); got != 0 {
		t.Errorf("RayW(a4) = %#x, want 0", uint64(got))
	}
}

func TestRayReachesEdge(t *testing.T) {
	t.Parallel()
	e1, _ := square.ParseSquare("e1")
	ray := RayN(e1)
	for _, rank := range []string{"e2", "e3", "e4", "e5", "e6", "e7", "e8"} {
		s, _ := square.ParseSquare(rank)
		if !ray.Test(s) {
			t.Errorf("RayN(e1) missing %s", rank)
		}
	}
	if ray.Count() != 7 {
		t.Errorf("RayN(e1) has %d squares, want 7", ray.Count())
	}
}

func TestSlideStopsAtBlocker(t *testing.T) {
	t.Parallel()
	e1, _ := square.ParseSquare("e1")
	e4, _ := square.ParseSquare("e4")
	occupied := Bitboard(0).With(e4)
	attacks := Slide(e1, N, occupied)
	for _, sq := range []string{"e2", "e3", "e4"} {
		s, _ := square.ParseSquare(sq)
		if !attacks.Test(s) {
			t.Errorf("Slide(e1, N) missing %s", sq)
		}
	}
	e5, _ := square.ParseSquare("e5")
	if attacks.Test(e5) {
		t.Error("Slide(e1, N) should stop at the first blocker, not pass through it")
	}
}

func TestScanLSBAndMSB(t *testing.T) {
	t.Parallel()
	a1, _ := square.ParseSquare("a1")
	h8, _ := square.ParseSquare("h8")
	bb := Bitboard(0).With(a1).With(h8)
	if got := bb.ScanLSB(); got != a1 {
		t.Errorf("ScanLSB() = %d, want %d", got, a1)
	}
	if got := bb.ScanMSB(); got != h8 {
		t.Errorf("ScanMSB() = %d, want %d", got, h8)
	}
}

func TestPopLSB(t *testing.T) {
	t.Parallel()
	a1, _ := square.ParseSquare("a1")
	b1, _ := square.ParseSquare("b1")
	bb := Bitboard(0).With(a1).With(b1)
	first := bb.PopLSB()
	if first != a1 {
		t.Errorf("first pop = %d, want %d", first, a1)
	}
	second := bb.PopLSB()
	if second != b1 {
		t.Errorf("second pop = %d, want %d", second, b1)
	}
	if bb != 0 {
		t.Errorf("bitboard not empty after popping all members: %#x", uint64(bb))
	}
}

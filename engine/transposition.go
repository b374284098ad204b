// Package engine implements the negamax search and its transposition
// table over the board and game packages.
package engine

import (
	"math/bits"

	"github.com/brannoch/wyvern/board"
)

// BoundKind classifies a stored score against the alpha-beta window it
// was produced under.
type BoundKind uint8

const (
	BoundUnknown BoundKind = iota
	BoundExact
	BoundLowerBound
	BoundUpperBound
)

func (k BoundKind) String() string {
	switch k {
	case BoundExact:
		return "exact"
	case BoundLowerBound:
		return "lower"
	case BoundUpperBound:
		return "upper"
	default:
		return "unknown"
	}
}

// DefaultTableSize is the recommended transposition table entry count.
const DefaultTableSize = 1 << 20

type ttEntry struct {
	hash  uint64
	move  board.Turn
	score int32
	depth int
	bound BoundKind
	valid bool
}

// TranspositionTable is a fixed-size, direct-mapped table with an
// always-replace policy: a write at a hash's slot overwrites whatever
// was there, regardless of the incumbent's depth or age. There is no
// eviction metadata and no chaining; callers that want a deterministic
// fresh run call Clear between unrelated searches.
type TranspositionTable struct {
	entries []ttEntry
	mask    uint64
}

// NewTranspositionTable allocates a table with at least size entries,
// rounded up to the next power of two so the index can be computed with
// a mask instead of a modulo.
func NewTranspositionTable(size uint64) *TranspositionTable {
	if size == 0 {
		size = DefaultTableSize
	}
	size = nextPowerOfTwo(size)
	return &TranspositionTable{
		entries: make([]ttEntry, size),
		mask:    size - 1,
	}
}

func nextPowerOfTwo(n uint64) uint64 {
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len64(n)
}

func (t *TranspositionTable) index(hash uint64) uint64 { return hash & t.mask }

// Get looks up hash, returning the stored entry only when the slot's
// own hash matches exactly; a different position that happens to share
// the slot is reported as a miss, not as stale data.
func (t *TranspositionTable) Get(hash uint64) (move board.Turn, score int32, depth int, bound BoundKind, ok bool) {
	e := t.entries[t.index(hash)]
	if !e.valid || e.hash != hash {
		return board.Turn{}, 0, 0, BoundUnknown, false
	}
	return e.move, e.score, e.depth, e.bound, true
}

// Set stores (or unconditionally overwrites) the entry at hash's slot.
func (t *TranspositionTable) Set(hash uint64, move board.Turn, score int32, depth int, bound BoundKind) {
	t.entries[t.index(hash)] = ttEntry{
		hash:  hash,
		move:  move,
		score: score,
		depth: depth,
		bound: bound,
		valid: true,
	}
}

// Clear resets every slot, for a deterministic fresh run.
func (t *TranspositionTable) Clear() {
	for i := range t.entries {
		t.entries[i] = ttEntry{}
	}
}

// Len returns the table's entry count.
func (t *TranspositionTable) Len() int { return len(t.entries) }

package engine

import (
	"fmt"
	"sort"
	"sync/atomic"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/brannoch/wyvern/board"
	"github.com/brannoch/wyvern/game"
)

// infinity bounds the alpha-beta window; it is kept well clear of
// game.WinScore/game.LoseScore so depth-adjusted terminal scores never
// collide with it.
const infinity = game.Score(1 << 30)

// ttMoveOrderingBonus pushes a transposition table's stored move to the
// front of the ordering pass regardless of its shallow-estimate score.
const ttMoveOrderingBonus = game.Score(10_000_000)

// Result is the outcome of a Search call.
type Result struct {
	Score game.Score
	Move  board.Turn
	Found bool
}

// NegamaxOption configures a Negamax at construction.
type NegamaxOption func(*Negamax)

// WithTableSize overrides the transposition table's entry count.
func WithTableSize(size uint64) NegamaxOption {
	return func(n *Negamax) { n.tt = NewTranspositionTable(size) }
}

// WithLogger installs a diagnostic sink that receives one line per
// completed Search. A nil logger (the
// zero value) disables logging.
func WithLogger(logger func(...any)) NegamaxOption {
	return func(n *Negamax) { n.logger = logger }
}

// DefaultLogger writes one line per completed Search call to stdout,
// with thousands separators on the node count.
func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// Negamax is a single-threaded negamax searcher with alpha-beta pruning,
// move ordering, and a transposition table. Each is independently
// switchable: per the search contract, toggling any of them must never
// change the move chosen when a position has a unique best move, only
// how much work it takes to find it.
type Negamax struct {
	tt     *TranspositionTable
	logger func(...any)

	UseAlphaBeta          bool
	UseMoveOrdering       bool
	UseTranspositionTable bool

	aborted atomic.Bool
	nodes   uint64
}

// NewNegamax builds a Negamax with every feature enabled and a
// default-sized transposition table, then applies opts.
func NewNegamax(opts ...NegamaxOption) *Negamax {
	n := &Negamax{
		tt:                    NewTranspositionTable(DefaultTableSize),
		UseAlphaBeta:          true,
		UseMoveOrdering:       true,
		UseTranspositionTable: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Abort signals the running (or next) Search to unwind at its next
// recursion entry. Safe to call from another goroutine; it is the only
// form of cancellation this searcher supports.
func (n *Negamax) Abort() { n.aborted.Store(true) }

// Nodes returns the number of positions visited during the most recent
// Search.
func (n *Negamax) Nodes() uint64 { return n.nodes }

// ClearTable discards every transposition table entry. Callers that want
// a deterministic run unaffected by an earlier, unrelated search should
// call this first; the table itself never evicts or ages entries on its
// own.
func (n *Negamax) ClearTable() { n.tt.Clear() }

// Search finds the best move for gs's side to move, searching depth
// plies. Found is false only when Abort fired before a root move could
// be produced; callers must not read Score or Move in that case. Once
// Abort has fired, every subsequent Search on this instance returns
// Found=false immediately: the abort flag is scoped to the Negamax's
// lifetime, not to a single call, so construct a fresh instance (NewNegamax)
// for the next independent search.
func (n *Negamax) Search(gs game.GameState, depth int) Result {
	n.nodes = 0
	score, move, ok := n.negamax(gs, depth, -infinity, infinity, 0)
	if !ok {
		return Result{}
	}
	if n.logger != nil {
		n.logger(message.NewPrinter(language.English).
			Sprintf("depth:%d score:%d nodes:%d move:%s", depth, score, n.nodes, move))
	}
	return Result{Score: score, Move: move, Found: true}
}

func (n *Negamax) negamax(gs game.GameState, depth int, alpha, beta game.Score, ply int) (game.Score, board.Turn, bool) {
	if n.aborted.Load() {
		return 0, board.Turn{}, false
	}
	n.nodes++

	if depth <= 0 || gs.IsGameOver() {
		return gs.Score(ply), board.Turn{}, true
	}

	hash := gs.Hash()
	initialAlpha := alpha
	var ttMove board.Turn
	hasTTMove := false

	if n.UseTranspositionTable {
		if move, score, entryDepth, bound, ok := n.tt.Get(hash); ok {
			ttMove, hasTTMove = move, true
			if entryDepth >= depth {
				switch bound {
				case BoundExact:
					return score, move, true
				case BoundLowerBound:
					alpha = max(alpha, score)
				case BoundUpperBound:
					beta = min(beta, score)
				}
				if alpha >= beta {
					return score, move, true
				}
			}
		}
	}

	moves := gs.Moves()
	children := make([]game.GameState, len(moves))
	for i, m := range moves {
		children[i] = gs.Apply(m)
	}
	if n.UseMoveOrdering {
		n.orderMoves(moves, children, ttMove, hasTTMove, ply)
	}

	bestScore := -infinity
	var bestMove board.Turn
	for i, m := range moves {
		score, _, ok := n.negamax(children[i], depth-1, -beta, -alpha, ply+1)
		if !ok {
			return 0, board.Turn{}, false
		}
		score = -score
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if n.UseAlphaBeta {
			alpha = max(alpha, score)
			if alpha >= beta {
				break
			}
		}
	}

	if n.UseTranspositionTable {
		var bound BoundKind
		switch {
		case bestScore <= initialAlpha:
			bound = BoundUpperBound
		case bestScore >= beta:
			bound = BoundLowerBound
		default:
			bound = BoundExact
		}
		n.tt.Set(hash, bestMove, bestScore, depth, bound)
	}

	return bestScore, bestMove, true
}

// orderMoves sorts moves (and children in lockstep) by a shallow score
// estimate: the negation of a child's transposition-table score when the
// table already holds one for that position, falling back to the
// negation of the child's own static score otherwise, so captures and
// advantageous trades tend to be examined first. A transposition table
// move for the *current* node, if present, is additionally forced to the
// front regardless of its estimate.
func (n *Negamax) orderMoves(moves []board.Turn, children []game.GameState, ttMove board.Turn, hasTTMove bool, ply int) {
	estimate := make([]game.Score, len(moves))
	idx := make([]int, len(moves))
	for i := range moves {
		idx[i] = i
		estimate[i] = -n.childEstimate(children[i], ply+1)
		if hasTTMove && moves[i] == ttMove {
			estimate[i] += ttMoveOrderingBonus
		}
	}
	sort.Slice(idx, func(a, b int) bool { return estimate[idx[a]] > estimate[idx[b]] })

	orderedMoves := make([]board.Turn, len(moves))
	orderedChildren := make([]game.GameState, len(children))
	for i, j := range idx {
		orderedMoves[i] = moves[j]
		orderedChildren[i] = children[j]
	}
	copy(moves, orderedMoves)
	copy(children, orderedChildren)
}

// childEstimate returns the score used to order a single child position:
// its own transposition table entry's stored score, if the table already
// holds one, otherwise the position's static score. Probing is skipped
// entirely when the transposition table feature is toggled off, so
// disabling it cannot change ordering via a side channel.
func (n *Negamax) childEstimate(child game.GameState, ply int) game.Score {
	if n.UseTranspositionTable {
		if _, score, _, _, ok := n.tt.Get(child.Hash()); ok {
			return score
		}
	}
	return child.Score(ply)
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

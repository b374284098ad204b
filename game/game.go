// Package game wraps board.ChessBoard with a value-semantic facade: an
// Apply returns a new GameState rather than mutating the receiver,
// matching the external interface a GUI or search driver consumes.
package game

import (
	"github.com/brannoch/wyvern/board"
	"github.com/brannoch/wyvern/square"
)

// Score is an evaluation in centipawns (or WinScore/LoseScore for a
// terminal position), relative to the side it's computed for.
type Score = int32

// WinScore and LoseScore bound the search's terminal-position range so
// that actual evaluator scores never collide with a forced result.
const (
	WinScore  Score = 1_000_000
	LoseScore Score = -1_000_000
)

// GameState is an immutable snapshot of a chess position.
type GameState struct {
	b *board.ChessBoard
}

// FromFEN builds a GameState from Forsyth-Edwards Notation.
func FromFEN(fen string) (GameState, error) {
	b, err := board.New(board.WithFEN(fen))
	if err != nil {
		return GameState{}, err
	}
	return GameState{b: b}, nil
}

// New returns the standard starting position.
func New() GameState {
	b, _ := board.New()
	return GameState{b: b}
}

// ToFEN serializes the position back to Forsyth-Edwards Notation.
func (gs GameState) ToFEN() string { return gs.b.ToFEN() }

// Moves returns every legal move for the side to move.
func (gs GameState) Moves() []board.Turn { return gs.b.GenerateMoves() }

// Apply returns a new GameState with t performed; gs itself is
// unmodified.
func (gs GameState) Apply(t board.Turn) GameState {
	cp := gs.b.Clone()
	cp.Apply(t)
	return GameState{b: cp}
}

// NextPlayer returns the side to move.
func (gs GameState) NextPlayer() square.Color { return gs.b.NextPlayer() }

// IsDrawByFiftyMoveRule reports the fifty-move-rule draw condition.
func (gs GameState) IsDrawByFiftyMoveRule() bool { return gs.b.IsDrawByFiftyMoveRule() }

// IsGameOver reports whether either side is checkmated, the position is
// stalemate, or the fifty-move rule has triggered. Move generation is
// run on every call, so the check/mate flags always describe this
// position.
func (gs GameState) IsGameOver() bool {
	gs.b.GenerateMoves()
	return gs.b.IsCheckmate(square.White) || gs.b.IsCheckmate(square.Black) ||
		gs.b.IsStalemate() || gs.b.IsDrawByFiftyMoveRule()
}

// Winner returns the opponent of the checkmated side, or square.NoPlayer
// if the game is undecided or drawn.
func (gs GameState) Winner() square.Color {
	gs.b.GenerateMoves()
	if gs.b.IsCheckmate(square.White) {
		return square.Black
	}
	if gs.b.IsCheckmate(square.Black) {
		return square.White
	}
	return square.NoPlayer
}

// Score returns the position's value relative to the side to move.
// depth is how many plies deep in a search this position sits, used to
// prefer faster mates and slower losses: a checkmate against the side
// to move scores LoseScore+depth rather than a flat LoseScore.
func (gs GameState) Score(depth int) Score {
	gs.b.GenerateMoves()
	us := gs.b.NextPlayer()
	if gs.b.IsCheckmate(us) {
		return LoseScore + Score(depth)
	}
	if gs.b.IsStalemate() || gs.b.IsDrawByFiftyMoveRule() {
		return 0
	}
	return gs.b.ScoreFor(us)
}

// Hash returns the Zobrist hash of the current position.
func (gs GameState) Hash() uint64 { return gs.b.Hash() }

// Draw renders the position for console debugging.
func (gs GameState) Draw() string { return gs.b.Draw() }

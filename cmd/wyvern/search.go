package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brannoch/wyvern/board"
	"github.com/brannoch/wyvern/engine"
	"github.com/brannoch/wyvern/game"
	"github.com/brannoch/wyvern/square"
)

// search self-plays from fen: the negamax engine plays White against a
// random mover playing Black, for up to maxMoves half-moves.
func search(fen string, depth, maxMoves int) error {
	gs, err := game.FromFEN(fen)
	if err != nil {
		return err
	}
	fmt.Println(gs.Draw())
	fmt.Println(gs.ToFEN())

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	n := engine.NewNegamax(engine.WithLogger(engine.DefaultLogger))
	var history []board.Turn

	for ply := 0; ply < maxMoves; ply++ {
		if gs.IsGameOver() {
			break
		}
		var mv board.Turn
		if gs.NextPlayer() == square.White {
			result := n.Search(gs, depth)
			if !result.Found {
				return fmt.Errorf("search aborted with no move found")
			}
			mv = result.Move
		} else {
			moves := gs.Moves()
			mv = moves[rng.Intn(len(moves))]
		}

		gs = gs.Apply(mv)
		history = append(history, mv)
		fmt.Printf("\n>>> %d. %s\n", ply/2+1, mv)
		fmt.Println(gs.Draw())
		fmt.Println(gs.ToFEN())
	}

	fmt.Println()
	switch gs.Winner() {
	case square.White, square.Black:
		fmt.Println(gs.Winner(), "wins")
	default:
		fmt.Println("drawn or unfinished")
	}
	dumpHistory(history)
	return nil
}

func dumpHistory(mvs []board.Turn) {
	for i, mv := range mvs {
		if i%2 == 0 {
			fmt.Printf("%d.", i/2+1)
		}
		fmt.Printf("%s ", mv)
	}
	fmt.Println()
}

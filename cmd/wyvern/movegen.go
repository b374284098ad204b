package main

import (
	"fmt"

	"github.com/brannoch/wyvern/board"
)

func movegen(fen string) error {
	b, err := board.New(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println(b.Draw())
	fmt.Println(b.ToFEN())
	fmt.Println("to move:", b.NextPlayer())

	moves := b.GenerateMoves()
	for i, mv := range moves {
		fmt.Printf("%3d: %-8s %-6s %s %s -> %s\n", i+1, mv.UCI(), mv.Action, mv.Piece, mv.From, mv.To)
	}
	fmt.Println(len(moves), "legal moves")
	if b.IsCheckmate(b.NextPlayer()) {
		fmt.Println("checkmate")
	} else if b.IsStalemate() {
		fmt.Println("stalemate")
	} else if b.IsCheck(b.NextPlayer()) {
		fmt.Println("check")
	}
	return nil
}

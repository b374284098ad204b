package main

import (
	"fmt"

	"github.com/brannoch/wyvern/bench"
)

func perft(fen string, depth int, parallel bool) error {
	run := bench.Perft
	if parallel {
		run = bench.PerftParallel
	}
	for d := 1; d <= depth; d++ {
		s, elapsed, err := run(fen, d)
		if err != nil {
			return err
		}
		fmt.Println(bench.Report(d, s, elapsed))
	}
	return nil
}

// Command verify stress-tests the generator and solver together. It
// shuffles boards across a range of grid sizes, checks every generator
// invariant (valid permutation, solvable, not already solved), solves
// each board, and prints solution length statistics per size.
//
// Useful after touching the generator or solver:
//
//	go run ./cmd/verify -sizes 3,4,5 -count 200
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/dmateus/slidepuzzle/game/engine"
)

func main() {
	sizesFlag := flag.String("sizes", "3,4,5", "comma-separated grid sizes to verify")
	count := flag.Int("count", 100, "boards per size")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		log.Fatalf("invalid -sizes: %v", err)
	}

	failures := 0
	for _, size := range sizes {
		stats, failed := verifySize(size, *count)
		failures += failed
		fmt.Printf("%dx%d: %d boards, solution length min=%d avg=%.1f max=%d, failures=%d\n",
			size, size, *count, stats.min, stats.avg, stats.max, failed)
	}

	if failures > 0 {
		log.Fatalf("%d boards failed verification", failures)
	}
	fmt.Println("All boards verified.")
}

type lengthStats struct {
	min, max int
	avg      float64
}

// verifySize shuffles and solves count boards of one size, returning
// solution length stats and the number of failed boards.
func verifySize(size, count int) (lengthStats, int) {
	stats := lengthStats{min: -1}
	failed := 0
	total := 0

	for i := 0; i < count; i++ {
		board, err := engine.Generate(size)
		if err != nil {
			log.Printf("%dx%d board %d: generate failed: %v", size, size, i, err)
			failed++
			continue
		}
		if err := verifyBoard(board); err != nil {
			log.Printf("%dx%d board %d: %v\n%s", size, size, i, err, board)
			failed++
			continue
		}

		moves := engine.Solve(board)
		if moves == nil {
			log.Printf("%dx%d board %d: solver returned no solution\n%s", size, size, i, board)
			failed++
			continue
		}
		if err := replaySolution(board, moves); err != nil {
			log.Printf("%dx%d board %d: %v\n%s", size, size, i, err, board)
			failed++
			continue
		}

		length := len(moves)
		total += length
		if stats.min == -1 || length < stats.min {
			stats.min = length
		}
		if length > stats.max {
			stats.max = length
		}
	}

	solved := count - failed
	if solved > 0 {
		stats.avg = float64(total) / float64(solved)
	}
	if stats.min == -1 {
		stats.min = 0
	}
	return stats, failed
}

// verifyBoard checks the generator invariants on a fresh board.
func verifyBoard(b *engine.Board) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}
	if b.IsSolved() {
		return fmt.Errorf("generator produced a solved board")
	}
	if !engine.IsSolvable(b) {
		return fmt.Errorf("generator produced an unsolvable board")
	}
	return nil
}

// replaySolution applies the move list to a copy and checks it ends solved.
func replaySolution(b *engine.Board, moves []engine.Direction) error {
	replay := b.Clone()
	for i, d := range moves {
		if !replay.Apply(d) {
			return fmt.Errorf("solution move %d (%s) is illegal", i, d)
		}
	}
	if !replay.IsSolved() {
		return fmt.Errorf("solution of %d moves does not solve the board", len(moves))
	}
	return nil
}

func parseSizes(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		size, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if size < engine.MinBoardSize || size > engine.MaxBoardSize {
			return nil, fmt.Errorf("size %d out of range [%d,%d]", size, engine.MinBoardSize, engine.MaxBoardSize)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// Package engine provides the core logic for the sliding tile puzzle.
//
// The engine package implements the puzzle mechanics including:
//   - Board representation and the canonical solved ordering
//   - Solvable board generation via the parity invariant
//   - Move processing and win detection
//   - Move count and elapsed time tracking
//   - A constructive solver used for hints and solvability verification
//
// Core Types:
//
// The Engine interface defines the contract for game operations, implemented
// by GameEngine. Board holds the tile grid with 0 as the blank marker, and
// GameState carries the per-session move counter and timer.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(4)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide the tile above the blank into the blank's cell
//	accepted := gameEngine.Move(engine.Up)
//	if gameEngine.IsWon() {
//		fmt.Println("solved in", gameEngine.State().Moves, "moves")
//	}
//
// Direction Semantics:
//
// Directions name the neighboring tile relative to the blank. Up selects
// the tile above the blank, which slides into the blank's cell, so the
// blank shifts up. Moves whose source tile would fall outside the grid,
// or whose direction is not one of the four constants, are rejected
// silently.
package engine

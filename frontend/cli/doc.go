// Package cli implements the interactive terminal frontend.
//
// The board renders as an ASCII grid with a status line for moves and
// elapsed time. Input is single-keypress: arrow keys or WASD move the
// blank (sliding the tile on that side into it), R reshuffles, N shows a
// hint, V auto-plays the solution, Q or Escape quits. Solving the puzzle
// records a high score and shows the ranking for the current grid size.
//
// When stdin is not a terminal (pipes, CI) the app falls back to reading
// one command per line, which keeps it scriptable.
package cli

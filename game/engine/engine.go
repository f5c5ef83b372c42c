package engine

import (
	"fmt"
	"time"
)

// Engine is the contract frontends program against.
type Engine interface {
	// Board and state access
	Board() *Board
	State() *GameState
	Status() Status
	IsWon() bool

	// Movement
	Move(d Direction) bool
	MoveTile(row, col int) bool

	// Lifecycle
	Restart() error

	// Assistance
	Hint() (Direction, bool)
}

// GameEngine implements Engine for a single puzzle session.
type GameEngine struct {
	size  int
	board *Board
	state *GameState

	// plan caches the remaining moves of the last computed solution so
	// that successive hints walk one solution instead of replanning.
	plan []Direction
}

// NewEngine creates an engine with a freshly generated solvable board.
func NewEngine(size int) (*GameEngine, error) {
	board, err := Generate(size)
	if err != nil {
		return nil, err
	}
	return &GameEngine{
		size:  size,
		board: board,
		state: NewGameState(),
	}, nil
}

// NewEngineFromBoard creates an engine around an existing board, used when
// resuming a persisted session. The board is validated first.
func NewEngineFromBoard(board *Board) (*GameEngine, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: nil board", ErrInvalidBoard)
	}
	if err := board.Validate(); err != nil {
		return nil, err
	}
	return &GameEngine{
		size:  board.Size,
		board: board,
		state: NewGameState(),
	}, nil
}

// Board returns the live board. Callers must not mutate it directly.
func (e *GameEngine) Board() *Board {
	return e.board
}

// State returns the session's move and time tracker.
func (e *GameEngine) State() *GameState {
	return e.state
}

// Status returns the session-level status.
func (e *GameEngine) Status() Status {
	return e.state.Status
}

// IsWon reports whether the board reached the canonical solved order.
func (e *GameEngine) IsWon() bool {
	return e.state.Status == StatusWon
}

// Move slides the tile on the given side of the blank into the blank's
// cell.
//
// Illegal moves (no tile in that direction, an unknown direction, or the
// session is already won) are rejected silently: the board and move
// counter are untouched and Move returns false.
func (e *GameEngine) Move(d Direction) bool {
	if e.state.Status == StatusWon {
		return false
	}
	if !e.board.Apply(d) {
		return false
	}
	e.advancePlan(d)
	e.recordMove()
	return true
}

// advancePlan consumes the cached solution when the accepted move follows
// it and discards it otherwise.
func (e *GameEngine) advancePlan(d Direction) {
	if len(e.plan) > 0 && e.plan[0] == d {
		e.plan = e.plan[1:]
		return
	}
	e.plan = nil
}

// MoveTile slides the tile at (row, col) into the blank. The move is
// accepted only when the tile is orthogonally adjacent to the blank.
func (e *GameEngine) MoveTile(row, col int) bool {
	if e.state.Status == StatusWon {
		return false
	}
	if !e.board.InBounds(row, col) {
		return false
	}
	if abs(row-e.board.Blank.Row)+abs(col-e.board.Blank.Col) != 1 {
		return false
	}
	e.board.swap(Position{Row: row, Col: col})
	e.plan = nil
	e.recordMove()
	return true
}

// recordMove advances the counters and runs win detection.
func (e *GameEngine) recordMove() {
	e.state.Resume()
	e.state.IncrementMoves()
	e.state.Status = StatusInProgress
	if e.board.IsSolved() {
		e.state.Status = StatusWon
		e.state.Pause()
	}
}

// Restart discards the board, generates a new solvable one, and resets the
// move counter and clock.
func (e *GameEngine) Restart() error {
	board, err := Generate(e.size)
	if err != nil {
		return err
	}
	e.board = board
	e.plan = nil
	e.state.Reset()
	return nil
}

// RestoreProgress reinstates a persisted move count and elapsed time. The
// status is derived from the board: a solved board is Won, otherwise any
// recorded move means InProgress.
func (e *GameEngine) RestoreProgress(moves int, elapsed time.Duration) {
	status := StatusNotStarted
	switch {
	case e.board.IsSolved():
		status = StatusWon
	case moves > 0:
		status = StatusInProgress
	}
	e.state.restore(moves, elapsed, status)
}

// Hint returns the next move of a constructive solution, or false when the
// board is already solved. Successive hints walk a single cached solution
// as long as the caller plays them, so following hints always terminates;
// any move off the hinted line discards the cache and the next hint
// replans from the current board.
func (e *GameEngine) Hint() (Direction, bool) {
	if e.state.Status == StatusWon || e.board.IsSolved() {
		return "", false
	}
	if len(e.plan) == 0 {
		e.plan = Solve(e.board)
	}
	if len(e.plan) == 0 {
		return "", false
	}
	return e.plan[0], true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package engine

import (
	"errors"
	"fmt"
)

// Direction selects a neighboring tile relative to the blank: Up names
// the tile above the blank, which slides into the blank's cell.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

const (
	// Blank is the tile value of the empty cell.
	Blank = 0

	// MinBoardSize is the smallest playable grid.
	MinBoardSize = 2

	// MaxBoardSize bounds generation; beyond this the constructive solver
	// still works but boards stop being human-playable.
	MaxBoardSize = 16
)

var (
	ErrInvalidSize  = errors.New("invalid board size")
	ErrInvalidBoard = errors.New("invalid board")
)

// Directions lists all four directions in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// ParseDirection converts a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down, Left, Right:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// sourceOffset returns the row/col offset from the blank to the tile that
// slides when moving in d. Up selects the tile above the blank. ok is
// false for strings outside the four direction constants.
func (d Direction) sourceOffset() (dr, dc int, ok bool) {
	switch d {
	case Up:
		return -1, 0, true
	case Down:
		return 1, 0, true
	case Left:
		return 0, -1, true
	case Right:
		return 0, 1, true
	}
	return 0, 0, false
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Position identifies a board cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

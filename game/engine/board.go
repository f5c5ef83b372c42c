package engine

import (
	"fmt"
	"strings"
)

// Board is an N×N grid of tile values. 0 marks the blank cell; every other
// cell holds a unique value in [1, N²−1].
type Board struct {
	Size  int      `json:"size"`
	Tiles [][]int  `json:"tiles"`
	Blank Position `json:"blank_pos"`
}

// NewSolvedBoard returns a board in the canonical solved order: tiles
// 1..N²−1 in row-major order with the blank in the last cell.
func NewSolvedBoard(size int) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, MinBoardSize)
	}

	tiles := make([][]int, size)
	num := 1
	for r := range tiles {
		tiles[r] = make([]int, size)
		for c := range tiles[r] {
			if r == size-1 && c == size-1 {
				tiles[r][c] = Blank
			} else {
				tiles[r][c] = num
				num++
			}
		}
	}

	return &Board{
		Size:  size,
		Tiles: tiles,
		Blank: Position{Row: size - 1, Col: size - 1},
	}, nil
}

// TileAt returns the tile value at (row, col).
func (b *Board) TileAt(row, col int) int {
	return b.Tiles[row][col]
}

// InBounds reports whether (row, col) is a cell of the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Size && col >= 0 && col < b.Size
}

// IsSolved reports whether every tile is in its goal position.
func (b *Board) IsSolved() bool {
	expected := 1
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if r == b.Size-1 && c == b.Size-1 {
				return b.Tiles[r][c] == Blank
			}
			if b.Tiles[r][c] != expected {
				return false
			}
			expected++
		}
	}
	return true
}

// IsTileCorrect reports whether the tile at (row, col) is in its goal
// position.
func (b *Board) IsTileCorrect(row, col int) bool {
	val := b.Tiles[row][col]
	if val == Blank {
		return row == b.Size-1 && col == b.Size-1
	}
	return row == (val-1)/b.Size && col == (val-1)%b.Size
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	tiles := make([][]int, b.Size)
	for r := range tiles {
		tiles[r] = make([]int, b.Size)
		copy(tiles[r], b.Tiles[r])
	}
	return &Board{Size: b.Size, Tiles: tiles, Blank: b.Blank}
}

// Validate checks the board invariants: square grid, exactly one blank at
// the recorded position, and the remaining cells a permutation of 1..N²−1.
func (b *Board) Validate() error {
	if b.Size < MinBoardSize {
		return fmt.Errorf("%w: size %d", ErrInvalidSize, b.Size)
	}
	if len(b.Tiles) != b.Size {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, b.Size, len(b.Tiles))
	}

	seen := make([]bool, b.Size*b.Size)
	blanks := 0
	for r, row := range b.Tiles {
		if len(row) != b.Size {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, r, len(row))
		}
		for c, val := range row {
			if val < 0 || val >= b.Size*b.Size {
				return fmt.Errorf("%w: tile value %d out of range", ErrInvalidBoard, val)
			}
			if seen[val] {
				return fmt.Errorf("%w: duplicate tile %d", ErrInvalidBoard, val)
			}
			seen[val] = true
			if val == Blank {
				blanks++
				if b.Blank.Row != r || b.Blank.Col != c {
					return fmt.Errorf("%w: blank recorded at (%d,%d) but found at (%d,%d)",
						ErrInvalidBoard, b.Blank.Row, b.Blank.Col, r, c)
				}
			}
		}
	}
	if blanks != 1 {
		return fmt.Errorf("%w: expected exactly one blank, found %d", ErrInvalidBoard, blanks)
	}
	return nil
}

// swap exchanges the blank with the tile at target and updates the blank
// position. Callers are responsible for adjacency and bounds.
func (b *Board) swap(target Position) {
	br, bc := b.Blank.Row, b.Blank.Col
	b.Tiles[br][bc], b.Tiles[target.Row][target.Col] = b.Tiles[target.Row][target.Col], b.Tiles[br][bc]
	b.Blank = target
}

// Apply slides the tile on the given side of the blank into the blank's
// cell. It returns false without modifying the board when there is no
// tile there or d is not one of the four direction constants.
func (b *Board) Apply(d Direction) bool {
	dr, dc, ok := d.sourceOffset()
	if !ok {
		return false
	}
	target := Position{Row: b.Blank.Row + dr, Col: b.Blank.Col + dc}
	if !b.InBounds(target.Row, target.Col) {
		return false
	}
	b.swap(target)
	return true
}

// String renders the board for logs and the plain terminal frontend.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b.Tiles[r][c] == Blank {
				sb.WriteString("  ·")
			} else {
				fmt.Fprintf(&sb, "%3d", b.Tiles[r][c])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package engine

import (
	"math/rand/v2"
)

// Generate returns a uniformly shuffled, solvable board of the given size.
//
// The tiles are shuffled uniformly at random. If the resulting permutation
// fails the solvability parity rule, two adjacent non-blank tiles are
// swapped, which flips the permutation parity without touching the blank
// row. This guarantees a solvable board without rejection sampling. A
// shuffle that happens to land on the solved state is redrawn so a fresh
// game never starts already won.
func Generate(size int) (*Board, error) {
	return generate(size, rand.IntN)
}

// generate takes the random source as a parameter so tests can pin the
// shuffle.
func generate(size int, intN func(int) int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, ErrInvalidSize
	}

	nn := size * size
	flat := make([]int, nn)
	for i := range flat {
		flat[i] = i
	}

	for {
		// Fisher-Yates over the flat tile list.
		for i := nn - 1; i > 0; i-- {
			j := intN(i + 1)
			flat[i], flat[j] = flat[j], flat[i]
		}

		b := boardFromFlat(size, flat)
		if !IsSolvable(b) {
			fixParity(b)
		}
		if b.IsSolved() {
			continue
		}
		return b, nil
	}
}

// boardFromFlat builds a board from a row-major tile slice.
func boardFromFlat(size int, flat []int) *Board {
	tiles := make([][]int, size)
	var blank Position
	for r := 0; r < size; r++ {
		tiles[r] = make([]int, size)
		for c := 0; c < size; c++ {
			v := flat[r*size+c]
			tiles[r][c] = v
			if v == Blank {
				blank = Position{Row: r, Col: c}
			}
		}
	}
	return &Board{Size: size, Tiles: tiles, Blank: blank}
}

// fixParity swaps the first horizontally adjacent pair of non-blank tiles,
// flipping the permutation parity. Such a pair always exists for size >= 2.
func fixParity(b *Board) {
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size-1; c++ {
			if b.Tiles[r][c] != Blank && b.Tiles[r][c+1] != Blank {
				b.Tiles[r][c], b.Tiles[r][c+1] = b.Tiles[r][c+1], b.Tiles[r][c]
				return
			}
		}
	}
}

// IsSolvable reports whether the board can reach the solved state through
// legal slides.
//
// Standard 15-puzzle parity rule: for odd N the board is solvable iff the
// inversion count of the non-blank tiles is even; for even N it is solvable
// iff inversions plus the blank's row distance from the bottom is even.
func IsSolvable(b *Board) bool {
	flat := make([]int, 0, b.Size*b.Size-1)
	for _, row := range b.Tiles {
		for _, v := range row {
			if v != Blank {
				flat = append(flat, v)
			}
		}
	}

	inversions := 0
	for i := 0; i < len(flat); i++ {
		for j := i + 1; j < len(flat); j++ {
			if flat[i] > flat[j] {
				inversions++
			}
		}
	}

	if b.Size%2 == 1 {
		return inversions%2 == 0
	}
	blankFromBottom := b.Size - 1 - b.Blank.Row
	return (inversions+blankFromBottom)%2 == 0
}

package engine

// Constructive solver: rows and columns are committed from the outside in,
// finishing with a 2×2 endgame rotation. Each row is placed left-to-right
// with a hook maneuver for its last two tiles; each column top-to-bottom
// with the mirrored hook. The result is not move-optimal but is produced in
// linear passes, which keeps hints instant on any supported size.

// Solve returns a move sequence that brings the board to the canonical
// solved order. It returns an empty sequence when the board is already
// solved or is unsolvable. The input board is not modified.
func Solve(b *Board) []Direction {
	if b.IsSolved() || !IsSolvable(b) {
		return nil
	}

	s := newSolver(b)
	s.run()
	return s.out
}

// Hint returns the first move of a constructive solution. It replans on
// every call; GameEngine.Hint caches the full solution so that a chain of
// hints makes progress.
func Hint(b *Board) (Direction, bool) {
	moves := Solve(b)
	if len(moves) == 0 {
		return "", false
	}
	return moves[0], true
}

// solver works on a flat copy of the board: g[r*n+c] holds the tile value
// and p[value] its flat index, with the blank tracked separately in bi.
type solver struct {
	n   int
	nm1 int
	g   []int
	p   []int
	bi  int
	out []Direction
}

func newSolver(b *Board) *solver {
	n := b.Size
	s := &solver{
		n:   n,
		nm1: n - 1,
		g:   make([]int, n*n),
		p:   make([]int, n*n),
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := b.Tiles[r][c]
			s.g[r*n+c] = v
			s.p[v] = r*n + c
		}
	}
	s.bi = b.Blank.Row*n + b.Blank.Col
	return s
}

func (s *solver) run() {
	off := 0
	for s.n-off > 2 {
		s.solveRow(off, off)
		s.solveCol(off, off+1)
		off++
	}
	if s.n-off == 2 {
		s.solve2x2(off)
	}
}

// blankDelta maps a direction to the blank's flat index delta: the blank
// moves into the selected tile's cell, so Up shifts it up one row.
func (s *solver) blankDelta(d Direction) int {
	switch d {
	case Up:
		return -s.n
	case Down:
		return s.n
	case Left:
		return -1
	default: // Right
		return 1
	}
}

// mv slides the tile on side d of the blank into the blank and records it.
func (s *solver) mv(d Direction) {
	ni := s.bi + s.blankDelta(d)
	tv := s.g[ni]
	s.g[s.bi] = tv
	s.g[ni] = Blank
	s.p[tv] = s.bi
	s.bi = ni
	s.out = append(s.out, d)
}

// route walks the blank to (dr, dc), horizontal leg first. The horizontal-
// first order keeps the blank out of committed rows above.
func (s *solver) route(dr, dc int) {
	for s.bi%s.n > dc {
		s.mv(Left)
	}
	for s.bi%s.n < dc {
		s.mv(Right)
	}
	for s.bi/s.n > dr {
		s.mv(Up)
	}
	for s.bi/s.n < dr {
		s.mv(Down)
	}
}

// routeVF walks the blank to (dr, dc), vertical leg first; used when a
// committed column must not be crossed.
func (s *solver) routeVF(dr, dc int) {
	for s.bi/s.n > dr {
		s.mv(Up)
	}
	for s.bi/s.n < dr {
		s.mv(Down)
	}
	for s.bi%s.n > dc {
		s.mv(Left)
	}
	for s.bi%s.n < dc {
		s.mv(Right)
	}
}

// pushRight walks tile rightward until it sits in destCol.
func (s *solver) pushRight(tile, destCol int) {
	ti := s.p[tile]
	ec := ti % s.n
	if ec >= destCol {
		return
	}
	er := ti / s.n
	br, bc := s.bi/s.n, s.bi%s.n

	switch {
	case br == er && bc <= ec:
		if br < s.nm1 {
			s.mv(Down)
		} else {
			s.mv(Up)
		}
		s.route(er, ec+1)
	case br >= er:
		s.route(er, ec+1)
	default:
		if bc == ec {
			if ec < s.nm1 {
				s.mv(Right)
			} else {
				s.mv(Left)
			}
		}
		if er < s.nm1 {
			s.routeVF(er+1, ec+1)
			s.mv(Up)
		} else {
			s.routeVF(er-1, ec+1)
			s.mv(Down)
		}
	}

	s.mv(Left)
	for {
		ti = s.p[tile]
		if ti%s.n >= destCol {
			break
		}
		if ti/s.n == s.nm1 {
			s.mv(Up)
			s.mv(Right)
			s.mv(Right)
			s.mv(Down)
			s.mv(Left)
		} else {
			s.mv(Down)
			s.mv(Right)
			s.mv(Right)
			s.mv(Up)
			s.mv(Left)
		}
	}
}

// pushLeft walks tile leftward until it sits in destCol.
func (s *solver) pushLeft(tile, destCol int) {
	ti := s.p[tile]
	ec := ti % s.n
	if ec <= destCol {
		return
	}
	er := ti / s.n
	br, bc := s.bi/s.n, s.bi%s.n

	switch {
	case br == er && bc >= ec:
		if br < s.nm1 {
			s.mv(Down)
		} else {
			s.mv(Up)
		}
		s.route(er, ec-1)
	case br >= er:
		s.route(er, ec-1)
	default:
		if bc == ec {
			if ec < s.nm1 {
				s.mv(Right)
			} else {
				s.mv(Left)
			}
		}
		if er < s.nm1 {
			s.routeVF(er+1, ec-1)
			s.mv(Up)
		} else {
			s.routeVF(er-1, ec-1)
			s.mv(Down)
		}
	}

	s.mv(Right)
	for {
		ti = s.p[tile]
		if ti%s.n <= destCol {
			break
		}
		if ti/s.n == s.nm1 {
			s.mv(Up)
			s.mv(Left)
			s.mv(Left)
			s.mv(Down)
			s.mv(Right)
		} else {
			s.mv(Down)
			s.mv(Left)
			s.mv(Left)
			s.mv(Up)
			s.mv(Right)
		}
	}
}

// pushUp walks tile upward until it sits in destRow.
func (s *solver) pushUp(tile, destRow int) {
	ti := s.p[tile]
	er := ti / s.n
	if er <= destRow {
		return
	}
	ec := ti % s.n
	br, bc := s.bi/s.n, s.bi%s.n

	if er == s.nm1 {
		// Tile on the bottom row: bring the blank above it.
		if bc == ec {
			if ec < s.nm1 {
				s.mv(Right)
			} else {
				s.mv(Left)
			}
		}
		switch {
		case br == er:
			s.mv(Up)
			s.route(er-1, ec)
		case br < er:
			s.routeVF(er-1, ec)
		default:
			s.route(er-1, ec)
		}
		s.mv(Down)
	} else {
		// Route the blank below the tile.
		if bc == ec && br < er {
			if ec < s.nm1 {
				s.mv(Right)
			} else {
				s.mv(Left)
			}
		}
		if br <= er {
			dc := ec + 1
			if ec >= s.nm1 {
				dc = ec - 1
			}
			if br == er {
				s.mv(Down)
				s.route(er+1, dc)
			} else {
				s.routeVF(er+1, dc)
			}
			s.route(er+1, ec)
		} else {
			s.route(er+1, ec)
		}
		if s.bi/s.n < s.p[tile]/s.n {
			s.mv(Down)
		}
	}

	for {
		ti = s.p[tile]
		if ti/s.n <= destRow {
			break
		}
		if ti%s.n == s.nm1 {
			s.mv(Left)
			s.mv(Up)
			s.mv(Up)
			s.mv(Right)
			s.mv(Down)
		} else {
			s.mv(Right)
			s.mv(Up)
			s.mv(Up)
			s.mv(Left)
			s.mv(Down)
		}
	}
}

// pushDown walks tile downward until it sits in destRow.
func (s *solver) pushDown(tile, destRow int) {
	ti := s.p[tile]
	er := ti / s.n
	if er >= destRow {
		return
	}
	ec := ti % s.n
	br, bc := s.bi/s.n, s.bi%s.n

	if bc == ec && br <= er {
		if ec < s.nm1 {
			s.mv(Right)
		} else {
			s.mv(Left)
		}
	}
	if br <= er {
		dc := ec + 1
		if ec >= s.nm1 {
			dc = ec - 1
		}
		if br == er {
			s.mv(Down)
			s.route(er+1, dc)
		} else {
			s.routeVF(er+1, dc)
		}
		s.route(er+1, ec)
	} else {
		s.route(er+1, ec)
	}
	s.mv(Up)

	for {
		ti = s.p[tile]
		if ti/s.n >= destRow {
			break
		}
		if ti%s.n == s.nm1 {
			s.mv(Left)
			s.mv(Down)
			s.mv(Down)
			s.mv(Right)
			s.mv(Up)
		} else {
			s.mv(Right)
			s.mv(Down)
			s.mv(Down)
			s.mv(Left)
			s.mv(Up)
		}
	}
}

// moveTo places tile at (dr, dc), horizontal leg first.
func (s *solver) moveTo(tile, dr, dc int) {
	tc := s.p[tile] % s.n
	if tc < dc {
		s.pushRight(tile, dc)
	} else if tc > dc {
		s.pushLeft(tile, dc)
	}
	tr := s.p[tile] / s.n
	if tr > dr {
		s.pushUp(tile, dr)
	} else if tr < dr {
		s.pushDown(tile, dr)
	}
}

// moveToVF places tile at (dr, dc), vertical leg first.
func (s *solver) moveToVF(tile, dr, dc int) {
	tr := s.p[tile] / s.n
	if tr > dr {
		s.pushUp(tile, dr)
	} else if tr < dr {
		s.pushDown(tile, dr)
	}
	tc := s.p[tile] % s.n
	if tc < dc {
		s.pushRight(tile, dc)
	} else if tc > dc {
		s.pushLeft(tile, dc)
	}
}

// solveRow commits row, placing tiles left to right with the hook maneuver
// for the final pair.
func (s *solver) solveRow(row, colStart int) {
	base := row * s.n
	for c := colStart; c < s.nm1-1; c++ {
		s.moveTo(base+c+1, row, c)
	}

	va := base + s.nm1     // goal (row, nm1-1)
	vb := base + s.nm1 + 1 // goal (row, nm1)
	if s.p[va] == base+s.nm1-1 && s.p[vb] == base+s.nm1 {
		return
	}

	// Escape: keep the blank below the committed row.
	for s.bi/s.n <= row {
		s.mv(Down)
	}

	s.moveTo(vb, s.nm1, s.nm1)   // park vb bottom-right
	s.moveTo(va, row, s.nm1)     // stage va at the corner
	s.route(row+1, s.nm1-1)      // safe blank position
	s.moveTo(vb, row+1, s.nm1)   // stage vb below the corner
	s.route(row, s.nm1-1)        // blank left of the corner
	s.mv(Right)                  // va slides left
	s.mv(Down)                   // vb slides up
}

// solveCol commits col, placing tiles top to bottom with the mirrored hook.
func (s *solver) solveCol(col, rowStart int) {
	for r := rowStart; r < s.nm1-1; r++ {
		s.moveToVF(r*s.n+col+1, r, col)
	}

	va := (s.nm1-1)*s.n + col + 1 // goal (nm1-1, col)
	vb := s.nm1*s.n + col + 1     // goal (nm1, col)
	if s.p[va] == (s.nm1-1)*s.n+col && s.p[vb] == s.nm1*s.n+col {
		return
	}

	// Escape: keep the blank right of the committed column.
	for s.bi%s.n <= col {
		s.mv(Right)
	}

	s.moveToVF(vb, s.nm1, s.nm1)   // park vb bottom-right
	s.moveToVF(va, s.nm1, col)     // stage va at the column's bottom
	s.routeVF(s.nm1-1, col+1)      // safe blank position
	s.moveToVF(vb, s.nm1, col+1)   // stage vb right of the staging cell
	s.routeVF(s.nm1-1, col)        // blank above the staging cell
	s.mv(Down)                     // va slides up
	s.mv(Right)                    // vb slides left
}

// solve2x2 finishes the remaining 2×2 block by rotating until it clicks.
// A solvable block always resolves within three rotations.
func (s *solver) solve2x2(off int) {
	tl := off*s.n + off
	gTL := tl + 1
	gTR := tl + 2
	gBL := tl + s.n + 1

	s.route(off+1, off+1)

	for i := 0; i < 3; i++ {
		if s.g[tl] == gTL && s.g[tl+1] == gTR && s.g[tl+s.n] == gBL {
			return
		}
		s.mv(Left)
		s.mv(Up)
		s.mv(Right)
		s.mv(Down)
	}
}

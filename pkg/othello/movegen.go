package othello

import "fmt"

// Cells flipped by 'color' placing a disc at (col, row), nil if none.
// Only the capture lines are inspected, the target cell is not checked.
func captures(b Board, col, row int, color Color) []Move {
	other := Opponent(color)
	var flipped []Move

	for _, d := range directions {
		c, r := col+d[0], row+d[1]
		n := 0
		for b.InBounds(c, r) && b.cells[r][c] == other {
			c += d[0]
			r += d[1]
			n++
		}

		// A line needs at least one opponent disc closed by our own disc
		if n == 0 || !b.InBounds(c, r) || b.cells[r][c] != color {
			continue
		}
		for k := 1; k <= n; k++ {
			flipped = append(flipped, Move{Col: col + k*d[0], Row: row + k*d[1]})
		}
	}
	return flipped
}

func hasCapture(b Board, col, row int, color Color) bool {
	other := Opponent(color)
	for _, d := range directions {
		c, r := col+d[0], row+d[1]
		n := 0
		for b.InBounds(c, r) && b.cells[r][c] == other {
			c += d[0]
			r += d[1]
			n++
		}
		if n > 0 && b.InBounds(c, r) && b.cells[r][c] == color {
			return true
		}
	}
	return false
}

// All legal placements for 'color', columns in the outer loop and rows in the
// inner one. Search tie-breaks depend on this order, so don't change it.
func PossibleMoves(b Board, color Color) []Move {
	MustColor(color)
	var moves []Move
	for col := range int(b.size) {
		for row := range int(b.size) {
			if b.cells[row][col] == Empty && hasCapture(b, col, row, color) {
				moves = append(moves, Move{Col: col, Row: row})
			}
		}
	}
	return moves
}

// Number of legal placements, without allocating the move list
func CountMoves(b Board, color Color) int {
	MustColor(color)
	n := 0
	for col := range int(b.size) {
		for row := range int(b.size) {
			if b.cells[row][col] == Empty && hasCapture(b, col, row, color) {
				n++
			}
		}
	}
	return n
}

func HasMoves(b Board, color Color) bool {
	MustColor(color)
	for col := range int(b.size) {
		for row := range int(b.size) {
			if b.cells[row][col] == Empty && hasCapture(b, col, row, color) {
				return true
			}
		}
	}
	return false
}

func IsLegal(b Board, color Color, m Move) bool {
	return b.InBounds(m.Col, m.Row) && b.cells[m.Row][m.Col] == Empty && hasCapture(b, m.Col, m.Row, color)
}

// Returns a new board with the move applied and every captured line flipped.
// The input board is never modified. Panics on an illegal move.
func PlayMove(b Board, color Color, m Move) Board {
	MustColor(color)
	if !b.InBounds(m.Col, m.Row) || b.cells[m.Row][m.Col] != Empty {
		panic(fmt.Sprintf("[othello] PlayMove: %v is not an empty cell", m))
	}

	flipped := captures(b, m.Col, m.Row, color)
	if len(flipped) == 0 {
		panic(fmt.Sprintf("[othello] PlayMove: %v captures nothing for %v", m, color))
	}

	// 'b' is a copy, the caller's board stays untouched
	for _, f := range flipped {
		b.cells[f.Row][f.Col] = color
	}
	b.cells[m.Row][m.Col] = color
	return b
}

// Disc counts as (dark, light)
func Score(b Board) (dark, light int) {
	for row := range int(b.size) {
		for col := range int(b.size) {
			switch b.cells[row][col] {
			case Dark:
				dark++
			case Light:
				light++
			}
		}
	}
	return dark, light
}

// Neither player can move
func GameOver(b Board) bool {
	return !HasMoves(b, Dark) && !HasMoves(b, Light)
}

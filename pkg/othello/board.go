package othello

import (
	"fmt"
	"strings"
)

// Immutable Othello board, comparable with '==' and usable as a map key.
// Cells outside of Size()xSize() are always Empty, so two boards with the
// same contents are equal no matter how they were reached.
type Board struct {
	size  int8
	cells [MaxSize][MaxSize]Cell // [row][col]
}

// Create an empty board, panics on an unsupported size
func NewBoard(size int) Board {
	if size < MinSize || size > MaxSize || size%2 != 0 {
		panic(fmt.Sprintf("[othello] NewBoard: unsupported size %d (want even, %d..%d)", size, MinSize, MaxSize))
	}
	return Board{size: int8(size)}
}

// Standard starting position: Light on the main diagonal of the center square,
// Dark on the other one
func InitialBoard(size int) Board {
	b := NewBoard(size)
	i := size/2 - 1
	b.cells[i][i] = Light
	b.cells[i+1][i+1] = Light
	b.cells[i+1][i] = Dark
	b.cells[i][i+1] = Dark
	return b
}

func (b Board) Size() int {
	return int(b.size)
}

func (b Board) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < int(b.size) && row < int(b.size)
}

// Cell at given column and row
func (b Board) At(col, row int) Cell {
	return b.cells[row][col]
}

// Returns a copy of the board with a single cell changed
func (b Board) With(col, row int, c Cell) Board {
	if !b.InBounds(col, row) {
		panic(fmt.Sprintf("[othello] With: (%d,%d) out of bounds", col, row))
	}
	b.cells[row][col] = c
	return b
}

// Number of empty cells
func (b Board) Empties() int {
	n := 0
	for row := range int(b.size) {
		for col := range int(b.size) {
			if b.cells[row][col] == Empty {
				n++
			}
		}
	}
	return n
}

// Rows as plain ints, the way the game manager sends them
func (b Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for row := range rows {
		rows[row] = make([]int, b.size)
		for col := range rows[row] {
			rows[row][col] = int(b.cells[row][col])
		}
	}
	return rows
}

func (b Board) String() string {
	builder := strings.Builder{}
	builder.WriteString("  ")
	for col := range int(b.size) {
		fmt.Fprintf(&builder, " %d", col%10)
	}
	builder.WriteByte('\n')
	for row := range int(b.size) {
		fmt.Fprintf(&builder, "%2d", row)
		for col := range int(b.size) {
			builder.WriteByte(' ')
			builder.WriteByte(b.cells[row][col].Symbol())
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

package othello

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Build a board from rows of 0/1/2 values
func FromRows(rows [][]int) (Board, error) {
	size := len(rows)
	if size < MinSize || size > MaxSize || size%2 != 0 {
		return Board{}, errors.Errorf("unsupported board size %d", size)
	}

	b := Board{size: int8(size)}
	for r, line := range rows {
		if len(line) != size {
			return Board{}, errors.Errorf("row %d has %d cells, want %d", r, len(line), size)
		}
		for c, v := range line {
			if v < int(Empty) || v > int(Light) {
				return Board{}, errors.Errorf("invalid cell value %d at (%d,%d)", v, c, r)
			}
			b.cells[r][c] = Cell(v)
		}
	}
	return b, nil
}

// Parse the game manager's board literal, a list of rows such as
// "[[0, 1], [2, 0]]". Tuples "((0, 1), (2, 0))" are accepted as well.
func ParseBoard(s string) (Board, error) {
	var (
		rows  [][]int
		row   []int
		depth int
		num   strings.Builder
	)

	flush := func() error {
		if num.Len() == 0 {
			return nil
		}
		v, err := strconv.Atoi(num.String())
		if err != nil {
			return errors.Wrapf(err, "invalid cell %q", num.String())
		}
		num.Reset()
		row = append(row, v)
		return nil
	}

	for i, ch := range s {
		switch {
		case ch == '[' || ch == '(':
			depth++
			if depth > 2 {
				return Board{}, errors.Errorf("unexpected %q at offset %d", ch, i)
			}
			if depth == 2 {
				row = make([]int, 0, MaxSize)
			}
		case ch == ']' || ch == ')':
			if err := flush(); err != nil {
				return Board{}, err
			}
			depth--
			if depth < 0 {
				return Board{}, errors.Errorf("unbalanced %q at offset %d", ch, i)
			}
			if depth == 1 {
				rows = append(rows, row)
				row = nil
			}
		case ch == ',':
			if err := flush(); err != nil {
				return Board{}, err
			}
		case ch >= '0' && ch <= '9':
			if depth != 2 {
				return Board{}, errors.Errorf("unexpected digit at offset %d", i)
			}
			num.WriteRune(ch)
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			if err := flush(); err != nil {
				return Board{}, err
			}
		default:
			return Board{}, errors.Errorf("unexpected %q at offset %d", ch, i)
		}
	}

	if depth != 0 {
		return Board{}, errors.New("unterminated board literal")
	}

	b, err := FromRows(rows)
	if err != nil {
		return Board{}, errors.Wrap(err, "parse board")
	}
	return b, nil
}

// Inverse of ParseBoard
func (b Board) Literal() string {
	builder := strings.Builder{}
	builder.WriteByte('[')
	for row := range int(b.size) {
		if row > 0 {
			builder.WriteString(", ")
		}
		builder.WriteByte('[')
		for col := range int(b.size) {
			if col > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(strconv.Itoa(int(b.cells[row][col])))
		}
		builder.WriteByte(']')
	}
	builder.WriteByte(']')
	return builder.String()
}

package othello

import "fmt"

type Cell uint8
type Color = Cell

const (
	Empty Cell = 0
	Dark  Cell = 1 // player 1, moves first
	Light Cell = 2 // player 2
)

const (
	MinSize = 4
	MaxSize = 12
)

// NoMove is returned when the player has nothing to play (pass or game over)
var NoMove = Move{Col: -1, Row: -1}

// Zero-based grid coordinates of a placement
type Move struct {
	Col int
	Row int
}

func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) String() string {
	if m.IsNone() {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", m.Col, m.Row)
}

// Returns the other player, panics if 'c' is not a player color
func Opponent(c Color) Color {
	switch c {
	case Dark:
		return Light
	case Light:
		return Dark
	}
	panic(fmt.Sprintf("[othello] Opponent: invalid color %d", c))
}

// Panics if 'c' is not Dark or Light
func MustColor(c Color) {
	if c != Dark && c != Light {
		panic(fmt.Sprintf("[othello] invalid color %d", c))
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Dark:
		return "Dark"
	case Light:
		return "Light"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Single character used by Board.String
func (c Cell) Symbol() byte {
	switch c {
	case Dark:
		return 'X'
	case Light:
		return 'O'
	}
	return '.'
}

// 8 scan directions as (dcol, drow)
var directions = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// Directions returns the 8 compass directions as (dcol, drow) pairs
func Directions() [8][2]int {
	return directions
}

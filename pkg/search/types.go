package search

import (
	"fmt"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Depth limit meaning 'search until the game ends'
const Unbounded = -1

type Algorithm int

const (
	AlphaBeta Algorithm = iota
	Minimax
)

func (a Algorithm) String() string {
	switch a {
	case AlphaBeta:
		return "AlphaBeta"
	case Minimax:
		return "Minimax"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Search role owning a transposition cache, values computed in one role
// are never served to another
type Role int

const (
	RoleMinimaxMin Role = iota
	RoleMinimaxMax
	RoleAlphaBetaMin
	RoleAlphaBetaMax
	roleCount
)

func (r Role) String() string {
	switch r {
	case RoleMinimaxMin:
		return "MinimaxMin"
	case RoleMinimaxMax:
		return "MinimaxMax"
	case RoleAlphaBetaMin:
		return "AlphaBetaMin"
	case RoleAlphaBetaMax:
		return "AlphaBetaMax"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// (best move, utility) of a search node. Value is always from the root
// player's perspective, Move is othello.NoMove on terminal nodes.
type Result struct {
	Move  othello.Move
	Value float64
}

func (r Result) String() string {
	return fmt.Sprintf("{move=%v value=%.2f}", r.Move, r.Value)
}

// Static score of a board for given player, used at the search frontier
type Evaluator func(othello.Board, othello.Color) float64

package search

import (
	"math"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// MAX node: the root player moves, keeps the first child with the highest value
func (s *Session) minimaxMax(board othello.Board, depth int) Result {
	s.stats.Nodes++
	if s.caching {
		if r, ok := s.caches[RoleMinimaxMax].probe(board, depth); ok {
			s.stats.CacheHits++
			return r
		}
	}

	moves := othello.PossibleMoves(board, s.root)
	if len(moves) == 0 || depth == 0 {
		return s.leaf(board)
	}

	best := Result{Move: moves[0], Value: math.Inf(-1)}
	for _, m := range moves {
		r := s.minimaxMin(othello.PlayMove(board, s.root, m), depth-1)
		if r.Value > best.Value {
			best = Result{Move: m, Value: r.Value}
		}
	}

	if s.caching {
		s.caches[RoleMinimaxMax].store(board, best, depth, BoundExact)
	}
	return best
}

// MIN node: the opponent moves, keeps the first child with the lowest value
func (s *Session) minimaxMin(board othello.Board, depth int) Result {
	s.stats.Nodes++
	if s.caching {
		if r, ok := s.caches[RoleMinimaxMin].probe(board, depth); ok {
			s.stats.CacheHits++
			return r
		}
	}

	oppo := othello.Opponent(s.root)
	moves := othello.PossibleMoves(board, oppo)
	if len(moves) == 0 || depth == 0 {
		return s.leaf(board)
	}

	best := Result{Move: moves[0], Value: math.Inf(1)}
	for _, m := range moves {
		r := s.minimaxMax(othello.PlayMove(board, oppo, m), depth-1)
		if r.Value < best.Value {
			best = Result{Move: m, Value: r.Value}
		}
	}

	if s.caching {
		s.caches[RoleMinimaxMin].store(board, best, depth, BoundExact)
	}
	return best
}

// Full minimax evaluation of 'board' for 'color', searching 'limit' plies
// (Unbounded for no limit)
func (s *Session) Minimax(board othello.Board, color othello.Color, limit int, caching bool) Result {
	s.begin(color, caching, false)
	result := s.minimaxMax(board, limit)
	s.end(Minimax, limit, result)
	return result
}

// Best move for 'color' according to minimax, othello.NoMove if it has none
func (s *Session) SelectMoveMinimax(board othello.Board, color othello.Color, limit int, caching bool) othello.Move {
	return s.Minimax(board, color, limit, caching).Move
}

package search

import (
	"cmp"
	"math"
	"slices"

	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
)

type candidate struct {
	move  othello.Move
	board othello.Board
	index int // position in the move generator's order
	key   float64
}

// Successors of 'board' after each of 'moves' by 'mover', with ordering on
// they're sorted by one-ply utility for the root (stable, so equal keys keep
// generator order)
func (s *Session) candidates(board othello.Board, mover othello.Color, moves []othello.Move, descending bool) []candidate {
	list := make([]candidate, len(moves))
	for i, m := range moves {
		list[i] = candidate{move: m, board: othello.PlayMove(board, mover, m), index: i}
	}

	if s.ordering {
		for i := range list {
			list[i].key = eval.ComputeUtility(list[i].board, s.root)
		}
		slices.SortStableFunc(list, func(a, b candidate) int {
			if descending {
				return cmp.Compare(b.key, a.key)
			}
			return cmp.Compare(a.key, b.key)
		})
	}
	return list
}

// Value of a child in 'role' under (alpha, beta), from the cache or by
// recursion. Fresh results are memoised under the child's board even if the
// parent prunes right after.
func (s *Session) alphaBetaChild(role Role, board othello.Board, alpha, beta float64, depth, ply int) Result {
	if s.caching {
		if r, ok := s.caches[role].probeWindow(board, depth, alpha, beta); ok {
			s.stats.Nodes++
			s.stats.CacheHits++
			return r
		}
	}

	var r Result
	if role == RoleAlphaBetaMax {
		r = s.alphaBetaMax(board, alpha, beta, depth, ply)
	} else {
		r = s.alphaBetaMin(board, alpha, beta, depth, ply)
	}

	if s.caching {
		s.caches[role].store(board, r, depth, boundOf(r.Value, alpha, beta))
	}
	return r
}

// MIN node, returns as soon as the running minimum drops to alpha
func (s *Session) alphaBetaMin(board othello.Board, alpha, beta float64, depth, ply int) Result {
	s.stats.Nodes++
	if s.caching {
		if r, ok := s.caches[RoleAlphaBetaMin].probeWindow(board, depth, alpha, beta); ok {
			s.stats.CacheHits++
			return r
		}
	}

	oppo := othello.Opponent(s.root)
	moves := othello.PossibleMoves(board, oppo)
	if len(moves) == 0 || depth == 0 {
		return s.leaf(board)
	}

	alpha0, beta0 := alpha, beta
	best := Result{Move: othello.NoMove, Value: math.Inf(1)}

	for _, c := range s.candidates(board, oppo, moves, false) {
		r := s.alphaBetaChild(RoleAlphaBetaMax, c.board, alpha, beta, depth-1, ply+1)

		if r.Value < best.Value {
			best = Result{Move: c.move, Value: r.Value}
		}

		// fail-low
		if best.Value <= alpha {
			s.stats.Cutoffs++
			return best
		}

		if best.Value < beta {
			beta = best.Value
		}
	}

	if s.caching {
		s.caches[RoleAlphaBetaMin].store(board, best, depth, boundOf(best.Value, alpha0, beta0))
	}
	return best
}

// MAX node, returns as soon as the running maximum reaches beta
func (s *Session) alphaBetaMax(board othello.Board, alpha, beta float64, depth, ply int) Result {
	s.stats.Nodes++
	if s.caching {
		if r, ok := s.caches[RoleAlphaBetaMax].probeWindow(board, depth, alpha, beta); ok {
			s.stats.CacheHits++
			return r
		}
	}

	moves := othello.PossibleMoves(board, s.root)
	if len(moves) == 0 || depth == 0 {
		return s.leaf(board)
	}

	alpha0, beta0 := alpha, beta
	best := Result{Move: othello.NoMove, Value: math.Inf(-1)}
	bestIndex := len(moves)

	// Ordering must not change the chosen move, so at the root a tie goes to
	// the move generated first (what the unordered search would keep)
	tieBreak := s.ordering && ply == 0

	for _, c := range s.candidates(board, s.root, moves, true) {
		childAlpha := alpha
		earlier := tieBreak && c.index < bestIndex && !math.IsInf(best.Value, -1)
		if earlier {
			// widen just enough to get an exact value for a tie
			childAlpha = math.Nextafter(alpha, math.Inf(-1))
		}

		r := s.alphaBetaChild(RoleAlphaBetaMin, c.board, childAlpha, beta, depth-1, ply+1)

		if r.Value > best.Value || (earlier && r.Value == best.Value) {
			best = Result{Move: c.move, Value: r.Value}
			bestIndex = c.index
		}

		// fail-high
		if best.Value >= beta {
			s.stats.Cutoffs++
			return best
		}

		if best.Value > alpha {
			alpha = best.Value
		}
	}

	if s.caching {
		s.caches[RoleAlphaBetaMax].store(board, best, depth, boundOf(best.Value, alpha0, beta0))
	}
	return best
}

// Alpha-beta evaluation of 'board' for 'color' with the full (-Inf, +Inf)
// window, same value as Minimax at the same depth
func (s *Session) AlphaBeta(board othello.Board, color othello.Color, limit int, caching, ordering bool) Result {
	s.begin(color, caching, ordering)
	result := s.alphaBetaMax(board, math.Inf(-1), math.Inf(1), limit, 0)
	s.end(AlphaBeta, limit, result)
	return result
}

// Best move for 'color' according to alpha-beta, othello.NoMove if it has none
func (s *Session) SelectMoveAlphaBeta(board othello.Board, color othello.Color, limit int, caching, ordering bool) othello.Move {
	return s.AlphaBeta(board, color, limit, caching, ordering).Move
}

// Best move with the session's options
func (s *Session) SelectMove(board othello.Board, color othello.Color) othello.Move {
	o := s.opts
	if o.Algorithm == Minimax {
		return s.SelectMoveMinimax(board, color, o.Depth, o.Caching)
	}
	return s.SelectMoveAlphaBeta(board, color, o.Depth, o.Caching, o.Ordering)
}

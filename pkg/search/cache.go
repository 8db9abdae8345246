package search

import (
	"math"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// How a cached value relates to the true value of the position
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower       // fail-high, true value >= cached
	BoundUpper       // fail-low, true value <= cached
)

type cacheEntry struct {
	result Result
	depth  int // remaining depth the result was computed with
	bound  Bound
}

// Board -> result mapping for a single role. Unsynchronized.
type cache map[othello.Board]cacheEntry

// Unbounded searches compare as deeper than any finite one
func depthRank(depth int) int {
	if depth < 0 {
		return math.MaxInt
	}
	return depth
}

// Classify 'value' returned by a search ran with (alpha, beta)
func boundOf(value, alpha, beta float64) Bound {
	if value <= alpha {
		return BoundUpper
	}
	if value >= beta {
		return BoundLower
	}
	return BoundExact
}

// Exact entry computed at least 'depth' deep
func (c cache) probe(board othello.Board, depth int) (Result, bool) {
	e, ok := c[board]
	if !ok || e.bound != BoundExact || depthRank(e.depth) < depthRank(depth) {
		return Result{}, false
	}
	return e.result, true
}

// Entry usable inside the (alpha, beta) window: exact, or a bound that
// already proves the cutoff
func (c cache) probeWindow(board othello.Board, depth int, alpha, beta float64) (Result, bool) {
	e, ok := c[board]
	if !ok || depthRank(e.depth) < depthRank(depth) {
		return Result{}, false
	}

	switch e.bound {
	case BoundExact:
		return e.result, true
	case BoundLower:
		if e.result.Value >= beta {
			return e.result, true
		}
	case BoundUpper:
		if e.result.Value <= alpha {
			return e.result, true
		}
	}
	return Result{}, false
}

// Keeps the deepest entry, an exact value wins over a bound of the same depth
func (c cache) store(board othello.Board, result Result, depth int, bound Bound) {
	if old, ok := c[board]; ok {
		oldRank, newRank := depthRank(old.depth), depthRank(depth)
		if newRank < oldRank || (newRank == oldRank && bound != BoundExact && old.bound == BoundExact) {
			return
		}
	}
	c[board] = cacheEntry{result: result, depth: depth, bound: bound}
}

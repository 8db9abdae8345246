package search

import (
	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// State shared by the successive searches of one game: the four role caches,
// the frontier evaluator and the per-call counters.
//
// Caches live as long as the session and are never evicted, positions
// visited by an earlier search are reused by the later ones. A Session is not
// safe for concurrent use, give each goroutine its own.
type Session struct {
	opts     *Options
	caches   [roleCount]cache
	owner    othello.Color // color the cached values were computed for
	root     othello.Color // root player of the running search
	evaluate Evaluator
	caching  bool
	ordering bool
	stats    Stats
	listener StatsListener
}

// Create new session, nil options mean DefaultOptions
func NewSession(opts *Options) *Session {
	if opts == nil {
		opts = DefaultOptions()
	}
	s := &Session{
		opts:     opts,
		listener: NewStatsListener(),
	}
	s.SetEvaluator(opts.Evaluator)
	return s
}

func (s *Session) clearCaches() {
	for i := range s.caches {
		s.caches[i] = make(cache)
	}
	s.owner = othello.Empty
}

// Drop every cached position and the last counters, for a new game
func (s *Session) Reset() {
	s.clearCaches()
	s.stats = Stats{}
}

func (s *Session) Options() *Options {
	return s.opts
}

func (s *Session) SetOptions(opts *Options) {
	s.opts = opts
	s.SetEvaluator(opts.Evaluator)
}

// Set the frontier evaluator, nil restores eval.ComputeUtility.
// Cached values depend on it, so changing it resets the caches.
func (s *Session) SetEvaluator(e Evaluator) {
	if e == nil {
		e = eval.ComputeUtility
	}
	s.evaluate = e
	s.clearCaches()
}

func (s *Session) StatsListener() *StatsListener {
	return &s.listener
}

func (s *Session) SetListener(listener StatsListener) {
	s.listener = listener
}

// Counters of the last search
func (s *Session) Stats() Stats {
	return s.stats
}

// Number of entries in given role's cache
func (s *Session) CacheSize(role Role) int {
	return len(s.caches[role])
}

// Prepare counters and caches for a search rooted at 'color'
func (s *Session) begin(color othello.Color, caching, ordering bool) {
	othello.MustColor(color)
	// Values are stored from the root's perspective, they mean nothing to the other player
	if s.owner != color {
		s.clearCaches()
		s.owner = color
	}
	s.root = color
	s.caching = caching
	s.ordering = ordering
	s.stats.reset()
}

func (s *Session) end(algorithm Algorithm, depth int, result Result) {
	s.stats.finish()
	s.listener.invoke(SearchInfo{
		Algorithm: algorithm,
		Color:     s.root,
		Depth:     depth,
		Result:    result,
		Stats:     s.stats,
	})
}

// Terminal or depth-exhausted node
func (s *Session) leaf(board othello.Board) Result {
	s.stats.Leaves++
	return Result{Move: othello.NoMove, Value: s.evaluate(board, s.root)}
}

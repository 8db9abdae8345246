package search

import (
	"math"
	"testing"

	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Plain recursive minimax, no session, no caching
func referenceMinimax(b othello.Board, root, mover othello.Color, depth int) Result {
	moves := othello.PossibleMoves(b, mover)
	if len(moves) == 0 || depth == 0 {
		return Result{Move: othello.NoMove, Value: eval.ComputeUtility(b, root)}
	}

	maximizing := mover == root
	best := Result{Move: moves[0], Value: math.Inf(1)}
	if maximizing {
		best.Value = math.Inf(-1)
	}
	for _, m := range moves {
		v := referenceMinimax(othello.PlayMove(b, mover, m), root, othello.Opponent(mover), depth-1).Value
		if (maximizing && v > best.Value) || (!maximizing && v < best.Value) {
			best = Result{Move: m, Value: v}
		}
	}
	return best
}

type position struct {
	name  string
	board othello.Board
	color othello.Color
}

// Deterministic game prefixes, so the tests cover a few different shapes
func samplePositions() []position {
	positions := []position{
		{"start4", othello.InitialBoard(4), othello.Dark},
		{"start6", othello.InitialBoard(6), othello.Dark},
	}

	b, color := othello.InitialBoard(6), othello.Dark
	for ply := 1; ply <= 8; ply++ {
		moves := othello.PossibleMoves(b, color)
		if len(moves) == 0 {
			break
		}
		b = othello.PlayMove(b, color, moves[(ply*7)%len(moves)])
		color = othello.Opponent(color)
		if ply%3 == 0 && othello.HasMoves(b, color) {
			positions = append(positions, position{name: "mid6", board: b, color: color})
		}
	}
	return positions
}

// Dark has nothing to capture, Light can take (1,0) by playing (2,0)
func darkCannotMove() othello.Board {
	return othello.NewBoard(4).With(0, 0, othello.Light).With(1, 0, othello.Dark)
}

func TestNoLegalMoveReturnsNoMove(t *testing.T) {
	b := darkCannotMove()
	if len(othello.PossibleMoves(b, othello.Light)) == 0 {
		t.Fatal("bad fixture: Light should have a move")
	}

	for _, limit := range []int{0, 1, 3, Unbounded} {
		for _, caching := range []bool{false, true} {
			s := NewSession(nil)
			if m := s.SelectMoveMinimax(b, othello.Dark, limit, caching); !m.IsNone() {
				t.Fatalf("minimax limit=%d caching=%v: got %v, want none", limit, caching, m)
			}
			for _, ordering := range []bool{false, true} {
				if m := s.SelectMoveAlphaBeta(b, othello.Dark, limit, caching, ordering); !m.IsNone() {
					t.Fatalf("alphabeta limit=%d caching=%v ordering=%v: got %v, want none", limit, caching, ordering, m)
				}
			}
		}
	}
}

func TestOpeningDepthOne(t *testing.T) {
	b := othello.InitialBoard(8)
	m := NewSession(nil).SelectMoveMinimax(b, othello.Dark, 1, false)

	if m.IsNone() {
		t.Fatal("expected an opening move, got none")
	}
	if !othello.IsLegal(b, othello.Dark, m) {
		t.Fatalf("%v is not a legal opening move", m)
	}
	// Every opening flips one disc, so the first one is kept
	if want := othello.PossibleMoves(b, othello.Dark)[0]; m != want {
		t.Fatalf("got %v, want first generated move %v", m, want)
	}
}

func TestDepthZeroIsImmediateCutoff(t *testing.T) {
	b := othello.InitialBoard(6)
	s := NewSession(nil)

	r := s.Minimax(b, othello.Dark, 0, false)
	if !r.Move.IsNone() || r.Value != eval.ComputeUtility(b, othello.Dark) {
		t.Fatalf("Minimax depth 0 = %v, want (none, utility)", r)
	}
	r = s.AlphaBeta(b, othello.Dark, 0, true, true)
	if !r.Move.IsNone() || r.Value != 0 {
		t.Fatalf("AlphaBeta depth 0 = %v, want (none, 0)", r)
	}
}

func TestMinimaxMatchesReference(t *testing.T) {
	for _, p := range samplePositions() {
		for _, depth := range []int{1, 2, 3} {
			want := referenceMinimax(p.board, p.color, p.color, depth)
			got := NewSession(nil).Minimax(p.board, p.color, depth, false)
			if got != want {
				t.Fatalf("%s depth=%d: Minimax=%v, reference=%v", p.name, depth, got, want)
			}
		}
	}
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	for _, p := range samplePositions() {
		for _, depth := range []int{1, 2, 3, 4} {
			mm := NewSession(nil).Minimax(p.board, p.color, depth, false)
			ab := NewSession(nil).AlphaBeta(p.board, p.color, depth, false, false)
			if mm != ab {
				t.Fatalf("%s depth=%d: AlphaBeta=%v, Minimax=%v", p.name, depth, ab, mm)
			}
		}
	}
}

func TestUnboundedSmallBoard(t *testing.T) {
	b := othello.InitialBoard(4)
	want := referenceMinimax(b, othello.Dark, othello.Dark, Unbounded)

	if got := NewSession(nil).Minimax(b, othello.Dark, Unbounded, false); got != want {
		t.Fatalf("Minimax unbounded=%v, want %v", got, want)
	}
	if got := NewSession(nil).Minimax(b, othello.Dark, Unbounded, true); got != want {
		t.Fatalf("Minimax unbounded cached=%v, want %v", got, want)
	}
	for _, ordering := range []bool{false, true} {
		for _, caching := range []bool{false, true} {
			if got := NewSession(nil).AlphaBeta(b, othello.Dark, Unbounded, caching, ordering); got != want {
				t.Fatalf("AlphaBeta unbounded caching=%v ordering=%v: %v, want %v", caching, ordering, got, want)
			}
		}
	}
}

func TestCachingDoesNotChangeResult(t *testing.T) {
	for _, p := range samplePositions() {
		for _, depth := range []int{1, 2, 3, 4} {
			plain := NewSession(nil).Minimax(p.board, p.color, depth, false)
			cached := NewSession(nil).Minimax(p.board, p.color, depth, true)
			if plain != cached {
				t.Fatalf("%s depth=%d: cached Minimax=%v, plain=%v", p.name, depth, cached, plain)
			}

			for _, ordering := range []bool{false, true} {
				plain := NewSession(nil).AlphaBeta(p.board, p.color, depth, false, ordering)
				cached := NewSession(nil).AlphaBeta(p.board, p.color, depth, true, ordering)
				if plain != cached {
					t.Fatalf("%s depth=%d ordering=%v: cached AlphaBeta=%v, plain=%v", p.name, depth, ordering, cached, plain)
				}
			}
		}
	}
}

func TestOrderingDoesNotChangeResult(t *testing.T) {
	for _, p := range samplePositions() {
		for _, depth := range []int{1, 2, 3, 4} {
			for _, caching := range []bool{false, true} {
				unordered := NewSession(nil).AlphaBeta(p.board, p.color, depth, caching, false)
				ordered := NewSession(nil).AlphaBeta(p.board, p.color, depth, caching, true)
				if unordered != ordered {
					t.Fatalf("%s depth=%d caching=%v: ordered=%v, unordered=%v", p.name, depth, caching, ordered, unordered)
				}
			}
		}
	}
}

func TestAlphaBetaIdempotent(t *testing.T) {
	for _, p := range samplePositions() {
		s := NewSession(nil)
		first := s.AlphaBeta(p.board, p.color, 4, true, true)
		second := s.AlphaBeta(p.board, p.color, 4, true, true)
		if first != second {
			t.Fatalf("%s: second call=%v, first=%v", p.name, second, first)
		}
		if s.Stats().CacheHits == 0 {
			t.Fatalf("%s: second call should be served by the cache, %v", p.name, s.Stats())
		}
	}
}

func TestAlphaBetaVisitsFewerNodes(t *testing.T) {
	for _, p := range samplePositions() {
		mm, ab := NewSession(nil), NewSession(nil)
		mm.Minimax(p.board, p.color, 4, false)
		ab.AlphaBeta(p.board, p.color, 4, false, false)

		if ab.Stats().Nodes > mm.Stats().Nodes {
			t.Fatalf("%s: alpha-beta visited %d nodes, minimax %d", p.name, ab.Stats().Nodes, mm.Stats().Nodes)
		}
		t.Logf("%s: minimax %v, alphabeta %v", p.name, mm.Stats(), ab.Stats())
	}
}

func TestCachesAreRoleScoped(t *testing.T) {
	b := othello.InitialBoard(6)
	s := NewSession(nil)

	s.Minimax(b, othello.Dark, 3, true)
	if s.CacheSize(RoleMinimaxMax) == 0 || s.CacheSize(RoleMinimaxMin) == 0 {
		t.Fatalf("minimax caches should be populated: max=%d min=%d",
			s.CacheSize(RoleMinimaxMax), s.CacheSize(RoleMinimaxMin))
	}
	if s.CacheSize(RoleAlphaBetaMax) != 0 || s.CacheSize(RoleAlphaBetaMin) != 0 {
		t.Fatal("alpha-beta caches should stay empty after a minimax search")
	}

	s.AlphaBeta(b, othello.Dark, 3, true, false)
	if s.CacheSize(RoleAlphaBetaMax) == 0 || s.CacheSize(RoleAlphaBetaMin) == 0 {
		t.Fatal("alpha-beta caches should be populated")
	}

	// Caching off leaves everything as it was
	var before [roleCount]int
	for r := Role(0); r < roleCount; r++ {
		before[r] = s.CacheSize(r)
	}
	s.AlphaBeta(b, othello.Dark, 4, false, true)
	s.Minimax(b, othello.Dark, 4, false)
	for r := Role(0); r < roleCount; r++ {
		if s.CacheSize(r) != before[r] {
			t.Fatalf("%v: search without caching wrote entries (%d -> %d)", r, before[r], s.CacheSize(r))
		}
	}

	s.Reset()
	for r := Role(0); r < roleCount; r++ {
		if s.CacheSize(r) != 0 {
			t.Fatalf("%v cache not empty after Reset", r)
		}
	}
}

func TestCachePersistsAcrossCalls(t *testing.T) {
	b := othello.InitialBoard(6)
	s := NewSession(nil)

	s.Minimax(b, othello.Dark, 4, true)
	fresh := s.Stats().Nodes

	// Dark plays, Light answers: the new root was already explored
	m := s.SelectMoveMinimax(b, othello.Dark, 4, true)
	b = othello.PlayMove(b, othello.Dark, m)
	b = othello.PlayMove(b, othello.Light, othello.PossibleMoves(b, othello.Light)[0])

	s.Minimax(b, othello.Dark, 2, true)
	if s.Stats().CacheHits == 0 || s.Stats().Nodes >= fresh {
		t.Fatalf("expected cache reuse on the follow-up search, %v (first search %d nodes)", s.Stats(), fresh)
	}
}

func TestColorSwitchDropsCache(t *testing.T) {
	b := othello.InitialBoard(6)
	s := NewSession(nil)
	s.AlphaBeta(b, othello.Dark, 3, true, false)

	got := s.AlphaBeta(b, othello.Light, 3, true, false)
	want := NewSession(nil).AlphaBeta(b, othello.Light, 3, false, false)
	if got != want {
		t.Fatalf("Light search reused Dark's cache: %v, want %v", got, want)
	}
}

func TestHeuristicEvaluator(t *testing.T) {
	opts := DefaultOptions().SetEvaluator(eval.ComputeHeuristic)
	for _, p := range samplePositions() {
		mm := NewSession(opts).Minimax(p.board, p.color, 3, false)
		ab := NewSession(opts).AlphaBeta(p.board, p.color, 3, true, true)
		if mm != ab {
			t.Fatalf("%s: heuristic AlphaBeta=%v, Minimax=%v", p.name, ab, mm)
		}
	}
}

func TestSelectMoveUsesOptions(t *testing.T) {
	b := othello.InitialBoard(6)
	var infos []SearchInfo

	s := NewSession(DefaultOptions().SetAlgorithm(Minimax).SetDepth(2).SetCaching(true))
	s.StatsListener().OnSearchEnd(func(info SearchInfo) {
		infos = append(infos, info)
	})

	m := s.SelectMove(b, othello.Dark)
	if len(infos) != 1 {
		t.Fatalf("listener called %d times, want 1", len(infos))
	}
	info := infos[0]
	if info.Algorithm != Minimax || info.Depth != 2 || info.Result.Move != m || info.Color != othello.Dark {
		t.Fatalf("unexpected search info %+v (move %v)", info, m)
	}
	if info.Stats.Nodes == 0 || info.Stats.Leaves == 0 {
		t.Fatalf("empty stats %v", info.Stats)
	}

	s.SetOptions(DefaultOptions().SetDepth(2))
	if m2 := s.SelectMove(b, othello.Dark); m2 != m || infos[1].Algorithm != AlphaBeta {
		t.Fatalf("alpha-beta picked %v, minimax %v (%v)", m2, m, infos[1].Algorithm)
	}
}

func TestInvalidColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on invalid color")
		}
	}()
	NewSession(nil).SelectMoveAlphaBeta(othello.InitialBoard(4), othello.Empty, 1, false, false)
}

func BenchmarkMinimax(b *testing.B) {
	board := othello.InitialBoard(8)
	for i := 0; i < b.N; i++ {
		NewSession(nil).Minimax(board, othello.Dark, 4, false)
	}
}

func BenchmarkAlphaBeta(b *testing.B) {
	board := othello.InitialBoard(8)
	for i := 0; i < b.N; i++ {
		NewSession(nil).AlphaBeta(board, othello.Dark, 4, false, false)
	}
}

func BenchmarkAlphaBetaCachedOrdered(b *testing.B) {
	board := othello.InitialBoard(8)
	for i := 0; i < b.N; i++ {
		NewSession(nil).AlphaBeta(board, othello.Dark, 4, true, true)
	}
}

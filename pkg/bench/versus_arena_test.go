package bench

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/search"
)

type countingListener struct {
	mu       sync.Mutex
	games    int
	workers  int
	summary  []VersusSummaryInfo
	maxMoves int
}

func (c *countingListener) OnGameFinished(info VersusWorkerInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.games++
	c.maxMoves = max(c.maxMoves, info.GameMoveNum)
}

func (c *countingListener) OnFinishedWork(VersusWorkerInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.workers++
}

func (c *countingListener) Summary(info VersusSummaryInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = append(c.summary, info)
}

func smallArena() *VersusArena {
	return NewVersusArena(4,
		Agent{Name: "minimax-1", Options: search.DefaultOptions().SetAlgorithm(search.Minimax).SetDepth(1)},
		Agent{Name: "alphabeta-3", Options: search.DefaultOptions().SetDepth(3).SetCaching(true).SetOrdering(true)},
	)
}

func TestArenaGameCounts(t *testing.T) {
	arena := smallArena()
	arena.Setup(10, 3, 2)

	l := &countingListener{}
	if err := arena.Start(l); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if arena.Total() != 10 {
		t.Fatalf("played %d games, want 10", arena.Total())
	}
	if l.games != 10 || l.workers != 3 || len(l.summary) != 1 {
		t.Fatalf("listener saw %d games, %d workers, %d summaries", l.games, l.workers, len(l.summary))
	}

	s := l.summary[0]
	if s.P1Wins+s.P2Wins+s.Draws != s.TotalGames {
		t.Fatalf("inconsistent summary %+v", s)
	}
	if s.FirstToMoveWins+s.SecondToMoveWins+s.Draws != s.TotalGames {
		t.Fatalf("first/second split doesn't add up: %+v", s)
	}
	// 4x4 has 12 empty squares
	if l.maxMoves > 12 {
		t.Fatalf("game with %d moves on a 4x4 board", l.maxMoves)
	}
}

func TestArenaMoreWorkersThanGames(t *testing.T) {
	arena := smallArena()
	arena.Setup(2, 8, 0)

	l := &countingListener{}
	if err := arena.Start(l); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if l.games != 2 || l.workers != 2 || l.summary[0].Workers != 2 {
		t.Fatalf("got %d games over %d workers", l.games, l.workers)
	}
}

func TestArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := smallArena().WithContext(ctx)
	arena.Setup(20, 2, 0)

	l := &countingListener{}
	if err := arena.Start(l); err != nil {
		t.Fatalf("cancelled arena should stop quietly, got %v", err)
	}
	if arena.Total() != 0 || len(l.summary) != 1 {
		t.Fatalf("played %d games after cancel", arena.Total())
	}
}

func TestArenaInvalidSetup(t *testing.T) {
	arena := smallArena()
	arena.Size = 5
	if err := arena.Start(nil); err == nil {
		t.Fatal("odd board size should fail")
	}

	arena = NewVersusArena(4, Agent{Name: "a"}, Agent{Name: "b"})
	if err := arena.Start(nil); err == nil {
		t.Fatal("missing options should fail")
	}
}

func TestToAgentResult(t *testing.T) {
	tests := []struct {
		outcome     GameOutcome
		p1WentFirst bool
		want        VersusMatchResult
	}{
		{GameOutcome{IsDraw: true}, true, VersusDraw},
		{GameOutcome{IsDraw: true}, false, VersusDraw},
		{GameOutcome{FirstPlayerWon: true}, true, VersusPl1Win},
		{GameOutcome{FirstPlayerWon: true}, false, VersusPl2Win},
		{GameOutcome{FirstPlayerWon: false}, true, VersusPl2Win},
		{GameOutcome{FirstPlayerWon: false}, false, VersusPl1Win},
	}
	for _, tt := range tests {
		if got := toAgentResult(tt.outcome, tt.p1WentFirst); got != tt.want {
			t.Errorf("toAgentResult(%+v, %v)=%v, want %v", tt.outcome, tt.p1WentFirst, got, tt.want)
		}
	}
}

func TestComputeOutcome(t *testing.T) {
	b := othello.NewBoard(4)
	for row := range 4 {
		for col := range 4 {
			c := othello.Dark
			if row == 3 {
				c = othello.Light
			}
			b = b.With(col, row, c)
		}
	}
	if got := computeOutcome(b); got.IsDraw || !got.FirstPlayerWon {
		t.Fatalf("12-4 for Dark should be a first player win, got %+v", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("unfinished game should panic")
		}
	}()
	computeOutcome(othello.InitialBoard(4))
}

func TestRenderBoard(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))

	want := ". . . .\n. O X .\n. X O .\n. . . .\n"
	if got := RenderBoard(out, othello.InitialBoard(4)); got != want {
		t.Fatalf("RenderBoard=\n%s\nwant\n%s", got, want)
	}
}

func TestTermListenerSummary(t *testing.T) {
	var buf bytes.Buffer
	tl := &TermListener{out: termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))}

	al := NewArenaListener(tl, nil, LogListener{Logger: zerolog.Nop()})
	al.OnGameFinished(VersusWorkerInfo{WorkerID: 1, NGames: 2, FinishedGames: 1, Board: othello.InitialBoard(4), Result: VersusPl1Win, P1WentFirst: true})
	al.Summary(VersusSummaryInfo{TotalGames: 4, P1Wins: 3, Draws: 1, Workers: 2, P1Name: "alpha", P2Name: "beta"})

	text := buf.String()
	for _, s := range []string{"[worker 1] game 1/2: P1 (2-2, P1 first", "Summary", "alpha", "75.0%"} {
		if !strings.Contains(text, s) {
			t.Fatalf("output missing %q:\n%s", s, text)
		}
	}
}

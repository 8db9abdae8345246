package bench

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Workers call the listener concurrently
type ListenerLike interface {
	OnGameFinished(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(info VersusSummaryInfo)
}

type DefaultListener struct{}

func (DefaultListener) OnGameFinished(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo)       {}

// Prints a colored line per finished game and a summary table
type TermListener struct {
	mu        sync.Mutex
	out       *termenv.Output
	ShowBoard bool
}

func NewTermListener(w io.Writer) *TermListener {
	return &TermListener{out: termenv.NewOutput(w)}
}

func (tl *TermListener) resultStyle(r VersusMatchResult) termenv.Style {
	s := tl.out.String(r.String())
	switch r {
	case VersusPl1Win:
		return s.Foreground(termenv.ANSIGreen).Bold()
	case VersusPl2Win:
		return s.Foreground(termenv.ANSIRed).Bold()
	}
	return s.Foreground(termenv.ANSIYellow)
}

func (tl *TermListener) OnGameFinished(info VersusWorkerInfo) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	dark, light := othello.Score(info.Board)
	first := "P2"
	if info.P1WentFirst {
		first = "P1"
	}
	fmt.Fprintf(tl.out, "[worker %d] game %d/%d: %s (%d-%d, %s first, %d moves) P1 %d P2 %d D %d\n",
		info.WorkerID, info.FinishedGames, info.NGames, tl.resultStyle(info.Result),
		dark, light, first, info.GameMoveNum, info.P1Wins, info.P2Wins, info.Draws)

	if tl.ShowBoard {
		fmt.Fprint(tl.out, RenderBoard(tl.out, info.Board))
	}
}

func (tl *TermListener) OnFinishedWork(info VersusWorkerInfo) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	fmt.Fprintf(tl.out, "[worker %d] %s after %d games\n",
		info.WorkerID, tl.out.String("done").Faint(), info.FinishedGames)
}

func (tl *TermListener) Summary(info VersusSummaryInfo) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	pct := func(n int) float64 {
		if info.TotalGames == 0 {
			return 0
		}
		return 100 * float64(n) / float64(info.TotalGames)
	}

	fmt.Fprintln(tl.out, tl.out.String("Summary").Bold().Underline())
	fmt.Fprintf(tl.out, "  games:   %d (%d workers)\n", info.TotalGames, info.Workers)
	fmt.Fprintf(tl.out, "  %s %-14s %5d (%.1f%%)\n", tl.resultStyle(VersusPl1Win), info.P1Name, info.P1Wins, pct(info.P1Wins))
	fmt.Fprintf(tl.out, "  %s %-14s %5d (%.1f%%)\n", tl.resultStyle(VersusPl2Win), info.P2Name, info.P2Wins, pct(info.P2Wins))
	fmt.Fprintf(tl.out, "  %s %-12s %5d (%.1f%%)\n", tl.resultStyle(VersusDraw), "", info.Draws, pct(info.Draws))
	fmt.Fprintf(tl.out, "  first to move won %d, second %d\n", info.FirstToMoveWins, info.SecondToMoveWins)
}

// Board grid with Dark and Light discs colored for the given output
func RenderBoard(out *termenv.Output, b othello.Board) string {
	var sb strings.Builder
	for row := range b.Size() {
		for col := range b.Size() {
			if col > 0 {
				sb.WriteByte(' ')
			}
			c := b.At(col, row)
			s := out.String(string(c.Symbol()))
			switch c {
			case othello.Dark:
				s = s.Foreground(termenv.ANSIBrightBlue).Bold()
			case othello.Light:
				s = s.Foreground(termenv.ANSIBrightWhite).Bold()
			default:
				s = s.Faint()
			}
			sb.WriteString(s.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

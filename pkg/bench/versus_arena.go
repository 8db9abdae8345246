package bench

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/search"
)

/*
Arena benchmark subpackage, plays a series of games between two search
configurations. The first mover of every game is drawn at random and always
plays Dark.
*/

type VersusArena struct {
	VersusArenaStats
	Player1     Agent
	Player2     Agent
	Size        int
	NGames      int
	NWorkers    int
	RandomPlies int
	ctx         context.Context
	logger      zerolog.Logger
}

func NewVersusArena(size int, p1, p2 Agent) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		Size:     size,
		NGames:   100,
		NWorkers: 2,
		ctx:      context.Background(),
		logger:   zerolog.Nop(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) WithLogger(logger zerolog.Logger) *VersusArena {
	va.logger = logger
	return va
}

// Number of games, worker goroutines and random opening plies per game
func (va *VersusArena) Setup(nGames, nWorkers, randomPlies int) {
	va.NGames = max(nGames, 0)
	va.NWorkers = max(nWorkers, 1)
	va.RandomPlies = max(randomPlies, 0)
}

// Play all games and block until they're done, the context is cancelled or
// a worker fails. The listener's Summary is called in every case.
func (va *VersusArena) Start(listener ListenerLike) error {
	if listener == nil {
		listener = DefaultListener{}
	}
	if va.Player1.Options == nil || va.Player2.Options == nil {
		return errors.New("both agents need search options")
	}
	if va.Size < othello.MinSize || va.Size > othello.MaxSize || va.Size%2 != 0 {
		return errors.Errorf("invalid board size %d", va.Size)
	}

	va.reset()
	nWorkers := min(va.NWorkers, max(va.NGames, 1))
	nGames := va.NGames / nWorkers
	rest := va.NGames % nWorkers

	va.logger.Info().
		Int("games", va.NGames).
		Int("workers", nWorkers).
		Int("size", va.Size).
		Str("p1", va.Player1.Name).
		Str("p2", va.Player2.Name).
		Msg("arena-start")

	g, ctx := errgroup.WithContext(va.ctx)
	for id := range nWorkers {
		n := nGames
		if id < rest {
			n++
		}
		g.Go(func() error {
			return va.worker(ctx, id, n, listener)
		})
	}
	err := g.Wait()

	summary := va.summary(nWorkers)
	listener.Summary(summary)
	va.logger.Info().
		Int("games", summary.TotalGames).
		Int("p1_wins", summary.P1Wins).
		Int("p2_wins", summary.P2Wins).
		Int("draws", summary.Draws).
		Msg("arena-done")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (va *VersusArena) summary(nWorkers int) VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          nWorkers,
		P1Name:           va.Player1.Name,
		P2Name:           va.Player2.Name,
	}
}

func (va *VersusArena) worker(ctx context.Context, id, nGames int, listener ListenerLike) error {
	// Sessions own their caches, so every worker gets its own pair
	p1 := search.NewSession(va.Player1.Options.Clone())
	p2 := search.NewSession(va.Player2.Options.Clone())
	local := VersusArenaStats{}

	for i := range nGames {
		if err := ctx.Err(); err != nil {
			return err
		}

		p1.Reset()
		p2.Reset()
		p1WentFirst := frand.Intn(2) == 0

		var (
			board othello.Board
			moves []othello.Move
			err   error
		)
		if p1WentFirst {
			board, moves, err = va.playGame(ctx, p1, p2)
		} else {
			board, moves, err = va.playGame(ctx, p2, p1)
		}
		if err != nil {
			return errors.Wrapf(err, "worker %d, game %d", id, i)
		}

		outcome := computeOutcome(board)
		result := toAgentResult(outcome, p1WentFirst)
		va.record(result, outcome)
		local.record(result, outcome)

		va.logger.Debug().
			Int("worker", id).
			Int("game", i).
			Int("moves", len(moves)).
			Str("winner", result.String()).
			Msg("game-done")

		listener.OnGameFinished(VersusWorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: i + 1,
			GameMoveNum:   len(moves),
			Moves:         moves,
			Board:         board,
			Result:        result,
			P1WentFirst:   p1WentFirst,
			P1Wins:        local.P1Wins(),
			P2Wins:        local.P2Wins(),
			Draws:         local.Draws(),
			P1Name:        va.Player1.Name,
			P2Name:        va.Player2.Name,
		})
	}

	listener.OnFinishedWork(VersusWorkerInfo{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: nGames,
		P1Wins:        local.P1Wins(),
		P2Wins:        local.P2Wins(),
		Draws:         local.Draws(),
		P1Name:        va.Player1.Name,
		P2Name:        va.Player2.Name,
	})
	return nil
}

// Play one game, 'first' plays Dark. A side without a legal move passes, the
// game ends when neither can move.
func (va *VersusArena) playGame(ctx context.Context, first, second *search.Session) (othello.Board, []othello.Move, error) {
	board := othello.InitialBoard(va.Size)
	moves := make([]othello.Move, 0, va.Size*va.Size)
	color := othello.Dark

	players := map[othello.Color]*search.Session{
		othello.Dark:  first,
		othello.Light: second,
	}

	for ply := 0; !othello.GameOver(board); {
		if err := ctx.Err(); err != nil {
			return board, moves, err
		}

		if !othello.HasMoves(board, color) {
			color = othello.Opponent(color)
			continue
		}

		var m othello.Move
		if ply < va.RandomPlies {
			legal := othello.PossibleMoves(board, color)
			m = legal[frand.Intn(len(legal))]
		} else {
			m = players[color].SelectMove(board, color)
		}
		if m.IsNone() {
			return board, moves, errors.Errorf("%s returned no move with legal moves available", color)
		}

		board = othello.PlayMove(board, color, m)
		moves = append(moves, m)
		color = othello.Opponent(color)
		ply++
	}
	return board, moves, nil
}

package bench

import (
	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Distributes arena events to several listeners, in order
type ArenaListener struct {
	listeners []ListenerLike
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	al := &ArenaListener{listeners: make([]ListenerLike, 0, len(listeners))}
	for _, l := range listeners {
		if l != nil {
			al.listeners = append(al.listeners, l)
		}
	}
	return al
}

func (al *ArenaListener) OnGameFinished(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnGameFinished(info)
	}
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedWork(info)
	}
}

func (al *ArenaListener) Summary(info VersusSummaryInfo) {
	for _, l := range al.listeners {
		l.Summary(info)
	}
}

// Writes arena events as structured log records
type LogListener struct {
	Logger zerolog.Logger
}

func (ll LogListener) OnGameFinished(info VersusWorkerInfo) {
	dark, light := othello.Score(info.Board)
	ll.Logger.Info().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames).
		Str("result", info.Result.String()).
		Bool("p1_first", info.P1WentFirst).
		Int("dark", dark).
		Int("light", light).
		Int("moves", info.GameMoveNum).
		Msg("game")
}

func (ll LogListener) OnFinishedWork(info VersusWorkerInfo) {
	ll.Logger.Debug().
		Int("worker", info.WorkerID).
		Int("games", info.FinishedGames).
		Msg("worker-done")
}

func (ll LogListener) Summary(info VersusSummaryInfo) {
	ll.Logger.Info().
		Int("total_games", info.TotalGames).
		Str("player1", info.P1Name).
		Int("player1_wins", info.P1Wins).
		Str("player2", info.P2Name).
		Int("player2_wins", info.P2Wins).
		Int("draws", info.Draws).
		Int("first_to_move_wins", info.FirstToMoveWins).
		Int("second_to_move_wins", info.SecondToMoveWins).
		Msg("summary")
}

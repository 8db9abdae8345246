package main

/*

Othello arena

Plays a series of games between two search configurations and prints the
results. Interrupt with Ctrl+C to stop early and still get a summary.

*/

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-othello/pkg/bench"
	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/search"
)

type agentFlags struct {
	name      *string
	algorithm *string
	depth     *int
	caching   *bool
	ordering  *bool
	heuristic *bool
}

func registerAgent(prefix, name, algorithm string, depth int) agentFlags {
	return agentFlags{
		name:      flag.String(prefix+"-name", name, "Display name"),
		algorithm: flag.String(prefix+"-algorithm", algorithm, "Search algorithm (alphabeta, minimax)"),
		depth:     flag.Int(prefix+"-depth", depth, "Depth limit, -1 searches to the end"),
		caching:   flag.Bool(prefix+"-caching", true, "Keep transposition caches between moves"),
		ordering:  flag.Bool(prefix+"-ordering", true, "Order alpha-beta children by one-ply utility"),
		heuristic: flag.Bool(prefix+"-heuristic", false, "Evaluate leaves with the weighted heuristic"),
	}
}

func (af agentFlags) agent() (bench.Agent, error) {
	opts := search.DefaultOptions().
		SetDepth(*af.depth).
		SetCaching(*af.caching).
		SetOrdering(*af.ordering)

	switch *af.algorithm {
	case "alphabeta":
		opts.SetAlgorithm(search.AlphaBeta)
	case "minimax":
		opts.SetAlgorithm(search.Minimax)
	default:
		return bench.Agent{}, errors.Errorf("unknown algorithm %q", *af.algorithm)
	}
	if *af.heuristic {
		opts.SetEvaluator(eval.ComputeHeuristic)
	}
	return bench.Agent{Name: *af.name, Options: opts}, nil
}

func main() {
	var (
		games       = flag.Int("games", 20, "Number of games to play")
		workers     = flag.Int("workers", runtime.NumCPU(), "Number of worker goroutines")
		size        = flag.Int("size", 8, "Board size, even number between 4 and 12")
		randomPlies = flag.Int("random-plies", 4, "Random opening plies per game")
		showBoard   = flag.Bool("show-board", false, "Print the final board of every game")
		jsonLog     = flag.Bool("json", false, "Log results as JSON to stdout instead of the colored table")
		logLevel    = flag.String("log-level", "warn", "Log level for stderr diagnostics")
	)
	a1 := registerAgent("a1", "agent-1", "alphabeta", 4)
	a2 := registerAgent("a2", "agent-2", "alphabeta", 4)
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		flag.PrintDefaults()
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	p1, err := a1.agent()
	if err != nil {
		logger.Fatal().Err(err).Msg("a1")
	}
	p2, err := a2.agent()
	if err != nil {
		logger.Fatal().Err(err).Msg("a2")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	arena := bench.NewVersusArena(*size, p1, p2).WithContext(ctx).WithLogger(logger)
	arena.Setup(*games, *workers, *randomPlies)

	var listener bench.ListenerLike
	if *jsonLog {
		listener = bench.LogListener{Logger: zerolog.New(os.Stdout).With().Timestamp().Logger()}
	} else {
		tl := bench.NewTermListener(os.Stdout)
		tl.ShowBoard = *showBoard
		listener = tl
	}

	start := time.Now()
	if err := arena.Start(listener); err != nil {
		logger.Error().Err(err).Msg("arena failed")
		os.Exit(1)
	}
	logger.Info().Dur("elapsed", time.Since(start)).Msg("done")
}

package main

/*

Othello AI process

Speaks the game manager's line protocol on stdin/stdout. Diagnostics go to
stderr so they never mix with protocol output.

*/

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/protocol"
)

var (
	name      = flag.String("name", protocol.DefaultName, "Name announced to the game manager")
	logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error, disabled)")
	heuristic = flag.Bool("heuristic", false, "Evaluate leaves with the weighted heuristic instead of the disc difference")
)

func main() {
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		flag.PrintDefaults()
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Str("agent", *name).Logger()

	agent := protocol.NewAgent(*name, logger)
	if *heuristic {
		agent.Evaluator = eval.ComputeHeuristic
	}

	if err := agent.Run(os.Stdin, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("protocol failure")
		os.Exit(1)
	}
}

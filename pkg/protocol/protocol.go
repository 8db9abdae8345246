// Package protocol implements the line protocol between an AI process and the
// Othello game manager.
//
// The AI prints its name, then reads "color,limit,minimax,caching,ordering".
// After that each turn is a status line "SCORE <dark> <light>" followed by
// the board as a list of rows, answered with "<col> <row>". The manager ends
// the game with "FINAL <dark> <light>".
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/search"
)

const DefaultName = "Othello AI"

// Parameters sent by the manager right after the name exchange
type Config struct {
	Color    othello.Color
	Limit    int
	Minimax  bool
	Caching  bool
	Ordering bool
}

// Search options matching the received parameters
func (c Config) Options() *search.Options {
	algorithm := search.AlphaBeta
	if c.Minimax {
		algorithm = search.Minimax
	}
	return search.DefaultOptions().
		SetAlgorithm(algorithm).
		SetDepth(c.Limit).
		SetCaching(c.Caching).
		SetOrdering(c.Ordering)
}

// Parse "color,limit,minimax,caching,ordering"
func ParseConfig(line string) (Config, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 5 {
		return Config{}, errors.Errorf("expected 5 comma separated values, got %q", line)
	}

	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Config{}, errors.Wrapf(err, "field %d of %q", i, line)
		}
		values[i] = v
	}

	color := othello.Color(values[0])
	if color != othello.Dark && color != othello.Light {
		return Config{}, errors.Errorf("invalid color %d", values[0])
	}

	return Config{
		Color:    color,
		Limit:    values[1],
		Minimax:  values[2] == 1,
		Caching:  values[3] == 1,
		Ordering: values[4] == 1,
	}, nil
}

type Status struct {
	Final bool
	Dark  int
	Light int
}

// Parse "SCORE d l" or "FINAL d l"
func ParseStatus(line string) (Status, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Status{}, errors.Errorf("malformed status line %q", line)
	}

	var st Status
	switch fields[0] {
	case "SCORE":
	case "FINAL":
		st.Final = true
	default:
		return Status{}, errors.Errorf("unknown status %q", fields[0])
	}

	var err error
	if st.Dark, err = strconv.Atoi(fields[1]); err != nil {
		return Status{}, errors.Wrap(err, "dark score")
	}
	if st.Light, err = strconv.Atoi(fields[2]); err != nil {
		return Status{}, errors.Wrap(err, "light score")
	}
	return st, nil
}

type Agent struct {
	Name      string
	Logger    zerolog.Logger
	Evaluator search.Evaluator // leaf evaluator, nil keeps the disc difference
	session   *search.Session
}

func NewAgent(name string, logger zerolog.Logger) *Agent {
	if name == "" {
		name = DefaultName
	}
	return &Agent{Name: name, Logger: logger}
}

// Session of the current game, nil before the configuration line
func (a *Agent) Session() *search.Session {
	return a.session
}

func (a *Agent) configure(cfg Config) {
	opts := cfg.Options().SetEvaluator(a.Evaluator)
	a.session = search.NewSession(opts)
	a.session.StatsListener().OnSearchEnd(func(info search.SearchInfo) {
		a.Logger.Debug().
			Str("algorithm", info.Algorithm.String()).
			Str("move", info.Result.Move.String()).
			Float64("value", info.Result.Value).
			Uint64("nodes", info.Stats.Nodes).
			Uint64("hits", info.Stats.CacheHits).
			Uint64("cutoffs", info.Stats.Cutoffs).
			Int("time_ms", info.Stats.TimeMs).
			Msg("search-done")
	})

	a.Logger.Info().Str("algorithm", opts.Algorithm.String()).Msg("running")
	a.Logger.Info().Bool("caching", cfg.Caching).Msg("state caching")
	a.Logger.Info().Bool("ordering", cfg.Ordering).Msg("node ordering")
	if opts.Unbounded() {
		a.Logger.Info().Msg("depth limit is off")
	} else {
		a.Logger.Info().Int("depth", cfg.Limit).Msg("depth limit")
	}
	if cfg.Minimax && cfg.Ordering {
		a.Logger.Warn().Msg("node ordering has no impact on minimax")
	}
}

// Play one game over the given streams. Returns nil after FINAL or when the
// manager closes the input.
func (a *Agent) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	out := bufio.NewWriter(w)

	send := func(line string) error {
		if _, err := out.WriteString(line + "\n"); err != nil {
			return errors.Wrap(err, "write")
		}
		return errors.Wrap(out.Flush(), "flush")
	}

	readLine := func() (string, bool, error) {
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				return line, true, nil
			}
		}
		return "", false, errors.Wrap(scanner.Err(), "read")
	}

	if err := send(a.Name); err != nil {
		return err
	}

	line, ok, err := readLine()
	if err != nil || !ok {
		return err
	}
	cfg, err := ParseConfig(line)
	if err != nil {
		return errors.Wrap(err, "configuration")
	}
	a.configure(cfg)

	for {
		line, ok, err := readLine()
		if err != nil || !ok {
			return err
		}

		status, err := ParseStatus(line)
		if err != nil {
			return err
		}
		if status.Final {
			a.Logger.Info().Int("dark", status.Dark).Int("light", status.Light).Msg("game over")
			return nil
		}

		line, ok, err = readLine()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("board expected after status line")
		}
		board, err := othello.ParseBoard(line)
		if err != nil {
			return err
		}

		move := a.session.SelectMove(board, cfg.Color)
		if move.IsNone() {
			a.Logger.Warn().Msg("asked to move without a legal move")
		}
		if err := send(fmt.Sprintf("%d %d", move.Col, move.Row)); err != nil {
			return err
		}
	}
}

package search

import (
	"encoding/json"
	"strings"
)

type Options struct {
	Algorithm Algorithm
	Depth     int
	Caching   bool
	Ordering  bool      // alpha-beta only
	Evaluator Evaluator `json:"-"` // nil means eval.ComputeUtility
}

func (o Options) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(o)
	return strings.TrimSpace(builder.String())
}

const DefaultDepth int = 4

func DefaultOptions() *Options {
	return &Options{
		Algorithm: AlphaBeta,
		Depth:     DefaultDepth,
		Caching:   false,
		Ordering:  false,
	}
}

func (o *Options) SetAlgorithm(a Algorithm) *Options {
	o.Algorithm = a
	return o
}

// Set the depth limit, any negative value means Unbounded
func (o *Options) SetDepth(depth int) *Options {
	o.Depth = max(depth, Unbounded)
	return o
}

func (o *Options) SetCaching(caching bool) *Options {
	o.Caching = caching
	return o
}

func (o *Options) SetOrdering(ordering bool) *Options {
	o.Ordering = ordering
	return o
}

func (o *Options) SetEvaluator(e Evaluator) *Options {
	o.Evaluator = e
	return o
}

func (o *Options) Unbounded() bool {
	return o.Depth < 0
}

func (o *Options) Clone() *Options {
	clone := *o
	return &clone
}

package search

import (
	"fmt"
	"time"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Counters of a single top-level search call
type Stats struct {
	Nodes     uint64 // node function entries, including cache hits
	Leaves    uint64 // evaluator calls
	CacheHits uint64
	Cutoffs   uint64 // alpha-beta early returns
	start     time.Time
	TimeMs    int
}

func (s *Stats) reset() {
	*s = Stats{start: time.Now()}
}

func (s *Stats) finish() {
	s.TimeMs = max(int(time.Since(s.start).Milliseconds()), 0)
}

// Nodes per second
func (s Stats) Nps() uint64 {
	return s.Nodes * 1000 / uint64(max(s.TimeMs, 1))
}

func (s Stats) String() string {
	return fmt.Sprintf("Stats={nodes=%d, leaves=%d, hits=%d, cutoffs=%d, time=%dms}",
		s.Nodes, s.Leaves, s.CacheHits, s.Cutoffs, s.TimeMs)
}

type SearchInfo struct {
	Algorithm Algorithm
	Color     othello.Color
	Depth     int
	Result    Result
	Stats     Stats
}

type ListenerFunc func(SearchInfo)

type StatsListener struct {
	// called after every top-level search
	onSearchEnd ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach 'on search end' callback, called once per SelectMove* call
func (listener *StatsListener) OnSearchEnd(f ListenerFunc) *StatsListener {
	listener.onSearchEnd = f
	return listener
}

func (listener *StatsListener) invoke(info SearchInfo) {
	if listener.onSearchEnd != nil {
		listener.onSearchEnd(info)
	}
}

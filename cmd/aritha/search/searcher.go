package search

import (
	"context"
	"sync/atomic"
)

// Outcome is the answer of one federated lookup, tagged with its sequence.
type Outcome struct {
	// Seq orders outcomes by issue time. Bigger is newer.
	Seq uint64

	// Query the lookup ran with, trimmed.
	Query string

	Results []Result
}

// Searcher serializes lookups issued from one input box.
//
// Each lookup gets a monotonically increasing sequence number, and Accept
// drops every outcome older than the newest applied one. In-flight HTTP is
// not aborted; late answers are simply never rendered.
type Searcher struct {
	agg     *Aggregator
	issued  atomic.Uint64
	applied atomic.Uint64
}

func NewSearcher(agg *Aggregator) *Searcher {
	return &Searcher{agg: agg}
}

// Search runs one lookup and stamps the outcome.
func (s *Searcher) Search(ctx context.Context, query string) Outcome {
	seq := s.issued.Add(1)
	return Outcome{Seq: seq, Query: query, Results: s.agg.Search(ctx, query)}
}

// Accept reports whether the outcome is newer than everything applied so far,
// and marks it applied when it is. Stale outcomes answer false and change
// nothing.
func (s *Searcher) Accept(o Outcome) bool {
	for {
		cur := s.applied.Load()
		if o.Seq <= cur {
			return false
		}
		if s.applied.CompareAndSwap(cur, o.Seq) {
			return true
		}
	}
}

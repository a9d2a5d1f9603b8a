package search_test

import (
	"sync"
	"testing"
	"time"

	"github.com/arithahq/aritha/cmd/aritha/search"
)

type recorder struct {
	mu      sync.Mutex
	queries []string
	clears  int
}

func (r *recorder) onQuery(q string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, q)
}

func (r *recorder) onClear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears += 1
}

func (r *recorder) snapshot() ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.queries...), r.clears
}

func TestDebouncer(t *testing.T) {
	t.Run("rapid sends fire one evaluation with the last value", func(t *testing.T) {
		rec := &recorder{}
		testee := search.NewDebouncer(20*time.Millisecond, rec.onQuery, rec.onClear)
		defer testee.Stop()

		testee.Send("j")
		testee.Send("jo")
		testee.Send("joh")
		testee.Send("john")

		time.Sleep(100 * time.Millisecond)

		queries, clears := rec.snapshot()
		if len(queries) != 1 || queries[0] != "john" {
			t.Errorf("want one evaluation of the last value, got %v", queries)
		}
		if clears != 0 {
			t.Errorf("no clear expected, got %d", clears)
		}
	})

	t.Run("blank input clears synchronously and cancels the pending evaluation", func(t *testing.T) {
		rec := &recorder{}
		testee := search.NewDebouncer(20*time.Millisecond, rec.onQuery, rec.onClear)
		defer testee.Stop()

		testee.Send("john")
		testee.Send("   ")

		_, clears := rec.snapshot()
		if clears != 1 {
			t.Errorf("clear should fire without waiting, got %d", clears)
		}

		time.Sleep(100 * time.Millisecond)

		queries, _ := rec.snapshot()
		if len(queries) != 0 {
			t.Errorf("the pending evaluation should have been cancelled, got %v", queries)
		}
	})

	t.Run("input is trimmed before evaluation", func(t *testing.T) {
		rec := &recorder{}
		testee := search.NewDebouncer(10*time.Millisecond, rec.onQuery, rec.onClear)
		defer testee.Stop()

		testee.Send("  add team  ")
		time.Sleep(80 * time.Millisecond)

		queries, _ := rec.snapshot()
		if len(queries) != 1 || queries[0] != "add team" {
			t.Errorf("want trimmed query, got %v", queries)
		}
	})

	t.Run("separated sends each fire", func(t *testing.T) {
		rec := &recorder{}
		testee := search.NewDebouncer(10*time.Millisecond, rec.onQuery, rec.onClear)
		defer testee.Stop()

		testee.Send("team")
		time.Sleep(80 * time.Millisecond)
		testee.Send("client")
		time.Sleep(80 * time.Millisecond)

		queries, _ := rec.snapshot()
		if len(queries) != 2 || queries[0] != "team" || queries[1] != "client" {
			t.Errorf("want both evaluations, got %v", queries)
		}
	})

	t.Run("stop cancels outstanding work", func(t *testing.T) {
		rec := &recorder{}
		testee := search.NewDebouncer(20*time.Millisecond, rec.onQuery, rec.onClear)

		testee.Send("john")
		testee.Stop()

		time.Sleep(100 * time.Millisecond)

		queries, _ := rec.snapshot()
		if len(queries) != 0 {
			t.Errorf("stopped debouncer should not evaluate, got %v", queries)
		}
	})
}

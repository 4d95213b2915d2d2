package search

import (
	"math"
	"math/rand"

	tuner "github.com/kerntune/kerntune"
	"github.com/kerntune/kerntune/runner"
	"github.com/kerntune/kerntune/space"
)

// RandomOptions configures the random searcher: a fraction of the space to
// sample, and a seed for reproducibility.
type RandomOptions struct {
	Fraction float64
	Seed     uint64
}

func (o RandomOptions) validate(n int) error {
	if o.Fraction <= 0 || o.Fraction > 1 {
		return tuner.NewInvalidStrategyOptionsError("search.Random", "fraction must be in (0,1]")
	}
	return nil
}

type randomSearcher struct {
	sp      *space.Space
	order   []int // shuffled prefix to emit
	cur     int
	history *History
}

func newRandom(sp *space.Space, opts RandomOptions) (*randomSearcher, error) {
	n := sp.Len()
	budget := int(math.Ceil(opts.Fraction * float64(n)))
	if budget > n {
		budget = n
	}
	rng := rand.New(rand.NewSource(int64(opts.Seed)))
	perm := rng.Perm(n)
	return &randomSearcher{sp: sp, order: perm[:budget], history: newHistory()}, nil
}

func (s *randomSearcher) Configuration() int { return s.order[s.cur] }

func (s *randomSearcher) Next() {
	s.cur++
}

func (s *randomSearcher) Report(cost runner.Cost) {
	s.history.Record(s.order[s.cur], cost)
}

func (s *randomSearcher) Done() bool {
	return s.cur >= len(s.order)
}

func (s *randomSearcher) Budget() int { return len(s.order) }

func (s *randomSearcher) History() *History { return s.history }

func (s *randomSearcher) StopReason() StopReason { return StopBudgetExhausted }

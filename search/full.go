package search

import (
	"github.com/kerntune/kerntune/runner"
	"github.com/kerntune/kerntune/space"
)

// FullOptions has no fields; the full searcher takes no configuration.
type FullOptions struct{}

func (FullOptions) validate(n int) error { return nil }

type fullSearcher struct {
	sp      *space.Space
	cur     int
	history *History
}

func newFull(sp *space.Space) *fullSearcher {
	return &fullSearcher{sp: sp, history: newHistory()}
}

func (s *fullSearcher) Configuration() int { return s.cur }

func (s *fullSearcher) Next() {
	s.cur++
}

func (s *fullSearcher) Report(cost runner.Cost) {
	s.history.Record(s.cur, cost)
}

func (s *fullSearcher) Done() bool {
	return s.cur >= s.sp.Len()
}

func (s *fullSearcher) Budget() int { return s.sp.Len() }

func (s *fullSearcher) History() *History { return s.history }

func (s *fullSearcher) StopReason() StopReason { return StopBudgetExhausted }

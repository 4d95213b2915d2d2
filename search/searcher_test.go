package search

import (
	"testing"

	"github.com/kerntune/kerntune/runner"
)

func TestHistoryRecordAndVisited(t *testing.T) {
	h := newHistory()
	if h.Visited(3) {
		t.Fatal("empty history reports index visited")
	}
	h.Record(3, runner.Feasible(1.5))
	if !h.Visited(3) {
		t.Fatal("Record did not mark index visited")
	}
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	pts := h.Points()
	if len(pts) != 1 || pts[0].Index != 3 {
		t.Fatalf("Points() = %v", pts)
	}
}

func TestFactoryUnknownTagPanics(t *testing.T) {
	sp := buildSpaceN(t, 5)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown strategy tag")
		}
	}()
	New(sp, StrategyTag(99), nil)
}

func TestEveryStrategyEmitsOnlyInBoundsIndices(t *testing.T) {
	sp := buildSpaceN(t, 16)
	strategies := []struct {
		tag  StrategyTag
		opts Options
	}{
		{Full, FullOptions{}},
		{Random, RandomOptions{Fraction: 0.5, Seed: 1}},
		{Annealing, AnnealingOptions{Fraction: 0.5, MaxTemperature: 1.0, Seed: 1}},
		{PSO, PSOOptions{Fraction: 0.5, Swarms: 3, W: 0.5, C1: 1.5, C2: 1.5, Seed: 1}},
	}
	for _, st := range strategies {
		s, err := New(sp, st.tag, st.opts)
		if err != nil {
			t.Fatalf("New(%v): %v", st.tag, err)
		}
		for !s.Done() {
			ix := s.Configuration()
			if ix < 0 || ix >= sp.Len() {
				t.Fatalf("strategy %v emitted out-of-range index %d", st.tag, ix)
			}
			s.Report(runner.Feasible(float64(ix)))
			s.Next()
		}
	}
}

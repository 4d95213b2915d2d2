package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kerntune/kerntune/constraint"
	"github.com/kerntune/kerntune/param"
	"github.com/kerntune/kerntune/runner"
	"github.com/kerntune/kerntune/space"
)

// cost(i) = i. Starting from a random initial index with T_max=1.0 and
// budget 50, the best-so-far cost should be monotonically non-increasing
// and should reach 0 with probability > 0.9 across 100 trials.
func TestAnnealingDescendsToOptimum(t *testing.T) {
	sp := buildSpaceN(t, 50)
	const trials = 100
	reachedZero := 0

	for seed := uint64(0); seed < trials; seed++ {
		s, err := New(sp, Annealing, AnnealingOptions{Fraction: 1.0, MaxTemperature: 1.0, Seed: seed})
		require.NoError(t, err)

		best := -1.0
		for !s.Done() {
			ix := s.Configuration()
			cost := runner.Feasible(float64(ix))
			s.Report(cost)
			if best < 0 || cost.Seconds < best {
				best = cost.Seconds
			}
			s.Next()
		}
		if best == 0 {
			reachedZero++
		}
	}
	require.Greater(t, reachedZero, 90, "expected >90/100 trials to reach the global optimum")
}

func TestAnnealingBestSoFarNonIncreasing(t *testing.T) {
	sp := buildSpaceN(t, 50)
	s, err := New(sp, Annealing, AnnealingOptions{Fraction: 1.0, MaxTemperature: 2.0, Seed: 7})
	require.NoError(t, err)

	best := -1.0
	for !s.Done() {
		ix := s.Configuration()
		cost := runner.Feasible(float64(ix))
		s.Report(cost)
		if best >= 0 {
			require.LessOrEqual(t, minF(cost.Seconds, best), best)
		}
		if best < 0 || cost.Seconds < best {
			best = cost.Seconds
		}
		s.Next()
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// A space of size 4 small enough that its budget and neighbour count are
// both tiny: the searcher must terminate within kMaxAlreadyVisited+1 steps
// regardless of whether it stops on budget exhaustion or the stuck rule.
func TestAnnealingTerminatesOnTinySpace(t *testing.T) {
	r := param.NewRegistry()
	r.Add("A", []int64{0, 1})
	r.Add("B", []int64{0, 1})
	eng := constraint.NewEngine(r)
	sp, err := space.Build(r, eng)
	require.NoError(t, err)
	require.Equal(t, 4, sp.Len())

	s, err := New(sp, Annealing, AnnealingOptions{Fraction: 1.0, MaxTemperature: 1.0, Seed: 3})
	require.NoError(t, err)

	steps := 0
	for !s.Done() && steps < kMaxAlreadyVisited+1 {
		s.Report(runner.Feasible(float64(s.Configuration())))
		s.Next()
		steps++
	}
	require.True(t, s.Done(), "searcher should have terminated within kMaxAlreadyVisited+1 steps")
}

func TestAnnealingDeterministicForFixedSeed(t *testing.T) {
	sp := buildSpaceN(t, 30)

	run := func() []int {
		s, err := New(sp, Annealing, AnnealingOptions{Fraction: 0.5, MaxTemperature: 1.0, Seed: 99})
		require.NoError(t, err)
		var seq []int
		for !s.Done() {
			ix := s.Configuration()
			seq = append(seq, ix)
			s.Report(runner.Feasible(float64(ix)))
			s.Next()
		}
		return seq
	}
	require.Equal(t, run(), run())
}

func TestAcceptanceProbability(t *testing.T) {
	require.Equal(t, 1.0, acceptProbability(runner.Feasible(5), runner.Feasible(4), 1.0))
	require.Equal(t, 0.0, acceptProbability(runner.Feasible(4), runner.InfeasibleCost(runner.ResourceExceeded), 1.0))
	require.Equal(t, 1.0, acceptProbability(runner.InfeasibleCost(runner.ResourceExceeded), runner.Feasible(4), 1.0))

	p := acceptProbability(runner.Feasible(1.0), runner.Feasible(2.0), 1.0)
	require.InDelta(t, 0.3679, p, 0.001)
}

func TestAnnealingOptionsValidation(t *testing.T) {
	sp := buildSpaceN(t, 10)
	_, err := New(sp, Annealing, AnnealingOptions{Fraction: 0.5, MaxTemperature: 0, Seed: 1})
	require.Error(t, err)
	_, err = New(sp, Annealing, AnnealingOptions{Fraction: 2, MaxTemperature: 1, Seed: 1})
	require.Error(t, err)
}

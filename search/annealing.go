package search

import (
	"math"
	"math/rand"

	tuner "github.com/kerntune/kerntune"
	"github.com/kerntune/kerntune/runner"
	"github.com/kerntune/kerntune/space"
)

// kMaxAlreadyVisited is the maximum number of successive already-visited
// neighbour draws before the annealing searcher gives up, matching
// CLTune's kMaxAlreadyVisitedStates.
const kMaxAlreadyVisited = 10

// kMinTemperature is the floor the linear cooling schedule never crosses.
const kMinTemperature = 1e-6

// AnnealingOptions configures the simulated-annealing searcher.
type AnnealingOptions struct {
	Fraction       float64
	MaxTemperature float64
	Seed           uint64
}

func (o AnnealingOptions) validate(n int) error {
	if o.Fraction <= 0 || o.Fraction > 1 {
		return tuner.NewInvalidStrategyOptionsError("search.Annealing", "fraction must be in (0,1]")
	}
	if o.MaxTemperature <= 0 {
		return tuner.NewInvalidStrategyOptionsError("search.Annealing", "max_temperature must be > 0")
	}
	return nil
}

type annealingSearcher struct {
	sp      *space.Space
	rng     *rand.Rand
	history *History

	budget  int
	emitted int

	toEmit        int
	pending       int
	awaitingInitC bool

	c  int
	ec runner.Cost

	t float64

	stuck int
	done  bool
	stop  StopReason
}

func newAnnealing(sp *space.Space, opts AnnealingOptions) (*annealingSearcher, error) {
	n := sp.Len()
	budget := int(math.Ceil(opts.Fraction * float64(n)))
	if budget < 1 {
		budget = 1
	}
	rng := rand.New(rand.NewSource(int64(opts.Seed)))
	c := rng.Intn(n)
	s := &annealingSearcher{
		sp:            sp,
		rng:           rng,
		history:       newHistory(),
		budget:        budget,
		toEmit:        c,
		c:             c,
		t:             opts.MaxTemperature,
		awaitingInitC: true,
	}
	return s, nil
}

func (s *annealingSearcher) Configuration() int { return s.toEmit }

func (s *annealingSearcher) Next() {
	s.toEmit = s.pending
}

func (s *annealingSearcher) Report(cost runner.Cost) {
	s.history.Record(s.toEmit, cost)
	s.emitted++

	if s.awaitingInitC {
		s.ec = cost
		s.awaitingInitC = false
		if s.emitted >= s.budget {
			s.done = true
			s.stop = StopBudgetExhausted
			return
		}
		s.drawNext()
		return
	}

	n := s.toEmit
	p := acceptProbability(s.ec, cost, s.t)
	if p >= 1 || s.rng.Float64() < p {
		s.c = n
		s.ec = cost
		s.stuck = 0
	}

	s.t = s.t * (1 - 1/float64(s.budget))
	if s.t < kMinTemperature {
		s.t = kMinTemperature
	}

	if s.emitted >= s.budget {
		s.done = true
		s.stop = StopBudgetExhausted
		return
	}
	s.drawNext()
}

// drawNext picks the next candidate neighbour of c, applying the
// stuck-counter rule.
func (s *annealingSearcher) drawNext() {
	neighbours := s.sp.Neighbours(s.c)
	if len(neighbours) == 0 {
		s.done = true
		s.stop = StopNeighbourhoodExhausted
		return
	}
	attempts := 0
	for {
		candidate := neighbours[s.rng.Intn(len(neighbours))]
		if !s.history.Visited(candidate) {
			s.stuck = 0
			s.pending = candidate
			break
		}
		s.stuck++
		attempts++
		if attempts >= kMaxAlreadyVisited {
			s.pending = candidate
			break
		}
	}
	if s.stuck >= kMaxAlreadyVisited {
		s.done = true
		s.stop = StopNeighbourhoodExhausted
	}
}

// acceptProbability implements the Metropolis acceptance rule. The
// infeasibility sign test is checked before any subtraction so an
// infeasible/infeasible comparison never produces a NaN branch.
func acceptProbability(current, candidate runner.Cost, temperature float64) float64 {
	if candidate.Infeasible {
		return 0
	}
	if current.Infeasible {
		return 1
	}
	delta := effectiveCost(candidate) - effectiveCost(current)
	if delta < 0 {
		return 1
	}
	return math.Exp(-delta / temperature)
}

func (s *annealingSearcher) Done() bool { return s.done }

func (s *annealingSearcher) Budget() int { return s.budget }

func (s *annealingSearcher) History() *History { return s.history }

func (s *annealingSearcher) StopReason() StopReason { return s.stop }

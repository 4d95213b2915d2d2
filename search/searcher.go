// Package search implements the searcher contract and its four strategies:
// full, random, simulated annealing, and particle swarm. Every strategy
// shares the same feedback loop: the driver calls Configuration, evaluates
// it, calls Report, then Next.
package search

import (
	tuner "github.com/kerntune/kerntune"
	"github.com/kerntune/kerntune/runner"
	"github.com/kerntune/kerntune/space"
)

// MeasuredPoint pairs a space index with its measured cost.
type MeasuredPoint struct {
	Index int
	Cost  runner.Cost
}

// StopReason explains why a searcher became done, beyond simple budget
// exhaustion. The zero value means budget exhaustion.
type StopReason int

const (
	// StopBudgetExhausted: the searcher emitted its full declared budget.
	StopBudgetExhausted StopReason = iota
	// StopNeighbourhoodExhausted: annealing found no unvisited neighbour
	// after kMaxAlreadyVisited attempts. A graceful termination, not an
	// error.
	StopNeighbourhoodExhausted
)

// History is the shared, append-only record of every index a searcher has
// emitted and the cost reported for it. It is owned exclusively by one
// searcher instance.
type History struct {
	visited map[int]struct{}
	costs   map[int]runner.Cost
	order   []MeasuredPoint
}

func newHistory() *History {
	return &History{
		visited: make(map[int]struct{}),
		costs:   make(map[int]runner.Cost),
	}
}

// Record appends a measured point to the history.
func (h *History) Record(index int, cost runner.Cost) {
	h.visited[index] = struct{}{}
	h.costs[index] = cost
	h.order = append(h.order, MeasuredPoint{Index: index, Cost: cost})
}

// Visited reports whether index has already been reported.
func (h *History) Visited(index int) bool {
	_, ok := h.visited[index]
	return ok
}

// Len returns the number of recorded points.
func (h *History) Len() int {
	return len(h.order)
}

// Points returns the measured points in emission order.
func (h *History) Points() []MeasuredPoint {
	out := make([]MeasuredPoint, len(h.order))
	copy(out, h.order)
	return out
}

// Searcher is the common contract every search strategy exposes. The
// driver calls Configuration, evaluates it externally, calls Report with
// the measured cost, then Next — in that order, every iteration, until
// Done reports true.
type Searcher interface {
	// Configuration returns the index of the next configuration to try.
	Configuration() int
	// Next advances internal state. Must be called after Report.
	Next()
	// Report informs the searcher of the last configuration's measured
	// cost. Between Report and Next the strategy may use the reported
	// cost to update internal state.
	Report(cost runner.Cost)
	// Done reports whether the searcher will emit no new indices.
	Done() bool
	// Budget returns the total number of configurations the searcher
	// intends to visit, used for progress reporting.
	Budget() int
	// History returns the shared visited-index/cost record.
	History() *History
	// StopReason explains why Done became true; meaningful only once
	// Done() is true.
	StopReason() StopReason
}

// StrategyTag selects which concrete Searcher the factory constructs.
type StrategyTag int

const (
	// Full walks every configuration exactly once, in order.
	Full StrategyTag = iota
	// Random samples a fixed fraction without replacement.
	Random
	// Annealing performs a Metropolis walk over single-coordinate
	// neighbourhoods.
	Annealing
	// PSO runs a particle-swarm population over the parameter-index space.
	PSO
)

// Options is implemented by each strategy's option struct
// (FullOptions, RandomOptions, AnnealingOptions, PSOOptions).
type Options interface {
	validate(n int) error
}

// New constructs the searcher named by tag over sp, validating opts against
// sp's size. It returns ErrKindInvalidStrategyOptions if opts is out of
// range for the strategy, or if opts does not match tag.
func New(sp *space.Space, tag StrategyTag, opts Options) (Searcher, error) {
	if opts != nil {
		if err := opts.validate(sp.Len()); err != nil {
			return nil, err
		}
	}
	switch tag {
	case Full:
		if _, ok := opts.(FullOptions); !ok && opts != nil {
			return nil, tuner.NewInvalidStrategyOptionsError("search.New", "options do not match strategy")
		}
		return newFull(sp), nil
	case Random:
		ro, ok := opts.(RandomOptions)
		if !ok {
			return nil, tuner.NewInvalidStrategyOptionsError("search.New", "options do not match strategy")
		}
		return newRandom(sp, ro)
	case Annealing:
		ao, ok := opts.(AnnealingOptions)
		if !ok {
			return nil, tuner.NewInvalidStrategyOptionsError("search.New", "options do not match strategy")
		}
		return newAnnealing(sp, ao)
	case PSO:
		po, ok := opts.(PSOOptions)
		if !ok {
			return nil, tuner.NewInvalidStrategyOptionsError("search.New", "options do not match strategy")
		}
		return newPSO(sp, po)
	default:
		panic("search: unknown StrategyTag")
	}
}

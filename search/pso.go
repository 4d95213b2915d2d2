package search

import (
	"math"
	"math/rand"

	tuner "github.com/kerntune/kerntune"
	"github.com/kerntune/kerntune/runner"
	"github.com/kerntune/kerntune/space"
)

// PSOOptions configures the particle-swarm searcher.
type PSOOptions struct {
	Fraction float64
	Swarms   int // number of particles
	W        float64
	C1       float64
	C2       float64
	Seed     uint64
}

func (o PSOOptions) validate(n int) error {
	if o.Fraction <= 0 || o.Fraction > 1 {
		return tuner.NewInvalidStrategyOptionsError("search.PSO", "fraction must be in (0,1]")
	}
	if o.Swarms < 1 {
		return tuner.NewInvalidStrategyOptionsError("search.PSO", "swarms must be >= 1")
	}
	if o.W < 0 || o.W > 1 {
		return tuner.NewInvalidStrategyOptionsError("search.PSO", "w must be in [0,1]")
	}
	if o.C1 <= 0 || o.C2 <= 0 {
		return tuner.NewInvalidStrategyOptionsError("search.PSO", "c1 and c2 must be > 0")
	}
	if o.C1+o.C2 > 4 {
		return tuner.NewInvalidStrategyOptionsError("search.PSO", "c1+c2 must be <= 4")
	}
	return nil
}

type particle struct {
	pos      []float64 // coordinate-space position, one per parameter
	vel      []float64
	posIndex int

	pbestPos  []float64
	pbestCost runner.Cost
}

type psoSearcher struct {
	sp      *space.Space
	rng     *rand.Rand
	history *History

	w, c1, c2 float64

	particles []particle
	turn      int

	gbestPos  []float64
	gbestCost runner.Cost

	budget  int
	emitted int
	done    bool
}

func newPSO(sp *space.Space, opts PSOOptions) (*psoSearcher, error) {
	n := sp.Len()
	dims := len(sp.Params())
	budget := int(math.Ceil(opts.Fraction * float64(n)))
	if budget < opts.Swarms {
		budget = opts.Swarms
	}
	rng := rand.New(rand.NewSource(int64(opts.Seed)))

	s := &psoSearcher{
		sp:        sp,
		rng:       rng,
		history:   newHistory(),
		w:         opts.W,
		c1:        opts.C1,
		c2:        opts.C2,
		budget:    budget,
		gbestCost: runner.Cost{Infeasible: true},
	}

	for i := 0; i < opts.Swarms; i++ {
		ix := rng.Intn(n)
		coords := sp.Decode(ix)
		pos := make([]float64, dims)
		for d, c := range coords {
			pos[d] = float64(c)
		}
		s.particles = append(s.particles, particle{
			pos:       pos,
			vel:       make([]float64, dims),
			posIndex:  ix,
			pbestPos:  append([]float64(nil), pos...),
			pbestCost: runner.Cost{Infeasible: true},
		})
	}
	return s, nil
}

func (s *psoSearcher) Configuration() int {
	return s.particles[s.turn].posIndex
}

func (s *psoSearcher) Next() {
	s.turn = (s.turn + 1) % len(s.particles)
}

func (s *psoSearcher) Report(cost runner.Cost) {
	p := &s.particles[s.turn]
	s.history.Record(p.posIndex, cost)
	s.emitted++

	if !cost.Infeasible {
		if effectiveCost(cost) < effectiveCost(p.pbestCost) {
			p.pbestCost = cost
			p.pbestPos = append(p.pbestPos[:0], p.pos...)
		}
		if effectiveCost(cost) < effectiveCost(s.gbestCost) {
			s.gbestCost = cost
			s.gbestPos = append([]float64(nil), p.pos...)
		}
	}

	params := s.sp.Params()
	for d := range p.pos {
		pbestCoord := p.pbestPos[d]
		var gbestCoord float64
		if s.gbestPos != nil {
			gbestCoord = s.gbestPos[d]
		} else {
			gbestCoord = p.pos[d]
		}
		r1, r2 := s.rng.Float64(), s.rng.Float64()
		p.vel[d] = s.w*p.vel[d] + s.c1*r1*(pbestCoord-p.pos[d]) + s.c2*r2*(gbestCoord-p.pos[d])
	}

	coords := make([]int, len(p.pos))
	for d := range p.pos {
		moved := p.pos[d] + p.vel[d]
		rounded := math.Round(moved)
		maxCoord := float64(len(params[d].Values) - 1)
		if rounded < 0 {
			rounded = 0
		}
		if rounded > maxCoord {
			rounded = maxCoord
		}
		coords[d] = int(rounded)
	}

	if ix, ok := s.sp.Encode(coords); ok {
		p.posIndex = ix
		for d, c := range coords {
			p.pos[d] = float64(c)
		}
	} else {
		// Infeasible move: resample uniformly from the feasible space and
		// reset velocity.
		ix := s.rng.Intn(s.sp.Len())
		newCoords := s.sp.Decode(ix)
		p.posIndex = ix
		for d, c := range newCoords {
			p.pos[d] = float64(c)
			p.vel[d] = 0
		}
	}

	if s.emitted >= s.budget {
		s.done = true
	}
}

func effectiveCost(c runner.Cost) float64 {
	if c.Infeasible {
		return math.Inf(1)
	}
	return c.Seconds
}

func (s *psoSearcher) Done() bool { return s.done }

func (s *psoSearcher) Budget() int { return s.budget }

func (s *psoSearcher) History() *History { return s.history }

func (s *psoSearcher) StopReason() StopReason { return StopBudgetExhausted }

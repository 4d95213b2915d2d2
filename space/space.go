// Package space implements the search-space enumerator: the
// Cartesian product of a parameter registry, filtered by a constraint
// engine, producing the ordered, deduplicated Configuration sequence that
// every search strategy walks by index.
package space

import (
	"strconv"
	"strings"

	tuner "github.com/kerntune/kerntune"
	"github.com/kerntune/kerntune/constraint"
	"github.com/kerntune/kerntune/param"
)

// Configuration is an immutable total mapping from parameter name to one of
// its allowed values, plus its stable position in the enumerated Space.
type Configuration struct {
	Index  int
	values map[string]int64
}

// Value returns the value assigned to name in this configuration.
func (c Configuration) Value(name string) int64 {
	return c.values[name]
}

// Values returns a copy of the configuration as a name->value map.
func (c Configuration) Values() map[string]int64 {
	out := make(map[string]int64, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Coords returns the per-parameter position (index into that parameter's
// value list, not its value) in declaration order.
func (c Configuration) Coords(params []param.Parameter) []int {
	coords := make([]int, len(params))
	for i, p := range params {
		v := c.values[p.Name]
		for j, candidate := range p.Values {
			if candidate == v {
				coords[i] = j
				break
			}
		}
	}
	return coords
}

// Space is the ordered sequence of feasible configurations. It is built
// once per tuning session and is immutable thereafter, safe to share by
// reference across every searcher.
type Space struct {
	params  []param.Parameter
	configs []Configuration
	keyToIx map[string]int
}

// Params returns the declaration-ordered parameter list the space was
// built from.
func (s *Space) Params() []param.Parameter {
	return s.params
}

// Len returns the number of feasible configurations, N.
func (s *Space) Len() int {
	return len(s.configs)
}

// At returns the configuration at index i.
func (s *Space) At(i int) Configuration {
	return s.configs[i]
}

// IndexOf returns the index of a configuration with the given values, if
// it is feasible and present in the space.
func (s *Space) IndexOf(values map[string]int64) (int, bool) {
	ix, ok := s.keyToIx[canonicalKey(s.params, values)]
	return ix, ok
}

// Decode returns the per-parameter coordinate vector (position into each
// parameter's value list) for the configuration at index i.
func (s *Space) Decode(i int) []int {
	return s.configs[i].Coords(s.params)
}

// Encode returns the index of the configuration whose per-parameter
// coordinates match coords, if one is feasible. This is the inverse of
// Decode and is used by PSO to test a resampled/moved position for
// membership in the space.
func (s *Space) Encode(coords []int) (int, bool) {
	values := make(map[string]int64, len(s.params))
	for i, p := range s.params {
		if coords[i] < 0 || coords[i] >= len(p.Values) {
			return 0, false
		}
		values[p.Name] = p.Values[coords[i]]
	}
	return s.IndexOf(values)
}

// Neighbours returns the indices of every configuration in the space whose
// values differ from the configuration at index i in exactly one
// parameter (Hamming-1 in parameter space). Computed by enumerating
// per-parameter substitutions and filtering by the space's membership map
// rather than materializing a neighbour graph.
func (s *Space) Neighbours(i int) []int {
	base := s.configs[i]
	var neighbours []int
	for _, p := range s.params {
		for _, v := range p.Values {
			if v == base.values[p.Name] {
				continue
			}
			candidate := base.Values()
			candidate[p.Name] = v
			if ix, ok := s.IndexOf(candidate); ok {
				neighbours = append(neighbours, ix)
			}
		}
	}
	return neighbours
}

// Build computes the Cartesian product over reg's parameters in
// declaration order, filters by eng, and returns the resulting space.
// Duplicates cannot arise from product construction but are defensively
// checked. Build fails with ErrKindEmptySearchSpace if the result is empty.
func Build(reg *param.Registry, eng *constraint.Engine) (*Space, error) {
	params := reg.Parameters()
	s := &Space{params: params, keyToIx: make(map[string]int)}

	values := make(map[string]int64, len(params))
	var recurse func(i int) error
	recurse = func(i int) error {
		if i == len(params) {
			if eng != nil && !eng.Evaluate(values) {
				return nil
			}
			key := canonicalKey(params, values)
			if _, dup := s.keyToIx[key]; dup {
				return nil
			}
			cp := make(map[string]int64, len(values))
			for k, v := range values {
				cp[k] = v
			}
			cfg := Configuration{Index: len(s.configs), values: cp}
			s.keyToIx[key] = cfg.Index
			s.configs = append(s.configs, cfg)
			return nil
		}
		p := params[i]
		for _, v := range p.Values {
			values[p.Name] = v
			if err := recurse(i + 1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := recurse(0); err != nil {
		return nil, err
	}
	if len(s.configs) == 0 {
		return nil, tuner.NewEmptySearchSpaceError("space.Build")
	}
	return s, nil
}

// canonicalKey encodes a candidate as a string in declaration order so it
// can be used as a map key for the duplicate check and for neighbourhood
// membership tests, without materializing the full neighbour graph.
func canonicalKey(params []param.Parameter, values map[string]int64) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(values[p.Name], 10))
	}
	return sb.String()
}

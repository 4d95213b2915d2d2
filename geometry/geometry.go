// Package geometry implements the thread-geometry model:
// derivation of global and local work dimensions from parameter values via
// multiplicative modifiers, in the style of an OpenCL NDRange.
package geometry

// Target selects which work-size vector a Modifier updates.
type Target int

const (
	// Global selects the global work-size vector.
	Global Target = iota
	// Local selects the local (work-group) work-size vector.
	Local
)

// Op is the arithmetic a Modifier applies to one axis.
type Op int

const (
	// Multiply multiplies the axis by the parameter's current value.
	Multiply Op = iota
	// Divide divides the axis by the parameter's current value.
	Divide
)

// Modifier multiplies or divides one axis of the global or local work-size
// by the current value of a named parameter. Modifiers are applied in
// declaration order.
type Modifier struct {
	Target Target
	Axis   int // 0..2
	Param  string
	Op     Op
}

// Dims is a 3-dimensional work-size vector. Trailing axes default to 1,
// matching OpenCL's convention that a missing dimension has size 1.
type Dims [3]uint64

// Geometry is the effective (global, local) work-size pair for one
// configuration.
type Geometry struct {
	Global Dims
	Local  Dims
}

// Model holds the base global/local work sizes and an ordered list of
// modifiers. It is built once per tuning session and is safe to share by
// reference across searchers (it is never mutated after Resolve is first
// called by the driver).
type Model struct {
	base      Geometry
	modifiers []Modifier
}

// NewModel returns a model with the given base global and local work
// sizes. Dimensions beyond len(global)/len(local) (up to 3) default to 1.
func NewModel(global, local []uint64) *Model {
	m := &Model{}
	m.base.Global = toDims(global)
	m.base.Local = toDims(local)
	return m
}

func toDims(v []uint64) Dims {
	var d Dims
	d[0], d[1], d[2] = 1, 1, 1
	for i := 0; i < len(v) && i < 3; i++ {
		d[i] = v[i]
	}
	return d
}

// AddModifier appends a modifier, applied after all previously added
// modifiers.
func (m *Model) AddModifier(mod Modifier) {
	m.modifiers = append(m.modifiers, mod)
}

// Resolve applies every modifier, in declaration order, to the base
// geometry using the given configuration's parameter values, and returns
// the effective (global, local) pair. It does not check the
// local-divides-global invariant or device resource limits; those are the
// driver's responsibility, since only the external runner knows the
// device's actual limits.
func (m *Model) Resolve(values map[string]int64) Geometry {
	g := m.base
	for _, mod := range m.modifiers {
		v := uint64(values[mod.Param])
		dims := &g.Global
		if mod.Target == Local {
			dims = &g.Local
		}
		switch mod.Op {
		case Multiply:
			dims[mod.Axis] *= v
		case Divide:
			if v != 0 {
				dims[mod.Axis] /= v
			}
		}
	}
	return g
}

// Divides reports whether every axis of local divides the corresponding
// axis of global — required of a feasible geometry.
func (g Geometry) Divides() bool {
	for i := 0; i < 3; i++ {
		if g.Local[i] == 0 || g.Global[i]%g.Local[i] != 0 {
			return false
		}
	}
	return true
}

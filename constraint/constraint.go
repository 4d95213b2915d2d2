// Package constraint implements the constraint engine:
// user-supplied predicates over named subsets of parameters, evaluated
// against candidate configurations to reject infeasible points.
package constraint

import (
	tuner "github.com/kerntune/kerntune"
	"github.com/kerntune/kerntune/param"
)

// Predicate receives the current values of the constraint's declared
// parameters, in declaration order, and reports whether the combination is
// feasible.
type Predicate func(values []int64) bool

// Constraint pairs a predicate with the ordered parameter names it reads.
type Constraint struct {
	Names     []string
	Predicate Predicate
}

// Engine holds a set of constraints, each validated against a registry at
// add time.
type Engine struct {
	reg         *param.Registry
	constraints []Constraint
}

// NewEngine returns an engine that validates constraints against reg.
func NewEngine(reg *param.Registry) *Engine {
	return &Engine{reg: reg}
}

// Add registers a constraint. It fails with ErrKindUnknownParameter if any
// name in names was never registered with the engine's registry.
func (e *Engine) Add(names []string, pred Predicate) error {
	for _, name := range names {
		if !e.reg.Has(name) {
			return tuner.NewUnknownParameterError("Engine.Add", name)
		}
	}
	cp := make([]string, len(names))
	copy(cp, names)
	e.constraints = append(e.constraints, Constraint{Names: cp, Predicate: pred})
	return nil
}

// Constraints returns the registered constraints in declaration order.
func (e *Engine) Constraints() []Constraint {
	out := make([]Constraint, len(e.constraints))
	copy(out, e.constraints)
	return out
}

// Evaluate reports whether candidate satisfies every registered
// constraint, short-circuiting on the first failing predicate.
func (e *Engine) Evaluate(candidate map[string]int64) bool {
	for _, c := range e.constraints {
		values := make([]int64, len(c.Names))
		for i, name := range c.Names {
			values[i] = candidate[name]
		}
		if !c.Predicate(values) {
			return false
		}
	}
	return true
}

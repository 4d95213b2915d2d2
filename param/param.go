// Package param implements a registry of named, discrete parameter axes:
// discrete axes with an ordered, non-empty set of integer values.
package param

import "github.com/kerntune/kerntune"

// Parameter is a named discrete axis. Two parameters are equal iff their
// names match; Values is ordered and non-empty.
type Parameter struct {
	Name   string
	Values []int64
}

// Registry holds a set of parameters in declaration order. The zero value
// is ready to use.
type Registry struct {
	order  []string
	byName map[string]Parameter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Parameter)}
}

// Add registers a parameter. It fails with ErrKindDuplicateParameter if name
// is already registered, and panics only on a programmer error (empty
// values or empty name), since those aren't recoverable runtime conditions
// with an ErrorKind of their own.
func (r *Registry) Add(name string, values []int64) error {
	if name == "" {
		panic("param: Add called with empty name")
	}
	if len(values) == 0 {
		panic("param: Add called with empty values for " + name)
	}
	if r.byName == nil {
		r.byName = make(map[string]Parameter)
	}
	if _, exists := r.byName[name]; exists {
		return tuner.NewDuplicateParameterError("Registry.Add", name)
	}
	cp := make([]int64, len(values))
	copy(cp, values)
	r.order = append(r.order, name)
	r.byName[name] = Parameter{Name: name, Values: cp}
	return nil
}

// Names returns the declaration-ordered list of parameter names.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Parameters returns the declaration-ordered list of parameters.
func (r *Registry) Parameters() []Parameter {
	out := make([]Parameter, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name]
	}
	return out
}

// Get returns the parameter registered under name, if any.
func (r *Registry) Get(name string) (Parameter, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	return len(r.order)
}

// Package runner declares the minimal abstract interface the tuning core
// consumes from the external GPU-API wrapper layer: compile a
// configuration and return a runtime or a failure kind. The core never
// implements this interface itself; cmd/tune-demo provides a sample
// implementation backed by the CPU GEMM stand-in under internal/kernel.
package runner

import (
	"context"

	"github.com/kerntune/kerntune/geometry"
	"github.com/kerntune/kerntune/space"
)

// InfeasibilityKind categorizes why a configuration could not be measured.
// The tuning core never distinguishes between kinds beyond treating all of
// them as the infeasibility sentinel.
type InfeasibilityKind int

const (
	// CompileFailed: the kernel failed to build for this configuration.
	CompileFailed InfeasibilityKind = iota
	// ResourceExceeded: the configuration exceeds a device resource limit
	// (local memory, work-group size).
	ResourceExceeded
	// LaunchFailed: the kernel built but could not be launched.
	LaunchFailed
	// ValidationFailed: the kernel ran but its output did not match the
	// reference within tolerance.
	ValidationFailed
)

// String renders the infeasibility kind.
func (k InfeasibilityKind) String() string {
	switch k {
	case CompileFailed:
		return "CompileFailed"
	case ResourceExceeded:
		return "ResourceExceeded"
	case LaunchFailed:
		return "LaunchFailed"
	case ValidationFailed:
		return "ValidationFailed"
	default:
		return "Unknown"
	}
}

// Cost is the result of evaluating one configuration: either a measured
// positive runtime in seconds, or an infeasibility marker. It is an
// explicit tagged value rather than a magic float (e.g. NaN or -1).
type Cost struct {
	Seconds    float64
	Infeasible bool
	Kind       InfeasibilityKind
}

// Feasible returns a Cost reporting a successful measurement.
func Feasible(seconds float64) Cost {
	return Cost{Seconds: seconds}
}

// InfeasibleCost returns a Cost reporting why a configuration could not be
// measured.
func InfeasibleCost(kind InfeasibilityKind) Cost {
	return Cost{Infeasible: true, Kind: kind}
}

// Evaluator compiles and executes one configuration and reports its cost.
// Implementations live outside the tuning core: kernel source
// manipulation, argument binding, and reference-output validation all
// happen behind this interface.
type Evaluator interface {
	Evaluate(ctx context.Context, cfg space.Configuration, geo geometry.Geometry) Cost
}

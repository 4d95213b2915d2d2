package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/kerntune/kerntune/geometry"
	"github.com/kerntune/kerntune/internal/kernel"
	"github.com/kerntune/kerntune/runner"
	"github.com/kerntune/kerntune/space"
)

// gemmEvaluator implements runner.Evaluator against the CPU GEMM kernel in
// internal/kernel, playing the role of an external GPU-API wrapper layer:
// it "compiles" a configuration by checking its thread geometry and local
// memory footprint, runs the blocked multiply, times it, and validates the
// result against the reference implementation.
type gemmEvaluator struct {
	m, n, k int
	a, b    []float32
	rng     *rand.Rand
}

// newGEMMEvaluator builds an evaluator over a fixed m x k times k x n
// problem, filled with a seeded pseudo-random matrix so runs are
// reproducible.
func newGEMMEvaluator(size int, seed uint64) *gemmEvaluator {
	rng := rand.New(rand.NewSource(int64(seed)))
	e := &gemmEvaluator{
		m: size, n: size, k: size,
		a:   randomMatrix(rng, size*size),
		b:   randomMatrix(rng, size*size),
		rng: rng,
	}
	return e
}

func randomMatrix(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()
	}
	return out
}

// localMemoryBytes estimates the local-memory footprint of a tiled GEMM's
// working set from the effective local work-size: two float32 tiles (A and
// B) of Local[0] x Local[1] elements each.
func localMemoryBytes(geo geometry.Geometry) int {
	tile := int(geo.Local[0]) * int(geo.Local[1])
	return tile * 4 * 2
}

func (e *gemmEvaluator) Evaluate(ctx context.Context, cfg space.Configuration, geo geometry.Geometry) runner.Cost {
	if !geo.Divides() {
		return runner.InfeasibleCost(runner.LaunchFailed)
	}
	if localMemoryBytes(geo) > kernel.L1CacheSize {
		return runner.InfeasibleCost(runner.ResourceExceeded)
	}

	c := make([]float32, e.m*e.n)
	expected := make([]float32, e.m*e.n)

	start := time.Now()
	kernel.OptimizedGEMM_Float32(false, false, e.m, e.n, e.k, 1.0, e.a, e.k, e.b, e.n, 0.0, c, e.n)
	elapsed := time.Since(start)

	kernel.Reference{}.GEMM(false, false, e.m, e.n, e.k, 1.0, e.a, e.k, e.b, e.n, 0.0, expected, e.n)

	tol := kernel.RelaxedTolerance()
	result := kernel.VerifyFloat32Array(expected, c, tol)
	if !result.IsAcceptable(tol) {
		return runner.InfeasibleCost(runner.ValidationFailed)
	}
	return runner.Feasible(elapsed.Seconds())
}

// Package kernel is the evaluator's stand-in for a real GPU kernel backend.
//
// A production tuner hands each configuration to a compiler/launcher that
// builds the kernel, runs it on a device, and times the run. This package
// plays that role on the CPU: a tiled, cache-blocked GEMM stands in for "the
// kernel under test", a naive reference GEMM checks its output, and a
// tolerance-based comparison decides whether a result is close enough to
// count as correct. cmd/tune-demo's evaluator is the only caller; nothing
// here is reachable from the tuner core itself.
package kernel

// Package tuner implements the search-space construction and search-strategy
// core of a GPU kernel auto-tuner: a parameter registry, a constraint
// engine, a thread-geometry model, a space enumerator, and four pluggable
// search strategies (full, random, simulated annealing, particle swarm)
// that share a common measured-cost feedback loop.
//
// The core never compiles, launches, or validates a kernel itself. It
// consumes those capabilities from an external runner.Evaluator and reports
// back a ranked list of (configuration, cost) pairs through the session
// package.
package tuner

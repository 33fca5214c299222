// Package solver names the SMT-driving contract concrete engines call into.
// Solver reasoning itself is out of scope for this module; Backend exists so
// pkg/engines has something concrete to depend on.
package solver

import "context"

// Query is one satisfiability query an engine issues against the analysis
// node: assert the node's transition relation unrolled to Depth, plus any
// extra learned facts, and check whether the negated property is
// satisfiable.
type Query struct {
	Depth      int
	Properties []string
	Assumptions []string
}

// Result is the outcome of a single Query.
type Result struct {
	Sat   bool
	Model map[string][]string
}

// Backend is the minimal SMT-solving capability an engine needs. Real
// implementations wrap an actual solver process or library; this module
// ships no such implementation, only the contract.
type Backend interface {
	Check(ctx context.Context, q Query) (Result, error)
	Close() error
}

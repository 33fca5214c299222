// Package advice persists invariants so later runs can reuse hints learned
// in earlier ones, keyed by the analysis node's variable declarations
// rather than by any one run. IVCs are not persisted.
package advice

import (
	"github.com/vericore/vericore/pkg/analysis"
	"github.com/vericore/vericore/pkg/message"
)

// Store is the read/write abstraction the Director talks to: seeded with
// variable declarations at construction, invariants appended as they are
// learned over the run, and flushed exactly once at shutdown.
type Store interface {
	// Seed records the analysis node's variable declarations once, at
	// construction, before any invariant is appended.
	Seed(vars []analysis.VarDecl) error

	// Append records newly learned invariants.
	Append(invariants []message.Invariant) error

	// Read returns every invariant persisted across all runs for the
	// current set of seeded variable declarations.
	Read() ([]message.Invariant, error)

	// Flush guarantees everything appended so far is durable. Called
	// exactly once, at shutdown.
	Flush() error

	// Close releases any underlying resources.
	Close() error
}

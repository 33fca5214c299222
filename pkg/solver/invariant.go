package solver

import (
	"context"

	"github.com/vericore/vericore/pkg/message"
)

// InvariantSource is the invariant-strengthening capability the invariant
// generation engine calls into. A real implementation drives a separate
// template- or PDR-style invariant synthesis loop; that reasoning is out of
// scope here, same as Backend.
type InvariantSource interface {
	// Next produces the next candidate invariant, or ok=false if the source
	// has nothing new to offer on this call (the engine should keep
	// polling; this is not a terminal condition).
	Next(ctx context.Context) (inv message.Invariant, ok bool, err error)
}

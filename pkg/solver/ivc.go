package solver

import (
	"context"

	"github.com/vericore/vericore/pkg/message"
)

// IVCSource is the minimal-inductive-validity-core extraction capability
// the IVC-reduction and all-IVCs engines call into. Real extraction walks
// an unsat core or re-checks the property with subsets of equations
// removed; that search is out of scope here, same as Backend.
type IVCSource interface {
	// MinimalCore returns one minimal validity core for properties. timedOut
	// reports whether the search was cut off before reaching a guaranteed
	// minimum, mirroring message.Valid.MIVCTimedOut.
	MinimalCore(ctx context.Context, properties []string) (ivc message.IVC, timedOut bool, err error)

	// AllCores returns every minimal validity core for properties.
	AllCores(ctx context.Context, properties []string) ([]message.IVC, error)
}

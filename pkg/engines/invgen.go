package engines

import (
	"context"
	"time"

	"github.com/vericore/vericore/pkg/message"
	"github.com/vericore/vericore/pkg/solver"
)

// InvGen runs invariant generation: it polls a solver.InvariantSource for
// strengthening facts and broadcasts each one it finds as an
// InvariantMessage. Unlike BMC/k-induction/PDR it never settles a property
// on its own; it runs until stopped and exists purely to feed other
// engines' assumption sets.
type InvGen struct {
	base

	source solver.InvariantSource
}

// NewInvGen creates an invariant generation engine over source.
func NewInvGen(source solver.InvariantSource, mailbox chan<- message.Message) *InvGen {
	return &InvGen{
		base:   newBase(message.SourceInvGen, mailbox),
		source: source,
	}
}

func (e *InvGen) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-e.stopped():
			return nil
		default:
		}

		inv, ok, err := e.source.Next(ctx)
		if err != nil {
			e.setLastError(err)
			return e.LastError()
		}
		if ok {
			e.publish(message.InvariantMessage{Invariants: []message.Invariant{inv}})
		}

		select {
		case <-ctx.Done():
			return nil
		case <-e.stopped():
			return nil
		case <-time.After(10 * time.Millisecond):
		}
	}
}

package engines

import (
	"context"
	"fmt"

	"github.com/vericore/vericore/pkg/message"
	"github.com/vericore/vericore/pkg/solver"
)

// IVCReduction computes a minimal inductive validity core for a Valid
// message routed to it, attaches the result, and forwards the message
// along its (now advanced) itinerary. It never originates a message of its
// own; Run only waits to be stopped.
type IVCReduction struct {
	base

	source solver.IVCSource
}

// NewIVCReduction creates an IVC-reduction engine over source.
func NewIVCReduction(source solver.IVCSource, mailbox chan<- message.Message) *IVCReduction {
	return &IVCReduction{
		base:   newBase(message.SourceIVCReduction, mailbox),
		source: source,
	}
}

func (e *IVCReduction) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
	case <-e.stopped():
	}
	return nil
}

func (e *IVCReduction) HandleValid(m message.Valid) {
	dest, ok := m.Itinerary.NextDestination()
	if !ok || dest != message.DestinationIVCReduction {
		return
	}

	ivc, timedOut, err := e.source.MinimalCore(context.Background(), m.Properties)
	if err != nil {
		e.setLastError(fmt.Errorf("ivc reduction: %w", err))
		return
	}

	m.IVC = ivc
	m.MIVCTimedOut = timedOut
	m.Itinerary = m.Itinerary.Advance()
	e.publish(m)
}

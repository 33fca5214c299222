package engines

import (
	"context"
	"fmt"

	"github.com/vericore/vericore/pkg/message"
	"github.com/vericore/vericore/pkg/solver"
)

// AllIVCs extracts every minimal validity core for a Valid message routed
// to it, the all-IVCs counterpart to IVCReduction's single-core search.
type AllIVCs struct {
	base

	source solver.IVCSource
}

// NewAllIVCs creates an all-IVCs engine over source.
func NewAllIVCs(source solver.IVCSource, mailbox chan<- message.Message) *AllIVCs {
	return &AllIVCs{
		base:   newBase(message.SourceAllIVCs, mailbox),
		source: source,
	}
}

func (e *AllIVCs) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
	case <-e.stopped():
	}
	return nil
}

func (e *AllIVCs) HandleValid(m message.Valid) {
	dest, ok := m.Itinerary.NextDestination()
	if !ok || dest != message.DestinationAllIVCs {
		return
	}

	cores, err := e.source.AllCores(context.Background(), m.Properties)
	if err != nil {
		e.setLastError(fmt.Errorf("all-ivcs: %w", err))
		return
	}

	m.AllIVCs = cores
	m.Itinerary = m.Itinerary.Advance()
	e.publish(m)
}

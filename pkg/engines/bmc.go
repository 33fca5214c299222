package engines

import (
	"context"
	"fmt"
	"time"

	"github.com/vericore/vericore/pkg/message"
	"github.com/vericore/vericore/pkg/solver"
)

// BMC unrolls the analysis node's transition relation one step at a time,
// looking for a refutation at each depth. It never proves a property valid
// on its own — that is k-induction's and PDR's job — so it runs until
// stopped or until the first refutation, which it reports as Invalid for
// all of its properties before returning, reporting BaseStep progress
// whenever a depth completes clean.
type BMC struct {
	base

	backend    solver.Backend
	properties []string
	smoothing  bool
}

// NewBMC creates a BMC engine over properties, issuing queries against
// backend and publishing results to mailbox.
func NewBMC(backend solver.Backend, properties []string, smoothing bool, mailbox chan<- message.Message) *BMC {
	return &BMC{
		base:       newBase(message.SourceBMC, mailbox),
		backend:    backend,
		properties: properties,
		smoothing:  smoothing,
	}
}

func (e *BMC) Run(ctx context.Context) error {
	for depth := 0; ; depth++ {
		select {
		case <-ctx.Done():
			return nil
		case <-e.stopped():
			return nil
		default:
		}

		result, err := e.backend.Check(ctx, solver.Query{Depth: depth, Properties: e.properties})
		if err != nil {
			e.setLastError(fmt.Errorf("bmc: depth %d: %w", depth, err))
			return e.LastError()
		}

		if result.Sat {
			e.publish(message.Invalid{
				Source:     message.SourceBMC,
				Properties: e.properties,
				Length:     depth + 1,
				Model:      message.Model(result.Model),
				Itinerary:  invalidItinerary(e.smoothing),
			})
			return nil
		}

		e.publish(message.BaseStep{Step: depth, Properties: e.properties})

		select {
		case <-ctx.Done():
			return nil
		case <-e.stopped():
			return nil
		case <-time.After(time.Millisecond):
		}
	}
}

package engines

import (
	"context"
	"fmt"
	"time"

	"github.com/vericore/vericore/pkg/message"
	"github.com/vericore/vericore/pkg/solver"
)

// PDR incrementally strengthens an inductive invariant frame by frame,
// proving a property once a frame closes without a counterexample to
// induction. maxFrames bounds the search; the spec enables PDR whenever
// pdrMax >= 1 and reuses that same value as the frame bound here.
type PDR struct {
	base

	backend    solver.Backend
	properties []string
	maxFrames  int
	reduceIvc  bool
	allIvcs    bool
}

// NewPDR creates a PDR engine bounded to maxFrames frames.
func NewPDR(backend solver.Backend, properties []string, maxFrames int, reduceIvc, allIvcs bool, mailbox chan<- message.Message) *PDR {
	return &PDR{
		base:       newBase(message.SourcePDR, mailbox),
		backend:    backend,
		properties: properties,
		maxFrames:  maxFrames,
		reduceIvc:  reduceIvc,
		allIvcs:    allIvcs,
	}
}

func (e *PDR) Run(ctx context.Context) error {
	if e.maxFrames <= 0 {
		e.maxFrames = 1
	}

	for frame := 1; frame <= e.maxFrames; frame++ {
		select {
		case <-ctx.Done():
			return nil
		case <-e.stopped():
			return nil
		default:
		}

		result, err := e.backend.Check(ctx, solver.Query{Depth: frame, Properties: e.properties})
		if err != nil {
			e.setLastError(fmt.Errorf("pdr: frame %d: %w", frame, err))
			return e.LastError()
		}

		if !result.Sat {
			e.publish(message.Valid{
				Source:     message.SourcePDR,
				Properties: e.properties,
				K:          frame,
				Itinerary:  validItinerary(e.reduceIvc, e.allIvcs),
			})
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-e.stopped():
			return nil
		case <-time.After(time.Millisecond):
		}
	}

	e.publish(message.Unknown{Source: message.SourcePDR, Properties: e.properties})
	return nil
}

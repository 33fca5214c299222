package engines

import (
	"context"
	"fmt"
	"time"

	"github.com/vericore/vericore/pkg/message"
	"github.com/vericore/vericore/pkg/solver"
)

// KInduction attempts a k-inductive proof of each property, increasing the
// induction depth until either a proof is found, a counterexample to the
// inductive step turns up (purely informational — it does not refute the
// property), or maxK is exhausted and the engine gives up.
type KInduction struct {
	base

	backend    solver.Backend
	properties []string
	maxK       int
	reduceIvc  bool
	allIvcs    bool
}

// NewKInduction creates a k-induction engine. reduceIvc/allIvcs route Valid
// messages through IVC reduction and/or all-IVCs extraction before they
// reach the Director, per the matching configuration options.
func NewKInduction(backend solver.Backend, properties []string, maxK int, reduceIvc, allIvcs bool, mailbox chan<- message.Message) *KInduction {
	return &KInduction{
		base:       newBase(message.SourceKInduction, mailbox),
		backend:    backend,
		properties: properties,
		maxK:       maxK,
		reduceIvc:  reduceIvc,
		allIvcs:    allIvcs,
	}
}

func (e *KInduction) Run(ctx context.Context) error {
	if e.maxK <= 0 {
		e.maxK = 100
	}

	for k := 1; k <= e.maxK; k++ {
		select {
		case <-ctx.Done():
			return nil
		case <-e.stopped():
			return nil
		default:
		}

		result, err := e.backend.Check(ctx, solver.Query{Depth: k, Properties: e.properties})
		if err != nil {
			e.setLastError(fmt.Errorf("kinduction: k=%d: %w", k, err))
			return e.LastError()
		}

		if !result.Sat {
			e.publish(message.Valid{
				Source:     message.SourceKInduction,
				Properties: e.properties,
				K:          k,
				Itinerary:  e.itinerary(),
			})
			return nil
		}

		e.publish(message.InductiveCounterexample{
			Properties: e.properties,
			Length:     k,
			Model:      message.Model(result.Model),
		})

		select {
		case <-ctx.Done():
			return nil
		case <-e.stopped():
			return nil
		case <-time.After(time.Millisecond):
		}
	}

	e.publish(message.Unknown{Source: message.SourceKInduction, Properties: e.properties})
	return nil
}

func (e *KInduction) itinerary() message.Itinerary {
	return validItinerary(e.reduceIvc, e.allIvcs)
}

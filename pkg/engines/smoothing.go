package engines

import (
	"context"

	"github.com/vericore/vericore/pkg/message"
)

// Smoothing shortens Invalid counterexamples it receives by itinerary
// routing: it looks for the earliest step whose full variable assignment
// repeats the final step's assignment and truncates the trace there,
// trading exactness for a smaller, easier-to-read counterexample. It does
// no proof work of its own, so Run only waits to be stopped.
type Smoothing struct {
	base
}

// NewSmoothing creates a smoothing engine.
func NewSmoothing(mailbox chan<- message.Message) *Smoothing {
	return &Smoothing{base: newBase(message.SourceSmoothing, mailbox)}
}

func (e *Smoothing) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
	case <-e.stopped():
	}
	return nil
}

// HandleInvalid overrides base's no-op: if this message is addressed to
// smoothing, shorten it and forward the advanced message back to the
// mailbox; otherwise leave it untouched.
func (e *Smoothing) HandleInvalid(m message.Invalid) {
	dest, ok := m.Itinerary.NextDestination()
	if !ok || dest != message.DestinationSmoothing {
		return
	}

	m.Length = smoothLength(m.Model, m.Length)
	m.Itinerary = m.Itinerary.Advance()
	e.publish(m)
}

// smoothLength finds the earliest step before the last whose assignment
// across every tracked variable matches the final step, and returns that
// step's 1-based length; it returns the original length unchanged when no
// such repeat exists.
func smoothLength(model message.Model, length int) int {
	if length <= 1 {
		return length
	}
	last := length - 1
	for step := 0; step < last; step++ {
		if stepMatches(model, step, last) {
			return step + 1
		}
	}
	return length
}

func stepMatches(model message.Model, a, b int) bool {
	for _, values := range model {
		var va, vb string
		if a < len(values) {
			va = values[a]
		}
		if b < len(values) {
			vb = values[b]
		}
		if va != vb {
			return false
		}
	}
	return true
}

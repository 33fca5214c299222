package engines

import (
	"context"
	"testing"
	"time"

	"github.com/vericore/vericore/pkg/message"
	"github.com/vericore/vericore/pkg/solver"
)

func TestBMCPublishesBaseStepUntilRefuted(t *testing.T) {
	mailbox := make(chan message.Message, 16)
	backend := &scriptedBackend{satAtDepth: 2}
	e := NewBMC(backend, []string{"p1"}, false, mailbox)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var steps []int
	var invalid *message.Invalid
	for {
		select {
		case m := <-mailbox:
			switch v := m.(type) {
			case message.BaseStep:
				steps = append(steps, v.Step)
			case message.Invalid:
				invalid = &v
			}
			continue
		default:
		}
		break
	}

	if len(steps) != 2 {
		t.Fatalf("expected 2 base steps before refutation, got %v", steps)
	}
	if invalid == nil {
		t.Fatalf("expected an Invalid message once the backend reports sat")
	}
	if invalid.Length != 3 {
		t.Fatalf("expected length 3 (depth+1), got %d", invalid.Length)
	}
}

func TestKInductionGivesUpAtMaxK(t *testing.T) {
	mailbox := make(chan message.Message, 16)
	// satAtDepth 0 means the backend reports a counterexample to induction
	// at every depth, so k-induction never closes and must give up at maxK.
	backend := &scriptedBackend{satAtDepth: 0}
	e := NewKInduction(backend, []string{"p1"}, 3, false, false, mailbox)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var unknown *message.Unknown
	for {
		select {
		case m := <-mailbox:
			if u, ok := m.(message.Unknown); ok {
				unknown = &u
			}
			continue
		default:
		}
		break
	}
	if unknown == nil {
		t.Fatalf("expected an Unknown message once maxK is exhausted")
	}
	if unknown.Source != message.SourceKInduction {
		t.Fatalf("expected source KIND, got %v", unknown.Source)
	}
}

func TestKInductionProvesValidWithItinerary(t *testing.T) {
	mailbox := make(chan message.Message, 16)
	backend := &scriptedBackend{satAtDepth: 100}
	e := NewKInduction(backend, []string{"p1"}, 5, true, true, mailbox)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	m := <-mailbox
	valid, ok := m.(message.Valid)
	if !ok {
		t.Fatalf("expected Valid, got %T", m)
	}
	dest, ok := valid.Itinerary.NextDestination()
	if !ok || dest != message.DestinationIVCReduction {
		t.Fatalf("expected itinerary to start at IVC_REDUCTION, got %v ok=%v", dest, ok)
	}
}

func TestSmoothingShortensAddressedInvalid(t *testing.T) {
	mailbox := make(chan message.Message, 4)
	e := NewSmoothing(mailbox)

	model := message.Model{
		"x": {"0", "1", "1"},
	}
	e.HandleInvalid(message.Invalid{
		Properties: []string{"p1"},
		Length:     3,
		Model:      model,
		Itinerary:  message.Itinerary{message.DestinationSmoothing},
	})

	m := <-mailbox
	smoothed, ok := m.(message.Invalid)
	if !ok {
		t.Fatalf("expected smoothed Invalid republished, got %T", m)
	}
	if smoothed.Length != 2 {
		t.Fatalf("expected smoothed length 2 (repeat at step 1), got %d", smoothed.Length)
	}
	if !smoothed.Itinerary.Terminal() {
		t.Fatalf("expected itinerary advanced to terminal")
	}
}

func TestSmoothingIgnoresMessagesNotAddressedToIt(t *testing.T) {
	mailbox := make(chan message.Message, 4)
	e := NewSmoothing(mailbox)

	e.HandleInvalid(message.Invalid{Properties: []string{"p1"}, Length: 3})

	select {
	case m := <-mailbox:
		t.Fatalf("expected no republish for a non-addressed message, got %v", m)
	default:
	}
}

func TestIVCReductionAttachesCoreAndAdvancesItinerary(t *testing.T) {
	mailbox := make(chan message.Message, 4)
	e := NewIVCReduction(solver.NewStubIVCSource(), mailbox)

	e.HandleValid(message.Valid{
		Properties: []string{"p1"},
		Itinerary:  message.Itinerary{message.DestinationIVCReduction, message.DestinationAllIVCs},
	})

	m := <-mailbox
	v, ok := m.(message.Valid)
	if !ok {
		t.Fatalf("expected republished Valid, got %T", m)
	}
	if len(v.IVC.Equations) == 0 {
		t.Fatalf("expected a non-empty IVC attached")
	}
	dest, ok := v.Itinerary.NextDestination()
	if !ok || dest != message.DestinationAllIVCs {
		t.Fatalf("expected itinerary advanced to IVC_REDUCTION_ALL, got %v ok=%v", dest, ok)
	}
}

// scriptedBackend reports sat once depth reaches satAtDepth (never, if
// negative), letting tests drive BMC/k-induction/PDR through a fixed number
// of clean depths before a scripted outcome.
type scriptedBackend struct {
	satAtDepth int
}

func (b *scriptedBackend) Check(_ context.Context, q solver.Query) (solver.Result, error) {
	if b.satAtDepth >= 0 && q.Depth >= b.satAtDepth {
		return solver.Result{Sat: true, Model: map[string][]string{"x": {"0", "1"}}}, nil
	}
	return solver.Result{Sat: false}, nil
}

func (b *scriptedBackend) Close() error { return nil }

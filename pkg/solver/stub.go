package solver

import (
	"context"

	"github.com/vericore/vericore/pkg/message"
)

// StubBackend is a placeholder Backend that always reports unsatisfiable
// (i.e. "no counterexample at this depth"), so a full Director can be
// wired and exercised end-to-end without a real SMT solver attached. It
// exists only so cmd/vericore has something concrete to construct engines
// against; production use requires swapping in a real solver-backed
// implementation of Backend, InvariantSource, and IVCSource.
type StubBackend struct{}

// NewStubBackend creates a StubBackend.
func NewStubBackend() *StubBackend { return &StubBackend{} }

func (StubBackend) Check(_ context.Context, _ Query) (Result, error) {
	return Result{Sat: false}, nil
}

func (StubBackend) Close() error { return nil }

// StubInvariantSource never offers a new invariant; it exists so InvGen has
// something to poll when no real synthesis backend is configured.
type StubInvariantSource struct{}

// NewStubInvariantSource creates a StubInvariantSource.
func NewStubInvariantSource() *StubInvariantSource { return &StubInvariantSource{} }

func (StubInvariantSource) Next(_ context.Context) (message.Invariant, bool, error) {
	return message.Invariant{}, false, nil
}

// StubIVCSource returns a placeholder core whose equations are just the
// property names it was given (it never sees the node's equations), so the
// IVC-reduction and all-IVCs engines have somewhere to route a Valid
// message when no real unsat-core search is wired in.
type StubIVCSource struct{}

// NewStubIVCSource creates a StubIVCSource.
func NewStubIVCSource() *StubIVCSource { return &StubIVCSource{} }

func (StubIVCSource) MinimalCore(_ context.Context, properties []string) (message.IVC, bool, error) {
	return message.IVC{Equations: properties}, false, nil
}

func (StubIVCSource) AllCores(_ context.Context, properties []string) ([]message.IVC, error) {
	return []message.IVC{{Equations: properties}}, nil
}

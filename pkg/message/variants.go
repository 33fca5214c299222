package message

import "time"

// Invariant is a single learned fact about the analysis node, reusable
// across engines and persisted as advice.
type Invariant struct {
	Expr string
}

// IVC is a minimal inductive validity core: the subset of model equations
// sufficient to prove a property.
type IVC struct {
	Equations []string
}

// Model is the opaque solver assignment an engine attaches to a refutation
// or an inductive counterexample. Reconstructing a concrete trace from it is
// one of the two pure functions the Director treats as an external
// collaborator (see pkg/cex).
type Model map[string][]string

// Valid reports a set of properties proven true at depth K.
type Valid struct {
	Source       Source
	Properties   []string
	K            int
	ProofTime    time.Duration
	Invariants   []Invariant
	IVC          IVC
	AllIVCs      []IVC
	MIVCTimedOut bool
	Itinerary    Itinerary
}

func (Valid) Kind() Kind { return KindValid }

// Invalid reports a set of properties refuted by a counterexample of the
// given length.
type Invalid struct {
	Source     Source
	Properties []string
	Length     int
	Model      Model
	Itinerary  Itinerary
}

func (Invalid) Kind() Kind { return KindInvalid }

// InductiveCounterexample is a counterexample to the inductive step that
// does not refute the property; purely informational.
type InductiveCounterexample struct {
	Properties []string
	Length     int
	Model      Model
}

func (InductiveCounterexample) Kind() Kind { return KindInductiveCounterexample }

// Unknown reports that Source has given up on Properties at the current
// base step.
type Unknown struct {
	Source     Source
	Properties []string
}

func (Unknown) Kind() Kind { return KindUnknown }

// BaseStep reports that BMC reached Step without refuting Properties.
type BaseStep struct {
	Step       int
	Properties []string
}

func (BaseStep) Kind() Kind { return KindBaseStep }

// Invariant message broadcasts learned invariants for cross-engine reuse.
type InvariantMessage struct {
	Invariants []Invariant
}

func (InvariantMessage) Kind() Kind { return KindInvariant }

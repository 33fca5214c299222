// Package writer defines the Director's output sink contract and ships the
// four concrete writers selectable by configuration: console, XML,
// spreadsheet, and in-memory.
package writer

import (
	"time"

	"github.com/vericore/vericore/pkg/cex"
	"github.com/vericore/vericore/pkg/message"
)

// ValidRecord is everything a writer needs to report a settled Valid verdict.
type ValidRecord struct {
	Properties   []string
	Source       message.Source
	K            int
	ProofTime    time.Duration
	Runtime      time.Duration
	Invariants   []message.Invariant
	IVC          message.IVC
	AllIVCs      []message.IVC
	MIVCTimedOut bool
}

// InvalidRecord reports a single refuted property and its reconstructed
// counterexample.
type InvalidRecord struct {
	Property       string
	Source         message.Source
	Length         int
	Runtime        time.Duration
	Counterexample cex.Counterexample
}

// UnknownRecord reports a group of properties committed as completely
// unknown at a shared base step.
type UnknownRecord struct {
	Properties               []string
	BaseStep                 int
	InductiveCounterexamples map[string]message.InductiveCounterexample
	Runtime                  time.Duration
}

// BaseStepRecord reports BMC depth progress.
type BaseStepRecord struct {
	Step       int
	Properties []string
	Runtime    time.Duration
}

// Writer is the Director's output sink. Begin is called exactly once before
// any write, End exactly once after the last write. Every write carries the
// elapsed runtime at the moment it was emitted.
type Writer interface {
	Begin() error
	WriteValid(ValidRecord) error
	WriteInvalid(InvalidRecord) error
	WriteUnknown(UnknownRecord) error
	WriteBaseStep(BaseStepRecord) error
	End() error
}

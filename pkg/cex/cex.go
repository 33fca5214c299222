// Package cex provides the two pure functions the Director calls out to when
// it settles a property: extracting a concrete counterexample trace from a
// solver model for a refutation, and projecting an inductive validity core
// onto the equations it actually needs for a proof. Both are treated as external collaborators —
// the real implementations belong to the model-reconstruction subsystem —
// but their signatures are pinned here so the Director can be built and
// tested against them.
package cex

import (
	"sort"

	"github.com/vericore/vericore/pkg/analysis"
	"github.com/vericore/vericore/pkg/message"
)

// Step is one time step of a reconstructed counterexample trace: each
// variable's value at that step, keyed by the user spec's variable names.
type Step map[string]string

// Counterexample is a concrete, user-facing trace of Length steps.
type Counterexample struct {
	Length int
	Steps  []Step
}

// Extract reconstructs a concrete Counterexample of the given length from a
// solver Model, in terms of spec's variable names. It is pure: it never
// mutates model or spec, and the same inputs always yield the same trace.
func Extract(spec *analysis.UserSpec, model message.Model, length int) Counterexample {
	names := make([]string, 0, len(spec.Node.Vars))
	for _, v := range spec.Node.Vars {
		names = append(names, v.Name)
	}
	sort.Strings(names)

	steps := make([]Step, length)
	for i := 0; i < length; i++ {
		step := make(Step, len(names))
		for _, name := range names {
			values := model[name]
			if i < len(values) {
				step[name] = values[i]
			}
		}
		steps[i] = step
	}
	return Counterexample{Length: length, Steps: steps}
}

// ProjectIVC takes the right-side projection of an inductive validity core
// onto spec's equations: the set of equations whose left-hand variable
// appears in ivc.Equations, expanded to include their own right-hand
// dependencies when allAssigned is set. It is pure.
func ProjectIVC(spec *analysis.Node, ivc message.IVC, allAssigned bool) message.IVC {
	wanted := make(map[string]bool, len(ivc.Equations))
	for _, lhs := range ivc.Equations {
		wanted[lhs] = true
	}

	var projected []string
	for _, eq := range spec.Equations {
		if !wanted[eq.LHS] {
			continue
		}
		projected = append(projected, eq.LHS)
		if allAssigned {
			projected = append(projected, eq.RHS)
		}
	}
	return message.IVC{Equations: projected}
}

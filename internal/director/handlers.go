package director

import (
	"sort"

	"github.com/vericore/vericore/pkg/cex"
	"github.com/vericore/vericore/pkg/message"
	"github.com/vericore/vericore/pkg/writer"
)

// HandleValid implements spec.md §4.4.1.
func (d *Director) HandleValid(m message.Valid) {
	if dest, inTransit := m.Itinerary.NextDestination(); inTransit {
		if dest == message.DestinationIVCReduction && d.adviceWrite != nil {
			_ = d.adviceWrite.Append(m.Invariants)
		}
		return
	}

	newlyValid := d.rost.Intersect(m.Properties)
	if len(newlyValid) == 0 {
		return
	}

	d.rost.MarkValid(newlyValid)
	d.cexStore.Drop(newlyValid)

	if d.adviceWrite != nil {
		_ = d.adviceWrite.Append(m.Invariants)
	}

	var invariantsOut []message.Invariant
	if d.cfg.ReduceIVC {
		invariantsOut = m.Invariants
	}

	ivc := m.IVC
	allIvcs := m.AllIVCs
	if d.cfg.ReduceIVC && !d.cfg.MiniJKind {
		ivc = cex.ProjectIVC(&d.analysisSpec.Node, ivc, d.cfg.AllAssigned)
		projected := make([]message.IVC, len(allIvcs))
		for i, core := range allIvcs {
			projected[i] = cex.ProjectIVC(&d.analysisSpec.Node, core, d.cfg.AllAssigned)
		}
		allIvcs = projected
	}

	d.metrics.PropertySettled("valid", len(newlyValid))
	d.metrics.ProofTime(string(m.Source), m.ProofTime)

	_ = d.wr.WriteValid(writer.ValidRecord{
		Properties:   newlyValid,
		Source:       m.Source,
		K:            m.K,
		ProofTime:    m.ProofTime,
		Runtime:      d.runtime(),
		Invariants:   invariantsOut,
		IVC:          ivc,
		AllIVCs:      allIvcs,
		MIVCTimedOut: m.MIVCTimedOut,
	})
}

// HandleInvalid implements spec.md §4.4.2.
func (d *Director) HandleInvalid(m message.Invalid) {
	if _, inTransit := m.Itinerary.NextDestination(); inTransit {
		return
	}

	newlyInvalid := d.rost.Intersect(m.Properties)
	if len(newlyInvalid) == 0 {
		return
	}

	d.rost.MarkInvalid(newlyInvalid)
	d.cexStore.Drop(newlyInvalid)
	d.metrics.PropertySettled("invalid", len(newlyInvalid))

	for _, p := range newlyInvalid {
		trace := cex.Extract(d.userSpec, m.Model, m.Length)
		_ = d.wr.WriteInvalid(writer.InvalidRecord{
			Property:       p,
			Source:         m.Source,
			Length:         m.Length,
			Runtime:        d.runtime(),
			Counterexample: trace,
		})
	}
}

// HandleInductiveCounterexample implements spec.md §4.4.3.
func (d *Director) HandleInductiveCounterexample(m message.InductiveCounterexample) {
	d.cexStore.Record(m)
}

// HandleUnknown implements spec.md §4.4.4. Messages sourced from the
// Director itself are ignored to prevent feedback loops from its own
// rebroadcast.
func (d *Director) HandleUnknown(m message.Unknown) {
	if m.Source == message.SourceDirector {
		return
	}

	d.unknown.Record(m.Source, m.Properties, d.baseStep)

	completelyUnknown := make([]string, 0, len(m.Properties))
	for _, p := range m.Properties {
		if !d.rost.IsRemaining(p) {
			continue
		}
		if _, ok := d.unknown.CompletelyUnknown(p); ok {
			completelyUnknown = append(completelyUnknown, p)
		}
	}
	if len(completelyUnknown) == 0 {
		return
	}

	groups := d.unknown.GroupByBaseStep(completelyUnknown)
	steps := make([]int, 0, len(groups))
	for step := range groups {
		steps = append(steps, step)
	}
	sort.Ints(steps)

	for _, step := range steps {
		group := groups[step]
		d.rost.DropUnknown(group)
		d.cexStore.Drop(group)
		d.metrics.PropertySettled("unknown", len(group))

		_ = d.wr.WriteUnknown(writer.UnknownRecord{
			Properties:               group,
			BaseStep:                 step,
			InductiveCounterexamples: d.cexStore.Snapshot(),
			Runtime:                  d.runtime(),
		})

		d.broadcast(message.Unknown{Source: message.SourceDirector, Properties: group})
	}
}

// HandleBaseStep implements spec.md §4.4.5.
func (d *Director) HandleBaseStep(m message.BaseStep) {
	d.baseStep = m.Step
	if len(m.Properties) == 0 {
		return
	}
	_ = d.wr.WriteBaseStep(writer.BaseStepRecord{
		Step:       m.Step,
		Properties: m.Properties,
		Runtime:    d.runtime(),
	})
}

// HandleInvariant is a no-op: the observed source never snapshots or
// rebroadcasts invariants here (spec.md §9 open question, preserved
// verbatim).
func (d *Director) HandleInvariant(message.InvariantMessage) {}

// Package roster holds the Director's live partition of the initial
// property list, and the per-engine bookkeeping used to decide when a
// property has been abandoned by every configured engine.
package roster

import "github.com/vericore/vericore/pkg/message"

// Roster partitions an initial property list into three disjoint sets:
// Remaining (still being worked), Valid, and Invalid. Remaining is reported
// in initial-list order; Valid and Invalid in the order properties settled.
type Roster struct {
	order     []string
	remaining map[string]bool
	valid     []string
	invalid   []string
}

// New creates a Roster with every property initially Remaining, in the
// order given.
func New(initial []string) *Roster {
	r := &Roster{
		order:     append([]string(nil), initial...),
		remaining: make(map[string]bool, len(initial)),
	}
	for _, p := range initial {
		r.remaining[p] = true
	}
	return r
}

// Remaining returns properties still unsettled, in initial-list order.
func (r *Roster) Remaining() []string {
	out := make([]string, 0, len(r.remaining))
	for _, p := range r.order {
		if r.remaining[p] {
			out = append(out, p)
		}
	}
	return out
}

// IsRemaining reports whether p is still unsettled.
func (r *Roster) IsRemaining(p string) bool {
	return r.remaining[p]
}

// Valid returns properties proven valid, in the order they settled.
func (r *Roster) Valid() []string {
	return append([]string(nil), r.valid...)
}

// Invalid returns properties proven invalid, in the order they settled.
func (r *Roster) Invalid() []string {
	return append([]string(nil), r.invalid...)
}

// Done reports whether no property remains unsettled.
func (r *Roster) Done() bool {
	return len(r.remaining) == 0
}

// Intersect returns the subset of props that are still Remaining, preserving
// the order of props. This is the "newlyValid"/"newlyInvalid" computation
// from the Director's handlers: a later engine's duplicate report intersects
// to empty and is dropped by the caller.
func (r *Roster) Intersect(props []string) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		if r.remaining[p] {
			out = append(out, p)
		}
	}
	return out
}

// MarkValid moves props (already filtered through Intersect by the caller)
// out of Remaining and appends them to Valid.
func (r *Roster) MarkValid(props []string) {
	for _, p := range props {
		if r.remaining[p] {
			delete(r.remaining, p)
			r.valid = append(r.valid, p)
		}
	}
}

// MarkInvalid moves props out of Remaining and appends them to Invalid.
func (r *Roster) MarkInvalid(props []string) {
	for _, p := range props {
		if r.remaining[p] {
			delete(r.remaining, p)
			r.invalid = append(r.invalid, p)
		}
	}
}

// DropUnknown removes props from Remaining without recording them as Valid
// or Invalid: the "completely unknown" terminal verdict.
func (r *Roster) DropUnknown(props []string) {
	for _, p := range props {
		delete(r.remaining, p)
	}
}

// UnknownTracker records, per property, which engines have given up. A
// property is "completely unknown" once it is present in all three
// structures — i.e. every configured proof engine has abandoned it.
type UnknownTracker struct {
	bmc  map[string]int
	kind map[string]struct{}
	pdr  map[string]struct{}
}

// NewUnknownTracker creates an empty tracker.
func NewUnknownTracker() *UnknownTracker {
	return &UnknownTracker{
		bmc:  make(map[string]int),
		kind: make(map[string]struct{}),
		pdr:  make(map[string]struct{}),
	}
}

// SeedDisabledBMC pre-seeds every initial property into the BMC tracker at
// base step 0, for use when BMC is not configured, so that the
// completely-unknown predicate no longer waits on it.
func (t *UnknownTracker) SeedDisabledBMC(initial []string) {
	for _, p := range initial {
		if _, ok := t.bmc[p]; !ok {
			t.bmc[p] = 0
		}
	}
}

// SeedDisabledKInduction pre-seeds the k-induction tracker for a disabled engine.
func (t *UnknownTracker) SeedDisabledKInduction(initial []string) {
	for _, p := range initial {
		t.kind[p] = struct{}{}
	}
}

// SeedDisabledPDR pre-seeds the PDR tracker for a disabled engine.
func (t *UnknownTracker) SeedDisabledPDR(initial []string) {
	for _, p := range initial {
		t.pdr[p] = struct{}{}
	}
}

// RecordBMC sets the base step at which BMC gave up on each of props.
func (t *UnknownTracker) RecordBMC(props []string, baseStep int) {
	for _, p := range props {
		t.bmc[p] = baseStep
	}
}

// RecordKInduction marks props abandoned by k-induction.
func (t *UnknownTracker) RecordKInduction(props []string) {
	for _, p := range props {
		t.kind[p] = struct{}{}
	}
}

// RecordPDR marks props abandoned by PDR.
func (t *UnknownTracker) RecordPDR(props []string) {
	for _, p := range props {
		t.pdr[p] = struct{}{}
	}
}

// CompletelyUnknown reports whether every configured engine has abandoned p,
// and if so, the BMC base step recorded for it.
func (t *UnknownTracker) CompletelyUnknown(p string) (baseStep int, ok bool) {
	baseStep, inBMC := t.bmc[p]
	if !inBMC {
		return 0, false
	}
	if _, inKind := t.kind[p]; !inKind {
		return 0, false
	}
	if _, inPDR := t.pdr[p]; !inPDR {
		return 0, false
	}
	return baseStep, true
}

// Record updates the tracker for a message.Source, dispatching to the right
// per-engine structure. It is a no-op for sources that are not one of the
// three tracked proof engines (e.g. an Unknown message the Director itself
// re-broadcasts, which callers must already have filtered out).
func (t *UnknownTracker) Record(source message.Source, props []string, baseStep int) {
	switch source {
	case message.SourceBMC:
		t.RecordBMC(props, baseStep)
	case message.SourceKInduction:
		t.RecordKInduction(props)
	case message.SourcePDR:
		t.RecordPDR(props)
	}
}

// GroupByBaseStep partitions props (assumed already filtered to "completely
// unknown") by their recorded BMC base step, preserving first-seen order of
// each group.
func (t *UnknownTracker) GroupByBaseStep(props []string) map[int][]string {
	groups := make(map[int][]string)
	for _, p := range props {
		step, ok := t.CompletelyUnknown(p)
		if !ok {
			continue
		}
		groups[step] = append(groups[step], p)
	}
	return groups
}

// InductiveCexStore tracks the most recent inductive counterexample per
// property. Entries are overwritten on update and removed when the property
// settles.
type InductiveCexStore struct {
	entries map[string]message.InductiveCounterexample
}

// NewInductiveCexStore creates an empty store.
func NewInductiveCexStore() *InductiveCexStore {
	return &InductiveCexStore{entries: make(map[string]message.InductiveCounterexample)}
}

// Record overwrites the stored counterexample for each of msg.Properties.
func (s *InductiveCexStore) Record(msg message.InductiveCounterexample) {
	for _, p := range msg.Properties {
		s.entries[p] = msg
	}
}

// Drop removes stored entries for props (called once a property settles).
func (s *InductiveCexStore) Drop(props []string) {
	for _, p := range props {
		delete(s.entries, p)
	}
}

// Snapshot returns a copy of the current property -> counterexample map, for
// attaching to writeUnknown reports.
func (s *InductiveCexStore) Snapshot() map[string]message.InductiveCounterexample {
	out := make(map[string]message.InductiveCounterexample, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

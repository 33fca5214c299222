package roster

import (
	"reflect"
	"testing"

	"github.com/vericore/vericore/pkg/message"
)

func TestRosterPartitionIsDisjointAndBoundedByInitialList(t *testing.T) {
	r := New([]string{"p1", "p2", "p3"})

	r.MarkValid(r.Intersect([]string{"p1"}))
	r.MarkInvalid(r.Intersect([]string{"p2"}))

	seen := map[string]int{}
	for _, p := range r.Remaining() {
		seen[p]++
	}
	for _, p := range r.Valid() {
		seen[p]++
	}
	for _, p := range r.Invalid() {
		seen[p]++
	}
	for p, n := range seen {
		if n != 1 {
			t.Fatalf("property %s appeared in %d partitions, want exactly 1", p, n)
		}
	}
	if !reflect.DeepEqual(r.Remaining(), []string{"p3"}) {
		t.Fatalf("unexpected remaining: %v", r.Remaining())
	}
}

func TestDuplicateTerminalVerdictIsAbsorbed(t *testing.T) {
	r := New([]string{"p1"})

	first := r.Intersect([]string{"p1"})
	if len(first) != 1 {
		t.Fatalf("expected p1 to be newly valid")
	}
	r.MarkValid(first)

	second := r.Intersect([]string{"p1"})
	if len(second) != 0 {
		t.Fatalf("duplicate delivery must intersect to empty, got %v", second)
	}
}

func TestCompletelyUnknownRequiresAllThreeEngines(t *testing.T) {
	tr := NewUnknownTracker()
	tr.RecordBMC([]string{"p1"}, 5)
	if _, ok := tr.CompletelyUnknown("p1"); ok {
		t.Fatalf("p1 should not be completely unknown yet")
	}

	tr.RecordKInduction([]string{"p1"})
	if _, ok := tr.CompletelyUnknown("p1"); ok {
		t.Fatalf("p1 should still not be completely unknown")
	}

	tr.RecordPDR([]string{"p1"})
	step, ok := tr.CompletelyUnknown("p1")
	if !ok || step != 5 {
		t.Fatalf("expected completely unknown at base step 5, got step=%d ok=%v", step, ok)
	}
}

func TestSeedingDisabledEngineRemovesItAsGate(t *testing.T) {
	tr := NewUnknownTracker()
	tr.SeedDisabledKInduction([]string{"p1"})
	tr.SeedDisabledPDR([]string{"p1"})

	tr.RecordBMC([]string{"p1"}, 0)
	step, ok := tr.CompletelyUnknown("p1")
	if !ok || step != 0 {
		t.Fatalf("expected p1 completely unknown once BMC reports, got step=%d ok=%v", step, ok)
	}
}

func TestGroupByBaseStep(t *testing.T) {
	tr := NewUnknownTracker()
	tr.RecordBMC([]string{"p1", "p2"}, 3)
	tr.RecordBMC([]string{"p3"}, 7)
	tr.RecordKInduction([]string{"p1", "p2", "p3"})
	tr.RecordPDR([]string{"p1", "p2", "p3"})

	groups := tr.GroupByBaseStep([]string{"p1", "p2", "p3"})
	if !reflect.DeepEqual(groups[3], []string{"p1", "p2"}) {
		t.Fatalf("unexpected group at step 3: %v", groups[3])
	}
	if !reflect.DeepEqual(groups[7], []string{"p3"}) {
		t.Fatalf("unexpected group at step 7: %v", groups[7])
	}
}

func TestInductiveCexStoreRecordAndDrop(t *testing.T) {
	s := NewInductiveCexStore()
	s.Record(message.InductiveCounterexample{Properties: []string{"p1"}, Length: 4})

	snap := s.Snapshot()
	if snap["p1"].Length != 4 {
		t.Fatalf("expected stored length 4, got %+v", snap["p1"])
	}

	s.Drop([]string{"p1"})
	if len(s.Snapshot()) != 0 {
		t.Fatalf("expected entry removed after Drop")
	}
}

package advice

import (
	"path/filepath"
	"testing"

	"github.com/vericore/vericore/pkg/analysis"
	"github.com/vericore/vericore/pkg/message"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advice.db")
	store, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreSeedAppendRead(t *testing.T) {
	store := openTestStore(t)

	vars := []analysis.VarDecl{{Name: "x", Type: "int"}, {Name: "y", Type: "bool"}}
	if err := store.Seed(vars); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	if err := store.Append([]message.Invariant{{Expr: "x >= 0"}}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := store.Append([]message.Invariant{{Expr: "y -> x > 0"}}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 invariants, got %d: %+v", len(got), got)
	}
}

func TestSQLiteStoreSeedIsIdempotent(t *testing.T) {
	store := openTestStore(t)
	vars := []analysis.VarDecl{{Name: "x", Type: "int"}}

	if err := store.Seed(vars); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := store.Append([]message.Invariant{{Expr: "x >= 0"}}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := store.Seed(vars); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("re-seeding must not drop existing advice, got %d entries", len(got))
	}
}

func TestSQLiteStoreSignaturesAreOrderIndependent(t *testing.T) {
	a := signature([]analysis.VarDecl{{Name: "x", Type: "int"}, {Name: "y", Type: "bool"}})
	b := signature([]analysis.VarDecl{{Name: "y", Type: "bool"}, {Name: "x", Type: "int"}})
	if a != b {
		t.Fatalf("expected order-independent signature, got %q vs %q", a, b)
	}
}

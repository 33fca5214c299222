// Package analysis holds the plain data types the Director reads: the
// user-facing specification (used for counterexample extraction) and the
// analysis-form specification (whose property list drives the roster).
// Parsing an input program into these forms is out of scope here — an
// external translator populates them; this package only names the shapes.
package analysis

// VarDecl is a single variable declaration carried by the analysis node,
// seeded into an advice writer at construction.
type VarDecl struct {
	Name string
	Type string
}

// Equation is one equation of the analysis node's transition relation,
// named by the left-hand variable it assigns.
type Equation struct {
	LHS string
	RHS string
}

// Node is the analysis-form representation of the program under check: its
// variable declarations and defining equations.
type Node struct {
	Vars      []VarDecl
	Equations []Equation
}

// Spec is the analysis-form specification: the property list that seeds the
// Director's roster, plus the node those properties are checked against.
type Spec struct {
	Properties []string
	Node       Node
}

// UserSpec is the user-facing specification, kept distinct from Spec because
// counterexample extraction (pkg/cex) reconstructs traces in terms of the
// user's original variable names rather than the analysis form's.
type UserSpec struct {
	SourceName string
	Node       Node
}

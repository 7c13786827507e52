// Package memsolver is a deterministic in-memory Builder used by the
// core's own tests. It does not solve anything — solving is the real
// solver's job (§1, out of scope) — it records every variable and
// constraint so tests can assert the model shape the compilers produced.
package memsolver

import "github.com/kaigoshift/kaigoshift/pkg/solver"

// ConstraintKind distinguishes the three linear relations compilers emit
// and the one-hot constraint the variable factory emits.
type ConstraintKind int

const (
	Equality ConstraintKind = iota
	LessOrEqual
	GreaterOrEqual
	ExactlyOne
)

// Constraint is one recorded constraint.
type Constraint struct {
	Kind ConstraintKind
	LHS  solver.Expr
	RHS  solver.Expr
	Vars []solver.Var // populated only for ExactlyOne
}

// ObjectiveTerm is one recorded (term, weight) pair.
type ObjectiveTerm struct {
	Term   solver.Expr
	Weight int64
}

// Model is the in-memory Builder implementation.
type Model struct {
	vars        []solver.Var
	constraints []Constraint
	objective   []ObjectiveTerm
	finalized   bool
	nextID      int
}

// New creates an empty model.
func New() *Model {
	return &Model{}
}

var _ solver.Builder = (*Model)(nil)

func (m *Model) NewBoolVar(name string) solver.Var {
	v := solver.Var{ID: m.nextID, Name: name, Kind: solver.Bool, LB: 0, UB: 1}
	m.nextID++
	m.vars = append(m.vars, v)
	return v
}

func (m *Model) NewIntVar(lb, ub int64, name string) solver.Var {
	v := solver.Var{ID: m.nextID, Name: name, Kind: solver.Int, LB: lb, UB: ub}
	m.nextID++
	m.vars = append(m.vars, v)
	return v
}

func (m *Model) AddExactlyOne(vars []solver.Var) {
	cp := make([]solver.Var, len(vars))
	copy(cp, vars)
	m.constraints = append(m.constraints, Constraint{Kind: ExactlyOne, Vars: cp})
}

func (m *Model) AddEquality(lhs, rhs solver.Expr) {
	m.constraints = append(m.constraints, Constraint{Kind: Equality, LHS: lhs, RHS: rhs})
}

func (m *Model) AddLessOrEqual(lhs, rhs solver.Expr) {
	m.constraints = append(m.constraints, Constraint{Kind: LessOrEqual, LHS: lhs, RHS: rhs})
}

func (m *Model) AddGreaterOrEqual(lhs, rhs solver.Expr) {
	m.constraints = append(m.constraints, Constraint{Kind: GreaterOrEqual, LHS: lhs, RHS: rhs})
}

func (m *Model) AddToObjective(term solver.Expr, weight int64) {
	m.objective = append(m.objective, ObjectiveTerm{Term: term, Weight: weight})
}

func (m *Model) Finalize() { m.finalized = true }

func (m *Model) NumVariables() int { return len(m.vars) }

func (m *Model) NumConstraints() int { return len(m.constraints) }

func (m *Model) NumObjectiveTerms() int { return len(m.objective) }

// Vars exposes every variable created, in creation order.
func (m *Model) Vars() []solver.Var { return m.vars }

// Constraints exposes every constraint recorded, in emission order.
func (m *Model) Constraints() []Constraint { return m.constraints }

// Objective exposes the penalty-term list P (§3).
func (m *Model) Objective() []ObjectiveTerm { return m.objective }

// Finalized reports whether Finalize was called.
func (m *Model) Finalized() bool { return m.finalized }

// Package cpsat adapts pkg/solver.Builder onto Google OR-Tools' CP-SAT
// Go bindings (github.com/google/or-tools/ortools/sat/go/cpmodel) —
// the concrete solver the core treats as a black box (§1).
package cpsat

import (
	"fmt"

	cmpb "github.com/google/or-tools/ortools/sat/go/cpmodelproto"
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/kaigoshift/kaigoshift/pkg/solver"
)

// Model wraps a cpmodel.CpModelBuilder and tracks the handle mapping
// between solver.Var (opaque to compilers) and the underlying
// cpmodel variables.
type Model struct {
	cmb         *cpmodel.CpModelBuilder
	bools       map[int]cpmodel.BoolVar
	ints        map[int]cpmodel.IntVar
	objective   *cpmodel.LinearExpr
	nextID      int
	numVars     int
	numCons     int
	numObjTerms int
}

// New creates an empty CP-SAT model builder.
func New() *Model {
	return &Model{
		cmb:       cpmodel.NewCpModelBuilder(),
		bools:     make(map[int]cpmodel.BoolVar),
		ints:      make(map[int]cpmodel.IntVar),
		objective: cpmodel.NewLinearExpr(),
	}
}

var _ solver.Builder = (*Model)(nil)

func (m *Model) NewBoolVar(name string) solver.Var {
	bv := m.cmb.NewBoolVar().WithName(name)
	v := solver.Var{ID: m.nextID, Name: name, Kind: solver.Bool, LB: 0, UB: 1}
	m.bools[v.ID] = bv
	m.nextID++
	m.numVars++
	return v
}

func (m *Model) NewIntVar(lb, ub int64, name string) solver.Var {
	iv := m.cmb.NewIntVar(lb, ub).WithName(name)
	v := solver.Var{ID: m.nextID, Name: name, Kind: solver.Int, LB: lb, UB: ub}
	m.ints[v.ID] = iv
	m.nextID++
	m.numVars++
	return v
}

// linearArg translates a solver.Var back into the cpmodel handle
// created for it, as either a BoolVar or an IntVar.
func (m *Model) linearArg(v solver.Var) cpmodel.LinearArgument {
	if v.Kind == solver.Bool {
		if bv, ok := m.bools[v.ID]; ok {
			return bv
		}
	}
	if iv, ok := m.ints[v.ID]; ok {
		return iv
	}
	panic(fmt.Sprintf("cpsat: unknown variable handle %+v", v))
}

func (m *Model) toLinearExpr(e solver.Expr) *cpmodel.LinearExpr {
	le := cpmodel.NewLinearExpr()
	for _, t := range e.Terms() {
		le.AddTerm(m.linearArg(t.Var), t.Coeff)
	}
	if c := e.Constant(); c != 0 {
		le.AddConstant(c)
	}
	return le
}

func (m *Model) AddExactlyOne(vars []solver.Var) {
	lits := make([]cpmodel.Literal, len(vars))
	for i, v := range vars {
		lits[i] = m.bools[v.ID]
	}
	m.cmb.AddExactlyOne(lits...)
	m.numCons++
}

func (m *Model) AddEquality(lhs, rhs solver.Expr) {
	m.cmb.AddEquality(m.toLinearExpr(lhs), m.toLinearExpr(rhs))
	m.numCons++
}

func (m *Model) AddLessOrEqual(lhs, rhs solver.Expr) {
	m.cmb.AddLessOrEqual(m.toLinearExpr(lhs), m.toLinearExpr(rhs))
	m.numCons++
}

func (m *Model) AddGreaterOrEqual(lhs, rhs solver.Expr) {
	m.cmb.AddGreaterOrEqual(m.toLinearExpr(lhs), m.toLinearExpr(rhs))
	m.numCons++
}

func (m *Model) AddToObjective(term solver.Expr, weight int64) {
	le := m.toLinearExpr(term)
	m.objective.AddTerm(le, weight)
	m.numObjTerms++
}

func (m *Model) Finalize() {
	m.cmb.Minimize(m.objective)
}

func (m *Model) NumVariables() int { return m.numVars }

func (m *Model) NumConstraints() int { return m.numCons }

func (m *Model) NumObjectiveTerms() int { return m.numObjTerms }

// Solve instantiates the proto model and runs the CP-SAT solver.
func (m *Model) Solve() (*cmpb.CpSolverResponse, error) {
	built, err := m.cmb.Model()
	if err != nil {
		return nil, fmt.Errorf("cpsat: failed to instantiate model: %w", err)
	}
	resp, err := cpmodel.SolveCpModel(built)
	if err != nil {
		return nil, fmt.Errorf("cpsat: solve failed: %w", err)
	}
	return resp, nil
}

// BooleanValue reads a solved boolean variable's value out of a response.
func (m *Model) BooleanValue(resp *cmpb.CpSolverResponse, v solver.Var) bool {
	return cpmodel.SolutionBooleanValue(resp, m.bools[v.ID])
}

// IntegerValue reads a solved integer variable's value out of a response.
func (m *Model) IntegerValue(resp *cmpb.CpSolverResponse, v solver.Var) int64 {
	return cpmodel.SolutionIntegerValue(resp, m.ints[v.ID])
}

// Package solver declares the minimal surface the builder needs from a
// CP/MILP solver: boolean variables, bounded integer variables, linear
// (in)equalities, one-hot constraints, and a linear objective. §1 treats
// the concrete solver as an out-of-scope black box — this interface is
// the boundary; no compiler package may import a concrete backend.
package solver

import "fmt"

// VarKind distinguishes a boolean variable from a bounded integer one.
type VarKind int

const (
	Bool VarKind = iota
	Int
)

// Var is an opaque handle to a solver variable. Compilers never
// construct one directly; they come back from Builder.NewBoolVar /
// NewIntVar.
type Var struct {
	ID   int
	Name string
	Kind VarKind
	LB   int64
	UB   int64
}

// Term returns the linear expression "1 * v".
func (v Var) Term() Expr { return Expr{terms: []term{{coeff: 1, v: v}}} }

// Scaled returns the linear expression "coeff * v".
func (v Var) Scaled(coeff int64) Expr { return Expr{terms: []term{{coeff: coeff, v: v}}} }

type term struct {
	coeff int64
	v     Var
}

// Expr is a linear expression over solver variables plus a constant.
type Expr struct {
	terms    []term
	constant int64
}

// Const returns the constant expression c.
func Const(c int64) Expr { return Expr{constant: c} }

// Sum adds a list of expressions together.
func Sum(exprs ...Expr) Expr {
	var out Expr
	for _, e := range exprs {
		out.terms = append(out.terms, e.terms...)
		out.constant += e.constant
	}
	return out
}

// Plus returns e + other.
func (e Expr) Plus(other Expr) Expr { return Sum(e, other) }

// Minus returns e - other.
func (e Expr) Minus(other Expr) Expr {
	neg := Expr{constant: -other.constant}
	for _, t := range other.terms {
		neg.terms = append(neg.terms, term{coeff: -t.coeff, v: t.v})
	}
	return Sum(e, neg)
}

// Terms exposes the (coeff, var) pairs for a backend to translate.
func (e Expr) Terms() []struct {
	Coeff int64
	Var   Var
} {
	out := make([]struct {
		Coeff int64
		Var   Var
	}, len(e.terms))
	for i, t := range e.terms {
		out[i] = struct {
			Coeff int64
			Var   Var
		}{Coeff: t.coeff, Var: t.v}
	}
	return out
}

// Constant exposes the additive constant for a backend to translate.
func (e Expr) Constant() int64 { return e.constant }

func (e Expr) String() string {
	s := fmt.Sprintf("%d", e.constant)
	for _, t := range e.terms {
		s += fmt.Sprintf(" + %d*%s", t.coeff, t.v.Name)
	}
	return s
}

// Builder is the black-box solver surface. A concrete implementation
// either talks to a real CP-SAT solver (pkg/solver/cpsat) or records
// the model in memory for deterministic unit testing
// (pkg/solver/memsolver).
type Builder interface {
	// NewBoolVar creates a fresh boolean variable.
	NewBoolVar(name string) Var

	// NewIntVar creates a fresh bounded integer variable, lb <= v <= ub.
	NewIntVar(lb, ub int64, name string) Var

	// AddExactlyOne emits "exactly one of vars is true" (I1, §3).
	AddExactlyOne(vars []Var)

	// AddEquality emits lhs = rhs.
	AddEquality(lhs, rhs Expr)

	// AddLessOrEqual emits lhs <= rhs.
	AddLessOrEqual(lhs, rhs Expr)

	// AddGreaterOrEqual emits lhs >= rhs.
	AddGreaterOrEqual(lhs, rhs Expr)

	// AddToObjective appends w*term to the objective (§4.13). A weight
	// of 0 is a caller error to avoid — compilers must skip the call
	// entirely per §3 "weight = 0 ... term is skipped".
	AddToObjective(term Expr, weight int64)

	// Finalize sets the accumulated objective as the minimization
	// target. Safe to call once the last compiler has run.
	Finalize()

	// NumVariables reports the number of variables created so far.
	NumVariables() int

	// NumConstraints reports the number of constraints emitted so far.
	NumConstraints() int

	// NumObjectiveTerms reports the number of (term, weight) pairs
	// appended to the objective so far (§3 penalty-term list P).
	NumObjectiveTerms() int
}

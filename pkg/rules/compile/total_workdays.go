package compile

import (
	"fmt"

	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/model"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// TotalWorkdays compiles §4.10's six constraint_type variants against
// Σ_d work[e,d] over the whole horizon. workingShifts is the build's
// working-shift set W passed in by the caller; the rule itself carries
// no working-shift set of its own.
func TotalWorkdays(b solver.Builder, g *variables.Grid, r rules.TotalWorkdaysRule, workingShifts map[model.ShiftCode]bool, diag *diagnostics.List) {
	total, ok := g.TotalWorkExpr(r.EmployeeID, workingShifts)
	if !ok {
		diag.Info("total_workdays", fmt.Sprintf("unknown employee %q; rule is a no-op", r.EmployeeID))
		return
	}

	horizonLen := int64(g.Horizon().Len())
	name := fmt.Sprintf("total_workdays[%s]", r.EmployeeID)

	switch r.ConstraintType {
	case model.Exact:
		b.AddEquality(total, solver.Const(r.Days))
	case model.Max:
		b.AddLessOrEqual(total, solver.Const(r.Days))
	case model.Min:
		b.AddGreaterOrEqual(total, solver.Const(r.Days))
	case model.SoftExact:
		if !r.PenaltyWeight.Effective() {
			return
		}
		over := b.NewIntVar(0, horizonLen, name+"_over")
		under := b.NewIntVar(0, horizonLen, name+"_under")
		b.AddEquality(total.Plus(under.Term()).Minus(over.Term()), solver.Const(r.Days))
		b.AddToObjective(over.Term(), int64(r.PenaltyWeight))
		b.AddToObjective(under.Term(), int64(r.PenaltyWeight))
	case model.SoftMax:
		if !r.PenaltyWeight.Effective() {
			return
		}
		over := b.NewIntVar(0, horizonLen, name+"_over")
		b.AddLessOrEqual(total.Minus(over.Term()), solver.Const(r.Days))
		b.AddToObjective(over.Term(), int64(r.PenaltyWeight))
	case model.SoftMin:
		if !r.PenaltyWeight.Effective() {
			return
		}
		under := b.NewIntVar(0, horizonLen, name+"_under")
		b.AddGreaterOrEqual(total.Plus(under.Term()), solver.Const(r.Days))
		b.AddToObjective(under.Term(), int64(r.PenaltyWeight))
	default:
		diag.Info("total_workdays", fmt.Sprintf("unknown constraint_type %q for employee %q; rule is a no-op", r.ConstraintType, r.EmployeeID))
	}
}

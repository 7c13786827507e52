package compile

import (
	"fmt"

	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// ShiftRequest compiles §4.8: one employee's request for a specific
// shift on a specific date.
func ShiftRequest(b solver.Builder, g *variables.Grid, r rules.ShiftRequestRule, diag *diagnostics.List) {
	di := g.Horizon().Index(r.DateStr)
	if di < 0 {
		diag.Info("shift_request", fmt.Sprintf("date %q is outside the horizon; rule is a no-op", r.DateStr))
		return
	}
	v, ok := g.Var(r.EmployeeID, di, r.RequestedShift)
	if !ok {
		diag.Info("shift_request", fmt.Sprintf("no variable for employee %q, date %q, shift %q", r.EmployeeID, r.DateStr, r.RequestedShift))
		return
	}

	if r.ConstraintType.IsHard() {
		b.AddEquality(v.Term(), solver.Const(1))
		return
	}

	if r.PenaltyWeight.Effective() {
		// Soft request: reward granting it by penalising its absence.
		miss := b.NewBoolVar(fmt.Sprintf("request_miss[%s,%s,%s]", r.EmployeeID, r.DateStr, r.RequestedShift))
		b.AddEquality(v.Term().Plus(miss.Term()), solver.Const(1))
		b.AddToObjective(miss.Term(), int64(r.PenaltyWeight))
	}
}

package compile

import (
	"fmt"

	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// SequentialShift compiles §4.6: whenever an employee works
// PreviousShiftName on day d, NextShiftName is required on day d+1.
// Hard: x[e,d,A] <= x[e,d+1,B]. Soft: a violation indicator v >= a-b
// is penalised instead of forbidding the assignment outright.
func SequentialShift(b solver.Builder, g *variables.Grid, r rules.SequentialShiftRule, diag *diagnostics.List) {
	numDates := g.Horizon().Len()
	if numDates < 2 {
		diag.Info("sequential_shift", "horizon has fewer than 2 days; rule is a no-op")
		return
	}

	for _, e := range g.Roster().Employees() {
		for di := 0; di < numDates-1; di++ {
			a, ok1 := g.Var(e.ID, di, r.PreviousShiftName)
			bv, ok2 := g.Var(e.ID, di+1, r.NextShiftName)
			if !ok1 || !ok2 {
				continue
			}

			if r.ConstraintType.IsHard() {
				b.AddLessOrEqual(a.Term(), bv.Term())
				continue
			}

			if !r.PenaltyWeight.Effective() {
				continue
			}
			violation := b.NewBoolVar(fmt.Sprintf("sequence_violation[%s,%d]", e.ID, di))
			b.AddLessOrEqual(a.Term().Minus(bv.Term()), violation.Term())
			b.AddToObjective(violation.Term(), int64(r.PenaltyWeight))
		}
	}
}

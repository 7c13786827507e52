package compile

import (
	"fmt"

	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/model"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// MinDaysOff compiles §4.4: minimum personal days off over the horizon.
func MinDaysOff(b solver.Builder, g *variables.Grid, r rules.MinDaysOffRule, diag *diagnostics.List) {
	group := g.Roster().ByEmploymentType(r.TargetEmploymentType)
	if len(group) == 0 {
		diag.Info("min_days_off", fmt.Sprintf("employment type %q has no members; rule is a no-op", r.TargetEmploymentType))
		return
	}

	for _, empID := range group {
		offCount, ok := g.ShiftCountExpr(empID, model.ShiftOff)
		if !ok {
			continue
		}

		if r.ConstraintType.IsHard() {
			b.AddGreaterOrEqual(offCount, solver.Const(r.MinDays))
			continue
		}

		if !r.UnderPenaltyWeight.Effective() {
			continue
		}
		shortage := b.NewIntVar(0, r.MinDays, fmt.Sprintf("daysoff_shortage[%s]", empID))
		b.AddGreaterOrEqual(offCount.Plus(shortage.Term()), solver.Const(r.MinDays))
		b.AddToObjective(shortage.Term(), int64(r.UnderPenaltyWeight))
	}
}

package compile

import (
	"fmt"

	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// Balance compiles §4.7: the spread between the most- and least-
// assigned members of a group for one shift must not exceed
// MaxDiffAllowed. M and m are extracted with auxiliary bound
// variables rather than solved for directly: M >= count_i and
// m <= count_i for every member i, so M-m is at least the true max-min
// spread; bounding or penalising M-m therefore bounds or penalises it.
func Balance(b solver.Builder, g *variables.Grid, r rules.BalanceRule, diag *diagnostics.List) {
	group := g.Roster().ByEmploymentType(r.TargetEmploymentType)
	if len(group) < 2 {
		diag.Info("balance", fmt.Sprintf("employment type %q has fewer than 2 members; rule is a no-op", r.TargetEmploymentType))
		return
	}

	horizonLen := int64(g.Horizon().Len())
	maxVar := b.NewIntVar(0, horizonLen, fmt.Sprintf("balance_max[%s,%s]", r.TargetEmploymentType, r.TargetShiftName))
	minVar := b.NewIntVar(0, horizonLen, fmt.Sprintf("balance_min[%s,%s]", r.TargetEmploymentType, r.TargetShiftName))

	for _, empID := range group {
		count, ok := g.ShiftCountExpr(empID, r.TargetShiftName)
		if !ok {
			continue
		}
		b.AddGreaterOrEqual(maxVar.Term(), count)
		b.AddLessOrEqual(minVar.Term(), count)
	}

	spread := maxVar.Term().Minus(minVar.Term())
	maxDiff := int64(0)
	if r.MaxDiffAllowed != nil {
		maxDiff = *r.MaxDiffAllowed
	}

	if r.ConstraintType.IsHard() {
		b.AddLessOrEqual(spread, solver.Const(maxDiff))
		return
	}

	if !r.PenaltyWeight.Effective() {
		return
	}
	excess := b.NewIntVar(0, horizonLen, fmt.Sprintf("balance_excess[%s,%s]", r.TargetEmploymentType, r.TargetShiftName))
	b.AddLessOrEqual(spread.Minus(excess.Term()), solver.Const(maxDiff))
	b.AddToObjective(excess.Term(), int64(r.PenaltyWeight))
}

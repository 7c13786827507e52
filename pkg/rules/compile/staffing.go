// Package compile holds the ten rule-family compilers (§4.3–§4.12):
// each consumes the variable grid, the roster, and one rule dict, and
// emits constraints plus penalty terms onto a solver.Builder.
package compile

import (
	"fmt"

	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// Staffing compiles §4.3: facility staffing per floor x shift.
func Staffing(b solver.Builder, g *variables.Grid, r rules.StaffingRule, diag *diagnostics.List) {
	group := g.Roster().Floor(r.Floor)
	if len(group) == 0 {
		diag.Info("staffing", fmt.Sprintf("floor %q has no employees; rule is a no-op", r.Floor))
		return
	}

	for di := range g.Horizon().Dates() {
		var terms []solver.Expr
		for _, empID := range group {
			v, ok := g.Var(empID, di, r.Shift)
			if !ok {
				continue
			}
			terms = append(terms, v.Term())
		}
		count := solver.Sum(terms...)

		if r.ConstraintType.IsHard() {
			b.AddEquality(count, solver.Const(r.Target))
			continue
		}

		underEffective := r.UnderPenaltyWeight.Effective()
		overEffective := r.OverPenaltyWeight.Effective()
		if !underEffective && !overEffective {
			continue
		}

		switch {
		case underEffective && overEffective:
			shortage := b.NewIntVar(0, int64(len(group)), fmt.Sprintf("shortage[%s,%d,%s]", r.Floor, di, r.Shift))
			excess := b.NewIntVar(0, int64(len(group)), fmt.Sprintf("excess[%s,%d,%s]", r.Floor, di, r.Shift))
			b.AddEquality(count.Plus(shortage.Term()).Minus(excess.Term()), solver.Const(r.Target))
			b.AddToObjective(shortage.Term(), int64(r.UnderPenaltyWeight))
			b.AddToObjective(excess.Term(), int64(r.OverPenaltyWeight))
		case underEffective:
			// Over-staffing is left unpenalised and uncapped.
			shortage := b.NewIntVar(0, int64(len(group)), fmt.Sprintf("shortage[%s,%d,%s]", r.Floor, di, r.Shift))
			b.AddGreaterOrEqual(count.Plus(shortage.Term()), solver.Const(r.Target))
			b.AddToObjective(shortage.Term(), int64(r.UnderPenaltyWeight))
		case overEffective:
			// Under-staffing is left unpenalised and uncapped.
			excess := b.NewIntVar(0, int64(len(group)), fmt.Sprintf("excess[%s,%d,%s]", r.Floor, di, r.Shift))
			b.AddLessOrEqual(count.Minus(excess.Term()), solver.Const(r.Target))
			b.AddToObjective(excess.Term(), int64(r.OverPenaltyWeight))
		}
	}
}

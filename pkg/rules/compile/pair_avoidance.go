package compile

import (
	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// PairAvoidance compiles §4.9 (hard-only): two named employees may
// never both be on one of AvoidShifts on the same day.
func PairAvoidance(b solver.Builder, g *variables.Grid, r rules.PairAvoidanceRule, diag *diagnostics.List) {
	first, second := r.EmployeePair[0], r.EmployeePair[1]

	for _, s := range r.AvoidShifts {
		for di := range g.Horizon().Dates() {
			v1, ok1 := g.Var(first, di, s)
			v2, ok2 := g.Var(second, di, s)
			if !ok1 || !ok2 {
				continue
			}
			b.AddLessOrEqual(v1.Term().Plus(v2.Term()), solver.Const(1))
		}
	}
}

package compile

import (
	"fmt"

	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// MaxConsecutiveWorkdays compiles §4.5 with a sliding window of size
// MaxDays+1: in every such window, at most MaxDays of the days may be
// worked, which forbids any run of MaxDays+1 consecutive workdays.
func MaxConsecutiveWorkdays(b solver.Builder, g *variables.Grid, r rules.MaxConsecutiveWorkdaysRule, diag *diagnostics.List) {
	window := int(r.MaxDays) + 1
	numDates := g.Horizon().Len()
	if window > numDates {
		diag.Info("max_consecutive_workdays", fmt.Sprintf("window size %d exceeds horizon length %d; rule is a no-op", window, numDates))
		return
	}

	shiftSet := shiftBoolSet(r.WorkShifts)

	for _, e := range g.Roster().Employees() {
		for start := 0; start+window <= numDates; start++ {
			var terms []solver.Expr
			for di := start; di < start+window; di++ {
				w, ok := g.WorkExpr(e.ID, di, shiftSet)
				if !ok {
					continue
				}
				terms = append(terms, w)
			}
			windowSum := solver.Sum(terms...)

			if r.ConstraintType.IsHard() {
				b.AddLessOrEqual(windowSum, solver.Const(r.MaxDays))
				continue
			}

			if !r.OverPenaltyWeight.Effective() {
				continue
			}
			excess := b.NewIntVar(0, int64(window), fmt.Sprintf("consecutive_excess[%s,%d]", e.ID, start))
			b.AddLessOrEqual(windowSum.Minus(excess.Term()), solver.Const(r.MaxDays))
			b.AddToObjective(excess.Term(), int64(r.OverPenaltyWeight))
		}
	}
}

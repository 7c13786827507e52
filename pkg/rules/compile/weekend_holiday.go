package compile

import (
	"fmt"

	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/model"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// WeekendHoliday compiles §4.11: employees get the shift OFF on
// weekends and public holidays, deduplicated by
// Horizon.WeekendOrHolidayDates so a holiday that falls on a Saturday
// is only constrained once.
func WeekendHoliday(b solver.Builder, g *variables.Grid, r rules.WeekendHolidayRule, diag *diagnostics.List) {
	targets := r.TargetEmployees
	if len(targets) == 0 {
		for _, e := range g.Roster().Employees() {
			targets = append(targets, e.ID)
		}
	}

	dates := g.Horizon().WeekendOrHolidayDates()
	if len(dates) == 0 {
		diag.Info("weekend_holiday", "horizon contains no weekends or public holidays; rule is a no-op")
		return
	}

	for _, empID := range targets {
		for _, d := range dates {
			di := g.Horizon().Index(d.String())
			if di < 0 {
				continue
			}
			v, ok := g.Var(empID, di, model.ShiftOff)
			if !ok {
				continue
			}

			if r.ConstraintType.IsHard() {
				b.AddEquality(v.Term(), solver.Const(1))
				continue
			}

			if r.PenaltyWeight.Effective() {
				miss := b.NewBoolVar(fmt.Sprintf("weh_miss[%s,%s]", empID, d.String()))
				b.AddEquality(v.Term().Plus(miss.Term()), solver.Const(1))
				b.AddToObjective(miss.Term(), int64(r.PenaltyWeight))
			}
		}
	}
}

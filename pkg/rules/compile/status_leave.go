package compile

import (
	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/model"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// StatusLeave compiles §4.12 (hard-only): any employee whose Status is
// one of StatusValuesForFullLeave is fixed to LeaveShiftName (OFF by
// default) for every day of the horizon.
func StatusLeave(b solver.Builder, g *variables.Grid, r rules.StatusLeaveRule, diag *diagnostics.List) {
	leave := r.LeaveShiftName
	if leave == "" {
		leave = model.ShiftOff
	}

	statusMatched := g.Roster().ByStatus(r.StatusValuesForFullLeave)

	targets := statusMatched
	if len(r.TargetEmployees) > 0 {
		statusSet := make(map[string]bool, len(statusMatched))
		for _, id := range statusMatched {
			statusSet[id] = true
		}
		narrowed := make([]string, 0, len(r.TargetEmployees))
		for _, id := range r.TargetEmployees {
			if statusSet[id] {
				narrowed = append(narrowed, id)
			}
		}
		targets = narrowed
	}
	if len(targets) == 0 {
		diag.Info("status_leave", "no employees match the configured statuses; rule is a no-op")
		return
	}

	for _, empID := range targets {
		for di := range g.Horizon().Dates() {
			v, ok := g.Var(empID, di, leave)
			if !ok {
				continue
			}
			b.AddEquality(v.Term(), solver.Const(1))
		}
	}
}

// Package variables builds the assignment variable grid x[e,d,s] and
// its canonical derived indicators (§4.1).
package variables

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kaigoshift/kaigoshift/pkg/model"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
)

// Grid is the three-way lookup x[e,d,s] plus memoised derived
// indicators. The assignment variables are stored densely by
// (employee index, date index, shift index); memoised work indicators
// live in a map keyed by employee index, date index and working-set
// signature.
type Grid struct {
	roster  *model.Roster
	horizon *model.Horizon
	shifts  *model.ShiftSet

	empIndex map[string]int
	cells    [][][]solver.Var // [empIdx][dateIdx][shiftIdx]

	workCache map[string]solver.Expr
}

// New constructs the |E|x|D|x|S| boolean grid and emits the one-hot
// constraint I1 for every (e,d) cell. This is the sole universal hard
// constraint the variable factory emits; everything else is rule-driven.
func New(b solver.Builder, roster *model.Roster, horizon *model.Horizon, shifts *model.ShiftSet) (*Grid, error) {
	if roster.Len() == 0 {
		return nil, fmt.Errorf("variables: roster must be non-empty")
	}
	if horizon.Len() == 0 {
		return nil, fmt.Errorf("variables: horizon must be non-empty")
	}
	if shifts.Len() == 0 {
		return nil, fmt.Errorf("variables: shift alphabet must be non-empty")
	}

	g := &Grid{
		roster:    roster,
		horizon:   horizon,
		shifts:    shifts,
		empIndex:  make(map[string]int, roster.Len()),
		workCache: make(map[string]solver.Expr),
	}

	employees := roster.Employees()
	dates := horizon.Dates()
	codes := shifts.Codes()

	g.cells = make([][][]solver.Var, len(employees))
	for ei, e := range employees {
		g.empIndex[e.ID] = ei
		g.cells[ei] = make([][]solver.Var, len(dates))
		for di, d := range dates {
			row := make([]solver.Var, len(codes))
			for si, s := range codes {
				name := fmt.Sprintf("x[%s,%s,%s]", e.ID, d.String(), s)
				row[si] = b.NewBoolVar(name)
			}
			g.cells[ei][di] = row
			b.AddExactlyOne(row)
		}
	}

	return g, nil
}

// Var returns x[employeeID, dateIdx, shift], and false if any index is
// out of range.
func (g *Grid) Var(employeeID string, dateIdx int, shift model.ShiftCode) (solver.Var, bool) {
	ei, ok := g.empIndex[employeeID]
	if !ok {
		return solver.Var{}, false
	}
	if dateIdx < 0 || dateIdx >= len(g.cells[ei]) {
		return solver.Var{}, false
	}
	si := g.shifts.Index(shift)
	if si < 0 {
		return solver.Var{}, false
	}
	return g.cells[ei][dateIdx][si], true
}

// Roster exposes the employee set E.
func (g *Grid) Roster() *model.Roster { return g.roster }

// Horizon exposes the date sequence D.
func (g *Grid) Horizon() *model.Horizon { return g.horizon }

// Shifts exposes the shift alphabet S.
func (g *Grid) Shifts() *model.ShiftSet { return g.shifts }

// WorkExpr returns work[e,d] = Σ_{s∈workingShifts} x[e,d,s], memoised
// per (employee, date, working-set) so repeated compilers reuse the
// same linear expression rather than rebuilding it.
func (g *Grid) WorkExpr(employeeID string, dateIdx int, workingShifts map[model.ShiftCode]bool) (solver.Expr, bool) {
	ei, ok := g.empIndex[employeeID]
	if !ok {
		return solver.Expr{}, false
	}
	if dateIdx < 0 || dateIdx >= len(g.cells[ei]) {
		return solver.Expr{}, false
	}

	key := fmt.Sprintf("%d|%d|%s", ei, dateIdx, workingSetSignature(workingShifts))
	if e, cached := g.workCache[key]; cached {
		return e, true
	}

	var terms []solver.Expr
	for _, s := range g.shifts.Codes() {
		if workingShifts[s] {
			si := g.shifts.Index(s)
			terms = append(terms, g.cells[ei][dateIdx][si].Term())
		}
	}
	expr := solver.Sum(terms...)
	g.workCache[key] = expr
	return expr, true
}

// TotalWorkExpr returns Σ_d work[e,d] over the whole horizon for the
// given working-shift set — used by the total-workdays family (§4.10).
func (g *Grid) TotalWorkExpr(employeeID string, workingShifts map[model.ShiftCode]bool) (solver.Expr, bool) {
	if _, ok := g.empIndex[employeeID]; !ok {
		return solver.Expr{}, false
	}
	var terms []solver.Expr
	for di := range g.horizon.Dates() {
		e, _ := g.WorkExpr(employeeID, di, workingShifts)
		terms = append(terms, e)
	}
	return solver.Sum(terms...), true
}

// ShiftCountExpr returns Σ_d x[e,d,shift] over the whole horizon —
// used by the min-days-off (§4.4) and balance (§4.7) families.
func (g *Grid) ShiftCountExpr(employeeID string, shift model.ShiftCode) (solver.Expr, bool) {
	ei, ok := g.empIndex[employeeID]
	if !ok {
		return solver.Expr{}, false
	}
	si := g.shifts.Index(shift)
	if si < 0 {
		return solver.Expr{}, false
	}
	var terms []solver.Expr
	for di := range g.cells[ei] {
		terms = append(terms, g.cells[ei][di][si].Term())
	}
	return solver.Sum(terms...), true
}

func workingSetSignature(set map[model.ShiftCode]bool) string {
	codes := make([]string, 0, len(set))
	for s, on := range set {
		if on {
			codes = append(codes, string(s))
		}
	}
	sort.Strings(codes)
	return strings.Join(codes, ",")
}

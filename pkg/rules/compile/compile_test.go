package compile

import (
	"testing"

	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/model"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver/memsolver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// testFixture builds a 2-employee, 4-day, 3-shift grid on a fresh
// in-memory model, shared by every compiler test below.
func testFixture(t *testing.T) (*memsolver.Model, *variables.Grid) {
	t.Helper()

	shifts, err := model.NewShiftSet([]model.ShiftCode{model.ShiftOff, model.ShiftDay, model.ShiftNight})
	if err != nil {
		t.Fatalf("NewShiftSet: %v", err)
	}
	roster, err := model.NewRoster([]model.Employee{
		{ID: "e1", EmploymentType: "常勤", Floor: "1F", Status: ""},
		{ID: "e2", EmploymentType: "常勤", Floor: "1F", Status: "育休"},
	})
	if err != nil {
		t.Fatalf("NewRoster: %v", err)
	}
	horizon, err := model.NewHorizon(
		[]string{"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04"},
		map[string]bool{"2026-01-04": true},
	)
	if err != nil {
		t.Fatalf("NewHorizon: %v", err)
	}

	m := memsolver.New()
	g, err := variables.New(m, roster, horizon, shifts)
	if err != nil {
		t.Fatalf("variables.New: %v", err)
	}
	return m, g
}

func TestStaffing_Hard(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	Staffing(m, g, rules.StaffingRule{
		Floor: "1F", Shift: model.ShiftDay, Target: 1, ConstraintType: model.Hard,
	}, &diag)

	added := m.NumConstraints() - before
	if added != g.Horizon().Len() {
		t.Errorf("expected one equality per day, got %d new constraints", added)
	}
	if len(diag) != 0 {
		t.Errorf("expected no diagnostics, got %+v", diag)
	}
}

func TestStaffing_SoftAddsSlackAndObjective(t *testing.T) {
	m, g := testFixture(t)

	var diag diagnostics.List
	Staffing(m, g, rules.StaffingRule{
		Floor: "1F", Shift: model.ShiftDay, Target: 1,
		ConstraintType: model.Soft, UnderPenaltyWeight: 3, OverPenaltyWeight: 5,
	}, &diag)

	if len(m.Objective()) != 2*g.Horizon().Len() {
		t.Errorf("expected 2 objective terms per day, got %d", len(m.Objective()))
	}
}

func TestStaffing_NoOpOnEmptyFloor(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	Staffing(m, g, rules.StaffingRule{
		Floor: "2F", Shift: model.ShiftDay, Target: 1, ConstraintType: model.Hard,
	}, &diag)

	if m.NumConstraints() != before {
		t.Errorf("expected no constraints for an empty floor")
	}
	if len(diag) != 1 {
		t.Errorf("expected one info diagnostic, got %+v", diag)
	}
}

func TestMinDaysOff_Hard(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	MinDaysOff(m, g, rules.MinDaysOffRule{
		MinDays: 1, TargetEmploymentType: "常勤", ConstraintType: model.Hard,
	}, &diag)

	if m.NumConstraints()-before != 2 {
		t.Errorf("expected one constraint per employee, got %d", m.NumConstraints()-before)
	}
}

func TestMaxConsecutiveWorkdays_WindowExceedsHorizon(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	MaxConsecutiveWorkdays(m, g, rules.MaxConsecutiveWorkdaysRule{
		MaxDays: 10, WorkShifts: []model.ShiftCode{model.ShiftDay, model.ShiftNight}, ConstraintType: model.Hard,
	}, &diag)

	if m.NumConstraints() != before {
		t.Errorf("expected no constraints when window exceeds horizon")
	}
	if len(diag) != 1 {
		t.Errorf("expected one info diagnostic, got %+v", diag)
	}
}

func TestMaxConsecutiveWorkdays_SlidesWindow(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	MaxConsecutiveWorkdays(m, g, rules.MaxConsecutiveWorkdaysRule{
		MaxDays: 2, WorkShifts: []model.ShiftCode{model.ShiftDay, model.ShiftNight}, ConstraintType: model.Hard,
	}, &diag)

	// window=3, horizon=4 -> 2 starting positions per employee x 2 employees.
	if got, want := m.NumConstraints()-before, 4; got != want {
		t.Errorf("expected %d window constraints, got %d", want, got)
	}
}

func TestSequentialShift_Hard(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	SequentialShift(m, g, rules.SequentialShiftRule{
		PreviousShiftName: model.ShiftNight, NextShiftName: model.ShiftOff, ConstraintType: model.Hard,
	}, &diag)

	if got, want := m.NumConstraints()-before, 2*(g.Horizon().Len()-1); got != want {
		t.Errorf("expected %d constraints, got %d", want, got)
	}
}

func TestBalance_HardUsesMaxDiff(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	maxDiff := int64(1)
	var diag diagnostics.List
	Balance(m, g, rules.BalanceRule{
		TargetEmploymentType: "常勤", TargetShiftName: model.ShiftOff,
		ConstraintType: model.Hard, MaxDiffAllowed: &maxDiff,
	}, &diag)

	// 2 members x (max + min bound constraints) + 1 spread constraint.
	if got, want := m.NumConstraints()-before, 5; got != want {
		t.Errorf("expected %d constraints, got %d", want, got)
	}
}

func TestBalance_NoOpOnSingleMemberGroup(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	Balance(m, g, rules.BalanceRule{
		TargetEmploymentType: "パート", TargetShiftName: model.ShiftOff, ConstraintType: model.Hard,
	}, &diag)

	if m.NumConstraints() != before {
		t.Errorf("expected no constraints for an empty/undersized group")
	}
	if len(diag) != 1 {
		t.Errorf("expected one info diagnostic, got %+v", diag)
	}
}

func TestShiftRequest_Hard(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	ShiftRequest(m, g, rules.ShiftRequestRule{
		EmployeeID: "e1", DateStr: "2026-01-02", RequestedShift: model.ShiftDay, ConstraintType: model.Hard,
	}, &diag)

	if m.NumConstraints()-before != 1 {
		t.Errorf("expected exactly one constraint, got %d", m.NumConstraints()-before)
	}
}

func TestShiftRequest_OutOfHorizonIsNoOp(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	ShiftRequest(m, g, rules.ShiftRequestRule{
		EmployeeID: "e1", DateStr: "2099-01-01", RequestedShift: model.ShiftDay, ConstraintType: model.Hard,
	}, &diag)

	if m.NumConstraints() != before {
		t.Errorf("expected no constraints for an out-of-horizon date")
	}
	if len(diag) != 1 {
		t.Errorf("expected one info diagnostic, got %+v", diag)
	}
}

func TestPairAvoidance_OneConstraintPerShiftPerDay(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	PairAvoidance(m, g, rules.PairAvoidanceRule{
		EmployeePair: [2]string{"e1", "e2"}, AvoidShifts: []model.ShiftCode{model.ShiftNight}, ConstraintType: model.Hard,
	}, &diag)

	if got, want := m.NumConstraints()-before, g.Horizon().Len(); got != want {
		t.Errorf("expected %d constraints, got %d", want, got)
	}
}

func TestTotalWorkdays_Exact(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	TotalWorkdays(m, g, rules.TotalWorkdaysRule{
		EmployeeID: "e1", ConstraintType: model.Exact, Days: 3,
	}, model.DefaultWorkingShifts(), &diag)

	if m.NumConstraints()-before != 1 {
		t.Errorf("expected one equality constraint, got %d", m.NumConstraints()-before)
	}
}

func TestTotalWorkdays_SoftExactAddsTwoSlackVars(t *testing.T) {
	m, g := testFixture(t)
	beforeVars := m.NumVariables()

	var diag diagnostics.List
	TotalWorkdays(m, g, rules.TotalWorkdaysRule{
		EmployeeID: "e1", ConstraintType: model.SoftExact, Days: 3, PenaltyWeight: 4,
	}, model.DefaultWorkingShifts(), &diag)

	if got, want := m.NumVariables()-beforeVars, 2; got != want {
		t.Errorf("expected 2 new slack vars, got %d", got)
	}
	if len(m.Objective()) != 2 {
		t.Errorf("expected 2 objective terms, got %d", len(m.Objective()))
	}
}

func TestWeekendHoliday_CoversWeekendAndHolidayOnce(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	WeekendHoliday(m, g, rules.WeekendHolidayRule{ConstraintType: model.Hard}, &diag)

	// 2026-01-03 is a Saturday, 2026-01-04 is a flagged holiday (also a Sunday):
	// 2 WEH dates x 2 employees = 4 constraints, no double counting.
	if got, want := m.NumConstraints()-before, 4; got != want {
		t.Errorf("expected %d constraints, got %d", want, got)
	}
}

func TestStatusLeave_FixesMatchingEmployeeEveryDay(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	StatusLeave(m, g, rules.StatusLeaveRule{
		StatusValuesForFullLeave: []string{"育休"},
	}, &diag)

	if got, want := m.NumConstraints()-before, g.Horizon().Len(); got != want {
		t.Errorf("expected %d constraints (one per day for e2), got %d", want, got)
	}
}

func TestStatusLeave_TargetEmployeesNarrowsButDoesNotOverrideStatus(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	StatusLeave(m, g, rules.StatusLeaveRule{
		StatusValuesForFullLeave: []string{"育休"},
		TargetEmployees:          []string{"e1", "e2"}, // e1 has no leave status
	}, &diag)

	// Only e2 (status 育休) is fixed, not e1, despite both being listed
	// in TargetEmployees: the scope only narrows the status match.
	if got, want := m.NumConstraints()-before, g.Horizon().Len(); got != want {
		t.Errorf("expected %d constraints (one per day for e2 only), got %d", want, got)
	}
}

func TestStatusLeave_NoOpWhenNoMatch(t *testing.T) {
	m, g := testFixture(t)
	before := m.NumConstraints()

	var diag diagnostics.List
	StatusLeave(m, g, rules.StatusLeaveRule{
		StatusValuesForFullLeave: []string{"nonexistent-status"},
	}, &diag)

	if m.NumConstraints() != before {
		t.Errorf("expected no constraints when no employee matches")
	}
	if len(diag) != 1 {
		t.Errorf("expected one info diagnostic, got %+v", diag)
	}
}

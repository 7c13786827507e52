package builder

import (
	"testing"

	"github.com/kaigoshift/kaigoshift/pkg/model"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver/memsolver"
)

func baseInput() Input {
	return Input{
		Shifts:   []model.ShiftCode{model.ShiftOff, model.ShiftDay, model.ShiftNight},
		Dates:    []string{"2026-01-03", "2026-01-04", "2026-01-05"}, // Sat, Sun, Mon
		Holidays: nil,
		Employees: []model.Employee{
			{ID: "A", EmploymentType: "常勤", Floor: "1F"},
			{ID: "B", EmploymentType: "常勤", Floor: "1F"},
		},
	}
}

func TestBuild_RejectsEmptyRoster(t *testing.T) {
	in := baseInput()
	in.Employees = nil
	m := memsolver.New()

	_, _, err := Build(m, in)
	if err == nil {
		t.Fatal("expected a fatal configuration error for an empty roster")
	}
}

func TestBuild_RejectsShiftAlphabetWithoutOff(t *testing.T) {
	in := baseInput()
	in.Shifts = []model.ShiftCode{model.ShiftDay, model.ShiftNight}
	m := memsolver.New()

	_, _, err := Build(m, in)
	if err == nil {
		t.Fatal("expected a fatal configuration error when OFF is missing from the shift alphabet")
	}
}

func TestBuild_EmitsOneHotForEveryCell(t *testing.T) {
	in := baseInput()
	m := memsolver.New()

	report, _, err := Build(m, in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// 2 employees x 3 days = 6 one-hot constraints, plus whatever the
	// (empty) rule set added — here, nothing else.
	if report.ConstraintsCount != 6 {
		t.Errorf("expected 6 one-hot constraints, got %d", report.ConstraintsCount)
	}
	if report.VariablesCount != 2*3*3 {
		t.Errorf("expected 18 assignment variables, got %d", report.VariablesCount)
	}
}

// Scenario 1: exact workdays + min off (§8 scenario 1).
func TestBuild_ExactWorkdaysAndMinOff(t *testing.T) {
	in := baseInput()
	in.Rules = rules.Config{
		TotalWorkdays: []rules.TotalWorkdaysRule{
			{EmployeeID: "A", ConstraintType: model.Exact, Days: 2},
		},
		MinDaysOff: []rules.MinDaysOffRule{
			{MinDays: 1, TargetEmploymentType: "常勤", ConstraintType: model.Hard},
		},
	}
	m := memsolver.New()

	report, _, err := Build(m, in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("expected no warnings, got %+v", report.Warnings)
	}
	// 6 one-hot + 1 exact-workdays + 2 min-off (one per employee).
	if report.ConstraintsCount != 9 {
		t.Errorf("expected 9 constraints, got %d", report.ConstraintsCount)
	}
}

// Scenario 3: staffing soft with under/over penalty weights (§8 scenario 3).
func TestBuild_StaffingSoftAddsPenaltyTerms(t *testing.T) {
	in := baseInput()
	in.Rules = rules.Config{
		Staffing: []rules.StaffingRule{
			{
				Floor: "1F", Shift: model.ShiftDay, Target: 1,
				ConstraintType: model.Soft, UnderPenaltyWeight: 10, OverPenaltyWeight: 1,
			},
		},
	}
	m := memsolver.New()

	report, _, err := Build(m, in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// One under + one over penalty term per day across 3 days.
	if report.PenaltyTermsCount != 6 {
		t.Errorf("expected 6 penalty terms, got %d", report.PenaltyTermsCount)
	}
}

// Scenario 4: balance hard with max_diff_allowed=0 (§8 scenario 4).
func TestBuild_BalanceHardZeroDiff(t *testing.T) {
	in := baseInput()
	zero := int64(0)
	in.Rules = rules.Config{
		Balance: []rules.BalanceRule{
			{
				TargetEmploymentType: "常勤", TargetShiftName: model.ShiftOff,
				ConstraintType: model.Hard, MaxDiffAllowed: &zero,
			},
		},
	}
	m := memsolver.New()

	report, _, err := Build(m, in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("expected no warnings, got %+v", report.Warnings)
	}
}

// Scenario 5: pair avoidance (§8 scenario 5).
func TestBuild_PairAvoidance(t *testing.T) {
	in := baseInput()
	in.Rules = rules.Config{
		PairAvoidance: []rules.PairAvoidanceRule{
			{EmployeePair: [2]string{"A", "B"}, AvoidShifts: []model.ShiftCode{model.ShiftNight}, ConstraintType: model.Hard},
		},
	}
	m := memsolver.New()

	report, _, err := Build(m, in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// 6 one-hot + 3 pair-avoidance (one per day).
	if report.ConstraintsCount != 9 {
		t.Errorf("expected 9 constraints, got %d", report.ConstraintsCount)
	}
}

// Scenario 6: weekend-off soft + hard request on the same cell (§8 scenario 6).
func TestBuild_WeekendSoftAndHardRequestCoexist(t *testing.T) {
	in := baseInput() // 2026-01-03 is a Saturday.
	in.Rules = rules.Config{
		WeekendHoliday: []rules.WeekendHolidayRule{
			{ConstraintType: model.Soft, PenaltyWeight: 5},
		},
		ShiftRequests: []rules.ShiftRequestRule{
			{EmployeeID: "A", DateStr: "2026-01-03", RequestedShift: model.ShiftDay, ConstraintType: model.Hard},
		},
	}
	m := memsolver.New()

	report, _, err := Build(m, in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("expected no warnings, got %+v", report.Warnings)
	}
	if report.PenaltyTermsCount == 0 {
		t.Errorf("expected the soft weekend-off rule to contribute penalty terms")
	}
}

func TestBuild_DeterministicAcrossRuns(t *testing.T) {
	in := baseInput()
	in.Rules = rules.Config{
		Staffing: []rules.StaffingRule{
			{Floor: "1F", Shift: model.ShiftDay, Target: 1, ConstraintType: model.Hard},
		},
	}

	m1 := memsolver.New()
	r1, _, err := Build(m1, in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	m2 := memsolver.New()
	r2, _, err := Build(m2, in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if r1.VariablesCount != r2.VariablesCount || r1.ConstraintsCount != r2.ConstraintsCount {
		t.Errorf("expected identical counts across builds with identical input, got %+v vs %+v", r1, r2)
	}
}

package rules

import (
	"testing"

	"github.com/kaigoshift/kaigoshift/pkg/model"
)

func testDomain(t *testing.T) (*model.ShiftSet, *model.Roster, *model.Horizon) {
	t.Helper()
	shifts, err := model.NewShiftSet([]model.ShiftCode{model.ShiftOff, model.ShiftDay, model.ShiftNight})
	if err != nil {
		t.Fatalf("NewShiftSet: %v", err)
	}
	roster, err := model.NewRoster([]model.Employee{
		{ID: "e1", EmploymentType: "常勤", Floor: "1F"},
		{ID: "e2", EmploymentType: "常勤", Floor: "1F"},
	})
	if err != nil {
		t.Fatalf("NewRoster: %v", err)
	}
	horizon, err := model.NewHorizon([]string{"2026-01-01", "2026-01-02"}, nil)
	if err != nil {
		t.Fatalf("NewHorizon: %v", err)
	}
	return shifts, roster, horizon
}

func TestValidateAll_SkipsUnknownShift(t *testing.T) {
	shifts, roster, horizon := testDomain(t)
	v := NewValidator(shifts, roster, horizon)

	cfg := Config{
		Staffing: []StaffingRule{
			{Floor: "1F", Shift: model.ShiftCode("nonexistent"), Target: 1, ConstraintType: model.Hard},
		},
	}

	out, diag := v.ValidateAll(cfg)
	if len(out.Staffing) != 0 {
		t.Errorf("expected the unknown-shift rule to be dropped, got %d", len(out.Staffing))
	}
	if len(diag) != 1 || diag[0].Family != "staffing" {
		t.Errorf("expected one staffing warning, got %+v", diag)
	}
}

func TestValidateAll_SkipsRequestOutsideHorizon(t *testing.T) {
	shifts, roster, horizon := testDomain(t)
	v := NewValidator(shifts, roster, horizon)

	cfg := Config{
		ShiftRequests: []ShiftRequestRule{
			{EmployeeID: "e1", DateStr: "2099-01-01", RequestedShift: model.ShiftDay, ConstraintType: model.Hard},
		},
	}

	out, diag := v.ValidateAll(cfg)
	if len(out.ShiftRequests) != 0 {
		t.Errorf("expected out-of-horizon request to be dropped, got %d", len(out.ShiftRequests))
	}
	if len(diag) != 1 {
		t.Errorf("expected one warning, got %+v", diag)
	}
}

func TestValidateAll_KeepsValidRules(t *testing.T) {
	shifts, roster, horizon := testDomain(t)
	v := NewValidator(shifts, roster, horizon)

	maxDiff := int64(0)
	cfg := Config{
		Staffing: []StaffingRule{
			{Floor: "1F", Shift: model.ShiftDay, Target: 1, ConstraintType: model.Hard},
		},
		Balance: []BalanceRule{
			{TargetEmploymentType: "常勤", TargetShiftName: model.ShiftOff, ConstraintType: model.Hard, MaxDiffAllowed: &maxDiff},
		},
	}

	out, diag := v.ValidateAll(cfg)
	if len(diag) != 0 {
		t.Errorf("expected no warnings, got %+v", diag)
	}
	if len(out.Staffing) != 1 || len(out.Balance) != 1 {
		t.Errorf("expected both valid rules to survive, got %+v", out)
	}
}

func TestValidateAll_SkipsSmallBalanceGroup(t *testing.T) {
	shifts, _, horizon := testDomain(t)
	roster, err := model.NewRoster([]model.Employee{{ID: "solo", EmploymentType: "常勤"}})
	if err != nil {
		t.Fatalf("NewRoster: %v", err)
	}
	v := NewValidator(shifts, roster, horizon)

	maxDiff := int64(1)
	cfg := Config{
		Balance: []BalanceRule{
			{TargetEmploymentType: "常勤", TargetShiftName: model.ShiftOff, ConstraintType: model.Soft, MaxDiffAllowed: &maxDiff, PenaltyWeight: 5},
		},
	}

	out, diag := v.ValidateAll(cfg)
	if len(out.Balance) != 0 {
		t.Errorf("expected single-member balance group to be dropped, got %d", len(out.Balance))
	}
	if len(diag) != 1 {
		t.Errorf("expected one warning, got %+v", diag)
	}
}

func TestValidateAll_RejectsHardBalanceWithoutMaxDiff(t *testing.T) {
	shifts, roster, horizon := testDomain(t)
	v := NewValidator(shifts, roster, horizon)

	cfg := Config{
		Balance: []BalanceRule{
			{TargetEmploymentType: "常勤", TargetShiftName: model.ShiftOff, ConstraintType: model.Hard},
		},
	}

	out, diag := v.ValidateAll(cfg)
	if len(out.Balance) != 0 {
		t.Errorf("expected hard balance rule without max_diff_allowed to be dropped")
	}
	if len(diag) != 1 {
		t.Errorf("expected one warning, got %+v", diag)
	}
}

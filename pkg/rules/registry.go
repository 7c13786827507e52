package rules

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/kaigoshift/kaigoshift/pkg/diagnostics"
	"github.com/kaigoshift/kaigoshift/pkg/model"
)

// Validator checks rule dicts against the shift alphabet, roster, and
// horizon before a compiler ever sees them (§4.2). Invalid rules are
// skipped with a warning; they never abort the build (§7).
type Validator struct {
	structValidate *validator.Validate
	shifts         *model.ShiftSet
	roster         *model.Roster
	horizon        *model.Horizon
}

// NewValidator builds a Validator bound to one build's domain entities.
func NewValidator(shifts *model.ShiftSet, roster *model.Roster, horizon *model.Horizon) *Validator {
	return &Validator{
		structValidate: validator.New(),
		shifts:         shifts,
		roster:         roster,
		horizon:        horizon,
	}
}

// ValidateAll filters cfg down to the rules that pass validation,
// appending a warning diagnostic for every rule it drops.
func (v *Validator) ValidateAll(cfg Config) (Config, diagnostics.List) {
	var diag diagnostics.List
	out := Config{}

	for _, r := range cfg.Staffing {
		if ok, reason := v.checkStaffing(r); ok {
			out.Staffing = append(out.Staffing, r)
		} else {
			diag.Warn("staffing", reason)
		}
	}
	for _, r := range cfg.MinDaysOff {
		if ok, reason := v.checkMinDaysOff(r); ok {
			out.MinDaysOff = append(out.MinDaysOff, r)
		} else {
			diag.Warn("min_days_off", reason)
		}
	}
	for _, r := range cfg.MaxConsecutiveWorkdays {
		if ok, reason := v.checkMaxConsecutiveWorkdays(r); ok {
			out.MaxConsecutiveWorkdays = append(out.MaxConsecutiveWorkdays, r)
		} else {
			diag.Warn("max_consecutive_workdays", reason)
		}
	}
	for _, r := range cfg.SequentialShift {
		if ok, reason := v.checkSequentialShift(r); ok {
			out.SequentialShift = append(out.SequentialShift, r)
		} else {
			diag.Warn("sequential_shift", reason)
		}
	}
	for _, r := range cfg.Balance {
		if ok, reason := v.checkBalance(r); ok {
			out.Balance = append(out.Balance, r)
		} else {
			diag.Warn("balance", reason)
		}
	}
	for _, r := range cfg.ShiftRequests {
		if ok, reason := v.checkShiftRequest(r); ok {
			out.ShiftRequests = append(out.ShiftRequests, r)
		} else {
			diag.Warn("shift_request", reason)
		}
	}
	for _, r := range cfg.PairAvoidance {
		if ok, reason := v.checkPairAvoidance(r); ok {
			out.PairAvoidance = append(out.PairAvoidance, r)
		} else {
			diag.Warn("pair_avoidance", reason)
		}
	}
	for _, r := range cfg.TotalWorkdays {
		if ok, reason := v.checkTotalWorkdays(r); ok {
			out.TotalWorkdays = append(out.TotalWorkdays, r)
		} else {
			diag.Warn("total_workdays", reason)
		}
	}
	for _, r := range cfg.WeekendHoliday {
		if ok, reason := v.checkWeekendHoliday(r); ok {
			out.WeekendHoliday = append(out.WeekendHoliday, r)
		} else {
			diag.Warn("weekend_holiday", reason)
		}
	}
	for _, r := range cfg.StatusLeave {
		if ok, reason := v.checkStatusLeave(r); ok {
			out.StatusLeave = append(out.StatusLeave, r)
		} else {
			diag.Warn("status_leave", reason)
		}
	}

	return out, diag
}

func (v *Validator) structOK(r interface{}) (bool, string) {
	if err := v.structValidate.Struct(r); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (v *Validator) checkStaffing(r StaffingRule) (bool, string) {
	if ok, reason := v.structOK(r); !ok {
		return false, reason
	}
	if !v.shifts.Contains(r.Shift) {
		return false, fmt.Sprintf("staffing rule references unknown shift %q", r.Shift)
	}
	return true, ""
}

func (v *Validator) checkMinDaysOff(r MinDaysOffRule) (bool, string) {
	if ok, reason := v.structOK(r); !ok {
		return false, reason
	}
	return true, ""
}

func (v *Validator) checkMaxConsecutiveWorkdays(r MaxConsecutiveWorkdaysRule) (bool, string) {
	if ok, reason := v.structOK(r); !ok {
		return false, reason
	}
	for _, s := range r.WorkShifts {
		if !v.shifts.Contains(s) {
			return false, fmt.Sprintf("max_consecutive_workdays rule references unknown shift %q", s)
		}
	}
	return true, ""
}

func (v *Validator) checkSequentialShift(r SequentialShiftRule) (bool, string) {
	if ok, reason := v.structOK(r); !ok {
		return false, reason
	}
	if !v.shifts.Contains(r.PreviousShiftName) {
		return false, fmt.Sprintf("sequential_shift rule references unknown shift %q", r.PreviousShiftName)
	}
	if !v.shifts.Contains(r.NextShiftName) {
		return false, fmt.Sprintf("sequential_shift rule references unknown shift %q", r.NextShiftName)
	}
	return true, ""
}

func (v *Validator) checkBalance(r BalanceRule) (bool, string) {
	if ok, reason := v.structOK(r); !ok {
		return false, reason
	}
	if !v.shifts.Contains(r.TargetShiftName) {
		return false, fmt.Sprintf("balance rule references unknown shift %q", r.TargetShiftName)
	}
	if r.ConstraintType == model.Hard {
		if r.MaxDiffAllowed == nil || *r.MaxDiffAllowed < 0 {
			return false, "hard balance rule requires a non-negative max_diff_allowed"
		}
	}
	group := v.roster.ByEmploymentType(r.TargetEmploymentType)
	if len(group) < 2 {
		return false, fmt.Sprintf("balance rule group for employment type %q has fewer than 2 members", r.TargetEmploymentType)
	}
	return true, ""
}

func (v *Validator) checkShiftRequest(r ShiftRequestRule) (bool, string) {
	if ok, reason := v.structOK(r); !ok {
		return false, reason
	}
	if !v.roster.Contains(r.EmployeeID) {
		return false, fmt.Sprintf("shift request references unknown employee %q", r.EmployeeID)
	}
	if !v.horizon.Contains(r.DateStr) {
		return false, fmt.Sprintf("shift request date %q is outside the horizon", r.DateStr)
	}
	if !v.shifts.Contains(r.RequestedShift) {
		return false, fmt.Sprintf("shift request references unknown shift %q", r.RequestedShift)
	}
	return true, ""
}

func (v *Validator) checkPairAvoidance(r PairAvoidanceRule) (bool, string) {
	if ok, reason := v.structOK(r); !ok {
		return false, reason
	}
	for _, id := range r.EmployeePair {
		if id == "" || !v.roster.Contains(id) {
			return false, fmt.Sprintf("pair avoidance rule references unknown employee %q", id)
		}
	}
	for _, s := range r.AvoidShifts {
		if !v.shifts.Contains(s) {
			return false, fmt.Sprintf("pair avoidance rule references unknown shift %q", s)
		}
	}
	return true, ""
}

func (v *Validator) checkTotalWorkdays(r TotalWorkdaysRule) (bool, string) {
	if ok, reason := v.structOK(r); !ok {
		return false, reason
	}
	if !v.roster.Contains(r.EmployeeID) {
		return false, fmt.Sprintf("total workdays rule references unknown employee %q", r.EmployeeID)
	}
	return true, ""
}

func (v *Validator) checkWeekendHoliday(r WeekendHolidayRule) (bool, string) {
	if ok, reason := v.structOK(r); !ok {
		return false, reason
	}
	for _, id := range r.TargetEmployees {
		if !v.roster.Contains(id) {
			return false, fmt.Sprintf("weekend/holiday rule references unknown employee %q", id)
		}
	}
	return true, ""
}

func (v *Validator) checkStatusLeave(r StatusLeaveRule) (bool, string) {
	if ok, reason := v.structOK(r); !ok {
		return false, reason
	}
	leave := r.LeaveShiftName
	if leave == "" {
		leave = model.ShiftOff
	}
	if !v.shifts.Contains(leave) {
		return false, fmt.Sprintf("status leave rule's leave shift %q is not in the shift alphabet", leave)
	}
	for _, id := range r.TargetEmployees {
		if !v.roster.Contains(id) {
			return false, fmt.Sprintf("status leave rule references unknown employee %q", id)
		}
	}
	return true, ""
}

// Package rules defines the ten rule-family dictionaries (§4.3–§4.12),
// validated with struct tags via go-playground/validator the way the
// pack's medflow backend validates request bodies — replacing runtime
// "does this key exist" checks with declared required fields. Each
// field also carries a yaml tag so a rule-set document can be decoded
// straight off disk with gopkg.in/yaml.v3 at the CLI boundary.
package rules

import "github.com/kaigoshift/kaigoshift/pkg/model"

// StaffingRule is §4.3: facility staffing per floor x shift.
type StaffingRule struct {
	Floor              string               `yaml:"floor" validate:"required"`
	Shift              model.ShiftCode      `yaml:"shift" validate:"required"`
	Target             int64                `yaml:"target" validate:"gte=0"`
	ConstraintType     model.ConstraintType `yaml:"constraint_type" validate:"required,oneof=hard soft"`
	UnderPenaltyWeight model.Weight         `yaml:"under_penalty_weight,omitempty"`
	OverPenaltyWeight  model.Weight         `yaml:"over_penalty_weight,omitempty"`
}

// MinDaysOffRule is §4.4: minimum personal days off.
type MinDaysOffRule struct {
	MinDays              int64                `yaml:"min_days" validate:"gte=0"`
	TargetEmploymentType model.EmploymentType `yaml:"target_employment_type" validate:"required"`
	ConstraintType       model.ConstraintType `yaml:"constraint_type" validate:"required,oneof=hard soft"`
	UnderPenaltyWeight   model.Weight         `yaml:"under_penalty_weight,omitempty"`
}

// MaxConsecutiveWorkdaysRule is §4.5.
type MaxConsecutiveWorkdaysRule struct {
	MaxDays           int64                `yaml:"max_days" validate:"gte=1"`
	WorkShifts        []model.ShiftCode    `yaml:"work_shifts" validate:"required,min=1"`
	ConstraintType    model.ConstraintType `yaml:"constraint_type" validate:"required,oneof=hard soft"`
	OverPenaltyWeight model.Weight         `yaml:"over_penalty_weight,omitempty"`
}

// SequentialShiftRule is §4.6: A -> B on consecutive days.
type SequentialShiftRule struct {
	PreviousShiftName model.ShiftCode      `yaml:"previous_shift_name" validate:"required"`
	NextShiftName     model.ShiftCode      `yaml:"next_shift_name" validate:"required"`
	ConstraintType    model.ConstraintType `yaml:"constraint_type" validate:"required,oneof=hard soft"`
	PenaltyWeight     model.Weight         `yaml:"penalty_weight,omitempty"`
}

// BalanceRule is §4.7: assignment-count balancing.
type BalanceRule struct {
	TargetEmploymentType model.EmploymentType `yaml:"target_employment_type" validate:"required"`
	TargetShiftName      model.ShiftCode      `yaml:"target_shift_name" validate:"required"`
	ConstraintType       model.ConstraintType `yaml:"constraint_type" validate:"required,oneof=hard soft"`
	MaxDiffAllowed       *int64               `yaml:"max_diff_allowed,omitempty"`
	PenaltyWeight        model.Weight         `yaml:"penalty_weight,omitempty"`
}

// ShiftRequestRule is one entry of §4.8's request list.
type ShiftRequestRule struct {
	EmployeeID     string               `yaml:"employee_id" validate:"required"`
	DateStr        string               `yaml:"date" validate:"required"`
	RequestedShift model.ShiftCode      `yaml:"requested_shift" validate:"required"`
	ConstraintType model.ConstraintType `yaml:"constraint_type" validate:"required,oneof=hard soft"`
	PenaltyWeight  model.Weight         `yaml:"penalty_weight,omitempty"`
}

// PairAvoidanceRule is one entry of §4.9's list (hard-only).
type PairAvoidanceRule struct {
	EmployeePair   [2]string            `yaml:"employee_pair"`
	AvoidShifts    []model.ShiftCode    `yaml:"avoid_shifts" validate:"required,min=1"`
	ConstraintType model.ConstraintType `yaml:"constraint_type" validate:"required,oneof=hard"`
}

// TotalWorkdaysRule is one entry of §4.10's per-employee list.
type TotalWorkdaysRule struct {
	EmployeeID     string               `yaml:"employee_id" validate:"required"`
	ConstraintType model.ConstraintType `yaml:"constraint_type" validate:"required,oneof=exact max min soft_exact soft_max soft_min"`
	Days           int64                `yaml:"days" validate:"gte=0"`
	PenaltyWeight  model.Weight         `yaml:"penalty_weight,omitempty"`
}

// WeekendHolidayRule is §4.11.
type WeekendHolidayRule struct {
	TargetEmployees []string             `yaml:"target_employees,omitempty"` // empty means every employee
	ConstraintType  model.ConstraintType `yaml:"constraint_type" validate:"required,oneof=hard soft"`
	PenaltyWeight   model.Weight         `yaml:"penalty_weight,omitempty"`
}

// StatusLeaveRule is §4.12 (hard-only).
type StatusLeaveRule struct {
	StatusValuesForFullLeave []string        `yaml:"status_values_for_full_leave" validate:"required,min=1"`
	LeaveShiftName           model.ShiftCode `yaml:"leave_shift_name,omitempty"` // defaults to OFF when empty
	TargetEmployees          []string        `yaml:"target_employees,omitempty"` // empty means every matching employee
}

// Config bundles the ten rule collections by family (§6 Inputs).
type Config struct {
	Staffing               []StaffingRule               `yaml:"staffing,omitempty"`
	MinDaysOff             []MinDaysOffRule             `yaml:"min_days_off,omitempty"`
	MaxConsecutiveWorkdays []MaxConsecutiveWorkdaysRule `yaml:"max_consecutive_workdays,omitempty"`
	SequentialShift        []SequentialShiftRule        `yaml:"sequential_shift,omitempty"`
	Balance                []BalanceRule                `yaml:"balance,omitempty"`
	ShiftRequests          []ShiftRequestRule           `yaml:"shift_requests,omitempty"`
	PairAvoidance          []PairAvoidanceRule          `yaml:"pair_avoidance,omitempty"`
	TotalWorkdays          []TotalWorkdaysRule          `yaml:"total_workdays,omitempty"`
	WeekendHoliday         []WeekendHolidayRule         `yaml:"weekend_holiday,omitempty"`
	StatusLeave            []StatusLeaveRule            `yaml:"status_leave,omitempty"`
}

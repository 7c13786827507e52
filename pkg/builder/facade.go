// Package builder is the top-level façade (§4.14): it wires the
// variable factory, the rule validator, the ten compilers, and the
// objective assembler into one fixed-order construction pass and
// returns a structured report (§6 Output).
package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"

	apperrors "github.com/kaigoshift/kaigoshift/pkg/errors"
	"github.com/kaigoshift/kaigoshift/pkg/logger"
	"github.com/kaigoshift/kaigoshift/pkg/model"
	"github.com/kaigoshift/kaigoshift/pkg/objective"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/rules/compile"
	"github.com/kaigoshift/kaigoshift/pkg/solver"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

// Input bundles everything the façade consumes in one call (§6 Inputs).
type Input struct {
	Shifts        []model.ShiftCode
	Dates         []string
	Holidays      map[string]bool
	Employees     []model.Employee
	Rules         rules.Config
	WorkingShifts map[model.ShiftCode]bool // defaults to model.DefaultWorkingShifts() when nil
}

// Report is the structured build report (§6 Output, §4.15).
type Report struct {
	BuildID           string
	Warnings          []ReportEntry
	PenaltyTermsCount int
	VariablesCount    int
	ConstraintsCount  int
}

// ReportEntry mirrors diagnostics.Diagnostic for external consumption.
type ReportEntry struct {
	Severity string
	Family   string
	Message  string
}

// Build runs the fixed-order façade and returns the populated solver
// model's variable grid plus its report, or a fatal *errors.AppError
// (§4.15). The grid is returned so a caller can decode a solved
// model's assignment without the core needing to know about solving.
func Build(b solver.Builder, in Input) (*Report, *variables.Grid, error) {
	log := logger.NewBuildLogger()
	start := time.Now()

	shifts, err := model.NewShiftSet(in.Shifts)
	if err != nil {
		return nil, nil, apperrors.FatalConfig("invalid shift alphabet").WithCause(err)
	}
	if !shifts.Contains(model.ShiftOff) {
		return nil, nil, apperrors.FatalConfig("shift alphabet must include OFF")
	}

	roster, err := model.NewRoster(in.Employees)
	if err != nil {
		return nil, nil, apperrors.FatalConfig("invalid employee roster").WithCause(err)
	}

	horizon, err := model.NewHorizon(in.Dates, in.Holidays)
	if err != nil {
		return nil, nil, apperrors.FatalConfig("invalid date horizon").WithCause(err)
	}

	workingShifts := in.WorkingShifts
	if workingShifts == nil {
		workingShifts = model.DefaultWorkingShifts()
	}

	log.StartBuild(roster.Len(), horizon.Len(), shifts.Len())

	// Rule collections are validated into an immutable snapshot before
	// any compiler sees them, so a caller mutating its own slices after
	// Build returns can never retroactively change what was compiled.
	var cfgSnapshot rules.Config
	if err := deepcopy.Copy(&cfgSnapshot, &in.Rules); err != nil {
		return nil, nil, apperrors.FatalConfig("failed to snapshot rule configuration").WithCause(err)
	}

	validator := rules.NewValidator(shifts, roster, horizon)
	cfg, diag := validator.ValidateAll(cfgSnapshot)
	for _, d := range diag {
		log.RuleSkipped(d.Family, d.Message)
	}

	grid, err := variables.New(b, roster, horizon, shifts)
	if err != nil {
		return nil, nil, apperrors.FatalConfig("failed to construct variable grid").WithCause(err)
	}

	for _, r := range cfg.StatusLeave {
		compile.StatusLeave(b, grid, r, &diag)
	}
	for _, r := range cfg.ShiftRequests {
		compile.ShiftRequest(b, grid, r, &diag)
	}
	for _, r := range cfg.WeekendHoliday {
		compile.WeekendHoliday(b, grid, r, &diag)
	}
	for _, r := range cfg.Staffing {
		compile.Staffing(b, grid, r, &diag)
	}
	for _, r := range cfg.MinDaysOff {
		compile.MinDaysOff(b, grid, r, &diag)
	}
	for _, r := range cfg.MaxConsecutiveWorkdays {
		compile.MaxConsecutiveWorkdays(b, grid, r, &diag)
	}
	for _, r := range cfg.SequentialShift {
		compile.SequentialShift(b, grid, r, &diag)
	}
	for _, r := range cfg.Balance {
		compile.Balance(b, grid, r, &diag)
	}
	for _, r := range cfg.PairAvoidance {
		compile.PairAvoidance(b, grid, r, &diag)
	}
	for _, r := range cfg.TotalWorkdays {
		compile.TotalWorkdays(b, grid, r, workingShifts, &diag)
	}

	objective.Assemble(b)

	report := &Report{
		BuildID:           uuid.NewString(),
		VariablesCount:    b.NumVariables(),
		ConstraintsCount:  b.NumConstraints(),
		PenaltyTermsCount: b.NumObjectiveTerms(),
	}
	for _, d := range diag {
		report.Warnings = append(report.Warnings, ReportEntry{
			Severity: string(d.Severity),
			Family:   d.Family,
			Message:  d.Message,
		})
	}

	log.BuildComplete(time.Since(start), report.VariablesCount, report.ConstraintsCount)
	return report, grid, nil
}

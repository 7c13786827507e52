// Command kaigoshift is the CLI orchestration layer named out of scope
// for the core builder (§1 "CSV ingestion ... and the main orchestration
// script"): it reads a CSV roster and a YAML rule-set, invokes the
// builder façade, solves the resulting model, and writes an xlsx
// report. None of this is imported by pkg/builder or pkg/rules/compile.
package main

import (
	"encoding/csv"
	"fmt"
	"os"

	cmpb "github.com/google/or-tools/ortools/sat/go/cpmodelproto"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kaigoshift/kaigoshift/internal/config"
	"github.com/kaigoshift/kaigoshift/pkg/builder"
	apperrors "github.com/kaigoshift/kaigoshift/pkg/errors"
	"github.com/kaigoshift/kaigoshift/pkg/model"
	"github.com/kaigoshift/kaigoshift/pkg/report"
	"github.com/kaigoshift/kaigoshift/pkg/rules"
	"github.com/kaigoshift/kaigoshift/pkg/solver/cpsat"
	"github.com/kaigoshift/kaigoshift/pkg/variables"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "kaigoshift",
		Short: "Care-facility shift scheduling model builder and solver",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a kaigoshift config file (optional)")

	var rosterCSVPath, ruleSetPath, holidaysCSVPath, outputXLSXPath string
	buildCmd := &cobra.Command{
		Use:          "build",
		Short:        "Build and solve a schedule from a roster CSV and a rule-set YAML file",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(configPath, rosterCSVPath, ruleSetPath, holidaysCSVPath, outputXLSXPath)
		},
	}
	buildCmd.Flags().StringVar(&rosterCSVPath, "roster", "roster.csv", "path to the employee roster CSV")
	buildCmd.Flags().StringVar(&ruleSetPath, "rules", "rules.yaml", "path to the rule-set YAML document")
	buildCmd.Flags().StringVar(&holidaysCSVPath, "holidays", "", "optional path to a newline-delimited public holiday list")
	buildCmd.Flags().StringVar(&outputXLSXPath, "output", "schedule.xlsx", "path to write the solved roster")

	rootCmd.AddCommand(buildCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBuild(configPath, rosterCSVPath, ruleSetPath, holidaysCSVPath, outputXLSXPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	employees, err := readRosterCSV(rosterCSVPath)
	if err != nil {
		return fmt.Errorf("reading roster: %w", err)
	}

	ruleSet, dates, err := readRuleSetYAML(ruleSetPath)
	if err != nil {
		return fmt.Errorf("reading rule set: %w", err)
	}

	holidays, err := readHolidays(holidaysCSVPath)
	if err != nil {
		return fmt.Errorf("reading holidays: %w", err)
	}

	m := cpsat.New()
	in := builder.Input{
		Shifts:    []model.ShiftCode{model.ShiftOff, model.ShiftDay, model.ShiftEarly, model.ShiftNight, model.ShiftPostNight},
		Dates:     dates,
		Holidays:  holidays,
		Employees: employees,
		Rules:     ruleSet,
	}

	report_, grid, err := builder.Build(m, in)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			return fmt.Errorf("fatal configuration error [%s]: %s", appErr.Code, appErr.Message)
		}
		return err
	}

	for _, w := range report_.Warnings {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", w.Severity, w.Family, w.Message)
	}
	fmt.Printf("build %s: %d variables, %d constraints, %d penalty terms\n",
		report_.BuildID, report_.VariablesCount, report_.ConstraintsCount, report_.PenaltyTermsCount)

	if cfg.Solver.LogProgress {
		fmt.Println("solving...")
	}
	resp, err := m.Solve()
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}

	roster, err := model.NewRoster(employees)
	if err != nil {
		return err
	}
	horizon, err := model.NewHorizon(dates, holidays)
	if err != nil {
		return err
	}
	shifts, err := model.NewShiftSet(in.Shifts)
	if err != nil {
		return err
	}

	f, err := report.WriteRoster(roster, horizon, decodeAssignment(m, resp, grid, shifts))
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	if err := f.SaveAs(outputXLSXPath); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}

	fmt.Printf("wrote %s\n", outputXLSXPath)
	return nil
}

func readRosterCSV(path string) ([]model.Employee, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("roster CSV must have a header row plus at least one employee")
	}

	var employees []model.Employee
	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		e := model.Employee{ID: row[0], EmploymentType: model.EmploymentType(row[1]), Floor: row[2]}
		if len(row) > 3 {
			e.Status = row[3]
		}
		employees = append(employees, e)
	}
	return employees, nil
}

type ruleSetDocument struct {
	Dates []string     `yaml:"dates"`
	Rules rules.Config `yaml:"rules"`
}

func readRuleSetYAML(path string) (rules.Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rules.Config{}, nil, err
	}
	var doc ruleSetDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return rules.Config{}, nil, err
	}
	return doc.Rules, doc.Dates, nil
}

func readHolidays(path string) (map[string]bool, error) {
	holidays := make(map[string]bool)
	if path == "" {
		return holidays, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := splitLines(string(data))
	for _, l := range lines {
		if l != "" {
			holidays[l] = true
		}
	}
	return holidays, nil
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			out = append(out, trimCR(s[start:i]))
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, trimCR(s[start:]))
	}
	return out
}

func trimCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}

// decodeAssignment reads the one true shift variable per (employee, day)
// cell out of a solved response via the grid Build used to construct it.
func decodeAssignment(m *cpsat.Model, resp *cmpb.CpSolverResponse, grid *variables.Grid, shifts *model.ShiftSet) report.AssignmentLookup {
	return func(empID string, dateIdx int) model.ShiftCode {
		for _, code := range shifts.Codes() {
			v, ok := grid.Var(empID, dateIdx, code)
			if ok && m.BooleanValue(resp, v) {
				return code
			}
		}
		return model.ShiftOff
	}
}

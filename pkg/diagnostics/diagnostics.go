// Package diagnostics defines the structured build-report vocabulary
// shared by rule validation and the builder façade (§7 Error handling
// design), replacing the teacher's warning-via-print pattern
// (pkg/scheduler/constraint's ViolationDetail is the direct model) with
// an explicit, collectible diagnostics list.
package diagnostics

// Severity classifies a diagnostic for the build report.
type Severity string

const (
	// Warning: a rule-level validation failure (§7) — the rule is
	// skipped, the build proceeds.
	Warning Severity = "warning"
	// Info: a no-op rule (§7) — logged, not a failure.
	Info Severity = "info"
)

// Diagnostic is one entry of the build report's Warnings list (§6
// Output). The name Warnings is kept from the spec's output schema even
// though entries may carry Info severity.
type Diagnostic struct {
	Severity Severity
	Family   string
	Message  string
}

// List accumulates diagnostics in emission order.
type List []Diagnostic

// Warn appends a warning-level diagnostic.
func (l *List) Warn(family, message string) {
	*l = append(*l, Diagnostic{Severity: Warning, Family: family, Message: message})
}

// Info appends an info-level diagnostic.
func (l *List) Info(family, message string) {
	*l = append(*l, Diagnostic{Severity: Info, Family: family, Message: message})
}

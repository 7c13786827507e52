// Package objective assembles the build's objective (§4.13). Every
// compiler in pkg/rules/compile appends its own penalty terms to the
// builder as it runs; Assemble is the single place that seals the
// objective once the façade has run every family, so no compiler has
// to know whether it ran first or last.
package objective

import "github.com/kaigoshift/kaigoshift/pkg/solver"

// Assemble finalises the accumulated objective as the minimisation
// target (§3: "minimize Σ (weight * value)"). It is idempotent at the
// Builder level — calling Finalize twice is harmless — but the façade
// calls it exactly once, after the last compiler.
func Assemble(b solver.Builder) {
	b.Finalize()
}

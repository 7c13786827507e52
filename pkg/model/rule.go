package model

// ConstraintType is the constraint_type discriminator every rule dict
// carries (§3 Rule objects). Families extend this set with their own
// soft_* variants (§4.10).
type ConstraintType string

const (
	Hard ConstraintType = "hard"
	Soft ConstraintType = "soft"

	// Total-workdays family (§4.10) extends the base vocabulary.
	Exact     ConstraintType = "exact"
	Max       ConstraintType = "max"
	Min       ConstraintType = "min"
	SoftExact ConstraintType = "soft_exact"
	SoftMax   ConstraintType = "soft_max"
	SoftMin   ConstraintType = "soft_min"
)

// IsHard reports whether t selects inviolable-constraint semantics.
func (t ConstraintType) IsHard() bool {
	return t == Hard || t == Exact || t == Max || t == Min
}

// IsSoft reports whether t selects penalised semantics.
func (t ConstraintType) IsSoft() bool {
	return t == Soft || t == SoftExact || t == SoftMax || t == SoftMin
}

// Weight is a non-negative penalty weight. A weight of 0 (or an absent
// weight, represented the same way by callers) means the soft term is
// dropped entirely (§3 Penalty term).
type Weight int64

// Effective reports whether the weight actually contributes a penalty
// term to the objective.
func (w Weight) Effective() bool { return w > 0 }

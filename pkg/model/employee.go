package model

import "fmt"

// EmploymentType distinguishes full-time (常勤) from part-time (パート)
// staff; rule families that scope by employment type compare against
// this field verbatim, so the caller's own vocabulary flows through.
type EmploymentType string

// Employee is one roster record (§3 Employee record e).
type Employee struct {
	ID             string
	EmploymentType EmploymentType
	Floor          string
	Status         string // e.g. 育休/病休, empty when none applies
}

// Roster is the fixed employee set E, indexed for O(1) lookup and
// grouping by floor or employment type.
type Roster struct {
	employees []Employee
	byID      map[string]int
	byFloor   map[string][]string
}

// NewRoster builds a roster from employee records, rejecting duplicate
// IDs and empty rosters (§4.15 fatal: empty E).
func NewRoster(employees []Employee) (*Roster, error) {
	if len(employees) == 0 {
		return nil, fmt.Errorf("roster must be non-empty")
	}
	r := &Roster{
		employees: make([]Employee, len(employees)),
		byID:      make(map[string]int, len(employees)),
		byFloor:   make(map[string][]string),
	}
	copy(r.employees, employees)
	for i, e := range r.employees {
		if _, dup := r.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate employee id %q", e.ID)
		}
		r.byID[e.ID] = i
		r.byFloor[e.Floor] = append(r.byFloor[e.Floor], e.ID)
	}
	return r, nil
}

// Employees returns the roster in build order.
func (r *Roster) Employees() []Employee { return r.employees }

// Len returns |E|.
func (r *Roster) Len() int { return len(r.employees) }

// Contains reports id ∈ E.
func (r *Roster) Contains(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Get returns the employee record for id, or false if unknown.
func (r *Roster) Get(id string) (Employee, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Employee{}, false
	}
	return r.employees[i], true
}

// Floor returns F(floor): the employee ids assigned to that floor, in
// roster order.
func (r *Roster) Floor(floor string) []string {
	return r.byFloor[floor]
}

// ByEmploymentType returns every employee id whose EmploymentType equals t.
func (r *Roster) ByEmploymentType(t EmploymentType) []string {
	var out []string
	for _, e := range r.employees {
		if e.EmploymentType == t {
			out = append(out, e.ID)
		}
	}
	return out
}

// ByStatus returns every employee id whose Status is one of values.
func (r *Roster) ByStatus(values []string) []string {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	var out []string
	for _, e := range r.employees {
		if set[e.Status] {
			out = append(out, e.ID)
		}
	}
	return out
}

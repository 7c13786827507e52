package model

import (
	"fmt"
	"time"
)

// Date is a single calendar day of the horizon, YYYY-MM-DD, with its
// weekday and public-holiday flag derived at construction time.
type Date struct {
	value           time.Time
	IsPublicHoliday bool
}

// NewDate parses "2006-01-02" and tags the weekday.
func NewDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{value: t}, nil
}

// String renders the canonical YYYY-MM-DD form.
func (d Date) String() string { return d.value.Format("2006-01-02") }

// Weekday returns the day of week.
func (d Date) Weekday() time.Weekday { return d.value.Weekday() }

// IsWeekend reports Saturday/Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Before reports strict ordering, used to keep horizons sorted.
func (d Date) Before(other Date) bool { return d.value.Before(other.value) }

// Equal reports calendar-day equality.
func (d Date) Equal(other Date) bool { return d.value.Equal(other.value) }

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return Date{value: d.value.AddDate(0, 0, n)}
}

// Horizon is the ordered, contiguous sequence D = d0 < d1 < ... < d_{T-1}.
type Horizon struct {
	dates []Date
	index map[string]int
}

// NewHorizon builds a horizon from an ordered, contiguous, duplicate-free
// date list and a holiday set. Holidays outside the list are ignored
// (§4.11) and a holiday that also falls on a weekend is not double
// counted (§9 Open Question, resolved: IsPublicHoliday is a flag, WEH
// membership is a set union, so dedup is automatic).
func NewHorizon(dateStrs []string, holidays map[string]bool) (*Horizon, error) {
	if len(dateStrs) == 0 {
		return nil, fmt.Errorf("horizon must be non-empty")
	}
	h := &Horizon{
		dates: make([]Date, 0, len(dateStrs)),
		index: make(map[string]int, len(dateStrs)),
	}
	var prev Date
	for i, s := range dateStrs {
		d, err := NewDate(s)
		if err != nil {
			return nil, err
		}
		if i > 0 && !prev.Before(d) {
			return nil, fmt.Errorf("horizon dates must be strictly increasing at %q", s)
		}
		if i > 0 && !prev.AddDays(1).Equal(d) {
			return nil, fmt.Errorf("horizon dates must be contiguous at %q", s)
		}
		d.IsPublicHoliday = holidays[s]
		if _, dup := h.index[s]; dup {
			return nil, fmt.Errorf("duplicate horizon date %q", s)
		}
		h.index[s] = len(h.dates)
		h.dates = append(h.dates, d)
		prev = d
	}
	return h, nil
}

// Dates returns the horizon in build order.
func (h *Horizon) Dates() []Date { return h.dates }

// Len returns T = |D|.
func (h *Horizon) Len() int { return len(h.dates) }

// Index returns the position of date s in the horizon, or -1 if absent.
func (h *Horizon) Index(s string) int {
	if i, ok := h.index[s]; ok {
		return i
	}
	return -1
}

// Contains reports whether s ∈ D.
func (h *Horizon) Contains(s string) bool {
	_, ok := h.index[s]
	return ok
}

// Last returns d_{T-1}.
func (h *Horizon) Last() Date { return h.dates[len(h.dates)-1] }

// WeekendOrHolidayDates returns WEH = {d ∈ D | weekend or public holiday},
// in horizon order, each date appearing at most once (§9 dedup).
func (h *Horizon) WeekendOrHolidayDates() []Date {
	var out []Date
	for _, d := range h.dates {
		if d.IsWeekend() || d.IsPublicHoliday {
			out = append(out, d)
		}
	}
	return out
}

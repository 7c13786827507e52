// Package model defines the domain types shared by every rule compiler:
// the shift alphabet, the planning horizon, the employee roster, and the
// common rule vocabulary (constraint type, penalty weight).
package model

import "fmt"

// ShiftCode identifies one entry of the shift alphabet S.
type ShiftCode string

// The five named shift codes (§3 Shift alphabet). Of these, only
// ShiftOff must be part of a build's alphabet; the others are optional.
const (
	ShiftOff       ShiftCode = "公休" // day off
	ShiftDay       ShiftCode = "日勤" // day
	ShiftEarly     ShiftCode = "早出" // early
	ShiftNight     ShiftCode = "夜勤" // night
	ShiftPostNight ShiftCode = "明勤" // post-night recovery shift
)

// ShiftSet is the ordered shift alphabet S known at build time.
type ShiftSet struct {
	codes []ShiftCode
	index map[ShiftCode]int
}

// NewShiftSet builds an ordered alphabet from codes, rejecting duplicates.
func NewShiftSet(codes []ShiftCode) (*ShiftSet, error) {
	s := &ShiftSet{
		codes: make([]ShiftCode, 0, len(codes)),
		index: make(map[ShiftCode]int, len(codes)),
	}
	for _, c := range codes {
		if _, dup := s.index[c]; dup {
			return nil, fmt.Errorf("duplicate shift code %q", c)
		}
		s.index[c] = len(s.codes)
		s.codes = append(s.codes, c)
	}
	return s, nil
}

// Codes returns the alphabet in build order.
func (s *ShiftSet) Codes() []ShiftCode { return s.codes }

// Contains reports whether c is part of the alphabet.
func (s *ShiftSet) Contains(c ShiftCode) bool {
	_, ok := s.index[c]
	return ok
}

// Index returns the position of c in build order, or -1 if absent.
func (s *ShiftSet) Index(c ShiftCode) int {
	if i, ok := s.index[c]; ok {
		return i
	}
	return -1
}

// Len returns |S|.
func (s *ShiftSet) Len() int { return len(s.codes) }

// DefaultWorkingShifts is W ⊂ S, the default set of shifts counted
// toward workday totals.
func DefaultWorkingShifts() map[ShiftCode]bool {
	return map[ShiftCode]bool{
		ShiftDay:       true,
		ShiftEarly:     true,
		ShiftNight:     true,
		ShiftPostNight: true,
	}
}

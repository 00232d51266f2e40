// Package ledger records every character substituted while cleaning a
// document, grouped by unit and subunit.
package ledger

import (
	"slices"

	"github.com/jamesainslie/go-lessonclean/enforce"
)

// Ledger holds replacements by unit index, then by subunit name in the
// order subunits were first visited. The zero value is not usable; call
// New. A Ledger is not safe for concurrent use.
type Ledger struct {
	units map[int]*unitLog
	count int
}

type unitLog struct {
	order []string
	reps  map[string][]enforce.Replacement
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{units: make(map[int]*unitLog)}
}

// Record appends reps to the log of (unit, subunit). Calls without
// replacements leave no trace.
func (l *Ledger) Record(unit int, subunit string, reps ...enforce.Replacement) {
	if len(reps) == 0 {
		return
	}

	u, ok := l.units[unit]
	if !ok {
		u = &unitLog{reps: make(map[string][]enforce.Replacement)}
		l.units[unit] = u
	}
	if _, ok := u.reps[subunit]; !ok {
		u.order = append(u.order, subunit)
	}
	u.reps[subunit] = append(u.reps[subunit], reps...)
	l.count += len(reps)
}

// Units returns the indexes of units with replacements, ascending.
func (l *Ledger) Units() []int {
	units := make([]int, 0, len(l.units))
	for u := range l.units {
		units = append(units, u)
	}
	slices.Sort(units)
	return units
}

// Subunits returns the subunits of unit with replacements, in visit order.
func (l *Ledger) Subunits(unit int) []string {
	u, ok := l.units[unit]
	if !ok {
		return nil
	}
	return slices.Clone(u.order)
}

// Replacements returns the replacements made in (unit, subunit), in the
// order they were made.
func (l *Ledger) Replacements(unit int, subunit string) []enforce.Replacement {
	u, ok := l.units[unit]
	if !ok {
		return nil
	}
	return slices.Clone(u.reps[subunit])
}

// UnitCount returns the number of replacements made in unit.
func (l *Ledger) UnitCount(unit int) int {
	u, ok := l.units[unit]
	if !ok {
		return 0
	}
	n := 0
	for _, reps := range u.reps {
		n += len(reps)
	}
	return n
}

// Count returns the total number of replacements.
func (l *Ledger) Count() int { return l.count }

// Empty reports whether nothing was replaced.
func (l *Ledger) Empty() bool { return l.count == 0 }

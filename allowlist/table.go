package allowlist

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Sentinel errors for rule tables that cannot drive enforcement.
var (
	// ErrEmptyTable indicates a table with no units.
	ErrEmptyTable = errors.New("allowlist: table has no units")

	// ErrInvalidUnit indicates a unit index below 1.
	ErrInvalidUnit = errors.New("allowlist: unit index must be at least 1")

	// ErrEmptySet indicates a unit with no allowed characters, which would
	// leave nothing to substitute disallowed characters with.
	ErrEmptySet = errors.New("allowlist: unit allows no characters")

	// ErrWhitespace indicates a whitespace rune listed as an allowed
	// character. Whitespace is always preserved and never drawn.
	ErrWhitespace = errors.New("allowlist: whitespace in allowed characters")
)

// Table maps 1-based unit indexes to their allowed characters.
// Units without an entry use the set of the highest defined unit.
// A Table is immutable and safe for concurrent use.
type Table struct {
	sets  map[int]Set
	units []int
	max   int
}

// NewTable validates sets and builds a Table. All problems are reported
// together.
func NewTable(sets map[int]Set) (*Table, error) {
	if len(sets) == 0 {
		return nil, ErrEmptyTable
	}

	units := lo.Keys(sets)
	slices.Sort(units)

	var errs []error
	for _, u := range units {
		s := sets[u]
		switch {
		case u < 1:
			errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidUnit, u))
		case s.Empty():
			errs = append(errs, fmt.Errorf("%w: unit %d", ErrEmptySet, u))
		case s.hasWhitespace():
			errs = append(errs, fmt.Errorf("%w: unit %d", ErrWhitespace, u))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Table{
		sets:  lo.Assign(sets),
		units: units,
		max:   units[len(units)-1],
	}, nil
}

// For returns the allowed characters of unit. Units with no entry of
// their own, including every unit past the highest defined one, fall
// back to the highest defined unit's set.
func (t *Table) For(unit int) Set {
	if s, ok := t.sets[unit]; ok {
		return s
	}
	return t.sets[t.max]
}

// Max returns the highest defined unit index.
func (t *Table) Max() int { return t.max }

// Units returns the defined unit indexes in ascending order.
func (t *Table) Units() []int { return slices.Clone(t.units) }

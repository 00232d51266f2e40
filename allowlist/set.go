// Package allowlist resolves the keyboard characters each lesson unit may
// contain. Whitespace is always permitted and never part of a Set.
package allowlist

import (
	"slices"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Set is an immutable collection of non-whitespace runes.
// The zero value is an empty set.
type Set struct {
	members map[rune]struct{}
	runes   []rune // sorted, for stable uniform draws
}

// NewSet builds a set from every rune in chars. Duplicates collapse.
// Whitespace runes are kept so that NewTable can reject them; use
// Clean to drop them instead.
func NewSet(chars string) Set {
	runes := lo.Uniq([]rune(chars))
	slices.Sort(runes)

	members := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		members[r] = struct{}{}
	}
	return Set{members: members, runes: runes}
}

// Clean returns chars without any whitespace runes.
func Clean(chars string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, chars)
}

// Contains reports whether r is a member.
func (s Set) Contains(r rune) bool {
	_, ok := s.members[r]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s.runes) }

// Empty reports whether the set has no members.
func (s Set) Empty() bool { return len(s.runes) == 0 }

// Runes returns the members in ascending order. The slice is shared and
// must not be modified.
func (s Set) Runes() []rune { return s.runes }

// String returns the members in ascending order.
func (s Set) String() string { return string(s.runes) }

// Intersect returns the members present in both sets.
func (s Set) Intersect(other Set) Set {
	return NewSet(string(lo.Intersect(s.runes, other.runes)))
}

// Equal reports whether both sets hold the same members.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.runes, other.runes)
}

func (s Set) hasWhitespace() bool {
	return slices.ContainsFunc(s.runes, unicode.IsSpace)
}

package batch

import (
	"unicode"

	"github.com/jamesainslie/go-lessonclean/document"
	"github.com/jamesainslie/go-lessonclean/ledger"
)

// UnitStats describes one unit of a cleaned document.
type UnitStats struct {
	Unit     int
	Strings  int     // string leaves under subunits
	Chars    int     // non-whitespace characters after cleaning
	Replaced int     // characters substituted
	Ratio    float64 // Replaced / Chars
}

// Stats aggregates UnitStats over a document.
type Stats struct {
	Units    []UnitStats
	Strings  int
	Chars    int
	Replaced int
	Ratio    float64
}

// Measure counts the strings and characters of each unit of cleaned and
// pairs them with the replacements recorded in led.
func Measure(cleaned document.Node, led *ledger.Ledger, containerKey, subunitsKey string) (Stats, error) {
	root, err := document.ResolveUnits(cleaned, containerKey, subunitsKey)
	if err != nil {
		return Stats{}, err
	}

	var s Stats
	for i, u := range root.Units {
		us := UnitStats{Unit: i + 1, Replaced: led.UnitCount(i + 1)}

		if obj, ok := u.(document.Object); ok {
			if subs, ok := obj.Get(subunitsKey); ok && isObject(subs) {
				c := &counter{}
				if _, err := subs.Accept(c); err != nil {
					return Stats{}, err
				}
				us.Strings, us.Chars = c.strings, c.chars
			}
		}
		us.Ratio = ratio(us.Replaced, us.Chars)

		s.Units = append(s.Units, us)
		s.Strings += us.Strings
		s.Chars += us.Chars
		s.Replaced += us.Replaced
	}
	s.Ratio = ratio(s.Replaced, s.Chars)

	return s, nil
}

func isObject(n document.Node) bool {
	_, ok := n.(document.Object)
	return ok
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// counter tallies string leaves and their non-whitespace runes.
type counter struct {
	strings int
	chars   int
}

func (c *counter) VisitString(s document.String) (document.Node, error) {
	c.strings++
	for _, r := range s {
		if !unicode.IsSpace(r) {
			c.chars++
		}
	}
	return s, nil
}

func (c *counter) VisitArray(a document.Array) (document.Node, error) {
	for _, v := range a {
		if _, err := v.Accept(c); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (c *counter) VisitObject(o document.Object) (document.Node, error) {
	for _, m := range o {
		if _, err := m.Value.Accept(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (c *counter) VisitLiteral(l document.Literal) (document.Node, error) {
	return l, nil
}

package allowlist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRules indicates a rule file that could not be decoded.
var ErrInvalidRules = errors.New("allowlist: invalid rule file")

// Rules is the on-disk form of a Table. JSON rule files decode too,
// since YAML is a superset of JSON.
//
//	global: "abc...xyz;,."
//	units:
//	  1: "adfjkls;"
//	  2: "adfjklrsu;"
type Rules struct {
	// Global caps every unit. Empty means the built-in Global.
	Global string            `yaml:"global,omitempty"`
	Units  map[string]string `yaml:"units"`
}

// Table intersects each unit's characters with Global and validates the
// result. Whitespace in rule strings is ignored.
func (r Rules) Table() (*Table, error) {
	global := r.Global
	if global == "" {
		global = Global
	}
	superset := NewSet(Clean(global))

	sets := make(map[int]Set, len(r.Units))
	for key, chars := range r.Units {
		u, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: unit key %q is not a number", ErrInvalidRules, key)
		}
		sets[u] = NewSet(Clean(chars)).Intersect(superset)
	}
	return NewTable(sets)
}

// Parse decodes a rule description and builds its Table.
func Parse(rd io.Reader) (*Table, error) {
	var r Rules
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}
	return r.Table()
}

// Load reads a rule file from path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rule file: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// RulesOf returns the rule form of t, for writing a table back out.
func RulesOf(t *Table) Rules {
	units := make(map[string]string, len(t.units))
	for _, u := range t.units {
		units[strconv.Itoa(u)] = t.sets[u].String()
	}

	// Unit sets may exceed Global (unit 25 does), so write the union
	// of every unit as the cap.
	var all []rune
	for _, u := range t.units {
		all = append(all, t.sets[u].Runes()...)
	}
	slices.Sort(all)
	return Rules{Global: string(slices.Compact(all)), Units: units}
}

package lessonclean

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jamesainslie/go-lessonclean/allowlist"
	"github.com/jamesainslie/go-lessonclean/document"
	"github.com/jamesainslie/go-lessonclean/enforce"
	"github.com/jamesainslie/go-lessonclean/ledger"
	"github.com/jamesainslie/go-lessonclean/normalize"
)

// Cleaner rewrites lesson documents against an allowlist table.
// It is safe for concurrent use.
type Cleaner struct {
	table        *allowlist.Table
	drawer       enforce.Drawer
	subunitsKey  string
	containerKey string
	logger       *slog.Logger
}

// New creates a Cleaner that enforces table.
func New(table *allowlist.Table, opts ...Option) (*Cleaner, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: no allowlist table", ErrConfiguration)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cleaner{
		table:        table,
		drawer:       cfg.drawer,
		subunitsKey:  cfg.subunitsKey,
		containerKey: cfg.containerKey,
		logger:       cfg.logger,
	}, nil
}

// Clean returns a cleaned copy of root in the same shape, together with
// every replacement made. On error neither a tree nor a ledger is
// returned. Units that are not objects, and units whose subunits member
// is missing or not an object, are copied unchanged.
func (c *Cleaner) Clean(root document.Node) (document.Node, *ledger.Ledger, error) {
	r, err := document.ResolveUnits(root, c.containerKey, c.subunitsKey)
	if err != nil {
		return nil, nil, err
	}

	led := ledger.New()
	units := make([]document.Node, len(r.Units))
	for i, u := range r.Units {
		cleaned, err := c.cleanUnit(u, i+1, led)
		if err != nil {
			return nil, nil, fmt.Errorf("unit %d: %w", i+1, err)
		}
		units[i] = cleaned
	}

	c.logger.Debug("cleaned document",
		"shape", r.Shape,
		"units", len(units),
		"replaced", led.Count(),
	)
	return r.Rebuild(units), led, nil
}

// CleanString runs one string through both stages for the given unit.
func (c *Cleaner) CleanString(text string, unit int) (string, []enforce.Replacement, error) {
	out, reps, err := enforce.Enforce(normalize.Normalize(text, unit), c.table.For(unit), c.drawer)
	if err != nil {
		return "", nil, wrapEnforce(err)
	}
	return out, reps, nil
}

func (c *Cleaner) cleanUnit(n document.Node, unit int, led *ledger.Ledger) (document.Node, error) {
	obj, ok := n.(document.Object)
	if !ok {
		c.logger.Warn("unit is not an object, copied unchanged", "unit", unit)
		return n, nil
	}

	v, ok := obj.Get(c.subunitsKey)
	if !ok {
		c.logger.Debug("unit has no subunits, copied unchanged", "unit", unit, "key", c.subunitsKey)
		return n, nil
	}
	subunits, ok := v.(document.Object)
	if !ok {
		c.logger.Warn("subunits is not an object, copied unchanged", "unit", unit, "key", c.subunitsKey)
		return n, nil
	}

	allowed := c.table.For(unit)
	before := led.Count()

	out := make(document.Object, len(subunits))
	for i, m := range subunits {
		w := &leafCleaner{
			unit:    unit,
			subunit: m.Key,
			allowed: allowed,
			drawer:  c.drawer,
			ledger:  led,
		}
		cleaned, err := m.Value.Accept(w)
		if err != nil {
			return nil, fmt.Errorf("subunit %q: %w", m.Key, err)
		}
		out[i] = document.Member{Key: m.Key, Value: cleaned}
	}

	c.logger.Debug("cleaned unit",
		"unit", unit,
		"allowed", allowed.String(),
		"replaced", led.Count()-before,
	)
	return obj.With(c.subunitsKey, out), nil
}

// leafCleaner rebuilds one subunit's content, cleaning every string and
// charging replacements to the subunit it was created for, however deep
// the string sits.
type leafCleaner struct {
	unit    int
	subunit string
	allowed allowlist.Set
	drawer  enforce.Drawer
	ledger  *ledger.Ledger
}

func (w *leafCleaner) VisitString(s document.String) (document.Node, error) {
	text := normalize.Normalize(string(s), w.unit)
	out, reps, err := enforce.Enforce(text, w.allowed, w.drawer)
	if err != nil {
		return nil, wrapEnforce(err)
	}
	w.ledger.Record(w.unit, w.subunit, reps...)
	return document.String(out), nil
}

func (w *leafCleaner) VisitArray(a document.Array) (document.Node, error) {
	out := make(document.Array, len(a))
	for i, v := range a {
		cleaned, err := v.Accept(w)
		if err != nil {
			return nil, err
		}
		out[i] = cleaned
	}
	return out, nil
}

func (w *leafCleaner) VisitObject(o document.Object) (document.Node, error) {
	out := make(document.Object, len(o))
	for i, m := range o {
		cleaned, err := m.Value.Accept(w)
		if err != nil {
			return nil, err
		}
		out[i] = document.Member{Key: m.Key, Value: cleaned}
	}
	return out, nil
}

func (w *leafCleaner) VisitLiteral(l document.Literal) (document.Node, error) {
	return l, nil
}

func wrapEnforce(err error) error {
	if errors.Is(err, enforce.ErrEmptyAllowlist) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return err
}

package ledger

import (
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/fatih/color"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// DefaultPreview is the number of replacements listed per subunit.
const DefaultPreview = 10

// SummaryOptions configures WriteSummary.
type SummaryOptions struct {
	// Preview caps the replacements listed per subunit. Zero or less
	// lists none.
	Preview int
	// Color enables ANSI styling of headings.
	Color bool
}

// WriteSummary writes a human-readable account of l to w:
//
//	=== SUMMARY OF REPLACEMENTS ===
//	Unit 1:
//	  Subunit 'warmup': 3 forbidden chars replaced
//	    H -> a
//	    ... and 1 more
func WriteSummary(w io.Writer, l *Ledger, opts SummaryOptions) error {
	heading := color.New(color.Bold)
	unitStyle := color.New(color.FgCyan, color.Bold)
	countStyle := color.New(color.FgYellow)
	for _, c := range []*color.Color{heading, unitStyle, countStyle} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	if _, err := heading.Fprintln(w, "=== SUMMARY OF REPLACEMENTS ==="); err != nil {
		return err
	}
	if l.Empty() {
		_, err := fmt.Fprintln(w, "No forbidden characters found. Nothing was replaced.")
		return err
	}

	for _, unit := range l.Units() {
		if _, err := unitStyle.Fprintf(w, "Unit %d:\n", unit); err != nil {
			return err
		}
		for _, sub := range l.Subunits(unit) {
			reps := l.Replacements(unit, sub)
			if _, err := fmt.Fprintf(w, "  Subunit '%s': %s forbidden chars replaced\n",
				sub, countStyle.Sprint(len(reps))); err != nil {
				return err
			}

			shown := min(len(reps), max(opts.Preview, 0))
			for _, r := range reps[:shown] {
				if _, err := fmt.Fprintf(w, "    %s -> %s\n", display(r.From), display(r.To)); err != nil {
					return err
				}
			}
			if rest := len(reps) - shown; rest > 0 {
				if _, err := fmt.Fprintf(w, "    ... and %d more\n", rest); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// display quotes whitespace and control runes so they stay visible.
func display(r rune) string {
	if unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return strconv.QuoteRune(r)
	}
	return string(r)
}

// ToStruct converts l into a protobuf Struct:
//
//	{"total": 4, "units": [{"unit": 1, "count": 4, "subunits": [
//	  {"name": "warmup", "count": 4, "replacements": [{"from": "H", "to": "a"}]}]}]}
func ToStruct(l *Ledger) (*structpb.Struct, error) {
	units := make([]any, 0, len(l.units))
	for _, unit := range l.Units() {
		subs := make([]any, 0)
		for _, sub := range l.Subunits(unit) {
			reps := l.Replacements(unit, sub)
			pairs := make([]any, len(reps))
			for i, r := range reps {
				pairs[i] = map[string]any{"from": string(r.From), "to": string(r.To)}
			}
			subs = append(subs, map[string]any{
				"name":         sub,
				"count":        len(reps),
				"replacements": pairs,
			})
		}
		units = append(units, map[string]any{
			"unit":     unit,
			"count":    l.UnitCount(unit),
			"subunits": subs,
		})
	}

	s, err := structpb.NewStruct(map[string]any{
		"total": l.Count(),
		"units": units,
	})
	if err != nil {
		return nil, fmt.Errorf("building ledger struct: %w", err)
	}
	return s, nil
}

// MarshalJSON renders l as indented JSON via ToStruct.
func MarshalJSON(l *Ledger) ([]byte, error) {
	s, err := ToStruct(l)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
}

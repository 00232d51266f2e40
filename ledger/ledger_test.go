package ledger

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jamesainslie/go-lessonclean/enforce"
)

func sample() *Ledger {
	l := New()
	l.Record(3, "drills", enforce.Replacement{From: 'Q', To: 'a'})
	l.Record(1, "warmup", enforce.Replacement{From: 'H', To: 'a'}, enforce.Replacement{From: 'i', To: 's'})
	l.Record(1, "intro")
	l.Record(1, "drills", enforce.Replacement{From: '!', To: ';'})
	l.Record(1, "warmup", enforce.Replacement{From: 'e', To: 'k'})
	return l
}

func TestLedger_Order(t *testing.T) {
	l := sample()

	if diff := cmp.Diff([]int{1, 3}, l.Units()); diff != "" {
		t.Errorf("Units mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"warmup", "drills"}, l.Subunits(1)); diff != "" {
		t.Errorf("Subunits mismatch (-want +got):\n%s", diff)
	}

	want := []enforce.Replacement{{From: 'H', To: 'a'}, {From: 'i', To: 's'}, {From: 'e', To: 'k'}}
	if diff := cmp.Diff(want, l.Replacements(1, "warmup")); diff != "" {
		t.Errorf("Replacements mismatch (-want +got):\n%s", diff)
	}

	if l.Count() != 5 {
		t.Errorf("Count() = %d, want 5", l.Count())
	}
	if l.UnitCount(1) != 4 || l.UnitCount(2) != 0 {
		t.Errorf("UnitCount() = %d/%d, want 4/0", l.UnitCount(1), l.UnitCount(2))
	}
	if l.Replacements(1, "intro") != nil || l.Subunits(2) != nil {
		t.Error("empty records should not appear")
	}
}

func TestLedger_ReturnsCopies(t *testing.T) {
	l := sample()
	reps := l.Replacements(1, "warmup")
	reps[0].To = 'z'

	if got := l.Replacements(1, "warmup")[0].To; got != 'a' {
		t.Errorf("ledger modified through returned slice: %q", got)
	}
}

func TestWriteSummary(t *testing.T) {
	l := New()
	var reps []enforce.Replacement
	for _, r := range "abcdefghijkl" {
		reps = append(reps, enforce.Replacement{From: r, To: ';'})
	}
	l.Record(2, "long", reps...)
	l.Record(2, "space", enforce.Replacement{From: '\t', To: 'a'})

	var b strings.Builder
	if err := WriteSummary(&b, l, SummaryOptions{Preview: 2}); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	want := `=== SUMMARY OF REPLACEMENTS ===
Unit 2:
  Subunit 'long': 12 forbidden chars replaced
    a -> ;
    b -> ;
    ... and 10 more
  Subunit 'space': 1 forbidden chars replaced
    '\t' -> a
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSummary_Empty(t *testing.T) {
	var b strings.Builder
	if err := WriteSummary(&b, New(), SummaryOptions{Preview: DefaultPreview}); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	want := "=== SUMMARY OF REPLACEMENTS ===\nNo forbidden characters found. Nothing was replaced.\n"
	if b.String() != want {
		t.Errorf("summary = %q, want %q", b.String(), want)
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(sample())
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	// protojson output is not byte-stable, so compare decoded values.
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	want := map[string]any{
		"total": 5.0,
		"units": []any{
			map[string]any{
				"unit":  1.0,
				"count": 4.0,
				"subunits": []any{
					map[string]any{
						"name":  "warmup",
						"count": 3.0,
						"replacements": []any{
							map[string]any{"from": "H", "to": "a"},
							map[string]any{"from": "i", "to": "s"},
							map[string]any{"from": "e", "to": "k"},
						},
					},
					map[string]any{
						"name":         "drills",
						"count":        1.0,
						"replacements": []any{map[string]any{"from": "!", "to": ";"}},
					},
				},
			},
			map[string]any{
				"unit":  3.0,
				"count": 1.0,
				"subunits": []any{
					map[string]any{
						"name":         "drills",
						"count":        1.0,
						"replacements": []any{map[string]any{"from": "Q", "to": "a"}},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, s.AsMap()); diff != "" {
		t.Errorf("ledger JSON mismatch (-want +got):\n%s", diff)
	}
}

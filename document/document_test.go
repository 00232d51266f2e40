package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const canonical = `{
  "version": 3,
  "main": [
    {
      "title": "Home row",
      "order": 1.50,
      "draft": false,
      "notes": null,
      "subunits": {
        "warmup": "asdf jkl;",
        "drills": [
          "ask",
          {
            "text": "dad ☕",
            "tags": []
          }
        ],
        "empty": {}
      }
    }
  ],
  "zeta": 1e3
}
`

func TestEncode_RoundTrip(t *testing.T) {
	n, err := Parse([]byte(canonical))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	out, err := Marshal(n)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if diff := cmp.Diff(canonical, string(out)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_PreservesOrderAndLiterals(t *testing.T) {
	n, err := Parse([]byte(`{"b": 1.0, "a": [true, null, -0], "c": "x"}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := Object{
		{Key: "b", Value: Literal("1.0")},
		{Key: "a", Value: Array{True, Null, Literal("-0")}},
		{Key: "c", Value: String("x")},
	}
	if diff := cmp.Diff(Node(want), n); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_DuplicateKeys(t *testing.T) {
	n, err := Parse([]byte(`{"a": 1, "b": {"x": "1", "x": "2"}, "a": [3]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := Object{
		{Key: "a", Value: Array{Literal("3")}},
		{Key: "b", Value: Object{{Key: "x", Value: String("2")}}},
	}
	if diff := cmp.Diff(Node(want), n); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", ErrSyntax},
		{"unterminated", `{"a": [1, 2`, ErrSyntax},
		{"bad literal", `[tru]`, ErrSyntax},
		{"two values", `[] []`, ErrTrailingData},
		{"garbage after value", `{} x`, ErrTrailingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestEncode_Compact(t *testing.T) {
	n := Object{
		{Key: "q", Value: String(`say "hi" <b>`)},
		{Key: "n", Value: Array{Literal("1"), String("ü")}},
	}

	var b strings.Builder
	if err := Encode(&b, n, ""); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := `{"q":"say \"hi\" <b>","n":[1,"ü"]}` + "\n"
	if b.String() != want {
		t.Errorf("Encode() = %q, want %q", b.String(), want)
	}
}

func TestObject_With(t *testing.T) {
	o := Object{{Key: "a", Value: String("1")}, {Key: "b", Value: String("2")}}

	replaced := o.With("a", String("x"))
	if diff := cmp.Diff([]string{"a", "b"}, replaced.Keys()); diff != "" {
		t.Errorf("With() reordered keys:\n%s", diff)
	}
	if v, _ := replaced.Get("a"); v != String("x") {
		t.Errorf("With() value = %v, want x", v)
	}
	if v, _ := o.Get("a"); v != String("1") {
		t.Error("With() modified the original object")
	}

	appended := o.With("c", Null)
	if diff := cmp.Diff([]string{"a", "b", "c"}, appended.Keys()); diff != "" {
		t.Errorf("With() did not append:\n%s", diff)
	}
}

func TestResolveUnits(t *testing.T) {
	unit := Object{
		{Key: "title", Value: String("u1")},
		{Key: "subunits", Value: Object{}},
	}

	tests := []struct {
		name    string
		root    Node
		shape   Shape
		units   int
		wantErr bool
	}{
		{"sequence", Array{unit, unit}, ShapeSequence, 2, false},
		{"empty sequence", Array{}, ShapeSequence, 0, false},
		{"container", Object{{Key: "main", Value: Array{unit}}, {Key: "meta", Value: True}}, ShapeContainer, 1, false},
		{"single unit", unit, ShapeSingle, 1, false},
		{"container key not a list", Object{{Key: "main", Value: String("x")}}, 0, 0, true},
		{"plain object", Object{{Key: "title", Value: String("x")}}, 0, 0, true},
		{"string root", String("units"), 0, 0, true},
		{"literal root", Null, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ResolveUnits(tt.root, "main", "subunits")
			if tt.wantErr {
				if !errors.Is(err, ErrShape) {
					t.Errorf("expected ErrShape, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveUnits failed: %v", err)
			}
			if root.Shape != tt.shape {
				t.Errorf("Shape = %v, want %v", root.Shape, tt.shape)
			}
			if len(root.Units) != tt.units {
				t.Errorf("got %d units, want %d", len(root.Units), tt.units)
			}
		})
	}
}

func TestRoot_Rebuild(t *testing.T) {
	before := Object{{Key: "title", Value: String("old")}, {Key: "subunits", Value: Object{}}}
	after := Object{{Key: "title", Value: String("new")}, {Key: "subunits", Value: Object{}}}

	tests := []struct {
		name string
		root Node
		want Node
	}{
		{"sequence", Array{before}, Array{after}},
		{
			name: "container",
			root: Object{{Key: "v", Value: Literal("2")}, {Key: "main", Value: Array{before}}, {Key: "z", Value: Null}},
			want: Object{{Key: "v", Value: Literal("2")}, {Key: "main", Value: Array{after}}, {Key: "z", Value: Null}},
		},
		{"single", before, after},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ResolveUnits(tt.root, "main", "subunits")
			if err != nil {
				t.Fatalf("ResolveUnits failed: %v", err)
			}
			got := root.Rebuild([]Node{after})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Rebuild mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

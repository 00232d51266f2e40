package batch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jamesainslie/go-lessonclean/document"
	"github.com/jamesainslie/go-lessonclean/enforce"
	"github.com/jamesainslie/go-lessonclean/ledger"
)

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "clean_a.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("[]"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	want := []File{
		{Path: filepath.Join(dir, "a.json"), Output: filepath.Join(dir, "clean_a.json")},
		{Path: filepath.Join(dir, "b.json"), Output: filepath.Join(dir, "clean_b.json")},
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("LoadDir mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDir_Missing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestMeasure(t *testing.T) {
	cleaned := document.Object{{Key: "main", Value: document.Array{
		document.Object{{Key: "subunits", Value: document.Object{
			{Key: "a", Value: document.String("ab cd")},
			{Key: "b", Value: document.Array{document.String("ef"), document.Literal("9")}},
		}}},
		document.Object{{Key: "subunits", Value: document.String("skipped")}},
	}}}

	led := ledger.New()
	led.Record(1, "a", enforce.Replacement{From: 'X', To: 'a'}, enforce.Replacement{From: 'Y', To: 'b'})
	led.Record(1, "b", enforce.Replacement{From: 'Z', To: 'e'})

	s, err := Measure(cleaned, led, "main", "subunits")
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	want := []UnitStats{
		{Unit: 1, Strings: 2, Chars: 6, Replaced: 3, Ratio: 0.5},
		{Unit: 2},
	}
	if diff := cmp.Diff(want, s.Units); diff != "" {
		t.Errorf("unit stats mismatch (-want +got):\n%s", diff)
	}
	if s.Strings != 2 || s.Chars != 6 || s.Replaced != 3 || math.Abs(s.Ratio-0.5) > 1e-9 {
		t.Errorf("totals = %+v", s)
	}
}

func TestMeasure_ShapeError(t *testing.T) {
	if _, err := Measure(document.Null, ledger.New(), "main", "subunits"); err == nil {
		t.Error("expected error for literal root")
	}
}

func TestRun_Order(t *testing.T) {
	var files []File
	for i := 0; i < 20; i++ {
		files = append(files, NewFile(fmt.Sprintf("f%02d.json", i)))
	}

	var inFlight, peak atomic.Int32
	got, err := Run(context.Background(), files, 3, func(_ context.Context, f File) (string, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		return f.Path, nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for i, f := range files {
		if got[i] != f.Path {
			t.Errorf("result %d = %q, want %q", i, got[i], f.Path)
		}
	}
	if peak.Load() > 3 {
		t.Errorf("peak concurrency %d exceeds 3 workers", peak.Load())
	}
}

func TestRun_Error(t *testing.T) {
	boom := errors.New("boom")
	files := []File{NewFile("a.json"), NewFile("b.json"), NewFile("c.json")}

	got, err := Run(context.Background(), files, 1, func(_ context.Context, f File) (int, error) {
		if f.Path == "b.json" {
			return 0, boom
		}
		return 1, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got: %v", err)
	}
	if got != nil {
		t.Error("expected no results on error")
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, []File{NewFile("a.json")}, 2, func(context.Context, File) (int, error) {
		return 1, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

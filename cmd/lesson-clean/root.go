package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	lessonclean "github.com/jamesainslie/go-lessonclean"
	"github.com/jamesainslie/go-lessonclean/allowlist"
	"github.com/jamesainslie/go-lessonclean/document"
	"github.com/jamesainslie/go-lessonclean/internal/batch"
	"github.com/jamesainslie/go-lessonclean/ledger"
)

const defaultInput = "units.json"

type options struct {
	output       string
	rules        string
	stdout       bool
	format       string
	preview      int
	containerKey string
	subunitsKey  string
	stats        bool
	jobs         int
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "lesson-clean [units.json | dir]",
		Short: "Restrict lesson text to the keys each unit has introduced",
		Long: `lesson-clean normalizes typographic punctuation to ASCII and replaces every
character a unit's keyboard allowlist does not include with a random allowed
character. Input defaults to units.json; a directory cleans every .json file
in it. Cleaned files are written as clean_<name> beside the input.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultInput
			if len(args) == 1 {
				input = args[0]
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), input, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output path for a single input file (default clean_<name> beside the input)")
	f.StringVarP(&opts.rules, "rules", "r", "", "YAML or JSON allowlist rule file (default: built-in course)")
	f.BoolVar(&opts.stdout, "stdout", true, "also print cleaned JSON to stdout")
	f.StringVar(&opts.format, "format", "text", "summary format: text or json")
	f.IntVar(&opts.preview, "preview", ledger.DefaultPreview, "replacements listed per subunit in the text summary")
	f.StringVar(&opts.containerKey, "container-key", "main", "root member holding the unit list")
	f.StringVar(&opts.subunitsKey, "subunits-key", "subunits", "unit member whose strings are cleaned")
	f.BoolVar(&opts.stats, "stats", false, "print per-unit replacement statistics")
	f.IntVarP(&opts.jobs, "jobs", "j", batch.DefaultWorkers(), "files cleaned at once for a directory input")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, input string, opts options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown summary format %q", opts.format)
	}

	table := allowlist.Builtin()
	if opts.rules != "" {
		t, err := allowlist.Load(opts.rules)
		if err != nil {
			return err
		}
		table = t
		logger.Debug("loaded rules", "path", opts.rules, "units", len(t.Units()))
	}

	cleaner, err := lessonclean.New(table,
		lessonclean.WithLogger(logger),
		lessonclean.WithContainerKey(opts.containerKey),
		lessonclean.WithSubunitsKey(opts.subunitsKey),
	)
	if err != nil {
		return err
	}

	files, err := inputs(input, opts.output)
	if err != nil {
		return err
	}

	// Files are cleaned concurrently; reports follow input order.
	results, err := batch.Run(ctx, files, opts.jobs, func(_ context.Context, file batch.File) (result, error) {
		res, err := cleanFile(cleaner, file)
		if err != nil {
			return result{}, err
		}
		logger.Info("cleaned", "input", file.Path, "output", file.Output, "replaced", res.ledger.Count())
		return res, nil
	})
	if err != nil {
		return err
	}

	for _, res := range results {
		if err := report(stdout, res, opts); err != nil {
			return err
		}
	}
	return nil
}

func inputs(input, output string) ([]batch.File, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("could not find input: %w", err)
	}

	if !info.IsDir() {
		file := batch.NewFile(input)
		if output != "" {
			file.Output = output
		}
		return []batch.File{file}, nil
	}

	if output != "" {
		return nil, errors.New("--output cannot be used with a directory input")
	}
	files, err := batch.LoadDir(input)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .json files in %s", input)
	}
	return files, nil
}

// result is one cleaned file awaiting its report.
type result struct {
	file    batch.File
	data    []byte
	cleaned document.Node
	ledger  *ledger.Ledger
}

func cleanFile(c *lessonclean.Cleaner, file batch.File) (result, error) {
	root, err := document.Load(file.Path)
	if err != nil {
		return result{}, err
	}

	cleaned, led, err := c.Clean(root)
	if err != nil {
		return result{}, err
	}

	data, err := document.Marshal(cleaned)
	if err != nil {
		return result{}, fmt.Errorf("encoding %s: %w", file.Output, err)
	}
	if err := os.WriteFile(file.Output, data, 0o644); err != nil {
		return result{}, fmt.Errorf("failed to write output to %s: %w", file.Output, err)
	}

	return result{file: file, data: data, cleaned: cleaned, ledger: led}, nil
}

func report(w io.Writer, res result, opts options) error {
	if opts.stdout {
		if _, err := w.Write(res.data); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	switch opts.format {
	case "json":
		out, err := ledger.MarshalJSON(res.ledger)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", out)
	default:
		err := ledger.WriteSummary(w, res.ledger, ledger.SummaryOptions{
			Preview: opts.preview,
			Color:   !color.NoColor,
		})
		if err != nil {
			return err
		}
		if !res.ledger.Empty() {
			fmt.Fprintf(w, "\nSaved cleaned JSON to: %s\n", res.file.Output)
			fmt.Fprintf(w, "Read input JSON from:  %s\n", res.file.Path)
		}
	}

	if opts.stats {
		s, err := batch.Measure(res.cleaned, res.ledger, opts.containerKey, opts.subunitsKey)
		if err != nil {
			return err
		}
		printStats(w, s)
	}
	return nil
}

func printStats(w io.Writer, s batch.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-6s %-8s %-8s %-9s %-8s\n", "Unit", "Strings", "Chars", "Replaced", "Ratio")
	fmt.Fprintln(w, strings.Repeat("-", 44))
	for _, u := range s.Units {
		fmt.Fprintf(w, "%-6d %-8d %-8d %-9d %-8.3f\n", u.Unit, u.Strings, u.Chars, u.Replaced, u.Ratio)
	}
	fmt.Fprintln(w, strings.Repeat("-", 44))
	fmt.Fprintf(w, "%-6s %-8d %-8d %-9d %-8.3f\n", "Total", s.Strings, s.Chars, s.Replaced, s.Ratio)
}
